package main

import (
	"os"

	"library-backend/db"
	_ "library-backend/docs"
	"library-backend/routes"
	"library-backend/storage"
	"library-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title Library Catalog API
// @version 1.0
// @description REST API for managing a library catalog: books and categories
// @host localhost:8080
// @BasePath /api
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	if err := storage.Init(); err != nil {
		utils.LogError(err, "Storage initialization failed, cover image uploads will not work")
	}

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		utils.LogError(err, "Error starting the server")
		os.Exit(1)
	}
}
