package routes

import (
	"library-backend/handlers/users"
	"library-backend/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(api *gin.RouterGroup) {
	usersRoutes := api.Group("/user")
	usersRoutes.Use(middleware.JWTAuth())
	usersRoutes.GET("", users.GetCurrentUser)
}
