package routes

import (
	"library-backend/handlers/categories"

	"github.com/gin-gonic/gin"
)

func CategoriesRoutes(api *gin.RouterGroup) {
	categoriesRoutes := api.Group("/categories")
	{
		categoriesRoutes.GET("", categories.GetAllCategories)
		categoriesRoutes.POST("", categories.CreateCategory)
		categoriesRoutes.GET("/:id", categories.GetCategoryByID)
		categoriesRoutes.PUT("/:id", categories.UpdateCategory)
		categoriesRoutes.PATCH("/:id", categories.UpdateCategory)
		categoriesRoutes.DELETE("/:id", categories.DeleteCategory)
	}
}
