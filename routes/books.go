package routes

import (
	"library-backend/handlers/books"

	"github.com/gin-gonic/gin"
)

func BooksRoutes(api *gin.RouterGroup) {
	booksRoutes := api.Group("/books")
	{
		booksRoutes.GET("", books.GetAllBooks)
		booksRoutes.POST("", books.CreateBook)
		booksRoutes.GET("/:id", books.GetBookByID)
		booksRoutes.PUT("/:id", books.UpdateBook)
		booksRoutes.PATCH("/:id", books.UpdateBook)
		booksRoutes.DELETE("/:id", books.DeleteBook)
	}
}
