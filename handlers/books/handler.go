package books

import (
	"mime/multipart"
	"net/http"

	"library-backend/models"
	"library-backend/services"
	"library-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Get all books
// @Description Retrieve all books with their category
// @Tags books
// @Produce json
// @Success 200 {object} utils.Response{data=[]models.Book}
// @Failure 500 {object} utils.Response
// @Router /books [get]
func GetAllBooks(c *gin.Context) {
	books, err := services.ListBooks()
	if err != nil {
		utils.SendError(c, err, "Gagal menampilkan daftar buku")
		return
	}

	utils.SendData(c, http.StatusOK, "Berhasil menampilkan daftar buku", books)
}

// @Summary Create a new book
// @Description Create a new book, optionally with a cover image (multipart)
// @Tags books
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param judul formData string true "Title"
// @Param penulis formData string true "Author"
// @Param tahun_terbit formData int true "Publication year"
// @Param jumlah_halaman formData int false "Page count"
// @Param category_id formData string true "Category ID"
// @Param image formData file false "Cover image (jpeg/png/jpg, max 2MB)"
// @Success 200 {object} utils.Response{data=models.Book}
// @Failure 422 {object} utils.Response "error: field messages"
// @Failure 500 {object} utils.Response
// @Router /books [post]
func CreateBook(c *gin.Context) {
	var input models.BookInput
	if !utils.BindInput(c, &input) {
		return
	}

	book, err := services.CreateBook(input, formImage(c))
	if err != nil {
		utils.SendError(c, err, "Gagal membuat buku")
		return
	}

	utils.SendData(c, http.StatusOK, "Buku berhasil dibuat", book)
}

// @Summary Get book detail by ID
// @Description Retrieve a book with its category
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} utils.Response{data=models.Book}
// @Failure 404 {object} utils.Response "message: Buku Tidak Ditemukan"
// @Router /books/{id} [get]
func GetBookByID(c *gin.Context) {
	book, err := services.GetBook(c.Param("id"))
	if err != nil {
		utils.SendError(c, err, "Gagal menampilkan buku")
		return
	}

	utils.SendData(c, http.StatusOK, "Berhasil menampilkan buku berdasarkan ID", book)
}

// @Summary Update a book
// @Description Update a book; a newly uploaded cover replaces the stored one
// @Tags books
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Book ID"
// @Param judul formData string true "Title"
// @Param penulis formData string true "Author"
// @Param tahun_terbit formData int true "Publication year"
// @Param jumlah_halaman formData int false "Page count"
// @Param category_id formData string true "Category ID"
// @Param image formData file false "Cover image (jpeg/png/jpg, max 2MB)"
// @Success 200 {object} utils.Response{data=models.Book}
// @Failure 404 {object} utils.Response
// @Failure 422 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /books/{id} [put]
func UpdateBook(c *gin.Context) {
	var input models.BookInput
	if !utils.BindInput(c, &input) {
		return
	}

	book, err := services.UpdateBook(c.Param("id"), input, formImage(c))
	if err != nil {
		utils.SendError(c, err, "Gagal memperbarui buku")
		return
	}

	utils.SendData(c, http.StatusOK, "Buku berhasil diperbarui", book)
}

// @Summary Delete a book by ID
// @Description Delete a book and its stored cover image
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 204 "Book deleted"
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /books/{id} [delete]
func DeleteBook(c *gin.Context) {
	if err := services.DeleteBook(c.Param("id")); err != nil {
		utils.SendError(c, err, "Gagal menghapus buku")
		return
	}

	c.Status(http.StatusNoContent)
}

// formImage returns the uploaded cover file, nil when the request carries
// none (plain JSON requests included).
func formImage(c *gin.Context) *multipart.FileHeader {
	file, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return file
}
