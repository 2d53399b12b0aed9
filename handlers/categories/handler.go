package categories

import (
	"net/http"

	"library-backend/models"
	"library-backend/services"
	"library-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Get all categories
// @Description Retrieve all categories
// @Tags categories
// @Produce json
// @Success 200 {object} utils.Response{data=[]models.Category}
// @Failure 500 {object} utils.Response
// @Router /categories [get]
func GetAllCategories(c *gin.Context) {
	categories, err := services.ListCategories()
	if err != nil {
		utils.SendError(c, err, "Gagal menampilkan kategori")
		return
	}

	utils.SendData(c, http.StatusOK, "Berhasil menampilkan kategori", categories)
}

// @Summary Create a new category
// @Description Create a new category with the provided information
// @Tags categories
// @Accept json
// @Produce json
// @Param category body models.CategoryInput true "Category information"
// @Success 201 {object} utils.Response{data=models.Category}
// @Failure 422 {object} utils.Response "error: field messages"
// @Failure 500 {object} utils.Response
// @Router /categories [post]
func CreateCategory(c *gin.Context) {
	var input models.CategoryInput
	if !utils.BindInput(c, &input) {
		return
	}

	category, err := services.CreateCategory(input)
	if err != nil {
		utils.SendError(c, err, "Gagal membuat kategori")
		return
	}

	utils.SendData(c, http.StatusCreated, "Berhasil membuat kategori", category)
}

// @Summary Get category detail by ID
// @Description Retrieve a category with its books
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} utils.Response{data=models.Category}
// @Failure 404 {object} utils.Response "message: Kategori Tidak Ditemukan"
// @Router /categories/{id} [get]
func GetCategoryByID(c *gin.Context) {
	category, err := services.GetCategory(c.Param("id"))
	if err != nil {
		utils.SendError(c, err, "Gagal menampilkan kategori")
		return
	}

	utils.SendData(c, http.StatusOK, "Berhasil menampilkan ketegori berdasarkan ID", category)
}

// @Summary Update a category
// @Description Update a category with the provided information
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body models.CategoryInput true "Updated category information"
// @Success 200 {object} utils.Response{data=models.Category}
// @Failure 404 {object} utils.Response
// @Failure 422 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /categories/{id} [put]
func UpdateCategory(c *gin.Context) {
	var input models.CategoryInput
	if !utils.BindInput(c, &input) {
		return
	}

	category, err := services.UpdateCategory(c.Param("id"), input)
	if err != nil {
		utils.SendError(c, err, "Gagal memperbarui kategori")
		return
	}

	utils.SendData(c, http.StatusOK, "Kategori berhasil diperbarui", category)
}

// @Summary Delete a category by ID
// @Description Delete a category that has no remaining books
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 204 "Category deleted"
// @Failure 404 {object} utils.Response
// @Failure 422 {object} utils.Response "error: kategori masih memiliki buku"
// @Failure 500 {object} utils.Response
// @Router /categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	if err := services.DeleteCategory(c.Param("id")); err != nil {
		utils.SendError(c, err, "Gagal menghapus kategori")
		return
	}

	c.Status(http.StatusNoContent)
}
