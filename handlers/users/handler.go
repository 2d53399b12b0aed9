package users

import (
	"errors"
	"net/http"

	"library-backend/db"
	"library-backend/models"
	"library-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Get the authenticated user
// @Description Resolve the user the bearer token belongs to
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=models.User}
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /user [get]
func GetCurrentUser(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.Response{Message: "User not found in token"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, &utils.NotFoundError{Resource: "User"}, "Gagal menampilkan user")
			return
		}
		utils.SendError(c, err, "Gagal menampilkan user")
		return
	}

	utils.SendData(c, http.StatusOK, "Berhasil menampilkan user", user)
}
