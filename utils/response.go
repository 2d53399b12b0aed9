package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Response is the uniform API envelope: {data, message} on success,
// {message, error} on failure.
type Response struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// SendData sends a success response
func SendData(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Data:    data,
		Message: message,
	})
}

// SendError maps a typed error onto a status code. The message describes the
// failed operation; internal details are logged, never echoed back.
func SendError(c *gin.Context, err error, message string) {
	var validationErr *ValidationError
	var notFoundErr *NotFoundError
	var storageErr *StorageError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, Response{
			Message: message,
			Error:   validationErr.Fields,
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, Response{
			Message: notFoundErr.Resource + " Tidak Ditemukan",
		})
	case errors.As(err, &storageErr):
		LogError(err, "File store operation failed")
		c.JSON(http.StatusInternalServerError, Response{
			Message: message,
			Error:   "storage failure",
		})
	default:
		LogError(err, "Unexpected error")
		c.JSON(http.StatusInternalServerError, Response{
			Message: message,
			Error:   "internal server error",
		})
	}
}

// BindInput binds the request body (JSON or multipart form) into obj and
// reports 400 on a malformed body, 422 on field validation failure.
func BindInput(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			c.JSON(http.StatusUnprocessableEntity, Response{
				Message: "Data tidak valid",
				Error:   ValidationMessages(validationErrs),
			})
			return false
		}
		c.JSON(http.StatusBadRequest, Response{
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return false
	}
	return true
}
