package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Business writes a business error with its canonical status. Anything
// that is not a BusinessError becomes a 500 so DB failures never masquerade
// as client faults.
func Business(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		Write(c, Status(be.Code), be.Code, be.Message)
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, CodeNotFound, "record not found")
		return
	}
	Internal(c, "internal_error", "unexpected error")
}
