package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse sends data as the bare JSON body
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// CreatedResponse sends a freshly created record
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// ErrorResponse sends the error body the frontend reads: {"error": message}
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"error": message,
	})
}

// MessageResponse sends a simple message response
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
