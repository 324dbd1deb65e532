package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends data as the JSON body
func JSONResponse(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, err error, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}

// JSONValidationError sends a structured error response listing the rejected fields
func JSONValidationError(c *gin.Context, status int, err error, message string, fields any) {
	c.AbortWithStatusJSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
		"fields":  fields,
	})
}

// EmptyResponse sends the status code without a body
func EmptyResponse(c *gin.Context, status int) {
	c.Status(status)
}
