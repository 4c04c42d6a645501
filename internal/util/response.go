package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the payload map for successful replies.
type Response map[string]interface{}

// Success writes the payload as a 200 JSON body.
func Success(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, data)
}

// Error writes {"error": msg} with the given HTTP status.
// Every failure body carries the error key, nothing else.
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{
		"error": msg,
	})
}
