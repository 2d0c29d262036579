package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every handler answers with the same envelope: a human-readable
// "message", a "data" payload on success, an "error" detail on failure.
// The POS frontend keys its toasts off "message".

func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    data,
	})
}

func Error(c *gin.Context, status int, message string, err error) {
	resp := gin.H{"message": message}
	if err != nil {
		resp["error"] = err.Error()
	}
	c.JSON(status, resp)
}
