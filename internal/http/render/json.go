// Package render holds the small response helpers shared by every handler.
package render

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

func Created(c *gin.Context, body any) {
	c.JSON(http.StatusCreated, body)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Message is for endpoints whose only payload is a confirmation line.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
