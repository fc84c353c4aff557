package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns errors attached to the gin context into a JSON response
// when no handler has written one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": c.Errors.Last().Error(),
		})
	}
}
