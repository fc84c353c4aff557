package middlewares

import "github.com/gin-gonic/gin"

// CommonHeaders sets response headers shared by every endpoint.
func CommonHeaders(c *gin.Context) {
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Cache-Control", "no-store")
	c.Next()
}
