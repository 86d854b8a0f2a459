package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NotFound renders the dedicated 404 view for unmatched routes.
func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{"Title": "Page Not Found"})
}

// Recovery returns a middleware that turns panics into the 500 view instead
// of killing the request with an empty response. No failure is fatal to the
// process.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{"Title": "Server Error"})
	})
}
