package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sdckl/library/internal/auth"
)

// renderHTML draws a template with any queued flash messages and the CSRF
// token. Flashes are popped here, so each message is shown exactly once.
func renderHTML(c *gin.Context, sm *auth.SessionManager, name string, data gin.H) {
	if sm != nil {
		data["Flashes"] = sm.PopFlashes(c.Request)
	}
	data["CSRFToken"] = auth.GetCSRFToken(c)
	c.HTML(http.StatusOK, name, data)
}
