package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Context keys for user data
const (
	ContextKeyUserID = "auth_user_id"
	ContextKeyName   = "auth_name"
)

// Middleware guards protected routes behind an authenticated session.
type Middleware struct {
	sessionManager *SessionManager
}

// NewMiddleware creates a new session guard.
func NewMiddleware(sessionManager *SessionManager) *Middleware {
	return &Middleware{sessionManager: sessionManager}
}

// RequireSession returns a handler that lets authenticated requests through
// and redirects everyone else to the login page with a notice. The guarded
// handler never runs for an anonymous request.
func (m *Middleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.sessionManager == nil || !m.sessionManager.IsAuthenticated(c.Request) {
			if m.sessionManager != nil {
				m.sessionManager.AddFlash(c.Request, FlashWarning, "Please login first")
			}
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, m.sessionManager.GetUserID(c.Request))
		c.Set(ContextKeyName, m.sessionManager.GetName(c.Request))
		c.Next()
	}
}

// GetUserID retrieves the authenticated user's ID from the context.
// Returns 0 if the request is anonymous.
func GetUserID(c *gin.Context) uint {
	if id, exists := c.Get(ContextKeyUserID); exists {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return 0
}

// GetName retrieves the authenticated user's display name from the context.
func GetName(c *gin.Context) string {
	if name, exists := c.Get(ContextKeyName); exists {
		if n, ok := name.(string); ok {
			return n
		}
	}
	return ""
}
