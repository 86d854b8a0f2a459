package http

import (
	"github.com/sdckl/library/internal/auth"
	"github.com/sdckl/library/internal/config"
	"github.com/sdckl/library/internal/database"
)

// RouterConfig contains all dependencies and configuration needed to create
// the HTTP router. Handlers receive their collaborators from here instead of
// reaching for process-wide singletons.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database

	// Authentication
	AuthService    *auth.Service
	SessionManager *auth.SessionManager
	AuthConfig     config.Auth
	CSRFSecret     []byte
	SecureCookies  bool

	// UI paths
	TemplatesPath string
	StaticPath    string

	// Application info
	Version string
}
