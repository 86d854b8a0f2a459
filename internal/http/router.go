package http

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sdckl/library/internal/auth"
	"github.com/sdckl/library/internal/database/books"
	"github.com/sdckl/library/internal/database/transactions"
	"github.com/sdckl/library/internal/database/users"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())

	// Apply CSRF protection if a secret is configured.
	// CSRF must run before session so that session context is preserved.
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	// Session middleware runs after CSRF so session context isn't
	// overwritten by CSRF's request replacement
	router.Use(cfg.SessionManager.SessionLoadSave())

	// Load HTML templates; tests install their own stubs instead
	if cfg.TemplatesPath != "" {
		tmpl := template.Must(template.ParseGlob(cfg.TemplatesPath + "/*.html"))
		router.SetHTMLTemplate(tmpl)
	}

	// Serve static files
	if cfg.StaticPath != "" {
		router.Static("/static", cfg.StaticPath)
	}

	// Repositories share the single database handle
	bookRepo := books.NewRepository(cfg.Database.DB)
	userRepo := users.NewRepository(cfg.Database.DB)
	txRepo := transactions.NewRepository(cfg.Database.DB)

	// Public routes: login, logout, first-run setup, health
	authController := auth.NewAuthController(cfg.AuthService, cfg.SessionManager)
	authController.RegisterRoutes(router)

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})

	// Protected routes sit behind the session guard
	guard := auth.NewMiddleware(cfg.SessionManager)
	protected := router.Group("", guard.RequireSession())

	dashboard := NewDashboardController(bookRepo, cfg.SessionManager)
	protected.GET("/dashboard", dashboard.Show)

	booksController := NewBooksController(bookRepo, cfg.SessionManager)
	protected.GET("/books", booksController.ListAndCreate)
	protected.POST("/books", booksController.ListAndCreate)

	usersController := NewUsersController(userRepo, cfg.AuthService, cfg.SessionManager)
	protected.GET("/users", usersController.ListAndCreate)
	protected.POST("/users", usersController.ListAndCreate)

	txController := NewTransactionsController(txRepo, userRepo, bookRepo, cfg.SessionManager)
	protected.GET("/transactions", txController.ListAndCreate)
	protected.POST("/transactions", txController.ListAndCreate)

	// Dedicated error views
	router.NoRoute(NotFound)

	return router
}
