package auth

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// setupMutex serializes setup requests to prevent race conditions.
var setupMutex sync.Mutex

// SetupRole is the role assigned to the bootstrap administrator account.
const SetupRole = "Administrator"

// AuthController handles authentication-related HTTP endpoints.
type AuthController struct {
	service        *Service
	sessionManager *SessionManager
}

// NewAuthController creates a new authentication controller.
func NewAuthController(service *Service, sessionManager *SessionManager) *AuthController {
	return &AuthController{
		service:        service,
		sessionManager: sessionManager,
	}
}

// RegisterRoutes registers authentication routes on the router.
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	router.GET("/login", ac.LoginPage)
	router.POST("/login", ac.Login)
	router.GET("/logout", ac.Logout)
	router.GET("/setup", ac.SetupPage)
	router.POST("/setup", ac.Setup)
}

// LoginPage renders the login form.
func (ac *AuthController) LoginPage(c *gin.Context) {
	// If already authenticated, go straight to the dashboard
	if ac.sessionManager.IsAuthenticated(c.Request) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	// First run: no users exist yet, bootstrap an administrator
	hasUsers, _ := ac.service.HasUsers()
	if !hasUsers {
		c.Redirect(http.StatusFound, "/setup")
		return
	}

	ac.render(c, "login.html", gin.H{
		"Title": "Login",
	})
}

// Login handles the login form submission.
func (ac *AuthController) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	if email == "" || password == "" {
		ac.sessionManager.AddFlash(c.Request, FlashError, "Email and password are required")
		ac.render(c, "login.html", gin.H{
			"Title": "Login",
			"Email": email,
		})
		return
	}

	user, err := ac.service.Authenticate(email, password)
	if err != nil {
		message := "Invalid credentials, please try again."
		if errors.Is(err, ErrAccountLocked) {
			message = "Account is locked. Please try again later."
		}

		ac.sessionManager.AddFlash(c.Request, FlashError, message)
		ac.render(c, "login.html", gin.H{
			"Title": "Login",
			"Email": email,
		})
		return
	}

	if err := ac.sessionManager.CreateSession(c.Request, user); err != nil {
		ac.sessionManager.AddFlash(c.Request, FlashError, "Failed to create session")
		ac.render(c, "login.html", gin.H{
			"Title": "Login",
			"Email": email,
		})
		return
	}

	ac.sessionManager.AddFlash(c.Request, FlashSuccess, "Logged in successfully!")
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout destroys the session and redirects to login.
func (ac *AuthController) Logout(c *gin.Context) {
	_ = ac.sessionManager.DestroySession(c.Request)
	ac.sessionManager.AddFlash(c.Request, FlashSuccess, "You have been logged out.")
	c.Redirect(http.StatusFound, "/login")
}

// SetupPage renders the initial admin setup form.
func (ac *AuthController) SetupPage(c *gin.Context) {
	// Only show setup if no users exist
	hasUsers, err := ac.service.HasUsers()
	if err != nil {
		ac.sessionManager.AddFlash(c.Request, FlashError, "Database error. Please try again.")
		ac.render(c, "setup.html", gin.H{"Title": "Initial Setup"})
		return
	}
	if hasUsers {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	ac.render(c, "setup.html", gin.H{"Title": "Initial Setup"})
}

// Setup handles the initial admin user creation.
// Uses a mutex to prevent races where concurrent requests both pass HasUsers().
func (ac *AuthController) Setup(c *gin.Context) {
	setupMutex.Lock()
	defer setupMutex.Unlock()

	hasUsers, err := ac.service.HasUsers()
	if err != nil {
		ac.sessionManager.AddFlash(c.Request, FlashError, "Database error. Please try again.")
		ac.render(c, "setup.html", gin.H{"Title": "Initial Setup"})
		return
	}
	if hasUsers {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")
	confirmPassword := c.PostForm("confirm_password")

	if name == "" || email == "" || password == "" {
		ac.sessionManager.AddFlash(c.Request, FlashError, "All fields are required!")
		ac.render(c, "setup.html", gin.H{
			"Title": "Initial Setup",
			"Name":  name,
			"Email": email,
		})
		return
	}

	if password != confirmPassword {
		ac.sessionManager.AddFlash(c.Request, FlashError, "Passwords do not match")
		ac.render(c, "setup.html", gin.H{
			"Title": "Initial Setup",
			"Name":  name,
			"Email": email,
		})
		return
	}

	user, err := ac.service.CreateUser(name, email, SetupRole, password)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			// Another request won the race, redirect to login
			c.Redirect(http.StatusFound, "/login")
			return
		}

		ac.sessionManager.AddFlash(c.Request, FlashError, "Failed to create user")
		ac.render(c, "setup.html", gin.H{
			"Title": "Initial Setup",
			"Name":  name,
			"Email": email,
		})
		return
	}

	// Sign the new administrator in
	_ = ac.sessionManager.CreateSession(c.Request, user)
	c.Redirect(http.StatusFound, "/dashboard")
}

// render draws a template with queued flash messages and the CSRF token.
func (ac *AuthController) render(c *gin.Context, name string, data gin.H) {
	data["Flashes"] = ac.sessionManager.PopFlashes(c.Request)
	data["CSRFToken"] = GetCSRFToken(c)
	c.HTML(http.StatusOK, name, data)
}
