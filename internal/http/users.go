package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sdckl/library/internal/auth"
	"github.com/sdckl/library/internal/database/users"
)

// UsersController serves the user management page: list plus creation form.
type UsersController struct {
	users    *users.Repository
	auth     *auth.Service
	sessions *auth.SessionManager
}

// NewUsersController creates a new user management controller.
func NewUsersController(repo *users.Repository, authService *auth.Service, sessions *auth.SessionManager) *UsersController {
	return &UsersController{
		users:    repo,
		auth:     authService,
		sessions: sessions,
	}
}

// ListAndCreate handles both GET and POST on /users. Passwords are hashed by
// the auth service before anything reaches storage; a duplicate email rolls
// the insert back and is flashed without creating a row.
func (uc *UsersController) ListAndCreate(c *gin.Context) {
	if c.Request.Method == http.MethodPost {
		uc.create(c)
	}

	list, err := uc.users.GetAllUsers()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{"Title": "Server Error"})
		return
	}

	renderHTML(c, uc.sessions, "users.html", gin.H{
		"Title": "Users",
		"Users": list,
	})
}

func (uc *UsersController) create(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	role := c.PostForm("role")
	password := c.PostForm("password")

	if name == "" || email == "" || role == "" || password == "" {
		uc.sessions.AddFlash(c.Request, auth.FlashError, "All user fields are required!")
		return
	}

	if _, err := uc.auth.CreateUser(name, email, role, password); err != nil {
		message := "Error adding user: " + err.Error()
		if errors.Is(err, auth.ErrEmailTaken) {
			message = "A user with this email already exists"
		}
		uc.sessions.AddFlash(c.Request, auth.FlashError, message)
		return
	}

	uc.sessions.AddFlash(c.Request, auth.FlashSuccess, "User added successfully!")
}
