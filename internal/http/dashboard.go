package http

import (
	"github.com/gin-gonic/gin"

	"github.com/sdckl/library/internal/auth"
	"github.com/sdckl/library/internal/database/books"
)

// DashboardController serves the landing page summary.
type DashboardController struct {
	books    *books.Repository
	sessions *auth.SessionManager
}

// NewDashboardController creates a new dashboard controller.
func NewDashboardController(repo *books.Repository, sessions *auth.SessionManager) *DashboardController {
	return &DashboardController{
		books:    repo,
		sessions: sessions,
	}
}

// Show renders the dashboard with the total book count.
func (dc *DashboardController) Show(c *gin.Context) {
	count, err := dc.books.CountBooks()
	if err != nil {
		c.HTML(500, "500.html", gin.H{"Title": "Server Error"})
		return
	}

	renderHTML(c, dc.sessions, "dashboard.html", gin.H{
		"Title":     "Dashboard",
		"BookCount": count,
		"UserName":  auth.GetName(c),
	})
}
