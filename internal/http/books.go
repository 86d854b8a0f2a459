package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sdckl/library/internal/auth"
	"github.com/sdckl/library/internal/database/books"
)

// BooksController serves the book catalog page: list plus creation form.
type BooksController struct {
	books    *books.Repository
	sessions *auth.SessionManager
}

// NewBooksController creates a new book catalog controller.
func NewBooksController(repo *books.Repository, sessions *auth.SessionManager) *BooksController {
	return &BooksController{
		books:    repo,
		sessions: sessions,
	}
}

// ListAndCreate handles both GET and POST on /books. A POST attempts to add
// a catalog entry first; every request ends by rendering the full book list.
func (bc *BooksController) ListAndCreate(c *gin.Context) {
	if c.Request.Method == http.MethodPost {
		bc.create(c)
	}

	list, err := bc.books.GetAllBooks()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{"Title": "Server Error"})
		return
	}

	renderHTML(c, bc.sessions, "books.html", gin.H{
		"Title": "Books",
		"Books": list,
	})
}

func (bc *BooksController) create(c *gin.Context) {
	title := c.PostForm("title")
	author := c.PostForm("author")
	yearStr := c.PostForm("year")

	if title == "" || author == "" || yearStr == "" {
		bc.sessions.AddFlash(c.Request, auth.FlashError, "All fields are required!")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		bc.sessions.AddFlash(c.Request, auth.FlashError, "Year must be a number")
		return
	}

	if _, err := bc.books.CreateBook(title, author, year); err != nil {
		bc.sessions.AddFlash(c.Request, auth.FlashError, "Error adding book: "+err.Error())
		return
	}

	bc.sessions.AddFlash(c.Request, auth.FlashSuccess, "Book added successfully!")
}
