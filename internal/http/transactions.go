package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sdckl/library/internal/auth"
	"github.com/sdckl/library/internal/database/books"
	"github.com/sdckl/library/internal/database/transactions"
	"github.com/sdckl/library/internal/database/users"
	"github.com/sdckl/library/internal/entities"
)

// DateLayout is the wire format for transaction dates.
const DateLayout = "2006-01-02"

// TransactionsController serves the borrow/return page: the transaction log
// joined with user and book display data, plus a recording form.
type TransactionsController struct {
	transactions *transactions.Repository
	users        *users.Repository
	books        *books.Repository
	sessions     *auth.SessionManager
}

// NewTransactionsController creates a new transactions controller.
func NewTransactionsController(
	txRepo *transactions.Repository,
	userRepo *users.Repository,
	bookRepo *books.Repository,
	sessions *auth.SessionManager,
) *TransactionsController {
	return &TransactionsController{
		transactions: txRepo,
		users:        userRepo,
		books:        bookRepo,
		sessions:     sessions,
	}
}

// ListAndCreate handles both GET and POST on /transactions. The user and book
// lists are included in the view for populating the selection inputs.
func (tc *TransactionsController) ListAndCreate(c *gin.Context) {
	if c.Request.Method == http.MethodPost {
		tc.create(c)
	}

	records, err := tc.transactions.GetAllTransactions()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{"Title": "Server Error"})
		return
	}
	userList, err := tc.users.GetAllUsers()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{"Title": "Server Error"})
		return
	}
	bookList, err := tc.books.GetAllBooks()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{"Title": "Server Error"})
		return
	}

	renderHTML(c, tc.sessions, "transactions.html", gin.H{
		"Title":        "Transactions",
		"Transactions": records,
		"Users":        userList,
		"Books":        bookList,
	})
}

func (tc *TransactionsController) create(c *gin.Context) {
	userIDStr := c.PostForm("user_id")
	bookIDStr := c.PostForm("book_id")
	txType := c.PostForm("transaction_type")
	dateStr := c.PostForm("date")

	if userIDStr == "" || bookIDStr == "" || txType == "" || dateStr == "" {
		tc.sessions.AddFlash(c.Request, auth.FlashError, "All transaction fields are required!")
		return
	}

	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		tc.sessions.AddFlash(c.Request, auth.FlashError, "User ID must be a number")
		return
	}
	bookID, err := strconv.Atoi(bookIDStr)
	if err != nil {
		tc.sessions.AddFlash(c.Request, auth.FlashError, "Book ID must be a number")
		return
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		tc.sessions.AddFlash(c.Request, auth.FlashError, "Date must be in YYYY-MM-DD format")
		return
	}

	record := &entities.Transaction{
		UserID: uint(userID),
		BookID: uint(bookID),
		Type:   entities.TransactionType(txType),
		Date:   date,
	}

	if err := tc.transactions.CreateTransaction(record); err != nil {
		message := "Error adding transaction: " + err.Error()
		switch {
		case errors.Is(err, transactions.ErrInvalidType):
			message = "Transaction type must be Borrow or Return"
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			message = "The selected user or book does not exist"
		}
		tc.sessions.AddFlash(c.Request, auth.FlashError, message)
		return
	}

	tc.sessions.AddFlash(c.Request, auth.FlashSuccess, "Transaction recorded successfully!")
}
