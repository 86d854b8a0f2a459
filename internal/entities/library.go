package entities

import (
	"time"
)

// TransactionType is the closed set of circulation operations.
type TransactionType string

const (
	TransactionTypeBorrow TransactionType = "Borrow"
	TransactionTypeReturn TransactionType = "Return"
)

// IsValid reports whether the value belongs to the closed set.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeBorrow || t == TransactionTypeReturn
}

type Book struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Author    string    `gorm:"size:255;not null" json:"author"`
	Year      int       `gorm:"not null" json:"year"`
	CreatedAt time.Time `json:"created_at"`
}

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:255;not null" json:"name"`
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Role         string `gorm:"size:50;not null" json:"role"`
	PasswordHash string `gorm:"size:255;not null" json:"-"` // bcrypt hash, hidden from JSON

	// Account lockout bookkeeping
	FailedLoginCount int        `gorm:"default:0" json:"-"`
	LockedUntil      *time.Time `json:"-"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type Transaction struct {
	ID     uint            `gorm:"primaryKey" json:"id"`
	UserID uint            `gorm:"index;not null" json:"user_id"`
	BookID uint            `gorm:"index;not null" json:"book_id"`
	Type   TransactionType `gorm:"column:transaction_type;size:10;not null" json:"transaction_type"`
	Date   time.Time       `gorm:"column:transaction_date;not null" json:"date"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Book Book `gorm:"foreignKey:BookID" json:"book,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
