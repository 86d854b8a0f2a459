// Package books provides database operations for the book catalog.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.CreateBook("1984", "George Orwell", 1949)
package books

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/sdckl/library/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateBook inserts a new catalog entry. The insert runs in its own
// transaction: committed on success, rolled back on any failure.
func (r *Repository) CreateBook(title, author string, year int) (*entities.Book, error) {
	book := &entities.Book{
		Title:  title,
		Author: author,
		Year:   year,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(book).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return book, nil
}

// GetAllBooks returns the full, unfiltered catalog in storage order.
func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Find(&books).Error
	return books, err
}

// CountBooks returns the total number of catalog entries.
func (r *Repository) CountBooks() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Count(&count).Error
	return count, err
}
