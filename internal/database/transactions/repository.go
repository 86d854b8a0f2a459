// Package transactions provides database operations for borrow/return records.
package transactions

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sdckl/library/internal/entities"
)

// ErrInvalidType is returned when the transaction type is outside the
// {Borrow, Return} set. The type is validated here, before the insert, rather
// than being left to the storage layer's enum constraint.
var ErrInvalidType = errors.New("transaction type must be Borrow or Return")

// Repository handles all transaction database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new transactions repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateTransaction records a borrow or return. The referenced user and book
// must exist; a dangling reference fails the foreign key check and rolls the
// transaction back without leaving a row behind.
func (r *Repository) CreateTransaction(t *entities.Transaction) error {
	if !t.Type.IsValid() {
		return ErrInvalidType
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(t).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// GetAllTransactions returns every transaction with its user and book
// preloaded for display.
func (r *Repository) GetAllTransactions() ([]entities.Transaction, error) {
	var records []entities.Transaction
	err := r.db.Preload("User").Preload("Book").Find(&records).Error
	return records, err
}

// CountTransactions returns the total number of recorded transactions.
func (r *Repository) CountTransactions() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Transaction{}).Count(&count).Error
	return count, err
}
