// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup and migrations
//	├── books/           # Book catalogue operations
//	├── users/           # User management
//	└── transactions/    # Borrow/return transaction log
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./app.db")
//
//	// Create domain-specific repositories
//	booksRepo := books.NewRepository(db.DB)
//	usersRepo := users.NewRepository(db.DB)
//	txRepo := transactions.NewRepository(db.DB)
//
//	// Use repositories
//	book, err := booksRepo.CreateBook("Dune", "Frank Herbert", 1965)
//	all, err := txRepo.GetAllTransactions()
//
// # Adding a New Domain
//
// To add a new domain (e.g., reservations):
//
//  1. Create a new sub-package: internal/database/reservations/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Add the entity to AutoMigrate in database.go
package database
