// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, schema creation, reference seeding
//	├── errors.go        # Store failure classification helpers
//	├── catalog/         # Library items, authors, donations, item search
//	├── members/         # Members and volunteer personnel
//	├── loans/           # Checkouts and returns
//	└── events/          # Events and event registrations
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.New("./frontdesk.db")
//
//	// Create domain-specific repositories
//	catalogRepo := catalog.NewRepository(db)
//	loansRepo := loans.NewRepository(db)
//
//	// Use repositories
//	items, err := catalogRepo.SearchItems(ctx, "dune")
//	loanID, err := loansRepo.Checkout(ctx, itemID, memberID)
//
// All SQL in the sub-packages is hand-written with bound parameters; no
// user-supplied value is ever interpolated into statement text. Operations
// that issue more than one write run inside a single transaction.
package database
