// Package loans provides database operations for checkouts and returns.
package loans

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/citylib/frontdesk/internal/database"
	"github.com/citylib/frontdesk/internal/database/catalog"
)

// ErrItemUnavailable is returned by Checkout when the item is not in the
// available status at write time, including when a concurrent checkout got
// there first.
var ErrItemUnavailable = errors.New("item is not available")

// Repository handles all loan database operations.
type Repository struct {
	db *database.DB
}

// NewRepository creates a new loans repository.
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Checkout flips the item to borrowed and creates the loan row in one
// transaction. The status flip is a conditional update keyed on the current
// status, so of two concurrent checkouts of the same item exactly one
// succeeds; the loser gets ErrItemUnavailable.
func (r *Repository) Checkout(ctx context.Context, itemID, memberID int64) (int64, error) {
	var loanID int64
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE libraryItem SET status = ? WHERE id = ? AND status = ?`,
			catalog.StatusBorrowed, itemID, catalog.StatusAvailable,
		)
		if err != nil {
			return fmt.Errorf("mark item borrowed: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrItemUnavailable
		}

		res, err = tx.ExecContext(ctx,
			`INSERT INTO loan (itemid, memberid) VALUES (?, ?)`,
			itemID, memberID,
		)
		if err != nil {
			return fmt.Errorf("insert loan: %w", err)
		}
		loanID, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}
	return loanID, nil
}

// MarkReturned sets the loan's returned date and flips its item back to
// available. A loan id that matches no row is a no-op and reports
// found=false rather than an error.
func (r *Repository) MarkReturned(ctx context.Context, loanID int64, returnedDate string) (found bool, err error) {
	err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE loan SET returnedDate = ? WHERE id = ?`,
			returnedDate, loanID,
		)
		if err != nil {
			return fmt.Errorf("set returned date: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return nil
		}
		found = true

		var itemID int64
		if err := tx.QueryRowContext(ctx,
			`SELECT itemid FROM loan WHERE id = ?`, loanID,
		).Scan(&itemID); err != nil {
			return fmt.Errorf("find loan item: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE libraryItem SET status = ? WHERE id = ?`,
			catalog.StatusAvailable, itemID,
		); err != nil {
			return fmt.Errorf("mark item available: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// ReturnedDate returns the stored returned date of a loan, or found=false
// when the loan does not exist. An open loan yields an empty date.
func (r *Repository) ReturnedDate(ctx context.Context, loanID int64) (date string, found bool, err error) {
	var returned sql.NullString
	err = r.db.QueryRowContext(ctx,
		`SELECT returnedDate FROM loan WHERE id = ?`, loanID,
	).Scan(&returned)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("loan returned date: %w", err)
	}
	return returned.String, true, nil
}

// CountOverdue counts open loans whose due date (loanDate + periodDays) has
// passed.
func (r *Repository) CountOverdue(ctx context.Context, periodDays int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM loan
		 WHERE returnedDate IS NULL
		   AND date(loanDate, '+' || ? || ' days') < date('now')`,
		periodDays,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count overdue: %w", err)
	}
	return count, nil
}
