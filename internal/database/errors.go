package database

import (
	"context"
	"errors"

	"github.com/mattn/go-sqlite3"
)

// IsConstraintViolation reports whether err stems from a violated database
// constraint (unique index, foreign key, NOT NULL, ...).
func IsConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}

// IsTimeout reports whether err stems from an expired store deadline.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
