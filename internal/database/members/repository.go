// Package members provides database operations for library members and
// volunteer personnel.
package members

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/citylib/frontdesk/internal/database"
)

// VolunteerJobTitle is the personnel role created by volunteer signups.
const VolunteerJobTitle = "volunteer"

// ErrAlreadyVolunteered is returned by EnrollVolunteer when the member
// already holds the volunteer role.
var ErrAlreadyVolunteered = errors.New("member has already volunteered")

// Enrollment reports the result of a volunteer signup.
type Enrollment struct {
	MemberID  int64
	NewMember bool
}

// Repository handles all member database operations.
type Repository struct {
	db *database.DB
}

// NewRepository creates a new members repository.
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Exists reports whether a member with the given id exists.
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM member WHERE id = ?`, id).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("member exists: %w", err)
	}
	return true, nil
}

// EnrollVolunteer reuses the member matching email exactly (or creates one
// with joinDate set to today) and records the volunteer personnel row. A
// member who already volunteered gets ErrAlreadyVolunteered and no new rows.
// Lookup, member creation and personnel insert share one transaction.
func (r *Repository) EnrollVolunteer(ctx context.Context, firstName, lastName, email, phone string) (Enrollment, error) {
	var enr Enrollment
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM member WHERE email = ?`, email,
		).Scan(&enr.MemberID)
		switch {
		case err == sql.ErrNoRows:
			res, err := tx.ExecContext(ctx,
				`INSERT INTO member (firstName, lastName, email, joinDate) VALUES (?, ?, ?, date('now'))`,
				firstName, lastName, email,
			)
			if err != nil {
				return fmt.Errorf("insert member: %w", err)
			}
			enr.MemberID, err = res.LastInsertId()
			if err != nil {
				return err
			}
			enr.NewMember = true
		case err != nil:
			return fmt.Errorf("find member by email: %w", err)
		}

		var personnelID int64
		err = tx.QueryRowContext(ctx,
			`SELECT id FROM personnel WHERE memberid = ? AND jobTitle = ?`,
			enr.MemberID, VolunteerJobTitle,
		).Scan(&personnelID)
		if err == nil {
			return ErrAlreadyVolunteered
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("find personnel: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO personnel (memberid, jobTitle, phone) VALUES (?, ?, ?)`,
			enr.MemberID, VolunteerJobTitle, phone,
		); err != nil {
			return fmt.Errorf("insert personnel: %w", err)
		}
		return nil
	})
	if err != nil {
		return Enrollment{}, err
	}
	return enr, nil
}
