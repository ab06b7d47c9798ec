// Package catalog provides database operations for library items, authors
// and donations.
//
// # Usage
//
//	repo := catalog.NewRepository(db)
//	items, err := repo.SearchItems(ctx, "dune")
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/citylib/frontdesk/internal/database"
)

// Item status values checked and written by the lending workflows.
const (
	StatusAvailable = "available"
	StatusBorrowed  = "borrowed"
)

// ItemSummary is one row of a catalog search: the item plus its authors
// aggregated into a single display string. Authors is empty when no author
// is linked.
type ItemSummary struct {
	ID       int64
	Title    string
	ItemType string
	Status   string
	Authors  string
}

// Donation describes one donated item and its author.
type Donation struct {
	Title           string
	PublicationDate string
	ItemType        string
	AuthorFirst     string
	AuthorLast      string
}

// DonationRecord reports what a donation created.
type DonationRecord struct {
	ItemID    int64
	AuthorID  int64
	NewAuthor bool
}

// Repository handles all catalog database operations.
type Repository struct {
	db *database.DB
}

// NewRepository creates a new catalog repository.
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// SearchItems returns all items, or only the ones whose title contains query
// as an unanchored substring. Items without any linked author still appear
// exactly once.
func (r *Repository) SearchItems(ctx context.Context, query string) ([]ItemSummary, error) {
	stmt := `
		SELECT li.id, li.title, COALESCE(li.itemType, ''), li.status,
		       COALESCE(group_concat(a.firstName || ' ' || a.lastName, ', '), '') AS authors
		FROM libraryItem li
		LEFT JOIN item_author ia ON li.id = ia.itemid
		LEFT JOIN author a ON ia.authorid = a.id`
	var args []any
	if query != "" {
		stmt += ` WHERE li.title LIKE ?`
		args = append(args, "%"+query+"%")
	}
	stmt += ` GROUP BY li.id ORDER BY li.id`

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	defer rows.Close()

	var items []ItemSummary
	for rows.Next() {
		var it ItemSummary
		if err := rows.Scan(&it.ID, &it.Title, &it.ItemType, &it.Status, &it.Authors); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ItemStatus returns the status of an item, or found=false when no item with
// that id exists.
func (r *Repository) ItemStatus(ctx context.Context, id int64) (status string, found bool, err error) {
	err = r.db.QueryRowContext(ctx, `SELECT status FROM libraryItem WHERE id = ?`, id).Scan(&status)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("item status: %w", err)
	}
	return status, true, nil
}

// CreateDonation records a donated item: the author is reused on an exact
// (firstName, lastName) match or created, the item is inserted as available,
// and the two are linked. All writes share one transaction so a failure
// never leaves a partially-linked item behind.
func (r *Repository) CreateDonation(ctx context.Context, d Donation) (DonationRecord, error) {
	var rec DonationRecord
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM author WHERE firstName = ? AND lastName = ?`,
			d.AuthorFirst, d.AuthorLast,
		).Scan(&rec.AuthorID)
		switch {
		case err == sql.ErrNoRows:
			res, err := tx.ExecContext(ctx,
				`INSERT INTO author (firstName, lastName) VALUES (?, ?)`,
				d.AuthorFirst, d.AuthorLast,
			)
			if err != nil {
				return fmt.Errorf("insert author: %w", err)
			}
			rec.AuthorID, err = res.LastInsertId()
			if err != nil {
				return err
			}
			rec.NewAuthor = true
		case err != nil:
			return fmt.Errorf("find author: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO libraryItem (title, publicationDate, itemType, status) VALUES (?, ?, ?, ?)`,
			d.Title, d.PublicationDate, d.ItemType, StatusAvailable,
		)
		if err != nil {
			return fmt.Errorf("insert item: %w", err)
		}
		rec.ItemID, err = res.LastInsertId()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO item_author (itemid, authorid) VALUES (?, ?)`,
			rec.ItemID, rec.AuthorID,
		); err != nil {
			return fmt.Errorf("link author: %w", err)
		}
		return nil
	})
	if err != nil {
		return DonationRecord{}, err
	}
	return rec, nil
}
