// Package events provides database operations for events and registrations.
package events

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/citylib/frontdesk/internal/database"
)

// EventSummary is one row of an event search: the event joined with its type
// and room names for display.
type EventSummary struct {
	ID             int64
	Name           string
	Date           string
	Type           string
	TargetAudience string
	RoomID         int64
	RoomName       string
}

// Repository handles all event database operations.
type Repository struct {
	db *database.DB
}

// NewRepository creates a new events repository.
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// SearchEvents returns all events, or only the ones whose name contains
// query as an unanchored substring. Events without a type or room reference
// are excluded (inner-join semantics).
func (r *Repository) SearchEvents(ctx context.Context, query string) ([]EventSummary, error) {
	stmt := `
		SELECT e.id, e.name, COALESCE(e.eventDate, ''), et.name,
		       COALESCE(e.targetAudience, ''), e.roomid, rm.name
		FROM event e
		JOIN eventType et ON e.eventTypeid = et.id
		JOIN room rm ON rm.id = e.roomid`
	var args []any
	if query != "" {
		stmt += ` WHERE e.name LIKE ?`
		args = append(args, "%"+query+"%")
	}
	stmt += ` ORDER BY e.id`

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	defer rows.Close()

	var events []EventSummary
	for rows.Next() {
		var ev EventSummary
		if err := rows.Scan(&ev.ID, &ev.Name, &ev.Date, &ev.Type, &ev.TargetAudience, &ev.RoomID, &ev.RoomName); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// Exists reports whether an event with the given id exists.
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM event WHERE id = ?`, id).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("event exists: %w", err)
	}
	return true, nil
}

// Register inserts an event registration. Registering the same member for
// the same event twice creates two rows; no uniqueness is enforced.
func (r *Repository) Register(ctx context.Context, eventID, memberID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO eventRegistration (eventid, memberid) VALUES (?, ?)`,
		eventID, memberID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert registration: %w", err)
	}
	return res.LastInsertId()
}
