package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the sql connection pool so sub-package repositories share one
// configured handle.
type DB struct {
	*sql.DB
}

var defaultRooms = []string{
	"Main Hall",
	"Reading Room",
	"Community Room",
	"Children's Corner",
}

var defaultEventTypes = []string{
	"Book Club",
	"Author Talk",
	"Workshop",
	"Story Time",
}

// New opens (or creates) the SQLite database at dbPath, creates the schema
// and seeds reference data.
func New(dbPath string) (*DB, error) {
	// Ensure directory exists so first-run succeeds.
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	// Enable busy_timeout and foreign keys.
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=1", dbPath)
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db := &DB{DB: sqlDB}

	if err := db.createSchema(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	if err := db.seedReferenceData(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("seed reference data: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return db, nil
}

func (d *DB) createSchema() error {
	// WAL improves write concurrency.
	if _, err := d.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return fmt.Errorf("enable WAL: %w", err)
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS libraryItem (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			publicationDate TEXT,
			itemType TEXT,
			status TEXT NOT NULL DEFAULT 'available'
		);`,
		`CREATE TABLE IF NOT EXISTS author (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			firstName TEXT NOT NULL,
			lastName TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS item_author (
			itemid INTEGER NOT NULL REFERENCES libraryItem(id),
			authorid INTEGER NOT NULL REFERENCES author(id)
		);`,
		`CREATE TABLE IF NOT EXISTS member (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			firstName TEXT NOT NULL,
			lastName TEXT NOT NULL,
			email TEXT NOT NULL,
			joinDate TEXT NOT NULL DEFAULT (date('now'))
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS member_email_idx ON member(email);`,
		`CREATE TABLE IF NOT EXISTS loan (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			itemid INTEGER NOT NULL REFERENCES libraryItem(id),
			memberid INTEGER NOT NULL REFERENCES member(id),
			loanDate TEXT NOT NULL DEFAULT (date('now')),
			returnedDate TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS eventType (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS room (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS event (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			eventDate TEXT,
			eventTypeid INTEGER REFERENCES eventType(id),
			targetAudience TEXT,
			roomid INTEGER REFERENCES room(id)
		);`,
		`CREATE TABLE IF NOT EXISTS eventRegistration (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			eventid INTEGER NOT NULL REFERENCES event(id),
			memberid INTEGER NOT NULL REFERENCES member(id)
		);`,
		`CREATE TABLE IF NOT EXISTS personnel (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			memberid INTEGER NOT NULL REFERENCES member(id),
			jobTitle TEXT NOT NULL,
			phone TEXT
		);`,
	}

	for _, stmt := range stmts {
		if _, err := d.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// seedReferenceData inserts default rooms and event types on first run so the
// event pages are usable out of the box.
func (d *DB) seedReferenceData() error {
	for _, name := range defaultRooms {
		var id int64
		err := d.QueryRow(`SELECT id FROM room WHERE name = ?`, name).Scan(&id)
		if err == sql.ErrNoRows {
			if _, err := d.Exec(`INSERT INTO room (name) VALUES (?)`, name); err != nil {
				return fmt.Errorf("seed room %s: %w", name, err)
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	for _, name := range defaultEventTypes {
		var id int64
		err := d.QueryRow(`SELECT id FROM eventType WHERE name = ?`, name).Scan(&id)
		if err == sql.ErrNoRows {
			if _, err := d.Exec(`INSERT INTO eventType (name) VALUES (?)`, name); err != nil {
				return fmt.Errorf("seed event type %s: %w", name, err)
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// WithTx runs fn inside a transaction, committing on nil error and rolling
// back otherwise.
func (d *DB) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			log.Printf("rollback failed: %v", rbErr)
		}
		return err
	}
	return tx.Commit()
}

// Ping verifies the underlying connection is alive.
func (d *DB) Ping(ctx context.Context) error {
	return d.PingContext(ctx)
}
