package workflows

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/citylib/frontdesk/internal/database"
)

func setupService(t *testing.T) (*Service, *database.DB, func()) {
	t.Helper()

	dbPath := "./test_workflows_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.New(dbPath)
	require.NoError(t, err)

	svc := NewService(db, 5*time.Second, 14)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return svc, db, cleanup
}

func createTestMember(t *testing.T, db *database.DB, email string) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO member (firstName, lastName, email) VALUES ('Test', 'Member', ?)`, email)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func createTestItem(t *testing.T, db *database.DB, title, status string) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO libraryItem (title, itemType, status) VALUES (?, 'book', ?)`, title, status)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func createTestEvent(t *testing.T, db *database.DB, name string) int64 {
	t.Helper()
	res, err := db.Exec(
		`INSERT INTO event (name, eventDate, eventTypeid, targetAudience, roomid) VALUES (?, '2026-09-01', 1, 'adults', 1)`,
		name,
	)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func countRows(t *testing.T, db *database.DB, table string) int {
	t.Helper()
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&count))
	return count
}

func requireKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, KindOf(err), "unexpected failure kind for %v", err)
}
