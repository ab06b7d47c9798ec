package loans

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citylib/frontdesk/internal/database"
	"github.com/citylib/frontdesk/internal/database/catalog"
)

func setupTestDB(t *testing.T) (*database.DB, *Repository, func()) {
	t.Helper()

	dbPath := "./test_loans_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.New(dbPath)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, repo, cleanup
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

func itemStatus(t *testing.T, db *database.DB, id int64) string {
	t.Helper()
	var status string
	require.NoError(t, db.QueryRow(`SELECT status FROM libraryItem WHERE id = ?`, id).Scan(&status))
	return status
}

func TestCheckout_CreatesLoanAndFlipsStatus(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	memberID := createTestMember(t, db, "m@lib.org")
	itemID := createTestItem(t, db, "Dune", catalog.StatusAvailable)

	loanID, err := repo.Checkout(context.Background(), itemID, memberID)
	require.NoError(t, err)
	assert.Greater(t, loanID, int64(0))

	assert.Equal(t, catalog.StatusBorrowed, itemStatus(t, db, itemID))

	var gotItem, gotMember int64
	var returned sql.NullString
	require.NoError(t, db.QueryRow(
		`SELECT itemid, memberid, returnedDate FROM loan WHERE id = ?`, loanID,
	).Scan(&gotItem, &gotMember, &returned))
	assert.Equal(t, itemID, gotItem)
	assert.Equal(t, memberID, gotMember)
	assert.False(t, returned.Valid, "fresh loan is open")
}

func TestCheckout_UnavailableItem(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	memberID := createTestMember(t, db, "m@lib.org")
	itemID := createTestItem(t, db, "Dune", catalog.StatusBorrowed)

	_, err := repo.Checkout(context.Background(), itemID, memberID)
	require.ErrorIs(t, err, ErrItemUnavailable)

	var loanCount int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM loan`).Scan(&loanCount))
	assert.Equal(t, 0, loanCount, "losing checkout must not create a loan")
}

func TestCheckout_SecondAttemptLoses(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	memberID := createTestMember(t, db, "m@lib.org")
	itemID := createTestItem(t, db, "Dune", catalog.StatusAvailable)

	_, err := repo.Checkout(context.Background(), itemID, memberID)
	require.NoError(t, err)

	_, err = repo.Checkout(context.Background(), itemID, memberID)
	assert.ErrorIs(t, err, ErrItemUnavailable)
}

func TestMarkReturned_SetsDateAndRestoresItem(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	memberID := createTestMember(t, db, "m@lib.org")
	itemID := createTestItem(t, db, "Dune", catalog.StatusAvailable)

	loanID, err := repo.Checkout(context.Background(), itemID, memberID)
	require.NoError(t, err)

	found, err := repo.MarkReturned(context.Background(), loanID, "2026-08-20")
	require.NoError(t, err)
	assert.True(t, found)

	date, found, err := repo.ReturnedDate(context.Background(), loanID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "2026-08-20", date, "stored date round-trips exactly")

	assert.Equal(t, catalog.StatusAvailable, itemStatus(t, db, itemID))
}

func TestMarkReturned_UnknownLoanIsNoOp(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	found, err := repo.MarkReturned(context.Background(), 999, "2026-08-20")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCountOverdue(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	memberID := createTestMember(t, db, "m@lib.org")
	overdueItem := createTestItem(t, db, "Old Loan", catalog.StatusBorrowed)
	freshItem := createTestItem(t, db, "Fresh Loan", catalog.StatusBorrowed)
	returnedItem := createTestItem(t, db, "Returned Loan", catalog.StatusAvailable)

	_, err := db.Exec(
		`INSERT INTO loan (itemid, memberid, loanDate) VALUES (?, ?, date('now', '-30 days'))`,
		overdueItem, memberID,
	)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO loan (itemid, memberid) VALUES (?, ?)`, freshItem, memberID)
	require.NoError(t, err)
	_, err = db.Exec(
		`INSERT INTO loan (itemid, memberid, loanDate, returnedDate) VALUES (?, ?, date('now', '-30 days'), date('now'))`,
		returnedItem, memberID,
	)
	require.NoError(t, err)

	count, err := repo.CountOverdue(context.Background(), 14)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "only the open 30-day-old loan is overdue")
}
