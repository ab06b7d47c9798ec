package session

import (
	"context"
	"encoding/hex"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citylib/frontdesk/internal/config"
	"github.com/citylib/frontdesk/internal/database"
)

func setupManager(t *testing.T) (*Manager, func()) {
	t.Helper()

	dbPath := "./test_session_" + t.Name() + ".db"
	db, err := database.New(dbPath)
	require.NoError(t, err)

	m, err := NewManager(db.DB, config.Session{Lifetime: time.Hour})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return m, cleanup
}

func TestFlashQueueAndPop(t *testing.T) {
	m, cleanup := setupManager(t)
	defer cleanup()

	ctx, err := m.Load(context.Background(), "")
	require.NoError(t, err)
	r := httptest.NewRequest("GET", "/", nil).WithContext(ctx)

	assert.Empty(t, m.PopFlashes(r))

	m.Flash(r, "first")
	m.Flash(r, "second")
	assert.Equal(t, []string{"first", "second"}, m.PopFlashes(r))

	// Popping drains the queue.
	assert.Empty(t, m.PopFlashes(r))
}

func TestNewManagerCreatesSessionsTable(t *testing.T) {
	dbPath := "./test_session_table.db"
	db, err := database.New(dbPath)
	require.NoError(t, err)
	defer func() {
		db.Close()
		os.Remove(dbPath)
	}()

	_, err = NewManager(db.DB, config.Session{Lifetime: time.Hour})
	require.NoError(t, err)

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='sessions'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "sessions", name)
}

func TestGenerateSecret(t *testing.T) {
	secret, err := GenerateSecret()
	require.NoError(t, err)

	decoded, err := hex.DecodeString(secret)
	require.NoError(t, err)
	assert.Len(t, decoded, 32)

	other, err := GenerateSecret()
	require.NoError(t, err)
	assert.NotEqual(t, secret, other)
}
