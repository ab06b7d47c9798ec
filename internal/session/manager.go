// Package session owns everything session-scoped for the transport layer:
// the scs-backed session manager, the transient flash message queue, CSRF
// protection and security headers. The workflow core never touches any of
// this; it only returns structured outcomes.
package session

import (
	"crypto/rand"
	"database/sql"
	"encoding/gob"
	"encoding/hex"
	"net/http"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"

	"github.com/citylib/frontdesk/internal/config"
)

const flashKey = "flash"

func init() {
	// Flash messages are stored as a slice so one request can queue several.
	gob.Register([]string{})
}

// Manager wraps scs.SessionManager with flash message helpers.
type Manager struct {
	*scs.SessionManager
}

// NewManager creates a session manager persisting sessions in the given
// SQLite handle.
func NewManager(sqlDB *sql.DB, cfg config.Session) (*Manager, error) {
	// Create sessions table if it doesn't exist
	_, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		expiry REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`)
	if err != nil {
		return nil, err
	}

	sm := scs.New()
	sm.Store = sqlite3store.New(sqlDB)
	sm.Lifetime = cfg.Lifetime

	sm.Cookie.Name = "session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteStrictMode
	sm.Cookie.Path = "/"

	return &Manager{SessionManager: sm}, nil
}

// Flash queues a message to be shown on the next page render.
func (m *Manager) Flash(r *http.Request, message string) {
	queued, _ := m.Get(r.Context(), flashKey).([]string)
	m.Put(r.Context(), flashKey, append(queued, message))
}

// PopFlashes returns all queued flash messages and clears the queue.
func (m *Manager) PopFlashes(r *http.Request) []string {
	queued, _ := m.Pop(r.Context(), flashKey).([]string)
	return queued
}

// GenerateSecret returns a fresh hex-encoded 32-byte secret for CSRF
// protection when none is configured.
func GenerateSecret() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
