package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	router, _, cleanup := setupTestRouter(t)
	defer cleanup()

	w := getPage(router, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "test", health.Version)
	assert.Equal(t, "ok", health.Checks["database"])
}

func TestHealthEndpoint_ClosedDatabaseIsUnhealthy(t *testing.T) {
	router, db, cleanup := setupTestRouter(t)
	defer cleanup()

	require.NoError(t, db.Close())

	w := getPage(router, "/health", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "unhealthy", health.Status)
}
