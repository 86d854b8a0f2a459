package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_Status(t *testing.T) {
	app := setupTestApp(t)

	w := app.get("/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "test", health.Version)
	assert.Equal(t, "ok", health.Checks["database"])
}

func TestHealth_IsPublic(t *testing.T) {
	app := setupTestApp(t)

	// No session cookie and no redirect: health stays reachable
	w := app.get("/health", nil)

	assert.NotEqual(t, http.StatusFound, w.Code)
}
