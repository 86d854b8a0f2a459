package http

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_BookCount(t *testing.T) {
	app := setupTestApp(t)
	app.createUser(t, "Alice", "a@x.com", "Librarian", "secret")
	cookies := app.login(t, "a@x.com", "secret")

	w := app.get("/dashboard", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "books=0")

	resp := app.postForm("/books", url.Values{
		"title":  {"1984"},
		"author": {"George Orwell"},
		"year":   {"1949"},
	}, cookies)
	require.Equal(t, http.StatusOK, resp.Code)

	w = app.get("/dashboard", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "books=1")
}

func TestDashboard_RequiresSession(t *testing.T) {
	app := setupTestApp(t)

	w := app.get("/dashboard", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
