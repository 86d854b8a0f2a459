package http

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_RootRedirectsToDashboard(t *testing.T) {
	app := setupTestApp(t)

	w := app.get("/", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestRouter_NotFound(t *testing.T) {
	app := setupTestApp(t)

	w := app.get("/no-such-page", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestRouter_GuardedRoutesRedirectAnonymous(t *testing.T) {
	app := setupTestApp(t)

	for _, path := range []string{"/dashboard", "/books", "/users", "/transactions"} {
		w := app.get(path, nil)
		assert.Equal(t, http.StatusFound, w.Code, "path %s", path)
		assert.Equal(t, "/login", w.Header().Get("Location"), "path %s", path)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	app := setupTestApp(t)
	app.createUser(t, "Alice", "a@x.com", "Librarian", "secret")

	w := app.postForm("/login", url.Values{
		"email":    {"a@x.com"},
		"password": {"wrong"},
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials, please try again.")
}

func TestLogin_MissingFields(t *testing.T) {
	app := setupTestApp(t)
	app.createUser(t, "Alice", "a@x.com", "Librarian", "secret")

	w := app.postForm("/login", url.Values{"email": {"a@x.com"}}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Email and password are required")
}

func TestLogout_ClearsSession(t *testing.T) {
	app := setupTestApp(t)
	app.createUser(t, "Alice", "a@x.com", "Librarian", "secret")
	cookies := app.login(t, "a@x.com", "secret")

	w := app.get("/logout", cookies)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))

	// The old session no longer opens protected routes
	w = app.get("/dashboard", cookies)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestLoginPage_RedirectsToSetupWhenEmpty(t *testing.T) {
	app := setupTestApp(t)

	w := app.get("/login", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/setup", w.Header().Get("Location"))
}

func TestSetup_CreatesAdministratorAndSignsIn(t *testing.T) {
	app := setupTestApp(t)

	w := app.postForm("/setup", url.Values{
		"name":             {"Admin"},
		"email":            {"admin@x.com"},
		"password":         {"secret"},
		"confirm_password": {"secret"},
	}, nil)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	// The fresh session opens protected routes
	dash := app.get("/dashboard", w.Result().Cookies())
	assert.Equal(t, http.StatusOK, dash.Code)

	// The bootstrap credentials work through the normal login
	_, err := app.svc.Authenticate("admin@x.com", "secret")
	assert.NoError(t, err)
}

func TestSetup_PasswordMismatch(t *testing.T) {
	app := setupTestApp(t)

	w := app.postForm("/setup", url.Values{
		"name":             {"Admin"},
		"email":            {"admin@x.com"},
		"password":         {"secret"},
		"confirm_password": {"different"},
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Passwords do not match")

	hasUsers, err := app.svc.HasUsers()
	require.NoError(t, err)
	assert.False(t, hasUsers)
}

func TestSetup_RedirectsOnceUsersExist(t *testing.T) {
	app := setupTestApp(t)
	app.createUser(t, "Alice", "a@x.com", "Librarian", "secret")

	w := app.get("/setup", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestLoginFlow_FlashShownOnce(t *testing.T) {
	app := setupTestApp(t)
	app.createUser(t, "Alice", "a@x.com", "Librarian", "secret")
	cookies := app.login(t, "a@x.com", "secret")

	w := app.get("/dashboard", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logged in successfully!")

	// The message was popped and does not repeat
	w = app.get("/dashboard", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Logged in successfully!")
}
