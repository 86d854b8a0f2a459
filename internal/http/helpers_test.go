package http

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/sdckl/library/internal/auth"
	"github.com/sdckl/library/internal/config"
	"github.com/sdckl/library/internal/database"
)

// testApp bundles the wired router with the collaborators tests assert on.
type testApp struct {
	router *gin.Engine
	db     *database.Database
	svc    *auth.Service
}

// stubTemplates replaces the real template files, which are an external
// collaborator, with minimal bodies that surface the data handlers pass in.
func stubTemplates() *template.Template {
	tmpl := template.New("")
	template.Must(tmpl.New("login.html").Parse(`login{{range .Flashes}}<{{.Message}}>{{end}}`))
	template.Must(tmpl.New("setup.html").Parse(`setup{{range .Flashes}}<{{.Message}}>{{end}}`))
	template.Must(tmpl.New("dashboard.html").Parse(`dashboard books={{.BookCount}}{{range .Flashes}}<{{.Message}}>{{end}}`))
	template.Must(tmpl.New("books.html").Parse(`books{{range .Books}}[{{.Title}}]{{end}}{{range .Flashes}}<{{.Message}}>{{end}}`))
	template.Must(tmpl.New("users.html").Parse(`users{{range .Users}}[{{.Email}}]{{end}}{{range .Flashes}}<{{.Message}}>{{end}}`))
	template.Must(tmpl.New("transactions.html").Parse(`transactions{{range .Transactions}}[{{.Type}}]{{end}}{{range .Flashes}}<{{.Message}}>{{end}}`))
	template.Must(tmpl.New("404.html").Parse(`not found`))
	template.Must(tmpl.New("500.html").Parse(`server error`))
	return tmpl
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})

	authCfg := config.Auth{
		SessionLifetime:  24 * time.Hour,
		BcryptCost:       4, // Low cost for faster tests
		SecureCookies:    false,
		MaxLoginAttempts: 5,
		LockoutDuration:  time.Hour,
	}

	svc := auth.NewService(db.DB, authCfg)

	sqlDB, err := db.DB.DB()
	require.NoError(t, err)

	sm, err := auth.NewSessionManager(sqlDB, authCfg)
	require.NoError(t, err)

	router := NewRouter(RouterConfig{
		Database:       db,
		AuthService:    svc,
		SessionManager: sm,
		AuthConfig:     authCfg,
		Version:        "test",
	})
	router.SetHTMLTemplate(stubTemplates())

	return &testApp{router: router, db: db, svc: svc}
}

// login authenticates through the real login route and returns the session cookies.
func (app *testApp) login(t *testing.T, email, password string) []*http.Cookie {
	t.Helper()

	w := app.postForm("/login", url.Values{
		"email":    {email},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code, "login should redirect on success")
	require.Equal(t, "/dashboard", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "login should set a session cookie")
	return cookies
}

// createUser seeds a user directly through the auth service.
func (app *testApp) createUser(t *testing.T, name, email, role, password string) {
	t.Helper()
	_, err := app.svc.CreateUser(name, email, role, password)
	require.NoError(t, err)
}

func (app *testApp) get(path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func (app *testApp) postForm(path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}
