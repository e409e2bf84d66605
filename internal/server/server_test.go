package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"inkwell/internal/config"
	"inkwell/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestApp builds a full application around an in-memory SQLite database
// and the real view templates.
func setupTestApp(t *testing.T) (*fiber.App, *Server, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive across the pool.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		Port:          "5000",
		Env:           "test",
		DBDriver:      "sqlite",
		DBPath:        ":memory:",
		SessionCookie: "inkwell_session",
	}

	srv, err := newServer(cfg, db)
	require.NoError(t, err)

	engine := html.New("../../views", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	srv.SetupRoutes(app)

	return app, srv, db
}

// browser carries cookies between requests like a real client would.
type browser struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, app *fiber.App) *browser {
	return &browser{t: t, app: app, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(req *http.Request) *http.Response {
	b.t.Helper()

	for _, ck := range b.cookies {
		req.AddCookie(ck)
	}

	resp, err := b.app.Test(req, -1)
	require.NoError(b.t, err)

	for _, ck := range resp.Cookies() {
		b.cookies[ck.Name] = ck
	}
	return resp
}

func (b *browser) get(path string) *http.Response {
	b.t.Helper()
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) postForm(path string, values url.Values) *http.Response {
	b.t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}
