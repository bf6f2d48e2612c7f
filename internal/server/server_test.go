package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vulnsocial/internal/config"
	"vulnsocial/internal/flash"
	"vulnsocial/internal/seed"
	"vulnsocial/internal/session"
	"vulnsocial/internal/store"
)

// testEnv wires a server with a freshly seeded store and direct access to
// its dependencies, so tests can assert on store and session state after a
// request.
type testEnv struct {
	srv   *Server
	app   *fiber.App
	store *store.Store
	sess  *session.Manager
	flash *flash.Center
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st := store.New()
	require.NoError(t, seed.Apply(st, seed.Options{}))

	sess := session.NewManager()
	center := flash.NewCenter(time.Minute)

	cfg := &config.Config{Port: "0", Env: "test", DebugAPI: true}
	srv, err := NewServerWithDeps(cfg, st, sess, center)
	require.NoError(t, err)

	app := fiber.New()
	srv.SetupRoutes(app)

	return &testEnv{srv: srv, app: app, store: st, sess: sess, flash: center}
}

func (e *testEnv) get(t *testing.T, target string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) postForm(t *testing.T, target string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) login(t *testing.T, username, password string) {
	t.Helper()
	resp := e.postForm(t, "/login", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	require.NotNil(t, e.sess.Current(), "login did not establish a session")
}

func bodyString(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func flashTexts(c *flash.Center) []string {
	var out []string
	for _, m := range c.Active() {
		out = append(out, m.Text)
	}
	return out
}

func TestLivenessCheck(t *testing.T) {
	env := newTestEnv(t)

	resp := env.get(t, "/health/live")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestReadinessCheck(t *testing.T) {
	t.Run("SeededStoreIsHealthy", func(t *testing.T) {
		env := newTestEnv(t)

		resp := env.get(t, "/health/ready")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, bodyString(t, resp), `"healthy"`)
	})

	t.Run("EmptyStoreIsUnhealthy", func(t *testing.T) {
		srv, err := NewServerWithDeps(
			&config.Config{Port: "0", Env: "test"},
			store.New(), session.NewManager(), flash.NewCenter(time.Minute),
		)
		require.NoError(t, err)

		app := fiber.New()
		srv.SetupRoutes(app)

		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestDebugRoutesDisabled(t *testing.T) {
	st := store.New()
	require.NoError(t, seed.Apply(st, seed.Options{}))

	srv, err := NewServerWithDeps(
		&config.Config{Port: "0", Env: "test", DebugAPI: false},
		st, session.NewManager(), flash.NewCenter(time.Minute),
	)
	require.NoError(t, err)

	app := fiber.New()
	srv.SetupRoutes(app)

	req := httptest.NewRequest(http.MethodGet, "/api/debug/users", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
