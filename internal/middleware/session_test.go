package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"consulting-site/pkg/config"
	"consulting-site/pkg/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	session.Initialize(&cfg.Session)
	os.Exit(m.Run())
}

func runSession(t *testing.T, path string, cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)

	called := false
	handler := SessionMiddleware(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return c, rec, called
}

func TestSessionMiddlewareRejectsMissingCookie(t *testing.T) {
	_, rec, called := runSession(t, "/api/admin/stats", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestSessionMiddlewareRejectsInvalidToken(t *testing.T) {
	cookie := &http.Cookie{Name: session.CookieName(), Value: "not-a-token"}
	_, rec, called := runSession(t, "/api/admin/stats", cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestSessionMiddlewareAcceptsValidToken(t *testing.T) {
	token, err := session.GenerateToken("admin")
	require.NoError(t, err)

	cookie := &http.Cookie{Name: session.CookieName(), Value: token}
	c, rec, called := runSession(t, "/api/admin/stats", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Equal(t, "admin", c.Get("admin_username"))
}

func TestSessionMiddlewareAllowsLoginPaths(t *testing.T) {
	for _, path := range []string{"/admin/login", "/api/admin/login"} {
		_, rec, called := runSession(t, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.True(t, called, path)
	}

	// Anything else under the admin prefix still needs a session
	_, rec, called := runSession(t, "/api/admin/logout", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}
