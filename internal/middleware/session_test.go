package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/clara-app/clara-server/internal/utils"
)

const testSecret = "test-secret"

func runGate(t *testing.T, mw echo.MiddlewareFunc, cookie string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	}
	assert.NoError(t, mw(next)(c))
	return rec, reached
}

func TestSessionGate(t *testing.T) {
	gate := SessionGate(testSecret)

	t.Run("no cookie redirects to login", func(t *testing.T) {
		rec, reached := runGate(t, gate, "")
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
		assert.False(t, reached, "protected handler must not run")
	})

	t.Run("garbage token redirects to login", func(t *testing.T) {
		rec, reached := runGate(t, gate, "not-a-jwt")
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
		assert.False(t, reached)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		tok, err := utils.NewAccessToken("other-secret", "user-1", "member", 15)
		assert.NoError(t, err)
		rec, reached := runGate(t, gate, tok.Token)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.False(t, reached)
	})

	t.Run("valid session reaches the handler with claims set", func(t *testing.T) {
		tok, err := utils.NewAccessToken(testSecret, "user-1", "admin", 15)
		assert.NoError(t, err)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tok.Token})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		next := func(c echo.Context) error {
			assert.Equal(t, "user-1", c.Get("user_id"))
			assert.Equal(t, "admin", c.Get("role"))
			return c.NoContent(http.StatusOK)
		}
		assert.NoError(t, SessionGate(testSecret)(next)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRedirectAuthenticated(t *testing.T) {
	mw := RedirectAuthenticated(testSecret)

	t.Run("anonymous visitor sees the login page", func(t *testing.T) {
		rec, reached := runGate(t, mw, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, reached)
	})

	t.Run("authenticated visitor is sent to the dashboard", func(t *testing.T) {
		tok, err := utils.NewAccessToken(testSecret, "user-1", "member", 15)
		assert.NoError(t, err)
		rec, reached := runGate(t, mw, tok.Token)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
		assert.False(t, reached)
	})

	t.Run("expired session falls through to the form", func(t *testing.T) {
		tok, err := utils.NewAccessToken(testSecret, "user-1", "member", -1)
		assert.NoError(t, err)
		rec, reached := runGate(t, mw, tok.Token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, reached)
	})
}

func TestJWTAuth(t *testing.T) {
	t.Run("missing token is 401", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/v1/articles/a1/pin", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
		assert.NoError(t, JWTAuth(testSecret)(next)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bearer token sets claims", func(t *testing.T) {
		tok, err := utils.NewAccessToken(testSecret, "user-1", "member", 15)
		assert.NoError(t, err)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/v1/articles/a1/pin", nil)
		req.Header.Set("Authorization", "Bearer "+tok.Token)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		next := func(c echo.Context) error {
			assert.Equal(t, "user-1", c.Get("user_id"))
			return c.NoContent(http.StatusOK)
		}
		assert.NoError(t, JWTAuth(testSecret)(next)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("session cookie works for page-issued API calls", func(t *testing.T) {
		tok, err := utils.NewAccessToken(testSecret, "user-1", "member", 15)
		assert.NoError(t, err)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/v1/articles/a1/pin", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tok.Token})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
		assert.NoError(t, JWTAuth(testSecret)(next)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	mw := RequireRole("admin")

	run := func(role interface{}) *httptest.ResponseRecorder {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/v1/articles/a1/important", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != nil {
			c.Set("role", role)
		}
		next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
		assert.NoError(t, mw(next)(c))
		return rec
	}

	assert.Equal(t, http.StatusOK, run("admin").Code)
	assert.Equal(t, http.StatusForbidden, run("member").Code)
	assert.Equal(t, http.StatusForbidden, run(nil).Code)
}
