package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the access JWT for page
// requests.
const SessionCookieName = "clara_session"

// SessionGate protects page routes. A request without a valid session
// cookie is redirected to /login and the page handler never runs. Any
// verification failure counts as "not logged in"; there is no retry.
func SessionGate(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(SessionCookieName)
			if err != nil || ck.Value == "" {
				return c.Redirect(http.StatusFound, "/login")
			}
			userID, role, ok := parseClaims(ck.Value, secret)
			if !ok {
				return c.Redirect(http.StatusFound, "/login")
			}
			c.Set("user_id", userID)
			c.Set("role", role)
			return next(c)
		}
	}
}

// RedirectAuthenticated is the inverse gate for the login page: a
// visitor who already holds a valid session is sent straight to the
// dashboard instead of seeing the login form again.
func RedirectAuthenticated(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if ck, err := c.Cookie(SessionCookieName); err == nil && ck.Value != "" {
				if _, _, ok := parseClaims(ck.Value, secret); ok {
					return c.Redirect(http.StatusFound, "/dashboard")
				}
			}
			return next(c)
		}
	}
}
