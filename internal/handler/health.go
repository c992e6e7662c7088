package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health reports liveness for load balancers and monitoring.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// LoginPage is the page descriptor behind GET /login. The redirect
// middleware has already bounced authenticated visitors to the
// dashboard, so reaching this handler means the form should render.
func LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"page": "login"})
}
