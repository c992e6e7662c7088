// Package router defines how HTTP routes are registered for the app.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/clara-app/clara-server/internal/config"
	"github.com/clara-app/clara-server/internal/handler"
	"github.com/clara-app/clara-server/internal/middleware"
)

// Handlers groups the page and API handlers wired in main.
type Handlers struct {
	Auth      *handler.AuthHandler
	Articles  *handler.ArticleHandler
	Dashboard *handler.DashboardHandler
}

// Register wires every route: the health check, the page controllers
// with their session gates and the JSON API under /v1.
func Register(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client) {
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	e.GET("/healthz", handler.Health)

	registerPages(e, h, cfg)
	registerAPI(e, h, cfg, rdb)
}

// registerPages wires the page controllers. Protected pages sit behind
// the session gate, which redirects anonymous visitors to /login; the
// login page itself bounces authenticated visitors to /dashboard.
func registerPages(e *echo.Echo, h Handlers, cfg config.Config) {
	e.GET("/login", handler.LoginPage, middleware.RedirectAuthenticated(cfg.JWTSecret))

	pages := e.Group("", middleware.SessionGate(cfg.JWTSecret))
	pages.GET("/dashboard", h.Dashboard.Dashboard)
	pages.GET("/article", h.Articles.ArticlePage)

	// The all-articles page is readable without a session.
	e.GET("/articles", h.Articles.ListArticles)
}

// registerAPI wires the JSON API. Auth endpoints are open (login is
// rate limited); everything else requires a valid access token.
func registerAPI(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client) {
	rl := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	listCache := middleware.ResponseCache(config.LoadCacheConfig(), rdb)

	open := e.Group("/v1/auth")
	open.POST("/register", h.Auth.Register)
	open.POST("/login", h.Auth.Login, rl)
	open.POST("/refresh", h.Auth.Refresh)

	// The article list is public-read and identical for every viewer,
	// so it lives outside the JWT gate with the response cache on top.
	e.GET("/v1/articles", h.Articles.ListArticles, listCache)

	auth := e.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))
	auth.POST("/auth/logout", h.Auth.Logout)
	auth.GET("/me", h.Auth.Me)

	auth.POST("/articles/:id/pin", h.Articles.Pin)
	auth.DELETE("/articles/:id/pin", h.Articles.Unpin)
	auth.POST("/articles/:id/flags", h.Articles.SubmitFlag)

	// Role gate is a cheap pre-filter; the handler re-reads the
	// profile and fails closed regardless.
	auth.POST("/articles/:id/important", h.Articles.ToggleImportant,
		middleware.RequireRole("admin"))
}
