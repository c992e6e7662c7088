package middleware

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/clara-app/clara-server/internal/config"
)

// bodyRecorder captures the response body while forwarding it to the
// client, so a successful response can be stored after the fact.
type bodyRecorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	limit  int
}

func (w *bodyRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	if w.buf.Len()+len(b) <= w.limit {
		w.buf.Write(b)
	} else {
		// Oversized responses are served but never cached.
		w.buf.Reset()
		w.limit = -1
	}
	return w.ResponseWriter.Write(b)
}

// ResponseCache caches 200 JSON responses for GET routes it wraps.
// The article list is the intended consumer: it is identical for every
// viewer and re-fetched on every page load, so a short shared TTL
// absorbs most of the read traffic. Redis being down disables caching
// silently.
func ResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
			key := fmt.Sprintf("%s:%x", cfg.Prefix, sum[:])

			ctx := c.Request().Context()
			if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.JSONBlob(http.StatusOK, body)
			}

			rec := &bodyRecorder{ResponseWriter: c.Response().Writer, limit: cfg.MaxBodyBytes}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				return err
			}
			status := rec.status
			if status == 0 {
				status = c.Response().Status
			}
			if status == http.StatusOK && rec.buf.Len() > 0 {
				if err := rdb.Set(ctx, key, rec.buf.Bytes(), cfg.TTL).Err(); err != nil {
					c.Logger().Warnf("cache: store failed for key=%s: %v", key, err)
				}
			}
			return nil
		}
	}
}
