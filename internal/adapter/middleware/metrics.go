package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// DurationObserver records one finished HTTP request.
type DurationObserver interface {
	ObserveHTTP(method, route string, code int, d time.Duration)
}

// Metrics times every request against its registered route pattern, so
// /applications/:id stays one series.
func Metrics(obs DurationObserver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			obs.ObserveHTTP(c.Request().Method, route, c.Response().Status, time.Since(start))
			return nil
		}
	}
}
