package preview

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// DurationHeader carries the handler time of every response.
const DurationHeader = "X-Apidocs-Duration"

// loggerMiddleware logs each request and sets the duration header before the
// response is written.
func loggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		c.Response().Before(func() {
			duration := float64(time.Since(start).Microseconds()) / 1000
			c.Response().Header().Set(DurationHeader, fmt.Sprintf("%.3fms", duration))
		})

		err := next(c)

		slog.Debug(fmt.Sprintf("Incoming HTTP request: %s", c.Request().URL.String()),
			slog.String("method", c.Request().Method),
			slog.String("route", c.Path()),
			slog.String("duration", time.Since(start).String()),
		)
		return err
	}
}
