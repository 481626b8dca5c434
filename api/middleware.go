package api

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLogger logs every request and its outcome through zerolog.
func RequestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			err := next(c)
			duration := time.Since(start)

			if err != nil {
				c.Error(err)
				logger.Error().
					Err(err).
					Str("method", req.Method).
					Str("path", req.URL.Path).
					Dur("duration", duration).
					Msg("Request failed")
				return nil
			}

			logger.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", c.Response().Status).
				Dur("duration", duration).
				Msg("Request completed")
			return nil
		}
	}
}
