package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Audit writes one structured log line per request with method, path,
// status, and latency, tagged with the request id when present.
func Audit(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		attrs := []any{
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", c.Response().StatusCode()),
			slog.Duration("latency", time.Since(start)),
		}
		if id, _ := c.Locals(requestIDHeader).(string); id != "" {
			attrs = append(attrs, slog.String("request_id", id))
		}

		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
			logger.Error("request", attrs...)
			return err
		}
		logger.Info("request", attrs...)
		return nil
	}
}
