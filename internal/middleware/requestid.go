package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an identifier, honoring one the caller
// already sent. The id is echoed in the response header and stored in locals
// for the audit log.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
			c.Set(requestIDHeader, id)
		}
		c.Locals(requestIDHeader, id)
		return c.Next()
	}
}
