package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mandala-pay/mandala_pay/internal/auth"
)

// RegisterAuthRoutes wires authentication endpoints.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, rateLimiter fiber.Handler) {
	group := r.Group("/auth")
	if rateLimiter != nil {
		group.Post("/login", rateLimiter, h.Login)
	} else {
		group.Post("/login", h.Login)
	}
	group.Post("/refresh", h.Refresh)
}

// RegisterLogoutRoute wires logout under the authenticated group so the
// caller identity comes from the verified token.
func RegisterLogoutRoute(r fiber.Router, h *auth.Handler) {
	r.Post("/auth/logout", h.Logout)
}
