package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mandala-pay/mandala_pay/internal/settings"
)

// RegisterSettingsRoutes wires user preference endpoints.
func RegisterSettingsRoutes(r fiber.Router, h *settings.Handler) {
	r.Get("/settings", h.Get)
	r.Put("/settings", h.Update)
}
