package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mandala-pay/mandala_pay/internal/security"
)

// RegisterSecurityRoutes wires transaction PIN management.
func RegisterSecurityRoutes(r fiber.Router, h *security.Handler) {
	r.Post("/security/pin", h.SetPIN)
	r.Post("/security/pin/verify", h.VerifyPIN)
	r.Put("/security/two-factor", h.SetTwoFactor)
}
