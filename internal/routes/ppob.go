package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mandala-pay/mandala_pay/internal/ppob"
)

// RegisterPPOBRoutes wires the bill-payment catalog and payment endpoints.
// Payments are wrapped in the idempotency middleware when Redis is available.
func RegisterPPOBRoutes(r fiber.Router, h *ppob.Handler, idem fiber.Handler) {
	r.Get("/ppob/services", h.List)
	if idem != nil {
		r.Post("/ppob/pay", idem, h.Pay)
	} else {
		r.Post("/ppob/pay", h.Pay)
	}
}
