package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mandala-pay/mandala_pay/internal/balance"
)

// RegisterBalanceRoutes wires balance endpoints. Refresh persists accrued
// growth; the GET is a non-mutating view.
func RegisterBalanceRoutes(r fiber.Router, h *balance.Handler) {
	r.Get("/balance", h.Get)
	r.Get("/balance/projection", h.Projection)
	r.Post("/balance/refresh", h.Refresh)
}
