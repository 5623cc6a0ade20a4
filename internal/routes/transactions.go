package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mandala-pay/mandala_pay/internal/transactions"
)

// RegisterTransactionRoutes wires transaction history.
func RegisterTransactionRoutes(r fiber.Router, h *transactions.Handler) {
	r.Get("/transactions", h.History)
}
