package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mandala-pay/mandala_pay/internal/middleware"
	"github.com/mandala-pay/mandala_pay/internal/network"
	"github.com/mandala-pay/mandala_pay/internal/rbac"
)

// RegisterNetworkRoutes wires the binary downline endpoints. Viewing is open
// to any authenticated identity; placing members is an admin operation.
func RegisterNetworkRoutes(r fiber.Router, h *network.Handler) {
	r.Get("/network", h.Tree)
	r.Get("/network/preview", h.Preview)
	r.Post("/network/members", middleware.RequireRoles(rbac.RoleAdmin), h.AddMember)
}
