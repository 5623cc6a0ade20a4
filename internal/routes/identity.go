package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mandala-pay/mandala_pay/internal/identity"
	"github.com/mandala-pay/mandala_pay/internal/middleware"
	"github.com/mandala-pay/mandala_pay/internal/rbac"
)

// RegisterIdentityRoutes wires public account creation.
func RegisterIdentityRoutes(r fiber.Router, h *identity.Handler) {
	r.Post("/identity/register", h.Register)
}

// RegisterAdminRoutes wires administrative identity management. Role
// reassignment is narrowed to super_admin on top of the group's admin gate.
func RegisterAdminRoutes(r fiber.Router, h *identity.Handler) {
	r.Put("/users/:userId/role", middleware.RequireRoles(rbac.RoleSuperAdmin), h.AssignRole)
}
