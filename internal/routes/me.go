package routes

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mandala-pay/mandala_pay/internal/identity"
	"github.com/mandala-pay/mandala_pay/internal/rbac"
)

// RegisterMeRoute exposes the current user's profile with the resolved role
// for downstream display (e.g. greeting by role).
func RegisterMeRoute(r fiber.Router, idRepo identity.Repository) {
	r.Get("/me", func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		if uid == "" {
			return c.SendStatus(http.StatusUnauthorized)
		}
		user, err := idRepo.FindByID(c.UserContext(), uid)
		if err != nil {
			return fiber.NewError(http.StatusUnauthorized, "user not found")
		}
		role := user.Role
		if role == "" {
			role = rbac.RoleVisitor
		}
		return c.JSON(fiber.Map{
			"user_id":    user.ID,
			"email":      user.Email,
			"full_name":  user.FullName,
			"avatar_url": user.AvatarURL,
			"role":       role.String(),
			"created_at": user.CreatedAt,
		})
	})
}
