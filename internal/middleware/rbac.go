package middleware

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mandala-pay/mandala_pay/internal/rbac"
)

// RequireRoles guards a route with an allow-list of roles. An unauthenticated
// caller gets 401 with the requested path echoed for post-login return; an
// authenticated caller outside the allow-list gets 403 with no hint of which
// role would have sufficed. super_admin passes any allow-list. No roles means
// any authenticated identity.
func RequireRoles(allowed ...rbac.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		roleName, _ := c.Locals("role").(string)

		req := rbac.Request{
			IdentityPresent: uid != "",
			AllowedRoles:    allowed,
			Path:            c.Path(),
		}
		if role, err := rbac.ParseRole(roleName); err == nil {
			req.Role = role
			req.RoleKnown = true
		}

		out := rbac.Decide(req)
		switch out.Decision {
		case rbac.DecisionAllowed:
			return c.Next()
		case rbac.DecisionAuthRedirect:
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error":       "authentication required",
				"return_path": out.ReturnPath,
			})
		default:
			return c.Status(http.StatusForbidden).JSON(fiber.Map{
				"error": "access denied",
			})
		}
	}
}
