package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/mandala-pay/mandala_pay/internal/rbac"
)

// identityStub injects locals the way JWTAuth would after a valid token.
func identityStub(userID, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID != "" {
			c.Locals("user_id", userID)
		}
		if role != "" {
			c.Locals("role", role)
		}
		return c.Next()
	}
}

func gateApp(userID, role string, allowed ...rbac.Role) *fiber.App {
	app := fiber.New()
	app.Get("/admin/members", identityStub(userID, role), RequireRoles(allowed...), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequireRolesUnauthenticatedGets401WithReturnPath(t *testing.T) {
	app := gateApp("", "", rbac.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/members", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	var payload map[string]string
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if payload["return_path"] != "/admin/members" {
		t.Fatalf("return path not echoed: %+v", payload)
	}
}

func TestRequireRolesVisitorGets403WithoutRoleHints(t *testing.T) {
	app := gateApp("user-1", "visitor", rbac.RoleAdmin, rbac.RoleSuperAdmin)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/members", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	var payload map[string]string
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if payload["error"] != "access denied" {
		t.Fatalf("unexpected error body: %+v", payload)
	}
	if _, leaked := payload["required_roles"]; leaked {
		t.Fatal("response leaked the allow-list")
	}
}

func TestRequireRolesAdmitsAllowedRole(t *testing.T) {
	app := gateApp("user-1", "admin", rbac.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/members", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRequireRolesSuperAdminPassesAnyGate(t *testing.T) {
	app := gateApp("user-1", "super_admin", rbac.RoleVisitor)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/members", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRequireRolesUnknownRoleFailsClosed(t *testing.T) {
	app := gateApp("user-1", "owner", rbac.RoleVisitor)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/members", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for unknown role, got %d", resp.StatusCode)
	}
}

func TestRequireRolesEmptyListAdmitsAnyAuthenticated(t *testing.T) {
	app := gateApp("user-1", "visitor")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/members", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
