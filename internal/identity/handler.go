package identity

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mandala-pay/mandala_pay/internal/rbac"
)

// Handler exposes identity endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs an identity HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// Register handles account creation.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	user, err := h.service.Register(c.UserContext(), Credentials{Email: req.Email, Password: req.Password, FullName: req.FullName})
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"user_id":   user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
	})
}

type assignRoleRequest struct {
	Role string `json:"role"`
}

// AssignRole reassigns a user's role. The route is gated to super_admin.
func (h *Handler) AssignRole(c *fiber.Ctx) error {
	var req assignRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	role, err := rbac.ParseRole(req.Role)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	userID := c.Params("userId")
	if err := h.service.AssignRole(c.UserContext(), userID, role); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"user_id": userID, "role": role.String()})
}
