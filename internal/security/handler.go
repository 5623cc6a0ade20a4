package security

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes security HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a security HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type pinRequest struct {
	PIN string `json:"pin"`
}

// SetPIN configures or replaces the caller's transaction PIN.
func (h *Handler) SetPIN(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}
	var req pinRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.service.SetPIN(c.UserContext(), uid, req.PIN); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "pin_set"})
}

// VerifyPIN checks a PIN without performing any transaction.
func (h *Handler) VerifyPIN(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}
	var req pinRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.service.VerifyPIN(c.UserContext(), uid, req.PIN); err != nil {
		if errors.Is(err, ErrInvalidPIN) || errors.Is(err, ErrPINNotSet) {
			return fiber.NewError(http.StatusForbidden, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "valid"})
}

type twoFactorRequest struct {
	Enabled bool `json:"enabled"`
}

// SetTwoFactor toggles the caller's two-factor preference.
func (h *Handler) SetTwoFactor(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}
	var req twoFactorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.service.SetTwoFactor(c.UserContext(), uid, req.Enabled); err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"two_factor_enabled": req.Enabled})
}
