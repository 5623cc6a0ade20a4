package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mandala-pay/mandala_pay/internal/identity"
	"github.com/mandala-pay/mandala_pay/internal/rbac"
)

// Handler exposes auth endpoints for login/refresh/logout.
type Handler struct {
	ids   *identity.Service
	svc   *Service
	roles rbac.Store
}

// NewHandler builds an auth HTTP handler.
func NewHandler(ids *identity.Service, svc *Service, roles rbac.Store) *Handler {
	return &Handler{ids: ids, svc: svc, roles: roles}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Role         string `json:"role,omitempty"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Login validates credentials, resolves the session role once, and returns a
// token pair carrying that role.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	user, err := h.ids.Authenticate(c.UserContext(), identity.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		return fiber.NewError(http.StatusUnauthorized, err.Error())
	}

	// One resolver per session: login is the session-change event.
	resolver := rbac.NewResolver(h.roles)
	epoch := resolver.SessionChanged(user.ID)
	role, known := resolver.Resolve(c.UserContext(), epoch)
	if !known {
		// Role lookup failed; the token carries no role and every guarded
		// resource will deny until a fresh login succeeds.
		role = ""
	}

	pair, err := h.svc.Login(user, role)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(loginResponse{
		UserID:       user.ID,
		Email:        user.Email,
		FullName:     user.FullName,
		Role:         role.String(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh issues a new access token using a valid refresh token.
func (h *Handler) Refresh(c *fiber.Ctx) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	token, exp, err := h.svc.Refresh(c.UserContext(), req.RefreshToken)
	if err != nil {
		return fiber.NewError(http.StatusUnauthorized, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"access_token": token, "expires_in": exp})
}

// Logout invalidates existing tokens by bumping the token version.
func (h *Handler) Logout(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}
	if err := h.svc.Logout(c.UserContext(), uid); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "logged_out"})
}
