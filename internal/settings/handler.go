package settings

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes settings HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a settings HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type settingsPayload struct {
	DarkMode           bool   `json:"dark_mode"`
	Language           string `json:"language"`
	EmailNotifications bool   `json:"email_notifications"`
	PushNotifications  bool   `json:"push_notifications"`
	TransactionAlerts  bool   `json:"transaction_alerts"`
}

// Get returns the caller's preferences.
func (h *Handler) Get(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}
	prefs, err := h.service.Get(c.UserContext(), uid)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(settingsPayload{
		DarkMode:           prefs.DarkMode,
		Language:           prefs.Language,
		EmailNotifications: prefs.EmailNotifications,
		PushNotifications:  prefs.PushNotifications,
		TransactionAlerts:  prefs.TransactionAlerts,
	})
}

// Update replaces the caller's preferences.
func (h *Handler) Update(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}
	var req settingsPayload
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	prefs, err := h.service.Update(c.UserContext(), uid, UpdateInput{
		DarkMode:           req.DarkMode,
		Language:           req.Language,
		EmailNotifications: req.EmailNotifications,
		PushNotifications:  req.PushNotifications,
		TransactionAlerts:  req.TransactionAlerts,
	})
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(settingsPayload{
		DarkMode:           prefs.DarkMode,
		Language:           prefs.Language,
		EmailNotifications: prefs.EmailNotifications,
		PushNotifications:  prefs.PushNotifications,
		TransactionAlerts:  prefs.TransactionAlerts,
	})
}
