package notification

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes notification HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a notification HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type notificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"notification_type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// List returns the caller's notifications, newest first.
func (h *Handler) List(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}
	items, err := h.service.List(c.UserContext(), uid)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	out := make([]notificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, notificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"notifications": out})
}

// MarkRead flags one of the caller's notifications as read.
func (h *Handler) MarkRead(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}
	id := c.Params("notificationId")
	if err := h.service.MarkRead(c.UserContext(), id, uid); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "read"})
}
