package balance

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes balance HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a balance HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type recordResponse struct {
	UserID           string    `json:"user_id"`
	LockedBalance    float64   `json:"locked_balance"`
	AutomaticBalance float64   `json:"automatic_balance"`
	GrowthRate       float64   `json:"growth_rate"`
	LastUpdated      time.Time `json:"last_updated"`
}

func toResponse(rec Record) recordResponse {
	return recordResponse{
		UserID:           rec.UserID,
		LockedBalance:    rec.LockedBalance,
		AutomaticBalance: rec.AutomaticBalance,
		GrowthRate:       rec.GrowthRate,
		LastUpdated:      rec.LastUpdated,
	}
}

// Refresh recomputes and persists the caller's authoritative balance.
func (h *Handler) Refresh(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}
	rec, err := h.service.Refresh(c.UserContext(), uid, time.Now())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(toResponse(rec))
}

// Projection returns what the dashboard ticker will display a number of
// seconds from now. It seeds a display from the current authoritative record
// and extrapolates it forward; nothing is persisted.
func (h *Handler) Projection(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}
	seconds := c.QueryInt("seconds", 60)
	if seconds < 0 {
		return fiber.NewError(http.StatusBadRequest, "seconds must not be negative")
	}
	rec, err := h.service.Peek(c.UserContext(), uid, time.Now())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	d := NewDisplay(rec)
	d.Tick(time.Duration(seconds) * time.Second)
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"seconds":           seconds,
		"automatic_balance": d.Automatic(),
		"locked_balance":    d.Locked(),
		"growth_rate":       rec.GrowthRate,
	})
}

// Get returns the caller's balance as of now without persisting the growth.
func (h *Handler) Get(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}
	rec, err := h.service.Peek(c.UserContext(), uid, time.Now())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(toResponse(rec))
}
