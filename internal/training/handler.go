package training

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes training HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a training HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type entryResponse struct {
	DayNumber      int        `json:"day_number"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Completed      bool       `json:"completed"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
}

// List returns the caller's training entries ordered by day.
func (h *Handler) List(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}
	entries, err := h.service.List(c.UserContext(), uid)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryResponse{
			DayNumber:      e.DayNumber,
			Title:          e.Title,
			Description:    e.Description,
			Completed:      e.Completed,
			CompletionDate: e.CompletionDate,
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"entries": out})
}

// Progress summarizes the caller's progress through the program.
func (h *Handler) Progress(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}
	summary, err := h.service.Progress(c.UserContext(), uid)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"completed_days": summary.CompletedDays,
		"total_days":     summary.TotalDays,
		"percent":        summary.Percent,
		"current_day":    summary.CurrentDay,
	})
}

// CompleteDay marks one day of the program completed.
func (h *Handler) CompleteDay(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}
	day, err := c.ParamsInt("day")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid day")
	}
	entry, err := h.service.CompleteDay(c.UserContext(), uid, day, time.Now())
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusOK).JSON(entryResponse{
		DayNumber:      entry.DayNumber,
		Title:          entry.Title,
		Description:    entry.Description,
		Completed:      entry.Completed,
		CompletionDate: entry.CompletionDate,
	})
}
