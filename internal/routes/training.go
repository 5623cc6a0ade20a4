package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mandala-pay/mandala_pay/internal/training"
)

// RegisterTrainingRoutes wires the training program endpoints.
func RegisterTrainingRoutes(r fiber.Router, h *training.Handler) {
	r.Get("/training", h.List)
	r.Get("/training/progress", h.Progress)
	r.Post("/training/days/:day/complete", h.CompleteDay)
}
