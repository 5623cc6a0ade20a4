package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mandala-pay/mandala_pay/internal/notification"
)

// RegisterNotificationRoutes wires in-app notification endpoints.
func RegisterNotificationRoutes(r fiber.Router, h *notification.Handler) {
	r.Get("/notifications", h.List)
	r.Post("/notifications/:notificationId/read", h.MarkRead)
}
