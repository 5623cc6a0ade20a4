package transactions

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes transaction HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a transaction HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type transactionResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"transaction_type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	ReferenceID string    `json:"reference_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// History lists the caller's transactions, newest first.
func (h *Handler) History(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}
	txs, err := h.service.History(c.UserContext(), uid)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	out := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, transactionResponse{
			ID:          tx.ID,
			Type:        tx.Type,
			Amount:      tx.Amount,
			Description: tx.Description,
			Status:      tx.Status,
			ReferenceID: tx.ReferenceID,
			CreatedAt:   tx.CreatedAt,
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"transactions": out})
}
