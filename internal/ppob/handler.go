package ppob

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mandala-pay/mandala_pay/internal/security"
)

// Handler exposes PPOB HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a PPOB HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type serviceResponse struct {
	ID          string `json:"id"`
	ServiceType string `json:"service_type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// List returns the catalog of payable services.
func (h *Handler) List(c *fiber.Ctx) error {
	services, err := h.service.List(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	out := make([]serviceResponse, 0, len(services))
	for _, svc := range services {
		out = append(out, serviceResponse{
			ID:          svc.ID,
			ServiceType: svc.ServiceType,
			Name:        svc.Name,
			Description: svc.Description,
			Icon:        svc.Icon,
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"services": out})
}

type payRequest struct {
	ServiceType string  `json:"service_type"`
	CustomerRef string  `json:"customer_ref"`
	Amount      float64 `json:"amount"`
	PIN         string  `json:"pin"`
}

// Pay executes a PIN-gated bill payment.
func (h *Handler) Pay(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}
	var req payRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	result, err := h.service.Pay(c.UserContext(), PayInput{
		UserID:      uid,
		ServiceType: req.ServiceType,
		CustomerRef: req.CustomerRef,
		Amount:      req.Amount,
		PIN:         req.PIN,
	})
	if err != nil {
		if errors.Is(err, security.ErrInvalidPIN) || errors.Is(err, security.ErrPINNotSet) {
			return fiber.NewError(http.StatusForbidden, err.Error())
		}
		if errors.Is(err, ErrUnknownService) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"transaction_id": result.TransactionID,
		"service":        result.ServiceName,
		"amount":         result.Amount,
		"status":         result.Status,
	})
}
