package network

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes binary network HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a network HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type nodeResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Avatar   string         `json:"avatar,omitempty"`
	Position string         `json:"position,omitempty"`
	Level    int            `json:"level"`
	Status   string         `json:"status"`
	JoinDate time.Time      `json:"join_date"`
	Children []nodeResponse `json:"children,omitempty"`
}

func toNodeResponse(n *Node) nodeResponse {
	out := nodeResponse{
		ID:       n.ID,
		Name:     n.Name,
		Avatar:   n.Avatar,
		Position: n.Position,
		Level:    n.Level,
		Status:   n.Status,
		JoinDate: n.JoinDate,
	}
	for _, child := range n.Children {
		out.Children = append(out.Children, toNodeResponse(child))
	}
	return out
}

// Tree returns the caller's downline as nested trees.
func (h *Handler) Tree(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}
	roots, err := h.service.Downline(c.UserContext(), uid)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	out := make([]nodeResponse, 0, len(roots))
	for _, root := range roots {
		out = append(out, toNodeResponse(root))
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"network": out})
}

// Preview returns per-level member counts for the dashboard card.
func (h *Handler) Preview(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}
	counts, err := h.service.LevelCounts(c.UserContext(), uid)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"levels": counts})
}

type addMemberRequest struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	ParentID string `json:"parent_id"`
	Position string `json:"position"`
}

// AddMember places a new member in the caller's downline.
func (h *Handler) AddMember(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}
	var req addMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	member, err := h.service.Add(c.UserContext(), AddInput{
		UserID:   uid,
		Name:     req.Name,
		Avatar:   req.Avatar,
		ParentID: req.ParentID,
		Position: req.Position,
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			return fiber.NewError(http.StatusConflict, err.Error())
		}
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"id":        member.ID,
		"name":      member.Name,
		"parent_id": member.ParentID,
		"position":  member.Position,
		"level":     member.Level,
		"status":    member.Status,
	})
}
