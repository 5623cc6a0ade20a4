package network

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mandala-pay/mandala_pay/internal/notification"
)

// Service manages a user's binary downline.
type Service struct {
	repo     Repository
	notifier *notification.Service
}

// NewService builds a network service.
func NewService(repo Repository, notifier *notification.Service) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// AddInput captures the data needed to place a new member.
type AddInput struct {
	UserID   string
	Name     string
	Avatar   string
	ParentID string
	Position string
}

// Add places a new member in the downline. A member with a parent occupies
// that parent's left or right slot; the slot must be free. A member without a
// parent is the downline root at level 0.
func (s *Service) Add(ctx context.Context, input AddInput) (Member, error) {
	if input.Name == "" {
		return Member{}, fmt.Errorf("name is required")
	}

	level := 0
	if input.ParentID != "" {
		if !ValidPosition(input.Position) {
			return Member{}, fmt.Errorf("position must be %q or %q", PositionLeft, PositionRight)
		}
		parent, err := s.repo.FindByID(ctx, input.ParentID)
		if err != nil {
			return Member{}, err
		}
		if _, err := s.repo.ChildAt(ctx, parent.ID, input.Position); err == nil {
			return Member{}, ErrSlotTaken
		} else if !errors.Is(err, ErrNotFound) {
			return Member{}, err
		}
		level = parent.Level + 1
	}

	now := time.Now().UTC()
	m := Member{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		Name:      input.Name,
		Avatar:    input.Avatar,
		ParentID:  input.ParentID,
		Position:  input.Position,
		Level:     level,
		Status:    StatusActive,
		JoinDate:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return Member{}, err
	}

	if s.notifier != nil {
		_ = s.notifier.Push(ctx, notification.PushInput{
			UserID:  m.UserID,
			Type:    notification.KindNetworkJoin,
			Title:   "New network member",
			Message: fmt.Sprintf("%s joined your network", m.Name),
		})
	}
	return m, nil
}

// Downline assembles the user's members into trees rooted at parentless
// members. Children are ordered left before right.
func (s *Service) Downline(ctx context.Context, userID string) ([]*Node, error) {
	members, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	nodes := make(map[string]*Node, len(members))
	for _, m := range members {
		nodes[m.ID] = &Node{Member: m}
	}

	var roots []*Node
	for _, m := range members {
		node := nodes[m.ID]
		if m.ParentID == "" {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[m.ParentID]
		if !ok {
			// Orphaned subtree; surface it as a root rather than dropping it.
			roots = append(roots, node)
			continue
		}
		if m.Position == PositionLeft {
			parent.Children = append([]*Node{node}, parent.Children...)
		} else {
			parent.Children = append(parent.Children, node)
		}
	}
	return roots, nil
}

// LevelCounts returns how many members sit at each level, for the dashboard
// preview.
func (s *Service) LevelCounts(ctx context.Context, userID string) (map[int]int, error) {
	members, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	counts := make(map[int]int)
	for _, m := range members {
		counts[m.Level]++
	}
	return counts, nil
}
