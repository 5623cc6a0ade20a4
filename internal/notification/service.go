package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service stores in-app notifications and forwards them to the notifier.
type Service struct {
	repo     Repository
	notifier Notifier
}

// NewService builds a notification service.
func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// PushInput captures one notification to store and deliver.
type PushInput struct {
	UserID  string
	Type    string
	Title   string
	Message string
}

// Push persists the notification and forwards it to the delivery notifier.
// Delivery failures are not fatal; the stored copy is the record.
func (s *Service) Push(ctx context.Context, input PushInput) error {
	now := time.Now().UTC()
	n := Notification{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		Title:     input.Title,
		Message:   input.Message,
		Type:      input.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}
	if s.notifier != nil {
		_ = s.notifier.Send(ctx, Message{Kind: input.Type, Destination: input.UserID, Body: input.Message})
	}
	return nil
}

// List returns the user's notifications, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

// MarkRead flags one of the user's notifications as read.
func (s *Service) MarkRead(ctx context.Context, id, userID string) error {
	return s.repo.MarkRead(ctx, id, userID)
}
