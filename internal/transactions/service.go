package transactions

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service records and lists explicit balance movements.
type Service struct {
	repo Repository
}

// NewService builds a transaction service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RecordInput captures the data needed to record a transaction.
type RecordInput struct {
	UserID      string
	Type        string
	Amount      float64
	Description string
	Status      string
	ReferenceID string
}

// Record persists a new transaction.
func (s *Service) Record(ctx context.Context, input RecordInput) (Transaction, error) {
	if !ValidType(input.Type) {
		return Transaction{}, fmt.Errorf("unknown transaction type %q", input.Type)
	}
	if input.Amount <= 0 {
		return Transaction{}, fmt.Errorf("amount must be positive")
	}
	status := input.Status
	if status == "" {
		status = StatusPending
	}

	now := time.Now().UTC()
	tx := Transaction{
		ID:          uuid.New().String(),
		UserID:      input.UserID,
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		Status:      status,
		ReferenceID: input.ReferenceID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, tx); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// Complete marks a transaction completed.
func (s *Service) Complete(ctx context.Context, id string) error {
	return s.repo.UpdateStatus(ctx, id, StatusCompleted)
}

// Fail marks a transaction failed.
func (s *Service) Fail(ctx context.Context, id string) error {
	return s.repo.UpdateStatus(ctx, id, StatusFailed)
}

// History returns the user's transactions, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]Transaction, error) {
	return s.repo.ListByUser(ctx, userID)
}
