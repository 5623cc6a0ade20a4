package ppob

import (
	"context"
	"fmt"

	"github.com/mandala-pay/mandala_pay/internal/notification"
	"github.com/mandala-pay/mandala_pay/internal/security"
	"github.com/mandala-pay/mandala_pay/internal/transactions"
)

// Service coordinates bill payments: PIN check, catalog lookup, transaction
// record, notification.
type Service struct {
	repo     Repository
	pins     *security.Service
	txs      *transactions.Service
	notifier *notification.Service
}

// NewService builds a PPOB service.
func NewService(repo Repository, pins *security.Service, txs *transactions.Service, notifier *notification.Service) *Service {
	return &Service{repo: repo, pins: pins, txs: txs, notifier: notifier}
}

// List returns the catalog of payable services.
func (s *Service) List(ctx context.Context) ([]ServiceInfo, error) {
	return s.repo.List(ctx)
}

// PayInput captures one bill payment request.
type PayInput struct {
	UserID      string
	ServiceType string
	CustomerRef string
	Amount      float64
	PIN         string
}

// PayResult describes a recorded bill payment.
type PayResult struct {
	TransactionID string
	ServiceName   string
	Amount        float64
	Status        string
}

// Pay verifies the caller's PIN, validates the service, and records the
// payment transaction. The PIN check runs first so nothing is persisted for
// a rejected request.
func (s *Service) Pay(ctx context.Context, input PayInput) (PayResult, error) {
	if input.Amount <= 0 {
		return PayResult{}, fmt.Errorf("amount must be positive")
	}
	if input.CustomerRef == "" {
		return PayResult{}, fmt.Errorf("customer reference is required")
	}

	if err := s.pins.VerifyPIN(ctx, input.UserID, input.PIN); err != nil {
		return PayResult{}, err
	}

	svc, err := s.repo.FindByType(ctx, input.ServiceType)
	if err != nil {
		return PayResult{}, err
	}

	tx, err := s.txs.Record(ctx, transactions.RecordInput{
		UserID:      input.UserID,
		Type:        transactions.TypePayment,
		Amount:      input.Amount,
		Description: fmt.Sprintf("%s payment for %s", svc.Name, input.CustomerRef),
		Status:      transactions.StatusCompleted,
		ReferenceID: input.CustomerRef,
	})
	if err != nil {
		return PayResult{}, err
	}

	if s.notifier != nil {
		_ = s.notifier.Push(ctx, notification.PushInput{
			UserID:  input.UserID,
			Type:    notification.KindBillPayment,
			Title:   "Payment successful",
			Message: fmt.Sprintf("Paid %.0f for %s (%s)", input.Amount, svc.Name, input.CustomerRef),
		})
	}

	return PayResult{
		TransactionID: tx.ID,
		ServiceName:   svc.Name,
		Amount:        tx.Amount,
		Status:        tx.Status,
	}, nil
}
