package ppob

import (
	"context"
	"errors"
	"testing"

	"github.com/mandala-pay/mandala_pay/internal/notification"
	"github.com/mandala-pay/mandala_pay/internal/security"
	"github.com/mandala-pay/mandala_pay/internal/transactions"
)

func newTestService(t *testing.T) (*Service, *security.Service, *transactions.Service, *notification.Service) {
	t.Helper()
	pins := security.NewService(security.NewMemoryRepository())
	txs := transactions.NewService(transactions.NewMemoryRepository())
	notifier := notification.NewService(notification.NewMemoryRepository(), nil)
	svc := NewService(NewMemoryRepository(), pins, txs, notifier)
	return svc, pins, txs, notifier
}

func TestPayRecordsCompletedTransactionAndNotifies(t *testing.T) {
	svc, pins, txs, notifier := newTestService(t)
	ctx := context.Background()

	if err := pins.SetPIN(ctx, "user-1", "123456"); err != nil {
		t.Fatalf("set pin: %v", err)
	}

	result, err := svc.Pay(ctx, PayInput{
		UserID:      "user-1",
		ServiceType: TypeElectricity,
		CustomerRef: "MTR-0042",
		Amount:      150_000,
		PIN:         "123456",
	})
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if result.ServiceName != "Listrik" || result.Status != transactions.StatusCompleted {
		t.Fatalf("unexpected result: %+v", result)
	}

	history, err := txs.History(ctx, "user-1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].Type != transactions.TypePayment || history[0].Status != transactions.StatusCompleted {
		t.Fatalf("unexpected history: %+v", history)
	}

	stored, err := notifier.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("notifications: %v", err)
	}
	if len(stored) != 1 || stored[0].Type != notification.KindBillPayment {
		t.Fatalf("expected one bill payment notification, got %+v", stored)
	}
}

func TestPayRejectsWrongPINBeforeAnyWrite(t *testing.T) {
	svc, pins, txs, _ := newTestService(t)
	ctx := context.Background()

	if err := pins.SetPIN(ctx, "user-1", "123456"); err != nil {
		t.Fatalf("set pin: %v", err)
	}

	_, err := svc.Pay(ctx, PayInput{
		UserID:      "user-1",
		ServiceType: TypeWater,
		CustomerRef: "ACC-7",
		Amount:      50_000,
		PIN:         "000000",
	})
	if !errors.Is(err, security.ErrInvalidPIN) {
		t.Fatalf("expected ErrInvalidPIN, got %v", err)
	}

	history, err := txs.History(ctx, "user-1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("rejected payment left a transaction behind: %+v", history)
	}
}

func TestPayFailsClosedWithoutPIN(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Pay(context.Background(), PayInput{
		UserID:      "user-1",
		ServiceType: TypeMobile,
		CustomerRef: "0812000111",
		Amount:      25_000,
		PIN:         "123456",
	})
	if !errors.Is(err, security.ErrPINNotSet) {
		t.Fatalf("expected ErrPINNotSet, got %v", err)
	}
}

func TestPayRejectsUnknownService(t *testing.T) {
	svc, pins, _, _ := newTestService(t)
	ctx := context.Background()

	if err := pins.SetPIN(ctx, "user-1", "123456"); err != nil {
		t.Fatalf("set pin: %v", err)
	}

	_, err := svc.Pay(ctx, PayInput{
		UserID:      "user-1",
		ServiceType: "cable",
		CustomerRef: "X-1",
		Amount:      10_000,
		PIN:         "123456",
	})
	if !errors.Is(err, ErrUnknownService) {
		t.Fatalf("expected ErrUnknownService, got %v", err)
	}
}

func TestPayValidatesInput(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Pay(ctx, PayInput{UserID: "user-1", ServiceType: TypeWater, CustomerRef: "A", Amount: 0}); err == nil {
		t.Fatal("zero amount accepted")
	}
	if _, err := svc.Pay(ctx, PayInput{UserID: "user-1", ServiceType: TypeWater, Amount: 100}); err == nil {
		t.Fatal("missing customer reference accepted")
	}
}

func TestListReturnsSeededCatalog(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	services, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(services) != 4 {
		t.Fatalf("expected 4 services, got %d", len(services))
	}
}
