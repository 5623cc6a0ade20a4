package security

import (
	"context"
	"errors"
	"testing"
)

func TestSetAndVerifyPIN(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if err := svc.SetPIN(ctx, "user-1", "123456"); err != nil {
		t.Fatalf("set pin: %v", err)
	}
	if err := svc.VerifyPIN(ctx, "user-1", "123456"); err != nil {
		t.Fatalf("verify pin: %v", err)
	}
	if err := svc.VerifyPIN(ctx, "user-1", "654321"); !errors.Is(err, ErrInvalidPIN) {
		t.Fatalf("expected ErrInvalidPIN, got %v", err)
	}
}

func TestVerifyPINFailsClosedWhenUnset(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if err := svc.VerifyPIN(ctx, "user-1", "123456"); !errors.Is(err, ErrPINNotSet) {
		t.Fatalf("expected ErrPINNotSet, got %v", err)
	}

	// Settings that exist without a PIN still fail closed.
	if err := svc.SetTwoFactor(ctx, "user-2", true); err != nil {
		t.Fatalf("set two factor: %v", err)
	}
	if err := svc.VerifyPIN(ctx, "user-2", "123456"); !errors.Is(err, ErrPINNotSet) {
		t.Fatalf("expected ErrPINNotSet, got %v", err)
	}
}

func TestSetPINRequiresSixDigits(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	for _, pin := range []string{"", "12345", "1234567", "12a456", "12 456"} {
		if err := svc.SetPIN(ctx, "user-1", pin); err == nil {
			t.Fatalf("pin %q accepted", pin)
		}
	}
}

func TestSetPINReplacesPrevious(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if err := svc.SetPIN(ctx, "user-1", "111111"); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if err := svc.SetPIN(ctx, "user-1", "222222"); err != nil {
		t.Fatalf("second set: %v", err)
	}
	if err := svc.VerifyPIN(ctx, "user-1", "111111"); !errors.Is(err, ErrInvalidPIN) {
		t.Fatalf("old pin still verifies: %v", err)
	}
	if err := svc.VerifyPIN(ctx, "user-1", "222222"); err != nil {
		t.Fatalf("new pin rejected: %v", err)
	}
}

func TestSetTwoFactorPreservesPIN(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.SetPIN(ctx, "user-1", "123456"); err != nil {
		t.Fatalf("set pin: %v", err)
	}
	if err := svc.SetTwoFactor(ctx, "user-1", true); err != nil {
		t.Fatalf("set two factor: %v", err)
	}

	settings, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !settings.TwoFactorEnabled || !settings.PINSet() {
		t.Fatalf("toggle clobbered settings: %+v", settings)
	}
}
