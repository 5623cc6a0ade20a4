package security

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const pinLength = 6

var (
	// ErrPINNotSet indicates the user has not configured a PIN yet. PIN
	// verification fails closed in that case.
	ErrPINNotSet = errors.New("transaction PIN not set")
	// ErrInvalidPIN indicates the supplied PIN did not match.
	ErrInvalidPIN = errors.New("invalid PIN")
)

// Service manages the transaction PIN and two-factor preference.
type Service struct {
	repo Repository
}

// NewService builds a security service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SetPIN stores a hashed six-digit PIN for the user.
func (s *Service) SetPIN(ctx context.Context, userID, pin string) error {
	if len(pin) != pinLength || !digitsOnly(pin) {
		return errors.New("PIN must be exactly 6 digits")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	settings, err := s.repo.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		settings = Settings{UserID: userID, CreatedAt: now}
	} else if err != nil {
		return err
	}
	settings.PINHash = hash
	settings.UpdatedAt = now
	return s.repo.Upsert(ctx, settings)
}

// VerifyPIN checks the supplied PIN against the stored hash. An unset PIN
// never verifies.
func (s *Service) VerifyPIN(ctx context.Context, userID, pin string) error {
	settings, err := s.repo.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return ErrPINNotSet
	}
	if err != nil {
		return err
	}
	if !settings.PINSet() {
		return ErrPINNotSet
	}
	if err := bcrypt.CompareHashAndPassword(settings.PINHash, []byte(pin)); err != nil {
		return ErrInvalidPIN
	}
	return nil
}

// SetTwoFactor toggles the two-factor preference.
func (s *Service) SetTwoFactor(ctx context.Context, userID string, enabled bool) error {
	now := time.Now().UTC()
	settings, err := s.repo.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		settings = Settings{UserID: userID, CreatedAt: now}
	} else if err != nil {
		return err
	}
	settings.TwoFactorEnabled = enabled
	settings.UpdatedAt = now
	return s.repo.Upsert(ctx, settings)
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
