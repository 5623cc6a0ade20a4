package settings

import (
	"context"
	"errors"
	"time"
)

// Service manages user preferences.
type Service struct {
	repo Repository
}

// NewService builds a settings service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the user's preferences, falling back to defaults before the
// first save.
func (s *Service) Get(ctx context.Context, userID string) (Settings, error) {
	prefs, err := s.repo.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return Defaults(userID, time.Now()), nil
	}
	if err != nil {
		return Settings{}, err
	}
	return prefs, nil
}

// UpdateInput carries a full replacement of the user's preferences.
type UpdateInput struct {
	DarkMode           bool
	Language           string
	EmailNotifications bool
	PushNotifications  bool
	TransactionAlerts  bool
}

// Update replaces the user's preferences.
func (s *Service) Update(ctx context.Context, userID string, input UpdateInput) (Settings, error) {
	now := time.Now().UTC()
	prefs, err := s.repo.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		prefs = Defaults(userID, now)
	} else if err != nil {
		return Settings{}, err
	}

	prefs.DarkMode = input.DarkMode
	if input.Language != "" {
		prefs.Language = input.Language
	}
	prefs.EmailNotifications = input.EmailNotifications
	prefs.PushNotifications = input.PushNotifications
	prefs.TransactionAlerts = input.TransactionAlerts
	prefs.UpdatedAt = now

	if err := s.repo.Upsert(ctx, prefs); err != nil {
		return Settings{}, err
	}
	return prefs, nil
}
