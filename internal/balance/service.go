package balance

import (
	"context"
	"errors"
	"time"
)

// Service produces authoritative balance records.
type Service struct {
	repo Repository
}

// NewService builds a balance service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Refresh recomputes and persists the authoritative balance for a user. When
// no record exists yet it seeds the default record instead of failing, so a
// first request is indistinguishable from any later one. Safe to retry: a
// repeated call with the same clock reading adds zero growth.
func (s *Service) Refresh(ctx context.Context, userID string, now time.Time) (Record, error) {
	rec, err := s.repo.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		rec = DefaultRecord(userID, now)
		if err := s.repo.Upsert(ctx, rec); err != nil {
			return Record{}, err
		}
		return rec, nil
	}
	if err != nil {
		return Record{}, err
	}

	rec = Recompute(rec, now)
	if err := s.repo.Upsert(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Peek returns the balance as it would look at now without persisting
// anything. A missing record yields the default seed, also unpersisted.
func (s *Service) Peek(ctx context.Context, userID string, now time.Time) (Record, error) {
	rec, err := s.repo.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return DefaultRecord(userID, now), nil
	}
	if err != nil {
		return Record{}, err
	}
	return Recompute(rec, now), nil
}
