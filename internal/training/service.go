package training

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service tracks a user's progress through the training program.
type Service struct {
	repo Repository
}

// NewService builds a training service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the user's entries ordered by day.
func (s *Service) List(ctx context.Context, userID string) ([]Entry, error) {
	return s.repo.ListByUser(ctx, userID)
}

// CompleteDay marks a day completed. The operation is idempotent: completing
// an already-completed day keeps the original completion date.
func (s *Service) CompleteDay(ctx context.Context, userID string, day int, now time.Time) (Entry, error) {
	if day < 1 || day > TotalDays {
		return Entry{}, fmt.Errorf("day must be between 1 and %d", TotalDays)
	}

	now = now.UTC()
	entry, err := s.repo.Get(ctx, userID, day)
	if errors.Is(err, ErrNotFound) {
		entry = Entry{
			ID:        uuid.New().String(),
			UserID:    userID,
			DayNumber: day,
			Title:     fmt.Sprintf("Day %d", day),
			CreatedAt: now,
		}
	} else if err != nil {
		return Entry{}, err
	}

	if entry.Completed {
		return entry, nil
	}

	entry.Completed = true
	entry.CompletionDate = &now
	entry.UpdatedAt = now
	if err := s.repo.Upsert(ctx, entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Progress summarizes how far the user has come.
func (s *Service) Progress(ctx context.Context, userID string) (Summary, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return Summary{}, err
	}

	completed := make(map[int]bool, len(entries))
	for _, e := range entries {
		if e.Completed {
			completed[e.DayNumber] = true
		}
	}

	current := TotalDays
	for day := 1; day <= TotalDays; day++ {
		if !completed[day] {
			current = day
			break
		}
	}

	return Summary{
		CompletedDays: len(completed),
		TotalDays:     TotalDays,
		Percent:       float64(len(completed)) / float64(TotalDays) * 100,
		CurrentDay:    current,
	}, nil
}
