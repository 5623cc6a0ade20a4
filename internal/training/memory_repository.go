package training

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Entry // keyed by userID:day
}

// NewMemoryRepository constructs an in-memory repository for tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{storage: make(map[string]Entry)}
}

func key(userID string, day int) string {
	return fmt.Sprintf("%s:%d", userID, day)
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Entry
	for _, e := range r.storage {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DayNumber < out[j].DayNumber })
	return out, nil
}

func (r *memoryRepository) Get(_ context.Context, userID string, day int) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.storage[key(userID, day)]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

func (r *memoryRepository) Upsert(_ context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage[key(entry.UserID, entry.DayNumber)] = entry
	return nil
}
