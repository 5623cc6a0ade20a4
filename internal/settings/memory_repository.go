package settings

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Settings
}

// NewMemoryRepository constructs an in-memory repository for tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{storage: make(map[string]Settings)}
}

func (r *memoryRepository) Get(_ context.Context, userID string) (Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.storage[userID]
	if !ok {
		return Settings{}, ErrNotFound
	}
	return s, nil
}

func (r *memoryRepository) Upsert(_ context.Context, s Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage[s.UserID] = s
	return nil
}
