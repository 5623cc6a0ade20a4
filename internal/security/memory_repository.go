package security

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Settings
}

// NewMemoryRepository builds an in-memory security store for testing.
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

func (r *memoryRepository) Upsert(_ context.Context, settings Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage[settings.UserID] = settings
	return nil
}
