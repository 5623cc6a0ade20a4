package notification

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Notification
}

// NewMemoryRepository constructs an in-memory repository for tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{storage: make(map[string]Notification)}
}

func (r *memoryRepository) Create(_ context.Context, n Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage[n.ID] = n
	return nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string) ([]Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Notification
	for _, n := range r.storage {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryRepository) MarkRead(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.storage[id]
	if !ok || n.UserID != userID {
		return ErrNotFound
	}
	n.Read = true
	n.UpdatedAt = time.Now().UTC()
	r.storage[id] = n
	return nil
}
