package network

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Member
}

// NewMemoryRepository constructs an in-memory repository for tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{storage: make(map[string]Member)}
}

func (r *memoryRepository) Create(_ context.Context, m Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage[m.ID] = m
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.storage[id]
	if !ok {
		return Member{}, ErrNotFound
	}
	return m, nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string) ([]Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Member
	for _, m := range r.storage {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].JoinDate.Before(out[j].JoinDate)
	})
	return out, nil
}

func (r *memoryRepository) ChildAt(_ context.Context, parentID, position string) (Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.storage {
		if m.ParentID == parentID && m.Position == position {
			return m, nil
		}
	}
	return Member{}, ErrNotFound
}
