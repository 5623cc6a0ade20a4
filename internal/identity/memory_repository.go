package identity

import (
	"context"
	"errors"
	"sync"

	"github.com/mandala-pay/mandala_pay/internal/rbac"
)

type memoryRepository struct {
	mu    sync.RWMutex
	users map[string]User // keyed by email
	roles map[string]rbac.Role
}

// NewMemoryRepository builds an in-memory user store for testing.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		users: make(map[string]User),
		roles: make(map[string]rbac.Role),
	}
}

func (r *memoryRepository) Create(_ context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Email]; exists {
		return errors.New("user exists")
	}
	r.users[user.Email] = user
	if user.Role != "" {
		r.roles[user.ID] = user.Role
	}
	return nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[email]
	if !ok {
		return User{}, ErrNotFound
	}
	user.Role = r.roles[user.ID]
	return user, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.ID == id {
			user.Role = r.roles[id]
			return user, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *memoryRepository) UpdateTokenVersion(_ context.Context, id string, version int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for email, user := range r.users {
		if user.ID == id {
			user.TokenVersion = version
			r.users[email] = user
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryRepository) UpdateRole(_ context.Context, id string, role rbac.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.ID == id {
			r.roles[id] = role
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryRepository) RoleByUserID(_ context.Context, userID string) (rbac.Role, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.ID == userID {
			role, linked := r.roles[userID]
			return role, linked, nil
		}
	}
	return "", false, ErrNotFound
}
