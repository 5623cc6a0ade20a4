package rbac

import (
	"context"
	"sync"
)

// Store resolves the role linked to an identity. A successful lookup with no
// linkage reports linked=false; the resolver then applies the visitor default.
type Store interface {
	RoleByUserID(ctx context.Context, userID string) (role Role, linked bool, err error)
}

// Resolver tracks the role for the current session. Session changes bump an
// epoch so that a slow lookup started for an earlier session can never
// overwrite the result of a later one: last-started wins, stale responses are
// discarded.
type Resolver struct {
	store Store

	mu     sync.Mutex
	epoch  uint64
	userID string
	role   Role
	known  bool
}

// NewResolver builds a resolver over the given role store.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// SessionChanged records a new session identity and returns the epoch token
// that a subsequent Resolve call must present. An empty userID clears the
// cached role (signed out).
func (r *Resolver) SessionChanged(userID string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.epoch++
	r.userID = userID
	r.role = ""
	r.known = false
	return r.epoch
}

// Resolve looks up the role for the session identified by epoch. The result
// is committed only if no newer session event has happened in the meantime.
// A lookup error leaves the role unknown; absence of a linkage defaults to
// visitor.
func (r *Resolver) Resolve(ctx context.Context, epoch uint64) (Role, bool) {
	r.mu.Lock()
	if epoch != r.epoch || r.userID == "" {
		role, known := r.role, r.known
		r.mu.Unlock()
		return role, known
	}
	userID := r.userID
	r.mu.Unlock()

	role, linked, err := r.store.RoleByUserID(ctx, userID)
	known := err == nil
	if known && !linked {
		role = RoleVisitor
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if epoch != r.epoch {
		// A newer session event superseded this lookup.
		return r.role, r.known
	}
	r.role = role
	r.known = known
	return r.role, r.known
}

// Current returns the cached session role.
func (r *Resolver) Current() (string, Role, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.userID, r.role, r.known
}
