package rbac

import (
	"context"
	"errors"
	"testing"
)

type fakeStore struct {
	roles map[string]Role
	err   error
	// hook, when non-nil, runs at the start of each lookup. It lets a test
	// interleave a session change with an in-flight resolution.
	hook func(userID string)
}

func (s *fakeStore) RoleByUserID(_ context.Context, userID string) (Role, bool, error) {
	if s.hook != nil {
		s.hook(userID)
	}
	if s.err != nil {
		return "", false, s.err
	}
	role, ok := s.roles[userID]
	return role, ok, nil
}

func TestResolveReturnsLinkedRole(t *testing.T) {
	store := &fakeStore{roles: map[string]Role{"user-1": RoleAdmin}}
	r := NewResolver(store)

	epoch := r.SessionChanged("user-1")
	role, known := r.Resolve(context.Background(), epoch)

	if !known || role != RoleAdmin {
		t.Fatalf("expected known admin, got role=%s known=%v", role, known)
	}
}

func TestResolveDefaultsToVisitorWithoutLinkage(t *testing.T) {
	store := &fakeStore{roles: map[string]Role{}}
	r := NewResolver(store)

	epoch := r.SessionChanged("user-1")
	role, known := r.Resolve(context.Background(), epoch)

	if !known || role != RoleVisitor {
		t.Fatalf("expected visitor default, got role=%s known=%v", role, known)
	}
}

func TestResolveErrorLeavesRoleUnknown(t *testing.T) {
	store := &fakeStore{err: errors.New("connection reset")}
	r := NewResolver(store)

	epoch := r.SessionChanged("user-1")
	_, known := r.Resolve(context.Background(), epoch)

	if known {
		t.Fatal("lookup error must leave the role unknown")
	}
}

func TestResolveDiscardsStaleLookup(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	store := &fakeStore{
		roles: map[string]Role{"old": RoleSuperAdmin, "new": RoleVisitor},
		hook: func(userID string) {
			if userID == "old" {
				close(entered)
				<-release
			}
		},
	}
	r := NewResolver(store)

	oldEpoch := r.SessionChanged("old")
	staleDone := make(chan struct{})
	go func() {
		r.Resolve(context.Background(), oldEpoch)
		close(staleDone)
	}()
	<-entered // the stale lookup is now in flight

	newEpoch := r.SessionChanged("new")
	role, known := r.Resolve(context.Background(), newEpoch)
	close(release) // let the stale lookup come back late
	<-staleDone

	if !known || role != RoleVisitor {
		t.Fatalf("expected current session role visitor, got role=%s known=%v", role, known)
	}
	if _, cached, _ := r.Current(); cached != RoleVisitor {
		t.Fatalf("stale lookup overwrote the cached role: %s", cached)
	}
}

func TestSessionChangedClearsCachedRole(t *testing.T) {
	store := &fakeStore{roles: map[string]Role{"user-1": RoleAdmin}}
	r := NewResolver(store)

	epoch := r.SessionChanged("user-1")
	if _, known := r.Resolve(context.Background(), epoch); !known {
		t.Fatal("initial resolve failed")
	}

	r.SessionChanged("")
	if _, role, known := r.Current(); known || role != "" {
		t.Fatalf("sign-out left a cached role: role=%s known=%v", role, known)
	}
}

func TestResolveWithSupersededEpochReturnsCachedState(t *testing.T) {
	store := &fakeStore{roles: map[string]Role{"user-2": RoleAdmin}}
	r := NewResolver(store)

	stale := r.SessionChanged("user-1")
	current := r.SessionChanged("user-2")
	if _, known := r.Resolve(context.Background(), current); !known {
		t.Fatal("current resolve failed")
	}

	role, known := r.Resolve(context.Background(), stale)
	if !known || role != RoleAdmin {
		t.Fatalf("stale epoch disturbed the cached role: role=%s known=%v", role, known)
	}
}
