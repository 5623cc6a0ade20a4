package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/mandala-pay/mandala_pay/internal/rbac"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, Credentials{
		Email:    "  Ada@Example.COM ",
		Password: "correct-horse",
		FullName: "Ada Lovelace",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.Role != "" {
		t.Fatalf("fresh account must not carry a role linkage, got %q", user.Role)
	}

	got, err := svc.Authenticate(ctx, Credentials{Email: "ada@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("authenticated a different user: %s vs %s", got.ID, user.ID)
	}
}

func TestAuthenticateRejectsWrongPassword(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, Credentials{Email: "ada@example.com", Password: "correct-horse"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Authenticate(ctx, Credentials{Email: "ada@example.com", Password: "wrong-horse"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	_, err = svc.Authenticate(ctx, Credentials{Email: "nobody@example.com", Password: "correct-horse"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email must look like a bad password, got %v", err)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	if _, err := svc.Register(context.Background(), Credentials{Email: "ada@example.com", Password: "short"}); err == nil {
		t.Fatal("expected an error for a short password")
	}
}

func TestAssignRoleIsVisibleToRoleLookup(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, Credentials{Email: "ada@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	role, linked, err := repo.RoleByUserID(ctx, user.ID)
	if err != nil || linked {
		t.Fatalf("expected no linkage yet, got role=%s linked=%v err=%v", role, linked, err)
	}

	if err := svc.AssignRole(ctx, user.ID, rbac.RoleAdmin); err != nil {
		t.Fatalf("assign role: %v", err)
	}

	role, linked, err = repo.RoleByUserID(ctx, user.ID)
	if err != nil || !linked || role != rbac.RoleAdmin {
		t.Fatalf("expected linked admin, got role=%s linked=%v err=%v", role, linked, err)
	}
}

func TestAssignRoleRejectsUnknownRole(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	if err := svc.AssignRole(context.Background(), "user-1", rbac.Role("owner")); err == nil {
		t.Fatal("expected an error for an unknown role")
	}
}
