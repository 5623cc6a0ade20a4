package auth

import (
	"context"
	"testing"
	"time"

	"github.com/mandala-pay/mandala_pay/internal/config"
	"github.com/mandala-pay/mandala_pay/internal/identity"
	"github.com/mandala-pay/mandala_pay/internal/rbac"
)

func testConfig() config.Config {
	return config.Config{
		JWTSecret:       "access-secret",
		RefreshSecret:   "refresh-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func registerUser(t *testing.T, repo identity.Repository) identity.User {
	t.Helper()
	user, err := identity.NewService(repo).Register(context.Background(), identity.Credentials{
		Email:    "ada@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return user
}

func TestLoginIssuesUsableTokenPair(t *testing.T) {
	cfg := testConfig()
	repo := identity.NewMemoryRepository()
	svc := NewService(cfg, repo)
	user := registerUser(t, repo)

	pair, err := svc.Login(user, rbac.RoleAdmin)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if pair.ExpiresIn != int64(cfg.AccessTokenTTL.Seconds()) {
		t.Fatalf("expires_in mismatch: %d", pair.ExpiresIn)
	}

	claims, err := Parse(pair.AccessToken, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.Subject != user.ID || claims.Role != "admin" {
		t.Fatalf("unexpected access claims: %+v", claims)
	}

	refreshClaims, err := Parse(pair.RefreshToken, cfg.RefreshSecret)
	if err != nil {
		t.Fatalf("parse refresh token: %v", err)
	}
	if refreshClaims.Role != "" {
		t.Fatalf("refresh token must not carry a role, got %q", refreshClaims.Role)
	}
}

func TestRefreshReissuesAccessToken(t *testing.T) {
	cfg := testConfig()
	repo := identity.NewMemoryRepository()
	svc := NewService(cfg, repo)
	user := registerUser(t, repo)

	pair, err := svc.Login(user, rbac.RoleVisitor)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	access, expiresIn, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if expiresIn != int64(cfg.AccessTokenTTL.Seconds()) {
		t.Fatalf("expires_in mismatch: %d", expiresIn)
	}

	claims, err := Parse(access, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("parse refreshed access token: %v", err)
	}
	if claims.Subject != user.ID {
		t.Fatalf("refreshed token subject mismatch: %s", claims.Subject)
	}
	if claims.Role != "visitor" {
		t.Fatalf("unlinked account must refresh as visitor, got %q", claims.Role)
	}
}

func TestLogoutInvalidatesOutstandingRefreshTokens(t *testing.T) {
	cfg := testConfig()
	repo := identity.NewMemoryRepository()
	svc := NewService(cfg, repo)
	user := registerUser(t, repo)

	pair, err := svc.Login(user, rbac.RoleVisitor)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(context.Background(), user.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, _, err := svc.Refresh(context.Background(), pair.RefreshToken); err == nil {
		t.Fatal("refresh token survived logout")
	}
}

func TestRefreshRejectsAccessTokenAsRefreshToken(t *testing.T) {
	cfg := testConfig()
	repo := identity.NewMemoryRepository()
	svc := NewService(cfg, repo)
	user := registerUser(t, repo)

	pair, err := svc.Login(user, rbac.RoleVisitor)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, _, err := svc.Refresh(context.Background(), pair.AccessToken); err == nil {
		t.Fatal("access token accepted on the refresh endpoint")
	}
}
