package auth

import (
	"context"
	"errors"

	"github.com/mandala-pay/mandala_pay/internal/config"
	"github.com/mandala-pay/mandala_pay/internal/identity"
	"github.com/mandala-pay/mandala_pay/internal/rbac"
)

// Service issues and validates token pairs for authenticated users.
type Service struct {
	cfg    config.Config
	idRepo identity.Repository
}

// NewService builds an auth service.
func NewService(cfg config.Config, idRepo identity.Repository) *Service {
	return &Service{cfg: cfg, idRepo: idRepo}
}

// TokenPair bundles the access and refresh tokens returned at login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Login issues a token pair for the authenticated user with the given
// effective role.
func (s *Service) Login(user identity.User, role rbac.Role) (TokenPair, error) {
	access, err := Sign(NewClaims(user.ID, user.Email, role.String(), user.TokenVersion, s.cfg.AccessTokenTTL), s.cfg.JWTSecret)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := Sign(NewClaims(user.ID, "", "", user.TokenVersion, s.cfg.RefreshTokenTTL), s.cfg.RefreshSecret)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.cfg.AccessTokenTTL.Seconds()),
	}, nil
}

// Refresh verifies the refresh token and returns a new access token. Tokens
// minted before a logout carry a stale version and are rejected.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, int64, error) {
	claims, err := Parse(refreshToken, s.cfg.RefreshSecret)
	if err != nil {
		return "", 0, errors.New("invalid refresh token")
	}

	user, err := s.idRepo.FindByID(ctx, claims.Subject)
	if err != nil {
		return "", 0, errors.New("user not found")
	}
	if user.TokenVersion != claims.Ver {
		return "", 0, errors.New("token version invalidated")
	}

	role, linked, err := s.idRepo.RoleByUserID(ctx, user.ID)
	if err == nil && !linked {
		role = rbac.RoleVisitor
	}

	access, err := Sign(NewClaims(user.ID, user.Email, role.String(), user.TokenVersion, s.cfg.AccessTokenTTL), s.cfg.JWTSecret)
	if err != nil {
		return "", 0, err
	}
	return access, int64(s.cfg.AccessTokenTTL.Seconds()), nil
}

// Logout increments the token version so older tokens become invalid.
func (s *Service) Logout(ctx context.Context, userID string) error {
	user, err := s.idRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	return s.idRepo.UpdateTokenVersion(ctx, user.ID, user.TokenVersion+1)
}
