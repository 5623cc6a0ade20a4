package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mandala-pay/mandala_pay/internal/rbac"
)

// ErrInvalidCredentials indicates a failed email/password check. The message
// never says which half was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Service manages identity lifecycle.
type Service struct {
	repo Repository
}

// NewService creates a new identity service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new account with a hashed password. New accounts carry
// no role linkage; the access gate resolves them as visitor.
func (s *Service) Register(ctx context.Context, creds Credentials) (User, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if email == "" {
		return User{}, errors.New("email is required")
	}
	if len(creds.Password) < 8 {
		return User{}, errors.New("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	now := time.Now().UTC()
	user := User{
		ID:           uuid.New().String(),
		Email:        email,
		FullName:     strings.TrimSpace(creds.FullName),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}

	return user, nil
}

// Authenticate verifies email/password credentials.
func (s *Service) Authenticate(ctx context.Context, creds Credentials) (User, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(creds.Password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	return user, nil
}

// AssignRole reassigns a user's role. Only super_admin may do this; the
// caller enforces that through the access gate.
func (s *Service) AssignRole(ctx context.Context, userID string, role rbac.Role) error {
	if !role.Valid() {
		return errors.New("unknown role")
	}
	return s.repo.UpdateRole(ctx, userID, role)
}
