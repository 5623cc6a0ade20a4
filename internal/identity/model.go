package identity

import (
	"time"

	"github.com/mandala-pay/mandala_pay/internal/rbac"
)

// User represents a registered dashboard account.
type User struct {
	ID           string
	Email        string
	FullName     string
	AvatarURL    string
	PasswordHash []byte
	// Role is the resolved role when a linkage exists; empty otherwise.
	// Access decisions go through rbac, which applies the visitor default.
	Role         rbac.Role
	TokenVersion int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Credentials carries a sign-in or sign-up request.
type Credentials struct {
	Email    string
	Password string
	FullName string
}
