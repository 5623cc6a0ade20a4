package security

import "time"

// Settings holds a user's transaction-security configuration. The PIN guards
// money-moving operations independently of the login password.
type Settings struct {
	UserID           string
	PINHash          []byte
	TwoFactorEnabled bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PINSet reports whether a transaction PIN has been configured.
func (s Settings) PINSet() bool {
	return len(s.PINHash) > 0
}
