package notification

import "time"

// Notification is a stored in-app message for one user.
type Notification struct {
	ID        string
	UserID    string
	Title     string
	Message   string
	Type      string
	Read      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
