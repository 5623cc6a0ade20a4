package settings

import "time"

// Settings holds a user's dashboard preferences.
type Settings struct {
	UserID             string
	DarkMode           bool
	Language           string
	EmailNotifications bool
	PushNotifications  bool
	TransactionAlerts  bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Defaults returns the preferences a user starts with.
func Defaults(userID string, now time.Time) Settings {
	now = now.UTC()
	return Settings{
		UserID:             userID,
		Language:           "id",
		EmailNotifications: true,
		PushNotifications:  true,
		TransactionAlerts:  true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
