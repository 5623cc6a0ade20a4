package training

import "time"

// TotalDays is the length of the training program.
const TotalDays = 99

// Entry is one day of a user's training program.
type Entry struct {
	ID             string
	UserID         string
	DayNumber      int
	Title          string
	Description    string
	Completed      bool
	CompletionDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Summary aggregates a user's progress through the program.
type Summary struct {
	CompletedDays int
	TotalDays     int
	Percent       float64
	// CurrentDay is the first uncompleted day, or TotalDays once finished.
	CurrentDay int
}
