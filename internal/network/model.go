package network

import "time"

// Binary slot positions.
const (
	PositionLeft  = "left"
	PositionRight = "right"
)

// Member statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Member is one node in a user's binary downline. A parent holds at most one
// member per position.
type Member struct {
	ID        string
	UserID    string
	Name      string
	Avatar    string
	ParentID  string // empty for the root member
	Position  string
	Level     int
	Status    string
	JoinDate  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Node is a member with its resolved children, assembled for display.
type Node struct {
	Member
	Children []*Node
}

// ValidPosition reports whether p names a binary slot.
func ValidPosition(p string) bool {
	return p == PositionLeft || p == PositionRight
}
