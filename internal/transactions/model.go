package transactions

import "time"

// Transaction types.
const (
	TypeDeposit    = "deposit"
	TypeWithdrawal = "withdrawal"
	TypePayment    = "payment"
)

// Transaction statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Transaction records an explicit balance movement. Continuous accrual never
// appears here; only deposits, withdrawals, and payments do.
type Transaction struct {
	ID          string
	UserID      string
	Type        string
	Amount      float64
	Description string
	Status      string
	ReferenceID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidType reports whether t is a known transaction type.
func ValidType(t string) bool {
	switch t {
	case TypeDeposit, TypeWithdrawal, TypePayment:
		return true
	}
	return false
}
