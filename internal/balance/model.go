package balance

import "time"

// Record is the server-owned accrual state for one user. The automatic
// balance grows continuously at GrowthRate per second; the locked balance
// changes only through explicit transactions.
type Record struct {
	UserID           string
	LockedBalance    float64
	AutomaticBalance float64
	GrowthRate       float64
	LastUpdated      time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Seed defaults applied when a user requests a balance before any record
// exists. Kept in one place so no other layer can drift from them.
const (
	defaultLockedBalance    = 1_500_000
	defaultAutomaticBalance = 275_000
	defaultGrowthRate       = 3.1731
)

// DefaultRecord returns the seed record for a user at the given instant.
func DefaultRecord(userID string, now time.Time) Record {
	now = now.UTC()
	return Record{
		UserID:           userID,
		LockedBalance:    defaultLockedBalance,
		AutomaticBalance: defaultAutomaticBalance,
		GrowthRate:       defaultGrowthRate,
		LastUpdated:      now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Recompute advances the automatic balance by the growth accrued since the
// record was last updated and stamps the record with now. A clock that
// appears to run backwards counts as zero elapsed time, so growth is never
// negative, and a second call with the same instant adds nothing.
func Recompute(rec Record, now time.Time) Record {
	now = now.UTC()
	elapsed := now.Sub(rec.LastUpdated)
	if elapsed < 0 {
		elapsed = 0
	}
	rec.AutomaticBalance += elapsed.Seconds() * rec.GrowthRate
	rec.LastUpdated = now
	rec.UpdatedAt = now
	return rec
}
