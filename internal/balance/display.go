package balance

import (
	"context"
	"sync"
	"time"
)

// Display reconciles a smoothly ticking local estimate with the authoritative
// record. The displayed value is a visual extrapolation only: Sync replaces
// it wholesale with the server value, never merges, and ticking resumes from
// the new baseline. When a refresh fails the display simply keeps ticking
// from the last authoritative value.
type Display struct {
	mu        sync.Mutex
	automatic float64
	locked    float64
	rate      float64
}

// NewDisplay starts a display from an authoritative record.
func NewDisplay(rec Record) *Display {
	return &Display{
		automatic: rec.AutomaticBalance,
		locked:    rec.LockedBalance,
		rate:      rec.GrowthRate,
	}
}

// Tick extrapolates the displayed automatic balance across one interval.
func (d *Display) Tick(interval time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.automatic += d.rate * interval.Seconds()
}

// Sync overwrites the displayed values with an authoritative record.
func (d *Display) Sync(rec Record) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.automatic = rec.AutomaticBalance
	d.locked = rec.LockedBalance
	d.rate = rec.GrowthRate
}

// Automatic returns the currently displayed automatic balance.
func (d *Display) Automatic() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.automatic
}

// Locked returns the currently displayed locked balance.
func (d *Display) Locked() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.locked
}

// Run ticks the display on a fixed cadence until ctx is done. The ticker is
// always stopped on return so an abandoned view cannot leak it.
func (d *Display) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.Tick(every)
		}
	}
}
