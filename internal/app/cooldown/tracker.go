// Package cooldown enforces the minimum wall-clock gap between two harvests
// of the same plot instance. The game server allows more frequent harvesting
// than intended, so this overlay is what actually gates re-harvesting.
package cooldown

import "time"

const DefaultHarvestInterval = 6 * time.Hour

// Tracker maps plot-instance ids to their last recorded harvest time. It
// lives for the bot session only and is owned by the single cycle goroutine;
// entries are never removed and timestamps only move forward.
type Tracker struct {
	interval time.Duration
	now      func() time.Time
	lastAt   map[int64]time.Time
}

func NewTracker(interval time.Duration) *Tracker {
	if interval <= 0 {
		interval = DefaultHarvestInterval
	}
	return &Tracker{
		interval: interval,
		now:      time.Now,
		lastAt:   make(map[int64]time.Time),
	}
}

// NewTrackerAt is NewTracker with an injected clock, for tests and simulated
// sessions.
func NewTrackerAt(interval time.Duration, now func() time.Time) *Tracker {
	t := NewTracker(interval)
	if now != nil {
		t.now = now
	}
	return t
}

// RecordHarvest stamps the current time against the plot. A stamp never moves
// backwards, so replaying a stale success cannot shorten the wait.
func (t *Tracker) RecordHarvest(plotID int64) {
	now := t.now()
	if last, ok := t.lastAt[plotID]; ok && last.After(now) {
		return
	}
	t.lastAt[plotID] = now
}

// CanHarvest reports whether the plot is eligible: never stamped, or the
// elapsed time since the stamp is at least the interval (boundary inclusive).
func (t *Tracker) CanHarvest(plotID int64) bool {
	last, ok := t.lastAt[plotID]
	if !ok {
		return true
	}
	return t.now().Sub(last) >= t.interval
}

// MinutesUntilEligible returns the remaining wait rounded up to whole
// minutes, or 0 when the plot is already eligible or was never harvested.
func (t *Tracker) MinutesUntilEligible(plotID int64) int {
	last, ok := t.lastAt[plotID]
	if !ok {
		return 0
	}
	remaining := t.interval - t.now().Sub(last)
	if remaining <= 0 {
		return 0
	}
	return int((remaining + time.Minute - 1) / time.Minute)
}
