package poller

import (
	"math"
	"sync"
)

// Tracker records the highest block height seen so far. Its maximum never
// decreases.
type Tracker struct {
	mu  sync.Mutex
	max int64
}

func NewTracker() *Tracker {
	return &Tracker{max: math.MinInt64}
}

// Observe records h and returns true if it is strictly greater than every
// height observed before.
func (t *Tracker) Observe(h int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if h <= t.max {
		return false
	}
	t.max = h
	return true
}

// Max returns the highest height observed and false if nothing was observed
// yet.
func (t *Tracker) Max() (int64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.max, t.max != math.MinInt64
}
