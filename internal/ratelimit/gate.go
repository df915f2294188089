// Package ratelimit throttles outbound calls to the stats provider. The
// provider blocks clients that hammer it, so every call must pass through a
// single process-wide gate that keeps at least a minimum interval between
// admissions.
package ratelimit

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultInterval is the minimum spacing between admissions. 600ms keeps
// stats.nba.com from rejecting the session.
const DefaultInterval = 600 * time.Millisecond

// Gate admits callers no closer together than a fixed interval. The lock
// serializes the admission decision across concurrent callers; calls already
// admitted may still be in flight concurrently.
type Gate struct {
	mu       sync.Mutex
	interval time.Duration
	clock    clockwork.Clock
	last     time.Time
}

// New returns a Gate with the given minimum interval between admissions.
// A non-positive interval falls back to DefaultInterval.
func New(interval time.Duration) *Gate {
	return NewWithClock(interval, clockwork.NewRealClock())
}

// NewWithClock is New with an injected clock for tests.
func NewWithClock(interval time.Duration, clock clockwork.Clock) *Gate {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Gate{interval: interval, clock: clock}
}

// Admit blocks until at least the configured interval has passed since the
// previous admission, then records the new admission time. It never fails;
// the longest possible wait is one interval.
func (g *Gate) Admit() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.last.IsZero() {
		if wait := g.interval - g.clock.Since(g.last); wait > 0 {
			g.clock.Sleep(wait)
		}
	}
	g.last = g.clock.Now()
}
