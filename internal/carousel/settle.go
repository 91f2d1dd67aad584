package carousel

import (
	"time"

	"github.com/go-drift/drift/pkg/animation"
)

// DefaultSettleDelay is how long the offset must stay still before a scroll
// counts as settled.
const DefaultSettleDelay = 120 * time.Millisecond

// Settler detects when scrolling comes to rest. It only runs a frame ticker
// while the offset is moving, so an idle carousel does not keep the frame
// loop busy.
type Settler struct {
	// QuietWindow is how long the offset must stay unchanged.
	QuietWindow time.Duration
	// OnSettle receives the resting offset.
	OnSettle func(offset float64)
	// Busy, when set, holds off the settle while it returns true, e.g. while
	// a programmatic scroll is in flight.
	Busy func() bool

	ticker     *animation.Ticker
	offset     float64
	lastChange time.Time
	disposed   bool
}

// NewSettler creates a settler that calls onSettle after window of stillness.
func NewSettler(window time.Duration, onSettle func(offset float64)) *Settler {
	s := &Settler{QuietWindow: window, OnSettle: onSettle}
	s.ticker = animation.NewTicker(s.check)
	return s
}

// Observe records a new offset and restarts the quiet window.
func (s *Settler) Observe(offset float64) {
	if s.disposed {
		return
	}
	s.offset = offset
	s.lastChange = animation.Now()
	s.ticker.Start()
}

// Pending reports whether a settle is still expected.
func (s *Settler) Pending() bool {
	return s.ticker.IsActive()
}

func (s *Settler) check(time.Duration) {
	if s.Busy != nil && s.Busy() {
		s.lastChange = animation.Now()
		return
	}
	if animation.Now().Sub(s.lastChange) < s.QuietWindow {
		return
	}
	s.ticker.Stop()
	if s.OnSettle != nil {
		s.OnSettle(s.offset)
	}
}

// Dispose stops watching.
func (s *Settler) Dispose() {
	s.disposed = true
	s.ticker.Stop()
}
