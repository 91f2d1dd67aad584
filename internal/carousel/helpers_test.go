package carousel

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/drift/pkg/animation"
	drifterrors "github.com/go-drift/drift/pkg/errors"
	drifttest "github.com/go-drift/drift/pkg/testing"
)

const testSlot = 328.0

// recordingSurface remembers every scroll request.
type recordingSurface struct {
	requests []int
}

func (s *recordingSurface) ScrollToIndex(index int, animated bool) {
	s.requests = append(s.requests, index)
}

func (s *recordingSurface) last() int {
	if len(s.requests) == 0 {
		return -1
	}
	return s.requests[len(s.requests)-1]
}

// manualScheduler hands out timers that fire only when the test says so.
type manualScheduler struct {
	timers []*manualTimer
}

type manualTimer struct {
	period  time.Duration
	fn      func()
	stopped bool
}

func (s *manualScheduler) Every(period time.Duration, fn func()) Timer {
	t := &manualTimer{period: period, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (t *manualTimer) Stop() {
	t.stopped = true
}

func (t *manualTimer) fire() {
	if !t.stopped {
		t.fn()
	}
}

// recordingHandler captures reported errors instead of logging them.
type recordingHandler struct {
	drifterrors.LogHandler
	errs []*drifterrors.DriftError
}

func (h *recordingHandler) HandleError(err *drifterrors.DriftError) {
	h.errs = append(h.errs, err)
}

func (h *recordingHandler) HandlePanic(*drifterrors.PanicError) {}

func (h *recordingHandler) HandleBuildError(*drifterrors.BuildError) {}

func captureErrors(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	drifterrors.SetHandler(h)
	t.Cleanup(func() { drifterrors.SetHandler(nil) })
	return h
}

func useFakeClock(t *testing.T) *drifttest.FakeClock {
	t.Helper()
	clk := drifttest.NewFakeClock()
	prev := animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clk
}

// advance moves the clock forward in frame-sized steps, stepping tickers
// after each one.
func advance(clk *drifttest.FakeClock, d time.Duration) {
	const frame = 16 * time.Millisecond
	for d > 0 {
		step := min(frame, d)
		clk.Advance(step)
		animation.StepTickers()
		d -= step
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
