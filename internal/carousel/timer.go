package carousel

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-drift/drift/pkg/animation"
	"github.com/go-drift/drift/pkg/platform"
)

// Timer is a handle to a recurring callback. Stop is idempotent; once it
// returns the callback is never invoked again.
type Timer interface {
	Stop()
}

// Scheduler starts recurring timers whose callbacks run on the UI thread.
type Scheduler interface {
	Every(period time.Duration, fn func()) Timer
}

// DispatchScheduler runs a background ticker and hands each tick to the UI
// thread. It does not keep the frame loop busy between ticks.
type DispatchScheduler struct {
	// Dispatch schedules a callback on the UI thread. Defaults to
	// platform.Dispatch.
	Dispatch func(callback func()) bool
}

// Every starts a timer that calls fn once per period.
func (s DispatchScheduler) Every(period time.Duration, fn func()) Timer {
	dispatch := s.Dispatch
	if dispatch == nil {
		dispatch = platform.Dispatch
	}
	t := &dispatchTimer{done: make(chan struct{})}
	ticker := time.NewTicker(period)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-t.done:
				return
			case <-ticker.C:
				// A tick queued before Stop may run after it.
				dispatch(func() {
					if t.stopped.Load() {
						return
					}
					fn()
				})
			}
		}
	}()
	return t
}

type dispatchTimer struct {
	done    chan struct{}
	once    sync.Once
	stopped atomic.Bool
}

func (t *dispatchTimer) Stop() {
	t.once.Do(func() {
		t.stopped.Store(true)
		close(t.done)
	})
}

// FrameScheduler runs timers on the animation frame ticker. Time comes from
// the animation clock, so tests and simulations can drive it with a fake
// clock and animation.StepTickers.
//
// Periods missed between two frames collapse into a single callback.
type FrameScheduler struct{}

// Every starts a timer that calls fn once per period.
func (FrameScheduler) Every(period time.Duration, fn func()) Timer {
	t := &frameTimer{period: period, fn: fn}
	t.ticker = animation.NewTicker(t.tick)
	t.ticker.Start()
	return t
}

type frameTimer struct {
	period  time.Duration
	fn      func()
	ticker  *animation.Ticker
	fired   int64
	stopped bool
}

func (t *frameTimer) tick(elapsed time.Duration) {
	if t.stopped || t.period <= 0 {
		return
	}
	due := int64(elapsed / t.period)
	if due <= t.fired {
		return
	}
	t.fired = due
	t.fn()
}

func (t *frameTimer) Stop() {
	if t.stopped {
		return
	}
	t.stopped = true
	t.ticker.Stop()
}
