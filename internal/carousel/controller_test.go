package carousel

import (
	"errors"
	"testing"
	"time"
)

func TestController_InitialState(t *testing.T) {
	c := NewController(5, &recordingSurface{}, &manualScheduler{})

	if c.ActiveIndex() != 0 {
		t.Errorf("expected active index 0, got %d", c.ActiveIndex())
	}
	if c.ScrollOffset() != 0 {
		t.Errorf("expected scroll offset 0, got %v", c.ScrollOffset())
	}
	if c.IsRunning() {
		t.Error("controller should not run before Start")
	}
}

func TestController_TickWrapsFromLastToFirst(t *testing.T) {
	surface := &recordingSurface{}
	c := NewController(5, surface, &manualScheduler{})
	c.OnVisibilityChanged(4, true)

	c.Tick()

	if c.ActiveIndex() != 0 {
		t.Errorf("expected active index to wrap to 0, got %d", c.ActiveIndex())
	}
	if surface.last() != 0 {
		t.Errorf("expected scroll request to 0, got %d", surface.last())
	}
}

func TestController_TickCycleClosure(t *testing.T) {
	for n := 1; n <= 7; n++ {
		surface := &recordingSurface{}
		c := NewController(n, surface, &manualScheduler{})
		for i := 0; i < n; i++ {
			c.Tick()
			if want := (i + 1) % n; c.ActiveIndex() != want {
				t.Fatalf("n=%d tick %d: expected index %d, got %d", n, i, want, c.ActiveIndex())
			}
		}
		if c.ActiveIndex() != 0 {
			t.Errorf("n=%d: expected %d ticks to return to 0, got %d", n, n, c.ActiveIndex())
		}
		if len(surface.requests) != n {
			t.Errorf("n=%d: expected %d scroll requests, got %d", n, n, len(surface.requests))
		}
	}
}

func TestController_TickLeadsVisualSettle(t *testing.T) {
	surface := &recordingSurface{}
	c := NewController(5, surface, &manualScheduler{})

	c.Tick()

	// The surface has not reported any movement yet.
	if c.ScrollOffset() != 0 {
		t.Errorf("expected offset to stay 0, got %v", c.ScrollOffset())
	}
	if c.ActiveIndex() != 1 {
		t.Errorf("expected optimistic index 1, got %d", c.ActiveIndex())
	}
}

func TestController_OnVisibilityChangedIsUnconditional(t *testing.T) {
	c := NewController(5, &recordingSurface{}, &manualScheduler{})

	for _, start := range []int{0, 2, 4} {
		for k := 0; k < 5; k++ {
			c.OnVisibilityChanged(start, true)
			c.OnVisibilityChanged(k, true)
			if c.ActiveIndex() != k {
				t.Errorf("from %d: expected %d, got %d", start, k, c.ActiveIndex())
			}
			c.OnVisibilityChanged(k, true)
			if c.ActiveIndex() != k {
				t.Errorf("repeated %d: expected %d, got %d", k, k, c.ActiveIndex())
			}
		}
	}
}

func TestController_OnVisibilityChangedUndefinedIsIgnored(t *testing.T) {
	c := NewController(5, &recordingSurface{}, &manualScheduler{})
	c.OnVisibilityChanged(3, true)

	c.OnVisibilityChanged(0, false)

	if c.ActiveIndex() != 3 {
		t.Errorf("expected index to stay 3, got %d", c.ActiveIndex())
	}
}

func TestController_UserScrollThenSettle(t *testing.T) {
	c := NewController(5, &recordingSurface{}, &manualScheduler{})
	offset := 2.3 * testSlot

	c.OnUserScroll(offset)
	if c.ActiveIndex() != 0 {
		t.Errorf("scrolling alone should not move the index, got %d", c.ActiveIndex())
	}
	c.OnVisibilityChanged(2, true)

	if c.ActiveIndex() != 2 {
		t.Errorf("expected active index 2, got %d", c.ActiveIndex())
	}
	if c.ScrollOffset() != offset {
		t.Errorf("expected offset %v to be retained, got %v", offset, c.ScrollOffset())
	}
}

func TestController_LastWriteWins(t *testing.T) {
	c := NewController(5, &recordingSurface{}, &manualScheduler{})

	c.Tick()
	c.OnVisibilityChanged(0, true)
	if c.ActiveIndex() != 0 {
		t.Errorf("visibility after tick: expected 0, got %d", c.ActiveIndex())
	}

	c.OnVisibilityChanged(3, true)
	c.Tick()
	if c.ActiveIndex() != 4 {
		t.Errorf("tick after visibility: expected 4, got %d", c.ActiveIndex())
	}
}

func TestController_StartErrors(t *testing.T) {
	if err := NewController(0, nil, &manualScheduler{}).Start(time.Second); !errors.Is(err, ErrNoItems) {
		t.Errorf("expected ErrNoItems, got %v", err)
	}
	if err := NewController(3, nil, &manualScheduler{}).Start(0); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("expected ErrInvalidInterval, got %v", err)
	}

	c := NewController(3, nil, &manualScheduler{})
	if err := c.Start(time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Start(time.Second); !errors.Is(err, ErrStarted) {
		t.Errorf("expected ErrStarted, got %v", err)
	}

	c.Dispose()
	if err := c.Start(time.Second); !errors.Is(err, ErrDisposed) {
		t.Errorf("expected ErrDisposed, got %v", err)
	}
}

func TestController_StartRegistersTimer(t *testing.T) {
	scheduler := &manualScheduler{}
	surface := &recordingSurface{}
	c := NewController(5, surface, scheduler)

	if err := c.Start(DefaultInterval); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scheduler.timers) != 1 {
		t.Fatalf("expected one timer, got %d", len(scheduler.timers))
	}
	if scheduler.timers[0].period != DefaultInterval {
		t.Errorf("expected period %v, got %v", DefaultInterval, scheduler.timers[0].period)
	}

	scheduler.timers[0].fire()
	scheduler.timers[0].fire()

	if c.ActiveIndex() != 2 {
		t.Errorf("expected index 2 after two ticks, got %d", c.ActiveIndex())
	}
	if c.Interval() != DefaultInterval {
		t.Errorf("expected interval %v, got %v", DefaultInterval, c.Interval())
	}
}

func TestController_DisposeStopsTimer(t *testing.T) {
	clk := useFakeClock(t)
	surface := &recordingSurface{}
	c := NewController(5, surface, FrameScheduler{})
	if err := c.Start(3 * time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	advance(clk, 3*time.Second)
	if c.ActiveIndex() != 1 {
		t.Fatalf("expected one tick after 3s, got index %d", c.ActiveIndex())
	}

	c.Dispose()
	advance(clk, 15*time.Second)

	if c.ActiveIndex() != 1 {
		t.Errorf("expected index to stay 1 after dispose, got %d", c.ActiveIndex())
	}
	if len(surface.requests) != 1 {
		t.Errorf("expected no scroll requests after dispose, got %v", surface.requests)
	}
	if c.IsRunning() {
		t.Error("controller should not run after dispose")
	}
}

func TestController_EventsAfterDisposeAreNoOps(t *testing.T) {
	scheduler := &manualScheduler{}
	surface := &recordingSurface{}
	c := NewController(5, surface, scheduler)
	_ = c.Start(time.Second)
	timer := scheduler.timers[0]

	c.Dispose()
	c.Dispose()

	timer.fn() // a tick that was already in flight
	c.OnUserScroll(500)
	c.OnVisibilityChanged(3, true)
	c.ScrollTo(2)

	if c.ActiveIndex() != 0 || c.ScrollOffset() != 0 {
		t.Errorf("expected state unchanged, got index=%d offset=%v", c.ActiveIndex(), c.ScrollOffset())
	}
	if len(surface.requests) != 0 {
		t.Errorf("expected no scroll requests, got %v", surface.requests)
	}
	if !timer.stopped {
		t.Error("expected timer to be stopped")
	}
}

func TestController_OnUserScrollNeverTouchesIndex(t *testing.T) {
	c := NewController(5, &recordingSurface{}, &manualScheduler{})
	for _, offset := range []float64{0, 100, 3 * testSlot, 4.9 * testSlot, -20} {
		c.OnUserScroll(offset)
		if c.ScrollOffset() != offset {
			t.Errorf("expected offset %v, got %v", offset, c.ScrollOffset())
		}
		if c.ActiveIndex() != 0 {
			t.Errorf("expected index 0, got %d", c.ActiveIndex())
		}
	}
}

func TestController_OutOfRangeRequestsAreReported(t *testing.T) {
	h := captureErrors(t)
	surface := &recordingSurface{}
	c := NewController(5, surface, &manualScheduler{})
	c.OnVisibilityChanged(1, true)

	c.ScrollTo(5)
	c.ScrollTo(-1)
	c.OnVisibilityChanged(7, true)

	if len(surface.requests) != 0 {
		t.Errorf("expected no scroll requests, got %v", surface.requests)
	}
	if c.ActiveIndex() != 1 {
		t.Errorf("expected index to stay 1, got %d", c.ActiveIndex())
	}
	if len(h.errs) != 3 {
		t.Fatalf("expected 3 reported errors, got %d", len(h.errs))
	}
	for _, err := range h.errs {
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("expected ErrIndexOutOfRange, got %v", err)
		}
	}
	if h.errs[0].Op != "carousel.Controller.ScrollTo" {
		t.Errorf("unexpected op %q", h.errs[0].Op)
	}
}

func TestController_Listeners(t *testing.T) {
	c := NewController(5, &recordingSurface{}, &manualScheduler{})
	var calls int
	unsubscribe := c.AddListener(func() { calls++ })

	c.Tick()
	c.OnUserScroll(10)
	c.OnUserScroll(10)             // unchanged
	c.OnVisibilityChanged(1, true) // unchanged
	c.OnVisibilityChanged(2, true)

	if calls != 3 {
		t.Errorf("expected 3 notifications, got %d", calls)
	}

	unsubscribe()
	c.Tick()
	if calls != 3 {
		t.Errorf("expected no notifications after unsubscribe, got %d", calls)
	}
}
