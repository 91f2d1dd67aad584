package carousel

import (
	"errors"
	"fmt"
	"time"

	drifterrors "github.com/go-drift/drift/pkg/errors"
)

// DefaultInterval is the auto-advance period.
const DefaultInterval = 3 * time.Second

var (
	// ErrStarted is returned by Start when the timer is already running.
	ErrStarted = errors.New("carousel: controller already started")
	// ErrDisposed is returned by Start after Dispose.
	ErrDisposed = errors.New("carousel: controller disposed")
	// ErrNoItems is returned by Start when there is nothing to advance through.
	ErrNoItems = errors.New("carousel: no items")
	// ErrInvalidInterval is returned by Start for a non-positive period.
	ErrInvalidInterval = errors.New("carousel: interval must be positive")
	// ErrIndexOutOfRange describes a scroll request outside [0, count).
	ErrIndexOutOfRange = errors.New("carousel: index out of range")
)

// Surface is the display that scrolls to a slot on request.
type Surface interface {
	ScrollToIndex(index int, animated bool)
}

// Controller tracks the active slot of a carousel and the continuous scroll
// offset of its display surface.
//
// Three event sources write to the controller: the auto-advance timer
// ([Controller.Tick]), scroll updates ([Controller.OnUserScroll]) and
// viewability changes ([Controller.OnVisibilityChanged]). Any of them may set
// the active index and the last write wins. Only OnUserScroll writes the
// scroll offset.
//
// Always call Dispose when done to cancel the timer.
type Controller struct {
	count     int
	surface   Surface
	scheduler Scheduler

	activeIndex  int
	scrollOffset float64

	timer    Timer
	interval time.Duration
	disposed bool

	listeners      map[int]func()
	nextListenerID int
}

// NewController creates a controller over count slots. A nil scheduler
// defaults to [DispatchScheduler].
func NewController(count int, surface Surface, scheduler Scheduler) *Controller {
	if scheduler == nil {
		scheduler = DispatchScheduler{}
	}
	return &Controller{
		count:     count,
		surface:   surface,
		scheduler: scheduler,
		listeners: make(map[int]func()),
	}
}

// Start begins advancing the active index every interval.
func (c *Controller) Start(interval time.Duration) error {
	switch {
	case c.disposed:
		return ErrDisposed
	case c.timer != nil:
		return ErrStarted
	case c.count <= 0:
		return ErrNoItems
	case interval <= 0:
		return fmt.Errorf("%w: %v", ErrInvalidInterval, interval)
	}
	c.interval = interval
	c.timer = c.scheduler.Every(interval, c.Tick)
	return nil
}

// Tick advances to the next slot, wrapping after the last one. The index is
// updated immediately; it does not wait for the scroll animation to finish.
func (c *Controller) Tick() {
	if c.disposed || c.count <= 0 {
		return
	}
	next := (c.activeIndex + 1) % c.count
	c.ScrollTo(next)
	c.activeIndex = next
	c.notifyListeners()
}

// ScrollTo requests an animated scroll to index without changing the active
// index. Out-of-range requests are reported and dropped.
func (c *Controller) ScrollTo(index int) {
	if c.disposed {
		return
	}
	if index < 0 || index >= c.count {
		reportInvariant("carousel.Controller.ScrollTo", fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, c.count))
		return
	}
	if c.surface != nil {
		c.surface.ScrollToIndex(index, true)
	}
}

// OnUserScroll records the current scroll offset of the display surface.
func (c *Controller) OnUserScroll(offset float64) {
	if c.disposed || offset == c.scrollOffset {
		return
	}
	c.scrollOffset = offset
	c.notifyListeners()
}

// OnVisibilityChanged sets the active index to the slot the surface reports
// as visible. It does nothing when ok is false.
func (c *Controller) OnVisibilityChanged(index int, ok bool) {
	if c.disposed || !ok {
		return
	}
	if index < 0 || index >= c.count {
		reportInvariant("carousel.Controller.OnVisibilityChanged", fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, c.count))
		return
	}
	changed := c.activeIndex != index
	c.activeIndex = index
	if changed {
		c.notifyListeners()
	}
}

// ActiveIndex returns the logically current slot.
func (c *Controller) ActiveIndex() int {
	return c.activeIndex
}

// ScrollOffset returns the last offset reported by the surface.
func (c *Controller) ScrollOffset() float64 {
	return c.scrollOffset
}

// Count returns the number of slots.
func (c *Controller) Count() int {
	return c.count
}

// Interval returns the auto-advance period, or zero before Start.
func (c *Controller) Interval() time.Duration {
	return c.interval
}

// IsRunning reports whether the auto-advance timer is active.
func (c *Controller) IsRunning() bool {
	return c.timer != nil
}

// IsDisposed reports whether Dispose has been called.
func (c *Controller) IsDisposed() bool {
	return c.disposed
}

// AddListener registers a callback that fires after the active index or the
// scroll offset changes. Returns an unsubscribe function.
func (c *Controller) AddListener(fn func()) func() {
	if fn == nil || c.disposed {
		return func() {}
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// Dispose cancels the timer and drops all listeners. Events arriving
// afterwards are ignored.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.listeners = nil
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

func reportInvariant(op string, err error) {
	drifterrors.Report(&drifterrors.DriftError{
		Op:   op,
		Kind: drifterrors.KindUnknown,
		Err:  err,
	})
}
