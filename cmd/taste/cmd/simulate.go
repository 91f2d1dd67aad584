package cmd

import (
	"fmt"
	"time"

	"github.com/go-drift/drift/pkg/animation"

	"github.com/go-drift/taste/internal/carousel"
	"github.com/go-drift/taste/internal/config"
	"github.com/go-drift/taste/internal/recipes"
)

// frameInterval is the simulated frame period (60 Hz, rounded down).
const frameInterval = 16 * time.Millisecond

func init() {
	RegisterCommand(&Command{
		Name:  "simulate",
		Short: "Run the carousel against a virtual clock",
		Long: `Run the home screen carousel headless for --duration of virtual time
and print every change of the active card. Scroll animations, viewability
and the auto-advance timer run exactly as on a device, frame by frame.

Usage:
  taste simulate                      # Ten seconds on a 390pt screen
  taste simulate --duration 30s       # Watch it wrap around`,
		Usage: "taste simulate [--width W] [--duration D] [--dir DIR]",
		Run:   runSimulate,
	})
}

func runSimulate(args []string) error {
	width := defaultWidth
	duration := 10 * time.Second
	dir := "."
	for i := 0; i < len(args); i++ {
		if v, next, ok, err := flagValue(args, i, "--width"); err != nil {
			return err
		} else if ok {
			if width, err = parsePositive("--width", v); err != nil {
				return err
			}
			i = next
			continue
		}
		if v, next, ok, err := flagValue(args, i, "--duration"); err != nil {
			return err
		} else if ok {
			if duration, err = parseDuration("--duration", v); err != nil {
				return err
			}
			i = next
			continue
		}
		if v, next, ok, err := flagValue(args, i, "--dir"); err != nil {
			return err
		} else if ok {
			dir, i = v, next
			continue
		}
		return fmt.Errorf("unknown flag %q\n\nUsage: taste simulate [--width W] [--duration D] [--dir DIR]", args[i])
	}

	settings, err := loadSettings(dir)
	if err != nil {
		return err
	}
	return simulate(settings, recipes.Default(), width, duration)
}

// virtualClock is an animation clock that only moves when advanced.
type virtualClock struct {
	now time.Time
}

func (c *virtualClock) Now() time.Time { return c.now }

// simSurface holds the scroll offset of a headless carousel and forwards
// every change to onOffset.
type simSurface struct {
	geometry carousel.Geometry
	animator *carousel.OffsetAnimator
	offset   float64
	onOffset func(float64)
}

func newSimSurface(g carousel.Geometry, duration time.Duration) *simSurface {
	s := &simSurface{geometry: g}
	s.animator = carousel.NewOffsetAnimator(duration, func() float64 { return s.offset }, s.jump)
	return s
}

func (s *simSurface) ScrollToIndex(index int, animated bool) {
	s.animator.MoveTo(s.geometry.OffsetForIndex(index), animated)
}

func (s *simSurface) jump(offset float64) {
	if offset == s.offset {
		return
	}
	s.offset = offset
	if s.onOffset != nil {
		s.onOffset(offset)
	}
}

func simulate(settings config.Settings, catalog []recipes.Recipe, width float64, duration time.Duration) error {
	clk := &virtualClock{now: time.Unix(0, 0)}
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)
	start := clk.now

	g := settings.Geometry(width)
	count := len(catalog)
	surface := newSimSurface(g, settings.ScrollDuration)
	defer surface.animator.Dispose()
	ctrl := carousel.NewController(count, surface, carousel.FrameScheduler{})
	defer ctrl.Dispose()
	view := carousel.NewViewability(g, count, settings.ViewabilityThreshold)

	surface.onOffset = func(offset float64) {
		ctrl.OnUserScroll(offset)
		if index, ok, changed := view.Update(offset); changed {
			ctrl.OnVisibilityChanged(index, ok)
		}
	}
	if index, ok, changed := view.Update(0); changed {
		ctrl.OnVisibilityChanged(index, ok)
	}

	fmt.Fprintf(stdout, "simulating %d recipes for %v (width %.0f, interval %v)\n", count, duration, width, settings.Interval)
	active := ctrl.ActiveIndex()
	unsub := ctrl.AddListener(func() {
		if ctrl.ActiveIndex() == active {
			return
		}
		active = ctrl.ActiveIndex()
		elapsed := clk.now.Sub(start).Seconds()
		fmt.Fprintf(stdout, "%8.3fs  active=%d  offset=%.1f  %s\n", elapsed, active, ctrl.ScrollOffset(), catalog[active].Title)
	})
	defer unsub()

	if err := ctrl.Start(settings.Interval); err != nil {
		return err
	}
	for elapsed := time.Duration(0); elapsed < duration; {
		step := min(frameInterval, duration-elapsed)
		clk.now = clk.now.Add(step)
		elapsed += step
		animation.StepTickers()
	}

	offset := ctrl.ScrollOffset()
	fmt.Fprintf(stdout, "final     active=%d  offset=%.1f\n", ctrl.ActiveIndex(), offset)
	for i := range count {
		t := carousel.CardTransformAt(offset, i, g.SlotWidth())
		fmt.Fprintf(stdout, "  card %d  scale=%.2f opacity=%.2f translateY=%.1f\n", i, t.Scale, t.Opacity, t.TranslateY)
	}
	return nil
}
