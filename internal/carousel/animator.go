package carousel

import (
	"time"

	"github.com/go-drift/drift/pkg/animation"
)

// OffsetAnimator moves a scroll offset to a target, either in one jump or
// eased over Duration on the animation frame ticker. Every offset it
// produces is passed to the onOffset callback; the animator never stores the
// offset itself, so the scroll view stays the single source of truth.
//
// Always call Dispose when done to stop the ticker.
type OffsetAnimator struct {
	current  func() float64
	onOffset func(float64)

	anim    *animation.AnimationController
	unsub   func()
	from    float64
	to      float64
	running bool
}

// NewOffsetAnimator creates an animator that reads the current offset from
// current and writes new offsets to onOffset.
func NewOffsetAnimator(duration time.Duration, current func() float64, onOffset func(float64)) *OffsetAnimator {
	a := &OffsetAnimator{
		current:  current,
		onOffset: onOffset,
		anim:     animation.NewAnimationController(duration),
	}
	a.anim.Curve = animation.EaseInOut
	a.unsub = a.anim.AddListener(a.step)
	return a
}

// MoveTo cancels any move in flight and heads for target.
func (a *OffsetAnimator) MoveTo(target float64, animated bool) {
	a.anim.Stop()
	a.running = false
	if !animated || a.anim.Duration <= 0 {
		a.onOffset(target)
		return
	}
	a.from, a.to = a.current(), target
	a.running = true
	a.anim.Value = 0
	a.anim.Forward()
}

// IsAnimating reports whether an animated move is still in flight.
func (a *OffsetAnimator) IsAnimating() bool {
	return a.running
}

func (a *OffsetAnimator) step() {
	if a.anim.Value >= 1 {
		a.running = false
		a.onOffset(a.to)
		return
	}
	a.onOffset(animation.LerpFloat64(a.from, a.to, a.anim.Value))
}

// Dispose stops the animation.
func (a *OffsetAnimator) Dispose() {
	a.running = false
	a.unsub()
	a.anim.Stop()
	a.anim.Dispose()
}
