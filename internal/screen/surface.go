package screen

import (
	"time"

	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/taste/internal/carousel"
)

// scrollSurface moves a horizontal ScrollController to card slots. Animated
// moves jump the scroll controller on every frame, so every offset change
// still arrives through the scroll controller's listeners.
type scrollSurface struct {
	scroll   *widgets.ScrollController
	animator *carousel.OffsetAnimator
	geometry func() carousel.Geometry
}

var _ carousel.Surface = (*scrollSurface)(nil)

func newScrollSurface(scroll *widgets.ScrollController, duration time.Duration, geometry func() carousel.Geometry) *scrollSurface {
	return &scrollSurface{
		scroll:   scroll,
		animator: carousel.NewOffsetAnimator(duration, scroll.Offset, scroll.JumpTo),
		geometry: geometry,
	}
}

// ScrollToIndex scrolls so card index is centered.
func (s *scrollSurface) ScrollToIndex(index int, animated bool) {
	s.animator.MoveTo(s.geometry().OffsetForIndex(index), animated)
}

// animating reports whether a programmatic scroll is in flight.
func (s *scrollSurface) animating() bool {
	return s.animator.IsAnimating()
}

func (s *scrollSurface) Dispose() {
	s.animator.Dispose()
}
