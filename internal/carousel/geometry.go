package carousel

import "math"

const (
	// DefaultCardFraction is the share of the viewport width taken by one card.
	DefaultCardFraction = 0.78
	// DefaultSpacing is the gap between two adjacent cards.
	DefaultSpacing = 16.0
)

// Geometry describes the horizontal slot layout of a carousel whose active
// card is centered in the viewport.
type Geometry struct {
	// ViewportWidth is the visible width of the scroll view.
	ViewportWidth float64
	// CardWidth is the width of a single card.
	CardWidth float64
	// Spacing is the gap between adjacent cards.
	Spacing float64
}

// NewGeometry sizes cards to cardFraction of the viewport width.
func NewGeometry(viewportWidth, cardFraction, spacing float64) Geometry {
	if viewportWidth < 0 {
		viewportWidth = 0
	}
	return Geometry{
		ViewportWidth: viewportWidth,
		CardWidth:     viewportWidth * cardFraction,
		Spacing:       spacing,
	}
}

// SlotWidth returns the distance between the leading edges of two adjacent
// cards.
func (g Geometry) SlotWidth() float64 {
	return g.CardWidth + g.Spacing
}

// Spacer returns the leading (and trailing) inset that centers the first and
// last card.
func (g Geometry) Spacer() float64 {
	return math.Max(0, (g.ViewportWidth-g.CardWidth)/2)
}

// OffsetForIndex returns the scroll offset at which slot index is centered.
func (g Geometry) OffsetForIndex(index int) float64 {
	return float64(index) * g.SlotWidth()
}

// NearestIndex returns the slot closest to offset, clamped to [0, count).
func (g Geometry) NearestIndex(offset float64, count int) int {
	slot := g.SlotWidth()
	if slot <= 0 || count <= 0 {
		return 0
	}
	index := int(math.Round(offset / slot))
	if index < 0 {
		return 0
	}
	if index > count-1 {
		return count - 1
	}
	return index
}

// IsAligned reports whether offset rests on a slot boundary.
func (g Geometry) IsAligned(offset float64, count int) bool {
	const epsilon = 0.5
	return math.Abs(offset-g.OffsetForIndex(g.NearestIndex(offset, count))) < epsilon
}

// MaxOffset returns the largest reachable scroll offset for count cards.
func (g Geometry) MaxOffset(count int) float64 {
	if count <= 1 {
		return 0
	}
	return float64(count-1) * g.SlotWidth()
}

// ContentWidth returns the total scrollable width for count cards, including
// both spacers.
func (g Geometry) ContentWidth(count int) float64 {
	if count <= 0 {
		return 2 * g.Spacer()
	}
	return 2*g.Spacer() + float64(count)*g.CardWidth + float64(count-1)*g.Spacing
}

// CardBounds returns the leading and trailing edge of card index in content
// coordinates.
func (g Geometry) CardBounds(index int) (start, end float64) {
	start = g.Spacer() + g.OffsetForIndex(index)
	return start, start + g.CardWidth
}
