package carousel

import "math"

// DefaultViewabilityThreshold is the share of the viewport a card must cover
// to count as visible.
const DefaultViewabilityThreshold = 0.5

// Viewability decides which card is visible for a scroll offset and reports
// when that answer changes.
type Viewability struct {
	Geometry  Geometry
	Count     int
	Threshold float64

	last    int
	lastOK  bool
	started bool
}

// NewViewability creates a tracker over count cards laid out by geometry.
func NewViewability(geometry Geometry, count int, threshold float64) *Viewability {
	return &Viewability{
		Geometry:  geometry,
		Count:     count,
		Threshold: threshold,
	}
}

// Coverage returns the share of the viewport covered by card index at offset.
func (v *Viewability) Coverage(offset float64, index int) float64 {
	viewport := v.Geometry.ViewportWidth
	if viewport <= 0 {
		return 0
	}
	start, end := v.Geometry.CardBounds(index)
	visible := math.Min(end, offset+viewport) - math.Max(start, offset)
	if visible <= 0 {
		return 0
	}
	return visible / viewport
}

// VisibleIndex returns the first card covering at least Threshold of the
// viewport, if any.
func (v *Viewability) VisibleIndex(offset float64) (int, bool) {
	for i := 0; i < v.Count; i++ {
		if v.Coverage(offset, i) >= v.Threshold {
			return i, true
		}
	}
	return 0, false
}

// Update evaluates offset and reports whether the visible card differs from
// the previous update.
func (v *Viewability) Update(offset float64) (index int, ok, changed bool) {
	index, ok = v.VisibleIndex(offset)
	changed = !v.started || ok != v.lastOK || (ok && index != v.last)
	v.started = true
	v.last = index
	v.lastOK = ok
	return index, ok, changed
}

// Reset forgets the last reported card, so the next Update reports a change.
func (v *Viewability) Reset() {
	v.started = false
}
