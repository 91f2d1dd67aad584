package carousel

import (
	"fmt"
	"testing"
)

func TestCardTransformAt_CenteredAndNeighbors(t *testing.T) {
	for i := 0; i < 5; i++ {
		centered := CardTransformAt(float64(i)*testSlot, i, testSlot)
		if centered.Scale != 1.0 || centered.Opacity != 1.0 || centered.TranslateY != 0 {
			t.Errorf("card %d centered: got %+v", i, centered)
		}

		for _, neighbor := range []int{i - 1, i + 1} {
			got := CardTransformAt(float64(neighbor)*testSlot, i, testSlot)
			if got.Scale != 0.9 || got.Opacity != 0.6 || got.TranslateY != 14 {
				t.Errorf("card %d at slot %d: got %+v", i, neighbor, got)
			}
		}
	}
}

func TestCardTransformAt_ClampsBeyondOneSlot(t *testing.T) {
	for i := 0; i < 5; i++ {
		for _, delta := range []float64{1.01, 1.5, 2, 7.25} {
			for _, sign := range []float64{-1, 1} {
				offset := float64(i)*testSlot + sign*delta*testSlot
				got := CardTransformAt(offset, i, testSlot)
				if got.Scale != 0.9 || got.Opacity != 0.6 || got.TranslateY != 14 {
					t.Errorf("card %d at offset %v: got %+v", i, offset, got)
				}
			}
		}
	}
}

func TestCardTransformAt_Halfway(t *testing.T) {
	got := CardTransformAt(2.5*testSlot, 2, testSlot)

	if !approxEqual(got.Scale, 0.95) {
		t.Errorf("expected scale 0.95, got %v", got.Scale)
	}
	if !approxEqual(got.Opacity, 0.8) {
		t.Errorf("expected opacity 0.8, got %v", got.Opacity)
	}
	if !approxEqual(got.TranslateY, 7) {
		t.Errorf("expected translateY 7, got %v", got.TranslateY)
	}
}

func TestTransforms_StayWithinBounds(t *testing.T) {
	for i := 0; i < 5; i++ {
		for offset := -5 * testSlot; offset <= 10*testSlot; offset += 0.37 * testSlot {
			card := CardTransformAt(offset, i, testSlot)
			if card.Opacity < 0.6 || card.Opacity > 1.0 {
				t.Errorf("card %d opacity %v out of range at %v", i, card.Opacity, offset)
			}
			if card.Scale < 0.9 || card.Scale > 1.0 {
				t.Errorf("card %d scale %v out of range at %v", i, card.Scale, offset)
			}
			if card.TranslateY < 0 || card.TranslateY > 14 {
				t.Errorf("card %d translateY %v out of range at %v", i, card.TranslateY, offset)
			}

			dot := DotTransformAt(offset, i, testSlot)
			if dot.Opacity < 0.4 || dot.Opacity > 1.0 {
				t.Errorf("dot %d opacity %v out of range at %v", i, dot.Opacity, offset)
			}
			if dot.Scale < 1.0 || dot.Scale > 1.6 {
				t.Errorf("dot %d scale %v out of range at %v", i, dot.Scale, offset)
			}
		}
	}
}

func TestDotTransformAt(t *testing.T) {
	centered := DotTransformAt(3*testSlot, 3, testSlot)
	if centered.Scale != 1.6 || centered.Opacity != 1.0 {
		t.Errorf("centered dot: got %+v", centered)
	}

	away := DotTransformAt(0, 3, testSlot)
	if away.Scale != 1.0 || away.Opacity != 0.4 {
		t.Errorf("distant dot: got %+v", away)
	}
}

func TestInterpolate(t *testing.T) {
	in := [3]float64{0, 10, 20}
	out := [3]float64{2, 4, 0}

	tests := []struct {
		value float64
		want  float64
	}{
		{-100, 2},
		{0, 2},
		{5, 3},
		{10, 4},
		{15, 2},
		{20, 0},
		{1e9, 0},
	}
	for _, tt := range tests {
		if got := Interpolate(tt.value, in, out); !approxEqual(got, tt.want) {
			t.Errorf("Interpolate(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

// This example shows the scale of the third card while the carousel sits
// halfway between the second and third slot.
func ExampleCardTransformAt() {
	const slot = 328.0
	tr := CardTransformAt(1.5*slot, 2, slot)
	fmt.Printf("scale=%.2f opacity=%.2f translateY=%.1f\n", tr.Scale, tr.Opacity, tr.TranslateY)
	// Output: scale=0.95 opacity=0.80 translateY=7.0
}
