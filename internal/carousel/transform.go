package carousel

import "github.com/go-drift/drift/pkg/animation"

// Output ranges sampled at one slot before, on, and one slot after a card's
// centered offset.
var (
	CardScaleRange      = [3]float64{0.9, 1.0, 0.9}
	CardOpacityRange    = [3]float64{0.6, 1.0, 0.6}
	CardTranslateYRange = [3]float64{14, 0, 14}
	DotScaleRange       = [3]float64{1.0, 1.6, 1.0}
	DotOpacityRange     = [3]float64{0.4, 1.0, 0.4}
)

// Transform is the visual state of a card for a given scroll offset.
type Transform struct {
	Scale      float64
	Opacity    float64
	TranslateY float64
}

// DotTransform is the visual state of an indicator dot.
type DotTransform struct {
	Scale   float64
	Opacity float64
}

// InputRange returns the offsets one slot before, at, and one slot after the
// centered position of index.
func InputRange(index int, slotWidth float64) [3]float64 {
	return [3]float64{
		float64(index-1) * slotWidth,
		float64(index) * slotWidth,
		float64(index+1) * slotWidth,
	}
}

// Interpolate maps value through the piecewise-linear function defined by
// input and output. Values outside the input range saturate to the nearest
// output endpoint.
func Interpolate(value float64, input, output [3]float64) float64 {
	switch {
	case value <= input[0]:
		return output[0]
	case value >= input[2]:
		return output[2]
	case value == input[1]:
		return output[1]
	case value < input[1]:
		return animation.LerpFloat64(output[0], output[1], (value-input[0])/(input[1]-input[0]))
	default:
		return animation.LerpFloat64(output[1], output[2], (value-input[1])/(input[2]-input[1]))
	}
}

// CardTransformAt returns the transform of card index at scroll offset.
func CardTransformAt(offset float64, index int, slotWidth float64) Transform {
	in := InputRange(index, slotWidth)
	return Transform{
		Scale:      Interpolate(offset, in, CardScaleRange),
		Opacity:    Interpolate(offset, in, CardOpacityRange),
		TranslateY: Interpolate(offset, in, CardTranslateYRange),
	}
}

// DotTransformAt returns the transform of indicator dot index at scroll offset.
func DotTransformAt(offset float64, index int, slotWidth float64) DotTransform {
	in := InputRange(index, slotWidth)
	return DotTransform{
		Scale:   Interpolate(offset, in, DotScaleRange),
		Opacity: Interpolate(offset, in, DotOpacityRange),
	}
}
