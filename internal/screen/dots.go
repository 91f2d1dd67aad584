package screen

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/taste/internal/carousel"
)

// dots is the page indicator under the carousel.
type dots struct {
	core.StatelessBase

	count  int
	offset float64
	slot   float64
}

func (d dots) Build(ctx core.BuildContext) core.Widget {
	maxScale := carousel.DotScaleRange[1]
	box := dotSize * maxScale

	children := make([]core.Widget, 0, 2*d.count)
	for i := 0; i < d.count; i++ {
		if i > 0 {
			children = append(children, widgets.HSpace(dotGap))
		}
		t := carousel.DotTransformAt(d.offset, i, d.slot)
		size := dotSize * t.Scale
		children = append(children, widgets.SizedBox{
			Width:  box,
			Height: box,
			Child: widgets.Centered(widgets.Opacity{
				Opacity: t.Opacity,
				Child: widgets.Container{
					Width:        size,
					Height:       size,
					Color:        foregroundColor,
					BorderRadius: size / 2,
				},
			}),
		})
	}

	return widgets.PaddingSym(0, 16, widgets.RowOf(
		widgets.MainAxisAlignmentCenter,
		widgets.CrossAxisAlignmentCenter,
		widgets.MainAxisSizeMax,
		children...,
	))
}
