package screen

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/widgets"
)

// Header texts.
const (
	Brand             = "Taste"
	Tagline           = "Find your next favorite dish"
	SearchPlaceholder = "Search recipes, ingredients…"
	FiltersLabel      = "Filters"
)

// header shows the brand, the tagline and the search row.
type header struct {
	core.StatelessBase

	search    *platform.TextEditingController
	onFilters func()
}

func (h header) Build(ctx core.BuildContext) core.Widget {
	return widgets.PaddingOnly(headerHorizontal, 8, headerHorizontal, 18,
		widgets.ColumnOf(
			widgets.MainAxisAlignmentStart,
			widgets.CrossAxisAlignmentStretch,
			widgets.MainAxisSizeMin,

			widgets.Text{Content: Brand, Style: graphics.TextStyle{
				Color:      foregroundColor,
				FontSize:   34,
				FontWeight: graphics.FontWeightExtraBold,
			}},
			widgets.VSpace(4),
			widgets.Text{Content: Tagline, Style: graphics.TextStyle{
				Color:    foregroundColor.WithAlpha(0.75),
				FontSize: 15,
			}},
			widgets.VSpace(14),
			widgets.RowOf(
				widgets.MainAxisAlignmentStart,
				widgets.CrossAxisAlignmentCenter,
				widgets.MainAxisSizeMax,

				widgets.Expanded{Child: widgets.TextField{
					Controller:       h.search,
					Placeholder:      SearchPlaceholder,
					Padding:          layout.EdgeInsetsSymmetric(14, 12),
					BackgroundColor:  subtleFill,
					BorderRadius:     14,
					Style:            graphics.TextStyle{Color: foregroundColor, FontSize: 15},
					PlaceholderColor: foregroundColor.WithAlpha(0.6),
				}},
				widgets.HSpace(10),
				widgets.Button{
					Label:        FiltersLabel,
					OnTap:        h.onFilters,
					Color:        accentColor,
					TextColor:    foregroundColor,
					FontSize:     15,
					Padding:      layout.EdgeInsetsSymmetric(14, 12),
					BorderRadius: 12,
					Haptic:       true,
				},
			),
		),
	)
}
