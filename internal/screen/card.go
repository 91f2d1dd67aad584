package screen

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/taste/internal/artwork"
	"github.com/go-drift/taste/internal/carousel"
	"github.com/go-drift/taste/internal/recipes"
)

// Card labels.
const (
	CookLabel  = "Cook Now"
	SaveLabel  = "Save"
	SavedLabel = "Saved"
)

// recipeCard occupies one fixed-width slot. The transform shrinks the card
// inside the slot, pushes it down and fades it, so the row layout and the
// scroll extent never change while scrolling.
type recipeCard struct {
	core.StatelessBase

	recipe    recipes.Recipe
	width     float64
	transform carousel.Transform
	saved     bool
	onCook    func()
	onSave    func()
}

func (c recipeCard) Build(ctx core.BuildContext) core.Widget {
	scale := c.transform.Scale
	width := c.width * scale

	saveLabel := SaveLabel
	if c.saved {
		saveLabel = SavedLabel
	}

	body := widgets.PaddingAll(cardPadding*scale,
		widgets.ColumnOf(
			widgets.MainAxisAlignmentStart,
			widgets.CrossAxisAlignmentStart,
			widgets.MainAxisSizeMin,

			widgets.Text{Content: c.recipe.Title, MaxLines: 1, Style: graphics.TextStyle{
				Color:      foregroundColor,
				FontSize:   20 * scale,
				FontWeight: graphics.FontWeightExtraBold,
			}},
			widgets.VSpace(10*scale),
			widgets.Text{Content: c.recipe.Subtitle, MaxLines: 1, Style: graphics.TextStyle{
				Color:    foregroundColor.WithAlpha(0.7),
				FontSize: 14 * scale,
			}},
			widgets.VSpace(16*scale),
			widgets.RowOf(
				widgets.MainAxisAlignmentStart,
				widgets.CrossAxisAlignmentCenter,
				widgets.MainAxisSizeMin,

				widgets.Button{
					Label:        CookLabel,
					OnTap:        c.onCook,
					Color:        cookColor,
					TextColor:    cookLabelColor,
					FontSize:     14 * scale,
					Padding:      layout.EdgeInsetsSymmetric(16*scale, 12*scale),
					BorderRadius: 12 * scale,
					Haptic:       true,
				},
				widgets.HSpace(10*scale),
				widgets.Button{
					Label:        saveLabel,
					OnTap:        c.onSave,
					Color:        subtleFill,
					TextColor:    foregroundColor,
					FontSize:     14 * scale,
					Padding:      layout.EdgeInsetsSymmetric(16*scale, 12*scale),
					BorderRadius: 12 * scale,
					Haptic:       true,
				},
			),
		),
	)

	card := widgets.Container{
		Width:        width,
		Color:        cardColor,
		BorderRadius: cardRadius * scale,
		Shadow: &graphics.BoxShadow{
			Color:      shadowColor,
			Offset:     graphics.Offset{X: 0, Y: 10 * scale},
			BlurRadius: 18 * scale,
		},
		Child: widgets.ColumnOf(
			widgets.MainAxisAlignmentStart,
			widgets.CrossAxisAlignmentStart,
			widgets.MainAxisSizeMin,

			c.cover(width, imageHeight*scale, scale),
			body,
		),
	}

	return widgets.SizedBox{
		Width: c.width,
		Child: widgets.ColumnOf(
			widgets.MainAxisAlignmentStart,
			widgets.CrossAxisAlignmentCenter,
			widgets.MainAxisSizeMin,

			widgets.PaddingOnly(0, c.transform.TranslateY, 0, 0,
				widgets.Opacity{Opacity: c.transform.Opacity, Child: card},
			),
		),
	}
}

// cover renders the artwork with the duration and calorie badges pinned to
// its bottom left corner. The image is rendered at the unscaled card size so
// every frame reuses the cached bitmap.
func (c recipeCard) cover(width, height, scale float64) core.Widget {
	image := artwork.Cover(c.recipe.Palette, int(c.width), int(imageHeight))

	var badges []core.Widget
	for _, label := range []string{c.recipe.Duration, c.recipe.Calories} {
		if label == "" {
			continue
		}
		if len(badges) > 0 {
			badges = append(badges, widgets.HSpace(8*scale))
		}
		badges = append(badges, badge(label, scale))
	}

	return widgets.Container{
		Width:  width,
		Height: height,
		Color:  imageWellColor,
		Child: widgets.Stack{
			Children: []core.Widget{
				widgets.Image{
					Source:               image,
					Width:                width,
					Height:               height,
					Fit:                  widgets.ImageFitCover,
					ExcludeFromSemantics: true,
				},
				widgets.SizedBox{
					Width:  width,
					Height: height,
					Child: widgets.ColumnOf(
						widgets.MainAxisAlignmentEnd,
						widgets.CrossAxisAlignmentStart,
						widgets.MainAxisSizeMax,

						widgets.PaddingAll(12*scale, widgets.RowOf(
							widgets.MainAxisAlignmentStart,
							widgets.CrossAxisAlignmentCenter,
							widgets.MainAxisSizeMin,
							badges...,
						)),
					),
				},
			},
		},
	}
}

func badge(label string, scale float64) core.Widget {
	return widgets.Container{
		Color:        badgeColor,
		BorderRadius: 12 * scale,
		Padding:      layout.EdgeInsetsSymmetric(10*scale, 6*scale),
		Child: widgets.Text{Content: label, Style: graphics.TextStyle{
			Color:      foregroundColor,
			FontSize:   12 * scale,
			FontWeight: graphics.FontWeightSemibold,
		}},
	}
}
