package screen

import "github.com/go-drift/drift/pkg/graphics"

// Colors used by the home screen.
var (
	BackgroundColor = graphics.RGB(0x0f, 0x12, 0x20)

	cardColor       = graphics.RGB(0x15, 0x18, 0x35)
	imageWellColor  = graphics.RGB(0x0d, 0x10, 0x26)
	accentColor     = graphics.RGB(0x63, 0x66, 0xf1)
	cookColor       = graphics.RGB(0x22, 0xc5, 0x5e)
	cookLabelColor  = graphics.RGB(0x0a, 0x0d, 0x1a)
	foregroundColor = graphics.RGB(0xff, 0xff, 0xff)
	shadowColor     = graphics.RGBA(0, 0, 0, 0.25)
	badgeColor      = graphics.RGBA(0, 0, 0, 0.5)
	subtleFill      = foregroundColor.WithAlpha(0.08)
)

// Card and indicator dimensions in logical pixels.
const (
	imageHeight      = 220.0
	cardRadius       = 22.0
	cardPadding      = 16.0
	dotSize          = 8.0
	dotGap           = 8.0
	headerHorizontal = 20.0
)
