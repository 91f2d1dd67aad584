// Package artwork renders procedural recipe covers so cards have imagery
// without loading photos over the network.
package artwork

import (
	"image"
	"image/color"
	"strings"
	"sync"

	"golang.org/x/image/colornames"
	xdraw "golang.org/x/image/draw"
)

// Fallback is used for palette entries that are not CSS color names.
var Fallback = color.RGBA{R: 0x15, G: 0x18, B: 0x35, A: 0xff}

// seedSize is the edge of the gradient rendered before upscaling.
const seedSize = 16

type key struct {
	from, to string
	w, h     int
}

var (
	cacheMu sync.Mutex
	cache   = map[key]*image.RGBA{}
)

// Cover returns a w×h diagonal gradient running from palette[0] in the top
// left corner to palette[1] in the bottom right. Missing or unknown names use
// Fallback. Results are cached and shared, so callers must not modify them.
func Cover(palette []string, w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	k := key{w: w, h: h}
	if len(palette) > 0 {
		k.from = normalize(palette[0])
	}
	if len(palette) > 1 {
		k.to = normalize(palette[1])
	} else {
		k.to = k.from
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if img, ok := cache[k]; ok {
		return img
	}

	seed := gradient(Lookup(k.from), Lookup(k.to), seedSize)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), seed, seed.Bounds(), xdraw.Src, nil)
	cache[k] = dst
	return dst
}

// Lookup resolves a CSS color name, returning Fallback for unknown names.
func Lookup(name string) color.RGBA {
	if c, ok := colornames.Map[normalize(name)]; ok {
		return c
	}
	return Fallback
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func gradient(from, to color.RGBA, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	span := float64(2 * (size - 1))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, mix(from, to, float64(x+y)/span))
		}
	}
	return img
}

func mix(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}
