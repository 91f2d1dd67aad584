package cmd

import (
	"fmt"
	"image/png"
	"os"
	"strconv"

	"github.com/go-drift/taste/internal/artwork"
	"github.com/go-drift/taste/internal/recipes"
)

func init() {
	RegisterCommand(&Command{
		Name:  "cover",
		Short: "Render a recipe's placeholder cover to PNG",
		Long: `Render the gradient cover shown while a recipe photo loads.

The image is written to --out (default: cover-<id>.png) at --width x --height
(default: 312x220).

Usage:
  taste cover 1                       # Writes cover-1.png
  taste cover 4 --out ramen.png       # Custom path`,
		Usage: "taste cover <recipe-id> [--out file] [--width W] [--height H]",
		Run:   runCover,
	})
}

func runCover(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("recipe id is required\n\nUsage: taste cover <recipe-id>")
	}

	id := args[0]
	out := "cover-" + id + ".png"
	width, height := 312, 220
	for i := 1; i < len(args); i++ {
		switch {
		case args[i] == "--out":
			if i+1 >= len(args) {
				return fmt.Errorf("--out requires a file path")
			}
			out = args[i+1]
			i++
		case args[i] == "--width" || args[i] == "--height":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a value", args[i])
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n <= 0 {
				return fmt.Errorf("%s must be a positive integer, got %q", args[i], args[i+1])
			}
			if args[i] == "--width" {
				width = n
			} else {
				height = n
			}
			i++
		default:
			return fmt.Errorf("unknown flag %q", args[i])
		}
	}

	var palette []string
	found := false
	for _, r := range recipes.Default() {
		if r.ID == id {
			palette, found = r.Palette, true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown recipe %q", id)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	if err := png.Encode(f, artwork.Cover(palette, width, height)); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %s (%dx%d)\n", out, width, height)
	return nil
}
