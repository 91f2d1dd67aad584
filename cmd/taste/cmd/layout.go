package cmd

import (
	"fmt"

	"github.com/go-drift/taste/internal/carousel"
	"github.com/go-drift/taste/internal/config"
	"github.com/go-drift/taste/internal/recipes"
)

// defaultWidth is the logical width of a typical phone screen.
const defaultWidth = 390.0

func init() {
	RegisterCommand(&Command{
		Name:  "layout",
		Short: "Print carousel geometry for a screen width",
		Long: `Print the card size, slot width and the scroll offset of every card
for a viewport width. Carousel settings come from drift.yaml in --dir
(default: the current directory) when present.

Usage:
  taste layout                 # 390pt wide viewport
  taste layout --width 428     # Larger phone`,
		Usage: "taste layout [--width W] [--dir DIR]",
		Run:   runLayout,
	})
}

func runLayout(args []string) error {
	width := defaultWidth
	dir := "."
	for i := 0; i < len(args); i++ {
		if v, next, ok, err := flagValue(args, i, "--width"); err != nil {
			return err
		} else if ok {
			if width, err = parsePositive("--width", v); err != nil {
				return err
			}
			i = next
			continue
		}
		if v, next, ok, err := flagValue(args, i, "--dir"); err != nil {
			return err
		} else if ok {
			dir, i = v, next
			continue
		}
		return fmt.Errorf("unknown flag %q\n\nUsage: taste layout [--width W] [--dir DIR]", args[i])
	}

	settings, err := loadSettings(dir)
	if err != nil {
		return err
	}
	printLayout(settings.Geometry(width), len(recipes.Default()))
	return nil
}

// loadSettings reads the carousel section of drift.yaml in dir, if any.
func loadSettings(dir string) (config.Settings, error) {
	cfg, err := config.LoadOptional(dir)
	if err != nil {
		return config.Settings{}, err
	}
	return cfg.Carousel.Settings()
}

func printLayout(g carousel.Geometry, count int) {
	fmt.Fprintf(stdout, "viewport  %.1f\n", g.ViewportWidth)
	fmt.Fprintf(stdout, "card      %.1f\n", g.CardWidth)
	fmt.Fprintf(stdout, "spacing   %.1f\n", g.Spacing)
	fmt.Fprintf(stdout, "slot      %.1f\n", g.SlotWidth())
	fmt.Fprintf(stdout, "spacer    %.1f\n", g.Spacer())
	fmt.Fprintf(stdout, "content   %.1f\n", g.ContentWidth(count))
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%-6s %-9s %s\n", "card", "offset", "bounds")
	for i := range count {
		start, end := g.CardBounds(i)
		fmt.Fprintf(stdout, "%-6d %-9.1f [%.1f, %.1f]\n", i, g.OffsetForIndex(i), start, end)
	}
}
