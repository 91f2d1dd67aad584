package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/taste/internal/config"
	"github.com/go-drift/taste/internal/recipes"
)

func init() {
	RegisterCommand(&Command{
		Name:  "validate",
		Short: "Check drift.yaml and the recipe catalog",
		Long: `Resolve the project configuration and validate the recipe catalog.

The project root is the nearest directory containing go.mod, starting
from dir (default: the current directory). The built-in catalog is
checked unless --recipes points at another YAML file.

Usage:
  taste validate                       # Validate the current project
  taste validate ./app                 # Validate another project
  taste validate --recipes menu.yaml   # Validate a custom catalog`,
		Usage: "taste validate [dir] [--recipes file]",
		Run:   runValidate,
	})
}

func runValidate(args []string) error {
	dir := "."
	catalogPath := ""
	for i := 0; i < len(args); i++ {
		v, next, ok, err := flagValue(args, i, "--recipes")
		if err != nil {
			return err
		}
		if ok {
			catalogPath, i = v, next
			continue
		}
		dir = args[i]
	}

	root, err := config.FindProjectRoot(dir)
	if err != nil {
		return fmt.Errorf("not in a Drift project (no go.mod found)")
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	catalog := recipes.Default()
	source := "built-in"
	if catalogPath != "" {
		data, err := os.ReadFile(catalogPath)
		if err != nil {
			return fmt.Errorf("failed to read recipes: %w", err)
		}
		if catalog, err = recipes.Parse(data); err != nil {
			return err
		}
		source = catalogPath
	}

	s := cfg.Carousel
	fmt.Fprintf(stdout, "app       %s (%s)\n", cfg.AppName, cfg.AppID)
	fmt.Fprintf(stdout, "module    %s\n", cfg.ModulePath)
	fmt.Fprintf(stdout, "engine    %s\n", cfg.EngineVersion)
	fmt.Fprintf(stdout, "carousel  interval=%v card=%g spacing=%g threshold=%g settle=%v scroll=%v\n",
		s.Interval, s.CardFraction, s.Spacing, s.ViewabilityThreshold, s.SettleDelay, s.ScrollDuration)
	fmt.Fprintf(stdout, "recipes   %d (%s)\n", len(catalog), source)
	for _, r := range catalog {
		fmt.Fprintf(stdout, "  %-10s %s\n", r.ID, r.Title)
	}
	return nil
}
