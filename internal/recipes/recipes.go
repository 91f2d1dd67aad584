// Package recipes provides the recipe catalog shown by the home screen
// carousel.
package recipes

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed recipes.yaml
var catalogYAML []byte

var (
	// ErrEmpty is returned when a catalog has no recipes.
	ErrEmpty = errors.New("recipes: catalog is empty")
	// ErrDuplicateID is returned when two recipes share an ID.
	ErrDuplicateID = errors.New("recipes: duplicate id")
	// ErrMissingField is returned when a recipe lacks an ID or title.
	ErrMissingField = errors.New("recipes: missing required field")
)

// Recipe is one carousel item. Everything except ID is display payload.
type Recipe struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle,omitempty"`
	// Image is the photo URL of the recipe. The app renders procedural
	// artwork instead of fetching it.
	Image    string `yaml:"image,omitempty"`
	Duration string `yaml:"duration,omitempty"`
	Calories string `yaml:"calories,omitempty"`
	// Palette holds two CSS color names for the cover gradient.
	Palette []string `yaml:"palette,omitempty"`
}

type catalog struct {
	Recipes []Recipe `yaml:"recipes"`
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) ([]Recipe, error) {
	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse recipes: %w", err)
	}
	if err := Validate(c.Recipes); err != nil {
		return nil, err
	}
	return c.Recipes, nil
}

// Validate checks that recipes is non-empty, that every recipe has an ID and
// a title, and that IDs are unique.
func Validate(recipes []Recipe) error {
	if len(recipes) == 0 {
		return ErrEmpty
	}
	seen := make(map[string]int, len(recipes))
	for i, r := range recipes {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			return fmt.Errorf("%w: recipe %d has no id", ErrMissingField, i)
		}
		if strings.TrimSpace(r.Title) == "" {
			return fmt.Errorf("%w: recipe %q has no title", ErrMissingField, id)
		}
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateID, id, prev, i)
		}
		seen[id] = i
	}
	return nil
}

// Default returns the embedded catalog. The slice is a fresh copy.
func Default() []Recipe {
	recipes, err := Parse(catalogYAML)
	if err != nil {
		panic(fmt.Sprintf("recipes: embedded catalog is invalid: %v", err))
	}
	return recipes
}

// Titles returns the recipe titles in order.
func Titles(recipes []Recipe) []string {
	titles := make([]string, len(recipes))
	for i, r := range recipes {
		titles[i] = r.Title
	}
	return titles
}
