// Package config reads drift.yaml: app metadata, engine settings and the
// carousel tuning used by the home screen.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/taste/internal/carousel"
)

// DefaultScrollDuration is the length of a programmatic scroll animation.
const DefaultScrollDuration = 350 * time.Millisecond

// ErrInvalidCarousel is returned for out-of-range carousel settings.
var ErrInvalidCarousel = errors.New("invalid carousel settings")

// Config represents drift.yaml.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Engine   EngineConfig   `yaml:"engine"`
	Carousel CarouselConfig `yaml:"carousel"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
	ID   string `yaml:"id,omitempty"`
}

// EngineConfig contains engine settings.
type EngineConfig struct {
	Version string `yaml:"version,omitempty"`
}

// CarouselConfig is the carousel section as written. Unset fields take the
// package defaults in Settings.
type CarouselConfig struct {
	Interval             *Duration `yaml:"interval,omitempty"`
	CardFraction         *float64  `yaml:"card_fraction,omitempty"`
	Spacing              *float64  `yaml:"spacing,omitempty"`
	ViewabilityThreshold *float64  `yaml:"viewability_threshold,omitempty"`
	SettleDelay          *Duration `yaml:"settle_delay,omitempty"`
	ScrollDuration       *Duration `yaml:"scroll_duration,omitempty"`
}

// Duration is a time.Duration written as a Go duration string ("3s").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Settings are the resolved carousel parameters.
type Settings struct {
	Interval             time.Duration
	CardFraction         float64
	Spacing              float64
	ViewabilityThreshold float64
	SettleDelay          time.Duration
	ScrollDuration       time.Duration
}

// DefaultSettings returns the settings used when drift.yaml has no carousel
// section.
func DefaultSettings() Settings {
	return Settings{
		Interval:             carousel.DefaultInterval,
		CardFraction:         carousel.DefaultCardFraction,
		Spacing:              carousel.DefaultSpacing,
		ViewabilityThreshold: carousel.DefaultViewabilityThreshold,
		SettleDelay:          carousel.DefaultSettleDelay,
		ScrollDuration:       DefaultScrollDuration,
	}
}

// Settings applies defaults to the carousel section and validates it.
func (c CarouselConfig) Settings() (Settings, error) {
	s := DefaultSettings()
	if c.Interval != nil {
		s.Interval = time.Duration(*c.Interval)
	}
	if c.CardFraction != nil {
		s.CardFraction = *c.CardFraction
	}
	if c.Spacing != nil {
		s.Spacing = *c.Spacing
	}
	if c.ViewabilityThreshold != nil {
		s.ViewabilityThreshold = *c.ViewabilityThreshold
	}
	if c.SettleDelay != nil {
		s.SettleDelay = time.Duration(*c.SettleDelay)
	}
	if c.ScrollDuration != nil {
		s.ScrollDuration = time.Duration(*c.ScrollDuration)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports the first out-of-range field.
func (s Settings) Validate() error {
	switch {
	case s.Interval <= 0:
		return fmt.Errorf("%w: interval must be positive (got %v)", ErrInvalidCarousel, s.Interval)
	case s.CardFraction <= 0 || s.CardFraction > 1:
		return fmt.Errorf("%w: card_fraction must be in (0, 1] (got %v)", ErrInvalidCarousel, s.CardFraction)
	case s.Spacing < 0:
		return fmt.Errorf("%w: spacing cannot be negative (got %v)", ErrInvalidCarousel, s.Spacing)
	case s.ViewabilityThreshold <= 0 || s.ViewabilityThreshold > 1:
		return fmt.Errorf("%w: viewability_threshold must be in (0, 1] (got %v)", ErrInvalidCarousel, s.ViewabilityThreshold)
	case s.SettleDelay <= 0:
		return fmt.Errorf("%w: settle_delay must be positive (got %v)", ErrInvalidCarousel, s.SettleDelay)
	case s.ScrollDuration < 0:
		return fmt.Errorf("%w: scroll_duration cannot be negative (got %v)", ErrInvalidCarousel, s.ScrollDuration)
	}
	return nil
}

// Geometry lays out cards for the given viewport width.
func (s Settings) Geometry(viewportWidth float64) carousel.Geometry {
	return carousel.NewGeometry(viewportWidth, s.CardFraction, s.Spacing)
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root          string
	ModulePath    string
	AppName       string
	AppID         string
	EngineVersion string
	Carousel      Settings
}

// Parse decodes drift.yaml contents.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse drift.yaml: %w", err)
	}
	return &cfg, nil
}

// LoadOptional reads drift.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, "drift.yaml"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read drift.yaml: %w", err)
	}
	return Parse(data)
}

// Resolve loads drift.yaml (if present) from a module root and fills in
// defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	appID := strings.TrimSpace(cfg.App.ID)
	if appID == "" {
		appID = "dev.godrift." + sanitizeSegment(appName)
	}
	if err := validateAppID(appID); err != nil {
		return nil, err
	}

	engineVersion := strings.TrimSpace(cfg.Engine.Version)
	if engineVersion == "" {
		engineVersion = "latest"
	}

	settings, err := cfg.Carousel.Settings()
	if err != nil {
		return nil, err
	}

	return &Resolved{
		Root:          dir,
		ModulePath:    modulePath,
		AppName:       appName,
		AppID:         appID,
		EngineVersion: engineVersion,
		Carousel:      settings,
	}, nil
}

// FindProjectRoot walks up from dir to the nearest directory with a go.mod.
func FindProjectRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

// defaultAppName uses the last element of the module path, ignoring a major
// version suffix, and falls back to the directory name.
func defaultAppName(modulePath, dir string) string {
	if prefix, _, ok := module.SplitPathVersion(modulePath); ok {
		if name := prefix[strings.LastIndex(prefix, "/")+1:]; name != "" {
			return name
		}
	}
	if base := filepath.Base(dir); base != "" && base != "." && base != string(filepath.Separator) {
		return base
	}
	return "taste"
}

// sanitizeSegment lowercases s and keeps only letters and digits.
func sanitizeSegment(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		return "app"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "a" + out
	}
	return out
}

func validateAppID(appID string) error {
	segments := strings.Split(appID, ".")
	if len(segments) < 2 {
		return fmt.Errorf("app.id must contain at least one '.' (got %q)", appID)
	}
	for _, segment := range segments {
		switch {
		case segment == "":
			return fmt.Errorf("app.id contains an empty segment (%q)", appID)
		case segment[0] >= '0' && segment[0] <= '9', segment[0] == '_':
			return fmt.Errorf("app.id segments must start with a letter (%q)", appID)
		}
		for _, r := range segment {
			if !(r == '_' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
				return fmt.Errorf("app.id contains invalid character %q in %q", r, appID)
			}
		}
	}
	return nil
}
