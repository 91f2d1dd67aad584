package main

import (
	_ "embed"
	"log"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/engine"
	drifterrors "github.com/go-drift/drift/pkg/errors"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/theme"

	"github.com/go-drift/taste/internal/config"
	"github.com/go-drift/taste/internal/recipes"
	"github.com/go-drift/taste/internal/screen"
)

//go:embed drift.yaml
var driftYAML []byte

// App returns the root widget for Taste.
func App() core.Widget {
	return TasteApp{Settings: loadSettings(driftYAML)}
}

// loadSettings reads the carousel section of drift.yaml, falling back to the
// defaults when it is malformed.
func loadSettings(data []byte) config.Settings {
	cfg, err := config.Parse(data)
	if err == nil {
		var settings config.Settings
		if settings, err = cfg.Carousel.Settings(); err == nil {
			return settings
		}
	}
	drifterrors.Report(&drifterrors.DriftError{
		Op:   "main.loadSettings",
		Kind: drifterrors.KindInit,
		Err:  err,
	})
	return config.DefaultSettings()
}

// TasteApp wraps the home screen in the dark theme and styles the system UI.
type TasteApp struct {
	core.StatefulBase

	Settings config.Settings
}

func (TasteApp) CreateState() core.State {
	return &tasteAppState{}
}

type tasteAppState struct {
	core.StateBase
	catalog []recipes.Recipe
}

func (s *tasteAppState) InitState() {
	s.catalog = recipes.Default()
	engine.SetBackgroundColor(screen.BackgroundColor)
	background := screen.BackgroundColor
	if err := platform.SetSystemUI(platform.SystemUIStyle{
		StatusBarStyle:  platform.StatusBarStyleLight,
		BackgroundColor: &background,
		Transparent:     true,
	}); err != nil {
		log.Printf("system ui: %v", err)
	}
}

func (s *tasteAppState) Build(ctx core.BuildContext) core.Widget {
	app := s.Element().Widget().(TasteApp)
	return theme.Theme{
		Data: theme.DefaultDarkTheme(),
		Child: screen.Home{
			Recipes:  s.catalog,
			Settings: app.Settings,
		},
	}
}
