// Package screen builds the Taste home screen: a header, an auto-advancing
// recipe carousel and its page indicator.
package screen

import (
	"log"

	"github.com/go-drift/drift/pkg/core"
	drifterrors "github.com/go-drift/drift/pkg/errors"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/taste/internal/carousel"
	"github.com/go-drift/taste/internal/config"
	"github.com/go-drift/taste/internal/recipes"
)

// Home is the recipe carousel screen.
type Home struct {
	core.StatefulBase

	// Recipes to show. Defaults to the embedded catalog.
	Recipes []recipes.Recipe
	// Settings tunes the carousel. The zero value uses config.DefaultSettings.
	Settings config.Settings
	// Scheduler drives the auto-advance timer. Defaults to
	// carousel.DispatchScheduler.
	Scheduler carousel.Scheduler
	// OnActiveIndexChanged is called whenever the active card changes.
	OnActiveIndexChanged func(index int)
	// ScrollController drives the carousel's scroll view. Optional.
	ScrollController *widgets.ScrollController
}

func (Home) CreateState() core.State {
	return &homeState{}
}

type homeState struct {
	core.StateBase

	home     Home
	recipes  []recipes.Recipe
	settings config.Settings

	scroll      *widgets.ScrollController
	search      *platform.TextEditingController
	surface     *scrollSurface
	controller  *carousel.Controller
	viewability *carousel.Viewability
	settler     *carousel.Settler

	geometry    carousel.Geometry
	offset      float64
	activeIndex int
	saved       map[string]bool
}

func (s *homeState) InitState() {
	s.home = s.Element().Widget().(Home)
	s.recipes = s.home.Recipes
	if len(s.recipes) == 0 {
		s.recipes = recipes.Default()
	}
	s.settings = s.home.Settings
	if s.settings == (config.Settings{}) {
		s.settings = config.DefaultSettings()
	}
	s.saved = make(map[string]bool)
	count := len(s.recipes)

	s.scroll = s.home.ScrollController
	if s.scroll == nil {
		s.scroll = &widgets.ScrollController{}
	}
	s.search = platform.NewTextEditingController("")
	s.viewability = carousel.NewViewability(s.geometry, count, s.settings.ViewabilityThreshold)

	// Disposers run in reverse order, so the controller and its timer go
	// before the scroll listener, the settler and the scroll animation.
	s.surface = core.UseController(s, func() *scrollSurface {
		return newScrollSurface(s.scroll, s.settings.ScrollDuration, func() carousel.Geometry { return s.geometry })
	})
	s.settler = core.UseController(s, func() *carousel.Settler {
		settler := carousel.NewSettler(s.settings.SettleDelay, s.snap)
		settler.Busy = s.surface.animating
		return settler
	})
	s.OnDispose(s.scroll.AddListener(s.onScroll))
	s.controller = core.UseController(s, func() *carousel.Controller {
		return carousel.NewController(count, s.surface, s.home.Scheduler)
	})
	s.OnDispose(s.controller.AddListener(s.onControllerChanged))

	if err := s.controller.Start(s.settings.Interval); err != nil {
		drifterrors.Report(&drifterrors.DriftError{
			Op:   "screen.Home.InitState",
			Kind: drifterrors.KindInit,
			Err:  err,
		})
	}
}

func (s *homeState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	s.home = s.Element().Widget().(Home)
}

func (s *homeState) Build(ctx core.BuildContext) core.Widget {
	return widgets.Container{
		Color: BackgroundColor,
		Child: widgets.Padded(widgets.SafeAreaPadding(ctx),
			widgets.ColumnOf(
				widgets.MainAxisAlignmentStart,
				widgets.CrossAxisAlignmentStretch,
				widgets.MainAxisSizeMax,

				header{search: s.search, onFilters: s.onFilters},
				widgets.Expanded{Child: widgets.LayoutBuilder{Builder: s.buildCarousel}},
				dots{count: len(s.recipes), offset: s.offset, slot: s.geometry.SlotWidth()},
			),
		),
	}
}

func (s *homeState) buildCarousel(ctx core.BuildContext, constraints layout.Constraints) core.Widget {
	s.layout(constraints.MaxWidth)
	g := s.geometry
	slot := g.SlotWidth()

	children := make([]core.Widget, 0, 2*len(s.recipes)+1)
	children = append(children, widgets.HSpace(g.Spacer()))
	for i, r := range s.recipes {
		if i > 0 {
			children = append(children, widgets.HSpace(g.Spacing))
		}
		children = append(children, recipeCard{
			recipe:    r,
			width:     g.CardWidth,
			transform: carousel.CardTransformAt(s.offset, i, slot),
			saved:     s.saved[r.ID],
			onCook:    func() { s.onCook(r) },
			onSave:    func() { s.toggleSaved(r) },
		})
	}
	children = append(children, widgets.HSpace(g.Spacer()))

	return widgets.ScrollView{
		ScrollDirection: widgets.AxisHorizontal,
		Controller:      s.scroll,
		Physics:         widgets.ClampingScrollPhysics{},
		Child: widgets.RowOf(
			widgets.MainAxisAlignmentStart,
			widgets.CrossAxisAlignmentStart,
			widgets.MainAxisSizeMin,
			children...,
		),
	}
}

// layout updates the slot geometry for a new viewport width. When the slot
// width changes after the first layout, the active card is re-centered.
func (s *homeState) layout(width float64) {
	g := s.settings.Geometry(width)
	if g == s.geometry {
		return
	}
	prev := s.geometry
	s.geometry = g
	s.viewability.Geometry = g
	s.viewability.Reset()
	if prev.SlotWidth() > 0 && prev.SlotWidth() != g.SlotWidth() {
		s.surface.ScrollToIndex(s.controller.ActiveIndex(), false)
	}
	s.reconcile(s.offset)
}

// onScroll is the single writer of the rendered offset. It feeds the
// controller, the viewability tracker and the settle detector.
func (s *homeState) onScroll() {
	offset := s.scroll.Offset()
	if offset == s.offset {
		return
	}
	s.offset = offset
	s.controller.OnUserScroll(offset)
	s.reconcile(offset)
	s.settler.Observe(offset)
	s.SetState(nil)
}

// reconcile reports the visible card to the controller when it changes.
func (s *homeState) reconcile(offset float64) {
	if index, ok, changed := s.viewability.Update(offset); changed {
		s.controller.OnVisibilityChanged(index, ok)
	}
}

// snap centers the nearest card once scrolling comes to rest between slots.
func (s *homeState) snap(offset float64) {
	count := len(s.recipes)
	if s.geometry.SlotWidth() <= 0 || s.geometry.IsAligned(offset, count) {
		return
	}
	s.controller.ScrollTo(s.geometry.NearestIndex(offset, count))
}

func (s *homeState) onControllerChanged() {
	index := s.controller.ActiveIndex()
	if index == s.activeIndex {
		return
	}
	s.activeIndex = index
	if s.home.OnActiveIndexChanged != nil {
		s.home.OnActiveIndexChanged(index)
	}
}

func (s *homeState) onCook(r recipes.Recipe) {
	log.Printf("taste: cook %q", r.Title)
}

func (s *homeState) toggleSaved(r recipes.Recipe) {
	s.SetState(func() {
		s.saved[r.ID] = !s.saved[r.ID]
	})
}

func (s *homeState) onFilters() {
	log.Printf("taste: filters tapped (query %q)", s.search.Text())
}
