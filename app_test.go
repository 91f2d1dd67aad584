package main

import (
	"errors"
	"testing"
	"time"

	drifterrors "github.com/go-drift/drift/pkg/errors"

	"github.com/go-drift/taste/internal/config"
)

type recordingHandler struct {
	drifterrors.LogHandler
	errs []*drifterrors.DriftError
}

func (h *recordingHandler) HandleError(err *drifterrors.DriftError) {
	h.errs = append(h.errs, err)
}

func (h *recordingHandler) HandlePanic(*drifterrors.PanicError) {}

func (h *recordingHandler) HandleBuildError(*drifterrors.BuildError) {}

func TestLoadSettings_Embedded(t *testing.T) {
	got := loadSettings(driftYAML)

	if got != config.DefaultSettings() {
		t.Errorf("expected the embedded drift.yaml to match the defaults, got %+v", got)
	}
	if got.Interval != 3*time.Second {
		t.Errorf("expected 3s interval, got %v", got.Interval)
	}
}

func TestLoadSettings_FallsBack(t *testing.T) {
	h := &recordingHandler{}
	drifterrors.SetHandler(h)
	t.Cleanup(func() { drifterrors.SetHandler(nil) })

	got := loadSettings([]byte("carousel:\n  card_fraction: 3\n"))

	if got != config.DefaultSettings() {
		t.Errorf("expected defaults, got %+v", got)
	}
	if len(h.errs) != 1 {
		t.Fatalf("expected one reported error, got %d", len(h.errs))
	}
	if h.errs[0].Kind != drifterrors.KindInit {
		t.Errorf("expected KindInit, got %v", h.errs[0].Kind)
	}
	if !errors.Is(h.errs[0], config.ErrInvalidCarousel) {
		t.Errorf("expected ErrInvalidCarousel, got %v", h.errs[0].Err)
	}
}
