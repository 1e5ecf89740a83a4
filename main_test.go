package main

import (
	"errors"
	"testing"

	"github.com/milk9111/mascot/assets"
)

func TestNewOverlayWithoutAssets(t *testing.T) {
	// The test binary runs from a build cache directory with no assets folder.
	o, err := newOverlay()
	if !errors.Is(err, assets.ErrMissingDir) {
		t.Fatalf("expected ErrMissingDir, got %v", err)
	}
	if o != nil {
		t.Fatalf("expected no overlay")
	}
	if err.Error() != "Missing /assets folder" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
