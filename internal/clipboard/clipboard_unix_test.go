//go:build linux || freebsd || openbsd || netbsd || dragonfly

package clipboard

import (
	"errors"
	"image"
	"sync"
	"testing"
)

func TestWriteImageWithoutDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")

	initOnce = sync.Once{}
	initErr = nil

	err := WriteImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if !errors.Is(err, errNoDisplay) {
		t.Fatalf("expected errNoDisplay, got %v", err)
	}
}

func TestEncodePNGRejectsNil(t *testing.T) {
	if _, err := encodePNG(nil); err == nil {
		t.Fatal("expected error for nil image")
	}
	data, err := encodePNG(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	if err != nil || len(data) == 0 {
		t.Fatalf("encode: %v (%d bytes)", err, len(data))
	}
}
