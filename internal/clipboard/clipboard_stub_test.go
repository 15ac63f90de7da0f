//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import (
	"errors"
	"image"
	"testing"
)

func TestWriteImageUnsupported(t *testing.T) {
	if err := WriteImage(image.NewRGBA(image.Rect(0, 0, 2, 2))); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if err := WriteImage(nil); err == nil || errors.Is(err, ErrUnsupported) {
		t.Fatalf("nil image should fail to encode, got %v", err)
	}
}
