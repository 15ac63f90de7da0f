//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import "image"

// WriteImage checks that img encodes, then reports ErrUnsupported.
func WriteImage(img image.Image) error {
	if _, err := encodePNG(img); err != nil {
		return err
	}
	return ErrUnsupported
}
