package editor

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/example/shapedit/internal/clipboard"
	"github.com/example/shapedit/internal/render"
)

// Image composites the backdrop, committed shapes and the preview layer as
// shown on screen.
func (e *Editor) Image() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, e.width, e.height))
	render.Composite(dst, e.theme, e.main.Canvas(), e.preview)
	return dst
}

// Export renders every shape, including one checked out for editing, in the
// committed style on a transparent background.
func (e *Editor) Export() *image.RGBA {
	c := render.NewCanvas(e.width, e.height, e.theme)
	for _, s := range e.store.Elements() {
		c.Render(s, false)
	}
	if f := e.Focused(); f != nil {
		c.Render(f, false)
	}
	return c.Image()
}

// SavePNG writes Export to path. An empty path falls back to the configured
// output, then to a timestamped name in the save directory.
func (e *Editor) SavePNG(path string) (string, error) {
	if path == "" {
		path = e.output
	}
	if path == "" {
		path = filepath.Join(e.saveDir, fmt.Sprintf("shapedit-%s.png", time.Now().Format("20060102-150405")))
	}
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(out, e.Export()); err != nil {
		_ = out.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	e.status("saved %s", path)
	e.notifier.Save(path)
	return path, nil
}

// CopyToClipboard publishes Export as a PNG image.
func (e *Editor) CopyToClipboard() error {
	img := e.Export()
	if err := clipboard.WriteImage(img); err != nil {
		return err
	}
	e.status("image copied to clipboard")
	e.notifier.Copy("", img)
	return nil
}
