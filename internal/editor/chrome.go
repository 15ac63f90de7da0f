package editor

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/example/shapedit/internal/store"
	"github.com/example/shapedit/internal/theme"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	buttonHeight = 24
	statusHeight = 24
	minToolbar   = 48
)

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps another Button and caches its rendered states.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		rect := cb.Button.Rect()
		img := image.NewRGBA(rect)
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [3]*image.RGBA{}
	}
}

// ToolButton selects a tool when activated.
type ToolButton struct {
	label    string
	tool     store.Tool
	theme    *theme.Theme
	rect     image.Rectangle
	onSelect func(store.Tool)
}

func (tb *ToolButton) Draw(dst *image.RGBA, state ButtonState) {
	c := tb.theme.ButtonBackground
	switch state {
	case StateHover:
		c = tb.theme.ButtonBackgroundHover
	case StatePressed:
		c = tb.theme.ButtonBackgroundPress
	}
	draw.Draw(dst, tb.rect, &image.Uniform{c}, image.Point{}, draw.Src)
	outline(dst, tb.rect, tb.theme.ButtonBorder)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(tb.theme.ButtonText), Face: basicfont.Face7x13,
		Dot: fixed.P(tb.rect.Min.X+4, tb.rect.Min.Y+16)}
	d.DrawString(tb.label)
}

func (tb *ToolButton) Rect() image.Rectangle { return tb.rect }

func (tb *ToolButton) SetRect(r image.Rectangle) { tb.rect = r }

func (tb *ToolButton) Activate() {
	if tb.onSelect != nil {
		tb.onSelect(tb.tool)
	}
}

// chrome lays out the toolbar and status bar around the canvas.
type chrome struct {
	theme        *theme.Theme
	toolbarWidth int
	buttons      []*CacheButton
	hover        int
}

func newChrome(e *Editor) *chrome {
	ch := &chrome{theme: e.theme, hover: -1}
	for _, b := range []struct {
		label string
		tool  store.Tool
	}{
		{"S:Select", store.ToolSelect},
		{"R:Rect", store.ToolRectangle},
		{"E:Ellipse", store.ToolEllipse},
	} {
		ch.buttons = append(ch.buttons, &CacheButton{Button: &ToolButton{
			label: b.label, tool: b.tool, theme: e.theme, onSelect: e.SetTool,
		}})
	}

	// Fit the widest label so nothing is clipped on start up.
	ch.toolbarWidth = minToolbar
	meas := &font.Drawer{Face: basicfont.Face7x13}
	for _, cb := range ch.buttons {
		if w := meas.MeasureString(cb.Button.(*ToolButton).label).Ceil() + 8; w > ch.toolbarWidth {
			ch.toolbarWidth = w
		}
	}
	for i, cb := range ch.buttons {
		cb.SetRect(image.Rect(0, i*buttonHeight, ch.toolbarWidth, (i+1)*buttonHeight))
	}
	return ch
}

// buttonAt returns the index of the toolbar button under p, or -1.
func (ch *chrome) buttonAt(p image.Point) int {
	for i, cb := range ch.buttons {
		if p.In(cb.Rect()) {
			return i
		}
	}
	return -1
}

func (ch *chrome) draw(dst *image.RGBA, current store.Tool, status string) {
	b := dst.Bounds()
	draw.Draw(dst, image.Rect(0, 0, ch.toolbarWidth, b.Max.Y),
		&image.Uniform{ch.theme.ToolbarBackground}, image.Point{}, draw.Src)
	for i, cb := range ch.buttons {
		state := StateDefault
		if cb.Button.(*ToolButton).tool == current {
			state = StatePressed
		} else if i == ch.hover {
			state = StateHover
		}
		cb.Draw(dst, state)
	}

	bar := image.Rect(ch.toolbarWidth, b.Max.Y-statusHeight, b.Max.X, b.Max.Y)
	draw.Draw(dst, bar, &image.Uniform{ch.theme.StatusBackground}, image.Point{}, draw.Src)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(ch.theme.StatusText), Face: basicfont.Face7x13,
		Dot: fixed.P(bar.Min.X+4, bar.Min.Y+16)}
	d.DrawString(status)
}

func outline(dst *image.RGBA, r image.Rectangle, col color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		dst.Set(x, r.Min.Y, col)
		dst.Set(x, r.Max.Y-1, col)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst.Set(r.Min.X, y, col)
		dst.Set(r.Max.X-1, y, col)
	}
}
