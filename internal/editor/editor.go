// Package editor composes the shape store, the active tool controller and the
// render layers into an interactive editor.
package editor

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/example/shapedit/internal/config"
	"github.com/example/shapedit/internal/notify"
	"github.com/example/shapedit/internal/render"
	"github.com/example/shapedit/internal/shape"
	"github.com/example/shapedit/internal/store"
	"github.com/example/shapedit/internal/theme"
	"github.com/example/shapedit/internal/tool"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

// Editor owns the store and exactly one active tool controller.
type Editor struct {
	width, height int
	theme         *theme.Theme
	tolerance     float64
	initialTool   store.Tool
	output        string
	saveDir       string
	notifier      *notify.Notifier
	out           io.Writer
	onContext     func(s shape.Shape, x, y float64)

	store   *store.Store
	main    *render.MainLayer
	preview *render.Canvas
	active  tool.Controller
	toolSub *store.Subscription
	held    bool

	actions map[string]func()
	keymap  map[KeyShortcut]string
	message string
	quit    func()
}

// Option modifies an Editor during creation.
type Option func(*Editor)

// WithSize sets the canvas dimensions in pixels.
func WithSize(w, h int) Option {
	return func(e *Editor) {
		if w > 0 && h > 0 {
			e.width, e.height = w, h
		}
	}
}

// WithTheme sets the colours used for shapes and chrome.
func WithTheme(th *theme.Theme) Option { return func(e *Editor) { e.theme = th } }

// WithTolerance sets the resize handle band for the select tool.
func WithTolerance(tol float64) Option { return func(e *Editor) { e.tolerance = tol } }

// WithTool sets the tool active at start up.
func WithTool(t store.Tool) Option { return func(e *Editor) { e.initialTool = t } }

// WithOutput sets the file written by SavePNG when no path is given.
func WithOutput(path string) Option { return func(e *Editor) { e.output = path } }

// WithSaveDir sets the directory for generated file names.
func WithSaveDir(dir string) Option { return func(e *Editor) { e.saveDir = dir } }

// WithNotifier routes save and copy events to desktop notifications.
func WithNotifier(n *notify.Notifier) Option { return func(e *Editor) { e.notifier = n } }

// WithWriter sets where script commands such as list and state print.
func WithWriter(w io.Writer) Option { return func(e *Editor) { e.out = w } }

// WithContextAction registers the secondary-button hook of the select tool.
func WithContextAction(fn func(s shape.Shape, x, y float64)) Option {
	return func(e *Editor) { e.onContext = fn }
}

// New creates an Editor with the provided options and activates its first tool.
func New(opts ...Option) *Editor {
	e := &Editor{
		width:       config.DefaultCanvasWidth,
		height:      config.DefaultCanvasHeight,
		tolerance:   shape.DefaultTolerance,
		initialTool: store.ToolSelect,
		out:         os.Stdout,
	}
	for _, o := range opts {
		o(e)
	}
	if e.theme == nil {
		e.theme = theme.Default()
	}
	e.store = store.New(store.WithTool(e.initialTool))
	e.main = render.NewMainLayer(e.store, render.NewCanvas(e.width, e.height, e.theme))
	e.preview = render.NewCanvas(e.width, e.height, e.theme)
	e.toolSub = e.store.Subscribe(store.KeyTool, e.activate)
	e.registerActions()
	e.activate()
	return e
}

// Store exposes the committed shapes and the current tool.
func (e *Editor) Store() *store.Store { return e.store }

// Tool returns the current tool.
func (e *Editor) Tool() store.Tool { return e.store.Tool() }

// SetTool switches tools. The previous controller is closed first, which
// commits any shape it had checked out.
func (e *Editor) SetTool(t store.Tool) { e.store.SetTool(t) }

// Active returns the current controller.
func (e *Editor) Active() tool.Controller { return e.active }

// Focused returns the shape checked out by the select tool, if any.
func (e *Editor) Focused() shape.Shape {
	if sel, ok := e.active.(*tool.Selection); ok {
		return sel.Focused()
	}
	return nil
}

// Cursor returns the pointer affordance last published by the active tool.
func (e *Editor) Cursor() shape.Direction { return e.preview.Cursor() }

// Message returns the last status line text.
func (e *Editor) Message() string { return e.message }

func (e *Editor) activate() {
	if e.active != nil {
		e.active.Close()
		e.active = nil
	}
	e.held = false
	e.preview.Clear()
	e.preview.SetCursor(shape.DirNone)

	var (
		c   tool.Controller
		err error
	)
	switch t := e.store.Tool(); t {
	case store.ToolSelect:
		c, err = tool.NewSelection(e.store, e.preview,
			tool.WithTolerance(e.tolerance), tool.WithContextAction(e.onContext))
	case store.ToolRectangle:
		c, err = tool.NewCreation(shape.KindRectangle, e.store, e.preview)
	case store.ToolEllipse:
		c, err = tool.NewCreation(shape.KindEllipse, e.store, e.preview)
	default:
		err = fmt.Errorf("unknown tool %v", t)
	}
	if err != nil {
		log.Printf("activate tool: %v", err)
		return
	}
	e.active = c
}

// PointerDown forwards a press in canvas coordinates.
func (e *Editor) PointerDown(x, y float64, button mouse.Button) {
	if button == mouse.ButtonLeft {
		e.held = true
	}
	if e.active != nil {
		e.active.PointerDown(x, y, button)
	}
}

// PointerMove forwards motion; the primary held state comes from press and release.
func (e *Editor) PointerMove(x, y float64) {
	if e.active != nil {
		e.active.PointerMove(x, y, e.held)
	}
}

// PointerUp forwards a primary release.
func (e *Editor) PointerUp(x, y float64) {
	e.held = false
	if e.active != nil {
		e.active.PointerUp(x, y)
	}
}

// KeyPress forwards a key code to the active controller.
func (e *Editor) KeyPress(code key.Code) {
	if e.active != nil {
		e.active.KeyPress(code)
	}
}

// Close commits any checked out shape and detaches from the store.
func (e *Editor) Close() {
	e.toolSub.Remove()
	if e.active != nil {
		e.active.Close()
		e.active = nil
	}
	e.main.Close()
}

func (e *Editor) status(format string, args ...any) {
	e.message = fmt.Sprintf(format, args...)
	log.Print(e.message)
}
