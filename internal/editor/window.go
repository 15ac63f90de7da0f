package editor

import (
	"image"
	"image/draw"
	"log"

	xdraw "golang.org/x/image/draw"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

// Run executes the UI loop using shiny's driver.
func (e *Editor) Run() { driver.Main(e.Main) }

// Main runs the window on s until it is closed or quit is triggered. All
// events and painting happen on this goroutine.
func (e *Editor) Main(s screen.Screen) {
	ch := newChrome(e)
	width := e.width + ch.toolbarWidth
	height := e.height + statusHeight
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "ShapEdit"})
	if err != nil {
		log.Printf("new window: %v", err)
		return
	}
	defer w.Release()

	done := false
	e.quit = func() { done = true }
	defer func() { e.quit = nil }()

	for !done {
		switch ev := w.NextEvent().(type) {
		case lifecycle.Event:
			if ev.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			width, height = ev.WidthPx, ev.HeightPx
			w.Send(paint.Event{})
		case paint.Event:
			e.paint(s, w, ch, width, height)
		case key.Event:
			if e.HandleKey(ev) || ev.Direction == key.DirPress {
				w.Send(paint.Event{})
			}
		case mouse.Event:
			p := image.Pt(int(ev.X), int(ev.Y))
			if p.X < ch.toolbarWidth && !e.held {
				ch.hover = ch.buttonAt(p)
				if ch.hover >= 0 && ev.Button == mouse.ButtonLeft && ev.Direction == mouse.DirPress {
					ch.buttons[ch.hover].Activate()
				}
				w.Send(paint.Event{})
				continue
			}
			ch.hover = -1
			ev.X -= float32(ch.toolbarWidth)
			e.HandleMouse(ev)
			w.Send(paint.Event{})
		case error:
			log.Printf("window: %v", ev)
		}
	}
}

func (e *Editor) paint(s screen.Screen, w screen.Window, ch *chrome, width, height int) {
	b, err := s.NewBuffer(image.Point{width, height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	dst := b.RGBA()
	draw.Draw(dst, dst.Bounds(), &image.Uniform{e.theme.Background}, image.Point{}, draw.Src)
	canvas := e.Image()
	xdraw.Copy(dst, image.Pt(ch.toolbarWidth, 0), canvas, canvas.Bounds(), xdraw.Src, nil)

	status := e.State()
	if e.message != "" {
		status += " | " + e.message
	}
	status += " | ^S:save ^C:copy Q:quit"
	ch.draw(dst, e.Tool(), status)

	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}
