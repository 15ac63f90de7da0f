package editor

import (
	"unicode"

	"github.com/example/shapedit/internal/store"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

func (e *Editor) register(name string, keys KeyboardShortcuts, fn func()) {
	e.actions[name] = fn
	if keys != nil {
		for _, sc := range keys.KeyboardShortcuts() {
			e.keymap[sc] = name
		}
	}
}

func (e *Editor) registerActions() {
	e.actions = map[string]func(){}
	e.keymap = map[KeyShortcut]string{}

	e.register("select", shortcutList{{Rune: 's'}, {Rune: 'v'}, {Code: key.CodeEscape}}, func() {
		e.SetTool(store.ToolSelect)
	})
	e.register("rect", shortcutList{{Rune: 'r'}}, func() {
		e.SetTool(store.ToolRectangle)
	})
	e.register("ellipse", shortcutList{{Rune: 'e'}, {Rune: 'o'}}, func() {
		e.SetTool(store.ToolEllipse)
	})
	e.register("save", shortcutList{{Rune: 's', Modifiers: key.ModControl}}, func() {
		if _, err := e.SavePNG(""); err != nil {
			e.status("save: %v", err)
		}
	})
	e.register("copy", shortcutList{{Rune: 'c', Modifiers: key.ModControl}}, func() {
		if err := e.CopyToClipboard(); err != nil {
			e.status("copy: %v", err)
		}
	})
	e.register("quit", shortcutList{{Rune: 'q'}}, func() {
		if e.quit != nil {
			e.quit()
		}
	})
}

// Trigger runs a named action. It reports false for unknown names.
func (e *Editor) Trigger(name string) bool {
	fn, ok := e.actions[name]
	if ok {
		fn()
	}
	return ok
}

// HandleKey applies a key event. Delete keys go to the active controller;
// everything else is looked up in the shortcut table. It reports whether the
// event was consumed.
func (e *Editor) HandleKey(ev key.Event) bool {
	if ev.Direction == key.DirRelease {
		return false
	}
	if ev.Code == key.CodeDeleteForward || ev.Code == key.CodeDeleteBackspace {
		e.KeyPress(ev.Code)
		return true
	}
	mods := ev.Modifiers &^ key.ModShift
	candidates := []KeyShortcut{{Code: ev.Code, Modifiers: mods}}
	if ev.Rune > 0 {
		candidates = append([]KeyShortcut{{Rune: unicode.ToLower(ev.Rune), Modifiers: mods}}, candidates...)
	}
	for _, sc := range candidates {
		if name, ok := e.keymap[sc]; ok {
			return e.Trigger(name)
		}
	}
	e.KeyPress(ev.Code)
	return false
}

// HandleMouse applies a pointer event whose coordinates are already relative
// to the canvas. Only primary releases end a gesture.
func (e *Editor) HandleMouse(ev mouse.Event) {
	x, y := float64(ev.X), float64(ev.Y)
	switch ev.Direction {
	case mouse.DirPress:
		e.PointerDown(x, y, ev.Button)
	case mouse.DirRelease:
		if ev.Button == mouse.ButtonLeft {
			e.PointerUp(x, y)
		}
	case mouse.DirNone:
		e.PointerMove(x, y)
	}
}
