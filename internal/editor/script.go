package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/example/shapedit/internal/store"
	"github.com/example/shapedit/internal/tool"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

// ErrUnknownCommand is returned by Exec for commands it does not recognise.
var ErrUnknownCommand = errors.New("unknown command")

// Exec runs one line of the event script. Blank lines and lines starting
// with # are ignored.
//
//	tool select|rect|ellipse
//	down X Y [left|right|middle]
//	move X Y [up]
//	up X Y
//	key delete|backspace|escape|<rune>
//	list | state | save [path] | copy
func (e *Editor) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "tool":
		if len(args) != 1 {
			return fmt.Errorf("tool: want 1 argument, got %d", len(args))
		}
		t, err := store.ParseTool(args[0])
		if err != nil {
			return err
		}
		e.SetTool(t)
	case "down":
		x, y, rest, err := point(cmd, args)
		if err != nil {
			return err
		}
		button := mouse.ButtonLeft
		if len(rest) > 0 {
			if button, err = parseButton(rest[0]); err != nil {
				return err
			}
		}
		e.PointerDown(x, y, button)
	case "move":
		x, y, rest, err := point(cmd, args)
		if err != nil {
			return err
		}
		if len(rest) > 0 && strings.EqualFold(rest[0], "up") {
			held := e.held
			e.held = false
			e.PointerMove(x, y)
			e.held = held
			return nil
		}
		e.PointerMove(x, y)
	case "up":
		x, y, _, err := point(cmd, args)
		if err != nil {
			return err
		}
		e.PointerUp(x, y)
	case "key":
		if len(args) != 1 {
			return fmt.Errorf("key: want 1 argument, got %d", len(args))
		}
		return e.execKey(args[0])
	case "list":
		for _, s := range e.store.Elements() {
			fmt.Fprintf(e.out, "%s %s\n", s.Kind(), s)
		}
	case "state":
		fmt.Fprintln(e.out, e.State())
	case "save":
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		_, err := e.SavePNG(path)
		return err
	case "copy":
		return e.CopyToClipboard()
	default:
		return fmt.Errorf("%w %q", ErrUnknownCommand, cmd)
	}
	return nil
}

// State summarises the editor for scripts and the status bar.
func (e *Editor) State() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "tool=%s shapes=%d", e.Tool(), e.store.Len())
	if sel, ok := e.active.(*tool.Selection); ok {
		fmt.Fprintf(&sb, " state=%s", sel.State())
		if f := sel.Focused(); f != nil {
			fmt.Fprintf(&sb, " focused=%s", f)
		}
	}
	fmt.Fprintf(&sb, " cursor=%s", e.Cursor().Cursor())
	return sb.String()
}

// Replay runs every line of r through Exec and stops at the first error.
func (e *Editor) Replay(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		if err := e.Exec(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return scanner.Err()
}

func (e *Editor) execKey(name string) error {
	var ev key.Event
	ev.Direction = key.DirPress
	ev.Rune = -1
	switch strings.ToLower(name) {
	case "delete", "del":
		ev.Code = key.CodeDeleteForward
	case "backspace":
		ev.Code = key.CodeDeleteBackspace
	case "escape", "esc":
		ev.Code = key.CodeEscape
	default:
		r := []rune(name)
		if len(r) != 1 {
			return fmt.Errorf("key: unknown key %q", name)
		}
		ev.Rune = r[0]
	}
	e.HandleKey(ev)
	return nil
}

func point(cmd string, args []string) (float64, float64, []string, error) {
	if len(args) < 2 {
		return 0, 0, nil, fmt.Errorf("%s: want X Y", cmd)
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("%s: bad x %q: %w", cmd, args[0], err)
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("%s: bad y %q: %w", cmd, args[1], err)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, 0, nil, fmt.Errorf("%s: coordinates must be finite, got %s %s", cmd, args[0], args[1])
	}
	return x, y, args[2:], nil
}

func parseButton(s string) (mouse.Button, error) {
	switch strings.ToLower(s) {
	case "left", "primary":
		return mouse.ButtonLeft, nil
	case "right", "secondary":
		return mouse.ButtonRight, nil
	case "middle":
		return mouse.ButtonMiddle, nil
	}
	return mouse.ButtonNone, fmt.Errorf("unknown button %q", s)
}
