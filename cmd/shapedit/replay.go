package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/shapedit/internal/editor"
)

type replayCmd struct {
	*root
	fs          *flag.FlagSet
	script      string
	output      string
	toClipboard bool
	width       int
	height      int
}

func (c *replayCmd) FlagSet() *flag.FlagSet { return c.fs }

func (c *replayCmd) Program() string { return c.root.subcommand("replay") }

func parseReplayCmd(args []string, r *root) (*replayCmd, error) {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	c := &replayCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.script, "script", "-", "event script to run (- for stdin)")
	fs.StringVar(&c.output, "output", "", "write the final drawing as PNG")
	fs.BoolVar(&c.toClipboard, "to-clipboard", false, "copy the final drawing to the clipboard")
	fs.IntVar(&c.width, "width", r.config.CanvasWidth, "canvas width in pixels")
	fs.IntVar(&c.height, "height", r.config.CanvasHeight, "canvas height in pixels")
	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{of: c}
	}
	if fs.NArg() > 0 {
		c.script = fs.Arg(0)
	}
	return c, nil
}

func (c *replayCmd) Run() error {
	var in io.Reader = c.root.stdin
	if c.script != "-" {
		f, err := os.Open(c.script)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	ed := c.root.newEditor(editor.WithSize(c.width, c.height))
	defer ed.Close()
	if err := ed.Replay(in); err != nil {
		return fmt.Errorf("%s: %w", c.script, err)
	}
	if err := ed.Exec("list"); err != nil {
		return err
	}
	if c.output != "" {
		if _, err := ed.SavePNG(c.output); err != nil {
			return err
		}
		fmt.Fprintf(c.root.stderr, "saved %s\n", c.output)
	}
	if c.toClipboard {
		if err := ed.CopyToClipboard(); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	return nil
}
