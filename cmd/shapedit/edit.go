package main

import (
	"flag"

	"github.com/example/shapedit/internal/editor"
	"github.com/example/shapedit/internal/store"
)

type editCmd struct {
	*root
	fs     *flag.FlagSet
	tool   string
	output string
	width  int
	height int
}

func (e *editCmd) FlagSet() *flag.FlagSet { return e.fs }

func (e *editCmd) Program() string { return e.root.subcommand("edit") }

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	e := &editCmd{root: r, fs: fs}
	fs.Usage = usageFunc(e)
	fs.StringVar(&e.tool, "tool", "select", "initial tool: select, rect or ellipse")
	fs.StringVar(&e.output, "output", "", "file written by ^S (default: timestamped name in save_dir)")
	fs.IntVar(&e.width, "width", r.config.CanvasWidth, "canvas width in pixels")
	fs.IntVar(&e.height, "height", r.config.CanvasHeight, "canvas height in pixels")
	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{of: e}
	}
	return e, nil
}

func (e *editCmd) Run() error {
	t, err := store.ParseTool(e.tool)
	if err != nil {
		return err
	}
	ed := e.root.newEditor(
		editor.WithSize(e.width, e.height),
		editor.WithTool(t),
		editor.WithOutput(e.output),
	)
	defer ed.Close()
	ed.Run()
	return nil
}
