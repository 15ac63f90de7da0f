package main

import (
	"bufio"
	"flag"
	"fmt"
	"strings"

	"github.com/example/shapedit/internal/editor"
)

// commandList collects repeated -e flags.
type commandList []string

func (c *commandList) String() string { return strings.Join(*c, "; ") }

func (c *commandList) Set(v string) error {
	*c = append(*c, v)
	return nil
}

type interactiveCmd struct {
	*root
	fs       *flag.FlagSet
	commands commandList
	width    int
	height   int
}

func (i *interactiveCmd) FlagSet() *flag.FlagSet { return i.fs }

func (i *interactiveCmd) Program() string { return i.root.subcommand("interactive") }

func parseInteractiveCmd(args []string, r *root) (*interactiveCmd, error) {
	fs := flag.NewFlagSet("interactive", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	i := &interactiveCmd{root: r, fs: fs}
	fs.Usage = usageFunc(i)
	fs.Var(&i.commands, "e", "run a command and exit (repeatable)")
	fs.IntVar(&i.width, "width", r.config.CanvasWidth, "canvas width in pixels")
	fs.IntVar(&i.height, "height", r.config.CanvasHeight, "canvas height in pixels")
	if err := fs.Parse(args); err != nil {
		return nil, &UsageError{of: i}
	}
	return i, nil
}

func (i *interactiveCmd) Run() error {
	ed := i.root.newEditor(editor.WithSize(i.width, i.height))
	defer ed.Close()

	if len(i.commands) > 0 {
		for _, line := range i.commands {
			if err := ed.Exec(line); err != nil {
				return err
			}
		}
		return nil
	}

	out := i.root.stdout
	fmt.Fprintln(out, "Enter commands (type 'help' for a list, 'exit' to quit)")
	scanner := bufio.NewScanner(i.root.stdin)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "help":
			fmt.Fprint(out, replHelp)
			continue
		}
		if err := ed.Exec(line); err != nil {
			fmt.Fprintln(i.root.stderr, err)
		}
	}
	return scanner.Err()
}

const replHelp = `  tool select|rect|ellipse
  down X Y [left|right|middle]
  move X Y [up]
  up X Y
  key delete|backspace|escape|<char>
  list | state | save [path] | copy
  exit
`
