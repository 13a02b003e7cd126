// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for entering programs.
package ui

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/michaelmacinnis/grass/internal/system/history"
	"github.com/peterh/liner"
)

// Interpreter is the interface for things that accept a program a line at a time.
type Interpreter interface {
	Feed(text string) error
	Pending() bool
	Reset()
	Start() error
}

// Run prompts for lines and feeds them to i until the user presses Ctrl-D.
// It then starts the program and returns the program's error, if any.
// Ctrl-C discards the lines entered so far.
func Run(i Interpreter, prompt, path string) error {
	cooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	if path != "" {
		if err := history.Load(path, cli.ReadHistory); err != nil {
			println(err.Error())
		}
	}

	cli.SetCtrlCAborts(true)

	continuation := "> "
	if len(prompt) > len(continuation) {
		continuation = strings.Repeat(" ", len(prompt)-len(continuation)) + continuation
	}

	for {
		p := prompt
		if i.Pending() {
			p = continuation
		}

		if err := uncooked.ApplyMode(); err != nil {
			return err
		}

		line, err := cli.Prompt(p)

		if merr := cooked.ApplyMode(); merr != nil {
			return merr
		}

		switch {
		case err == nil:
			cli.AppendHistory(line)

			if err := i.Feed(line + "\n"); err != nil {
				println(err.Error())
				i.Reset()
			}

		case errors.Is(err, liner.ErrPromptAborted):
			i.Reset()

		case errors.Is(err, io.EOF):
			os.Stdout.Write([]byte("\n"))

			if path != "" {
				if err := history.Save(path, cli.WriteHistory); err != nil {
					println(err.Error())
				}
			}

			return i.Start()

		default:
			return err
		}
	}
}
