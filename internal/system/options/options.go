// Released under an MIT license. See LICENSE.

// Package options parses grass's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"github.com/michaelmacinnis/adapted"
)

// Version is grass's version.
const Version = "grass 0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	dump        bool
	force       bool
	input       string
	interactive bool
	language    string
	script      string
	stdin       bool
	usage       = `grass

Usage:
  grass [-df] [-l LANGUAGE] [-i INPUT] SCRIPT
  grass [-df] [-l LANGUAGE] [-i INPUT] -c PROGRAM
  grass [-df] [-l LANGUAGE] [-i INPUT] [-s]
  grass -h
  grass -v

Arguments:
  SCRIPT     Path to a program.

Options:
  -c, --command=PROGRAM    Run the specified program text.
  -d, --dump               Print the environment to stderr after running.
  -f, --force              Write <lambda> when a non-character is output.
  -i, --input=INPUT        Use INPUT as the program's input instead of stdin.
                           Escape sequences are replaced by the bytes they
                           represent.
  -l, --language=LANGUAGE  Interpret the program as grass or hq9+.
  -s, --stdin              Read the program from stdin.
  -h, --help               Display this help.
  -v, --version            Print grass version.

If grass's stdin is a TTY, and grass was invoked with no program, an
interactive session is started. Enter the program a line at a time and
press Ctrl-D to run it. Ctrl-C discards the program entered so far.
`
)

// Command returns the program text passed with -c.
func Command() string {
	return command
}

// Dump returns true if the environment should be printed after running.
func Dump() bool {
	return dump
}

// Force returns true if -f was passed.
func Force() bool {
	return force
}

// Input returns the program's input passed with -i, and true, or
// false if the program reads from stdin.
func Input() (string, bool, error) {
	if input == "" {
		return "", false, nil
	}

	s, err := adapted.ActualBytes(input)
	if err != nil {
		return "", false, err
	}

	return s, true, nil
}

// Interactive returns true if grass should prompt for a program.
func Interactive() bool {
	return interactive
}

// Language returns the language passed with -l, if any.
func Language() string {
	return language
}

// Parse parses os.Args.
func Parse() {
	opts, err := docopt.ParseArgs(usage, nil, Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	set(opts, isatty.IsTerminal(os.Stdin.Fd()))
}

// Script returns the path of the program to run, if any.
func Script() string {
	return script
}

// Stdin returns true if the program should be read from stdin.
func Stdin() bool {
	return stdin
}

func set(opts docopt.Opts, terminal bool) {
	command, _ = opts.String("--command")
	dump, _ = opts.Bool("--dump")
	force, _ = opts.Bool("--force")
	input, _ = opts.String("--input")
	language, _ = opts.String("--language")
	script, _ = opts.String("SCRIPT")
	stdin, _ = opts.Bool("--stdin")

	interactive = script == "" && command == "" && terminal && !stdin
}
