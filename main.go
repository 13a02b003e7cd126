// Released under an MIT license. See LICENSE.

/*
Grass is an interpreter for the grass programming language.

A grass program is written with only three characters: 'w', 'W' and 'v'.
Every other character is ignored. For example, the following program
prints "w":

	wWWwwww

For more detail, see: http://www.blue.sky.or.jp/grass/

Grass also runs HQ9+ programs when invoked with -l hq9+.
*/
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/michaelmacinnis/grass/internal/engine"
	"github.com/michaelmacinnis/grass/internal/hq9"
	"github.com/michaelmacinnis/grass/internal/system/config"
	"github.com/michaelmacinnis/grass/internal/system/options"
	"github.com/michaelmacinnis/grass/internal/ui"
)

type interpreter interface {
	ui.Interpreter

	Dump(w io.Writer) error
}

type grass struct {
	*engine.T
}

func (g grass) Feed(text string) error {
	return g.Parse(text).Err()
}

func (g grass) Start() error {
	return g.Run().Err()
}

type hq9plus struct {
	*hq9.T
}

func (h hq9plus) Dump(w io.Writer) error {
	_, err := fmt.Fprintf(w, "accumulator\t%v\n", h.Accumulator())

	return err
}

func (h hq9plus) Feed(text string) error {
	return h.Parse(text).Err()
}

func (h hq9plus) Start() error {
	return h.Run().Err()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("grass: ")

	options.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := configure(cfg); err != nil {
		log.Fatal(err)
	}

	i, err := create(cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}

	if options.Interactive() {
		err = ui.Run(i, cfg.Prompt, cfg.History)
	} else {
		err = batch(i)
	}

	if options.Dump() {
		if derr := i.Dump(os.Stderr); derr != nil && err == nil {
			err = derr
		}
	}

	if err != nil {
		log.Fatal(err)
	}
}

func batch(i interpreter) error {
	text := options.Command()

	switch {
	case options.Script() != "":
		b, err := os.ReadFile(options.Script())
		if err != nil {
			return err
		}

		text = string(b)

	case options.Stdin() || text == "":
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}

		text = string(b)
	}

	if err := i.Feed(text); err != nil {
		return err
	}

	return i.Start()
}

// Command-line options override settings from the configuration file.
func configure(cfg *config.T) error {
	if options.Force() {
		cfg.Force = true
	}

	if l := options.Language(); l != "" {
		cfg.Language = l
	}

	return cfg.Validate()
}

// The program's input is stdin unless it was given with -i. When the program
// itself comes from stdin, the program's input is empty.
func create(cfg *config.T, stdin io.Reader, stdout io.Writer) (interpreter, error) {
	input := stdin

	s, ok, err := options.Input()
	if err != nil {
		return nil, err
	} else if ok {
		input = strings.NewReader(s)
	} else if !options.Interactive() && options.Script() == "" && options.Command() == "" {
		input = strings.NewReader("")
	}

	switch cfg.Language {
	case config.HQ9:
		return hq9plus{hq9.New(stdout)}, nil
	default:
		return grass{engine.New(input, stdout, cfg.Force)}, nil
	}
}
