// Released under an MIT license. See LICENSE.

// Package hq9 provides an interpreter for HQ9+.
//
// Each character of an HQ9+ program is an instruction:
//
//	H  print "Hello, world!"
//	Q  print the program's source
//	9  print the lyrics of "99 Bottles of Beer"
//	+  increment the accumulator
//
// H and Q may also be written in lowercase. Other characters are ignored.
package hq9

import (
	"bufio"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/nukata/goarith"
)

type operation func(h *T) error

//nolint:gochecknoglobals
var table map[rune]operation

func init() { //nolint:gochecknoinits
	table = map[rune]operation{
		'H': hello,
		'h': hello,
		'Q': quine,
		'q': quine,
		'9': bottles,
		'+': increment,
	}
}

// T holds the state of an HQ9+ program.
type T struct {
	acc    goarith.Number
	body   []operation
	err    error
	output *bufio.Writer
	source strings.Builder
}

// New creates a new T that writes to w.
func New(w io.Writer) *T {
	h := &T{output: bufio.NewWriter(w)}

	h.Reset()

	return h
}

// Accumulator returns the value of the accumulator.
func (h *T) Accumulator() goarith.Number {
	return h.acc
}

// Err returns the error that stopped the interpreter, if any.
func (h *T) Err() error {
	return h.err
}

// Parse appends text to the program.
func (h *T) Parse(text string) *T {
	if h.err != nil {
		return h
	}

	h.source.WriteString(text)

	for _, r := range text {
		if op, ok := table[r]; ok {
			h.body = append(h.body, op)
		}
	}

	return h
}

// Pending is always false. Every HQ9+ instruction is a single character.
func (h *T) Pending() bool {
	return false
}

// Reset discards the program and clears the accumulator.
func (h *T) Reset() {
	h.acc = goarith.AsNumber(big.NewInt(0))
	h.body = nil
	h.err = nil
	h.source.Reset()
}

// Run executes the program.
func (h *T) Run() *T {
	if h.err != nil {
		return h
	}

	for _, op := range h.body {
		if h.err = op(h); h.err != nil {
			return h
		}
	}

	h.err = h.output.Flush()

	return h
}

func bottles(h *T) error {
	n := func(i int) string {
		switch i {
		case 0:
			return "no more bottles"
		case 1:
			return "1 bottle"
		}

		return strconv.Itoa(i) + " bottles"
	}

	for i := 99; i > 0; i-- {
		s := n(i) + " of beer on the wall, " + n(i) + " of beer.\n" +
			"Take one down and pass it around, " + n(i-1) +
			" of beer on the wall.\n\n"

		if _, err := h.output.WriteString(s); err != nil {
			return err
		}
	}

	_, err := h.output.WriteString(
		"No more bottles of beer on the wall, no more bottles of beer.\n" +
			"Go to the store and buy some more, 99 bottles of beer on the wall.\n",
	)

	return err
}

func hello(h *T) error {
	_, err := h.output.WriteString("Hello, world!")

	return err
}

func increment(h *T) error {
	h.acc = h.acc.Add(goarith.AsNumber(big.NewInt(1)))

	return nil
}

func quine(h *T) error {
	_, err := h.output.WriteString(h.source.String())

	return err
}
