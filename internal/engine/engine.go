// Released under an MIT license. See LICENSE.

// Package engine provides an interpreter for grass programs.
package engine

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/michaelmacinnis/grass/internal/engine/pool"
	"github.com/michaelmacinnis/grass/internal/interface/combinator"
	"github.com/michaelmacinnis/grass/internal/reader"
	"github.com/michaelmacinnis/grass/internal/type/char"
	"github.com/michaelmacinnis/grass/internal/type/env"
	"github.com/michaelmacinnis/grass/internal/type/in"
	"github.com/michaelmacinnis/grass/internal/type/out"
	"github.com/michaelmacinnis/grass/internal/type/succ"
	"github.com/michaelmacinnis/grass/internal/type/user"
)

// T (engine) is a facade in front of the machinery for evaluating grass code.
//
// Parse and Run return the engine so that calls can be chained. The first
// error stops the engine: later calls do nothing and Err reports it.
type T struct {
	env    *env.T
	err    error
	force  bool
	input  io.ByteReader
	output *bufio.Writer
	pool   *pool.T
	reader *reader.T
}

// New creates a new T that reads from r and writes to w. If force is true,
// writing a combinator that is not a character produces a placeholder
// instead of an error.
func New(r io.Reader, w io.Writer, force bool) *T {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	bw := bufio.NewWriter(w)

	e := &T{
		env:    env.New(),
		force:  force,
		input:  flusher{br, bw},
		output: bw,
		pool:   pool.New(),
	}

	e.reader = reader.New("grass", e)

	e.init()

	return e
}

// Duplex creates a new T that reads from and writes to rw.
func Duplex(rw io.ReadWriter, force bool) *T {
	return New(rw, rw, force)
}

// Standard creates a new T connected to the process's standard input and output.
func Standard(force bool) *T {
	return New(os.Stdin, os.Stdout, force)
}

// Apply applies the combinator fn slots below the top of the environment to
// the combinator arg slots below the top and pushes the result. The top is
// slot zero, so a run of length n names the slot n below it.
func (e *T) Apply(fn, arg int) error {
	f, err := e.env.At(fn)
	if err != nil {
		return err
	}

	a, err := e.env.At(arg)
	if err != nil {
		return err
	}

	r, err := e.pool.Apply(f, a)
	if err != nil {
		return err
	}

	e.env.Push(r)

	return nil
}

// Define creates a user combinator that closes over the current
// environment and pushes it.
func (e *T) Define(arity int, body []user.Pair) error {
	c := user.New(arity, body, e.env.Copy(0))

	e.env.Push(e.pool.Insert(c))

	return nil
}

// Dump writes the environment to w, one combinator per line, top first.
// A user combinator's line ends with the depth of the environment it
// closes over.
func (e *T) Dump(w io.Writer) error {
	refs := e.env.Refs()
	for i := len(refs) - 1; i >= 0; i-- {
		c, err := e.pool.Get(refs[i])
		if err != nil {
			return err
		}

		s := c.String()
		if user.Is(c) {
			s += "\t" + strconv.Itoa(user.To(c).Closure().Len())
		}

		_, err = fmt.Fprintf(w, "%d\t%s\t%s\n", len(refs)-i, c.Name(), s)
		if err != nil {
			return err
		}
	}

	return nil
}

// Err returns the error that stopped the engine, if any.
func (e *T) Err() error {
	return e.err
}

// Len returns the number of combinators in the environment.
func (e *T) Len() int {
	return e.env.Len()
}

// Parse scans text and evaluates every complete construct. Characters other
// than 'w', 'W' and 'v' are ignored. An incomplete construct at the end of
// text is kept until the next call to Parse or Run.
func (e *T) Parse(text string) *T {
	if e.err != nil {
		return e
	}

	e.err = e.reader.Scan(text)
	e.flush()

	return e
}

// Pending returns true if a construct has been started but not finished.
func (e *T) Pending() bool {
	return e.reader.Pending()
}

// Pool returns the number of combinators owned by the engine.
func (e *T) Pool() int {
	return e.pool.Len()
}

// Release drops every combinator. The engine must not be used afterwards.
func (e *T) Release() {
	e.env.Clear()
	e.pool.Release()
}

// Reset discards the program and any error and restores the built-ins.
func (e *T) Reset() {
	e.err = nil

	e.reader.Reset()

	e.init()
}

// Run finishes any incomplete construct and then applies the combinator on
// top of the environment to itself. This is what starts a grass program.
func (e *T) Run() *T {
	if e.err != nil {
		return e
	}

	e.Parse("v")
	if e.err != nil {
		return e
	}

	e.err = e.Apply(0, 0)
	e.flush()

	return e
}

// Top returns the combinator on top of the environment.
func (e *T) Top() (combinator.T, error) {
	r, err := e.env.Top()
	if err != nil {
		return nil, err
	}

	return e.pool.Get(r)
}

func (e *T) builtin(b combinator.Builtin, c combinator.T, push bool) combinator.Ref {
	r := e.pool.Insert(c)

	e.pool.Assign(b, r)

	if push {
		e.env.Push(r)
	}

	return r
}

func (e *T) flush() {
	if err := e.output.Flush(); err != nil && e.err == nil {
		e.err = err
	}
}

func (e *T) init() {
	e.Release()

	e.builtin(combinator.In, in.New(e.input), true)
	e.builtin(combinator.W, char.New('w'), true)
	e.builtin(combinator.Succ, succ.New(), true)
	e.builtin(combinator.Out, out.New(e.output, e.force), true)

	id := e.builtin(combinator.ID, user.Identity(), false)
	e.builtin(combinator.True, user.True(id), false)
	e.builtin(combinator.False, user.False(), false)
}

// Output is flushed before each read so that prompts appear before
// the program waits for input.
type flusher struct {
	io.ByteReader
	w *bufio.Writer
}

func (f flusher) ReadByte() (byte, error) {
	if err := f.w.Flush(); err != nil {
		return 0, err
	}

	return f.ByteReader.ReadByte()
}
