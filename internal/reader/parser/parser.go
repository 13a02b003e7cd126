// Released under an MIT license. See LICENSE.

// Package parser provides the grass parser.
//
// A grass program is a sequence of function definitions and applications
// separated by 'v'. Integers are written as runs of a single marker:
//
//	<definition>  ::= 'w'+ ('W'+ 'w'+)* 'v'
//	<application> ::= 'W'+ 'w'+
//
// The parser is resumable. It consumes tokens until the lexer has no more
// and keeps any partially parsed construct until the next call to Parse.
package parser

import (
	"github.com/michaelmacinnis/grass/internal/reader/token"
	"github.com/michaelmacinnis/grass/internal/type/errgrass"
	"github.com/michaelmacinnis/grass/internal/type/user"
)

// Evaluator receives complete constructs from the parser.
type Evaluator interface {
	// Apply applies the fn-th combinator to the arg-th combinator. The
	// indices are run lengths, counted from zero at the top of the
	// environment.
	Apply(fn, arg int) error

	// Define creates a combinator of the given arity and body.
	Define(arity int, body []user.Pair) error
}

// Lexer is the source of tokens for the parser.
type Lexer interface {
	Skip()
	Tail() *token.T
	Token() *token.T
}

// State is the construct the parser is in the middle of.
type State int

// Parser states.
const (
	TopLevel State = iota
	Application
	Function
)

// String returns a string representation of State.
func (s State) String() string {
	switch s {
	case TopLevel:
		return "top level"
	case Application:
		return "application"
	case Function:
		return "function definition"
	}

	return "unknown"
}

// T holds the state of the parser.
type T struct {
	arity int         // Arity of the function being defined.
	body  []user.Pair // Body of the function being defined.
	eval  Evaluator   // Consumer of complete constructs.
	fn    int         // Pending function index, or zero.
	lexer Lexer       // Producer of tokens.
	state State       // Current construct.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of constructs.
func New(eval Evaluator, lexer Lexer) *T {
	return &T{eval: eval, lexer: lexer}
}

// Parse consumes tokens until there are no more. It returns the first
// error encountered. A malformed construct is never passed to the evaluator.
func (p *T) Parse() error {
	for t := p.lexer.Token(); t != nil; t = p.lexer.Token() {
		if err := p.step(t); err != nil {
			return err
		}
	}

	return p.tail()
}

// Pending returns true if the parser is in the middle of a construct.
func (p *T) Pending() bool {
	return p.state != TopLevel
}

// Reset discards any partially parsed construct.
func (p *T) Reset() {
	p.arity = 0
	p.body = nil
	p.fn = 0
	p.state = TopLevel
}

// State returns the construct the parser is in the middle of.
func (p *T) State() State {
	return p.state
}

func (p *T) apply(arg int) error {
	fn := p.fn

	p.Reset()

	return p.eval.Apply(fn, arg)
}

func (p *T) define(t *token.T) error {
	switch {
	case p.fn == 0 && t.Is(token.Terminator):
		arity, body := p.arity, p.body

		p.Reset()

		return p.eval.Define(arity, body)

	case p.fn == 0 && t.Is(token.Upper):
		p.fn = t.Count()

	case p.fn == 0:
		return unexpected(t, "unexpected char in define function")

	case t.Is(token.Lower):
		p.body = append(p.body, user.Pair{Func: p.fn - 1, Arg: t.Count() - 1})
		p.fn = 0

	default:
		return unexpected(t, "unexpected char in function args")
	}

	return nil
}

func (p *T) step(t *token.T) error {
	switch p.state {
	case TopLevel:
		switch t.Class() {
		case token.Lower:
			p.arity = t.Count()
			p.state = Function
		case token.Upper:
			p.fn = t.Count()
			p.state = Application
		case token.Terminator:
		}

	case Application:
		if t.Is(token.Terminator) {
			return unexpected(t, "unexpected application terminate")
		} else if !t.Is(token.Lower) {
			return unexpected(t, "unexpected char in application")
		}

		return p.apply(t.Count())

	case Function:
		return p.define(t)
	}

	return nil
}

// An application's argument is applied as soon as it is seen, even when
// it reaches the end of the text scanned so far. A function definition
// instead waits for the run to be complete.
func (p *T) tail() error {
	if p.state != Application {
		return nil
	}

	t := p.lexer.Tail()
	if t == nil {
		return nil
	} else if !t.Is(token.Lower) {
		return unexpected(t, "unexpected char in application")
	}

	p.lexer.Skip()

	return p.apply(t.Count())
}

func unexpected(t *token.T, msg string) error {
	return errgrass.At(errgrass.Malformed, msg+" ("+t.Class().String()+")", t.Source())
}
