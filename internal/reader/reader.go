// Released under an MIT license. See LICENSE.

// Package reader connects the grass lexer to the grass parser.
package reader

import (
	"github.com/michaelmacinnis/grass/internal/reader/lexer"
	"github.com/michaelmacinnis/grass/internal/reader/parser"
)

// T (reader) encapsulates the grass lexer and parser.
type T struct {
	p *parser.T
	s *lexer.T
}

type reader = T

// New creates a new reader for name that passes complete constructs to e.
func New(name string, e parser.Evaluator) *reader {
	r := &reader{s: lexer.New(name)}

	r.p = parser.New(e, r.s)

	return r
}

// Pending returns true if a construct has been started but not finished.
// A run that reaches the end of the text read so far is unfinished.
func (r *reader) Pending() bool {
	return r.p.Pending() || r.s.Tail() != nil
}

// Reset discards everything read so far.
func (r *reader) Reset() {
	r.s.Reset()
	r.p.Reset()
}

// Scan reads text and passes every complete construct to the evaluator.
// If scan encounters any error it returns the error.
func (r *reader) Scan(text string) error {
	r.s.Scan(text)

	return r.p.Parse()
}
