// Released under an MIT license. See LICENSE.

// Package token is shared by the grass lexer and parser.
package token

import (
	"strconv"

	"github.com/michaelmacinnis/grass/internal/type/loc"
)

// Class is a token's type.
type Class rune

// T (token) is a run of identical markers returned by the scanner.
type T struct {
	class  Class
	count  int
	source *loc.T
}

type token = T

// Token classes. Each is the marker character itself.
const (
	Lower      Class = 'w'
	Upper      Class = 'W'
	Terminator Class = 'v'
)

// New creates a new token for a run of count markers of class c.
func New(class Class, count int, source *loc.T) *token {
	return &token{
		class:  class,
		count:  count,
		source: source,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	return strconv.QuoteRune(rune(c))
}

// Class returns the token's class.
func (t *token) Class() Class {
	return t.class
}

// Count returns the length of the run.
func (t *token) Count() int {
	return t.count
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Source returns the source location for this token.
func (t *token) Source() *loc.T {
	return t.source
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return t.class.String() + "*" + strconv.Itoa(t.count) +
		"(" + t.source.String() + ")"
}
