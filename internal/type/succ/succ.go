// Released under an MIT license. See LICENSE.

// Package succ provides the grass successor primitive.
package succ

import (
	"github.com/michaelmacinnis/grass/internal/interface/combinator"
	"github.com/michaelmacinnis/grass/internal/type/char"
)

const name = "succ"

// T (succ) maps a character to the next character, wrapping at 255.
type T struct {
	combinator.Primitive
}

type succ = T

// New creates a new succ.
func New() *succ {
	return &succ{}
}

// Apply returns a new character one greater than the character arg.
func (s *succ) Apply(p combinator.Pool, _, arg combinator.Ref) (combinator.Ref, error) {
	b, err := combinator.Byte(p, arg)
	if err != nil {
		return combinator.Nil, err
	}

	// Byte arithmetic wraps modulo 256.
	return p.Insert(char.New(b + 1)), nil
}

// Name returns the type name for the succ s.
func (s *succ) Name() string {
	return name
}

// String returns the text of the succ s.
func (s *succ) String() string {
	return "Succ"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t succ

	// The succ type is a combinator.
	_ = combinator.T(&t)
}
