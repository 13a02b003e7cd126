// Released under an MIT license. See LICENSE.

// Package char provides the grass character combinator.
package char

import (
	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/grass/internal/interface/combinator"
)

const name = "char"

// T (char) wraps a single byte. Applied to another character it
// returns the built-in True if the two bytes are equal and False otherwise.
type T struct {
	combinator.Primitive

	c byte
}

type char = T

// New creates a new char holding the byte c.
func New(c byte) *char {
	return &char{c: c}
}

// Apply compares the byte carried by arg with the byte carried by c.
func (c *char) Apply(p combinator.Pool, _, arg combinator.Ref) (combinator.Ref, error) {
	b, err := combinator.Byte(p, arg)
	if err != nil {
		return combinator.Nil, err
	}

	if b == c.c {
		return p.At(combinator.True)
	}

	return p.At(combinator.False)
}

// Byte returns the byte carried by c.
func (c *char) Byte() (byte, error) {
	return c.c, nil
}

// Name returns the type name for the char c.
func (c *char) Name() string {
	return name
}

// String returns the byte carried by c in dollar single-quoted form.
func (c *char) String() string {
	return adapted.CanonicalString(string([]byte{c.c}))
}

// Is returns true if c is a *T.
func Is(c combinator.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c combinator.T) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t char

	// The char type is a combinator.
	_ = combinator.T(&t)
}
