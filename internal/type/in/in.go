// Released under an MIT license. See LICENSE.

// Package in provides the grass input primitive.
package in

import (
	"errors"
	"io"

	"github.com/michaelmacinnis/grass/internal/interface/combinator"
	"github.com/michaelmacinnis/grass/internal/type/char"
)

const name = "in"

// T (in) reads one byte each time it is applied.
type T struct {
	combinator.Primitive

	r io.ByteReader
}

type in = T

// New creates a new in that reads from r.
func New(r io.ByteReader) *in {
	return &in{r: r}
}

// Apply reads a byte and returns it as a new character.
// At the end of input it returns arg unchanged.
func (i *in) Apply(p combinator.Pool, _, arg combinator.Ref) (combinator.Ref, error) {
	c, err := i.r.ReadByte()
	if errors.Is(err, io.EOF) {
		return arg, nil
	} else if err != nil {
		return combinator.Nil, err
	}

	return p.Insert(char.New(c)), nil
}

// Name returns the type name for the in i.
func (i *in) Name() string {
	return name
}

// String returns the text of the in i.
func (i *in) String() string {
	return "In"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t in

	// The in type is a combinator.
	_ = combinator.T(&t)
}
