// Released under an MIT license. See LICENSE.

// Package out provides the grass output primitive.
package out

import (
	"io"

	"github.com/michaelmacinnis/grass/internal/interface/combinator"
	"github.com/michaelmacinnis/grass/internal/type/errgrass"
)

const name = "out"

// Placeholder is written in place of a combinator that is not a character
// when output is forced.
const Placeholder = "<lambda>"

// T (out) writes the character it is applied to.
type T struct {
	combinator.Primitive

	force bool
	w     io.Writer
}

type out = T

// New creates a new out that writes to w. If force is true, applying out
// to a combinator that is not a character writes Placeholder instead of
// failing.
func New(w io.Writer, force bool) *out {
	return &out{force: force, w: w}
}

// Apply writes the character arg and returns arg.
func (o *out) Apply(p combinator.Pool, _, arg combinator.Ref) (combinator.Ref, error) {
	b, err := combinator.Byte(p, arg)

	switch {
	case err == nil:
		_, err = o.w.Write([]byte{b})
	case o.force && errgrass.Is(err, errgrass.Dereference):
		_, err = io.WriteString(o.w, Placeholder)
	}

	if err != nil {
		return combinator.Nil, err
	}

	return arg, nil
}

// Name returns the type name for the out o.
func (o *out) Name() string {
	return name
}

// String returns the text of the out o.
func (o *out) String() string {
	return "Out"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t out

	// The out type is a combinator.
	_ = combinator.T(&t)
}
