// Released under an MIT license. See LICENSE.

// Package partial provides the grass partial application combinator.
package partial

import (
	"strconv"

	"github.com/michaelmacinnis/grass/internal/interface/combinator"
)

const name = "partial"

// T (partial) captures one curried argument of a combinator that still
// needs remaining more arguments before it can be called.
type T struct {
	combinator.Primitive

	arg       combinator.Ref
	fn        combinator.Ref
	remaining int
}

type partial = T

// New creates a new partial application of fn to arg.
func New(remaining int, fn, arg combinator.Ref) *partial {
	return &partial{arg: arg, fn: fn, remaining: remaining}
}

// Apply supplies the next argument. When it is the last argument,
// the underlying combinator is called.
func (a *partial) Apply(p combinator.Pool, self, arg combinator.Ref) (combinator.Ref, error) {
	if a.remaining > 1 {
		return p.Insert(New(a.remaining-1, self, arg)), nil
	}

	return a.Call(p, []combinator.Ref{arg})
}

// Call prepends the captured argument to args and calls the wrapped combinator.
func (a *partial) Call(p combinator.Pool, args []combinator.Ref) (combinator.Ref, error) {
	c, err := p.Get(a.fn)
	if err != nil {
		return combinator.Nil, err
	}

	return c.Call(p, append([]combinator.Ref{a.arg}, args...))
}

// Name returns the type name for the partial a.
func (a *partial) Name() string {
	return name
}

// Remaining returns the number of arguments still needed.
func (a *partial) Remaining() int {
	return a.remaining
}

// String returns a string representation of the partial a.
func (a *partial) String() string {
	return "(" + a.fn.String() + " " + a.arg.String() + ")/" +
		strconv.Itoa(a.remaining)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t partial

	// The partial type is a combinator.
	_ = combinator.T(&t)
}
