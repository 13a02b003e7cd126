// Released under an MIT license. See LICENSE.

// Package pool provides the arena that owns every combinator created by
// an interpreter.
//
// Combinators refer to each other, and the environment refers to them, only
// through combinator.Ref handles. A pool is released as a whole; after
// Release no earlier handle resolves.
package pool

import (
	"github.com/michaelmacinnis/grass/internal/interface/combinator"
	"github.com/michaelmacinnis/grass/internal/type/errgrass"
)

// T (pool) is an arena of combinators.
type T struct {
	builtin [combinator.Builtins]combinator.Ref
	index   map[combinator.T]combinator.Ref
	records []combinator.T
}

type pool = T

// New creates a new, empty pool.
func New() *pool {
	p := &pool{}
	p.Release()

	return p
}

// Apply applies the combinator f to the combinator a.
func (p *pool) Apply(f, a combinator.Ref) (combinator.Ref, error) {
	return combinator.Apply(p, f, a)
}

// Assign records r as the built-in combinator b.
func (p *pool) Assign(b combinator.Builtin, r combinator.Ref) {
	p.builtin[b] = r
}

// At returns the built-in combinator b.
func (p *pool) At(b combinator.Builtin) (combinator.Ref, error) {
	if b < 0 || b >= combinator.Builtins || p.builtin[b] == combinator.Nil {
		return combinator.Nil, errgrass.New(
			errgrass.Null, "built-in "+b.String()+" is not assigned",
		)
	}

	return p.builtin[b], nil
}

// Get returns the combinator for the reference r.
func (p *pool) Get(r combinator.Ref) (combinator.T, error) {
	if r <= combinator.Nil || int(r) >= len(p.records) {
		return nil, errgrass.New(errgrass.Null, "null pointer "+r.String())
	}

	return p.records[r], nil
}

// Insert adds c to the pool and returns its reference. Inserting a
// combinator that is already in the pool returns the existing reference.
func (p *pool) Insert(c combinator.T) combinator.Ref {
	if r, ok := p.index[c]; ok {
		return r
	}

	r := combinator.Ref(len(p.records))

	p.index[c] = r
	p.records = append(p.records, c)

	return r
}

// Len returns the number of combinators owned by the pool.
func (p *pool) Len() int {
	return len(p.records) - 1
}

// Release drops every combinator and every built-in assignment.
func (p *pool) Release() {
	p.builtin = [combinator.Builtins]combinator.Ref{}
	p.index = map[combinator.T]combinator.Ref{}

	// Slot zero is never used so that the zero Ref is always unset.
	p.records = []combinator.T{nil}
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pool

	// The pool type can be used by combinators.
	_ = combinator.Pool(&t)
}
