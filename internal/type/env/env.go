// Released under an MIT license. See LICENSE.

// Package env provides the grass environment: a stack of combinator
// references indexed from the top.
package env

import (
	"strconv"

	"github.com/michaelmacinnis/grass/internal/interface/combinator"
	"github.com/michaelmacinnis/grass/internal/type/errgrass"
)

// T (env) holds references into a pool. It never owns combinators.
type T struct {
	refs []combinator.Ref
}

type env = T

// New creates a new, empty env.
func New() *env {
	return &env{}
}

// At returns the reference i slots below the top. At(0) is the top.
func (e *env) At(i int) (combinator.Ref, error) {
	n := len(e.refs)
	if i < 0 || i >= n {
		return combinator.Nil, errgrass.New(
			errgrass.Null,
			"index "+strconv.Itoa(i+1)+" out of range ("+strconv.Itoa(n)+")",
		)
	}

	return e.refs[n-i-1], nil
}

// Clear removes all references from the env e.
func (e *env) Clear() {
	e.refs = e.refs[:0]
}

// Copy creates a copy of the env e with room for reserve more references.
// Pushing onto the copy never modifies e.
func (e *env) Copy(reserve int) *env {
	refs := make([]combinator.Ref, len(e.refs), len(e.refs)+reserve)
	copy(refs, e.refs)

	return &env{refs: refs}
}

// Len returns the number of references in the env e.
func (e *env) Len() int {
	return len(e.refs)
}

// Push adds r to the top of the env e.
func (e *env) Push(r combinator.Ref) {
	e.refs = append(e.refs, r)
}

// Refs returns the references in e from bottom to top.
func (e *env) Refs() []combinator.Ref {
	refs := make([]combinator.Ref, len(e.refs))
	copy(refs, e.refs)

	return refs
}

// Top returns the most recently pushed reference.
func (e *env) Top() (combinator.Ref, error) {
	return e.At(0)
}
