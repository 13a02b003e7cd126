// Released under an MIT license. See LICENSE.

// Package user provides user-defined grass combinators.
package user

import (
	"strconv"
	"strings"

	"github.com/michaelmacinnis/grass/internal/interface/combinator"
	"github.com/michaelmacinnis/grass/internal/type/env"
	"github.com/michaelmacinnis/grass/internal/type/errgrass"
	"github.com/michaelmacinnis/grass/internal/type/partial"
)

const name = "user"

// Pair is one application in a combinator's body. Func and Arg are
// zero-based indices from the top of the call's environment.
type Pair struct {
	Func int
	Arg  int
}

// T (user) is a combinator defined by a grass program.
type T struct {
	arity   int
	body    []Pair
	closure *env.T
}

type user = T

// New creates a new user combinator of the given arity. The closure is the
// environment visible at the point of definition and is never modified.
func New(arity int, body []Pair, closure *env.T) *user {
	if closure == nil {
		closure = env.New()
	}

	return &user{arity: arity, body: body, closure: closure}
}

// Identity creates a combinator that returns its argument.
func Identity() *user {
	return New(1, nil, nil)
}

// True creates the two-argument combinator that returns its first argument.
// It applies the identity combinator id to the first argument.
func True(id combinator.Ref) *user {
	closure := env.New()
	closure.Push(id)

	return New(2, []Pair{{Func: 2, Arg: 1}}, closure)
}

// False creates the two-argument combinator that returns its second argument.
func False() *user {
	return New(2, nil, nil)
}

// Apply supplies an argument. While more than one argument is needed
// the result is a partial application.
func (u *user) Apply(p combinator.Pool, self, arg combinator.Ref) (combinator.Ref, error) {
	if u.arity > 1 {
		return p.Insert(partial.New(u.arity-1, self, arg)), nil
	}

	return u.Call(p, []combinator.Ref{arg})
}

// Byte fails. A user combinator is not a character.
func (u *user) Byte() (byte, error) {
	return 0, errgrass.New(errgrass.Dereference, "invalid reference")
}

// Call evaluates the body of u with args pushed on a copy of its closure.
// Each application's result is pushed in turn and the last one is returned.
func (u *user) Call(p combinator.Pool, args []combinator.Ref) (combinator.Ref, error) {
	if len(args) != u.arity {
		return combinator.Nil, errgrass.New(
			errgrass.Invalid,
			"invalid argument number: expected "+strconv.Itoa(u.arity)+
				", passed "+strconv.Itoa(len(args)),
		)
	}

	frame := u.closure.Copy(len(args) + len(u.body))
	for _, a := range args {
		frame.Push(a)
	}

	for _, app := range u.body {
		f, err := frame.At(app.Func)
		if err != nil {
			return combinator.Nil, err
		}

		a, err := frame.At(app.Arg)
		if err != nil {
			return combinator.Nil, err
		}

		r, err := combinator.Apply(p, f, a)
		if err != nil {
			return combinator.Nil, err
		}

		frame.Push(r)
	}

	return frame.Top()
}

// Closure returns the environment captured by u.
func (u *user) Closure() *env.T {
	return u.closure
}

// Name returns the type name for the user u.
func (u *user) Name() string {
	return name
}

// String returns the text of the user u, with indices shown one-based
// as they appear in program text.
func (u *user) String() string {
	var b strings.Builder

	b.WriteString("λ")
	b.WriteString(strconv.Itoa(u.arity))
	b.WriteString("[")

	for i, app := range u.body {
		if i > 0 {
			b.WriteString(" ")
		}

		b.WriteString(strconv.Itoa(app.Func + 1))
		b.WriteString(",")
		b.WriteString(strconv.Itoa(app.Arg + 1))
	}

	b.WriteString("]")

	return b.String()
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
	var t user

	// The user type is a combinator.
	_ = combinator.T(&t)
}
