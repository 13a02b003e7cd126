// Released under an MIT license. See LICENSE.

// Package combinator defines the interface for all grass values.
package combinator

import (
	"strconv"

	"github.com/michaelmacinnis/grass/internal/type/errgrass"
)

// Ref is a handle to a combinator owned by a Pool. The zero Ref is unset.
type Ref int

// Nil is the unset reference.
const Nil Ref = 0

// String returns a string representation of Ref. Useful for debugging.
func (r Ref) String() string {
	if r == Nil {
		return "nil"
	}

	return "#" + strconv.Itoa(int(r))
}

// Builtin names a combinator that the evaluator needs to find by role.
type Builtin int

// Built-in combinators.
const (
	// Primitives.
	In Builtin = iota
	W
	Succ
	Out

	// Others.
	ID
	True
	False

	Builtins // Number of built-in slots.
)

// String returns a string representation of Builtin.
func (b Builtin) String() string {
	switch b {
	case In:
		return "In"
	case W:
		return "w"
	case Succ:
		return "Succ"
	case Out:
		return "Out"
	case ID:
		return "ID"
	case True:
		return "True"
	case False:
		return "False"
	}

	return "Builtin(" + strconv.Itoa(int(b)) + ")"
}

// Pool is what a combinator needs from the arena that owns it.
type Pool interface {
	At(b Builtin) (Ref, error)
	Get(r Ref) (T, error)
	Insert(c T) Ref
}

// T (combinator) is the basic unit of meaning in grass.
type T interface {
	// Apply applies the combinator self to arg.
	Apply(p Pool, self, arg Ref) (Ref, error)

	// Call performs a real call with all curried arguments supplied.
	Call(p Pool, args []Ref) (Ref, error)

	// Byte returns the character carried by the combinator.
	Byte() (byte, error)

	Name() string
	String() string
}

// Apply looks up f in p and applies it to a.
func Apply(p Pool, f, a Ref) (Ref, error) {
	c, err := p.Get(f)
	if err != nil {
		return Nil, err
	}

	return c.Apply(p, f, a)
}

// Byte looks up r in p and returns its character.
func Byte(p Pool, r Ref) (byte, error) {
	c, err := p.Get(r)
	if err != nil {
		return 0, err
	}

	return c.Byte()
}

// Primitive provides the default Call and Byte behavior for combinators
// that support neither. Embed it and override as needed.
type Primitive struct{}

// Call fails. Only user-defined combinators can be called with arguments.
func (Primitive) Call(_ Pool, _ []Ref) (Ref, error) {
	return Nil, errgrass.New(errgrass.Invalid, "invalid real call")
}

// Byte fails. Only character combinators carry a byte.
func (Primitive) Byte() (byte, error) {
	return 0, errgrass.New(errgrass.Dereference, "invalid reference")
}
