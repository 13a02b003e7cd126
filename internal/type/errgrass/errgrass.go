// Released under an MIT license. See LICENSE.

// Package errgrass provides the error type returned by the grass evaluator.
package errgrass

import (
	"errors"

	"github.com/michaelmacinnis/grass/internal/type/loc"
)

// Kind classifies an error.
type Kind int

// Error kinds.
const (
	// Malformed is an illegal token sequence in the program text.
	Malformed Kind = iota + 1

	// Invalid is an operation a combinator does not support (a real
	// call on a primitive or a call with the wrong number of arguments).
	Invalid

	// Dereference is a request for the byte value of a combinator
	// that does not carry one.
	Dereference

	// Null is a lookup through an unset or stale reference.
	Null
)

// String returns a string representation of Kind.
func (k Kind) String() string {
	switch k {
	case Malformed:
		return "malformed program"
	case Invalid:
		return "invalid operation"
	case Dereference:
		return "invalid reference"
	case Null:
		return "null reference"
	}

	return "unknown error"
}

// T (errgrass) is an error of a particular kind.
type T struct {
	kind   Kind
	msg    string
	source *loc.T
}

type errgrass = T

// New creates a new errgrass.
func New(kind Kind, msg string) *errgrass {
	return &errgrass{kind: kind, msg: msg}
}

// At creates a new errgrass that occurred at source.
func At(kind Kind, msg string, source *loc.T) *errgrass {
	return &errgrass{kind: kind, msg: msg, source: source}
}

// Error returns the text of the error e.
func (e *errgrass) Error() string {
	s := "grass: " + e.msg
	if source := e.Source(); source != nil {
		s = source.String() + ": " + s
	}

	return s
}

// Kind returns the kind of the error e.
func (e *errgrass) Kind() Kind {
	return e.kind
}

// Source returns the location of the error, if known.
func (e *errgrass) Source() *loc.T {
	return e.source
}

// Is returns true if err, or any error it wraps, is an errgrass of kind k.
func Is(err error, k Kind) bool {
	var e *errgrass
	if !errors.As(err, &e) {
		return false
	}

	return e.Kind() == k
}
