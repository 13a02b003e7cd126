// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the grass language.
//
// The grass lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk
// "Lexical Scanning in Go". See https://talks.golang.org/2011/lex.slide
// for more information.
//
// Only the markers 'w', 'W' and 'v' have meaning. All other characters are
// skipped, even in the middle of a run. A run of 'w' or 'W' is emitted once
// a different marker follows it, so the length of a run that reaches the
// end of the scanned text is not yet known. Such a run can be inspected
// with Tail. Every 'v' is emitted as soon as it is seen.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/grass/internal/reader/token"
	"github.com/michaelmacinnis/grass/internal/type/loc"
)

// T holds the state of the scanner.
type T struct {
	bytes  string      // Buffer being scanned.
	count  int         // Length of the current run.
	first  int         // Index of the current token's first byte.
	index  int         // Index of the current byte.
	line   int         // Line of the current byte.
	marker token.Class // Marker for the current run.
	queue  []string    // Buffers waiting to be scanned.
	runes  int         // Runes scanned on the current line.
	state  action      // Current action.

	source loc.T

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		line:  1,
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = startRun

	return l
}

// Reset discards all scanned and queued text.
func (l *T) Reset() {
	*l = *New(l.source.Name)
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Skip discards the open run returned by Tail. A marker scanned
// afterwards starts a new run.
func (l *T) Skip() {
	l.count = 0
	l.skip()
	l.state = startRun
}

// Tail returns the run that reaches the end of the scanned text, or nil
// if there is no such run. It is only meaningful once Token returns nil.
// The run is not consumed.
func (l *T) Tail() *token.T {
	if l.count == 0 {
		return nil
	}

	source := l.source

	return token.New(l.marker, l.count, &source)
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		l.gather()
		if len(l.bytes) == 0 {
			return nil
		}

		select {
		case t := <-l.tokens:
			return t
		default:
			state := l.state(l)
			if state != nil {
				l.state = state
			} else {
				close(l.tokens)
			}
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		l.line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, n int) {
	source := l.source

	l.tokens <- token.New(c, n, &source)
	l.count = 0
	l.skip()
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	length := len(l.bytes)
	bytes := strings.Join(l.queue, "")

	if length > 0 && l.first < length {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
	l.tokens = make(chan *token.T, 1)
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.source.Line = l.line
	l.first = l.index
}

// T states.

func scanRun(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case l.marker:
			l.accept(r, w)
			l.count++
		case token.Lower, token.Upper, token.Terminator:
			l.emit(l.marker, l.count)
			return startRun
		default:
			l.accept(r, w)
		}
	}
}

func startRun(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case token.Terminator:
			l.accept(r, w)
			l.emit(token.Terminator, 1)
			return startRun
		case token.Lower, token.Upper:
			l.marker = r
			return scanRun
		default:
			l.accept(r, w)
			l.skip()
		}
	}
}
