package engine

import (
	"strings"
	"testing"

	"github.com/michaelmacinnis/grass/internal/type/errgrass"
	"github.com/michaelmacinnis/grass/internal/type/out"
)

//nolint:gochecknoglobals
var happy = []string{
	"wwWWwWWWwvwwWWWwwWwwWWwvwWWWwwwwwWwwvwWWwWWWWWWWwv",
	"wWWWWwwwwwwwWwwvwWWWWWWwwwWwwvwWWWWWWwwwWWWWWWWWwW",
	"wwwvwWWWWWWWwwWwwWWWWwWWWWWWwWWWWWWWWWwvwWWWWWWWWW",
	"WWwvwWWWWWWWWWWWwvwWWWWwwwwwwwwwwwwwwvwWWwWWWWWWWw",
	"WWWWWWwWWWWWWwWWWWWWWwwwwvwWWWwWWWWWWWWwWWWWWWWWWw",
	"WWWWWWWWwvwWWWWWWWWWWWWwvwWWWWWWWWWWWwvwWWWWWWWwvw",
	"WWWWWwWWWWwWWWWWWWWWWWwWWWWWWWwWWWWWWwWWWWWWWwwwww",
	"WWWWWWWWWwwWWWWWWWWWWwWWWWWWWWWWwWWWWWWWWWWWwWWWWW",
	"WWWWWWWWWwwwwwwwwwwwwwwwwwwwwwwwwwwwwwwWWWWWWWWWWW",
	"WWwWWWWWWWWWWWWWWWWWWWwWWWWWWWWWWWWWWWwvwWWWWWWwWW",
	"WWWwWWWWWWwWWWWWWWwWWWWWWWWWWWWWWwWWWWWWWWwWWWWWWW",
	"WWwwwwwWWWWWWWWWWwwwwwwwwwwwwwwwwwwwwwwwwwwwwWWWWW",
	"WWWWWWWWWWWwWWWWWWWWWWWWwvwvwWWwwwwwwwwwwwwwwwwwww",
	"wwwwvwWWWWWWWWWwWWWwWWWWWWWWWWwWWWWWWWWWwWWWWWWWWW",
	"WWwwwwWWWWWWWWWWWwWWWWWWWWWWWWwwwwwwWWWWWWWWWWWWWW",
	"WWWWWWwwwWWWWWWWWWWWWWWWwWWWWWWWWWWWWWWWWwWWWWWWWW",
	"WWWWWWWWWwWWWWWWWWWWWWWWWWWwvwWWWWWWWWWWWWwWWWWWWW",
	"WWWWWWWWwWWWWWWWWWWWWWWWwWWWWWWWWWWWWWWWWwvwWWWWWW",
	"WWWWWWwWWWWWWWWwWWWWWWWWwWWWWWWwWWWWWWw",
}

func run(t *testing.T, input string, force bool, chunks ...string) string {
	t.Helper()

	var b strings.Builder

	e := New(strings.NewReader(input), &b, force)

	for _, s := range chunks {
		e.Parse(s)
	}

	if err := e.Run().Err(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	return b.String()
}

func TestDump(t *testing.T) {
	var b strings.Builder

	if err := New(strings.NewReader(""), &b, false).Dump(&b); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "1\tout\tOut\n2\tsucc\tSucc\n3\tchar\t$'w'\n4\tin\tIn\n"
	if b.String() != expected {
		t.Fatalf("Expected (%s) got (%s)", expected, b.String())
	}
}

func TestDumpClosure(t *testing.T) {
	var b strings.Builder

	e := New(strings.NewReader(""), &strings.Builder{}, false)

	if err := e.Parse("wWWwwwwv").Dump(&b); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "1\tuser\tλ1[2,4]\t4\n"
	if !strings.HasPrefix(b.String(), expected) {
		t.Fatalf("Expected (%s) got (%s)", expected, b.String())
	}
}

func TestEcho(t *testing.T) {
	if s := run(t, "x", false, "wWWWWWwwwwWWWw"); s != "x" {
		t.Fatalf("Expected (x) got (%s)", s)
	}

	// At the end of input, In returns its argument.
	if s := run(t, "", false, "wWWWWWwwwwWWWw"); s != "w" {
		t.Fatalf("Expected (w) got (%s)", s)
	}
}

func TestForce(t *testing.T) {
	if s := run(t, "", true, "wWWw"); s != out.Placeholder {
		t.Fatalf("Expected (%s) got (%s)", out.Placeholder, s)
	}

	e := New(strings.NewReader(""), &strings.Builder{}, false)
	if err := e.Parse("wWWw").Run().Err(); !errgrass.Is(err, errgrass.Dereference) {
		t.Fatalf("Expected an invalid reference error; got %v", err)
	}
}

func TestHappyNewYear(t *testing.T) {
	if s := run(t, "", false, happy...); s != "A happy new year!!" {
		t.Fatalf("Expected (A happy new year!!) got (%s)", s)
	}
}

func TestHappyNewYearOneCharacterAtATime(t *testing.T) {
	text := strings.Join(happy, "")

	chunks := make([]string, 0, len(text))
	for _, r := range text {
		chunks = append(chunks, string(r))
	}

	if s := run(t, "", false, chunks...); s != "A happy new year!!" {
		t.Fatalf("Expected (A happy new year!!) got (%s)", s)
	}
}

func TestHappyNewYearSplitState(t *testing.T) {
	text := strings.Join(happy, "")

	whole := New(strings.NewReader(""), &strings.Builder{}, false)
	if err := whole.Parse(text).Run().Err(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, size := range []int{1, 2, 3, 7, 50, 64} {
		e := New(strings.NewReader(""), &strings.Builder{}, false)

		for i := 0; i < len(text); i += size {
			e.Parse(text[i:min(i+size, len(text))])
		}

		if err := e.Run().Err(); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if e.Len() != whole.Len() || e.Pool() != whole.Pool() {
			t.Fatalf("Chunks of %d: expected %d, %d; got %d, %d",
				size, whole.Len(), whole.Pool(), e.Len(), e.Pool())
		}
	}
}

func TestHappyNewYearWithNoise(t *testing.T) {
	text := strings.Join(happy, "\n# comment\n")

	if s := run(t, "", false, text); s != "A happy new year!!" {
		t.Fatalf("Expected (A happy new year!!) got (%s)", s)
	}
}

func TestMalformed(t *testing.T) {
	var b strings.Builder

	e := New(strings.NewReader(""), &b, false)

	err := e.Parse("Wv").Err()
	if !errgrass.Is(err, errgrass.Malformed) {
		t.Fatalf("Expected a malformed program error; got %v", err)
	}

	if e.Len() != 4 || e.Pool() != 7 {
		t.Fatalf("Malformed program changed the interpreter: %d, %d", e.Len(), e.Pool())
	}

	// The first error is sticky.
	if e.Parse("wWWwwww").Run().Err() != err {
		t.Fatalf("Expected the first error; got %v", e.Err())
	}

	if b.Len() != 0 {
		t.Fatalf("Expected no output; got (%s)", b.String())
	}
}

func TestPending(t *testing.T) {
	e := New(strings.NewReader(""), &strings.Builder{}, false)

	if !e.Parse("wWWwwww").Pending() {
		t.Fatal("Expected an unfinished definition to be pending")
	}

	e.Reset()

	// In applied to Succ at the end of input returns Succ.
	if e.Parse("WWWw").Pending() {
		t.Fatal("Expected an application to be finished")
	}

	if err := e.Err(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if e.Len() != 5 {
		t.Fatalf("Expected 5 combinators in the environment; got %d", e.Len())
	}
}

func TestReset(t *testing.T) {
	var b strings.Builder

	e := New(strings.NewReader(""), &b, false)

	e.Parse("wWWw").Parse("Wv")

	e.Reset()

	if e.Err() != nil || e.Len() != 4 || e.Pool() != 7 {
		t.Fatalf("Reset did not restore the interpreter: %v, %d, %d", e.Err(), e.Len(), e.Pool())
	}

	if err := e.Parse("wWWwwww").Run().Err(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if b.String() != "w" {
		t.Fatalf("Expected (w) got (%s)", b.String())
	}
}

func TestSimple(t *testing.T) {
	if s := run(t, "", false, "wWWwwww"); s != "w" {
		t.Fatalf("Expected (w) got (%s)", s)
	}
}

func TestTopLevelApplication(t *testing.T) {
	e := New(strings.NewReader(""), &strings.Builder{}, false)

	// A run of n names the slot n below the top: In (3) applied to Succ (1).
	if err := e.Parse("WWWw").Err(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	c, err := e.Top()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if e.Len() != 5 || c.String() != "Succ" {
		t.Fatalf("Expected Succ on top of 5 combinators; got %v on top of %d", c, e.Len())
	}

	e.Reset()

	// Four combinators occupy slots 0 to 3.
	if err := e.Parse("WWWWw").Err(); !errgrass.Is(err, errgrass.Null) {
		t.Fatalf("Expected a null reference error; got %v", err)
	}

	if e.Len() != 4 {
		t.Fatalf("Failed application changed the environment: %d", e.Len())
	}
}

func TestTop(t *testing.T) {
	e := New(strings.NewReader(""), &strings.Builder{}, false)

	if err := e.Parse("wWWwwww").Run().Err(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	c, err := e.Top()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if b, err := c.Byte(); err != nil || b != 'w' {
		t.Fatalf("Expected 'w'; got %v", c)
	}
}
