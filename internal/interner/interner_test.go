package interner

import (
	"testing"

	"github.com/orizon-lang/phpfront/internal/perr"
)

func TestInternDeduplicates(t *testing.T) {
	in := New()

	a := in.Intern([]byte("foo"))
	b := in.Intern([]byte("foo"))
	c := in.Intern([]byte("bar"))

	if a != b {
		t.Fatalf("expected equal symbols for identical bytes, got %d and %d", a, b)
	}
	if a == c {
		t.Fatalf("expected distinct symbols for distinct bytes")
	}
}

func TestResolveRoundTrips(t *testing.T) {
	in := New()

	sym := in.Intern([]byte("Function"))
	if got := in.Resolve(sym); got != "Function" {
		t.Fatalf("Resolve() = %q, want %q", got, "Function")
	}
}

func TestCasePreservedDistinctSymbols(t *testing.T) {
	in := New()

	lower := in.Intern([]byte("function"))
	upper := in.Intern([]byte("FUNCTION"))

	if lower == upper {
		t.Fatalf("expected case-sensitive symbols to differ")
	}
	if in.CanonicalKeyword([]byte("FUNCTION")) != in.CanonicalKeyword([]byte("function")) {
		t.Fatalf("expected canonical keyword forms to match regardless of case")
	}
}

func TestResolveUnknownSymbol(t *testing.T) {
	in := New()
	if got := in.Resolve(Symbol(999)); got != "" {
		t.Fatalf("Resolve() of unknown symbol = %q, want empty", got)
	}
	if got := in.Resolve(invalidSymbol); got != "" {
		t.Fatalf("Resolve() of invalid symbol = %q, want empty", got)
	}
}

func TestMustResolveRoundTrips(t *testing.T) {
	in := New()
	sym := in.Intern([]byte("class"))
	if got := in.MustResolve(sym); got != "class" {
		t.Fatalf("MustResolve() = %q, want %q", got, "class")
	}
}

func TestMustResolvePanicsOnUnknownSymbol(t *testing.T) {
	in := New()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected MustResolve to panic on an unknown symbol")
		}
		if _, ok := r.(*perr.ProgrammerError); !ok {
			t.Fatalf("expected panic value to be *perr.ProgrammerError, got %T", r)
		}
	}()
	in.MustResolve(Symbol(999))
}

func TestLen(t *testing.T) {
	in := New()
	in.Intern([]byte("a"))
	in.Intern([]byte("b"))
	in.Intern([]byte("a"))

	if got := in.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
}
