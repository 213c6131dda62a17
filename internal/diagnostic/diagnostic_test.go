package diagnostic

import (
	"testing"

	"github.com/orizon-lang/phpfront/internal/source"
)

func TestBagSortedOrdersBySpanStart(t *testing.T) {
	var b Bag

	b.Errorf(source.NewSpan(10, 11), "lex.bad", "lexical issue")
	b.Errorf(source.NewSpan(1, 2), "parse.bad", "syntax issue")

	got := b.Sorted()
	if len(got) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(got))
	}
	if got[0].Code != "parse.bad" {
		t.Fatalf("expected span-order sort to put parse.bad first, got %s", got[0].Code)
	}
}

func TestHasErrors(t *testing.T) {
	var b Bag
	if b.HasErrors() {
		t.Fatalf("empty bag should have no errors")
	}
	b.Warnf(source.NewSpan(0, 1), "w", "warn")
	if b.HasErrors() {
		t.Fatalf("warning-only bag should have no errors")
	}
	b.Errorf(source.NewSpan(0, 1), "e", "err")
	if !b.HasErrors() {
		t.Fatalf("expected HasErrors() to be true after adding an error")
	}
}

func TestExtendPreservesOrder(t *testing.T) {
	var lex, parse Bag
	lex.Errorf(source.NewSpan(0, 1), "lex.a", "a")
	parse.Errorf(source.NewSpan(0, 1), "parse.b", "b")

	var merged Bag
	merged.Extend(&lex)
	merged.Extend(&parse)

	all := merged.All()
	if len(all) != 2 || all[0].Code != "lex.a" || all[1].Code != "parse.b" {
		t.Fatalf("Extend did not preserve detection order: %+v", all)
	}
}
