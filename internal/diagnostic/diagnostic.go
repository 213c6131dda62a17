// Package diagnostic defines the severity/code/message/span data
// model shared by the lexer and parser. Rendering source-annotated
// reports from a Diagnostic is explicitly out of scope; this package
// only carries the structured data an external renderer would need.
package diagnostic

import (
	"fmt"
	"sort"

	"github.com/orizon-lang/phpfront/internal/source"
)

// Severity is the closed set of diagnostic severities.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Note is a secondary annotation attached to a Diagnostic, e.g. a
// suggested fix location or a related declaration.
type Note struct {
	Span source.Span
	Text string
}

// Diagnostic is one lexical or syntactic finding.
type Diagnostic struct {
	Severity Severity
	Code     string // stable string, e.g. "type.nullable-in-union"
	Message  string
	Primary  source.Span
	Notes    []Note

	// seq disambiguates diagnostics that share a primary span,
	// preserving detection order within Bag.Sorted.
	seq int
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s[%s]@%s: %s", d.Severity, d.Code, d.Primary, d.Message)
}

// Bag accumulates diagnostics from a lexer and parser run in the
// order they are detected, and can produce them in the source-order,
// lexer-then-parser sequence spec.md §4.5 and §5 require.
type Bag struct {
	items   []Diagnostic
	nextSeq int
}

// Add appends a diagnostic, stamping it with detection order.
func (b *Bag) Add(d Diagnostic) {
	d.seq = b.nextSeq
	b.nextSeq++
	b.items = append(b.items, d)
}

// Errorf is a convenience constructor for an Error-severity
// diagnostic.
func (b *Bag) Errorf(primary source.Span, code, format string, args ...interface{}) {
	b.Add(Diagnostic{Severity: Error, Code: code, Message: fmt.Sprintf(format, args...), Primary: primary})
}

// Warnf is a convenience constructor for a Warning-severity
// diagnostic.
func (b *Bag) Warnf(primary source.Span, code, format string, args ...interface{}) {
	b.Add(Diagnostic{Severity: Warning, Code: code, Message: fmt.Sprintf(format, args...), Primary: primary})
}

// HasErrors reports whether any accumulated diagnostic is Error
// severity.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Len returns the number of accumulated diagnostics.
func (b *Bag) Len() int { return len(b.items) }

// All returns the diagnostics in raw detection order (lexer first,
// since lexer diagnostics are always Add'ed to the bag before the
// parser runs).
func (b *Bag) All() []Diagnostic {
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	return out
}

// Sorted returns the diagnostics ordered by primary span start, then
// by detection order for ties. Detection order places every lexer
// diagnostic before every parser diagnostic, so sorting interleaves
// the two by position.
func (b *Bag) Sorted() []Diagnostic {
	out := b.All()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Primary.Start != out[j].Primary.Start {
			return out[i].Primary.Start < out[j].Primary.Start
		}
		return out[i].seq < out[j].seq
	})
	return out
}

// Extend appends every diagnostic from other, preserving other's
// internal detection order but placing it after everything already in
// b (used to merge lexer diagnostics into a parser's bag).
func (b *Bag) Extend(other *Bag) {
	for _, d := range other.All() {
		b.Add(d)
	}
}
