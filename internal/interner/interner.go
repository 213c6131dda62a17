// Package interner provides a string table returning a small opaque
// symbol per distinct byte sequence. It is used by the lexer to
// deduplicate identifier and keyword text so downstream comparisons
// are integer compares rather than byte-slice compares.
package interner

import (
	"strings"

	"github.com/orizon-lang/phpfront/internal/perr"
)

// Symbol is an opaque handle to an interned byte sequence. The zero
// value denotes "no symbol" and is never returned by Intern.
type Symbol uint32

// invalidSymbol is returned by lookups that fail.
const invalidSymbol Symbol = 0

// Interner owns the backing storage for interned strings for the
// lifetime of a single parse. It is not safe for concurrent use; each
// parse invocation owns its own Interner.
type Interner struct {
	bySymbol []string
	byBytes  map[string]Symbol

	// lower maps a lowercased byte sequence to the Symbol of the
	// FIRST spelling interned for it, supporting PHP's
	// case-insensitive keyword recognition while every individual
	// spelling still gets (and keeps) its own case-preserving Symbol.
	lower map[string]Symbol
}

// New creates an empty Interner. Index 0 is reserved as the invalid
// symbol so a zero-valued Symbol field on a Token means "absent"
// rather than colliding with a real interned string.
func New() *Interner {
	return &Interner{
		bySymbol: []string{""},
		byBytes:  make(map[string]Symbol),
		lower:    make(map[string]Symbol),
	}
}

// Intern returns the Symbol for bytes, interning it if this is the
// first time this exact byte sequence has been seen. Case is
// preserved: "Foo" and "foo" receive distinct symbols.
func (in *Interner) Intern(bytes []byte) Symbol {
	s := string(bytes)
	if sym, ok := in.byBytes[s]; ok {
		return sym
	}

	sym := Symbol(len(in.bySymbol))
	in.bySymbol = append(in.bySymbol, s)
	in.byBytes[s] = sym

	lowered := strings.ToLower(s)
	if _, ok := in.lower[lowered]; !ok {
		in.lower[lowered] = sym
	}

	return sym
}

// InternString is a convenience wrapper around Intern for callers that
// already hold a string.
func (in *Interner) InternString(s string) Symbol {
	return in.Intern([]byte(s))
}

// Resolve returns the original bytes for sym, or "" if sym is unknown.
func (in *Interner) Resolve(sym Symbol) string {
	if int(sym) <= 0 || int(sym) >= len(in.bySymbol) {
		return ""
	}
	return in.bySymbol[sym]
}

// MustResolve is Resolve for callers holding a Symbol they know came
// from this exact Interner (a token just produced by the lexer that
// owns it, for instance). A miss here means a Symbol leaked across
// Interner instances, which is a bug in this module, not a malformed
// source file, so it reports through perr rather than returning "".
func (in *Interner) MustResolve(sym Symbol) string {
	if int(sym) <= 0 || int(sym) >= len(in.bySymbol) {
		panic(perr.UnknownSymbol(uint32(sym)))
	}
	return in.bySymbol[sym]
}

// CanonicalKeyword returns the lowercased spelling of bytes, letting
// the lexer perform O(1) keyword lookups against a canonicalized map
// while the Symbol embedded in the token still preserves the caller's
// case. It does not consult the interned table.
func (in *Interner) CanonicalKeyword(bytes []byte) string {
	return strings.ToLower(string(bytes))
}

// Len returns the number of distinct byte sequences interned so far,
// excluding the reserved invalid symbol.
func (in *Interner) Len() int {
	return len(in.bySymbol) - 1
}
