// Package perr provides a standardized error type for programmer
// errors: invariant violations reached only by a bug in this module
// itself, never by malformed PHP source. Recoverable syntax problems
// always flow through internal/diagnostic instead; perr is for the
// "this should be unreachable" case a panic would otherwise cover.
package perr

import (
	"fmt"
	"runtime"
)

// Category groups a ProgrammerError by the kind of invariant it
// violates.
type Category string

const (
	CategoryCursor    Category = "CURSOR"
	CategoryInterner  Category = "INTERNER"
	CategorySchema    Category = "SCHEMA"
	CategoryInvariant Category = "INVARIANT"
)

// ProgrammerError is a consistent error format for internal invariant
// violations, carrying the caller that raised it for triage.
type ProgrammerError struct {
	Category Category
	Code     string
	Message  string
	Context  map[string]interface{}
	Caller   string
}

func (e *ProgrammerError) Error() string {
	return fmt.Sprintf("[%s:%s] %s (caller: %s)", e.Category, e.Code, e.Message, e.Caller)
}

// New creates a ProgrammerError, recording the function that called
// New (not New itself) as Caller.
func New(category Category, code, message string, context map[string]interface{}) *ProgrammerError {
	pc, _, _, ok := runtime.Caller(1)
	caller := "unknown"
	if ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			caller = fn.Name()
		}
	}
	return &ProgrammerError{
		Category: category,
		Code:     code,
		Message:  message,
		Context:  context,
		Caller:   caller,
	}
}

// CursorOutOfRange reports a token-cursor index that fell outside the
// token slice, which should never happen: cursor.go's bump/expect
// bound-check before advancing.
func CursorOutOfRange(index, length int) *ProgrammerError {
	return New(CategoryCursor, "CURSOR_OUT_OF_RANGE",
		fmt.Sprintf("token cursor index %d out of range for length %d", index, length),
		map[string]interface{}{"index": index, "length": length})
}

// UnknownSymbol reports an interner.Symbol with no backing entry in
// the table, which can only happen if a Symbol value leaked from a
// different interner instance.
func UnknownSymbol(id uint32) *ProgrammerError {
	return New(CategoryInterner, "UNKNOWN_SYMBOL",
		fmt.Sprintf("symbol id %d has no entry in this interner", id),
		map[string]interface{}{"id": id})
}

// UnreachableNodeKind reports a Go type switch over an ast.Node
// falling through to a case that every node kind should have covered.
func UnreachableNodeKind(where, kind string) *ProgrammerError {
	return New(CategoryInvariant, "UNREACHABLE_NODE_KIND",
		fmt.Sprintf("%s: unhandled node kind %q", where, kind),
		map[string]interface{}{"where": where, "kind": kind})
}

// SchemaReflectionFailed reports the AST schema reflector encountering
// a registered node type it could not decompose into fields.
func SchemaReflectionFailed(typeName, reason string) *ProgrammerError {
	return New(CategorySchema, "SCHEMA_REFLECTION_FAILED",
		fmt.Sprintf("reflecting node type %s: %s", typeName, reason),
		map[string]interface{}{"type": typeName, "reason": reason})
}
