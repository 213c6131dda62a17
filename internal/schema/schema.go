// Package schema backs the module's two CLI collaborators: it renders
// a parsed *ast.Program as a human-readable tree for cmd/phpast and
// serializes ast.Schema()'s node-kind description as JSON for
// cmd/phpschema.
package schema

import (
	"encoding/json"
	"io"

	"github.com/orizon-lang/phpfront/internal/ast"
)

// WriteJSON writes ast.Schema()'s node-kind description to w as
// indented JSON.
func WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ast.Schema())
}
