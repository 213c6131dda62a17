// Command phpschema emits the module's AST node-kind schema as JSON
// to standard output, for external tooling that wants to know the
// shape of phpast's output without depending on this module's Go
// types directly.
package main

import (
	"os"

	"github.com/orizon-lang/phpfront/internal/schema"
)

func main() {
	if err := schema.WriteJSON(os.Stdout); err != nil {
		os.Stderr.WriteString("phpschema: " + err.Error() + "\n")
		os.Exit(1)
	}
}
