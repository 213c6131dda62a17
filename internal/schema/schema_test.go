package schema

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/orizon-lang/phpfront/internal/parser"
)

func TestDumpProducesIndentedTree(t *testing.T) {
	res := parser.Parse("t.php", []byte("<?php function f(int $x): int { return $x; }"))

	out := Dump(res.Program)
	if !strings.HasPrefix(out, "Program\n") {
		t.Fatalf("Dump() should start with a Program header, got:\n%s", out)
	}
	if !strings.Contains(out, "FunctionDecl") {
		t.Errorf("Dump() missing FunctionDecl node:\n%s", out)
	}
	if !strings.Contains(out, "ReturnStmt") {
		t.Errorf("Dump() missing ReturnStmt node:\n%s", out)
	}
}

func TestWriteJSONProducesValidSchema(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) == 0 {
		t.Fatal("expected at least one node schema entry")
	}
}
