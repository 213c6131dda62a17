package parser

import (
	"github.com/orizon-lang/phpfront/internal/ast"
	"github.com/orizon-lang/phpfront/internal/diagnostic"
	"github.com/orizon-lang/phpfront/internal/interner"
	"github.com/orizon-lang/phpfront/internal/lexer"
	"github.com/orizon-lang/phpfront/internal/source"
	"github.com/orizon-lang/phpfront/internal/token"
)

// Result bundles a parsed program with everything a caller needs to
// resolve its symbols and report its diagnostics: the AST, the
// interner that produced its interned names, the source file the
// spans index into, and the accumulated diagnostic bag (lexer errors
// first, parser errors appended).
type Result struct {
	Program    *ast.Program
	File       *source.File
	Interner   *interner.Interner
	Diagnostics *diagnostic.Bag
}

// Parse lexes and parses one PHP source buffer end to end. It never
// fails outright: lexer and parser errors both land in
// Result.Diagnostics, and Result.Program is always a usable (if
// partial) tree, per spec.md's fault-tolerance requirement.
func Parse(name string, src []byte) *Result {
	toks, in, diag := lexer.Tokenize(name, src)
	file := source.NewFile(name, src)

	p := New(toks, file, in, diag)
	prog := p.ParseProgram()

	return &Result{Program: prog, File: file, Interner: in, Diagnostics: diag}
}

// ParseTokens parses an already-lexed token stream, for callers (such
// as tooling built atop internal/lexer directly) that want to reuse
// one Tokenize call across multiple consumers.
func ParseTokens(toks []token.Token, file *source.File, in *interner.Interner, diag *diagnostic.Bag) *ast.Program {
	p := New(toks, file, in, diag)
	return p.ParseProgram()
}

// ParseExpressionString lexes and parses a single standalone
// expression, for tooling (formatters, linters, REPL evaluation) that
// only needs an expression fragment rather than a whole program. src
// is lexed as a file is: text before an opening `<?php` tag is inline
// HTML, not code. A leading open tag is skipped before parsing.
func ParseExpressionString(name string, src []byte) (ast.Expression, *diagnostic.Bag) {
	toks, in, diag := lexer.Tokenize(name, src)
	file := source.NewFile(name, src)
	p := New(toks, file, in, diag)
	p.eat(token.OpenTag)
	expr := p.ParseExpression()
	return expr, diag
}

// ParseTypeString lexes and parses a single standalone type
// expression, exposing internal/parser's DNF type grammar to tooling
// that only needs to validate or render a type annotation. src is
// lexed as a file is: text before an opening `<?php` tag is inline
// HTML, not code. A leading open tag is skipped before parsing.
func ParseTypeString(name string, src []byte) (ast.Type, *diagnostic.Bag) {
	toks, in, diag := lexer.Tokenize(name, src)
	file := source.NewFile(name, src)
	p := New(toks, file, in, diag)
	p.eat(token.OpenTag)
	t := p.ParseType()
	return t, diag
}
