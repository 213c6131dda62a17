package parser

import (
	"strings"

	"github.com/orizon-lang/phpfront/internal/ast"
	"github.com/orizon-lang/phpfront/internal/source"
	"github.com/orizon-lang/phpfront/internal/token"
)

// nameableKeywords is the set of keyword kinds PHP still allows as a
// bare name segment (a class, constant, or namespace component),
// beyond a plain Identifier token.
var nameableKeywords = map[token.Kind]bool{
	token.KwSelf: true, token.KwParent: true, token.KwStatic: true,
	token.KwArray: true, token.KwList: true, token.KwNull: true,
	token.KwTrue: true, token.KwFalse: true, token.KwCallable: true,
	token.KwInt: true, token.KwFloat: true, token.KwString: true,
	token.KwBool: true, token.KwObject: true, token.KwIterable: true,
	token.KwMixed: true, token.KwNever: true, token.KwVoid: true,
}

func (p *Parser) parseNameSegment() string {
	t := p.cur()
	if t.Kind == token.Identifier || nameableKeywords[t.Kind] {
		p.bump()
		return p.symbolText(t)
	}
	p.diag.Errorf(t.Span, "parse.expected-name", "expected identifier, found %s", t.Kind)
	return "<error>"
}

// parseName parses a possibly-namespaced identifier: an optional
// leading `\` (fully-qualified) or `namespace\` (relative) prefix,
// then one or more `\`-separated segments.
func (p *Parser) parseName() *ast.Name {
	start := p.cur().Span
	kind := ast.NameUnqualified

	switch {
	case p.eat(token.Backslash):
		kind = ast.NameFullyQualified
	case p.at(token.KwNamespace) && p.peek(1).Kind == token.Backslash:
		p.bump()
		p.bump()
		kind = ast.NameRelative
	}

	parts := []string{p.parseNameSegment()}
	for p.at(token.Backslash) {
		p.bump()
		parts = append(parts, p.parseNameSegment())
	}
	if kind == ast.NameUnqualified && len(parts) > 1 {
		kind = ast.NameQualified
	}

	n := &ast.Name{Parts: parts, NKind: kind}
	n.Span = start.Merge(p.prevSpan())
	return n
}

// parseNamePossiblyGrouped parses a Name the same way parseName does,
// except it stops before consuming a `\` that immediately precedes a
// group-use `{`, leaving the cursor there for the caller to detect the
// grouped form (`use A\B\{C, D};`).
func (p *Parser) parseNamePossiblyGrouped() *ast.Name {
	start := p.cur().Span
	kind := ast.NameUnqualified

	switch {
	case p.eat(token.Backslash):
		kind = ast.NameFullyQualified
	case p.at(token.KwNamespace) && p.peek(1).Kind == token.Backslash:
		p.bump()
		p.bump()
		kind = ast.NameRelative
	}

	parts := []string{p.parseNameSegment()}
	for p.at(token.Backslash) && p.peek(1).Kind != token.LBrace {
		p.bump()
		parts = append(parts, p.parseNameSegment())
	}
	if kind == ast.NameUnqualified && len(parts) > 1 {
		kind = ast.NameQualified
	}

	n := &ast.Name{Parts: parts, NKind: kind}
	n.Span = start.Merge(p.prevSpan())
	return n
}

// atNameStart reports whether the cursor could begin a Name.
func (p *Parser) atNameStart() bool {
	if p.at(token.Backslash) {
		return true
	}
	if p.at(token.KwNamespace) && p.peek(1).Kind == token.Backslash {
		return true
	}
	return p.at(token.Identifier) || nameableKeywords[p.cur().Kind]
}

// prevSpan returns the span of the token just consumed, used to build
// a merged span after parsing a multi-token construct.
func (p *Parser) prevSpan() source.Span {
	if p.pos == 0 {
		return p.toks[0].Span
	}
	return p.toks[p.pos-1].Span
}

func lowerText(s string) string { return strings.ToLower(s) }
