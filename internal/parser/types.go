package parser

import (
	"strings"

	"github.com/orizon-lang/phpfront/internal/ast"
	"github.com/orizon-lang/phpfront/internal/source"
	"github.com/orizon-lang/phpfront/internal/token"
)

// atTypeStart reports whether the cursor could begin a type per
// spec.md §4.4's atom set: a name, a built-in type keyword, `?`, or a
// DNF-grouping `(`.
func (p *Parser) atTypeStart() bool {
	if p.at(token.Question) || p.at(token.LParen) {
		return true
	}
	return p.atNameStart() || token.IsTypeKeyword(p.cur().Kind)
}

// ParseType parses one type expression: `?T`, a union `A|B`, an
// intersection `A&B`, or a DNF combination of the two.
func (p *Parser) ParseType() ast.Type {
	start := p.cur().Span

	var qTok token.Token
	nullable := false
	if p.at(token.Question) {
		qTok = p.bump()
		nullable = true
	}

	first := p.parseTypeAtom()
	var result ast.Type = first

	switch {
	case p.at(token.Pipe):
		p.checkStandalone(first)
		members := []ast.Type{first}
		for p.eat(token.Pipe) {
			m := p.parseTypeAtom()
			p.checkStandalone(m)
			members = append(members, m)
		}
		ut := &ast.UnionType{Members: members}
		result = ut
	case p.at(token.Amp) && p.typeIntersectionContinues():
		p.checkStandalone(first)
		members := []ast.Type{first}
		for p.at(token.Amp) && p.typeIntersectionContinues() {
			p.bump()
			m := p.parseTypeAtom()
			p.checkStandalone(m)
			members = append(members, m)
		}
		it := &ast.IntersectionType{Members: members}
		result = it
	}

	if nullable {
		switch r := result.(type) {
		case *ast.UnionType:
			p.diag.Errorf(qTok.Span, "type.nullable-in-union",
				"nullable '?' cannot combine with a union type; write 'A|B|null' instead")
			nt := &ast.NullableType{Inner: r.Members[0]}
			nt.Span = qTok.Span.Merge(r.Members[0].GetSpan())
			r.Members[0] = nt
		case *ast.IntersectionType:
			p.diag.Errorf(qTok.Span, "type.nullable-in-union",
				"nullable '?' cannot combine with an intersection type; write 'A|B|null' instead")
			nt := &ast.NullableType{Inner: r.Members[0]}
			nt.Span = qTok.Span.Merge(r.Members[0].GetSpan())
			r.Members[0] = nt
		default:
			p.checkStandalone(result)
			nt := &ast.NullableType{Inner: result}
			nt.Span = qTok.Span.Merge(result.GetSpan())
			result = nt
		}
	}

	setTypeSpan(result, start.Merge(p.prevSpan()))
	return result
}

// checkStandalone reports a diagnostic if t is one of the standalone
// types (`void`, `never`, `mixed`) being combined into a union,
// intersection, or nullable type — all invalid in PHP, since these
// three types only mean anything on their own.
func (p *Parser) checkStandalone(t ast.Type) {
	name := standaloneTypeName(t)
	if name == "" {
		return
	}
	p.diag.Errorf(t.GetSpan(), "type.standalone-in-combination",
		"'%s' cannot be combined with another type", name)
}

func standaloneTypeName(t ast.Type) string {
	nt, ok := t.(*ast.NamedType)
	if !ok || nt.Name.NKind != ast.NameUnqualified || len(nt.Name.Parts) != 1 {
		return ""
	}
	switch strings.ToLower(nt.Name.Parts[0]) {
	case "void", "never", "mixed":
		return nt.Name.Parts[0]
	default:
		return ""
	}
}

func setTypeSpan(t ast.Type, span source.Span) {
	switch v := t.(type) {
	case *ast.NamedType:
		v.Span = span
	case *ast.NullableType:
		v.Span = span
	case *ast.UnionType:
		v.Span = span
	case *ast.IntersectionType:
		v.Span = span
	case *ast.ParenthesizedType:
		v.Span = span
	}
}

func (p *Parser) parseTypeAtom() ast.Type {
	if p.at(token.LParen) {
		start := p.bump().Span
		inner := p.parseIntersectionOnly()
		end := p.expect(token.RParen)
		pt := &ast.ParenthesizedType{Inner: inner}
		pt.Span = start.Merge(end.Span)
		return pt
	}
	name := p.parseName()
	nt := &ast.NamedType{Name: name}
	nt.Span = name.Span
	return nt
}

// parseIntersectionOnly parses the content of a DNF grouping paren: a
// single atom, or an ungrouped intersection of atoms.
func (p *Parser) parseIntersectionOnly() ast.Type {
	first := p.parseTypeAtom()
	if !p.at(token.Amp) {
		p.diag.Errorf(first.GetSpan(), "type.dnf-grouping",
			"parentheses in types are only for DNF grouping; wrap an intersection like '(A&B)', not a single type")
		return first
	}
	p.checkStandalone(first)
	members := []ast.Type{first}
	for p.eat(token.Amp) {
		m := p.parseTypeAtom()
		p.checkStandalone(m)
		members = append(members, m)
	}
	it := &ast.IntersectionType{Members: members}
	it.Span = first.GetSpan().Merge(p.prevSpan())
	return it
}

// typeIntersectionContinues reports whether the `&` at the cursor
// introduces another intersection member rather than a by-reference
// or variadic parameter marker (`T &$x`, `T &...$x`).
func (p *Parser) typeIntersectionContinues() bool {
	next := p.peek(1)
	if next.Kind == token.Identifier || next.Kind == token.Backslash || next.Kind == token.LParen {
		return true
	}
	return nameableKeywords[next.Kind]
}
