package parser

import (
	"github.com/orizon-lang/phpfront/internal/ast"
	"github.com/orizon-lang/phpfront/internal/token"
)

// collectPendingAttributes consumes zero or more consecutive `#[...]`
// groups and appends them to the pending-attribute buffer, per
// spec.md §4.3: attributes are collected ahead of the construct that
// will claim them.
func (p *Parser) collectPendingAttributes() {
	for p.at(token.AttributeStart) {
		p.pendingAttrs = append(p.pendingAttrs, p.parseAttributeGroup())
	}
}

// takeAttributes returns and clears the pending-attribute buffer, for
// the next attributable construct to claim: a function, class-like,
// class-member, or parameter declaration. Closures, arrow functions,
// `new`, and anonymous classes do not claim them.
func (p *Parser) takeAttributes() []*ast.AttributeGroup {
	out := p.pendingAttrs
	p.pendingAttrs = nil
	return out
}

// diagnoseUnclaimedAttributes reports leftover attributes at the end
// of a block or program, per spec.md §4.3.
func (p *Parser) diagnoseUnclaimedAttributes() {
	for _, g := range p.pendingAttrs {
		p.diag.Errorf(g.GetSpan(), "parse.unclaimed-attribute", "attribute group has no attributable construct to attach to")
	}
	p.pendingAttrs = nil
}

func (p *Parser) parseAttributeGroup() *ast.AttributeGroup {
	start := p.bump() // #[
	var attrs []*ast.Attribute
	for !p.at(token.RBracket) && !p.at(token.EndOfInput) {
		attrs = append(attrs, p.parseAttribute())
		if !p.eat(token.Comma) {
			break
		}
	}
	end := p.expect(token.RBracket)
	g := &ast.AttributeGroup{Attributes: attrs}
	g.Span = start.Span.Merge(end.Span)
	return g
}

func (p *Parser) parseAttribute() *ast.Attribute {
	name := p.parseName()
	var args []*ast.AttributeArg
	end := name.Span
	if p.at(token.LParen) {
		p.bump()
		for !p.at(token.RParen) && !p.at(token.EndOfInput) {
			args = append(args, p.parseAttributeArg())
			if !p.eat(token.Comma) {
				break
			}
		}
		end = p.expect(token.RParen).Span
	}
	a := &ast.Attribute{Name: name, Args: args}
	a.Span = name.Span.Merge(end)
	return a
}

func (p *Parser) parseAttributeArg() *ast.AttributeArg {
	start := p.cur().Span
	name := ""
	if p.at(token.Identifier) && p.peek(1).Kind == token.Colon {
		name = p.symbolText(p.bump())
		p.bump() // :
	}
	val := p.parseBinary(1)
	a := &ast.AttributeArg{Name: name, Value: val}
	a.Span = start.Merge(val.GetSpan())
	return a
}
