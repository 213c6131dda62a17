package parser

import (
	"github.com/orizon-lang/phpfront/internal/ast"
	"github.com/orizon-lang/phpfront/internal/source"
	"github.com/orizon-lang/phpfront/internal/token"
)

// ParseProgram parses a complete token stream into a Program, the
// entry point Parse (in parser.go) wraps after lexing.
func (p *Parser) ParseProgram() *ast.Program {
	start := p.cur().Span
	var stmts []ast.Statement
	for !p.at(token.EndOfInput) {
		stmts = append(stmts, p.parseStatement())
	}
	p.diagnoseUnclaimedAttributes()
	prog := &ast.Program{Statements: stmts}
	prog.Span = start.Merge(p.prevSpan())
	return prog
}

// parseBlock parses a brace-delimited statement sequence.
func (p *Parser) parseBlock() *ast.BlockStmt {
	start := p.expect(token.LBrace)
	var stmts []ast.Statement
	for !p.at(token.RBrace) && !p.at(token.EndOfInput) {
		stmts = append(stmts, p.parseStatement())
	}
	p.diagnoseUnclaimedAttributes()
	end := p.expect(token.RBrace)
	b := &ast.BlockStmt{Statements: stmts}
	b.Span = start.Span.Merge(end.Span)
	return b
}

// parseStatement dispatches on the current token per spec.md §4.3's
// statement grammar, always returning a usable node even on error
// (falling back to a synchronized Missing statement).
func (p *Parser) parseStatement() ast.Statement {
	for p.atAny(token.OpenTag, token.CloseTag) {
		p.bump()
	}
	if p.at(token.OpenTagEcho) {
		return p.parseOpenTagEcho()
	}
	if p.at(token.EndOfInput) {
		s := &ast.ExprStmt{Value: p.missingExpr("empty-statement")}
		s.Span = p.prevSpan()
		return s
	}

	p.collectPendingAttributes()

	switch p.cur().Kind {
	case token.InlineHTML:
		t := p.bump()
		s := &ast.InlineHTMLStmt{Text: t.Data.Str}
		s.Span = t.Span
		return s
	case token.LBrace:
		return p.parseBlock()
	case token.Semicolon:
		t := p.bump()
		s := &ast.ExprStmt{Value: p.missingExpr("empty-statement")}
		s.Span = t.Span
		return s
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwDo:
		return p.parseDoWhileStmt()
	case token.KwFor:
		return p.parseForStmt()
	case token.KwForeach:
		return p.parseForeachStmt()
	case token.KwSwitch:
		return p.parseSwitchStmt()
	case token.KwTry:
		return p.parseTryStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwThrow:
		return p.parseThrowStmt()
	case token.KwBreak:
		return p.parseBreakStmt()
	case token.KwContinue:
		return p.parseContinueStmt()
	case token.KwGoto:
		return p.parseGotoStmt()
	case token.KwEcho:
		return p.parseEchoStmt()
	case token.KwGlobal:
		return p.parseGlobalStmt()
	case token.KwStatic:
		if p.peek(1).Kind == token.Variable {
			return p.parseStaticVarStmt()
		}
	case token.KwDeclare:
		return p.parseDeclareStmt()
	case token.KwUnset:
		return p.parseUnsetStmt()
	case token.KwNamespace:
		return p.parseNamespaceStmt()
	case token.KwUse:
		return p.parseUseStmt()
	case token.KwConst:
		return p.parseConstDecl()
	case token.KwFunction:
		if isNamedFunctionAhead(p) {
			return p.parseFunctionDecl()
		}
	case token.KwAbstract, token.KwFinal, token.KwReadonly:
		return p.parseClassLikeWithModifiers()
	case token.KwClass, token.KwInterface, token.KwTrait, token.KwEnum:
		return p.parseClassLike()
	case token.Identifier:
		if p.peek(1).Kind == token.Colon {
			return p.parseLabelStmt()
		}
	}

	return p.parseExprStmt()
}

// isNamedFunctionAhead disambiguates a top-level `function name(...)`
// declaration from a closure/first-class-callable expression starting
// a statement, per spec.md's `function` prefix disambiguation rule:
// a name (or `&` then a name) must immediately follow.
func isNamedFunctionAhead(p *Parser) bool {
	n := p.peek(1)
	if n.Kind == token.Identifier {
		return true
	}
	if n.Kind == token.Amp && p.peek(2).Kind == token.Identifier {
		return true
	}
	return false
}

func (p *Parser) parseExprStmt() ast.Statement {
	start := p.cur().Span
	val := p.parseBinary(1)
	if !p.eat(token.Semicolon) {
		if !p.atAny(token.CloseTag, token.EndOfInput, token.RBrace) {
			p.diag.Errorf(p.cur().Span, "parse.expected-semicolon", "expected ';', found %s", p.cur().Kind)
			p.synchronizeStatement()
		}
	}
	s := &ast.ExprStmt{Value: val}
	s.Span = start.Merge(p.prevSpan())
	return s
}

func (p *Parser) parseIfStmt() ast.Statement {
	start := p.bump() // if
	p.expect(token.LParen)
	cond := p.parseBinary(1)
	p.expect(token.RParen)
	then := p.parseStatement()

	var elseIfs []*ast.ElseIfClause
	var elseBody ast.Statement
	for p.at(token.KwElseif) || (p.at(token.KwElse) && p.peek(1).Kind == token.KwIf) {
		clauseStart := p.cur().Span
		if p.at(token.KwElseif) {
			p.bump()
		} else {
			p.bump()
			p.bump()
		}
		p.expect(token.LParen)
		c := p.parseBinary(1)
		p.expect(token.RParen)
		b := p.parseStatement()
		clause := &ast.ElseIfClause{Cond: c, Body: b}
		clause.Span = clauseStart.Merge(b.GetSpan())
		elseIfs = append(elseIfs, clause)
	}
	if p.eat(token.KwElse) {
		elseBody = p.parseStatement()
	}

	s := &ast.IfStmt{Cond: cond, Then: then, ElseIfs: elseIfs, Else: elseBody}
	s.Span = start.Span.Merge(p.prevSpan())
	return s
}

func (p *Parser) parseWhileStmt() ast.Statement {
	start := p.bump()
	p.expect(token.LParen)
	cond := p.parseBinary(1)
	p.expect(token.RParen)
	p.enterLoop()
	body := p.parseStatement()
	p.leaveLoop()
	s := &ast.WhileStmt{Cond: cond, Body: body}
	s.Span = start.Span.Merge(body.GetSpan())
	return s
}

func (p *Parser) parseDoWhileStmt() ast.Statement {
	start := p.bump() // do
	p.enterLoop()
	body := p.parseStatement()
	p.leaveLoop()
	p.expect(token.KwWhile)
	p.expect(token.LParen)
	cond := p.parseBinary(1)
	p.expect(token.RParen)
	p.eat(token.Semicolon)
	s := &ast.DoWhileStmt{Body: body, Cond: cond}
	s.Span = start.Span.Merge(p.prevSpan())
	return s
}

func (p *Parser) parseForStmt() ast.Statement {
	start := p.bump() // for
	p.expect(token.LParen)
	init := p.parseExprList(token.Semicolon)
	p.expect(token.Semicolon)
	cond := p.parseExprList(token.Semicolon)
	p.expect(token.Semicolon)
	loop := p.parseExprList(token.RParen)
	p.expect(token.RParen)
	p.enterLoop()
	body := p.parseStatement()
	p.leaveLoop()
	s := &ast.ForStmt{Init: init, Cond: cond, Loop: loop, Body: body}
	s.Span = start.Span.Merge(body.GetSpan())
	return s
}

// parseExprList parses a comma-separated expression list terminated
// (without consuming) by stop.
func (p *Parser) parseExprList(stop token.Kind) []ast.Expression {
	var out []ast.Expression
	if p.at(stop) {
		return out
	}
	out = append(out, p.parseBinary(1))
	for p.eat(token.Comma) {
		out = append(out, p.parseBinary(1))
	}
	return out
}

func (p *Parser) parseForeachStmt() ast.Statement {
	start := p.bump() // foreach
	p.expect(token.LParen)
	expr := p.parseBinary(1)
	p.expect(token.KwAs)
	byRef := p.eat(token.Amp)
	first := p.parseBinary(1)
	var key, value ast.Expression
	if p.eat(token.FatArrow) {
		key = first
		byRef = p.eat(token.Amp)
		value = p.parseBinary(1)
	} else {
		value = first
	}
	p.expect(token.RParen)
	p.enterLoop()
	body := p.parseStatement()
	p.leaveLoop()
	s := &ast.ForeachStmt{Expr: expr, KeyVar: key, ValueVar: value, ByRef: byRef, Body: body}
	s.Span = start.Span.Merge(body.GetSpan())
	return s
}

func (p *Parser) parseSwitchStmt() ast.Statement {
	start := p.bump() // switch
	p.expect(token.LParen)
	subject := p.parseBinary(1)
	p.expect(token.RParen)
	p.expect(token.LBrace)
	p.enterSwitch()
	var cases []*ast.SwitchCase
	for !p.at(token.RBrace) && !p.at(token.EndOfInput) {
		cases = append(cases, p.parseSwitchCase())
	}
	p.leaveSwitch()
	end := p.expect(token.RBrace)
	s := &ast.SwitchStmt{Subject: subject, Cases: cases}
	s.Span = start.Span.Merge(end.Span)
	return s
}

func (p *Parser) parseSwitchCase() *ast.SwitchCase {
	start := p.cur().Span
	var test ast.Expression
	if p.eat(token.KwCase) {
		test = p.parseBinary(1)
	} else {
		p.expect(token.KwDefault)
	}
	if !p.eat(token.Colon) {
		p.eat(token.Semicolon)
	}
	var body []ast.Statement
	for !p.atAny(token.KwCase, token.KwDefault, token.RBrace, token.EndOfInput) {
		body = append(body, p.parseStatement())
	}
	c := &ast.SwitchCase{Test: test, Body: body}
	c.Span = start.Merge(p.prevSpan())
	return c
}

func (p *Parser) parseTryStmt() ast.Statement {
	start := p.bump() // try
	body := p.parseBlock()
	var catches []*ast.CatchClause
	for p.at(token.KwCatch) {
		catches = append(catches, p.parseCatchClause())
	}
	var finally *ast.BlockStmt
	if p.eat(token.KwFinally) {
		finally = p.parseBlock()
	}
	s := &ast.TryStmt{Body: body, Catches: catches, Finally: finally}
	s.Span = start.Span.Merge(p.prevSpan())
	return s
}

func (p *Parser) parseCatchClause() *ast.CatchClause {
	start := p.bump() // catch
	p.expect(token.LParen)
	types := []*ast.Name{p.parseName()}
	for p.eat(token.Pipe) {
		types = append(types, p.parseName())
	}
	varName := ""
	if p.at(token.Variable) {
		varName = p.symbolText(p.bump())
	}
	p.expect(token.RParen)
	body := p.parseBlock()
	c := &ast.CatchClause{Types: types, Var: varName, Body: body}
	c.Span = start.Span.Merge(body.GetSpan())
	return c
}

func (p *Parser) parseReturnStmt() ast.Statement {
	start := p.bump()
	var val ast.Expression
	if !p.atAny(token.Semicolon, token.CloseTag, token.EndOfInput, token.RBrace) {
		val = p.parseBinary(1)
	}
	p.eat(token.Semicolon)
	s := &ast.ReturnStmt{Value: val}
	s.Span = start.Span.Merge(p.prevSpan())
	return s
}

func (p *Parser) parseThrowStmt() ast.Statement {
	start := p.bump()
	val := p.parseBinary(1)
	p.eat(token.Semicolon)
	s := &ast.ThrowStmt{Value: val}
	s.Span = start.Span.Merge(p.prevSpan())
	return s
}

func (p *Parser) parseBreakStmt() ast.Statement {
	start := p.bump()
	if !p.inLoop() && !p.inSwitch() {
		p.diag.Errorf(start.Span, "parse.break-outside-loop", "'break' cannot be used outside a loop or switch")
	}
	var level ast.Expression
	if !p.atAny(token.Semicolon, token.CloseTag, token.EndOfInput, token.RBrace) {
		level = p.parseBinary(1)
	}
	p.eat(token.Semicolon)
	s := &ast.BreakStmt{Level: level}
	s.Span = start.Span.Merge(p.prevSpan())
	return s
}

func (p *Parser) parseContinueStmt() ast.Statement {
	start := p.bump()
	if !p.inLoop() && !p.inSwitch() {
		p.diag.Errorf(start.Span, "parse.continue-outside-loop", "'continue' cannot be used outside a loop or switch")
	}
	var level ast.Expression
	if !p.atAny(token.Semicolon, token.CloseTag, token.EndOfInput, token.RBrace) {
		level = p.parseBinary(1)
	}
	p.eat(token.Semicolon)
	s := &ast.ContinueStmt{Level: level}
	s.Span = start.Span.Merge(p.prevSpan())
	return s
}

func (p *Parser) parseGotoStmt() ast.Statement {
	start := p.bump()
	nameTok := p.expect(token.Identifier)
	p.eat(token.Semicolon)
	s := &ast.GotoStmt{Label: p.symbolText(nameTok)}
	s.Span = start.Span.Merge(p.prevSpan())
	return s
}

func (p *Parser) parseLabelStmt() ast.Statement {
	nameTok := p.bump()
	p.bump() // :
	s := &ast.LabelStmt{Name: p.symbolText(nameTok)}
	s.Span = nameTok.Span.Merge(p.prevSpan())
	return s
}

// parseOpenTagEcho desugars a `<?=` tag into an implicit echo
// statement at parse time, per spec.md's resolution: `<?=` is
// identical to `<?php echo` wherever it appears, not just at the very
// start of a file.
func (p *Parser) parseOpenTagEcho() ast.Statement {
	start := p.bump()
	vals := []ast.Expression{p.parseBinary(1)}
	for p.eat(token.Comma) {
		vals = append(vals, p.parseBinary(1))
	}
	p.eat(token.Semicolon)
	s := &ast.EchoStmt{Values: vals}
	s.Span = start.Span.Merge(p.prevSpan())
	return s
}

func (p *Parser) parseEchoStmt() ast.Statement {
	start := p.bump()
	vals := []ast.Expression{p.parseBinary(1)}
	for p.eat(token.Comma) {
		vals = append(vals, p.parseBinary(1))
	}
	p.eat(token.Semicolon)
	s := &ast.EchoStmt{Values: vals}
	s.Span = start.Span.Merge(p.prevSpan())
	return s
}

func (p *Parser) parseGlobalStmt() ast.Statement {
	start := p.bump()
	vars := []string{p.symbolText(p.expect(token.Variable))}
	for p.eat(token.Comma) {
		vars = append(vars, p.symbolText(p.expect(token.Variable)))
	}
	p.eat(token.Semicolon)
	s := &ast.GlobalStmt{Vars: vars}
	s.Span = start.Span.Merge(p.prevSpan())
	return s
}

func (p *Parser) parseStaticVarStmt() ast.Statement {
	start := p.bump() // static
	var items []*ast.StaticVarItem
	for {
		nameTok := p.expect(token.Variable)
		it := &ast.StaticVarItem{Name: p.symbolText(nameTok)}
		it.Span = nameTok.Span
		if p.eat(token.Assign) {
			it.Default = p.parseBinary(1)
			it.Span = it.Span.Merge(it.Default.GetSpan())
		}
		items = append(items, it)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.eat(token.Semicolon)
	s := &ast.StaticVarStmt{Items: items}
	s.Span = start.Span.Merge(p.prevSpan())
	return s
}

func (p *Parser) parseDeclareStmt() ast.Statement {
	start := p.bump() // declare
	p.expect(token.LParen)
	var directives []*ast.DeclareDirective
	for {
		nameTok := p.expect(token.Identifier)
		p.expect(token.Assign)
		val := p.parseBinary(1)
		d := &ast.DeclareDirective{Name: p.symbolText(nameTok), Value: val}
		d.Span = nameTok.Span.Merge(val.GetSpan())
		directives = append(directives, d)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen)
	var body ast.Statement
	if !p.eat(token.Semicolon) {
		body = p.parseStatement()
	}
	s := &ast.DeclareStmt{Directives: directives, Body: body}
	s.Span = start.Span.Merge(p.prevSpan())
	return s
}

func (p *Parser) parseUnsetStmt() ast.Statement {
	start := p.bump()
	p.expect(token.LParen)
	var vars []ast.Expression
	for !p.at(token.RParen) && !p.at(token.EndOfInput) {
		vars = append(vars, p.parseBinary(1))
		if !p.eat(token.Comma) {
			break
		}
	}
	end := p.expect(token.RParen)
	p.eat(token.Semicolon)
	s := &ast.UnsetStmt{Vars: vars}
	s.Span = start.Span.Merge(end.Span)
	return s
}

func (p *Parser) parseNamespaceStmt() ast.Statement {
	start := p.bump() // namespace
	var name *ast.Name
	if p.at(token.Identifier) {
		name = p.parseName()
	}
	if p.at(token.LBrace) {
		block := p.parseBlock()
		s := &ast.NamespaceStmt{Name: name, Body: block.Statements}
		s.Span = start.Span.Merge(block.GetSpan())
		return s
	}
	p.eat(token.Semicolon)
	s := &ast.NamespaceStmt{Name: name}
	s.Span = start.Span.Merge(p.prevSpan())
	return s
}

func (p *Parser) parseUseStmt() ast.Statement {
	start := p.bump() // use
	ukind := ast.UseClass
	if p.eat(token.KwFunction) {
		ukind = ast.UseFunction
	} else if p.eat(token.KwConst) {
		ukind = ast.UseConst
	}

	first := p.parseNamePossiblyGrouped()
	if p.at(token.Backslash) && p.peek(1).Kind == token.LBrace {
		p.bump() // \
		p.bump() // {
		var items []*ast.UseItem
		for !p.at(token.RBrace) && !p.at(token.EndOfInput) {
			items = append(items, p.parseUseItem(ukind))
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expect(token.RBrace)
		p.eat(token.Semicolon)
		s := &ast.UseStmt{UKind: ukind, GroupPrefix: first, Items: items}
		s.Span = start.Span.Merge(p.prevSpan())
		return s
	}

	items := []*ast.UseItem{p.finishUseItem(first, ukind)}
	for p.eat(token.Comma) {
		items = append(items, p.parseUseItem(ukind))
	}
	p.eat(token.Semicolon)
	s := &ast.UseStmt{UKind: ukind, Items: items}
	s.Span = start.Span.Merge(p.prevSpan())
	return s
}

func (p *Parser) parseUseItem(groupKind ast.UseKind) *ast.UseItem {
	kind := groupKind
	if p.eat(token.KwFunction) {
		kind = ast.UseFunction
	} else if p.eat(token.KwConst) {
		kind = ast.UseConst
	}
	name := p.parseName()
	return p.finishUseItem(name, kind)
}

func (p *Parser) finishUseItem(name *ast.Name, kind ast.UseKind) *ast.UseItem {
	alias := ""
	if p.eat(token.KwAs) {
		alias = p.parseNameSegment()
	}
	it := &ast.UseItem{Name: name, Alias: alias, IKind: kind}
	it.Span = name.Span.Merge(p.prevSpan())
	return it
}

func (p *Parser) parseConstDecl() ast.Statement {
	start := p.bump() // const
	var items []*ast.ConstItem
	for {
		nameTok := p.expect(token.Identifier)
		p.expect(token.Assign)
		val := p.parseBinary(1)
		it := &ast.ConstItem{Name: p.symbolText(nameTok), Value: val}
		it.Span = nameTok.Span.Merge(val.GetSpan())
		items = append(items, it)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.eat(token.Semicolon)
	d := &ast.ConstDecl{Items: items}
	d.Span = start.Span.Merge(p.prevSpan())
	return d
}

func (p *Parser) parseFunctionDecl() ast.Statement {
	p.collectPendingAttributes()
	attrs := p.takeAttributes()
	start := p.bump() // function
	byRef := p.eat(token.Amp)
	nameTok := p.expect(token.Identifier)
	name := &ast.Identifier{Name: p.symbolText(nameTok)}
	name.Span = nameTok.Span
	params := p.parseParams()
	var retType ast.Type
	if p.eat(token.Colon) {
		retType = p.ParseType()
	}
	var body *ast.BlockStmt
	p.withFunctionScope(func() { body = p.parseBlock() })
	d := &ast.FunctionDecl{Name: name, ByRef: byRef, Params: params, ReturnType: retType, Body: body, Attributes: attrs}
	d.Span = start.Span.Merge(body.GetSpan())
	return d
}

// parseClassLikeWithModifiers handles a leading abstract/final/readonly
// modifier run before `class`, which only classes (not interface/
// trait/enum) accept.
func (p *Parser) parseClassLikeWithModifiers() ast.Statement {
	start := p.cur().Span
	var mods ast.ModifierSet
	for p.atAny(token.KwAbstract, token.KwFinal, token.KwReadonly) {
		mods.Items = append(mods.Items, kindToModifier(p.bump().Kind))
	}
	checkModifierConflicts(p, mods, start)
	if !p.at(token.KwClass) {
		p.diag.Errorf(p.cur().Span, "parse.expected-class", "expected 'class' after modifiers, found %s", p.cur().Kind)
		return p.missingStmt("expected-class")
	}
	decl := p.parseClassLikeBody(ast.ClassLikeClass, mods, p.takeAttributes(), start)
	return decl
}

func (p *Parser) parseClassLike() ast.Statement {
	start := p.cur().Span
	var kind ast.ClassLikeKind
	switch p.cur().Kind {
	case token.KwInterface:
		kind = ast.ClassLikeInterface
	case token.KwTrait:
		kind = ast.ClassLikeTrait
	case token.KwEnum:
		kind = ast.ClassLikeEnum
	default:
		kind = ast.ClassLikeClass
	}
	return p.parseClassLikeBody(kind, ast.ModifierSet{}, p.takeAttributes(), start)
}

func (p *Parser) parseClassLikeBody(kind ast.ClassLikeKind, mods ast.ModifierSet, attrs []*ast.AttributeGroup, start source.Span) ast.Statement {
	p.bump() // class/interface/trait/enum

	nameTok := p.expect(token.Identifier)
	name := &ast.Identifier{Name: p.symbolText(nameTok)}
	name.Span = nameTok.Span

	var enumBacking ast.Type
	if kind == ast.ClassLikeEnum && p.eat(token.Colon) {
		enumBacking = p.ParseType()
	}

	var extends []*ast.Name
	if p.eat(token.KwExtends) {
		extends = append(extends, p.parseName())
		for kind == ast.ClassLikeInterface && p.eat(token.Comma) {
			extends = append(extends, p.parseName())
		}
	}
	var implements []*ast.Name
	if p.eat(token.KwImplements) {
		implements = append(implements, p.parseName())
		for p.eat(token.Comma) {
			implements = append(implements, p.parseName())
		}
	}

	members := p.parseClassBody()

	d := &ast.ClassLike{
		CKind: kind, Name: name, Modifiers: mods, Extends: extends,
		Implements: implements, EnumBackingType: enumBacking, Members: members,
		Attributes: attrs,
	}
	d.Span = start.Merge(p.prevSpan())
	return d
}

// parseClassBody parses the brace-delimited member list shared by
// class/interface/trait/enum declarations and anonymous classes.
func (p *Parser) parseClassBody() []ast.Declaration {
	p.expect(token.LBrace)
	var members []ast.Declaration
	for !p.at(token.RBrace) && !p.at(token.EndOfInput) {
		members = append(members, p.parseClassMember())
	}
	p.expect(token.RBrace)
	return members
}

func (p *Parser) parseClassMember() ast.Declaration {
	p.collectPendingAttributes()
	attrs := p.takeAttributes()

	if p.at(token.KwUse) {
		return p.parseTraitUseDecl()
	}
	if p.at(token.KwCase) {
		return p.parseEnumCaseDecl(attrs)
	}

	start := p.cur().Span
	var mods ast.ModifierSet
	for isModifierKeyword(p.cur().Kind) {
		mods.Items = append(mods.Items, kindToModifier(p.bump().Kind))
	}
	checkModifierConflicts(p, mods, start)

	if p.eat(token.KwConst) {
		return p.parseClassConstDecl(mods, attrs, start)
	}
	if p.at(token.KwFunction) {
		return p.parseMethodDecl(mods, attrs, start)
	}
	if p.at(token.KwVar) {
		p.bump()
		return p.parsePropertyDecl(mods, nil, attrs, start)
	}

	var ptype ast.Type
	if p.atTypeStart() {
		ptype = p.ParseType()
	}
	return p.parsePropertyDecl(mods, ptype, attrs, start)
}

func (p *Parser) parseClassConstDecl(mods ast.ModifierSet, attrs []*ast.AttributeGroup, start source.Span) ast.Declaration {
	var ctype ast.Type
	if p.atTypeStart() && !(p.at(token.Identifier) && p.peek(1).Kind == token.Assign) {
		ctype = p.ParseType()
	}
	var items []*ast.ConstItem
	for {
		nameTok := p.parseClassConstName()
		p.expect(token.Assign)
		val := p.parseBinary(1)
		it := &ast.ConstItem{Name: nameTok, Value: val}
		it.Span = val.GetSpan()
		items = append(items, it)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.eat(token.Semicolon)
	d := &ast.ClassConstDecl{Modifiers: mods, CType: ctype, Items: items, Attributes: attrs}
	d.Span = start.Merge(p.prevSpan())
	return d
}

// parseClassConstName accepts an identifier or a nameable keyword,
// since PHP allows most keywords as a constant name.
func (p *Parser) parseClassConstName() string {
	if p.at(token.Identifier) {
		return p.symbolText(p.bump())
	}
	return p.parseNameSegmentLoose()
}

func (p *Parser) parseMethodDecl(mods ast.ModifierSet, attrs []*ast.AttributeGroup, start source.Span) ast.Declaration {
	p.bump() // function
	byRef := p.eat(token.Amp)
	nameTok := p.cur()
	nameStr := p.parseClassConstName()
	name := &ast.Identifier{Name: nameStr}
	name.Span = nameTok.Span
	params := p.parseParams()
	var retType ast.Type
	if p.eat(token.Colon) {
		retType = p.ParseType()
	}
	var body *ast.BlockStmt
	if p.at(token.LBrace) {
		p.withFunctionScope(func() { body = p.parseBlock() })
	} else {
		p.eat(token.Semicolon)
	}
	d := &ast.MethodDecl{Modifiers: mods, Name: name, ByRef: byRef, Params: params, ReturnType: retType, Body: body, Attributes: attrs}
	d.Span = start.Merge(p.prevSpan())
	return d
}

func (p *Parser) parsePropertyDecl(mods ast.ModifierSet, ptype ast.Type, attrs []*ast.AttributeGroup, start source.Span) ast.Declaration {
	var items []*ast.PropertyItem
	for {
		nameTok := p.expect(token.Variable)
		it := &ast.PropertyItem{Name: p.symbolText(nameTok)}
		it.Span = nameTok.Span
		if p.eat(token.Assign) {
			it.Default = p.parseBinary(1)
			it.Span = it.Span.Merge(it.Default.GetSpan())
		}
		items = append(items, it)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.eat(token.Semicolon)
	d := &ast.PropertyDecl{Modifiers: mods, PType: ptype, Items: items, Attributes: attrs}
	d.Span = start.Merge(p.prevSpan())
	return d
}

func (p *Parser) parseEnumCaseDecl(attrs []*ast.AttributeGroup) ast.Declaration {
	start := p.bump() // case
	nameStr := p.parseClassConstName()
	var val ast.Expression
	if p.eat(token.Assign) {
		val = p.parseBinary(1)
	}
	p.eat(token.Semicolon)
	d := &ast.EnumCaseDecl{Name: nameStr, Value: val, Attributes: attrs}
	d.Span = start.Span.Merge(p.prevSpan())
	return d
}

func (p *Parser) parseTraitUseDecl() ast.Declaration {
	start := p.bump() // use
	traits := []*ast.Name{p.parseName()}
	for p.eat(token.Comma) {
		traits = append(traits, p.parseName())
	}
	var adaptations []ast.TraitAdaptation
	if p.eat(token.LBrace) {
		for !p.at(token.RBrace) && !p.at(token.EndOfInput) {
			adaptations = append(adaptations, p.parseTraitAdaptation())
		}
		p.expect(token.RBrace)
	} else {
		p.eat(token.Semicolon)
	}
	d := &ast.TraitUseDecl{Traits: traits, Adaptations: adaptations}
	d.Span = start.Span.Merge(p.prevSpan())
	return d
}

func (p *Parser) parseTraitAdaptation() ast.TraitAdaptation {
	start := p.cur().Span
	var traitName *ast.Name
	method := ""
	if p.atNameStart() && (p.peek(1).Kind == token.DoubleColon) {
		traitName = p.parseName()
		p.bump() // ::
		method = p.parseClassConstName()
	} else {
		method = p.parseClassConstName()
	}

	if p.eat(token.KwInsteadof) {
		var others []*ast.Name
		others = append(others, p.parseName())
		for p.eat(token.Comma) {
			others = append(others, p.parseName())
		}
		p.eat(token.Semicolon)
		t := &ast.TraitPrecedence{Trait: traitName, Method: method, InsteadOf: others}
		t.Span = start.Merge(p.prevSpan())
		return t
	}

	p.expect(token.KwAs)
	a := &ast.TraitAlias{Trait: traitName, Method: method}
	if isModifierKeyword(p.cur().Kind) && (p.cur().Kind == token.KwPublic || p.cur().Kind == token.KwProtected || p.cur().Kind == token.KwPrivate) {
		a.NewModifier = kindToModifier(p.bump().Kind)
		a.HasModifier = true
	}
	if p.at(token.Identifier) || nameableKeywords[p.cur().Kind] {
		a.NewName = p.parseClassConstName()
	}
	p.eat(token.Semicolon)
	a.Span = start.Merge(p.prevSpan())
	return a
}
