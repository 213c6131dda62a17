package parser

import (
	"strings"

	"github.com/orizon-lang/phpfront/internal/ast"
	"github.com/orizon-lang/phpfront/internal/source"
	"github.com/orizon-lang/phpfront/internal/token"
)

// ParseExpression is the standalone expression-parser entry point
// spec.md §2 treats as independently useful to tooling.
func (p *Parser) ParseExpression() ast.Expression { return p.parseBinary(1) }

// parseBinary implements the Pratt/precedence-climbing loop over
// binaryPrecedence, plus the two operators (assignment, ternary) that
// need special-cased associativity/shape rather than a flat table
// entry.
func (p *Parser) parseBinary(minPrec int) ast.Expression {
	left := p.parseUnary()

	for {
		if assignPrec >= minPrec {
			if opText, ok := assignOps[p.cur().Kind]; ok {
				opTok := p.bump()
				byRef := false
				if opText == "=" {
					byRef = p.eat(token.Amp)
				}
				right := p.parseBinary(assignPrec)
				e := &ast.AssignExpr{Op: opText, Target: left, Value: right, ByRef: byRef}
				e.Span = left.GetSpan().Merge(right.GetSpan())
				_ = opTok
				left = e
				continue
			}
		}

		if ternaryPrec >= minPrec && p.at(token.Question) {
			p.bump()
			var then ast.Expression
			if !p.at(token.Colon) {
				then = p.parseBinary(1)
			}
			p.expect(token.Colon)
			elseExpr := p.parseBinary(ternaryPrec)
			e := &ast.TernaryExpr{Cond: left, Then: then, Else: elseExpr}
			e.Span = left.GetSpan().Merge(elseExpr.GetSpan())
			left = e
			continue
		}

		op, ok := binaryPrecedence[p.cur().Kind]
		if !ok || op.prec < minPrec {
			break
		}
		p.bump()
		nextMin := op.prec + 1
		if op.assoc == assocRight {
			nextMin = op.prec
		}
		right := p.parseBinary(nextMin)

		if op.text == "instanceof" {
			e := &ast.InstanceofExpr{Value: left, Class: unwrapClassRef(right)}
			e.Span = left.GetSpan().Merge(right.GetSpan())
			left = e
			continue
		}
		if op.text == "??" {
			e := &ast.NullCoalesceExpr{Left: left, Right: right}
			e.Span = left.GetSpan().Merge(right.GetSpan())
			left = e
			continue
		}
		e := &ast.BinaryExpr{Op: op.text, Left: left, Right: right}
		e.Span = left.GetSpan().Merge(right.GetSpan())
		left = e
	}

	return left
}

// unwrapClassRef extracts the *ast.Name underneath a bare-name
// ConstFetchExpr so it can serve as the Class field of an instanceof/
// new/static-access node, since parsePrimary always wraps a bare name
// as a constant-fetch expression by default.
func unwrapClassRef(n ast.Node) ast.Node {
	if cf, ok := n.(*ast.ConstFetchExpr); ok {
		return cf.Name
	}
	return n
}

func (p *Parser) parseUnary() ast.Expression {
	if p.at(token.LParen) {
		if castText, ok := p.castAhead(); ok {
			start := p.bump() // (
			p.bump()          // cast keyword identifier
			p.bump()          // )
			operand := p.parseUnary()
			e := &ast.CastExpr{CastType: castText, Value: operand}
			e.Span = start.Span.Merge(operand.GetSpan())
			return e
		}
	}

	switch {
	case p.atAny(token.Not, token.Tilde, token.Plus, token.Minus):
		opTok := p.bump()
		operand := p.parseUnary()
		e := &ast.UnaryExpr{Op: opTok.Kind.String(), Operand: operand}
		e.Span = opTok.Span.Merge(operand.GetSpan())
		return e
	case p.at(token.At):
		opTok := p.bump()
		operand := p.parseUnary()
		e := &ast.ErrorSuppressExpr{Value: operand}
		e.Span = opTok.Span.Merge(operand.GetSpan())
		return e
	case p.atAny(token.Inc, token.Dec):
		opTok := p.bump()
		opText := "++"
		if opTok.Kind == token.Dec {
			opText = "--"
		}
		operand := p.parseUnary()
		e := &ast.UnaryExpr{Op: opText, Operand: operand}
		e.Span = opTok.Span.Merge(operand.GetSpan())
		return e
	case p.at(token.KwClone):
		start := p.bump()
		val := p.parseUnary()
		e := &ast.CloneExpr{Value: val}
		e.Span = start.Span.Merge(val.GetSpan())
		return e
	case p.at(token.KwNew):
		return p.parseNew()
	case p.at(token.KwPrint):
		start := p.bump()
		val := p.parseBinary(assignPrec)
		e := &ast.PrintExpr{Value: val}
		e.Span = start.Span.Merge(val.GetSpan())
		return e
	case p.at(token.KwThrow):
		start := p.bump()
		val := p.parseBinary(1)
		e := &ast.ThrowExpr{Value: val}
		e.Span = start.Span.Merge(val.GetSpan())
		return e
	case p.at(token.KwYield):
		return p.parseYield()
	case p.atAny(token.KwInclude, token.KwIncludeOnce, token.KwRequire, token.KwRequireOnce):
		return p.parseInclude()
	default:
		return p.parsePostfix(p.parsePrimary())
	}
}

// castAhead reports whether the cursor is at a cast expression's
// opening paren, per spec.md's `(Name)` disambiguation rule.
func (p *Parser) castAhead() (string, bool) {
	k := p.peek(1).Kind
	if (k != token.Identifier && k < token.KwAbstract) || p.peek(2).Kind != token.RParen {
		return "", false
	}
	lower := strings.ToLower(p.symbolText(p.peek(1)))
	txt, ok := castKeywordText[lower]
	return txt, ok
}

func (p *Parser) parseYield() ast.Expression {
	start := p.bump() // yield
	if !p.inFunc() {
		p.diag.Errorf(start.Span, "parse.yield-outside-function", "'yield' can only be used inside a function")
	}
	if p.at(token.KwFrom) {
		p.bump()
		val := p.parseBinary(assignPrec)
		e := &ast.YieldFromExpr{Value: val}
		e.Span = start.Span.Merge(val.GetSpan())
		return e
	}
	if p.atAny(token.Semicolon, token.RParen, token.RBracket, token.Comma, token.EndOfInput, token.RBrace) {
		e := &ast.YieldExpr{}
		e.Span = start.Span
		return e
	}
	first := p.parseBinary(assignPrec)
	if p.eat(token.FatArrow) {
		val := p.parseBinary(assignPrec)
		e := &ast.YieldExpr{Key: first, Value: val}
		e.Span = start.Span.Merge(val.GetSpan())
		return e
	}
	e := &ast.YieldExpr{Value: first}
	e.Span = start.Span.Merge(first.GetSpan())
	return e
}

func (p *Parser) parseInclude() ast.Expression {
	var kind ast.IncludeKind
	switch p.cur().Kind {
	case token.KwInclude:
		kind = ast.IncludeInclude
	case token.KwIncludeOnce:
		kind = ast.IncludeIncludeOnce
	case token.KwRequire:
		kind = ast.IncludeRequire
	case token.KwRequireOnce:
		kind = ast.IncludeRequireOnce
	}
	start := p.bump()
	val := p.parseBinary(assignPrec)
	e := &ast.IncludeExpr{IKind: kind, Value: val}
	e.Span = start.Span.Merge(val.GetSpan())
	return e
}

func (p *Parser) parseNew() ast.Expression {
	start := p.bump() // new
	if p.at(token.KwClass) {
		return p.parseAnonClass(start.Span)
	}
	var class ast.Node
	if p.at(token.Variable) {
		class = p.parsePostfix(p.parsePrimary())
	} else if p.at(token.LParen) {
		p.bump()
		inner := p.parseBinary(1)
		p.expect(token.RParen)
		class = inner
	} else {
		class = p.parseName()
	}

	if !p.at(token.LParen) {
		e := &ast.NewExpr{Class: class}
		e.Span = start.Span.Merge(class.GetSpan())
		return e
	}
	args, isFCC := p.parseArgs()
	e := &ast.NewExpr{Class: class, Args: args, IsFirstClassCallable: isFCC}
	e.Span = start.Span.Merge(p.prevSpan())
	return e
}

func (p *Parser) parseAnonClass(start source.Span) ast.Expression {
	p.bump() // class
	var args []*ast.Arg
	if p.at(token.LParen) {
		args, _ = p.parseArgs()
	}
	var extends *ast.Name
	if p.eat(token.KwExtends) {
		extends = p.parseName()
	}
	var implements []*ast.Name
	if p.eat(token.KwImplements) {
		implements = append(implements, p.parseName())
		for p.eat(token.Comma) {
			implements = append(implements, p.parseName())
		}
	}
	members := p.parseClassBody()
	e := &ast.AnonClassExpr{Args: args, Extends: extends, Implements: implements, Members: members}
	e.Span = start.Merge(p.prevSpan())
	return e
}

// parsePostfix applies the postfix operator chain (call, index,
// member access, static access, instanceof already handled in
// parseBinary, and post-increment/decrement) to base.
func (p *Parser) parsePostfix(base ast.Expression) ast.Expression {
	for {
		switch p.cur().Kind {
		case token.LParen:
			args, isFCC := p.parseArgs()
			e := &ast.CallExpr{Callee: base, Args: args, IsFirstClassCallable: isFCC}
			e.Span = base.GetSpan().Merge(p.prevSpan())
			base = e
		case token.LBracket:
			p.bump()
			var offset ast.Expression
			if !p.at(token.RBracket) {
				offset = p.parseBinary(1)
			}
			end := p.expect(token.RBracket)
			e := &ast.IndexExpr{Array: base, Offset: offset}
			e.Span = base.GetSpan().Merge(end.Span)
			base = e
		case token.Arrow, token.NullsafeArrow:
			nullsafe := p.cur().Kind == token.NullsafeArrow
			p.bump()
			member := p.parseMemberName()
			if p.at(token.LParen) {
				args, isFCC := p.parseArgs()
				e := &ast.MethodCallExpr{Object: base, Method: member, Args: args, Nullsafe: nullsafe, IsFirstClassCallable: isFCC}
				e.Span = base.GetSpan().Merge(p.prevSpan())
				base = e
			} else {
				e := &ast.PropertyFetchExpr{Object: base, Property: member, Nullsafe: nullsafe}
				e.Span = base.GetSpan().Merge(member.GetSpan())
				base = e
			}
		case token.DoubleColon:
			p.bump()
			base = p.parseStaticAccess(base)
		case token.Inc, token.Dec:
			opTok := p.bump()
			opText := "++"
			if opTok.Kind == token.Dec {
				opText = "--"
			}
			e := &ast.UnaryExpr{Op: opText, Operand: base, Postfix: true}
			e.Span = base.GetSpan().Merge(opTok.Span)
			base = e
		default:
			return base
		}
	}
}

// parseMemberName parses the right-hand side of `->`/`?->`: a plain
// identifier, a dynamic `$var`, or a braced `{expr}`.
func (p *Parser) parseMemberName() ast.Node {
	switch {
	case p.at(token.Variable):
		t := p.bump()
		v := &ast.Variable{Name: p.symbolText(t)}
		v.Span = t.Span
		return v
	case p.at(token.LBrace):
		p.bump()
		e := p.parseBinary(1)
		p.expect(token.RBrace)
		return e
	default:
		t := p.cur()
		name := p.parseNameSegmentLoose()
		id := &ast.Identifier{Name: name}
		id.Span = t.Span
		return id
	}
}

// parseNameSegmentLoose accepts any identifier-like or keyword token
// as a member name, since PHP allows most keywords as method/property
// names after `->`.
func (p *Parser) parseNameSegmentLoose() string {
	t := p.cur()
	if t.Kind == token.Identifier {
		p.bump()
		return p.symbolText(t)
	}
	if name, ok := token.LookupKeywordName(t.Kind); ok {
		p.bump()
		return name
	}
	p.diag.Errorf(t.Span, "parse.expected-member-name", "expected a member name, found %s", t.Kind)
	return "<error>"
}

func (p *Parser) parseStaticAccess(baseExpr ast.Expression) ast.Expression {
	classNode := unwrapClassRef(baseExpr)
	switch {
	case p.at(token.Variable):
		t := p.bump()
		prop := &ast.Variable{Name: p.symbolText(t)}
		prop.Span = t.Span
		e := &ast.StaticPropertyFetchExpr{Class: classNode, Property: prop}
		e.Span = baseExpr.GetSpan().Merge(prop.Span)
		return e
	case p.at(token.LBrace):
		p.bump()
		prop := p.parseBinary(1)
		end := p.expect(token.RBrace)
		e := &ast.StaticPropertyFetchExpr{Class: classNode, Property: prop}
		e.Span = baseExpr.GetSpan().Merge(end.Span)
		return e
	case p.at(token.KwClass):
		t := p.bump()
		e := &ast.ClassConstFetchExpr{Class: classNode, Name: "class"}
		e.Span = baseExpr.GetSpan().Merge(t.Span)
		return e
	default:
		nameNode := p.parseMemberName()
		if p.at(token.LParen) {
			args, isFCC := p.parseArgs()
			e := &ast.StaticCallExpr{Class: classNode, Method: nameNode, Args: args, IsFirstClassCallable: isFCC}
			e.Span = baseExpr.GetSpan().Merge(p.prevSpan())
			return e
		}
		name := nameNode.String()
		if id, ok := nameNode.(*ast.Identifier); ok {
			name = id.Name
		}
		e := &ast.ClassConstFetchExpr{Class: classNode, Name: name}
		e.Span = baseExpr.GetSpan().Merge(nameNode.GetSpan())
		return e
	}
}

// parseArgs parses a parenthesized call-argument list, or the
// first-class-callable form `(...)`.
func (p *Parser) parseArgs() ([]*ast.Arg, bool) {
	p.expect(token.LParen)
	if p.at(token.Ellipsis) && p.peek(1).Kind == token.RParen {
		p.bump()
		p.bump()
		return nil, true
	}
	var args []*ast.Arg
	for !p.at(token.RParen) && !p.at(token.EndOfInput) {
		args = append(args, p.parseArg())
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen)
	return args, false
}

func (p *Parser) parseArg() *ast.Arg {
	start := p.cur().Span
	name := ""
	if p.at(token.Identifier) && p.peek(1).Kind == token.Colon && p.peek(2).Kind != token.Colon {
		name = p.symbolText(p.bump())
		p.bump()
	}
	spread := p.eat(token.Ellipsis)
	val := p.parseBinary(1)
	a := &ast.Arg{Name: name, Value: val, Spread: spread}
	a.Span = start.Merge(val.GetSpan())
	return a
}

func (p *Parser) parsePrimary() ast.Expression {
	t := p.cur()
	switch t.Kind {
	case token.LNumber:
		p.bump()
		e := &ast.IntLiteral{Raw: p.symbolText(t), IsInt: t.Data.IsInt}
		e.Span = t.Span
		return e
	case token.DNumber:
		p.bump()
		e := &ast.FloatLiteral{Raw: p.symbolText(t)}
		e.Span = t.Span
		return e
	case token.StringLiteral:
		p.bump()
		e := &ast.StringLiteral{Value: t.Data.Str}
		e.Span = t.Span
		return e
	case token.Variable:
		p.bump()
		e := &ast.Variable{Name: p.symbolText(t)}
		e.Span = t.Span
		return e
	case token.DoubleQuote:
		return p.parseInterpolatedString()
	case token.HeredocStart:
		return p.parseHeredoc()
	case token.NowdocLiteral:
		p.bump()
		e := &ast.StringLiteral{Value: t.Data.Str}
		e.Span = t.Span
		return e
	case token.LParen:
		p.bump()
		inner := p.parseBinary(1)
		p.expect(token.RParen)
		return inner
	case token.LBracket:
		return p.parseArrayExpr(false)
	case token.KwArray:
		return p.parseArrayExpr(true)
	case token.KwList:
		return p.parseListExpr()
	case token.KwFunction:
		return p.parseClosure(false)
	case token.KwStatic:
		if p.peek(1).Kind == token.KwFunction {
			p.bump()
			return p.parseClosure(true)
		}
		if p.peek(1).Kind == token.KwFn {
			p.bump()
			return p.parseArrowFn(true)
		}
		p.bump()
		n := &ast.Name{Parts: []string{"static"}, NKind: ast.NameUnqualified}
		n.Span = t.Span
		e := &ast.ConstFetchExpr{Name: n}
		e.Span = t.Span
		return e
	case token.KwFn:
		return p.parseArrowFn(false)
	case token.KwMatch:
		return p.parseMatch()
	case token.KwIsset:
		return p.parseIssetOrEmpty(true)
	case token.KwEmpty:
		return p.parseIssetOrEmpty(false)
	default:
		if p.atNameStart() {
			name := p.parseName()
			e := &ast.ConstFetchExpr{Name: name}
			e.Span = name.Span
			return e
		}
		p.diag.Errorf(t.Span, "parse.expected-expression", "expected an expression, found %s", t.Kind)
		return p.missingExpr("expected-expression")
	}
}

// parseIssetOrEmpty parses `isset(e1, e2, ...)` or `empty(e)`, both of
// which are syntactically call-like pseudo-functions in PHP.
func (p *Parser) parseIssetOrEmpty(isIsset bool) ast.Expression {
	start := p.bump()
	p.expect(token.LParen)
	var args []*ast.Arg
	for !p.at(token.RParen) && !p.at(token.EndOfInput) {
		v := p.parseBinary(1)
		a := &ast.Arg{Value: v}
		a.Span = v.GetSpan()
		args = append(args, a)
		if !p.eat(token.Comma) {
			break
		}
	}
	end := p.expect(token.RParen)
	name := "empty"
	if isIsset {
		name = "isset"
	}
	n := &ast.Name{Parts: []string{name}, NKind: ast.NameUnqualified}
	n.Span = start.Span
	callee := &ast.ConstFetchExpr{Name: n}
	callee.Span = start.Span
	e := &ast.CallExpr{Callee: callee, Args: args}
	e.Span = start.Span.Merge(end.Span)
	return e
}

func (p *Parser) parseArrayExpr(isArrayKw bool) ast.Expression {
	start := p.cur()
	closeKind := token.RBracket
	if isArrayKw {
		p.bump()
		p.expect(token.LParen)
		closeKind = token.RParen
	} else {
		p.bump()
	}
	var items []*ast.ArrayItem
	for !p.at(closeKind) && !p.at(token.EndOfInput) {
		items = append(items, p.parseArrayItem())
		if !p.eat(token.Comma) {
			break
		}
	}
	end := p.expect(closeKind)
	e := &ast.ArrayExpr{Items: items}
	e.Span = start.Span.Merge(end.Span)
	return e
}

func (p *Parser) parseListExpr() ast.Expression {
	start := p.bump() // list
	p.expect(token.LParen)
	var items []*ast.ArrayItem
	for !p.at(token.RParen) && !p.at(token.EndOfInput) {
		if p.at(token.Comma) {
			items = append(items, &ast.ArrayItem{})
			p.bump()
			continue
		}
		items = append(items, p.parseArrayItem())
		if !p.eat(token.Comma) {
			break
		}
	}
	end := p.expect(token.RParen)
	e := &ast.ListExpr{Items: items}
	e.Span = start.Span.Merge(end.Span)
	return e
}

func (p *Parser) parseArrayItem() *ast.ArrayItem {
	start := p.cur().Span
	if p.eat(token.Ellipsis) {
		val := p.parseBinary(1)
		it := &ast.ArrayItem{Value: val, Unpack: true}
		it.Span = start.Merge(val.GetSpan())
		return it
	}
	byRef := p.eat(token.Amp)
	first := p.parseBinary(1)
	if !byRef && p.eat(token.FatArrow) {
		valByRef := p.eat(token.Amp)
		val := p.parseBinary(1)
		it := &ast.ArrayItem{Key: first, Value: val, ByRef: valByRef}
		it.Span = start.Merge(val.GetSpan())
		return it
	}
	it := &ast.ArrayItem{Value: first, ByRef: byRef}
	it.Span = start.Merge(first.GetSpan())
	return it
}

func (p *Parser) parseMatch() ast.Expression {
	start := p.bump() // match
	p.expect(token.LParen)
	subject := p.parseBinary(1)
	p.expect(token.RParen)
	p.expect(token.LBrace)
	var arms []*ast.MatchArm
	for !p.at(token.RBrace) && !p.at(token.EndOfInput) {
		arms = append(arms, p.parseMatchArm())
		if !p.eat(token.Comma) {
			break
		}
	}
	if len(arms) == 0 {
		p.diag.Errorf(start.Span, "parse.empty-match", "match expression must have at least one arm")
	}
	end := p.expect(token.RBrace)
	e := &ast.MatchExpr{Subject: subject, Arms: arms}
	e.Span = start.Span.Merge(end.Span)
	return e
}

func (p *Parser) parseMatchArm() *ast.MatchArm {
	start := p.cur().Span
	var conds []ast.Expression
	if p.eat(token.KwDefault) {
		// conds stays nil
	} else {
		conds = append(conds, p.parseBinary(1))
		for p.eat(token.Comma) && !p.at(token.FatArrow) {
			conds = append(conds, p.parseBinary(1))
		}
	}
	p.expect(token.FatArrow)
	result := p.parseBinary(1)
	a := &ast.MatchArm{Conditions: conds, Result: result}
	a.Span = start.Merge(result.GetSpan())
	return a
}

func (p *Parser) parseParams() []*ast.Param {
	p.expect(token.LParen)
	var params []*ast.Param
	for !p.at(token.RParen) && !p.at(token.EndOfInput) {
		params = append(params, p.parseParam())
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen)
	return params
}

func (p *Parser) parseParam() *ast.Param {
	start := p.cur().Span
	p.collectPendingAttributes()
	attrs := p.takeAttributes()

	var mods ast.ModifierSet
	for isModifierKeyword(p.cur().Kind) {
		mods.Items = append(mods.Items, kindToModifier(p.bump().Kind))
	}
	checkModifierConflicts(p, mods, start)

	var ptype ast.Type
	if p.atTypeStart() {
		ptype = p.ParseType()
	}
	byRef := p.eat(token.Amp)
	variadic := p.eat(token.Ellipsis)
	nameTok := p.expect(token.Variable)
	name := p.symbolText(nameTok)
	var def ast.Expression
	if p.eat(token.Assign) {
		def = p.parseBinary(1)
	}
	param := &ast.Param{Name: name, PType: ptype, Default: def, ByRef: byRef, Variadic: variadic, PromotedMods: mods, Attributes: attrs}
	param.Span = start.Merge(p.prevSpan())
	return param
}

func (p *Parser) parseClosureUses() []*ast.ClosureUse {
	if !p.eat(token.KwUse) {
		return nil
	}
	p.expect(token.LParen)
	var uses []*ast.ClosureUse
	for !p.at(token.RParen) && !p.at(token.EndOfInput) {
		byRef := p.eat(token.Amp)
		nameTok := p.expect(token.Variable)
		u := &ast.ClosureUse{Name: p.symbolText(nameTok), ByRef: byRef}
		u.Span = nameTok.Span
		uses = append(uses, u)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen)
	return uses
}

func (p *Parser) parseClosure(static bool) ast.Expression {
	start := p.cur().Span
	p.bump() // function
	byRef := p.eat(token.Amp)
	params := p.parseParams()
	uses := p.parseClosureUses()
	var retType ast.Type
	if p.eat(token.Colon) {
		retType = p.ParseType()
	}
	var body *ast.BlockStmt
	p.withFunctionScope(func() { body = p.parseBlock() })
	e := &ast.ClosureExpr{Static: static, ByRef: byRef, Params: params, Uses: uses, ReturnType: retType, Body: body}
	e.Span = start.Merge(body.GetSpan())
	return e
}

func (p *Parser) parseArrowFn(static bool) ast.Expression {
	start := p.cur().Span
	p.bump() // fn
	byRef := p.eat(token.Amp)
	params := p.parseParams()
	var retType ast.Type
	if p.eat(token.Colon) {
		retType = p.ParseType()
	}
	p.expect(token.FatArrow)
	var body ast.Expression
	p.withFunctionScope(func() { body = p.parseBinary(1) })
	e := &ast.ArrowFnExpr{Static: static, ByRef: byRef, Params: params, ReturnType: retType, Body: body}
	e.Span = start.Merge(body.GetSpan())
	return e
}

// parseInterpolatedString consumes a `"..."` sequence already tagged
// by the lexer as literal chunks and embedded variable/expression
// tokens, collapsing to a plain StringLiteral when it holds exactly
// one literal chunk.
func (p *Parser) parseInterpolatedString() ast.Expression {
	start := p.bump() // opening "
	var parts []ast.Expression
	for !p.at(token.DoubleQuote) && !p.at(token.EndOfInput) {
		parts = append(parts, p.parseStringPart())
	}
	end := p.expect(token.DoubleQuote)

	if len(parts) == 1 {
		if lit, ok := parts[0].(*ast.StringLiteral); ok {
			lit.Span = start.Span.Merge(end.Span)
			return lit
		}
	}
	if len(parts) == 0 {
		e := &ast.StringLiteral{Value: ""}
		e.Span = start.Span.Merge(end.Span)
		return e
	}
	e := &ast.InterpolatedString{Parts: parts}
	e.Span = start.Span.Merge(end.Span)
	return e
}

func (p *Parser) parseHeredoc() ast.Expression {
	start := p.bump() // HeredocStart
	var parts []ast.Expression
	for !p.at(token.HeredocEnd) && !p.at(token.EndOfInput) {
		parts = append(parts, p.parseStringPart())
	}
	end := p.expect(token.HeredocEnd)

	if len(parts) == 1 {
		if lit, ok := parts[0].(*ast.StringLiteral); ok {
			lit.Span = start.Span.Merge(end.Span)
			return lit
		}
	}
	if len(parts) == 0 {
		e := &ast.StringLiteral{Value: ""}
		e.Span = start.Span.Merge(end.Span)
		return e
	}
	e := &ast.InterpolatedString{Parts: parts}
	e.Span = start.Span.Merge(end.Span)
	return e
}

// parseStringPart parses one piece of an interpolated string or
// heredoc body: a literal chunk, a simple `$var`/`$var->prop`/
// `$var[offset]` form, or a full `{$expr}`/`${name}` substate.
func (p *Parser) parseStringPart() ast.Expression {
	t := p.cur()
	switch t.Kind {
	case token.EncapsedAndWhitespace:
		p.bump()
		e := &ast.StringLiteral{Value: t.Data.Str}
		e.Span = t.Span
		return e
	case token.Variable:
		p.bump()
		v := &ast.Variable{Name: p.symbolText(t)}
		v.Span = t.Span
		var result ast.Expression = v
		switch {
		case p.at(token.Arrow):
			p.bump()
			propTok := p.expect(token.Identifier)
			id := &ast.Identifier{Name: p.symbolText(propTok)}
			id.Span = propTok.Span
			e := &ast.PropertyFetchExpr{Object: v, Property: id}
			e.Span = v.Span.Merge(id.Span)
			result = e
		case p.at(token.LBracket):
			p.bump()
			offset := p.parseSimpleInterpOffset()
			end := p.expect(token.RBracket)
			e := &ast.IndexExpr{Array: v, Offset: offset}
			e.Span = v.Span.Merge(end.Span)
			result = e
		}
		return result
	case token.CurlyOpen, token.DollarOpenCurlyBraces:
		p.bump()
		var expr ast.Expression
		if t.Kind == token.DollarOpenCurlyBraces && p.at(token.StringVarname) {
			nt := p.bump()
			v := &ast.Variable{Name: p.symbolText(nt)}
			v.Span = nt.Span
			expr = v
		} else {
			expr = p.parseBinary(1)
		}
		p.expect(token.RBrace)
		return expr
	default:
		p.bump()
		return p.missingExpr("unexpected-string-part")
	}
}

// parseSimpleInterpOffset parses the offset inside `$a[offset]` simple
// interpolation, which the lexer tags as a bare NumString/Identifier/
// Variable rather than a full sub-expression.
func (p *Parser) parseSimpleInterpOffset() ast.Expression {
	t := p.cur()
	switch t.Kind {
	case token.NumString:
		p.bump()
		e := &ast.IntLiteral{Raw: t.Data.Str, IsInt: true}
		e.Span = t.Span
		return e
	case token.Variable:
		p.bump()
		e := &ast.Variable{Name: p.symbolText(t)}
		e.Span = t.Span
		return e
	default:
		p.bump()
		id := &ast.StringLiteral{Value: p.symbolText(t)}
		id.Span = t.Span
		return id
	}
}
