// Package parser implements the PHP recursive-descent parser: cursor
// state, a Pratt expression parser, statement/declaration parsers, a
// type parser, and diagnostic-driven error recovery that always
// returns a usable partial AST.
package parser

import (
	"github.com/orizon-lang/phpfront/internal/ast"
	"github.com/orizon-lang/phpfront/internal/diagnostic"
	"github.com/orizon-lang/phpfront/internal/interner"
	"github.com/orizon-lang/phpfront/internal/source"
	"github.com/orizon-lang/phpfront/internal/token"
)

// Parser holds all cursor and recovery state for one parse. Two
// parsers never share state, so concurrent parses on separate buffers
// need no synchronization.
type Parser struct {
	toks []token.Token
	pos  int

	file *source.File
	in   *interner.Interner
	diag *diagnostic.Bag

	pendingAttrs []*ast.AttributeGroup

	// loopDepth, switchDepth, and funcDepth track how many enclosing
	// loop/switch/function bodies the cursor currently sits inside, so
	// break/continue/yield can be diagnosed as out-of-context without
	// threading that state through every parse method's signature.
	loopDepth   int
	switchDepth int
	funcDepth   int
}

// enterLoop/leaveLoop bracket the body of a while/do-while/for/foreach
// statement; break and continue are valid while loopDepth > 0.
func (p *Parser) enterLoop()   { p.loopDepth++ }
func (p *Parser) leaveLoop()   { p.loopDepth-- }
func (p *Parser) inLoop() bool { return p.loopDepth > 0 }

// enterSwitch/leaveSwitch bracket a switch statement's body; break
// (but not continue's usual target) is also valid while switchDepth >
// 0, matching PHP's own break/continue semantics inside switch.
func (p *Parser) enterSwitch()   { p.switchDepth++ }
func (p *Parser) leaveSwitch()   { p.switchDepth-- }
func (p *Parser) inSwitch() bool { return p.switchDepth > 0 }

// enterFunc/leaveFunc bracket a function/method/closure/arrow-function
// body; yield is only valid while funcDepth > 0.
func (p *Parser) enterFunc()   { p.funcDepth++ }
func (p *Parser) leaveFunc()   { p.funcDepth-- }
func (p *Parser) inFunc() bool { return p.funcDepth > 0 }

// withFunctionScope runs fn with funcDepth incremented and loop/switch
// depth reset to zero for its duration: break, continue, and yield
// never reach across a function boundary, even when the function
// itself is declared lexically inside a loop or switch.
func (p *Parser) withFunctionScope(fn func()) {
	savedLoop, savedSwitch := p.loopDepth, p.switchDepth
	p.loopDepth, p.switchDepth = 0, 0
	p.enterFunc()
	fn()
	p.leaveFunc()
	p.loopDepth, p.switchDepth = savedLoop, savedSwitch
}

// New builds a parser over an already-lexed token stream.
func New(toks []token.Token, file *source.File, in *interner.Interner, diag *diagnostic.Bag) *Parser {
	return &Parser{toks: toks, file: file, in: in, diag: diag}
}

// cur returns the token at the cursor, clamped to the final
// EndOfInput token once the stream is exhausted.
func (p *Parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos]
}

// peek returns the token n positions ahead of the cursor (peek(0) ==
// cur()), clamped to EndOfInput past the end of the stream.
func (p *Parser) peek(n int) token.Token {
	idx := p.pos + n
	if idx >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	if idx < 0 {
		idx = 0
	}
	return p.toks[idx]
}

// bump consumes and returns the current token, advancing the cursor
// unless already at end of input.
func (p *Parser) bump() token.Token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// at reports whether the current token has kind k.
func (p *Parser) at(k token.Kind) bool { return p.cur().Kind == k }

// atAny reports whether the current token matches any of ks.
func (p *Parser) atAny(ks ...token.Kind) bool {
	c := p.cur().Kind
	for _, k := range ks {
		if c == k {
			return true
		}
	}
	return false
}

// eat consumes the current token and returns true iff it has kind k;
// otherwise the cursor does not advance.
func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.bump()
		return true
	}
	return false
}

// expect consumes the current token if it matches k; otherwise it
// records a diagnostic and returns a synthetic zero-length token at
// the current position without advancing the cursor, letting the
// caller keep parsing from the same point.
func (p *Parser) expect(k token.Kind) token.Token {
	if p.at(k) {
		return p.bump()
	}
	pos := p.cur().Span.Start
	p.diag.Errorf(source.NewSpan(pos, pos), "parse.expected-token",
		"expected %s, found %s", k, p.cur().Kind)
	return token.Token{Kind: k, Span: source.NewSpan(pos, pos)}
}

// zeroSpanHere returns a zero-length span at the current cursor
// position, used to anchor diagnostics and Missing placeholders.
func (p *Parser) zeroSpanHere() source.Span {
	pos := p.cur().Span.Start
	return source.NewSpan(pos, pos)
}

// statementSyncSet is the token-kind set the statement-level recovery
// skips forward to, per spec.md §4.3: a semicolon, a closing brace,
// end of input, or a top-level keyword that plausibly starts a fresh
// statement.
var statementSyncSet = map[token.Kind]bool{
	token.Semicolon:    true,
	token.RBrace:       true,
	token.CloseTag:     true,
	token.EndOfInput:   true,
	token.KwFunction:   true,
	token.KwClass:      true,
	token.KwInterface:  true,
	token.KwTrait:      true,
	token.KwEnum:       true,
	token.KwUse:        true,
	token.KwNamespace:  true,
}

// synchronizeStatement skips tokens until one in statementSyncSet is
// reached, consuming a trailing semicolon if present so the next
// parseStatement call starts clean.
func (p *Parser) synchronizeStatement() {
	for !statementSyncSet[p.cur().Kind] {
		p.bump()
	}
	p.eat(token.Semicolon)
}

// missingExpr builds a Missing placeholder used where an expression
// could not be parsed, recording reason for debugging.
func (p *Parser) missingExpr(reason string) ast.Expression {
	m := &ast.Missing{Reason: reason}
	m.Span = p.zeroSpanHere()
	return m
}

// missingStmt builds a Missing placeholder used in statement position.
func (p *Parser) missingStmt(reason string) ast.Statement {
	m := &ast.Missing{Reason: reason}
	m.Span = p.zeroSpanHere()
	return m
}

// symbolText resolves an interned token's textual value. A token with
// neither text nor a symbol (such as the synthetic token expect returns
// for a missing token) resolves to "". Any other t is a token this
// parser bumped off its own token stream, so its Sym is guaranteed to
// resolve against p.in; MustResolve turns a violation of that into a
// reported programmer error instead of silently returning "".
func (p *Parser) symbolText(t token.Token) string {
	if t.Data.Str != "" {
		return t.Data.Str
	}
	if t.Data.Sym == 0 {
		return ""
	}
	return p.in.MustResolve(t.Data.Sym)
}
