// Package lexer implements the context-sensitive PHP scanner: a
// state-machine transforming source bytes into a finite token
// sequence, switching among outside-PHP text, in-PHP scripting, and
// several string-interpolation substates.
package lexer

import (
	"strings"

	"github.com/orizon-lang/phpfront/internal/diagnostic"
	"github.com/orizon-lang/phpfront/internal/interner"
	"github.com/orizon-lang/phpfront/internal/source"
	"github.com/orizon-lang/phpfront/internal/token"
)

// state is one of the lexer's lexical states. States are kept on a
// stack so nested `{$expr}` interpolation can re-enter Scripting and
// return to whichever string state was active before it.
type state int

const (
	stateInitial state = iota
	stateScripting
	stateDoubleQuote
	stateHeredoc
	stateLookingForVarName
	stateLookingForProperty
	stateVarOffset
)

// heredocInfo describes the label and mode of the heredoc/nowdoc
// currently being scanned; only meaningful while the top of the state
// stack is stateHeredoc.
type heredocInfo struct {
	label              string
	isNowdoc           bool
	minIndent          int
	contentStart       int
	terminatorStart    int
	terminatorLabelEnd int
}

// braceFrame tracks, for a Scripting state pushed to lex a `{$...}` or
// `${...}` interpolation fragment, how many un-matched '{' the nested
// scan has seen, so the lexer knows which '}' closes the fragment
// rather than an inner block.
type braceFrame struct {
	depth int
}

// Lexer scans a single immutable source buffer. It owns no state
// beyond a single parse invocation and is not safe for concurrent use.
type Lexer struct {
	src  []byte
	pos  int
	file *source.File
	in   *interner.Interner
	diag diagnostic.Bag

	states   []state
	braces   []braceFrame
	heredocs []heredocInfo
}

// New creates a Lexer over src. name is used only for diagnostics
// carried in the File wrapper; the Lexer itself indexes purely by
// byte offset.
func New(name string, src []byte) *Lexer {
	l := &Lexer{
		src:    src,
		file:   source.NewFile(name, src),
		in:     interner.New(),
		states: []state{stateInitial},
	}

	// Shebang: a "#!...\n" line is allowed only as the very first
	// line of the source and is skipped entirely (never emitted as
	// InlineHTML or a comment).
	if strings.HasPrefix(string(src), "#!") {
		if nl := indexByte(src, '\n'); nl >= 0 {
			l.pos = nl + 1
		} else {
			l.pos = len(src)
		}
	}

	return l
}

// Interner returns the interner the lexer used, so a parser or
// downstream consumer can resolve symbols on tokens.
func (l *Lexer) Interner() *interner.Interner { return l.in }

// Diagnostics returns the diagnostics accumulated during scanning.
func (l *Lexer) Diagnostics() *diagnostic.Bag { return &l.diag }

// File returns the source.File wrapping the scanned buffer.
func (l *Lexer) File() *source.File { return l.file }

func indexByte(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}
	return -1
}

func (l *Lexer) curState() state {
	return l.states[len(l.states)-1]
}

func (l *Lexer) pushState(s state) {
	l.states = append(l.states, s)
}

func (l *Lexer) popState() {
	if len(l.states) > 1 {
		l.states = l.states[:len(l.states)-1]
	}
}

func (l *Lexer) eof() bool { return l.pos >= len(l.src) }

func (l *Lexer) peekByte() byte {
	if l.eof() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekAt(offset int) byte {
	if l.pos+offset >= len(l.src) || l.pos+offset < 0 {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *Lexer) advance() byte {
	b := l.src[l.pos]
	l.pos++
	return b
}

func (l *Lexer) span(start int) source.Span {
	return source.NewSpan(uint32(start), uint32(l.pos))
}

// Tokenize scans the whole buffer and returns the ordered token
// sequence, always terminated by a single EndOfInput token, plus the
// diagnostics accumulated along the way.
func Tokenize(name string, src []byte) ([]token.Token, *interner.Interner, *diagnostic.Bag) {
	l := New(name, src)

	var out []token.Token
	var pendingTrivia []token.Trivia

	for {
		tok, trivia, isTrivia := l.next()
		if isTrivia {
			pendingTrivia = append(pendingTrivia, trivia)
			continue
		}
		if len(pendingTrivia) > 0 {
			tok.Leading = pendingTrivia
			pendingTrivia = nil
		}
		out = append(out, tok)
		if tok.Kind == token.EndOfInput {
			break
		}
	}

	return out, l.in, &l.diag
}

// next produces the next token (isTrivia == false) or a single piece
// of trivia (isTrivia == true) to be attached to whatever real token
// follows it.
func (l *Lexer) next() (tok token.Token, trivia token.Trivia, isTrivia bool) {
	if l.eof() {
		return token.Token{Kind: token.EndOfInput, Span: source.NewSpan(uint32(l.pos), uint32(l.pos))}, token.Trivia{}, false
	}

	switch l.curState() {
	case stateInitial:
		return l.lexInitial()
	case stateScripting:
		return l.lexScripting()
	case stateDoubleQuote:
		return l.lexDoubleQuoteSegment('"')
	case stateHeredoc:
		return l.lexHeredocSegment()
	case stateLookingForVarName:
		return l.lexLookingForVarName()
	case stateLookingForProperty:
		return l.lexLookingForProperty()
	case stateVarOffset:
		return l.lexVarOffset()
	default:
		return l.lexScripting()
	}
}

// lexInitial emits a single InlineHTML token spanning bytes up to the
// next open tag or end-of-input, then switches to Scripting.
func (l *Lexer) lexInitial() (token.Token, token.Trivia, bool) {
	start := l.pos

	for !l.eof() {
		if l.peekByte() == '<' && l.peekAt(1) == '?' {
			break
		}
		l.pos++
	}

	if l.pos > start {
		return token.Token{Kind: token.InlineHTML, Span: l.span(start)}, token.Trivia{}, false
	}

	// We're sitting exactly on "<?..."; recognize the specific tag.
	return l.lexOpenTag()
}

func (l *Lexer) lexOpenTag() (token.Token, token.Trivia, bool) {
	start := l.pos

	if hasCIPrefix(l.src[l.pos:], "<?php") {
		// Require the tag to end at a word boundary (whitespace or
		// EOF); otherwise it's not actually an open tag (e.g. an
		// identifier beginning with "phpx").
		after := l.pos + len("<?php")
		if after >= len(l.src) || isPHPWhitespace(l.src[after]) {
			l.pos = after
			l.pushOrSwitchToScripting()
			return token.Token{Kind: token.OpenTag, Span: l.span(start)}, token.Trivia{}, false
		}
	}

	if hasPrefix(l.src[l.pos:], "<?=") {
		l.pos += len("<?=")
		l.pushOrSwitchToScripting()
		return token.Token{Kind: token.OpenTagEcho, Span: l.span(start)}, token.Trivia{}, false
	}

	// Bare "<?" (short open tag).
	l.pos += len("<?")
	l.pushOrSwitchToScripting()
	return token.Token{Kind: token.OpenTag, Span: l.span(start)}, token.Trivia{}, false
}

func (l *Lexer) pushOrSwitchToScripting() {
	if l.curState() == stateInitial {
		l.states[len(l.states)-1] = stateScripting
	} else {
		l.pushState(stateScripting)
	}
}

func isPHPWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func hasPrefix(b []byte, s string) bool {
	return len(b) >= len(s) && string(b[:len(s)]) == s
}

func hasCIPrefix(b []byte, s string) bool {
	if len(b) < len(s) {
		return false
	}
	return strings.EqualFold(string(b[:len(s)]), s)
}

// lexScripting is the main in-PHP-code dispatch: skip whitespace,
// collect comments as trivia, then recognize identifiers/keywords,
// variables, numbers, strings, and punctuation via maximal munch.
func (l *Lexer) lexScripting() (token.Token, token.Trivia, bool) {
	// Skip whitespace, newlines included; PHP has no significant
	// whitespace in Scripting state.
	for !l.eof() && isPHPWhitespace(l.peekByte()) {
		l.pos++
	}
	if l.eof() {
		return token.Token{Kind: token.EndOfInput, Span: l.span(l.pos)}, token.Trivia{}, false
	}

	start := l.pos
	c := l.peekByte()

	// Close tag.
	if c == '?' && l.peekAt(1) == '>' {
		l.pos += 2
		// A single trailing newline right after "?>" is consumed.
		if l.peekByte() == '\n' {
			l.pos++
		} else if l.peekByte() == '\r' && l.peekAt(1) == '\n' {
			l.pos += 2
		}
		l.states[len(l.states)-1] = stateInitial
		return token.Token{Kind: token.CloseTag, Span: l.span(start)}, token.Trivia{}, false
	}

	// Comments.
	if c == '/' && l.peekAt(1) == '/' {
		return l.lexLineComment(start, "//")
	}
	if c == '#' && l.peekAt(1) != '[' {
		return l.lexLineComment(start, "#")
	}
	if c == '/' && l.peekAt(1) == '*' {
		return l.lexBlockComment(start)
	}

	// Attribute opener.
	if c == '#' && l.peekAt(1) == '[' {
		l.pos += 2
		return token.Token{Kind: token.AttributeStart, Span: l.span(start)}, token.Trivia{}, false
	}

	// Variables.
	if c == '$' && isIdentStart(l.peekAt(1)) {
		l.pos++ // consume '$'
		l.scanIdentTail()
		name := l.src[start+1 : l.pos]
		sym := l.in.Intern(name)
		return token.Token{Kind: token.Variable, Span: l.span(start), Data: token.Data{Sym: sym, Str: string(name)}}, token.Trivia{}, false
	}

	// Identifiers and keywords.
	if isIdentStart(c) {
		l.scanIdentTail()
		text := l.src[start:l.pos]
		sym := l.in.Intern(text)
		lower := l.in.CanonicalKeyword(text)
		if kind, ok := token.LookupKeyword(lower); ok {
			return token.Token{Kind: kind, Span: l.span(start), Data: token.Data{Sym: sym, Str: string(text)}}, token.Trivia{}, false
		}
		return token.Token{Kind: token.Identifier, Span: l.span(start), Data: token.Data{Sym: sym, Str: string(text)}}, token.Trivia{}, false
	}

	// Numbers.
	if isDigit(c) || (c == '.' && isDigit(l.peekAt(1))) {
		return l.lexNumber(start)
	}

	// Strings.
	if c == '\'' {
		return l.lexSingleQuoted(start)
	}
	if c == '"' {
		l.pos++
		l.pushState(stateDoubleQuote)
		return token.Token{Kind: token.DoubleQuote, Span: l.span(start)}, token.Trivia{}, false
	}
	if c == '`' {
		// Shell-exec strings share double-quote-style interpolation;
		// treated as an opaque single-quoted-like literal here since
		// shell execution is outside this module's scope.
		return l.lexBacktick(start)
	}
	if hasPrefix(l.src[l.pos:], "<<<") {
		return l.lexHeredocStart(start)
	}

	// Punctuation and operators, maximal munch.
	return l.lexOperator(start)
}

func (l *Lexer) lexLineComment(start int, marker string) (token.Token, token.Trivia, bool) {
	l.pos += len(marker)
	for !l.eof() && l.peekByte() != '\n' {
		if l.peekByte() == '?' && l.peekAt(1) == '>' {
			break
		}
		l.pos++
	}
	text := string(l.src[start:l.pos])
	return token.Token{}, token.Trivia{Kind: token.CommentLine, Span: l.span(start), Text: text}, true
}

func (l *Lexer) lexBlockComment(start int) (token.Token, token.Trivia, bool) {
	isDoc := hasPrefix(l.src[l.pos:], "/**") && !hasPrefix(l.src[l.pos:], "/**/")
	l.pos += 2
	for !l.eof() {
		if l.peekByte() == '*' && l.peekAt(1) == '/' {
			l.pos += 2
			kind := token.CommentBlock
			if isDoc {
				kind = token.CommentDoc
			}
			return token.Token{}, token.Trivia{Kind: kind, Span: l.span(start), Text: string(l.src[start:l.pos])}, true
		}
		l.pos++
	}
	l.diag.Errorf(l.span(start), "lex.unterminated-comment", "unterminated block comment")
	return token.Token{}, token.Trivia{Kind: token.CommentBlock, Span: l.span(start), Text: string(l.src[start:l.pos])}, true
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func (l *Lexer) scanIdentTail() {
	for !l.eof() && isIdentPart(l.peekByte()) {
		l.pos++
	}
}

// operator table used for maximal-munch matching, longest first.
var operators = []struct {
	text string
	kind token.Kind
}{
	{"<=>", token.Spaceship},
	{"===", token.IdenticalEq},
	{"!==", token.NotIdentical},
	{"**=", token.PowEq},
	{"<<=", token.ShlEq},
	{">>=", token.ShrEq},
	{"??=", token.CoalesceEq},
	{"...", token.Ellipsis},
	{"?->", token.NullsafeArrow},
	{"<>", token.NotEq},
	{"==", token.Eq},
	{"!=", token.NotEq},
	{"<=", token.LtEq},
	{">=", token.GtEq},
	{"&&", token.AndAnd},
	{"||", token.OrOr},
	{"++", token.Inc},
	{"--", token.Dec},
	{"->", token.Arrow},
	{"=>", token.FatArrow},
	{"::", token.DoubleColon},
	{"**", token.Pow},
	{"<<", token.Shl},
	{">>", token.Shr},
	{"??", token.Coalesce},
	{"+=", token.PlusEq},
	{"-=", token.MinusEq},
	{"*=", token.StarEq},
	{"/=", token.SlashEq},
	{"%=", token.PercentEq},
	{".=", token.DotEq},
	{"&=", token.AmpEq},
	{"|=", token.PipeEq},
	{"^=", token.CaretEq},
	{"+", token.Plus},
	{"-", token.Minus},
	{"*", token.Star},
	{"/", token.Slash},
	{"%", token.Percent},
	{"=", token.Assign},
	{"<", token.Lt},
	{">", token.Gt},
	{"!", token.Not},
	{"&", token.Amp},
	{"|", token.Pipe},
	{"^", token.Caret},
	{"~", token.Tilde},
	{".", token.Dot},
	{"?", token.Question},
	{":", token.Colon},
	{";", token.Semicolon},
	{",", token.Comma},
	{"(", token.LParen},
	{")", token.RParen},
	{"{", token.LBrace},
	{"}", token.RBrace},
	{"[", token.LBracket},
	{"]", token.RBracket},
	{"@", token.At},
	{"$", token.Dollar},
	{"\\", token.Backslash},
}

func (l *Lexer) lexOperator(start int) (token.Token, token.Trivia, bool) {
	rest := l.src[l.pos:]
	for _, op := range operators {
		if hasPrefix(rest, op.text) {
			l.pos += len(op.text)
			tok := token.Token{Kind: op.kind, Span: l.span(start)}
			l.handleInterpolationBrace(op.kind)
			return tok, token.Trivia{}, false
		}
	}

	// Unknown byte: diagnose and skip it so scanning can continue.
	l.pos++
	l.diag.Errorf(l.span(start), "lex.unexpected-byte", "unexpected byte 0x%02x", l.src[start])
	return token.Token{Kind: token.Invalid, Span: l.span(start)}, token.Trivia{}, false
}

// pushInterpolationScripting enters Scripting to lex a `{$expr}` or
// `${expr}` fragment embedded in a string, tracking brace depth so the
// matching close brace is recognized even if the expression itself
// contains blocks or array literals.
func (l *Lexer) pushInterpolationScripting() {
	l.pushState(stateScripting)
	l.braces = append(l.braces, braceFrame{})
}

// handleInterpolationBrace keeps the innermost braceFrame's depth in
// sync with '{'/'}' tokens produced while lexing a nested interpolation
// fragment; when a '}' at depth zero is seen, it closes the fragment
// and returns control to the string state beneath it.
func (l *Lexer) handleInterpolationBrace(kind token.Kind) {
	if len(l.braces) == 0 {
		return
	}
	top := len(l.braces) - 1
	switch kind {
	case token.LBrace:
		l.braces[top].depth++
	case token.RBrace:
		if l.braces[top].depth == 0 {
			l.braces = l.braces[:top]
			l.popState()
		} else {
			l.braces[top].depth--
		}
	}
}
