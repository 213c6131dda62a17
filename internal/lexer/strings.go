package lexer

import (
	"strings"

	"github.com/orizon-lang/phpfront/internal/source"
	"github.com/orizon-lang/phpfront/internal/token"
)

// lexSingleQuoted scans a '...' literal, where only \\ and \' are
// recognized escapes; every other backslash is kept literal.
func (l *Lexer) lexSingleQuoted(start int) (token.Token, token.Trivia, bool) {
	l.pos++ // opening '

	var decoded strings.Builder
	for {
		if l.eof() {
			l.diag.Errorf(l.span(start), "lex.unterminated-string", "unterminated single-quoted string")
			break
		}
		c := l.advance()
		if c == '\'' {
			break
		}
		if c == '\\' && (l.peekByte() == '\\' || l.peekByte() == '\'') {
			decoded.WriteByte(l.advance())
			continue
		}
		decoded.WriteByte(c)
	}

	return token.Token{Kind: token.StringLiteral, Span: l.span(start), Data: token.Data{Str: decoded.String()}}, token.Trivia{}, false
}

// lexBacktick scans a shell-exec string as an opaque literal; shell
// execution has no meaning inside this module so interpolation
// content is preserved verbatim rather than decomposed into tokens.
func (l *Lexer) lexBacktick(start int) (token.Token, token.Trivia, bool) {
	l.pos++ // opening `
	for !l.eof() && l.peekByte() != '`' {
		if l.peekByte() == '\\' {
			l.pos++
			if !l.eof() {
				l.pos++
			}
			continue
		}
		l.pos++
	}
	if l.eof() {
		l.diag.Errorf(l.span(start), "lex.unterminated-string", "unterminated shell-exec string")
	} else {
		l.pos++ // closing `
	}
	return token.Token{Kind: token.Backtick, Span: l.span(start), Data: token.Data{Str: string(l.src[start:l.pos])}}, token.Trivia{}, false
}

// triggerKind identifies what stopped a literal-chunk scan inside an
// interpolated string or heredoc.
type triggerKind int

const (
	triggerNone triggerKind = iota
	triggerEnd              // closing delimiter (quote or heredoc terminator line)
	triggerVar              // "$name"
	triggerCurly            // "{$"
	triggerDollarCurly      // "${"
)

// scanEncapsedChunk consumes literal bytes (decoding backslash escapes
// the same way double-quoted strings do) until it reaches end
// (exclusive upper bound) or one of the interpolation triggers, and
// reports which. It never consumes the trigger's bytes.
func (l *Lexer) scanEncapsedChunk(end int, isEndQuote func() bool) (string, triggerKind) {
	var decoded strings.Builder

	for {
		if l.pos >= end || l.eof() {
			return decoded.String(), triggerEnd
		}
		if isEndQuote != nil && isEndQuote() {
			return decoded.String(), triggerEnd
		}

		c := l.peekByte()

		if c == '$' && isIdentStart(l.peekAt(1)) {
			return decoded.String(), triggerVar
		}
		if c == '$' && l.peekAt(1) == '{' {
			return decoded.String(), triggerDollarCurly
		}
		if c == '{' && l.peekAt(1) == '$' {
			return decoded.String(), triggerCurly
		}

		if c == '\\' {
			l.pos++
			decoded.Write(l.decodeEscape())
			continue
		}

		decoded.WriteByte(c)
		l.pos++
	}
}

// decodeEscape decodes one backslash escape sequence, assuming the
// leading backslash has already been consumed. It is shared by
// double-quoted and interpolating-heredoc scanning, which use the
// same escape set.
func (l *Lexer) decodeEscape() []byte {
	if l.eof() {
		return []byte{'\\'}
	}
	c := l.peekByte()
	switch c {
	case 'n':
		l.pos++
		return []byte{'\n'}
	case 'r':
		l.pos++
		return []byte{'\r'}
	case 't':
		l.pos++
		return []byte{'\t'}
	case 'v':
		l.pos++
		return []byte{'\v'}
	case 'e':
		l.pos++
		return []byte{0x1b}
	case 'f':
		l.pos++
		return []byte{'\f'}
	case '\\', '$', '"':
		l.pos++
		return []byte{c}
	case 'x':
		save := l.pos
		l.pos++
		start := l.pos
		for l.pos < start+2 && isHexDigit(l.peekByte()) {
			l.pos++
		}
		if l.pos == start {
			l.pos = save
			l.diag.Warnf(l.span(save), "lex.bad-escape", `\x must be followed by at least one hex digit`)
			return []byte{'\\'}
		}
		v := parseHex(l.src[start:l.pos])
		return []byte{byte(v)}
	case 'u':
		if l.peekAt(1) == '{' {
			save := l.pos
			l.pos += 2
			start := l.pos
			for isHexDigit(l.peekByte()) {
				l.pos++
			}
			if l.peekByte() == '}' && l.pos > start {
				v := parseHex(l.src[start:l.pos])
				l.pos++ // '}'
				return []byte(string(rune(v)))
			}
			l.pos = save
			l.diag.Warnf(l.span(save), "lex.bad-escape", `\u{...} must contain at least one hex digit and a closing brace`)
		}
		return []byte{'\\'}
	default:
		if c >= '0' && c <= '7' {
			start := l.pos
			for l.pos < start+3 && l.peekByte() >= '0' && l.peekByte() <= '7' {
				l.pos++
			}
			v := parseOctal(l.src[start:l.pos])
			return []byte{byte(v)}
		}
		l.diag.Warnf(l.span(l.pos), "lex.bad-escape", "unrecognized escape sequence '\\%c'", c)
		return []byte{'\\'}
	}
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func parseHex(b []byte) int {
	v := 0
	for _, c := range b {
		v *= 16
		switch {
		case c >= '0' && c <= '9':
			v += int(c - '0')
		case c >= 'a' && c <= 'f':
			v += int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v += int(c-'A') + 10
		}
	}
	return v
}

func parseOctal(b []byte) int {
	v := 0
	for _, c := range b {
		v = v*8 + int(c-'0')
	}
	return v
}

// lexDoubleQuoteSegment produces the next token of a double-quoted
// string: the closing quote, a literal chunk, or the start of an
// embedded variable/expression.
func (l *Lexer) lexDoubleQuoteSegment(quote byte) (token.Token, token.Trivia, bool) {
	start := l.pos
	isEnd := func() bool { return l.peekByte() == quote }

	chunk, trig := l.scanEncapsedChunk(len(l.src), isEnd)
	if len(chunk) > 0 {
		return token.Token{Kind: token.EncapsedAndWhitespace, Span: l.span(start), Data: token.Data{Str: chunk}}, token.Trivia{}, false
	}

	switch trig {
	case triggerEnd:
		if l.eof() {
			l.diag.Errorf(l.span(start), "lex.unterminated-string", "unterminated double-quoted string")
			l.popState()
			return token.Token{Kind: token.EndOfInput, Span: l.span(l.pos)}, token.Trivia{}, false
		}
		l.pos++ // closing quote
		l.popState()
		return token.Token{Kind: token.DoubleQuote, Span: l.span(start)}, token.Trivia{}, false
	default:
		return l.lexInterpolationTrigger(start, trig)
	}
}

// lexHeredocSegment mirrors lexDoubleQuoteSegment but terminates on
// the heredoc's closing label line instead of a quote character, and
// strips the precomputed common indentation from the start of every
// physical line as it scans.
func (l *Lexer) lexHeredocSegment() (token.Token, token.Trivia, bool) {
	info := &l.heredocs[len(l.heredocs)-1]
	start := l.pos

	if l.pos >= info.terminatorStart {
		s := source.NewSpan(uint32(info.terminatorStart), uint32(info.terminatorLabelEnd))
		l.pos = info.terminatorLabelEnd
		l.heredocs = l.heredocs[:len(l.heredocs)-1]
		l.popState()
		return token.Token{Kind: token.HeredocEnd, Span: s, Data: token.Data{Str: info.label}}, token.Trivia{}, false
	}

	isEnd := func() bool { return l.pos >= info.terminatorStart }

	// Strip leading indentation once per physical line: if we're
	// sitting right after a newline (or at the very start of the
	// heredoc body), skip up to info.minIndent bytes of horizontal
	// whitespace before scanning content.
	if l.atLineStartOfHeredoc(info) {
		skipped := 0
		for skipped < info.minIndent && (l.peekByte() == ' ' || l.peekByte() == '\t') {
			l.pos++
			skipped++
		}
	}

	chunk, trig := l.scanHeredocChunk(info, isEnd)
	if len(chunk) > 0 {
		return token.Token{Kind: token.EncapsedAndWhitespace, Span: l.span(start), Data: token.Data{Str: chunk}}, token.Trivia{}, false
	}

	if trig == triggerEnd {
		// Loop back into the terminator branch above on the next call.
		return l.lexHeredocSegment()
	}
	return l.lexInterpolationTrigger(start, trig)
}

func (l *Lexer) atLineStartOfHeredoc(info *heredocInfo) bool {
	return l.pos == info.contentStart || (l.pos > 0 && l.src[l.pos-1] == '\n')
}

// scanHeredocChunk is scanEncapsedChunk specialized to also stop (and
// re-strip indentation) at each newline, so multi-line chunks get
// their per-line indentation removed rather than only the first line.
func (l *Lexer) scanHeredocChunk(info *heredocInfo, isEnd func() bool) (string, triggerKind) {
	var decoded strings.Builder

	for {
		if isEnd() {
			return decoded.String(), triggerEnd
		}
		c := l.peekByte()

		if c == '\n' {
			l.pos++
			if isEnd() {
				// The newline immediately preceding the closing label is
				// not part of the body, mirroring trimFinalNewline's
				// treatment of the nowdoc path.
				return decoded.String(), triggerEnd
			}
			decoded.WriteByte(c)
			skipped := 0
			for skipped < info.minIndent && (l.peekByte() == ' ' || l.peekByte() == '\t') {
				l.pos++
				skipped++
			}
			continue
		}

		if c == '$' && isIdentStart(l.peekAt(1)) {
			return decoded.String(), triggerVar
		}
		if c == '$' && l.peekAt(1) == '{' {
			return decoded.String(), triggerDollarCurly
		}
		if c == '{' && l.peekAt(1) == '$' {
			return decoded.String(), triggerCurly
		}

		if c == '\\' {
			l.pos++
			decoded.Write(l.decodeEscape())
			continue
		}

		decoded.WriteByte(c)
		l.pos++
	}
}

// lexInterpolationTrigger consumes and emits the token that begins an
// embedded variable or expression fragment, per spec.md §4.2's
// description of the DoubleQuote/Heredoc substates.
func (l *Lexer) lexInterpolationTrigger(start int, trig triggerKind) (token.Token, token.Trivia, bool) {
	switch trig {
	case triggerVar:
		l.pos++ // '$'
		l.scanIdentTail()
		name := l.src[start+1 : l.pos]
		sym := l.in.Intern(name)
		tok := token.Token{Kind: token.Variable, Span: l.span(start), Data: token.Data{Sym: sym, Str: string(name)}}

		// Simple property/offset forms extend the interpolation by
		// one more construct without a full expression: "$a->b" or
		// "$a[expr]".
		if l.peekByte() == '-' && l.peekAt(1) == '>' && isIdentStart(l.peekAt(2)) {
			l.pushState(stateLookingForProperty)
		} else if l.peekByte() == '[' {
			l.pushState(stateVarOffset)
		}
		return tok, token.Trivia{}, false

	case triggerDollarCurly:
		l.pos += 2 // "${"
		tok := token.Token{Kind: token.DollarOpenCurlyBraces, Span: l.span(start)}
		l.pushState(stateLookingForVarName)
		return tok, token.Trivia{}, false

	case triggerCurly:
		l.pos++ // '{'
		tok := token.Token{Kind: token.CurlyOpen, Span: l.span(start)}
		l.pushInterpolationScripting()
		return tok, token.Trivia{}, false

	default:
		// Unreachable in practice; treat as end-of-input to avoid
		// looping forever on an unrecognized trigger.
		return token.Token{Kind: token.EndOfInput, Span: l.span(l.pos)}, token.Trivia{}, false
	}
}

// lexLookingForVarName handles the content of "${...}": a bare
// identifier collapses to StringVarname followed by the closing '}';
// anything else is treated as a full nested expression.
func (l *Lexer) lexLookingForVarName() (token.Token, token.Trivia, bool) {
	start := l.pos
	if isIdentStart(l.peekByte()) && l.aheadIsSimpleVarName() {
		l.scanIdentTail()
		name := l.src[start:l.pos]
		sym := l.in.Intern(name)
		l.popState()
		l.pushInterpolationScripting()
		return token.Token{Kind: token.StringVarname, Span: l.span(start), Data: token.Data{Sym: sym, Str: string(name)}}, token.Trivia{}, false
	}

	// Fall back to a general nested expression.
	l.popState()
	l.pushInterpolationScripting()
	return l.next()
}

// aheadIsSimpleVarName reports whether the identifier starting at the
// current position is immediately followed by '}', i.e. the common
// "${name}" case rather than an arbitrary expression.
func (l *Lexer) aheadIsSimpleVarName() bool {
	i := l.pos
	for i < len(l.src) && isIdentPart(l.src[i]) {
		i++
	}
	return i < len(l.src) && l.src[i] == '}'
}

// lexLookingForProperty handles the two-token "->b" suffix of a simple
// interpolated property fetch: the arrow, then the property name.
func (l *Lexer) lexLookingForProperty() (token.Token, token.Trivia, bool) {
	start := l.pos
	if l.peekByte() == '-' && l.peekAt(1) == '>' {
		l.pos += 2
		return token.Token{Kind: token.Arrow, Span: l.span(start)}, token.Trivia{}, false
	}
	l.scanIdentTail()
	name := l.src[start:l.pos]
	sym := l.in.Intern(name)
	l.popState()
	return token.Token{Kind: token.Identifier, Span: l.span(start), Data: token.Data{Sym: sym, Str: string(name)}}, token.Trivia{}, false
}

// lexVarOffset handles the three-token "[...]" suffix of a simple
// interpolated array offset: '[', the offset (numeric, identifier, or
// variable), and ']'.
func (l *Lexer) lexVarOffset() (token.Token, token.Trivia, bool) {
	start := l.pos

	if l.peekByte() == '[' {
		l.pos++
		return token.Token{Kind: token.LBracket, Span: l.span(start)}, token.Trivia{}, false
	}
	if l.peekByte() == ']' {
		l.pos++
		l.popState()
		return token.Token{Kind: token.RBracket, Span: l.span(start)}, token.Trivia{}, false
	}
	if l.peekByte() == '$' && isIdentStart(l.peekAt(1)) {
		l.pos++
		l.scanIdentTail()
		name := l.src[start+1 : l.pos]
		sym := l.in.Intern(name)
		return token.Token{Kind: token.Variable, Span: l.span(start), Data: token.Data{Sym: sym, Str: string(name)}}, token.Trivia{}, false
	}
	if l.peekByte() == '-' && isDigit(l.peekAt(1)) {
		l.pos++
		for isDigit(l.peekByte()) {
			l.pos++
		}
		return token.Token{Kind: token.NumString, Span: l.span(start), Data: token.Data{Str: string(l.src[start:l.pos])}}, token.Trivia{}, false
	}
	if isDigit(l.peekByte()) {
		for isDigit(l.peekByte()) {
			l.pos++
		}
		return token.Token{Kind: token.NumString, Span: l.span(start), Data: token.Data{Str: string(l.src[start:l.pos])}}, token.Trivia{}, false
	}
	if isIdentStart(l.peekByte()) {
		l.scanIdentTail()
		name := l.src[start:l.pos]
		sym := l.in.Intern(name)
		return token.Token{Kind: token.Identifier, Span: l.span(start), Data: token.Data{Sym: sym, Str: string(name)}}, token.Trivia{}, false
	}

	l.diag.Errorf(l.span(start), "lex.bad-var-offset", "unexpected byte in simple array offset")
	l.popState()
	l.pos++
	return token.Token{Kind: token.Invalid, Span: l.span(start)}, token.Trivia{}, false
}

// lexHeredocStart scans "<<<LABEL\n" / "<<<'LABEL'\n" / `<<<"LABEL"\n`,
// determines nowdoc vs heredoc, pre-scans the body to locate the
// terminator line and the minimum indentation across non-blank
// content lines, and either emits a single NowdocLiteral (nowdoc) or
// pushes the Heredoc state (heredoc, interpolating).
func (l *Lexer) lexHeredocStart(start int) (token.Token, token.Trivia, bool) {
	l.pos += 3 // "<<<"
	for l.peekByte() == ' ' || l.peekByte() == '\t' {
		l.pos++
	}

	nowdoc := false
	var quote byte
	if l.peekByte() == '\'' {
		nowdoc = true
		quote = '\''
		l.pos++
	} else if l.peekByte() == '"' {
		quote = '"'
		l.pos++
	}

	labelStart := l.pos
	for isIdentPart(l.peekByte()) {
		l.pos++
	}
	label := string(l.src[labelStart:l.pos])
	if label == "" {
		l.diag.Errorf(l.span(start), "lex.bad-heredoc", "expected a heredoc/nowdoc label")
	}

	if quote != 0 {
		if l.peekByte() == quote {
			l.pos++
		} else {
			l.diag.Errorf(l.span(start), "lex.bad-heredoc", "unterminated heredoc label quote")
		}
	}

	if l.peekByte() == '\r' {
		l.pos++
	}
	if l.peekByte() == '\n' {
		l.pos++
	} else {
		l.diag.Errorf(l.span(start), "lex.bad-heredoc", "expected a newline after heredoc label")
	}

	contentStart := l.pos
	terminatorStart, terminatorLabelEnd, ok := findHeredocTerminator(l.src, contentStart, label)
	if !ok {
		l.diag.Errorf(l.span(start), "lex.unterminated-heredoc", "unterminated heredoc/nowdoc %q", label)
		terminatorStart = len(l.src)
		terminatorLabelEnd = len(l.src)
	}

	minIndent := computeMinIndent(l.src, contentStart, terminatorStart)

	if nowdoc {
		body := stripIndent(l.src, contentStart, trimFinalNewline(l.src, contentStart, terminatorStart), minIndent)
		s := l.span(start)
		s.End = uint32(terminatorLabelEnd)
		l.pos = terminatorLabelEnd
		return token.Token{Kind: token.NowdocLiteral, Span: s, Data: token.Data{Str: body}}, token.Trivia{}, false
	}

	l.heredocs = append(l.heredocs, heredocInfo{
		label:              label,
		isNowdoc:           false,
		minIndent:          minIndent,
		contentStart:       contentStart,
		terminatorStart:    terminatorStart,
		terminatorLabelEnd: terminatorLabelEnd,
	})
	l.pos = contentStart
	l.pushState(stateHeredoc)

	s := l.span(start)
	return token.Token{Kind: token.HeredocStart, Span: s, Data: token.Data{Str: label}}, token.Trivia{}, false
}

// findHeredocTerminator scans forward from contentStart for a line
// whose first non-blank bytes are `label` not followed by an
// identifier byte, returning the offset of the line's own indentation
// and the offset just past the label spelling.
func findHeredocTerminator(src []byte, contentStart int, label string) (termStart, labelEnd int, ok bool) {
	lineStart := contentStart
	for lineStart <= len(src) {
		i := lineStart
		for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
			i++
		}
		if hasCandidateLabel(src, i, label) {
			return lineStart, i + len(label), true
		}

		nl := indexByteFrom(src, lineStart, '\n')
		if nl < 0 {
			return 0, 0, false
		}
		lineStart = nl + 1
	}
	return 0, 0, false
}

func hasCandidateLabel(src []byte, at int, label string) bool {
	if at+len(label) > len(src) {
		return false
	}
	if string(src[at:at+len(label)]) != label {
		return false
	}
	after := at + len(label)
	if after < len(src) && isIdentPart(src[after]) {
		return false
	}
	return true
}

func indexByteFrom(src []byte, from int, c byte) int {
	for i := from; i < len(src); i++ {
		if src[i] == c {
			return i
		}
	}
	return -1
}

// computeMinIndent returns the minimum count of leading horizontal
// whitespace bytes across every non-blank line in src[from:to], per
// the heredoc-indentation Open Question resolution recorded in
// DESIGN.md.
func computeMinIndent(src []byte, from, to int) int {
	min := -1
	lineStart := from
	for lineStart < to {
		nl := indexByteFrom(src, lineStart, '\n')
		lineEnd := to
		if nl >= 0 && nl < to {
			lineEnd = nl
		}

		indent := 0
		i := lineStart
		for i < lineEnd && (src[i] == ' ' || src[i] == '\t') {
			indent++
			i++
		}
		if i < lineEnd { // non-blank line
			if min == -1 || indent < min {
				min = indent
			}
		}

		if nl < 0 || nl >= to {
			break
		}
		lineStart = nl + 1
	}
	if min == -1 {
		return 0
	}
	return min
}

// trimFinalNewline drops the single newline immediately preceding the
// terminator line, since a heredoc body conventionally excludes it.
func trimFinalNewline(src []byte, from, to int) int {
	if to > from && to-1 < len(src) && src[to-1] == '\n' {
		end := to - 1
		if end > from && src[end-1] == '\r' {
			end--
		}
		return end
	}
	return to
}

// stripIndent removes up to `indent` bytes of leading horizontal
// whitespace from every line of src[from:to] and returns the result.
func stripIndent(src []byte, from, to, indent int) string {
	var b strings.Builder
	lineStart := from
	for lineStart < to {
		nl := indexByteFrom(src, lineStart, '\n')
		lineEnd := to
		hasNL := false
		if nl >= 0 && nl < to {
			lineEnd = nl
			hasNL = true
		}

		i := lineStart
		skipped := 0
		for skipped < indent && i < lineEnd && (src[i] == ' ' || src[i] == '\t') {
			i++
			skipped++
		}
		b.Write(src[i:lineEnd])
		if hasNL {
			b.WriteByte('\n')
			lineStart = nl + 1
		} else {
			break
		}
	}
	return b.String()
}
