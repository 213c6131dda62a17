package lexer

import (
	"testing"

	"github.com/orizon-lang/phpfront/internal/diagnostic"
	"github.com/orizon-lang/phpfront/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func assertKinds(t *testing.T, toks []token.Token, want ...token.Kind) {
	t.Helper()
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d\ngot:  %v\nwant: %v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token[%d] = %s, want %s\nfull got: %v", i, got[i], want[i], got)
		}
	}
}

func TestBasicScriptingTokens(t *testing.T) {
	toks, _, diag := Tokenize("t.php", []byte(`<?php $x = 1 + 2;`))
	if diag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diag.All())
	}
	assertKinds(t, toks,
		token.OpenTag, token.Variable, token.Assign, token.LNumber,
		token.Plus, token.LNumber, token.Semicolon, token.EndOfInput,
	)
	if toks[1].Data.Str != "x" {
		t.Fatalf("variable name = %q, want %q", toks[1].Data.Str, "x")
	}
}

func TestInlineHTMLSurroundsPHPBlock(t *testing.T) {
	toks, _, diag := Tokenize("t.php", []byte(`Hello<?php echo 1; ?>World`))
	if diag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diag.All())
	}
	assertKinds(t, toks,
		token.InlineHTML, token.OpenTag, token.KwEcho, token.LNumber,
		token.Semicolon, token.CloseTag, token.InlineHTML, token.EndOfInput,
	)
}

func TestKeywordCaseInsensitivityPreservesSpelling(t *testing.T) {
	toks, _, diag := Tokenize("t.php", []byte(`<?php FUNCTION Function function`))
	if diag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diag.All())
	}
	assertKinds(t, toks, token.OpenTag, token.KwFunction, token.KwFunction, token.KwFunction, token.EndOfInput)
	spellings := []string{toks[1].Data.Str, toks[2].Data.Str, toks[3].Data.Str}
	want := []string{"FUNCTION", "Function", "function"}
	for i := range want {
		if spellings[i] != want[i] {
			t.Fatalf("spelling[%d] = %q, want %q", i, spellings[i], want[i])
		}
	}
}

func TestNumericLiteralBasesAndFloats(t *testing.T) {
	src := `<?php 0x1A_B 0b1010 0o17 0755 3.14 .5 5. 1e10 1_000;`
	toks, _, diag := Tokenize("t.php", []byte(src))
	if diag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diag.All())
	}
	wantKinds := []token.Kind{
		token.OpenTag,
		token.LNumber, token.LNumber, token.LNumber, token.LNumber,
		token.DNumber, token.DNumber, token.DNumber, token.DNumber,
		token.LNumber, token.Semicolon, token.EndOfInput,
	}
	assertKinds(t, toks, wantKinds...)

	wantText := map[int]string{
		1: "0x1A_B", 2: "0b1010", 3: "0o17", 4: "0755",
		5: "3.14", 6: ".5", 7: "5.", 8: "1e10", 9: "1_000",
	}
	for idx, want := range wantText {
		if toks[idx].Data.Str != want {
			t.Fatalf("token[%d] text = %q, want %q", idx, toks[idx].Data.Str, want)
		}
	}
	if !toks[4].Data.IsInt {
		t.Fatalf("legacy octal 0755 should be flagged IsInt")
	}
}

func TestSingleQuotedStringEscapes(t *testing.T) {
	toks, _, diag := Tokenize("t.php", []byte(`<?php 'it\'s a \\test';`))
	if diag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diag.All())
	}
	assertKinds(t, toks, token.OpenTag, token.StringLiteral, token.Semicolon, token.EndOfInput)
	want := "it's a \\test"
	if toks[1].Data.Str != want {
		t.Fatalf("decoded string = %q, want %q", toks[1].Data.Str, want)
	}
}

func TestUnterminatedSingleQuotedStringDiagnoses(t *testing.T) {
	_, _, diag := Tokenize("t.php", []byte(`<?php 'abc`))
	if !diag.HasErrors() {
		t.Fatalf("expected an unterminated-string diagnostic")
	}
	found := false
	for _, d := range diag.All() {
		if d.Code == "lex.unterminated-string" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected lex.unterminated-string, got %+v", diag.All())
	}
}

func TestDoubleQuotedInterpolation(t *testing.T) {
	toks, _, diag := Tokenize("t.php", []byte(`<?php "hello $name, {$a->b}!";`))
	if diag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diag.All())
	}
	assertKinds(t, toks,
		token.OpenTag,
		token.DoubleQuote,
		token.EncapsedAndWhitespace, // "hello "
		token.Variable,              // $name
		token.EncapsedAndWhitespace, // ", "
		token.CurlyOpen,             // {
		token.Variable,              // $a
		token.Arrow,                 // ->
		token.Identifier,            // b
		token.RBrace,                // }
		token.EncapsedAndWhitespace, // "!"
		token.DoubleQuote,
		token.Semicolon,
		token.EndOfInput,
	)
	if toks[2].Data.Str != "hello " {
		t.Fatalf("first chunk = %q, want %q", toks[2].Data.Str, "hello ")
	}
	if toks[3].Data.Str != "name" {
		t.Fatalf("interpolated variable name = %q, want %q", toks[3].Data.Str, "name")
	}
	if toks[6].Data.Str != "a" {
		t.Fatalf("braced variable name = %q, want %q", toks[6].Data.Str, "a")
	}
	if toks[8].Data.Str != "b" {
		t.Fatalf("braced property name = %q, want %q", toks[8].Data.Str, "b")
	}
}

func TestDoubleQuotedSimplePropertyAndOffsetInterpolation(t *testing.T) {
	toks, _, diag := Tokenize("t.php", []byte(`<?php "$a->b and $a[0]";`))
	if diag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diag.All())
	}
	assertKinds(t, toks,
		token.OpenTag,
		token.DoubleQuote,
		token.Variable,              // $a
		token.Arrow,                 // ->
		token.Identifier,            // b
		token.EncapsedAndWhitespace, // " and "
		token.Variable,              // $a
		token.LBracket,
		token.NumString, // 0
		token.RBracket,
		token.DoubleQuote,
		token.Semicolon,
		token.EndOfInput,
	)
}

func TestHeredocIndentationStrippingAndInterpolation(t *testing.T) {
	src := "<?php\n$x = <<<EOT\n    Hello, $name!\n    Bye\n    EOT;\n"
	toks, _, diag := Tokenize("t.php", []byte(src))
	if diag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diag.All())
	}
	assertKinds(t, toks,
		token.OpenTag, token.Variable, token.Assign,
		token.HeredocStart,
		token.EncapsedAndWhitespace, // "Hello, "
		token.Variable,              // $name
		token.EncapsedAndWhitespace, // "!\nBye"
		token.HeredocEnd,
		token.Semicolon,
		token.EndOfInput,
	)
	if toks[4].Data.Str != "Hello, " {
		t.Fatalf("first heredoc chunk = %q, want %q", toks[4].Data.Str, "Hello, ")
	}
	if toks[6].Data.Str != "!\nBye" {
		t.Fatalf("second heredoc chunk = %q, want %q", toks[6].Data.Str, "!\nBye")
	}
	if toks[7].Data.Str != "EOT" {
		t.Fatalf("heredoc label = %q, want %q", toks[7].Data.Str, "EOT")
	}
}

func TestNowdocIsOpaque(t *testing.T) {
	src := "<?php\n$y = <<<'EOT'\nRaw $x text\nEOT;\n"
	toks, _, diag := Tokenize("t.php", []byte(src))
	if diag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diag.All())
	}
	assertKinds(t, toks, token.OpenTag, token.Variable, token.Assign, token.NowdocLiteral, token.Semicolon, token.EndOfInput)
	if toks[3].Data.Str != "Raw $x text" {
		t.Fatalf("nowdoc body = %q, want %q", toks[3].Data.Str, "Raw $x text")
	}
}

func TestHeredocStripsFinalNewlineLikeNowdoc(t *testing.T) {
	src := "<?php\n$y = <<<EOT\nRaw $x text\nEOT;\n"
	toks, _, diag := Tokenize("t.php", []byte(src))
	if diag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diag.All())
	}
	assertKinds(t, toks,
		token.OpenTag, token.Variable, token.Assign,
		token.HeredocStart,
		token.EncapsedAndWhitespace, // "Raw "
		token.Variable,              // $x
		token.EncapsedAndWhitespace, // " text"
		token.HeredocEnd,
		token.Semicolon,
		token.EndOfInput,
	)
	if toks[6].Data.Str != " text" {
		t.Fatalf("final heredoc chunk = %q, want %q (no trailing newline)", toks[6].Data.Str, " text")
	}
}

func TestTrailingUnderscoreInNumberDiagnoses(t *testing.T) {
	_, _, diag := Tokenize("t.php", []byte(`<?php 1_000_;`))
	if !diag.HasErrors() {
		t.Fatalf("expected a bad-number diagnostic for a trailing underscore")
	}
	found := false
	for _, d := range diag.All() {
		if d.Code == "lex.bad-number" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected lex.bad-number diagnostic, got %v", diag.All())
	}
}

func TestLeadingUnderscoreInHexDigitsDiagnoses(t *testing.T) {
	_, _, diag := Tokenize("t.php", []byte(`<?php 0x_FF;`))
	if !diag.HasErrors() {
		t.Fatalf("expected a bad-number diagnostic for a leading underscore after the base prefix")
	}
}

func TestUnrecognizedEscapeWarns(t *testing.T) {
	_, _, diag := Tokenize("t.php", []byte(`<?php "\q";`))
	found := false
	for _, d := range diag.All() {
		if d.Code == "lex.bad-escape" && d.Severity == diagnostic.Warning {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a lex.bad-escape warning for an unrecognized escape sequence, got %v", diag.All())
	}
}

func TestUnterminatedBlockCommentDiagnoses(t *testing.T) {
	_, _, diag := Tokenize("t.php", []byte("<?php /* never closed"))
	if !diag.HasErrors() {
		t.Fatalf("expected an unterminated-comment diagnostic")
	}
}

func TestDocCommentAttachesAsLeadingTrivia(t *testing.T) {
	toks, _, diag := Tokenize("t.php", []byte("<?php /** doc */ function f() {}"))
	if diag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diag.All())
	}
	var fn *token.Token
	for i := range toks {
		if toks[i].Kind == token.KwFunction {
			fn = &toks[i]
			break
		}
	}
	if fn == nil {
		t.Fatalf("no function keyword found")
	}
	if len(fn.Leading) != 1 || fn.Leading[0].Kind != token.CommentDoc {
		t.Fatalf("expected function keyword to carry a leading doc comment, got %+v", fn.Leading)
	}
}

func TestOperatorMaximalMunch(t *testing.T) {
	toks, _, diag := Tokenize("t.php", []byte(`<?php $a <=> $b; $c ??= $d; $e <<= 1; $f ?-> g();`))
	if diag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diag.All())
	}
	assertKinds(t, toks,
		token.OpenTag,
		token.Variable, token.Spaceship, token.Variable, token.Semicolon,
		token.Variable, token.CoalesceEq, token.Variable, token.Semicolon,
		token.Variable, token.ShlEq, token.LNumber, token.Semicolon,
		token.Variable, token.NullsafeArrow, token.Identifier, token.LParen, token.RParen, token.Semicolon,
		token.EndOfInput,
	)
}

func TestAttributeOpenerDistinctFromLineComment(t *testing.T) {
	toks, _, diag := Tokenize("t.php", []byte("<?php #[Attr] # trailing comment\n$x;"))
	if diag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diag.All())
	}
	assertKinds(t, toks,
		token.OpenTag, token.AttributeStart, token.Identifier, token.RBracket,
		token.Variable, token.Semicolon, token.EndOfInput,
	)
}

func TestShebangIsSkippedOnlyAtStart(t *testing.T) {
	toks, _, diag := Tokenize("t.php", []byte("#!/usr/bin/env php\n<?php echo 1;"))
	if diag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diag.All())
	}
	assertKinds(t, toks, token.OpenTag, token.KwEcho, token.LNumber, token.Semicolon, token.EndOfInput)
}
