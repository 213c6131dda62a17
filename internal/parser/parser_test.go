package parser

import (
	"testing"

	"github.com/orizon-lang/phpfront/internal/ast"
)

// TestEndToEndScenarios exercises the concrete parse scenarios spec.md
// §8 names, end to end from source text through Parse.
func TestEndToEndScenarios(t *testing.T) {
	t.Run("empty function with return type", func(t *testing.T) {
		res := Parse("t.php", []byte(`<?php function f(): void {}`))
		if res.Diagnostics.Len() != 0 {
			t.Fatalf("expected zero diagnostics, got %v", res.Diagnostics.All())
		}
		if len(res.Program.Statements) != 1 {
			t.Fatalf("expected 1 statement, got %d", len(res.Program.Statements))
		}
		fn, ok := res.Program.Statements[0].(*ast.FunctionDecl)
		if !ok {
			t.Fatalf("expected *ast.FunctionDecl, got %T", res.Program.Statements[0])
		}
		if fn.Name.Name != "f" {
			t.Errorf("expected name f, got %q", fn.Name.Name)
		}
		if len(fn.Params) != 0 {
			t.Errorf("expected 0 params, got %d", len(fn.Params))
		}
		rt, ok := fn.ReturnType.(*ast.NamedType)
		if !ok || rt.String() != "void" {
			t.Errorf("expected return type void, got %v", fn.ReturnType)
		}
		if fn.Body == nil || len(fn.Body.Statements) != 0 {
			t.Errorf("expected empty body, got %v", fn.Body)
		}
	})

	t.Run("DNF parameter type", func(t *testing.T) {
		res := Parse("t.php", []byte(`<?php function g(A|(B&C) $x) {}`))
		if res.Diagnostics.Len() != 0 {
			t.Fatalf("expected zero diagnostics, got %v", res.Diagnostics.All())
		}
		fn := res.Program.Statements[0].(*ast.FunctionDecl)
		if len(fn.Params) != 1 {
			t.Fatalf("expected 1 param, got %d", len(fn.Params))
		}
		p := fn.Params[0]
		if p.Name != "x" {
			t.Errorf("expected param name x, got %q", p.Name)
		}
		union, ok := p.PType.(*ast.UnionType)
		if !ok || len(union.Members) != 2 {
			t.Fatalf("expected a 2-member union type, got %v", p.PType)
		}
		if union.Members[0].String() != "A" {
			t.Errorf("expected first union member A, got %s", union.Members[0].String())
		}
		paren, ok := union.Members[1].(*ast.ParenthesizedType)
		if !ok {
			t.Fatalf("expected second union member to be parenthesized, got %T", union.Members[1])
		}
		inter, ok := paren.Inner.(*ast.IntersectionType)
		if !ok || inter.String() != "B&C" {
			t.Fatalf("expected inner intersection B&C, got %v", paren.Inner)
		}
	})

	t.Run("invalid nullable-union combination", func(t *testing.T) {
		res := Parse("t.php", []byte(`<?php function h(?A|B $x) {}`))
		found := false
		for _, d := range res.Diagnostics.All() {
			if d.Code == "type.nullable-in-union" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected type.nullable-in-union diagnostic, got %v", res.Diagnostics.All())
		}
		fn := res.Program.Statements[0].(*ast.FunctionDecl)
		union, ok := fn.Params[0].PType.(*ast.UnionType)
		if !ok || len(union.Members) != 2 {
			t.Fatalf("expected union survives with 2 members, got %v", fn.Params[0].PType)
		}
		nullable, ok := union.Members[0].(*ast.NullableType)
		if !ok || nullable.String() != "?A" {
			t.Fatalf("expected first member ?A, got %v", union.Members[0])
		}
		if union.Members[1].String() != "B" {
			t.Errorf("expected second member B, got %s", union.Members[1].String())
		}
	})

	t.Run("class with typed constant and promoted constructor property", func(t *testing.T) {
		src := `<?php final class U { public function __construct(public readonly string $s) {} const string K = ''; }`
		res := Parse("t.php", []byte(src))
		if res.Diagnostics.Len() != 0 {
			t.Fatalf("expected zero diagnostics, got %v", res.Diagnostics.All())
		}
		cls, ok := res.Program.Statements[0].(*ast.ClassLike)
		if !ok {
			t.Fatalf("expected *ast.ClassLike, got %T", res.Program.Statements[0])
		}
		if !cls.Modifiers.Has(ast.ModFinal) {
			t.Errorf("expected final modifier on class")
		}
		if len(cls.Members) != 2 {
			t.Fatalf("expected 2 members, got %d", len(cls.Members))
		}
		method, ok := cls.Members[0].(*ast.MethodDecl)
		if !ok || method.Name.Name != "__construct" {
			t.Fatalf("expected __construct method first, got %T", cls.Members[0])
		}
		if len(method.Params) != 1 {
			t.Fatalf("expected 1 promoted param, got %d", len(method.Params))
		}
		promoted := method.Params[0]
		if !promoted.PromotedMods.Has(ast.ModPublic) || !promoted.PromotedMods.Has(ast.ModReadonly) {
			t.Errorf("expected promoted param to be public readonly, got %v", promoted.PromotedMods)
		}
		if promoted.PType == nil || promoted.PType.String() != "string" {
			t.Errorf("expected promoted param type string, got %v", promoted.PType)
		}
		constDecl, ok := cls.Members[1].(*ast.ClassConstDecl)
		if !ok {
			t.Fatalf("expected *ast.ClassConstDecl, got %T", cls.Members[1])
		}
		if constDecl.CType == nil || constDecl.CType.String() != "string" {
			t.Errorf("expected const type string, got %v", constDecl.CType)
		}
		if len(constDecl.Items) != 1 || constDecl.Items[0].Name != "K" {
			t.Errorf("expected const item K, got %v", constDecl.Items)
		}
	})

	t.Run("attributes on multiple kinds", func(t *testing.T) {
		src := `<?php #[A, B(1)] function f(#[C] int $x): int { return $x; }`
		res := Parse("t.php", []byte(src))
		if res.Diagnostics.Len() != 0 {
			t.Fatalf("expected zero diagnostics, got %v", res.Diagnostics.All())
		}
		fn := res.Program.Statements[0].(*ast.FunctionDecl)
		if len(fn.Attributes) != 1 || len(fn.Attributes[0].Attributes) != 2 {
			t.Fatalf("expected one attribute group with 2 attributes on function, got %v", fn.Attributes)
		}
		if fn.Attributes[0].Attributes[0].Name.String() != "A" {
			t.Errorf("expected first attribute A, got %s", fn.Attributes[0].Attributes[0].Name.String())
		}
		if fn.Attributes[0].Attributes[1].String() != "B(1)" {
			t.Errorf("expected second attribute B(1), got %s", fn.Attributes[0].Attributes[1].String())
		}
		if len(fn.Params[0].Attributes) != 1 || fn.Params[0].Attributes[0].String() != "#[C]" {
			t.Fatalf("expected param attribute #[C], got %v", fn.Params[0].Attributes)
		}
	})

	t.Run("interpolated string", func(t *testing.T) {
		res := Parse("t.php", []byte(`<?php $x = "hello $name, {$a->b}!";`))
		if res.Diagnostics.Len() != 0 {
			t.Fatalf("expected zero diagnostics, got %v", res.Diagnostics.All())
		}
		stmt, ok := res.Program.Statements[0].(*ast.ExprStmt)
		if !ok {
			t.Fatalf("expected *ast.ExprStmt, got %T", res.Program.Statements[0])
		}
		assign, ok := stmt.Value.(*ast.AssignExpr)
		if !ok {
			t.Fatalf("expected *ast.AssignExpr, got %T", stmt.Value)
		}
		interp, ok := assign.Value.(*ast.InterpolatedString)
		if !ok {
			t.Fatalf("expected *ast.InterpolatedString, got %T", assign.Value)
		}
		if len(interp.Parts) != 5 {
			t.Fatalf("expected 5 parts, got %d: %v", len(interp.Parts), interp.Parts)
		}
		lit0, ok := interp.Parts[0].(*ast.StringLiteral)
		if !ok || lit0.Value != "hello " {
			t.Errorf("expected part 0 literal %q, got %v", "hello ", interp.Parts[0])
		}
		v1, ok := interp.Parts[1].(*ast.Variable)
		if !ok || v1.Name != "name" {
			t.Errorf("expected part 1 $name, got %v", interp.Parts[1])
		}
		lit2, ok := interp.Parts[2].(*ast.StringLiteral)
		if !ok || lit2.Value != ", " {
			t.Errorf("expected part 2 literal %q, got %v", ", ", interp.Parts[2])
		}
		prop, ok := interp.Parts[3].(*ast.PropertyFetchExpr)
		if !ok {
			t.Fatalf("expected part 3 property fetch, got %T", interp.Parts[3])
		}
		objVar, ok := prop.Object.(*ast.Variable)
		if !ok || objVar.Name != "a" {
			t.Errorf("expected property fetch object $a, got %v", prop.Object)
		}
		propName, ok := prop.Property.(*ast.Identifier)
		if !ok || propName.Name != "b" {
			t.Errorf("expected property name b, got %v", prop.Property)
		}
	})
}

// TestSpanInvariants checks span containment and monotonicity across a
// small nested program, per spec.md's general span invariants.
func TestSpanInvariants(t *testing.T) {
	res := Parse("t.php", []byte(`<?php function f(int $x) { if ($x) { return $x; } return 0; }`))
	if res.Diagnostics.Len() != 0 {
		t.Fatalf("expected zero diagnostics, got %v", res.Diagnostics.All())
	}
	fn := res.Program.Statements[0].(*ast.FunctionDecl)
	if !fn.GetSpan().Contains(fn.Body.GetSpan()) {
		t.Errorf("function span %v does not contain body span %v", fn.GetSpan(), fn.Body.GetSpan())
	}
	if !fn.GetSpan().Contains(fn.Params[0].GetSpan()) {
		t.Errorf("function span %v does not contain param span %v", fn.GetSpan(), fn.Params[0].GetSpan())
	}
	ifStmt, ok := fn.Body.Statements[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected *ast.IfStmt, got %T", fn.Body.Statements[0])
	}
	if !fn.Body.GetSpan().Contains(ifStmt.GetSpan()) {
		t.Errorf("body span %v does not contain if span %v", fn.Body.GetSpan(), ifStmt.GetSpan())
	}
	if !ifStmt.GetSpan().Contains(ifStmt.Cond.GetSpan()) {
		t.Errorf("if span %v does not contain cond span %v", ifStmt.GetSpan(), ifStmt.Cond.GetSpan())
	}

	var prevEnd uint32
	for i, s := range fn.Body.Statements {
		sp := s.GetSpan()
		if sp.Start < prevEnd {
			t.Errorf("statement %d starts at %d before previous statement ended at %d", i, sp.Start, prevEnd)
		}
		prevEnd = sp.End
	}
}

// TestKeywordCaseInsensitivity checks that PHP's case-insensitive
// keyword rule is honored regardless of the casing used in source.
func TestKeywordCaseInsensitivity(t *testing.T) {
	res := Parse("t.php", []byte(`<?php CLASS Foo { PUBLIC FUNCTION bar() {} }`))
	if res.Diagnostics.Len() != 0 {
		t.Fatalf("expected zero diagnostics, got %v", res.Diagnostics.All())
	}
	cls, ok := res.Program.Statements[0].(*ast.ClassLike)
	if !ok {
		t.Fatalf("expected *ast.ClassLike, got %T", res.Program.Statements[0])
	}
	if cls.Name.Name != "Foo" {
		t.Errorf("expected class name Foo, got %q", cls.Name.Name)
	}
	method, ok := cls.Members[0].(*ast.MethodDecl)
	if !ok {
		t.Fatalf("expected *ast.MethodDecl, got %T", cls.Members[0])
	}
	if !method.Modifiers.Has(ast.ModPublic) {
		t.Errorf("expected public modifier despite uppercase spelling")
	}
}

// TestPartialASTOnError checks that a malformed program still produces
// a usable, total AST via Missing placeholders rather than aborting.
func TestPartialASTOnError(t *testing.T) {
	res := Parse("t.php", []byte(`<?php function f( { return; }`))
	if res.Diagnostics.Len() == 0 {
		t.Fatalf("expected at least one diagnostic for malformed source")
	}
	if len(res.Program.Statements) != 1 {
		t.Fatalf("expected parser to still produce 1 top-level statement, got %d", len(res.Program.Statements))
	}
	if _, ok := res.Program.Statements[0].(*ast.FunctionDecl); !ok {
		t.Fatalf("expected recovery to still yield *ast.FunctionDecl, got %T", res.Program.Statements[0])
	}
}

// TestParseIdempotence checks that parsing the same source twice
// yields structurally identical trees (same statement/diagnostic
// counts and shapes), since Parse carries no shared mutable state
// across calls.
func TestParseIdempotence(t *testing.T) {
	src := []byte(`<?php final class U { public function __construct(public readonly string $s) {} }`)
	r1 := Parse("t.php", src)
	r2 := Parse("t.php", src)
	if r1.Diagnostics.Len() != r2.Diagnostics.Len() {
		t.Fatalf("diagnostic count differs between runs: %d vs %d", r1.Diagnostics.Len(), r2.Diagnostics.Len())
	}
	if len(r1.Program.Statements) != len(r2.Program.Statements) {
		t.Fatalf("statement count differs between runs: %d vs %d", len(r1.Program.Statements), len(r2.Program.Statements))
	}
	c1 := r1.Program.Statements[0].(*ast.ClassLike)
	c2 := r2.Program.Statements[0].(*ast.ClassLike)
	if c1.Name.Name != c2.Name.Name || len(c1.Members) != len(c2.Members) {
		t.Fatalf("class shape differs between runs")
	}
}

// TestOpenTagEchoDesugarsToEcho checks that a `<?=` tag, including one
// in a non-first position, produces an implicit EchoStmt rather than a
// spurious parse error, per the parser's OpenTagEcho handling.
func TestOpenTagEchoDesugarsToEcho(t *testing.T) {
	res := Parse("t.php", []byte(`<?php $x = 1; ?><?= $x`))
	if res.Diagnostics.Len() != 0 {
		t.Fatalf("expected zero diagnostics, got %v", res.Diagnostics.All())
	}
	if len(res.Program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(res.Program.Statements))
	}
	echo, ok := res.Program.Statements[1].(*ast.EchoStmt)
	if !ok {
		t.Fatalf("expected *ast.EchoStmt for <?= tag, got %T", res.Program.Statements[1])
	}
	if len(echo.Values) != 1 {
		t.Fatalf("expected 1 echo value, got %d", len(echo.Values))
	}
	v, ok := echo.Values[0].(*ast.Variable)
	if !ok || v.Name != "x" {
		t.Errorf("expected echoed $x, got %v", echo.Values[0])
	}
}

// TestConcatBindsLooserThanShift checks PHP 8.0's precedence change:
// `.` moved below `<<`/`>>`, so `$a . $b << $c` parses as
// `$a . ($b << $c)`, not `($a . $b) << $c` as it did pre-8.0.
func TestConcatBindsLooserThanShift(t *testing.T) {
	res := Parse("t.php", []byte(`<?php $a . $b << $c;`))
	if res.Diagnostics.Len() != 0 {
		t.Fatalf("expected zero diagnostics, got %v", res.Diagnostics.All())
	}
	stmt, ok := res.Program.Statements[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected *ast.ExprStmt, got %T", res.Program.Statements[0])
	}
	top, ok := stmt.Value.(*ast.BinaryExpr)
	if !ok || top.Op != "." {
		t.Fatalf("expected top-level '.', got %T (%v)", stmt.Value, stmt.Value)
	}
	left, ok := top.Left.(*ast.Variable)
	if !ok || left.Name != "a" {
		t.Fatalf("expected left operand $a, got %v", top.Left)
	}
	right, ok := top.Right.(*ast.BinaryExpr)
	if !ok || right.Op != "<<" {
		t.Fatalf("expected right operand to be a '<<' shift, got %T (%v)", top.Right, top.Right)
	}
	if b, ok := right.Left.(*ast.Variable); !ok || b.Name != "b" {
		t.Errorf("expected shift's left operand $b, got %v", right.Left)
	}
	if c, ok := right.Right.(*ast.Variable); !ok || c.Name != "c" {
		t.Errorf("expected shift's right operand $c, got %v", right.Right)
	}
}

// TestShiftBindsLooserThanAdd checks that `<<`/`>>` still bind looser
// than `+`/`-` under the 8.x table, so `$a << $b + $c` parses as
// `$a << ($b + $c)`.
func TestShiftBindsLooserThanAdd(t *testing.T) {
	res := Parse("t.php", []byte(`<?php $a << $b + $c;`))
	if res.Diagnostics.Len() != 0 {
		t.Fatalf("expected zero diagnostics, got %v", res.Diagnostics.All())
	}
	stmt, ok := res.Program.Statements[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected *ast.ExprStmt, got %T", res.Program.Statements[0])
	}
	top, ok := stmt.Value.(*ast.BinaryExpr)
	if !ok || top.Op != "<<" {
		t.Fatalf("expected top-level '<<', got %T (%v)", stmt.Value, stmt.Value)
	}
	if _, ok := top.Right.(*ast.BinaryExpr); !ok {
		t.Fatalf("expected right operand to be a nested '+' expression, got %T", top.Right)
	}
}

// TestStandaloneTypeRejectedInUnion checks that void/never/mixed
// cannot be combined into a union, intersection, or nullable type.
func TestStandaloneTypeRejectedInUnion(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"union with void", `<?php function f(void|int $x) {}`},
		{"union with never", `<?php function f(int|never $x) {}`},
		{"intersection with mixed", `<?php function f(mixed&Countable $x) {}`},
		{"nullable void", `<?php function f(?void $x) {}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := Parse("t.php", []byte(c.src))
			found := false
			for _, d := range res.Diagnostics.All() {
				if d.Code == "type.standalone-in-combination" {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected type.standalone-in-combination diagnostic for %q, got %v", c.src, res.Diagnostics.All())
			}
		})
	}
}

func TestParenthesizedTypeRequiresIntersection(t *testing.T) {
	res := Parse("t.php", []byte(`<?php function f((A)|B $x) {}`))
	found := false
	for _, d := range res.Diagnostics.All() {
		if d.Code == "type.dnf-grouping" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected type.dnf-grouping diagnostic, got %v", res.Diagnostics.All())
	}
}

func TestParenthesizedIntersectionInUnionIsFine(t *testing.T) {
	res := Parse("t.php", []byte(`<?php function f((A&B)|C $x) {}`))
	for _, d := range res.Diagnostics.All() {
		if d.Code == "type.dnf-grouping" {
			t.Fatalf("did not expect type.dnf-grouping for a valid DNF group, got %v", res.Diagnostics.All())
		}
	}
}

func TestBreakOutsideLoopDiagnoses(t *testing.T) {
	res := Parse("t.php", []byte(`<?php break;`))
	found := false
	for _, d := range res.Diagnostics.All() {
		if d.Code == "parse.break-outside-loop" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected parse.break-outside-loop diagnostic, got %v", res.Diagnostics.All())
	}
}

func TestBreakInsideLoopIsFine(t *testing.T) {
	res := Parse("t.php", []byte(`<?php while (true) { break; }`))
	for _, d := range res.Diagnostics.All() {
		if d.Code == "parse.break-outside-loop" {
			t.Fatalf("did not expect parse.break-outside-loop inside a loop, got %v", res.Diagnostics.All())
		}
	}
}

func TestContinueOutsideLoopDiagnoses(t *testing.T) {
	res := Parse("t.php", []byte(`<?php continue;`))
	found := false
	for _, d := range res.Diagnostics.All() {
		if d.Code == "parse.continue-outside-loop" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected parse.continue-outside-loop diagnostic, got %v", res.Diagnostics.All())
	}
}

func TestBreakInsideFunctionInsideLoopStillDiagnoses(t *testing.T) {
	res := Parse("t.php", []byte(`<?php while (true) { function f() { break; } }`))
	found := false
	for _, d := range res.Diagnostics.All() {
		if d.Code == "parse.break-outside-loop" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected break inside a nested function (but outside any loop of its own) to diagnose, got %v", res.Diagnostics.All())
	}
}

func TestYieldOutsideFunctionDiagnoses(t *testing.T) {
	res := Parse("t.php", []byte(`<?php yield 1;`))
	found := false
	for _, d := range res.Diagnostics.All() {
		if d.Code == "parse.yield-outside-function" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected parse.yield-outside-function diagnostic, got %v", res.Diagnostics.All())
	}
}

func TestYieldInsideFunctionIsFine(t *testing.T) {
	res := Parse("t.php", []byte(`<?php function gen() { yield 1; }`))
	for _, d := range res.Diagnostics.All() {
		if d.Code == "parse.yield-outside-function" {
			t.Fatalf("did not expect parse.yield-outside-function inside a function, got %v", res.Diagnostics.All())
		}
	}
}
