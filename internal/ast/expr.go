package ast

import (
	"fmt"
	"strings"
)

// IntLiteral is an integer literal in any of the four bases.
type IntLiteral struct {
	spanned

	Raw   string `json:"raw"`
	IsInt bool   `json:"isInt"` // false means the literal overflowed to float per PHP's own rule
}

func (e *IntLiteral) Kind() NodeKind       { return KindIntLiteral }
func (e *IntLiteral) expressionNode()      {}
func (e *IntLiteral) String() string       { return e.Raw }
func (e *IntLiteral) Accept(v Visitor) interface{} { return v.VisitIntLiteral(e) }

// FloatLiteral is a floating-point literal.
type FloatLiteral struct {
	spanned

	Raw string `json:"raw"`
}

func (e *FloatLiteral) Kind() NodeKind       { return KindFloatLiteral }
func (e *FloatLiteral) expressionNode()      {}
func (e *FloatLiteral) String() string       { return e.Raw }
func (e *FloatLiteral) Accept(v Visitor) interface{} { return v.VisitFloatLiteral(e) }

// StringLiteral is a single-quoted string, or a double-quoted/heredoc
// string that collapsed to a single literal chunk with no
// interpolation.
type StringLiteral struct {
	spanned

	Value string `json:"value"`
}

func (e *StringLiteral) Kind() NodeKind       { return KindStringLiteral }
func (e *StringLiteral) expressionNode()      {}
func (e *StringLiteral) String() string       { return fmt.Sprintf("%q", e.Value) }
func (e *StringLiteral) Accept(v Visitor) interface{} { return v.VisitStringLiteral(e) }

// InterpolatedString alternates literal and embedded-expression
// children; per spec.md, two literal children never adjoin.
type InterpolatedString struct {
	spanned

	Parts []Expression `json:"parts"`
}

func (e *InterpolatedString) Kind() NodeKind  { return KindInterpolatedString }
func (e *InterpolatedString) expressionNode() {}
func (e *InterpolatedString) String() string {
	parts := make([]string, len(e.Parts))
	for i, p := range e.Parts {
		parts[i] = p.String()
	}
	return `"` + strings.Join(parts, "") + `"`
}
func (e *InterpolatedString) Accept(v Visitor) interface{} { return v.VisitInterpolatedString(e) }

// Variable is `$name`.
type Variable struct {
	spanned

	Name string `json:"name"`
}

func (e *Variable) Kind() NodeKind       { return KindVariable }
func (e *Variable) expressionNode()      {}
func (e *Variable) String() string       { return "$" + e.Name }
func (e *Variable) Accept(v Visitor) interface{} { return v.VisitVariable(e) }

// ArrayItem is one element of an ArrayExpr or ListExpr: an optional
// key, a value, and unpack/by-ref flags.
type ArrayItem struct {
	spanned

	Key      Expression `json:"key,omitempty"`
	Value    Expression `json:"value"`
	ByRef    bool       `json:"byRef"`
	Unpack   bool       `json:"unpack"` // `...$expr`
}

func (a *ArrayItem) String() string {
	v := a.Value.String()
	if a.ByRef {
		v = "&" + v
	}
	if a.Unpack {
		v = "..." + v
	}
	if a.Key != nil {
		return a.Key.String() + " => " + v
	}
	return v
}

// ArrayExpr is `[...]` or `array(...)`.
type ArrayExpr struct {
	spanned

	Items []*ArrayItem `json:"items"`
}

func (e *ArrayExpr) Kind() NodeKind  { return KindArrayExpr }
func (e *ArrayExpr) expressionNode() {}
func (e *ArrayExpr) String() string {
	parts := make([]string, len(e.Items))
	for i, it := range e.Items {
		parts[i] = it.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (e *ArrayExpr) Accept(v Visitor) interface{} { return v.VisitArrayExpr(e) }

// ListExpr is `list(...)` or a `[...]` used as a destructuring target.
type ListExpr struct {
	spanned

	Items []*ArrayItem `json:"items"`
}

func (e *ListExpr) Kind() NodeKind  { return KindListExpr }
func (e *ListExpr) expressionNode() {}
func (e *ListExpr) String() string {
	parts := make([]string, len(e.Items))
	for i, it := range e.Items {
		parts[i] = it.String()
	}
	return "list(" + strings.Join(parts, ", ") + ")"
}
func (e *ListExpr) Accept(v Visitor) interface{} { return v.VisitListExpr(e) }

// Arg is a single call argument, optionally named or spread.
type Arg struct {
	spanned

	Name   string     `json:"name,omitempty"`
	Value  Expression `json:"value"`
	Spread bool       `json:"spread"`
}

func (a *Arg) String() string {
	v := a.Value.String()
	if a.Spread {
		v = "..." + v
	}
	if a.Name != "" {
		return a.Name + ": " + v
	}
	return v
}

func joinArgs(args []*Arg) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}

// NewExpr is `new Class(args)`, `new $var(args)`, or `new (expr)(args)`.
type NewExpr struct {
	spanned

	Class      Node       `json:"class"` // *Name, Expression, or *AnonClassExpr
	Args       []*Arg     `json:"args,omitempty"`
	IsFirstClassCallable bool `json:"isFirstClassCallable,omitempty"`
}

func (e *NewExpr) Kind() NodeKind  { return KindNewExpr }
func (e *NewExpr) expressionNode() {}
func (e *NewExpr) String() string {
	if e.IsFirstClassCallable {
		return fmt.Sprintf("new %s(...)", e.Class.String())
	}
	return fmt.Sprintf("new %s(%s)", e.Class.String(), joinArgs(e.Args))
}
func (e *NewExpr) Accept(v Visitor) interface{} { return v.VisitNewExpr(e) }

// AnonClassExpr is `new class(args) extends ... implements ... { ... }`.
type AnonClassExpr struct {
	spanned

	Args       []*Arg          `json:"args,omitempty"`
	Extends    *Name           `json:"extends,omitempty"`
	Implements []*Name         `json:"implements,omitempty"`
	Members    []Declaration   `json:"members"`
	Attributes []*AttributeGroup `json:"attributes,omitempty"`
}

func (e *AnonClassExpr) Kind() NodeKind  { return KindAnonClassExpr }
func (e *AnonClassExpr) expressionNode() {}
func (e *AnonClassExpr) String() string  { return "class { ... }" }
func (e *AnonClassExpr) Accept(v Visitor) interface{} { return v.VisitAnonClassExpr(e) }

// CloneExpr is `clone $expr`.
type CloneExpr struct {
	spanned

	Value Expression `json:"value"`
}

func (e *CloneExpr) Kind() NodeKind       { return KindCloneExpr }
func (e *CloneExpr) expressionNode()      {}
func (e *CloneExpr) String() string       { return "clone " + e.Value.String() }
func (e *CloneExpr) Accept(v Visitor) interface{} { return v.VisitCloneExpr(e) }

// InstanceofExpr is `$expr instanceof Class`.
type InstanceofExpr struct {
	spanned

	Value Expression `json:"value"`
	Class Node       `json:"class"` // *Name or Expression
}

func (e *InstanceofExpr) Kind() NodeKind  { return KindInstanceofExpr }
func (e *InstanceofExpr) expressionNode() {}
func (e *InstanceofExpr) String() string {
	return fmt.Sprintf("%s instanceof %s", e.Value.String(), e.Class.String())
}
func (e *InstanceofExpr) Accept(v Visitor) interface{} { return v.VisitInstanceofExpr(e) }

// IncludeKind distinguishes the four include/require variants.
type IncludeKind int

const (
	IncludeInclude IncludeKind = iota
	IncludeIncludeOnce
	IncludeRequire
	IncludeRequireOnce
)

func (k IncludeKind) String() string {
	switch k {
	case IncludeInclude:
		return "include"
	case IncludeIncludeOnce:
		return "include_once"
	case IncludeRequire:
		return "require"
	case IncludeRequireOnce:
		return "require_once"
	default:
		return "include"
	}
}

// IncludeExpr is `include/include_once/require/require_once $expr`.
type IncludeExpr struct {
	spanned

	IKind IncludeKind `json:"includeKind"`
	Value Expression  `json:"value"`
}

func (e *IncludeExpr) Kind() NodeKind  { return KindIncludeExpr }
func (e *IncludeExpr) expressionNode() {}
func (e *IncludeExpr) String() string  { return e.IKind.String() + " " + e.Value.String() }
func (e *IncludeExpr) Accept(v Visitor) interface{} { return v.VisitIncludeExpr(e) }

// AssignExpr is `$a = $b` or a compound form (`+=`, `??=`, ...); Op is
// the token spelling ("=", "+=", "??=", ...).
type AssignExpr struct {
	spanned

	Op     string     `json:"op"`
	Target Expression `json:"target"`
	Value  Expression `json:"value"`
	ByRef  bool       `json:"byRef,omitempty"` // `$a =& $b`
}

func (e *AssignExpr) Kind() NodeKind  { return KindAssignExpr }
func (e *AssignExpr) expressionNode() {}
func (e *AssignExpr) String() string {
	v := e.Value.String()
	if e.ByRef {
		v = "&" + v
	}
	return fmt.Sprintf("%s %s %s", e.Target.String(), e.Op, v)
}
func (e *AssignExpr) Accept(v Visitor) interface{} { return v.VisitAssignExpr(e) }

// BinaryExpr is any binary operator expression.
type BinaryExpr struct {
	spanned

	Op    string     `json:"op"`
	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func (e *BinaryExpr) Kind() NodeKind  { return KindBinaryExpr }
func (e *BinaryExpr) expressionNode() {}
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Op, e.Right.String())
}
func (e *BinaryExpr) Accept(v Visitor) interface{} { return v.VisitBinaryExpr(e) }

// UnaryExpr is a prefix or postfix unary operator expression.
type UnaryExpr struct {
	spanned

	Op       string     `json:"op"`
	Operand  Expression `json:"operand"`
	Postfix  bool       `json:"postfix"`
}

func (e *UnaryExpr) Kind() NodeKind  { return KindUnaryExpr }
func (e *UnaryExpr) expressionNode() {}
func (e *UnaryExpr) String() string {
	if e.Postfix {
		return e.Operand.String() + e.Op
	}
	return e.Op + e.Operand.String()
}
func (e *UnaryExpr) Accept(v Visitor) interface{} { return v.VisitUnaryExpr(e) }

// TernaryExpr is `$cond ? $then : $else`, or the short form
// `$cond ?: $else` when Then is nil.
type TernaryExpr struct {
	spanned

	Cond Expression `json:"cond"`
	Then Expression `json:"then,omitempty"`
	Else Expression `json:"else"`
}

func (e *TernaryExpr) Kind() NodeKind  { return KindTernaryExpr }
func (e *TernaryExpr) expressionNode() {}
func (e *TernaryExpr) String() string {
	if e.Then == nil {
		return fmt.Sprintf("(%s ?: %s)", e.Cond.String(), e.Else.String())
	}
	return fmt.Sprintf("(%s ? %s : %s)", e.Cond.String(), e.Then.String(), e.Else.String())
}
func (e *TernaryExpr) Accept(v Visitor) interface{} { return v.VisitTernaryExpr(e) }

// NullCoalesceExpr is `$a ?? $b`.
type NullCoalesceExpr struct {
	spanned

	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func (e *NullCoalesceExpr) Kind() NodeKind  { return KindNullCoalesceExpr }
func (e *NullCoalesceExpr) expressionNode() {}
func (e *NullCoalesceExpr) String() string {
	return fmt.Sprintf("(%s ?? %s)", e.Left.String(), e.Right.String())
}
func (e *NullCoalesceExpr) Accept(v Visitor) interface{} { return v.VisitNullCoalesceExpr(e) }

// CastExpr is `(type) $expr`.
type CastExpr struct {
	spanned

	CastType string     `json:"castType"`
	Value    Expression `json:"value"`
}

func (e *CastExpr) Kind() NodeKind       { return KindCastExpr }
func (e *CastExpr) expressionNode()      {}
func (e *CastExpr) String() string       { return fmt.Sprintf("(%s)%s", e.CastType, e.Value.String()) }
func (e *CastExpr) Accept(v Visitor) interface{} { return v.VisitCastExpr(e) }

// ErrorSuppressExpr is `@$expr`.
type ErrorSuppressExpr struct {
	spanned

	Value Expression `json:"value"`
}

func (e *ErrorSuppressExpr) Kind() NodeKind  { return KindErrorSuppressExpr }
func (e *ErrorSuppressExpr) expressionNode() {}
func (e *ErrorSuppressExpr) String() string  { return "@" + e.Value.String() }
func (e *ErrorSuppressExpr) Accept(v Visitor) interface{} { return v.VisitErrorSuppressExpr(e) }

// Param is a single function/method/closure/arrow-fn parameter.
type Param struct {
	spanned

	Name         string      `json:"name"`
	PType        Type        `json:"type,omitempty"`
	Default      Expression  `json:"default,omitempty"`
	ByRef        bool        `json:"byRef"`
	Variadic     bool        `json:"variadic"`
	PromotedMods ModifierSet `json:"promotedMods,omitempty"` // non-empty iff constructor-promoted
	Attributes   []*AttributeGroup `json:"attributes,omitempty"`
}

func (p *Param) Kind() NodeKind { return KindParam }
func (p *Param) String() string {
	s := ""
	if len(p.PromotedMods.Items) > 0 {
		s += p.PromotedMods.String() + " "
	}
	if p.PType != nil {
		s += p.PType.String() + " "
	}
	if p.ByRef {
		s += "&"
	}
	if p.Variadic {
		s += "..."
	}
	s += "$" + p.Name
	if p.Default != nil {
		s += " = " + p.Default.String()
	}
	return s
}
func (p *Param) Accept(v Visitor) interface{} { return v.VisitParam(p) }

// ClosureUse is one entry of a closure's `use (...)` clause.
type ClosureUse struct {
	spanned

	Name  string `json:"name"`
	ByRef bool   `json:"byRef"`
}

func (u *ClosureUse) String() string {
	if u.ByRef {
		return "&$" + u.Name
	}
	return "$" + u.Name
}

// ClosureExpr is `function (...) use (...): T { ... }`.
type ClosureExpr struct {
	spanned

	Static     bool          `json:"static"`
	ByRef      bool          `json:"byRef"`
	Params     []*Param      `json:"params"`
	Uses       []*ClosureUse `json:"uses,omitempty"`
	ReturnType Type          `json:"returnType,omitempty"`
	Body       *BlockStmt    `json:"body"`
}

func (e *ClosureExpr) Kind() NodeKind  { return KindClosureExpr }
func (e *ClosureExpr) expressionNode() {}
func (e *ClosureExpr) String() string  { return "function (...) { ... }" }
func (e *ClosureExpr) Accept(v Visitor) interface{} { return v.VisitClosureExpr(e) }

// ArrowFnExpr is `fn (...): T => expr`.
type ArrowFnExpr struct {
	spanned

	Static     bool       `json:"static"`
	ByRef      bool       `json:"byRef"`
	Params     []*Param   `json:"params"`
	ReturnType Type       `json:"returnType,omitempty"`
	Body       Expression `json:"body"`
}

func (e *ArrowFnExpr) Kind() NodeKind  { return KindArrowFnExpr }
func (e *ArrowFnExpr) expressionNode() {}
func (e *ArrowFnExpr) String() string  { return fmt.Sprintf("fn (...) => %s", e.Body.String()) }
func (e *ArrowFnExpr) Accept(v Visitor) interface{} { return v.VisitArrowFnExpr(e) }

// CallExpr is `callee(args)`, where callee may be a Name (function
// call) or an arbitrary expression (dynamic call, first-class
// callable target).
type CallExpr struct {
	spanned

	Callee               Node   `json:"callee"`
	Args                 []*Arg `json:"args,omitempty"`
	IsFirstClassCallable bool   `json:"isFirstClassCallable,omitempty"`
}

func (e *CallExpr) Kind() NodeKind  { return KindCallExpr }
func (e *CallExpr) expressionNode() {}
func (e *CallExpr) String() string {
	if e.IsFirstClassCallable {
		return fmt.Sprintf("%s(...)", e.Callee.String())
	}
	return fmt.Sprintf("%s(%s)", e.Callee.String(), joinArgs(e.Args))
}
func (e *CallExpr) Accept(v Visitor) interface{} { return v.VisitCallExpr(e) }

// MethodCallExpr is `$obj->method(args)`; Nullsafe marks `?->`.
type MethodCallExpr struct {
	spanned

	Object    Expression `json:"object"`
	Method    Node       `json:"method"` // *Identifier or Expression (`$obj->{$expr}()`)
	Args      []*Arg     `json:"args,omitempty"`
	Nullsafe  bool       `json:"nullsafe"`
	IsFirstClassCallable bool `json:"isFirstClassCallable,omitempty"`
}

func (e *MethodCallExpr) Kind() NodeKind  { return KindMethodCallExpr }
func (e *MethodCallExpr) expressionNode() {}
func (e *MethodCallExpr) String() string {
	arrow := "->"
	if e.Nullsafe {
		arrow = "?->"
	}
	if e.IsFirstClassCallable {
		return fmt.Sprintf("%s%s%s(...)", e.Object.String(), arrow, e.Method.String())
	}
	return fmt.Sprintf("%s%s%s(%s)", e.Object.String(), arrow, e.Method.String(), joinArgs(e.Args))
}
func (e *MethodCallExpr) Accept(v Visitor) interface{} { return v.VisitMethodCallExpr(e) }

// StaticCallExpr is `Class::method(args)`.
type StaticCallExpr struct {
	spanned

	Class  Node   `json:"class"` // *Name or Expression
	Method Node   `json:"method"` // *Identifier or Expression
	Args   []*Arg `json:"args,omitempty"`
	IsFirstClassCallable bool `json:"isFirstClassCallable,omitempty"`
}

func (e *StaticCallExpr) Kind() NodeKind  { return KindStaticCallExpr }
func (e *StaticCallExpr) expressionNode() {}
func (e *StaticCallExpr) String() string {
	if e.IsFirstClassCallable {
		return fmt.Sprintf("%s::%s(...)", e.Class.String(), e.Method.String())
	}
	return fmt.Sprintf("%s::%s(%s)", e.Class.String(), e.Method.String(), joinArgs(e.Args))
}
func (e *StaticCallExpr) Accept(v Visitor) interface{} { return v.VisitStaticCallExpr(e) }

// PropertyFetchExpr is `$obj->prop`; Nullsafe marks `?->`.
type PropertyFetchExpr struct {
	spanned

	Object   Expression `json:"object"`
	Property Node       `json:"property"` // *Identifier or Expression
	Nullsafe bool       `json:"nullsafe"`
}

func (e *PropertyFetchExpr) Kind() NodeKind  { return KindPropertyFetchExpr }
func (e *PropertyFetchExpr) expressionNode() {}
func (e *PropertyFetchExpr) String() string {
	arrow := "->"
	if e.Nullsafe {
		arrow = "?->"
	}
	return e.Object.String() + arrow + e.Property.String()
}
func (e *PropertyFetchExpr) Accept(v Visitor) interface{} { return v.VisitPropertyFetchExpr(e) }

// StaticPropertyFetchExpr is `Class::$prop`.
type StaticPropertyFetchExpr struct {
	spanned

	Class    Node `json:"class"` // *Name or Expression
	Property Node `json:"property"` // *Variable or Expression
}

func (e *StaticPropertyFetchExpr) Kind() NodeKind  { return KindStaticPropertyFetchExpr }
func (e *StaticPropertyFetchExpr) expressionNode() {}
func (e *StaticPropertyFetchExpr) String() string {
	return e.Class.String() + "::" + e.Property.String()
}
func (e *StaticPropertyFetchExpr) Accept(v Visitor) interface{} {
	return v.VisitStaticPropertyFetchExpr(e)
}

// ClassConstFetchExpr is `Class::CONST` or `Class::class`.
type ClassConstFetchExpr struct {
	spanned

	Class Node   `json:"class"` // *Name or Expression
	Name  string `json:"name"`  // constant name, or "class" for ::class
}

func (e *ClassConstFetchExpr) Kind() NodeKind  { return KindClassConstFetchExpr }
func (e *ClassConstFetchExpr) expressionNode() {}
func (e *ClassConstFetchExpr) String() string  { return e.Class.String() + "::" + e.Name }
func (e *ClassConstFetchExpr) Accept(v Visitor) interface{} { return v.VisitClassConstFetchExpr(e) }

// ConstFetchExpr is a bare name in expression position (`PHP_EOL`,
// `true`, `null`); the name may be qualified (`\Foo\BAR`).
type ConstFetchExpr struct {
	spanned

	Name *Name `json:"name"`
}

func (e *ConstFetchExpr) Kind() NodeKind       { return KindConstFetchExpr }
func (e *ConstFetchExpr) expressionNode()      {}
func (e *ConstFetchExpr) String() string       { return e.Name.String() }
func (e *ConstFetchExpr) Accept(v Visitor) interface{} { return v.VisitConstFetchExpr(e) }

// IndexExpr is `$expr[offset]`; Offset is nil for the append form
// `$expr[]`.
type IndexExpr struct {
	spanned

	Array  Expression `json:"array"`
	Offset Expression `json:"offset,omitempty"`
}

func (e *IndexExpr) Kind() NodeKind  { return KindIndexExpr }
func (e *IndexExpr) expressionNode() {}
func (e *IndexExpr) String() string {
	if e.Offset == nil {
		return e.Array.String() + "[]"
	}
	return fmt.Sprintf("%s[%s]", e.Array.String(), e.Offset.String())
}
func (e *IndexExpr) Accept(v Visitor) interface{} { return v.VisitIndexExpr(e) }

// YieldExpr is `yield`, `yield $value`, or `yield $key => $value`.
type YieldExpr struct {
	spanned

	Key   Expression `json:"key,omitempty"`
	Value Expression `json:"value,omitempty"`
}

func (e *YieldExpr) Kind() NodeKind  { return KindYieldExpr }
func (e *YieldExpr) expressionNode() {}
func (e *YieldExpr) String() string {
	switch {
	case e.Key != nil:
		return fmt.Sprintf("yield %s => %s", e.Key.String(), e.Value.String())
	case e.Value != nil:
		return "yield " + e.Value.String()
	default:
		return "yield"
	}
}
func (e *YieldExpr) Accept(v Visitor) interface{} { return v.VisitYieldExpr(e) }

// YieldFromExpr is `yield from $expr`.
type YieldFromExpr struct {
	spanned

	Value Expression `json:"value"`
}

func (e *YieldFromExpr) Kind() NodeKind       { return KindYieldFromExpr }
func (e *YieldFromExpr) expressionNode()      {}
func (e *YieldFromExpr) String() string       { return "yield from " + e.Value.String() }
func (e *YieldFromExpr) Accept(v Visitor) interface{} { return v.VisitYieldFromExpr(e) }

// MatchArm is one `conditions => result` (or `default => result`) arm
// of a MatchExpr.
type MatchArm struct {
	spanned

	Conditions []Expression `json:"conditions,omitempty"` // nil/empty means `default`
	Result     Expression   `json:"result"`
}

func (a *MatchArm) String() string {
	if len(a.Conditions) == 0 {
		return "default => " + a.Result.String()
	}
	parts := make([]string, len(a.Conditions))
	for i, c := range a.Conditions {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ") + " => " + a.Result.String()
}

// MatchExpr is `match ($subject) { arms... }`.
type MatchExpr struct {
	spanned

	Subject Expression  `json:"subject"`
	Arms    []*MatchArm `json:"arms"`
}

func (e *MatchExpr) Kind() NodeKind  { return KindMatchExpr }
func (e *MatchExpr) expressionNode() {}
func (e *MatchExpr) String() string {
	parts := make([]string, len(e.Arms))
	for i, a := range e.Arms {
		parts[i] = a.String()
	}
	return fmt.Sprintf("match (%s) { %s }", e.Subject.String(), strings.Join(parts, ", "))
}
func (e *MatchExpr) Accept(v Visitor) interface{} { return v.VisitMatchExpr(e) }

// PrintExpr is `print $expr`, which (unlike echo) is an expression
// yielding 1.
type PrintExpr struct {
	spanned

	Value Expression `json:"value"`
}

func (e *PrintExpr) Kind() NodeKind       { return KindPrintExpr }
func (e *PrintExpr) expressionNode()      {}
func (e *PrintExpr) String() string       { return "print " + e.Value.String() }
func (e *PrintExpr) Accept(v Visitor) interface{} { return v.VisitPrintExpr(e) }

// ThrowExpr is `throw $expr`, usable as an expression since PHP 8.
type ThrowExpr struct {
	spanned

	Value Expression `json:"value"`
}

func (e *ThrowExpr) Kind() NodeKind       { return KindThrowExpr }
func (e *ThrowExpr) expressionNode()      {}
func (e *ThrowExpr) String() string       { return "throw " + e.Value.String() }
func (e *ThrowExpr) Accept(v Visitor) interface{} { return v.VisitThrowExpr(e) }
