package ast

import (
	"fmt"
	"strings"
)

// BlockStmt is a `{ ... }` sequence of statements.
type BlockStmt struct {
	spanned

	Statements []Statement `json:"statements"`
}

func (s *BlockStmt) Kind() NodeKind { return KindBlockStmt }
func (s *BlockStmt) statementNode() {}
func (s *BlockStmt) String() string {
	parts := make([]string, len(s.Statements))
	for i, st := range s.Statements {
		parts[i] = st.String()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}
func (s *BlockStmt) Accept(v Visitor) interface{} { return v.VisitBlockStmt(s) }

// ExprStmt wraps an expression used as a whole statement, `$expr;`.
type ExprStmt struct {
	spanned

	Value Expression `json:"value"`
}

func (s *ExprStmt) Kind() NodeKind       { return KindExprStmt }
func (s *ExprStmt) statementNode()       {}
func (s *ExprStmt) String() string       { return s.Value.String() + ";" }
func (s *ExprStmt) Accept(v Visitor) interface{} { return v.VisitExprStmt(s) }

// InlineHTMLStmt is a run of literal template text between PHP tags.
type InlineHTMLStmt struct {
	spanned

	Text string `json:"text"`
}

func (s *InlineHTMLStmt) Kind() NodeKind { return KindInlineHTMLStmt }
func (s *InlineHTMLStmt) statementNode() {}
func (s *InlineHTMLStmt) String() string { return s.Text }
func (s *InlineHTMLStmt) Accept(v Visitor) interface{} { return v.VisitInlineHTMLStmt(s) }

// ElseIfClause is one `elseif (cond) body` arm of an IfStmt.
type ElseIfClause struct {
	spanned

	Cond Expression `json:"cond"`
	Body Statement  `json:"body"`
}

// IfStmt is `if (cond) then elseif... else`.
type IfStmt struct {
	spanned

	Cond    Expression      `json:"cond"`
	Then    Statement       `json:"then"`
	ElseIfs []*ElseIfClause `json:"elseIfs,omitempty"`
	Else    Statement       `json:"else,omitempty"`
}

func (s *IfStmt) Kind() NodeKind { return KindIfStmt }
func (s *IfStmt) statementNode() {}
func (s *IfStmt) String() string {
	out := fmt.Sprintf("if (%s) %s", s.Cond.String(), s.Then.String())
	for _, e := range s.ElseIfs {
		out += fmt.Sprintf(" elseif (%s) %s", e.Cond.String(), e.Body.String())
	}
	if s.Else != nil {
		out += " else " + s.Else.String()
	}
	return out
}
func (s *IfStmt) Accept(v Visitor) interface{} { return v.VisitIfStmt(s) }

// WhileStmt is `while (cond) body`.
type WhileStmt struct {
	spanned

	Cond Expression `json:"cond"`
	Body Statement  `json:"body"`
}

func (s *WhileStmt) Kind() NodeKind { return KindWhileStmt }
func (s *WhileStmt) statementNode() {}
func (s *WhileStmt) String() string { return fmt.Sprintf("while (%s) %s", s.Cond.String(), s.Body.String()) }
func (s *WhileStmt) Accept(v Visitor) interface{} { return v.VisitWhileStmt(s) }

// DoWhileStmt is `do body while (cond);`.
type DoWhileStmt struct {
	spanned

	Body Statement  `json:"body"`
	Cond Expression `json:"cond"`
}

func (s *DoWhileStmt) Kind() NodeKind { return KindDoWhileStmt }
func (s *DoWhileStmt) statementNode() {}
func (s *DoWhileStmt) String() string {
	return fmt.Sprintf("do %s while (%s)", s.Body.String(), s.Cond.String())
}
func (s *DoWhileStmt) Accept(v Visitor) interface{} { return v.VisitDoWhileStmt(s) }

// ForStmt is `for (init; cond; loop) body`; each clause is a
// comma-separated expression list.
type ForStmt struct {
	spanned

	Init []Expression `json:"init,omitempty"`
	Cond []Expression `json:"cond,omitempty"`
	Loop []Expression `json:"loop,omitempty"`
	Body Statement    `json:"body"`
}

func (s *ForStmt) Kind() NodeKind { return KindForStmt }
func (s *ForStmt) statementNode() {}
func (s *ForStmt) String() string { return "for (...) " + s.Body.String() }
func (s *ForStmt) Accept(v Visitor) interface{} { return v.VisitForStmt(s) }

// ForeachStmt is `foreach ($expr as [$key =>] $value) body`.
type ForeachStmt struct {
	spanned

	Expr     Expression `json:"expr"`
	KeyVar   Expression `json:"keyVar,omitempty"`
	ValueVar Expression `json:"valueVar"`
	ByRef    bool       `json:"byRef"`
	Body     Statement  `json:"body"`
}

func (s *ForeachStmt) Kind() NodeKind { return KindForeachStmt }
func (s *ForeachStmt) statementNode() {}
func (s *ForeachStmt) String() string {
	return fmt.Sprintf("foreach (%s as %s) %s", s.Expr.String(), s.ValueVar.String(), s.Body.String())
}
func (s *ForeachStmt) Accept(v Visitor) interface{} { return v.VisitForeachStmt(s) }

// SwitchCase is one `case expr:` (Test != nil) or `default:` (Test ==
// nil) arm of a SwitchStmt.
type SwitchCase struct {
	spanned

	Test Expression  `json:"test,omitempty"`
	Body []Statement `json:"body"`
}

// SwitchStmt is `switch (subject) { cases... }`.
type SwitchStmt struct {
	spanned

	Subject Expression    `json:"subject"`
	Cases   []*SwitchCase `json:"cases"`
}

func (s *SwitchStmt) Kind() NodeKind { return KindSwitchStmt }
func (s *SwitchStmt) statementNode() {}
func (s *SwitchStmt) String() string { return fmt.Sprintf("switch (%s) { ... }", s.Subject.String()) }
func (s *SwitchStmt) Accept(v Visitor) interface{} { return v.VisitSwitchStmt(s) }

// CatchClause is one `catch (Type1|Type2 $var) { ... }` arm.
type CatchClause struct {
	spanned

	Types []*Name    `json:"types"`
	Var   string     `json:"var,omitempty"`
	Body  *BlockStmt `json:"body"`
}

// TryStmt is `try { ... } catch (...) { ... } finally { ... }`.
type TryStmt struct {
	spanned

	Body    *BlockStmt     `json:"body"`
	Catches []*CatchClause `json:"catches,omitempty"`
	Finally *BlockStmt     `json:"finally,omitempty"`
}

func (s *TryStmt) Kind() NodeKind { return KindTryStmt }
func (s *TryStmt) statementNode() {}
func (s *TryStmt) String() string { return "try " + s.Body.String() }
func (s *TryStmt) Accept(v Visitor) interface{} { return v.VisitTryStmt(s) }

// ReturnStmt is `return [$value];`.
type ReturnStmt struct {
	spanned

	Value Expression `json:"value,omitempty"`
}

func (s *ReturnStmt) Kind() NodeKind { return KindReturnStmt }
func (s *ReturnStmt) statementNode() {}
func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "return;"
	}
	return "return " + s.Value.String() + ";"
}
func (s *ReturnStmt) Accept(v Visitor) interface{} { return v.VisitReturnStmt(s) }

// ThrowStmt is the statement form `throw $expr;` (PHP 8 also allows
// throw in expression position; see ThrowExpr).
type ThrowStmt struct {
	spanned

	Value Expression `json:"value"`
}

func (s *ThrowStmt) Kind() NodeKind       { return KindThrowStmt }
func (s *ThrowStmt) statementNode()       {}
func (s *ThrowStmt) String() string       { return "throw " + s.Value.String() + ";" }
func (s *ThrowStmt) Accept(v Visitor) interface{} { return v.VisitThrowStmt(s) }

// BreakStmt is `break [n];`.
type BreakStmt struct {
	spanned

	Level Expression `json:"level,omitempty"`
}

func (s *BreakStmt) Kind() NodeKind { return KindBreakStmt }
func (s *BreakStmt) statementNode() {}
func (s *BreakStmt) String() string { return "break;" }
func (s *BreakStmt) Accept(v Visitor) interface{} { return v.VisitBreakStmt(s) }

// ContinueStmt is `continue [n];`.
type ContinueStmt struct {
	spanned

	Level Expression `json:"level,omitempty"`
}

func (s *ContinueStmt) Kind() NodeKind { return KindContinueStmt }
func (s *ContinueStmt) statementNode() {}
func (s *ContinueStmt) String() string { return "continue;" }
func (s *ContinueStmt) Accept(v Visitor) interface{} { return v.VisitContinueStmt(s) }

// GotoStmt is `goto label;`.
type GotoStmt struct {
	spanned

	Label string `json:"label"`
}

func (s *GotoStmt) Kind() NodeKind       { return KindGotoStmt }
func (s *GotoStmt) statementNode()       {}
func (s *GotoStmt) String() string       { return "goto " + s.Label + ";" }
func (s *GotoStmt) Accept(v Visitor) interface{} { return v.VisitGotoStmt(s) }

// LabelStmt is `label:`, the target of a GotoStmt.
type LabelStmt struct {
	spanned

	Name string `json:"name"`
}

func (s *LabelStmt) Kind() NodeKind       { return KindLabelStmt }
func (s *LabelStmt) statementNode()       {}
func (s *LabelStmt) String() string       { return s.Name + ":" }
func (s *LabelStmt) Accept(v Visitor) interface{} { return v.VisitLabelStmt(s) }

// EchoStmt is `echo $a, $b, ...;`.
type EchoStmt struct {
	spanned

	Values []Expression `json:"values"`
}

func (s *EchoStmt) Kind() NodeKind { return KindEchoStmt }
func (s *EchoStmt) statementNode() {}
func (s *EchoStmt) String() string {
	parts := make([]string, len(s.Values))
	for i, v := range s.Values {
		parts[i] = v.String()
	}
	return "echo " + strings.Join(parts, ", ") + ";"
}
func (s *EchoStmt) Accept(v Visitor) interface{} { return v.VisitEchoStmt(s) }

// GlobalStmt is `global $a, $b;`.
type GlobalStmt struct {
	spanned

	Vars []string `json:"vars"`
}

func (s *GlobalStmt) Kind() NodeKind { return KindGlobalStmt }
func (s *GlobalStmt) statementNode() {}
func (s *GlobalStmt) String() string { return "global " + strings.Join(s.Vars, ", ") + ";" }
func (s *GlobalStmt) Accept(v Visitor) interface{} { return v.VisitGlobalStmt(s) }

// StaticVarItem is one `$name [= default]` entry of a StaticVarStmt.
type StaticVarItem struct {
	spanned

	Name    string     `json:"name"`
	Default Expression `json:"default,omitempty"`
}

// StaticVarStmt is `static $a = 1, $b;`.
type StaticVarStmt struct {
	spanned

	Items []*StaticVarItem `json:"items"`
}

func (s *StaticVarStmt) Kind() NodeKind { return KindStaticVarStmt }
func (s *StaticVarStmt) statementNode() {}
func (s *StaticVarStmt) String() string { return "static ...;" }
func (s *StaticVarStmt) Accept(v Visitor) interface{} { return v.VisitStaticVarStmt(s) }

// DeclareDirective is one `name=value` entry of a DeclareStmt.
type DeclareDirective struct {
	spanned

	Name  string     `json:"name"`
	Value Expression `json:"value"`
}

// DeclareStmt is `declare(directives) [body];`.
type DeclareStmt struct {
	spanned

	Directives []*DeclareDirective `json:"directives"`
	Body       Statement           `json:"body,omitempty"`
}

func (s *DeclareStmt) Kind() NodeKind { return KindDeclareStmt }
func (s *DeclareStmt) statementNode() {}
func (s *DeclareStmt) String() string { return "declare(...);" }
func (s *DeclareStmt) Accept(v Visitor) interface{} { return v.VisitDeclareStmt(s) }

// UnsetStmt is `unset($a, $b);`.
type UnsetStmt struct {
	spanned

	Vars []Expression `json:"vars"`
}

func (s *UnsetStmt) Kind() NodeKind { return KindUnsetStmt }
func (s *UnsetStmt) statementNode() {}
func (s *UnsetStmt) String() string {
	parts := make([]string, len(s.Vars))
	for i, v := range s.Vars {
		parts[i] = v.String()
	}
	return "unset(" + strings.Join(parts, ", ") + ");"
}
func (s *UnsetStmt) Accept(v Visitor) interface{} { return v.VisitUnsetStmt(s) }

// NamespaceStmt is `namespace Name;` or `namespace Name { ... }`; Name
// is nil for the global-namespace `namespace { ... }` form.
type NamespaceStmt struct {
	spanned

	Name *Name       `json:"name,omitempty"`
	Body []Statement `json:"body,omitempty"` // nil for the semicolon form
}

func (s *NamespaceStmt) Kind() NodeKind { return KindNamespaceStmt }
func (s *NamespaceStmt) statementNode() {}
func (s *NamespaceStmt) String() string {
	if s.Name == nil {
		return "namespace { ... }"
	}
	return "namespace " + s.Name.String() + ";"
}
func (s *NamespaceStmt) Accept(v Visitor) interface{} { return v.VisitNamespaceStmt(s) }

// UseKind distinguishes the three `use` import kinds.
type UseKind int

const (
	UseClass UseKind = iota
	UseFunction
	UseConst
)

func (k UseKind) String() string {
	switch k {
	case UseFunction:
		return "function "
	case UseConst:
		return "const "
	default:
		return ""
	}
}

// UseItem is one imported name, with an optional alias and its own
// kind override for group-use mixed-kind imports.
type UseItem struct {
	spanned

	Name  *Name   `json:"name"`
	Alias string  `json:"alias,omitempty"`
	IKind UseKind `json:"useKind"`
}

// UseStmt is `use A\B as C;` or the grouped `use A\{B, function C};`.
type UseStmt struct {
	spanned

	UKind       UseKind    `json:"useKind"`
	GroupPrefix *Name      `json:"groupPrefix,omitempty"`
	Items       []*UseItem `json:"items"`
}

func (s *UseStmt) Kind() NodeKind { return KindUseStmt }
func (s *UseStmt) statementNode() {}
func (s *UseStmt) String() string {
	parts := make([]string, len(s.Items))
	for i, it := range s.Items {
		if it.Alias != "" {
			parts[i] = it.IKind.String() + it.Name.String() + " as " + it.Alias
		} else {
			parts[i] = it.IKind.String() + it.Name.String()
		}
	}
	return "use " + s.UKind.String() + strings.Join(parts, ", ") + ";"
}
func (s *UseStmt) Accept(v Visitor) interface{} { return v.VisitUseStmt(s) }

// ConstItem is one `NAME = value` entry of a const declaration, either
// top-level or a class constant.
type ConstItem struct {
	spanned

	Name  string     `json:"name"`
	Value Expression `json:"value"`
}

// ConstDecl is a top-level `const A = 1, B = 2;` statement/declaration.
type ConstDecl struct {
	spanned

	Items []*ConstItem `json:"items"`
}

func (d *ConstDecl) Kind() NodeKind   { return KindConstDecl }
func (d *ConstDecl) statementNode()   {}
func (d *ConstDecl) declarationNode() {}
func (d *ConstDecl) String() string {
	parts := make([]string, len(d.Items))
	for i, it := range d.Items {
		parts[i] = it.Name + " = " + it.Value.String()
	}
	return "const " + strings.Join(parts, ", ") + ";"
}
func (d *ConstDecl) Accept(v Visitor) interface{} { return v.VisitConstDecl(d) }

// FunctionDecl is a top-level `function name(params): ReturnType { ... }`.
type FunctionDecl struct {
	spanned

	Name       *Identifier       `json:"name"`
	ByRef      bool              `json:"byRef"`
	Params     []*Param          `json:"params"`
	ReturnType Type              `json:"returnType,omitempty"`
	Body       *BlockStmt        `json:"body"`
	Attributes []*AttributeGroup `json:"attributes,omitempty"`
}

func (d *FunctionDecl) Kind() NodeKind   { return KindFunctionDecl }
func (d *FunctionDecl) statementNode()   {}
func (d *FunctionDecl) declarationNode() {}
func (d *FunctionDecl) String() string {
	parts := make([]string, len(d.Params))
	for i, p := range d.Params {
		parts[i] = p.String()
	}
	ret := ""
	if d.ReturnType != nil {
		ret = ": " + d.ReturnType.String()
	}
	return fmt.Sprintf("function %s(%s)%s %s", d.Name.Name, strings.Join(parts, ", "), ret, d.Body.String())
}
func (d *FunctionDecl) Accept(v Visitor) interface{} { return v.VisitFunctionDecl(d) }

// ClassLikeKind distinguishes class/interface/trait/enum declarations.
type ClassLikeKind int

const (
	ClassLikeClass ClassLikeKind = iota
	ClassLikeInterface
	ClassLikeTrait
	ClassLikeEnum
)

func (k ClassLikeKind) String() string {
	switch k {
	case ClassLikeInterface:
		return "interface"
	case ClassLikeTrait:
		return "trait"
	case ClassLikeEnum:
		return "enum"
	default:
		return "class"
	}
}

// ClassLike is a `class`, `interface`, `trait`, or `enum` declaration.
type ClassLike struct {
	spanned

	CKind           ClassLikeKind     `json:"classKind"`
	Name            *Identifier       `json:"name"`
	Modifiers       ModifierSet       `json:"modifiers,omitempty"`
	Extends         []*Name           `json:"extends,omitempty"` // 0 or 1 for class, 0+ for interface
	Implements      []*Name           `json:"implements,omitempty"`
	EnumBackingType Type              `json:"enumBackingType,omitempty"`
	Members         []Declaration     `json:"members"`
	Attributes      []*AttributeGroup `json:"attributes,omitempty"`
}

func (d *ClassLike) Kind() NodeKind   { return KindClassLike }
func (d *ClassLike) statementNode()   {}
func (d *ClassLike) declarationNode() {}
func (d *ClassLike) String() string {
	return fmt.Sprintf("%s %s { ... }", d.CKind.String(), d.Name.Name)
}
func (d *ClassLike) Accept(v Visitor) interface{} { return v.VisitClassLike(d) }

// ClassConstDecl is a class-member `[modifiers] const [Type] A = 1, B = 2;`.
type ClassConstDecl struct {
	spanned

	Modifiers  ModifierSet       `json:"modifiers,omitempty"`
	CType      Type              `json:"type,omitempty"`
	Items      []*ConstItem      `json:"items"`
	Attributes []*AttributeGroup `json:"attributes,omitempty"`
}

func (d *ClassConstDecl) Kind() NodeKind   { return KindClassConstDecl }
func (d *ClassConstDecl) declarationNode() {}
func (d *ClassConstDecl) String() string   { return "const ...;" }
func (d *ClassConstDecl) Accept(v Visitor) interface{} { return v.VisitClassConstDecl(d) }

// PropertyItem is one `$name [= default]` entry of a PropertyDecl.
type PropertyItem struct {
	spanned

	Name    string     `json:"name"`
	Default Expression `json:"default,omitempty"`
}

// PropertyDecl is a class-member `[modifiers] [Type] $a = 1, $b;`.
type PropertyDecl struct {
	spanned

	Modifiers  ModifierSet       `json:"modifiers,omitempty"`
	PType      Type              `json:"type,omitempty"`
	Items      []*PropertyItem   `json:"items"`
	Attributes []*AttributeGroup `json:"attributes,omitempty"`
}

func (d *PropertyDecl) Kind() NodeKind   { return KindPropertyDecl }
func (d *PropertyDecl) declarationNode() {}
func (d *PropertyDecl) String() string   { return "property ...;" }
func (d *PropertyDecl) Accept(v Visitor) interface{} { return v.VisitPropertyDecl(d) }

// MethodDecl is a class-member method; Body is nil for abstract
// methods and interface method signatures.
type MethodDecl struct {
	spanned

	Modifiers  ModifierSet       `json:"modifiers,omitempty"`
	Name       *Identifier       `json:"name"`
	ByRef      bool              `json:"byRef"`
	Params     []*Param          `json:"params"`
	ReturnType Type              `json:"returnType,omitempty"`
	Body       *BlockStmt        `json:"body,omitempty"`
	Attributes []*AttributeGroup `json:"attributes,omitempty"`
}

func (d *MethodDecl) Kind() NodeKind   { return KindMethodDecl }
func (d *MethodDecl) declarationNode() {}
func (d *MethodDecl) String() string {
	body := ";"
	if d.Body != nil {
		body = " " + d.Body.String()
	}
	return fmt.Sprintf("function %s(...)%s", d.Name.Name, body)
}
func (d *MethodDecl) Accept(v Visitor) interface{} { return v.VisitMethodDecl(d) }

// EnumCaseDecl is `case Name [= value];`.
type EnumCaseDecl struct {
	spanned

	Name       string            `json:"name"`
	Value      Expression        `json:"value,omitempty"`
	Attributes []*AttributeGroup `json:"attributes,omitempty"`
}

func (d *EnumCaseDecl) Kind() NodeKind   { return KindEnumCaseDecl }
func (d *EnumCaseDecl) declarationNode() {}
func (d *EnumCaseDecl) String() string   { return "case " + d.Name + ";" }
func (d *EnumCaseDecl) Accept(v Visitor) interface{} { return v.VisitEnumCaseDecl(d) }

// TraitAdaptation is either a *TraitPrecedence or a *TraitAlias rule
// inside a `use Trait { ... }` adaptation block.
type TraitAdaptation interface {
	Node
	traitAdaptationNode()
}

// TraitPrecedence is `Trait::method insteadof Other, Other2;`.
type TraitPrecedence struct {
	spanned

	Trait     *Name   `json:"trait"`
	Method    string  `json:"method"`
	InsteadOf []*Name `json:"insteadOf"`
}

func (t *TraitPrecedence) Kind() NodeKind          { return KindTraitPrecedence }
func (t *TraitPrecedence) traitAdaptationNode()    {}
func (t *TraitPrecedence) String() string          { return t.Trait.String() + "::" + t.Method + " insteadof ...;" }
func (t *TraitPrecedence) Accept(v Visitor) interface{} { return v.VisitTraitPrecedence(t) }

// TraitAlias is `[Trait::]method as [modifier] [alias];`.
type TraitAlias struct {
	spanned

	Trait       *Name    `json:"trait,omitempty"`
	Method      string   `json:"method"`
	NewModifier Modifier `json:"newModifier,omitempty"`
	HasModifier bool     `json:"hasModifier,omitempty"`
	NewName     string   `json:"newName,omitempty"`
}

func (t *TraitAlias) Kind() NodeKind          { return KindTraitAlias }
func (t *TraitAlias) traitAdaptationNode()    {}
func (t *TraitAlias) String() string          { return t.Method + " as ...;" }
func (t *TraitAlias) Accept(v Visitor) interface{} { return v.VisitTraitAlias(t) }

// TraitUseDecl is `use Trait1, Trait2 [{ adaptations... }];`.
type TraitUseDecl struct {
	spanned

	Traits      []*Name           `json:"traits"`
	Adaptations []TraitAdaptation `json:"adaptations,omitempty"`
}

func (d *TraitUseDecl) Kind() NodeKind   { return KindTraitUseDecl }
func (d *TraitUseDecl) declarationNode() {}
func (d *TraitUseDecl) String() string {
	parts := make([]string, len(d.Traits))
	for i, t := range d.Traits {
		parts[i] = t.String()
	}
	return "use " + strings.Join(parts, ", ") + ";"
}
func (d *TraitUseDecl) Accept(v Visitor) interface{} { return v.VisitTraitUseDecl(d) }
