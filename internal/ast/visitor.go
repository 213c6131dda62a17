package ast

// NodeKind discriminates concrete node types without a type switch,
// letting cmd/phpschema and other consumers key off a stable tag when
// emitting or matching on node shape.
type NodeKind int

const (
	KindProgram NodeKind = iota
	KindMissing
	KindIdentifier
	KindName
	KindAttribute
	KindAttributeGroup

	KindNamedType
	KindNullableType
	KindUnionType
	KindIntersectionType
	KindParenthesizedType

	KindIntLiteral
	KindFloatLiteral
	KindStringLiteral
	KindInterpolatedString
	KindVariable
	KindArrayExpr
	KindListExpr
	KindNewExpr
	KindAnonClassExpr
	KindCloneExpr
	KindInstanceofExpr
	KindIncludeExpr
	KindAssignExpr
	KindBinaryExpr
	KindUnaryExpr
	KindTernaryExpr
	KindNullCoalesceExpr
	KindCastExpr
	KindErrorSuppressExpr
	KindParam
	KindClosureExpr
	KindArrowFnExpr
	KindCallExpr
	KindMethodCallExpr
	KindStaticCallExpr
	KindPropertyFetchExpr
	KindStaticPropertyFetchExpr
	KindClassConstFetchExpr
	KindConstFetchExpr
	KindIndexExpr
	KindYieldExpr
	KindYieldFromExpr
	KindMatchExpr
	KindPrintExpr
	KindThrowExpr

	KindBlockStmt
	KindExprStmt
	KindInlineHTMLStmt
	KindIfStmt
	KindWhileStmt
	KindDoWhileStmt
	KindForStmt
	KindForeachStmt
	KindSwitchStmt
	KindTryStmt
	KindReturnStmt
	KindThrowStmt
	KindBreakStmt
	KindContinueStmt
	KindGotoStmt
	KindLabelStmt
	KindEchoStmt
	KindGlobalStmt
	KindStaticVarStmt
	KindDeclareStmt
	KindUnsetStmt
	KindNamespaceStmt
	KindUseStmt

	KindConstDecl
	KindFunctionDecl
	KindClassLike
	KindClassConstDecl
	KindPropertyDecl
	KindMethodDecl
	KindEnumCaseDecl
	KindTraitPrecedence
	KindTraitAlias
	KindTraitUseDecl
)

var nodeKindNames = map[NodeKind]string{
	KindProgram:        "Program",
	KindMissing:        "Missing",
	KindIdentifier:     "Identifier",
	KindName:           "Name",
	KindAttribute:      "Attribute",
	KindAttributeGroup: "AttributeGroup",

	KindNamedType:          "NamedType",
	KindNullableType:       "NullableType",
	KindUnionType:          "UnionType",
	KindIntersectionType:   "IntersectionType",
	KindParenthesizedType:  "ParenthesizedType",

	KindIntLiteral:              "IntLiteral",
	KindFloatLiteral:            "FloatLiteral",
	KindStringLiteral:           "StringLiteral",
	KindInterpolatedString:      "InterpolatedString",
	KindVariable:                "Variable",
	KindArrayExpr:               "ArrayExpr",
	KindListExpr:                "ListExpr",
	KindNewExpr:                 "NewExpr",
	KindAnonClassExpr:           "AnonClassExpr",
	KindCloneExpr:               "CloneExpr",
	KindInstanceofExpr:          "InstanceofExpr",
	KindIncludeExpr:             "IncludeExpr",
	KindAssignExpr:              "AssignExpr",
	KindBinaryExpr:              "BinaryExpr",
	KindUnaryExpr:               "UnaryExpr",
	KindTernaryExpr:             "TernaryExpr",
	KindNullCoalesceExpr:        "NullCoalesceExpr",
	KindCastExpr:                "CastExpr",
	KindErrorSuppressExpr:       "ErrorSuppressExpr",
	KindParam:                   "Param",
	KindClosureExpr:             "ClosureExpr",
	KindArrowFnExpr:             "ArrowFnExpr",
	KindCallExpr:                "CallExpr",
	KindMethodCallExpr:          "MethodCallExpr",
	KindStaticCallExpr:          "StaticCallExpr",
	KindPropertyFetchExpr:       "PropertyFetchExpr",
	KindStaticPropertyFetchExpr: "StaticPropertyFetchExpr",
	KindClassConstFetchExpr:     "ClassConstFetchExpr",
	KindConstFetchExpr:          "ConstFetchExpr",
	KindIndexExpr:               "IndexExpr",
	KindYieldExpr:               "YieldExpr",
	KindYieldFromExpr:           "YieldFromExpr",
	KindMatchExpr:               "MatchExpr",
	KindPrintExpr:               "PrintExpr",
	KindThrowExpr:               "ThrowExpr",

	KindBlockStmt:      "BlockStmt",
	KindExprStmt:       "ExprStmt",
	KindInlineHTMLStmt: "InlineHTMLStmt",
	KindIfStmt:         "IfStmt",
	KindWhileStmt:      "WhileStmt",
	KindDoWhileStmt:    "DoWhileStmt",
	KindForStmt:        "ForStmt",
	KindForeachStmt:    "ForeachStmt",
	KindSwitchStmt:     "SwitchStmt",
	KindTryStmt:        "TryStmt",
	KindReturnStmt:     "ReturnStmt",
	KindThrowStmt:      "ThrowStmt",
	KindBreakStmt:      "BreakStmt",
	KindContinueStmt:   "ContinueStmt",
	KindGotoStmt:       "GotoStmt",
	KindLabelStmt:      "LabelStmt",
	KindEchoStmt:       "EchoStmt",
	KindGlobalStmt:     "GlobalStmt",
	KindStaticVarStmt:  "StaticVarStmt",
	KindDeclareStmt:    "DeclareStmt",
	KindUnsetStmt:      "UnsetStmt",
	KindNamespaceStmt:  "NamespaceStmt",
	KindUseStmt:        "UseStmt",

	KindConstDecl:       "ConstDecl",
	KindFunctionDecl:    "FunctionDecl",
	KindClassLike:       "ClassLike",
	KindClassConstDecl:  "ClassConstDecl",
	KindPropertyDecl:    "PropertyDecl",
	KindMethodDecl:      "MethodDecl",
	KindEnumCaseDecl:    "EnumCaseDecl",
	KindTraitPrecedence: "TraitPrecedence",
	KindTraitAlias:      "TraitAlias",
	KindTraitUseDecl:    "TraitUseDecl",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Visitor is implemented by every AST consumer that needs a
// type-specific callback per node kind, following the open/closed
// principle: new passes are added as new Visitor implementations
// rather than by editing the node types themselves.
type Visitor interface {
	VisitProgram(node *Program) interface{}
	VisitMissing(node *Missing) interface{}
	VisitIdentifier(node *Identifier) interface{}
	VisitName(node *Name) interface{}
	VisitAttribute(node *Attribute) interface{}
	VisitAttributeGroup(node *AttributeGroup) interface{}

	VisitNamedType(node *NamedType) interface{}
	VisitNullableType(node *NullableType) interface{}
	VisitUnionType(node *UnionType) interface{}
	VisitIntersectionType(node *IntersectionType) interface{}
	VisitParenthesizedType(node *ParenthesizedType) interface{}

	VisitIntLiteral(node *IntLiteral) interface{}
	VisitFloatLiteral(node *FloatLiteral) interface{}
	VisitStringLiteral(node *StringLiteral) interface{}
	VisitInterpolatedString(node *InterpolatedString) interface{}
	VisitVariable(node *Variable) interface{}
	VisitArrayExpr(node *ArrayExpr) interface{}
	VisitListExpr(node *ListExpr) interface{}
	VisitNewExpr(node *NewExpr) interface{}
	VisitAnonClassExpr(node *AnonClassExpr) interface{}
	VisitCloneExpr(node *CloneExpr) interface{}
	VisitInstanceofExpr(node *InstanceofExpr) interface{}
	VisitIncludeExpr(node *IncludeExpr) interface{}
	VisitAssignExpr(node *AssignExpr) interface{}
	VisitBinaryExpr(node *BinaryExpr) interface{}
	VisitUnaryExpr(node *UnaryExpr) interface{}
	VisitTernaryExpr(node *TernaryExpr) interface{}
	VisitNullCoalesceExpr(node *NullCoalesceExpr) interface{}
	VisitCastExpr(node *CastExpr) interface{}
	VisitErrorSuppressExpr(node *ErrorSuppressExpr) interface{}
	VisitParam(node *Param) interface{}
	VisitClosureExpr(node *ClosureExpr) interface{}
	VisitArrowFnExpr(node *ArrowFnExpr) interface{}
	VisitCallExpr(node *CallExpr) interface{}
	VisitMethodCallExpr(node *MethodCallExpr) interface{}
	VisitStaticCallExpr(node *StaticCallExpr) interface{}
	VisitPropertyFetchExpr(node *PropertyFetchExpr) interface{}
	VisitStaticPropertyFetchExpr(node *StaticPropertyFetchExpr) interface{}
	VisitClassConstFetchExpr(node *ClassConstFetchExpr) interface{}
	VisitConstFetchExpr(node *ConstFetchExpr) interface{}
	VisitIndexExpr(node *IndexExpr) interface{}
	VisitYieldExpr(node *YieldExpr) interface{}
	VisitYieldFromExpr(node *YieldFromExpr) interface{}
	VisitMatchExpr(node *MatchExpr) interface{}
	VisitPrintExpr(node *PrintExpr) interface{}
	VisitThrowExpr(node *ThrowExpr) interface{}

	VisitBlockStmt(node *BlockStmt) interface{}
	VisitExprStmt(node *ExprStmt) interface{}
	VisitInlineHTMLStmt(node *InlineHTMLStmt) interface{}
	VisitIfStmt(node *IfStmt) interface{}
	VisitWhileStmt(node *WhileStmt) interface{}
	VisitDoWhileStmt(node *DoWhileStmt) interface{}
	VisitForStmt(node *ForStmt) interface{}
	VisitForeachStmt(node *ForeachStmt) interface{}
	VisitSwitchStmt(node *SwitchStmt) interface{}
	VisitTryStmt(node *TryStmt) interface{}
	VisitReturnStmt(node *ReturnStmt) interface{}
	VisitThrowStmt(node *ThrowStmt) interface{}
	VisitBreakStmt(node *BreakStmt) interface{}
	VisitContinueStmt(node *ContinueStmt) interface{}
	VisitGotoStmt(node *GotoStmt) interface{}
	VisitLabelStmt(node *LabelStmt) interface{}
	VisitEchoStmt(node *EchoStmt) interface{}
	VisitGlobalStmt(node *GlobalStmt) interface{}
	VisitStaticVarStmt(node *StaticVarStmt) interface{}
	VisitDeclareStmt(node *DeclareStmt) interface{}
	VisitUnsetStmt(node *UnsetStmt) interface{}
	VisitNamespaceStmt(node *NamespaceStmt) interface{}
	VisitUseStmt(node *UseStmt) interface{}

	VisitConstDecl(node *ConstDecl) interface{}
	VisitFunctionDecl(node *FunctionDecl) interface{}
	VisitClassLike(node *ClassLike) interface{}
	VisitClassConstDecl(node *ClassConstDecl) interface{}
	VisitPropertyDecl(node *PropertyDecl) interface{}
	VisitMethodDecl(node *MethodDecl) interface{}
	VisitEnumCaseDecl(node *EnumCaseDecl) interface{}
	VisitTraitPrecedence(node *TraitPrecedence) interface{}
	VisitTraitAlias(node *TraitAlias) interface{}
	VisitTraitUseDecl(node *TraitUseDecl) interface{}
}

// BaseVisitor implements Visitor by returning nil from every method,
// so a concrete visitor can embed it and override only the node kinds
// it cares about.
type BaseVisitor struct{}

func (v *BaseVisitor) VisitProgram(node *Program) interface{}               { return nil }
func (v *BaseVisitor) VisitMissing(node *Missing) interface{}               { return nil }
func (v *BaseVisitor) VisitIdentifier(node *Identifier) interface{}         { return nil }
func (v *BaseVisitor) VisitName(node *Name) interface{}                     { return nil }
func (v *BaseVisitor) VisitAttribute(node *Attribute) interface{}           { return nil }
func (v *BaseVisitor) VisitAttributeGroup(node *AttributeGroup) interface{} { return nil }

func (v *BaseVisitor) VisitNamedType(node *NamedType) interface{}                 { return nil }
func (v *BaseVisitor) VisitNullableType(node *NullableType) interface{}           { return nil }
func (v *BaseVisitor) VisitUnionType(node *UnionType) interface{}                 { return nil }
func (v *BaseVisitor) VisitIntersectionType(node *IntersectionType) interface{}   { return nil }
func (v *BaseVisitor) VisitParenthesizedType(node *ParenthesizedType) interface{} { return nil }

func (v *BaseVisitor) VisitIntLiteral(node *IntLiteral) interface{}                 { return nil }
func (v *BaseVisitor) VisitFloatLiteral(node *FloatLiteral) interface{}             { return nil }
func (v *BaseVisitor) VisitStringLiteral(node *StringLiteral) interface{}           { return nil }
func (v *BaseVisitor) VisitInterpolatedString(node *InterpolatedString) interface{} { return nil }
func (v *BaseVisitor) VisitVariable(node *Variable) interface{}                     { return nil }
func (v *BaseVisitor) VisitArrayExpr(node *ArrayExpr) interface{}                   { return nil }
func (v *BaseVisitor) VisitListExpr(node *ListExpr) interface{}                     { return nil }
func (v *BaseVisitor) VisitNewExpr(node *NewExpr) interface{}                       { return nil }
func (v *BaseVisitor) VisitAnonClassExpr(node *AnonClassExpr) interface{}           { return nil }
func (v *BaseVisitor) VisitCloneExpr(node *CloneExpr) interface{}                   { return nil }
func (v *BaseVisitor) VisitInstanceofExpr(node *InstanceofExpr) interface{}         { return nil }
func (v *BaseVisitor) VisitIncludeExpr(node *IncludeExpr) interface{}               { return nil }
func (v *BaseVisitor) VisitAssignExpr(node *AssignExpr) interface{}                 { return nil }
func (v *BaseVisitor) VisitBinaryExpr(node *BinaryExpr) interface{}                 { return nil }
func (v *BaseVisitor) VisitUnaryExpr(node *UnaryExpr) interface{}                   { return nil }
func (v *BaseVisitor) VisitTernaryExpr(node *TernaryExpr) interface{}               { return nil }
func (v *BaseVisitor) VisitNullCoalesceExpr(node *NullCoalesceExpr) interface{}     { return nil }
func (v *BaseVisitor) VisitCastExpr(node *CastExpr) interface{}                     { return nil }
func (v *BaseVisitor) VisitErrorSuppressExpr(node *ErrorSuppressExpr) interface{}   { return nil }
func (v *BaseVisitor) VisitParam(node *Param) interface{}                           { return nil }
func (v *BaseVisitor) VisitClosureExpr(node *ClosureExpr) interface{}               { return nil }
func (v *BaseVisitor) VisitArrowFnExpr(node *ArrowFnExpr) interface{}               { return nil }
func (v *BaseVisitor) VisitCallExpr(node *CallExpr) interface{}                     { return nil }
func (v *BaseVisitor) VisitMethodCallExpr(node *MethodCallExpr) interface{}         { return nil }
func (v *BaseVisitor) VisitStaticCallExpr(node *StaticCallExpr) interface{}         { return nil }
func (v *BaseVisitor) VisitPropertyFetchExpr(node *PropertyFetchExpr) interface{}   { return nil }
func (v *BaseVisitor) VisitStaticPropertyFetchExpr(node *StaticPropertyFetchExpr) interface{} {
	return nil
}
func (v *BaseVisitor) VisitClassConstFetchExpr(node *ClassConstFetchExpr) interface{} { return nil }
func (v *BaseVisitor) VisitConstFetchExpr(node *ConstFetchExpr) interface{}           { return nil }
func (v *BaseVisitor) VisitIndexExpr(node *IndexExpr) interface{}                     { return nil }
func (v *BaseVisitor) VisitYieldExpr(node *YieldExpr) interface{}                     { return nil }
func (v *BaseVisitor) VisitYieldFromExpr(node *YieldFromExpr) interface{}             { return nil }
func (v *BaseVisitor) VisitMatchExpr(node *MatchExpr) interface{}                     { return nil }
func (v *BaseVisitor) VisitPrintExpr(node *PrintExpr) interface{}                     { return nil }
func (v *BaseVisitor) VisitThrowExpr(node *ThrowExpr) interface{}                     { return nil }

func (v *BaseVisitor) VisitBlockStmt(node *BlockStmt) interface{}           { return nil }
func (v *BaseVisitor) VisitExprStmt(node *ExprStmt) interface{}             { return nil }
func (v *BaseVisitor) VisitInlineHTMLStmt(node *InlineHTMLStmt) interface{} { return nil }
func (v *BaseVisitor) VisitIfStmt(node *IfStmt) interface{}                 { return nil }
func (v *BaseVisitor) VisitWhileStmt(node *WhileStmt) interface{}           { return nil }
func (v *BaseVisitor) VisitDoWhileStmt(node *DoWhileStmt) interface{}       { return nil }
func (v *BaseVisitor) VisitForStmt(node *ForStmt) interface{}               { return nil }
func (v *BaseVisitor) VisitForeachStmt(node *ForeachStmt) interface{}       { return nil }
func (v *BaseVisitor) VisitSwitchStmt(node *SwitchStmt) interface{}         { return nil }
func (v *BaseVisitor) VisitTryStmt(node *TryStmt) interface{}               { return nil }
func (v *BaseVisitor) VisitReturnStmt(node *ReturnStmt) interface{}         { return nil }
func (v *BaseVisitor) VisitThrowStmt(node *ThrowStmt) interface{}           { return nil }
func (v *BaseVisitor) VisitBreakStmt(node *BreakStmt) interface{}           { return nil }
func (v *BaseVisitor) VisitContinueStmt(node *ContinueStmt) interface{}     { return nil }
func (v *BaseVisitor) VisitGotoStmt(node *GotoStmt) interface{}             { return nil }
func (v *BaseVisitor) VisitLabelStmt(node *LabelStmt) interface{}           { return nil }
func (v *BaseVisitor) VisitEchoStmt(node *EchoStmt) interface{}             { return nil }
func (v *BaseVisitor) VisitGlobalStmt(node *GlobalStmt) interface{}         { return nil }
func (v *BaseVisitor) VisitStaticVarStmt(node *StaticVarStmt) interface{}   { return nil }
func (v *BaseVisitor) VisitDeclareStmt(node *DeclareStmt) interface{}       { return nil }
func (v *BaseVisitor) VisitUnsetStmt(node *UnsetStmt) interface{}           { return nil }
func (v *BaseVisitor) VisitNamespaceStmt(node *NamespaceStmt) interface{}   { return nil }
func (v *BaseVisitor) VisitUseStmt(node *UseStmt) interface{}               { return nil }

func (v *BaseVisitor) VisitConstDecl(node *ConstDecl) interface{}             { return nil }
func (v *BaseVisitor) VisitFunctionDecl(node *FunctionDecl) interface{}       { return nil }
func (v *BaseVisitor) VisitClassLike(node *ClassLike) interface{}             { return nil }
func (v *BaseVisitor) VisitClassConstDecl(node *ClassConstDecl) interface{}   { return nil }
func (v *BaseVisitor) VisitPropertyDecl(node *PropertyDecl) interface{}       { return nil }
func (v *BaseVisitor) VisitMethodDecl(node *MethodDecl) interface{}           { return nil }
func (v *BaseVisitor) VisitEnumCaseDecl(node *EnumCaseDecl) interface{}       { return nil }
func (v *BaseVisitor) VisitTraitPrecedence(node *TraitPrecedence) interface{} { return nil }
func (v *BaseVisitor) VisitTraitAlias(node *TraitAlias) interface{}           { return nil }
func (v *BaseVisitor) VisitTraitUseDecl(node *TraitUseDecl) interface{}       { return nil }

// WalkingVisitor recursively walks the tree, delegating each visited
// node to an inner Visitor, so a caller can implement only the node
// kinds it cares about. Only the kinds WalkingVisitor overrides below
// (program, block and control-flow statements, return, binary/unary/
// assignment/call expressions, function and class-like declarations)
// are passed to inner and descended into; every other kind, including
// class members, parameters, types, and attributes, is neither passed
// to inner nor descended into.
type WalkingVisitor struct {
	BaseVisitor

	inner Visitor
}

// NewWalkingVisitor builds a WalkingVisitor that dispatches each node
// of a kind it overrides to inner before descending into its children.
func NewWalkingVisitor(inner Visitor) *WalkingVisitor {
	return &WalkingVisitor{inner: inner}
}

// Walk visits node and then its children, in source order.
func (w *WalkingVisitor) Walk(node Node) interface{} {
	if node == nil {
		return nil
	}
	return node.Accept(w)
}

func (w *WalkingVisitor) walkAll(nodes []Statement) {
	for _, n := range nodes {
		w.Walk(n)
	}
}

func (w *WalkingVisitor) VisitProgram(node *Program) interface{} {
	w.inner.VisitProgram(node)
	w.walkAll(node.Statements)
	return nil
}

func (w *WalkingVisitor) VisitBlockStmt(node *BlockStmt) interface{} {
	w.inner.VisitBlockStmt(node)
	w.walkAll(node.Statements)
	return nil
}

func (w *WalkingVisitor) VisitExprStmt(node *ExprStmt) interface{} {
	w.inner.VisitExprStmt(node)
	w.Walk(node.Value)
	return nil
}

func (w *WalkingVisitor) VisitIfStmt(node *IfStmt) interface{} {
	w.inner.VisitIfStmt(node)
	w.Walk(node.Cond)
	w.Walk(node.Then)
	for _, e := range node.ElseIfs {
		w.Walk(e.Cond)
		w.Walk(e.Body)
	}
	w.Walk(node.Else)
	return nil
}

func (w *WalkingVisitor) VisitWhileStmt(node *WhileStmt) interface{} {
	w.inner.VisitWhileStmt(node)
	w.Walk(node.Cond)
	w.Walk(node.Body)
	return nil
}

func (w *WalkingVisitor) VisitDoWhileStmt(node *DoWhileStmt) interface{} {
	w.inner.VisitDoWhileStmt(node)
	w.Walk(node.Body)
	w.Walk(node.Cond)
	return nil
}

func (w *WalkingVisitor) VisitForStmt(node *ForStmt) interface{} {
	w.inner.VisitForStmt(node)
	for _, e := range node.Init {
		w.Walk(e)
	}
	for _, e := range node.Cond {
		w.Walk(e)
	}
	for _, e := range node.Loop {
		w.Walk(e)
	}
	w.Walk(node.Body)
	return nil
}

func (w *WalkingVisitor) VisitForeachStmt(node *ForeachStmt) interface{} {
	w.inner.VisitForeachStmt(node)
	w.Walk(node.Expr)
	w.Walk(node.KeyVar)
	w.Walk(node.ValueVar)
	w.Walk(node.Body)
	return nil
}

func (w *WalkingVisitor) VisitSwitchStmt(node *SwitchStmt) interface{} {
	w.inner.VisitSwitchStmt(node)
	w.Walk(node.Subject)
	for _, c := range node.Cases {
		w.Walk(c.Test)
		w.walkAll(c.Body)
	}
	return nil
}

func (w *WalkingVisitor) VisitTryStmt(node *TryStmt) interface{} {
	w.inner.VisitTryStmt(node)
	w.Walk(node.Body)
	for _, c := range node.Catches {
		w.Walk(c.Body)
	}
	w.Walk(node.Finally)
	return nil
}

func (w *WalkingVisitor) VisitReturnStmt(node *ReturnStmt) interface{} {
	w.inner.VisitReturnStmt(node)
	w.Walk(node.Value)
	return nil
}

func (w *WalkingVisitor) VisitBinaryExpr(node *BinaryExpr) interface{} {
	w.inner.VisitBinaryExpr(node)
	w.Walk(node.Left)
	w.Walk(node.Right)
	return nil
}

func (w *WalkingVisitor) VisitUnaryExpr(node *UnaryExpr) interface{} {
	w.inner.VisitUnaryExpr(node)
	w.Walk(node.Operand)
	return nil
}

func (w *WalkingVisitor) VisitAssignExpr(node *AssignExpr) interface{} {
	w.inner.VisitAssignExpr(node)
	w.Walk(node.Target)
	w.Walk(node.Value)
	return nil
}

func (w *WalkingVisitor) VisitCallExpr(node *CallExpr) interface{} {
	w.inner.VisitCallExpr(node)
	w.Walk(node.Callee)
	for _, a := range node.Args {
		w.Walk(a.Value)
	}
	return nil
}

func (w *WalkingVisitor) VisitFunctionDecl(node *FunctionDecl) interface{} {
	w.inner.VisitFunctionDecl(node)
	for _, p := range node.Params {
		w.Walk(p.Default)
	}
	w.Walk(node.Body)
	return nil
}

func (w *WalkingVisitor) VisitClassLike(node *ClassLike) interface{} {
	w.inner.VisitClassLike(node)
	for _, m := range node.Members {
		w.Walk(m)
	}
	return nil
}

// every remaining node kind falls through to BaseVisitor's no-op
// method: Walk neither passes it to inner nor descends into it.
