package phpversion

import (
	"strings"

	"github.com/orizon-lang/phpfront/internal/ast"
	"github.com/orizon-lang/phpfront/internal/source"
)

// Usage records one occurrence of a version-gated feature in a parsed
// program, for a caller to compare against a Constraint.
type Usage struct {
	Feature Feature
	Span    source.Span
}

// Detect walks a parsed program and returns every version-gated
// feature usage it finds. It performs its own traversal rather than
// riding ast.WalkingVisitor: the latter's descent (see internal/ast's
// own doc comment on the topic) deliberately stops at the class-member
// and parameter level, which is exactly where most of these features
// live.
func Detect(prog *ast.Program) []Usage {
	d := &detector{}
	d.walkStmts(prog.Statements)
	return d.usages
}

type detector struct {
	usages []Usage
}

func (d *detector) add(f Feature, span source.Span) {
	d.usages = append(d.usages, Usage{Feature: f, Span: span})
}

func (d *detector) walkStmts(stmts []ast.Statement) {
	for _, s := range stmts {
		d.walkStmt(s)
	}
}

func (d *detector) walkStmt(s ast.Statement) {
	switch n := s.(type) {
	case nil:
	case *ast.BlockStmt:
		d.walkStmts(n.Statements)
	case *ast.ExprStmt:
		d.walkExpr(n.Value)
	case *ast.IfStmt:
		d.walkExpr(n.Cond)
		d.walkStmt(n.Then)
		for _, e := range n.ElseIfs {
			d.walkExpr(e.Cond)
			d.walkStmt(e.Body)
		}
		if n.Else != nil {
			d.walkStmt(n.Else)
		}
	case *ast.WhileStmt:
		d.walkExpr(n.Cond)
		d.walkStmt(n.Body)
	case *ast.DoWhileStmt:
		d.walkStmt(n.Body)
		d.walkExpr(n.Cond)
	case *ast.ForStmt:
		for _, e := range n.Init {
			d.walkExpr(e)
		}
		for _, e := range n.Cond {
			d.walkExpr(e)
		}
		for _, e := range n.Loop {
			d.walkExpr(e)
		}
		d.walkStmt(n.Body)
	case *ast.ForeachStmt:
		d.walkExpr(n.Expr)
		if n.KeyVar != nil {
			d.walkExpr(n.KeyVar)
		}
		d.walkExpr(n.ValueVar)
		d.walkStmt(n.Body)
	case *ast.SwitchStmt:
		d.walkExpr(n.Subject)
		for _, c := range n.Cases {
			if c.Test != nil {
				d.walkExpr(c.Test)
			}
			d.walkStmts(c.Body)
		}
	case *ast.TryStmt:
		d.walkStmt(n.Body)
		for _, c := range n.Catches {
			d.walkStmt(c.Body)
		}
		if n.Finally != nil {
			d.walkStmt(n.Finally)
		}
	case *ast.ReturnStmt:
		if n.Value != nil {
			d.walkExpr(n.Value)
		}
	case *ast.ThrowStmt:
		d.walkExpr(n.Value)
	case *ast.EchoStmt:
		for _, v := range n.Values {
			d.walkExpr(v)
		}
	case *ast.ConstDecl:
		for _, it := range n.Items {
			d.walkExpr(it.Value)
		}
	case *ast.FunctionDecl:
		d.walkAttrs(n.Attributes)
		d.walkParams(n.Params)
		d.walkType(n.ReturnType)
		if n.Body != nil {
			d.walkStmt(n.Body)
		}
	case *ast.ClassLike:
		d.walkAttrs(n.Attributes)
		if n.CKind == ast.ClassLikeEnum {
			d.add(FeatureEnums, n.GetSpan())
		}
		if n.Modifiers.Has(ast.ModReadonly) {
			d.add(FeatureReadonlyClasses, n.GetSpan())
		}
		if n.EnumBackingType != nil {
			d.walkType(n.EnumBackingType)
		}
		for _, m := range n.Members {
			d.walkDecl(m)
		}
	case *ast.NamespaceStmt:
		d.walkStmts(n.Body)
	case *ast.DeclareStmt:
		d.walkStmt(n.Body)
	default:
		// StaticVarStmt, GlobalStmt, UnsetStmt, UseStmt,
		// Break/Continue/Goto/Label,
		// InlineHTMLStmt, Missing: no version-gated syntax of their
		// own to report.
	}
}

func (d *detector) walkDecl(decl ast.Declaration) {
	switch n := decl.(type) {
	case *ast.ClassConstDecl:
		d.walkAttrs(n.Attributes)
		if n.CType != nil {
			d.walkType(n.CType)
		}
		for _, it := range n.Items {
			d.walkExpr(it.Value)
		}
	case *ast.PropertyDecl:
		d.walkAttrs(n.Attributes)
		if n.Modifiers.Has(ast.ModReadonly) {
			d.add(FeatureReadonlyProperties, n.GetSpan())
		}
		if n.PType != nil {
			d.walkType(n.PType)
		}
		for _, it := range n.Items {
			if it.Default != nil {
				d.walkExpr(it.Default)
			}
		}
	case *ast.MethodDecl:
		d.walkAttrs(n.Attributes)
		d.walkParams(n.Params)
		d.walkType(n.ReturnType)
		if n.Body != nil {
			d.walkStmt(n.Body)
		}
	case *ast.EnumCaseDecl:
		d.walkAttrs(n.Attributes)
		if n.Value != nil {
			d.walkExpr(n.Value)
		}
	case *ast.FunctionDecl:
		d.walkStmt(n)
	case *ast.ClassLike:
		d.walkStmt(n)
	case *ast.TraitUseDecl:
		// trait adaptations carry no version-gated syntax of their own.
	}
}

func (d *detector) walkParams(params []*ast.Param) {
	for _, p := range params {
		d.walkAttrs(p.Attributes)
		if len(p.PromotedMods.Items) > 0 {
			d.add(FeatureConstructorPromotion, p.GetSpan())
			if p.PromotedMods.Has(ast.ModReadonly) {
				d.add(FeatureReadonlyProperties, p.GetSpan())
			}
		}
		if p.PType != nil {
			d.walkType(p.PType)
		}
		if p.Default != nil {
			d.walkExpr(p.Default)
		}
	}
}

func (d *detector) walkAttrs(groups []*ast.AttributeGroup) {
	if len(groups) > 0 {
		d.add(FeatureAttributes, groups[0].GetSpan())
	}
}

func (d *detector) walkType(t ast.Type) {
	if t == nil {
		return
	}
	switch n := t.(type) {
	case *ast.NullableType:
		d.walkType(n.Inner)
	case *ast.UnionType:
		d.add(FeatureUnionTypes, n.GetSpan())
		for _, m := range n.Members {
			d.walkType(m)
		}
	case *ast.IntersectionType:
		d.add(FeatureIntersectionTypes, n.GetSpan())
		for _, m := range n.Members {
			d.walkType(m)
		}
	case *ast.ParenthesizedType:
		d.add(FeatureDNFTypes, n.GetSpan())
		d.walkType(n.Inner)
	case *ast.NamedType:
		if n.Name != nil && len(n.Name.Parts) == 1 {
			switch strings.ToLower(n.Name.Parts[0]) {
			case "never":
				d.add(FeatureNeverType, n.GetSpan())
			case "mixed":
				d.add(FeatureMixedType, n.GetSpan())
			}
		}
	}
}

func (d *detector) walkNode(n ast.Node) {
	if n == nil {
		return
	}
	if e, ok := n.(ast.Expression); ok {
		d.walkExpr(e)
	}
}

func (d *detector) walkArgs(args []*ast.Arg) {
	for _, a := range args {
		if a.Name != "" {
			d.add(FeatureNamedArguments, a.GetSpan())
		}
		if a.Value != nil {
			d.walkExpr(a.Value)
		}
	}
}

func (d *detector) walkArrayItem(it *ast.ArrayItem) {
	if it == nil {
		return
	}
	if it.Key != nil {
		d.walkExpr(it.Key)
	}
	if it.Value != nil {
		d.walkExpr(it.Value)
	}
}

func (d *detector) walkExpr(e ast.Expression) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *ast.AssignExpr:
		d.walkExpr(n.Target)
		d.walkExpr(n.Value)
	case *ast.BinaryExpr:
		d.walkExpr(n.Left)
		d.walkExpr(n.Right)
	case *ast.UnaryExpr:
		d.walkExpr(n.Operand)
	case *ast.TernaryExpr:
		d.walkExpr(n.Cond)
		if n.Then != nil {
			d.walkExpr(n.Then)
		}
		d.walkExpr(n.Else)
	case *ast.NullCoalesceExpr:
		d.walkExpr(n.Left)
		d.walkExpr(n.Right)
	case *ast.CastExpr:
		d.walkExpr(n.Value)
	case *ast.ErrorSuppressExpr:
		d.walkExpr(n.Value)
	case *ast.CloneExpr:
		d.walkExpr(n.Value)
	case *ast.InstanceofExpr:
		d.walkExpr(n.Value)
	case *ast.IncludeExpr:
		d.walkExpr(n.Value)
	case *ast.PrintExpr:
		d.walkExpr(n.Value)
	case *ast.ThrowExpr:
		d.walkExpr(n.Value)
	case *ast.YieldExpr:
		if n.Key != nil {
			d.walkExpr(n.Key)
		}
		if n.Value != nil {
			d.walkExpr(n.Value)
		}
	case *ast.YieldFromExpr:
		d.walkExpr(n.Value)
	case *ast.MatchExpr:
		d.add(FeatureMatch, n.GetSpan())
		d.walkExpr(n.Subject)
		for _, arm := range n.Arms {
			for _, c := range arm.Conditions {
				d.walkExpr(c)
			}
			d.walkExpr(arm.Result)
		}
	case *ast.ArrayExpr:
		for _, it := range n.Items {
			d.walkArrayItem(it)
		}
	case *ast.ListExpr:
		for _, it := range n.Items {
			d.walkArrayItem(it)
		}
	case *ast.NewExpr:
		if n.IsFirstClassCallable {
			d.add(FeatureFirstClassCallables, n.GetSpan())
		}
		d.walkNode(n.Class)
		d.walkArgs(n.Args)
	case *ast.AnonClassExpr:
		d.walkAttrs(n.Attributes)
		d.walkArgs(n.Args)
		for _, m := range n.Members {
			d.walkDecl(m)
		}
	case *ast.CallExpr:
		if n.IsFirstClassCallable {
			d.add(FeatureFirstClassCallables, n.GetSpan())
		}
		d.walkNode(n.Callee)
		d.walkArgs(n.Args)
	case *ast.MethodCallExpr:
		if n.IsFirstClassCallable {
			d.add(FeatureFirstClassCallables, n.GetSpan())
		}
		if n.Nullsafe {
			d.add(FeatureNullsafeOperator, n.GetSpan())
		}
		d.walkExpr(n.Object)
		d.walkArgs(n.Args)
	case *ast.StaticCallExpr:
		if n.IsFirstClassCallable {
			d.add(FeatureFirstClassCallables, n.GetSpan())
		}
		d.walkArgs(n.Args)
	case *ast.PropertyFetchExpr:
		if n.Nullsafe {
			d.add(FeatureNullsafeOperator, n.GetSpan())
		}
		d.walkExpr(n.Object)
	case *ast.StaticPropertyFetchExpr:
		// class/property targets carry no version-gated syntax here.
	case *ast.IndexExpr:
		d.walkExpr(n.Array)
		if n.Offset != nil {
			d.walkExpr(n.Offset)
		}
	case *ast.ClosureExpr:
		d.walkParams(n.Params)
		d.walkType(n.ReturnType)
		if n.Body != nil {
			d.walkStmt(n.Body)
		}
	case *ast.ArrowFnExpr:
		d.walkParams(n.Params)
		d.walkType(n.ReturnType)
		d.walkExpr(n.Body)
	case *ast.InterpolatedString:
		for _, p := range n.Parts {
			d.walkExpr(p)
		}
	}
}
