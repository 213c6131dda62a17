package schema

import (
	"fmt"
	"strings"

	"github.com/orizon-lang/phpfront/internal/ast"
)

// Dump renders prog as an indented, human-readable tree: one line per
// node, giving the node's Kind followed by its <start,end> byte span
// (the root Program line and the ElseIf/Else/Case/Default/Catch/
// Finally/Arm label lines carry no span). This is what cmd/phpast
// writes to standard output.
func Dump(prog *ast.Program) string {
	d := &dumper{}
	d.line(0, "Program")
	for _, s := range prog.Statements {
		d.stmt(1, s)
	}
	return d.sb.String()
}

type dumper struct {
	sb strings.Builder
}

func (d *dumper) line(depth int, format string, args ...interface{}) {
	d.sb.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(&d.sb, format, args...)
	d.sb.WriteByte('\n')
}

// leaf prints a node that this dumper does not descend further into,
// using its own String() rendering as the payload.
func (d *dumper) leaf(depth int, n ast.Node) {
	if n == nil {
		return
	}
	sp := n.GetSpan()
	d.line(depth, "%s <%d,%d> %s", n.Kind(), sp.Start, sp.End, n.String())
}

func (d *dumper) header(depth int, n ast.Node, label string) {
	sp := n.GetSpan()
	d.line(depth, "%s <%d,%d>%s", n.Kind(), sp.Start, sp.End, label)
}

func (d *dumper) stmts(depth int, stmts []ast.Statement) {
	for _, s := range stmts {
		d.stmt(depth, s)
	}
}

func (d *dumper) stmt(depth int, s ast.Statement) {
	if s == nil {
		return
	}
	switch n := s.(type) {
	case *ast.BlockStmt:
		d.header(depth, n, "")
		d.stmts(depth+1, n.Statements)
	case *ast.ExprStmt:
		d.header(depth, n, "")
		d.expr(depth+1, n.Value)
	case *ast.IfStmt:
		d.header(depth, n, "")
		d.expr(depth+1, n.Cond)
		d.stmt(depth+1, n.Then)
		for _, e := range n.ElseIfs {
			d.line(depth+1, "ElseIf")
			d.expr(depth+2, e.Cond)
			d.stmt(depth+2, e.Body)
		}
		if n.Else != nil {
			d.line(depth+1, "Else")
			d.stmt(depth+2, n.Else)
		}
	case *ast.WhileStmt:
		d.header(depth, n, "")
		d.expr(depth+1, n.Cond)
		d.stmt(depth+1, n.Body)
	case *ast.DoWhileStmt:
		d.header(depth, n, "")
		d.stmt(depth+1, n.Body)
		d.expr(depth+1, n.Cond)
	case *ast.ForStmt:
		d.header(depth, n, "")
		for _, e := range n.Init {
			d.expr(depth+1, e)
		}
		for _, e := range n.Cond {
			d.expr(depth+1, e)
		}
		for _, e := range n.Loop {
			d.expr(depth+1, e)
		}
		d.stmt(depth+1, n.Body)
	case *ast.ForeachStmt:
		d.header(depth, n, "")
		d.expr(depth+1, n.Expr)
		if n.KeyVar != nil {
			d.expr(depth+1, n.KeyVar)
		}
		d.expr(depth+1, n.ValueVar)
		d.stmt(depth+1, n.Body)
	case *ast.SwitchStmt:
		d.header(depth, n, "")
		d.expr(depth+1, n.Subject)
		for _, c := range n.Cases {
			if c.Test != nil {
				d.line(depth+1, "Case")
				d.expr(depth+2, c.Test)
			} else {
				d.line(depth+1, "Default")
			}
			d.stmts(depth+2, c.Body)
		}
	case *ast.TryStmt:
		d.header(depth, n, "")
		d.stmt(depth+1, n.Body)
		for _, c := range n.Catches {
			d.line(depth+1, "Catch %s", c.Var)
			d.stmt(depth+2, c.Body)
		}
		if n.Finally != nil {
			d.line(depth+1, "Finally")
			d.stmt(depth+2, n.Finally)
		}
	case *ast.ReturnStmt:
		d.header(depth, n, "")
		if n.Value != nil {
			d.expr(depth+1, n.Value)
		}
	case *ast.ThrowStmt:
		d.header(depth, n, "")
		d.expr(depth+1, n.Value)
	case *ast.EchoStmt:
		d.header(depth, n, "")
		for _, v := range n.Values {
			d.expr(depth+1, v)
		}
	case *ast.ConstDecl:
		d.header(depth, n, "")
		for _, it := range n.Items {
			d.line(depth+1, "%s", it.Name)
			d.expr(depth+2, it.Value)
		}
	case *ast.FunctionDecl:
		d.header(depth, n, fmt.Sprintf(" %s", n.Name.Name))
		for _, p := range n.Params {
			d.param(depth+1, p)
		}
		if n.ReturnType != nil {
			d.typ(depth+1, n.ReturnType)
		}
		if n.Body != nil {
			d.stmt(depth+1, n.Body)
		}
	case *ast.ClassLike:
		d.header(depth, n, fmt.Sprintf(" %s %s", n.CKind, n.Name.Name))
		for _, m := range n.Members {
			d.decl(depth+1, m)
		}
	default:
		d.leaf(depth, s)
	}
}

func (d *dumper) decl(depth int, decl ast.Declaration) {
	if decl == nil {
		return
	}
	switch n := decl.(type) {
	case *ast.ClassConstDecl:
		d.header(depth, n, "")
		for _, it := range n.Items {
			d.line(depth+1, "%s", it.Name)
			d.expr(depth+2, it.Value)
		}
	case *ast.PropertyDecl:
		d.header(depth, n, fmt.Sprintf(" %s", n.Modifiers.String()))
		for _, it := range n.Items {
			d.line(depth+1, "$%s", it.Name)
			if it.Default != nil {
				d.expr(depth+2, it.Default)
			}
		}
	case *ast.MethodDecl:
		d.header(depth, n, fmt.Sprintf(" %s %s", n.Modifiers.String(), n.Name.Name))
		for _, p := range n.Params {
			d.param(depth+1, p)
		}
		if n.Body != nil {
			d.stmt(depth+1, n.Body)
		}
	case *ast.EnumCaseDecl:
		d.header(depth, n, fmt.Sprintf(" %s", n.Name))
		if n.Value != nil {
			d.expr(depth+1, n.Value)
		}
	case *ast.TraitUseDecl:
		d.header(depth, n, "")
	case *ast.FunctionDecl:
		d.stmt(depth, n)
	case *ast.ClassLike:
		d.stmt(depth, n)
	default:
		d.leaf(depth, decl)
	}
}

func (d *dumper) param(depth int, p *ast.Param) {
	d.header(depth, p, fmt.Sprintf(" $%s", p.Name))
	if p.PType != nil {
		d.typ(depth+1, p.PType)
	}
	if p.Default != nil {
		d.expr(depth+1, p.Default)
	}
}

func (d *dumper) typ(depth int, t ast.Type) {
	if t == nil {
		return
	}
	switch n := t.(type) {
	case *ast.NullableType:
		d.header(depth, n, "")
		d.typ(depth+1, n.Inner)
	case *ast.UnionType:
		d.header(depth, n, "")
		for _, m := range n.Members {
			d.typ(depth+1, m)
		}
	case *ast.IntersectionType:
		d.header(depth, n, "")
		for _, m := range n.Members {
			d.typ(depth+1, m)
		}
	case *ast.ParenthesizedType:
		d.header(depth, n, "")
		d.typ(depth+1, n.Inner)
	default:
		d.leaf(depth, t)
	}
}

func (d *dumper) args(depth int, args []*ast.Arg) {
	for _, a := range args {
		if a.Name != "" {
			d.line(depth, "Arg %s:", a.Name)
			d.expr(depth+1, a.Value)
			continue
		}
		d.expr(depth, a.Value)
	}
}

func (d *dumper) expr(depth int, e ast.Expression) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *ast.AssignExpr:
		d.header(depth, n, fmt.Sprintf(" %s", n.Op))
		d.expr(depth+1, n.Target)
		d.expr(depth+1, n.Value)
	case *ast.BinaryExpr:
		d.header(depth, n, fmt.Sprintf(" %s", n.Op))
		d.expr(depth+1, n.Left)
		d.expr(depth+1, n.Right)
	case *ast.UnaryExpr:
		d.header(depth, n, fmt.Sprintf(" %s", n.Op))
		d.expr(depth+1, n.Operand)
	case *ast.TernaryExpr:
		d.header(depth, n, "")
		d.expr(depth+1, n.Cond)
		if n.Then != nil {
			d.expr(depth+1, n.Then)
		}
		d.expr(depth+1, n.Else)
	case *ast.NullCoalesceExpr:
		d.header(depth, n, "")
		d.expr(depth+1, n.Left)
		d.expr(depth+1, n.Right)
	case *ast.MatchExpr:
		d.header(depth, n, "")
		d.expr(depth+1, n.Subject)
		for _, arm := range n.Arms {
			d.line(depth+1, "Arm")
			for _, c := range arm.Conditions {
				d.expr(depth+2, c)
			}
			d.expr(depth+2, arm.Result)
		}
	case *ast.ArrayExpr:
		d.header(depth, n, "")
		for _, it := range n.Items {
			if it.Key != nil {
				d.expr(depth+1, it.Key)
			}
			d.expr(depth+1, it.Value)
		}
	case *ast.CallExpr:
		d.header(depth, n, fmt.Sprintf(" %s", n.Callee.String()))
		d.args(depth+1, n.Args)
	case *ast.MethodCallExpr:
		d.header(depth, n, fmt.Sprintf(" %s", n.Method.String()))
		d.expr(depth+1, n.Object)
		d.args(depth+1, n.Args)
	case *ast.NewExpr:
		d.header(depth, n, fmt.Sprintf(" %s", n.Class.String()))
		d.args(depth+1, n.Args)
	case *ast.ClosureExpr:
		d.header(depth, n, "")
		for _, p := range n.Params {
			d.param(depth+1, p)
		}
		if n.Body != nil {
			d.stmt(depth+1, n.Body)
		}
	case *ast.ArrowFnExpr:
		d.header(depth, n, "")
		for _, p := range n.Params {
			d.param(depth+1, p)
		}
		d.expr(depth+1, n.Body)
	case *ast.InterpolatedString:
		d.header(depth, n, "")
		for _, p := range n.Parts {
			d.expr(depth+1, p)
		}
	case *ast.PropertyFetchExpr:
		d.header(depth, n, fmt.Sprintf(" %s", n.Property.String()))
		d.expr(depth+1, n.Object)
	case *ast.IndexExpr:
		d.header(depth, n, "")
		d.expr(depth+1, n.Array)
		if n.Offset != nil {
			d.expr(depth+1, n.Offset)
		}
	default:
		d.leaf(depth, e)
	}
}
