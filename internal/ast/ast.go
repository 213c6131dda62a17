// Package ast defines the PHP abstract syntax tree: statement,
// expression, type, attribute, and modifier nodes plus the visitor
// infrastructure and node-kind schema the parser and its CLI
// collaborators build on.
package ast

import (
	"fmt"
	"strings"

	"github.com/orizon-lang/phpfront/internal/interner"
	"github.com/orizon-lang/phpfront/internal/source"
)

// Node is the base interface every AST node implements.
type Node interface {
	GetSpan() source.Span
	String() string
	Accept(v Visitor) interface{}
	Kind() NodeKind
}

// Statement marks a node usable in statement position.
type Statement interface {
	Node
	statementNode()
}

// Expression marks a node usable in expression position.
type Expression interface {
	Node
	expressionNode()
}

// Declaration marks a top-level or class-member declaration.
type Declaration interface {
	Node
	declarationNode()
}

// Type marks a node usable in type position.
type Type interface {
	Node
	typeNode()
}

// spanned is embedded by every concrete node to provide GetSpan()
// without repeating the accessor on each type.
type spanned struct {
	Span source.Span `json:"span"`
}

func (s spanned) GetSpan() source.Span { return s.Span }

// Program is the root of a parsed source file: an ordered sequence of
// top-level statements (which may themselves be declarations).
type Program struct {
	spanned

	Statements []Statement `json:"statements"`
}

func (p *Program) Kind() NodeKind { return KindProgram }
func (p *Program) String() string {
	parts := make([]string, len(p.Statements))
	for i, s := range p.Statements {
		parts[i] = s.String()
	}
	return strings.Join(parts, "\n")
}
func (p *Program) Accept(v Visitor) interface{} { return v.VisitProgram(p) }

// Missing is the placeholder node error recovery substitutes for a
// child that could not be parsed, so that span containment and
// structural totality invariants hold even over a partial tree.
type Missing struct {
	spanned

	Reason string `json:"reason"`
}

func (m *Missing) Kind() NodeKind { return KindMissing }
func (m *Missing) String() string { return "<missing>" }

// Missing implements all four marker interfaces because recovery can
// lose a child in any of the four grammar positions (statement,
// expression, declaration, type); one placeholder type standing in
// for all four avoids four near-identical structs.
func (m *Missing) statementNode()   {}
func (m *Missing) expressionNode()  {}
func (m *Missing) declarationNode() {}
func (m *Missing) typeNode()        {}
func (m *Missing) Accept(v Visitor) interface{} { return v.VisitMissing(m) }

// Identifier is a bare, unqualified name: a variable name without its
// '$', a property or method name, a label, or a class member name.
type Identifier struct {
	spanned

	Name string `json:"name"`
}

func (i *Identifier) Kind() NodeKind       { return KindIdentifier }
func (i *Identifier) String() string       { return i.Name }
func (i *Identifier) Accept(v Visitor) interface{} { return v.VisitIdentifier(i) }

// NameKind classifies a Name by how it is qualified.
type NameKind int

const (
	NameUnqualified NameKind = iota
	NameQualified
	NameFullyQualified
	NameRelative
)

func (k NameKind) String() string {
	switch k {
	case NameUnqualified:
		return "unqualified"
	case NameQualified:
		return "qualified"
	case NameFullyQualified:
		return "fully-qualified"
	case NameRelative:
		return "relative"
	default:
		return "unknown"
	}
}

// Name is a possibly-namespaced identifier such as `Foo\Bar`,
// `\Foo\Bar`, or `namespace\Bar`. It is classified at parse time but
// never resolved.
type Name struct {
	spanned

	Parts []string `json:"parts"`
	NKind NameKind `json:"nameKind"`
}

func (n *Name) Kind() NodeKind  { return KindName }
func (n *Name) expressionNode() {}
func (n *Name) typeNode()       {}
func (n *Name) String() string {
	prefix := ""
	switch n.NKind {
	case NameFullyQualified:
		prefix = `\`
	case NameRelative:
		prefix = `namespace\`
	}
	return prefix + strings.Join(n.Parts, `\`)
}
func (n *Name) Accept(v Visitor) interface{} { return v.VisitName(n) }

// Modifier is a single declared modifier keyword; ModifierSet
// preserves the declared order while still supporting set membership
// tests, since spec.md requires invalid combinations to be diagnosed
// but retained rather than dropped.
type Modifier int

const (
	ModPublic Modifier = iota
	ModProtected
	ModPrivate
	ModStatic
	ModAbstract
	ModFinal
	ModReadonly
)

func (m Modifier) String() string {
	switch m {
	case ModPublic:
		return "public"
	case ModProtected:
		return "protected"
	case ModPrivate:
		return "private"
	case ModStatic:
		return "static"
	case ModAbstract:
		return "abstract"
	case ModFinal:
		return "final"
	case ModReadonly:
		return "readonly"
	default:
		return "unknown"
	}
}

// ModifierSet is the declared-order sequence of modifiers on a
// class-like member.
type ModifierSet struct {
	Span  source.Span `json:"span"`
	Items []Modifier  `json:"items"`
}

// Has reports whether m is present anywhere in the set.
func (s ModifierSet) Has(m Modifier) bool {
	for _, x := range s.Items {
		if x == m {
			return true
		}
	}
	return false
}

func (s ModifierSet) String() string {
	parts := make([]string, len(s.Items))
	for i, m := range s.Items {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// Symbol resolves an interned symbol back to text; a thin convenience
// so parser code building AST nodes from tokens does not need to pass
// the interner around beyond node construction time.
func Symbol(in *interner.Interner, sym interner.Symbol) string {
	return in.Resolve(sym)
}

// AttributeArg is a single argument inside an attribute's argument
// list, optionally named (`#[A(name: 1)]`).
type AttributeArg struct {
	spanned

	Name  string     `json:"name,omitempty"`
	Value Expression `json:"value"`
}

func (a *AttributeArg) String() string {
	if a.Name != "" {
		return fmt.Sprintf("%s: %s", a.Name, a.Value.String())
	}
	return a.Value.String()
}

// Attribute is a single `Name(args...)` entry inside an attribute
// group.
type Attribute struct {
	spanned

	Name *Name           `json:"name"`
	Args []*AttributeArg `json:"args,omitempty"`
}

func (a *Attribute) Kind() NodeKind { return KindAttribute }
func (a *Attribute) String() string {
	if len(a.Args) == 0 {
		return a.Name.String()
	}
	parts := make([]string, len(a.Args))
	for i, arg := range a.Args {
		parts[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", a.Name.String(), strings.Join(parts, ", "))
}
func (a *Attribute) Accept(v Visitor) interface{} { return v.VisitAttribute(a) }

// AttributeGroup is one `#[...]` block; several may precede a single
// attributable construct.
type AttributeGroup struct {
	spanned

	Attributes []*Attribute `json:"attributes"`
}

func (g *AttributeGroup) Kind() NodeKind { return KindAttributeGroup }
func (g *AttributeGroup) String() string {
	parts := make([]string, len(g.Attributes))
	for i, a := range g.Attributes {
		parts[i] = a.String()
	}
	return fmt.Sprintf("#[%s]", strings.Join(parts, ", "))
}
func (g *AttributeGroup) Accept(v Visitor) interface{} { return v.VisitAttributeGroup(g) }
