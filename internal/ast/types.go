package ast

import "strings"

// NamedType is a type atom naming a class, interface, built-in
// keyword type, or one of self/parent/static.
type NamedType struct {
	spanned

	Name *Name `json:"name"`
}

func (t *NamedType) Kind() NodeKind       { return KindNamedType }
func (t *NamedType) typeNode()            {}
func (t *NamedType) String() string       { return t.Name.String() }
func (t *NamedType) Accept(v Visitor) interface{} { return v.VisitNamedType(t) }

// NullableType is `?T`.
type NullableType struct {
	spanned

	Inner Type `json:"inner"`
}

func (t *NullableType) Kind() NodeKind { return KindNullableType }
func (t *NullableType) typeNode()      {}
func (t *NullableType) String() string { return "?" + t.Inner.String() }
func (t *NullableType) Accept(v Visitor) interface{} { return v.VisitNullableType(t) }

// UnionType is `A|B|...`; members may themselves be Parenthesized
// intersections (DNF).
type UnionType struct {
	spanned

	Members []Type `json:"members"`
}

func (t *UnionType) Kind() NodeKind { return KindUnionType }
func (t *UnionType) typeNode()      {}
func (t *UnionType) String() string {
	parts := make([]string, len(t.Members))
	for i, m := range t.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, "|")
}
func (t *UnionType) Accept(v Visitor) interface{} { return v.VisitUnionType(t) }

// IntersectionType is `A&B&...`.
type IntersectionType struct {
	spanned

	Members []Type `json:"members"`
}

func (t *IntersectionType) Kind() NodeKind { return KindIntersectionType }
func (t *IntersectionType) typeNode()      {}
func (t *IntersectionType) String() string {
	parts := make([]string, len(t.Members))
	for i, m := range t.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, "&")
}
func (t *IntersectionType) Accept(v Visitor) interface{} { return v.VisitIntersectionType(t) }

// ParenthesizedType wraps a grouped type, used exclusively to hold an
// Intersection nested inside a Union to form a DNF type.
type ParenthesizedType struct {
	spanned

	Inner Type `json:"inner"`
}

func (t *ParenthesizedType) Kind() NodeKind { return KindParenthesizedType }
func (t *ParenthesizedType) typeNode()      {}
func (t *ParenthesizedType) String() string { return "(" + t.Inner.String() + ")" }
func (t *ParenthesizedType) Accept(v Visitor) interface{} { return v.VisitParenthesizedType(t) }
