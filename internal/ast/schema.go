package ast

import (
	"reflect"
	"sort"
	"strings"
)

// FieldSchema describes one struct field of a node type as seen by
// JSON emission: its Go name, its declared type, and the JSON key it
// serializes under.
type FieldSchema struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	JSONName string `json:"jsonName"`
	Optional bool   `json:"optional"`
}

// NodeSchema describes one registered node kind's shape.
type NodeSchema struct {
	Kind   NodeKind      `json:"kind"`
	Name   string        `json:"name"`
	Fields []FieldSchema `json:"fields"`
}

// registeredNodes lists one representative zero-value instance per
// node kind that appears anywhere in the grammar. New node types are
// added here alongside their Kind() constant.
var registeredNodes = []Node{
	&Program{}, &Missing{}, &Identifier{}, &Name{}, &Attribute{}, &AttributeGroup{},

	&NamedType{}, &NullableType{}, &UnionType{}, &IntersectionType{}, &ParenthesizedType{},

	&IntLiteral{}, &FloatLiteral{}, &StringLiteral{}, &InterpolatedString{}, &Variable{},
	&ArrayExpr{}, &ListExpr{}, &NewExpr{}, &AnonClassExpr{}, &CloneExpr{}, &InstanceofExpr{},
	&IncludeExpr{}, &AssignExpr{}, &BinaryExpr{}, &UnaryExpr{}, &TernaryExpr{},
	&NullCoalesceExpr{}, &CastExpr{}, &ErrorSuppressExpr{}, &Param{}, &ClosureExpr{},
	&ArrowFnExpr{}, &CallExpr{}, &MethodCallExpr{}, &StaticCallExpr{}, &PropertyFetchExpr{},
	&StaticPropertyFetchExpr{}, &ClassConstFetchExpr{}, &ConstFetchExpr{}, &IndexExpr{},
	&YieldExpr{}, &YieldFromExpr{}, &MatchExpr{}, &PrintExpr{}, &ThrowExpr{},

	&BlockStmt{}, &ExprStmt{}, &InlineHTMLStmt{}, &IfStmt{}, &WhileStmt{}, &DoWhileStmt{},
	&ForStmt{}, &ForeachStmt{}, &SwitchStmt{}, &TryStmt{}, &ReturnStmt{}, &ThrowStmt{},
	&BreakStmt{}, &ContinueStmt{}, &GotoStmt{}, &LabelStmt{}, &EchoStmt{}, &GlobalStmt{},
	&StaticVarStmt{}, &DeclareStmt{}, &UnsetStmt{}, &NamespaceStmt{}, &UseStmt{},

	&ConstDecl{}, &FunctionDecl{}, &ClassLike{}, &ClassConstDecl{}, &PropertyDecl{},
	&MethodDecl{}, &EnumCaseDecl{}, &TraitPrecedence{}, &TraitAlias{}, &TraitUseDecl{},
}

// Schema reflects over every registered node type once and returns a
// stable, kind-sorted description of its fields, for `cmd/phpschema`
// to serialize as the module's JSON node schema.
func Schema() []NodeSchema {
	out := make([]NodeSchema, 0, len(registeredNodes))
	for _, n := range registeredNodes {
		out = append(out, describeNode(n))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

func describeNode(n Node) NodeSchema {
	t := reflect.TypeOf(n).Elem()
	return NodeSchema{
		Kind:   n.Kind(),
		Name:   t.Name(),
		Fields: describeFields(t),
	}
}

func describeFields(t reflect.Type) []FieldSchema {
	fields := make([]FieldSchema, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			fields = append(fields, describeFields(f.Type)...)
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		jsonName, opts := splitTag(tag)
		if jsonName == "" {
			jsonName = f.Name
		}
		fields = append(fields, FieldSchema{
			Name:     f.Name,
			Type:     f.Type.String(),
			JSONName: jsonName,
			Optional: strings.Contains(opts, "omitempty"),
		})
	}
	return fields
}

func splitTag(tag string) (name string, opts string) {
	parts := strings.Split(tag, ",")
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], ",")
}
