package parser

import (
	"github.com/orizon-lang/phpfront/internal/ast"
	"github.com/orizon-lang/phpfront/internal/source"
	"github.com/orizon-lang/phpfront/internal/token"
)

// modifierKeywords maps the keyword tokens that can appear in a
// property/method/parameter/class modifier list to their ast.Modifier
// value.
var modifierKeywords = map[token.Kind]ast.Modifier{
	token.KwPublic:    ast.ModPublic,
	token.KwProtected: ast.ModProtected,
	token.KwPrivate:   ast.ModPrivate,
	token.KwStatic:    ast.ModStatic,
	token.KwAbstract:  ast.ModAbstract,
	token.KwFinal:     ast.ModFinal,
	token.KwReadonly:  ast.ModReadonly,
}

func isModifierKeyword(k token.Kind) bool {
	_, ok := modifierKeywords[k]
	return ok
}

func kindToModifier(k token.Kind) ast.Modifier { return modifierKeywords[k] }

// visibilityCount reports how many of public/protected/private appear
// in mods.
func visibilityCount(mods ast.ModifierSet) int {
	n := 0
	if mods.Has(ast.ModPublic) {
		n++
	}
	if mods.Has(ast.ModProtected) {
		n++
	}
	if mods.Has(ast.ModPrivate) {
		n++
	}
	return n
}

// checkModifierConflicts diagnoses the modifier combinations spec.md
// §7 calls out as invalid but still fault-tolerant: more than one
// visibility keyword, abstract+final together, and readonly+static
// together (a readonly property can never be static in PHP).
func checkModifierConflicts(p *Parser, mods ast.ModifierSet, span source.Span) {
	if visibilityCount(mods) > 1 {
		p.diag.Errorf(span, "modifier.conflicting-visibility",
			"only one of public, protected, or private may be declared")
	}
	if mods.Has(ast.ModAbstract) && mods.Has(ast.ModFinal) {
		p.diag.Errorf(span, "modifier.abstract-final",
			"a member cannot be declared both abstract and final")
	}
	if mods.Has(ast.ModReadonly) && mods.Has(ast.ModStatic) {
		p.diag.Errorf(span, "modifier.readonly-static",
			"a property cannot be declared both readonly and static")
	}
}
