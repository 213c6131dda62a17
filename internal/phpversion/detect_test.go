package phpversion

import (
	"testing"

	"github.com/orizon-lang/phpfront/internal/parser"
)

// TestDetectFindsGatedFeatures exercises Detect against one program
// using a representative feature from each PHP 8.0/8.1/8.2 tier.
func TestDetectFindsGatedFeatures(t *testing.T) {
	src := `<?php
enum Suit {
	case Hearts;
}

class Point {
	public function __construct(public readonly int $x, int|float $y) {}
}
`
	res := parser.Parse("t.php", []byte(src))
	if res.Diagnostics.HasErrors() {
		t.Fatalf("expected no parse errors, got %v", res.Diagnostics.All())
	}

	usages := Detect(res.Program)
	found := map[Feature]bool{}
	for _, u := range usages {
		found[u.Feature] = true
	}

	for _, want := range []Feature{
		FeatureEnums,
		FeatureConstructorPromotion,
		FeatureReadonlyProperties,
		FeatureUnionTypes,
	} {
		if !found[want] {
			t.Errorf("expected Detect to report %s, got %v", want, usages)
		}
	}
}

// TestConstraintGatesDetectedUsages wires Detect and Constraint
// together the way cmd/phpast's -min-php-version flag does: parse,
// detect every gated usage, then check each against a pinned target.
func TestConstraintGatesDetectedUsages(t *testing.T) {
	res := parser.Parse("t.php", []byte(`<?php enum Suit { case Hearts; }`))
	if res.Diagnostics.HasErrors() {
		t.Fatalf("expected no parse errors, got %v", res.Diagnostics.All())
	}
	usages := Detect(res.Program)
	if len(usages) == 0 {
		t.Fatal("expected at least one usage (enum) to be detected")
	}

	targetTooOld, err := NewConstraint("8.0")
	if err != nil {
		t.Fatalf("NewConstraint: %v", err)
	}
	var unsupported int
	for _, u := range usages {
		if !targetTooOld.Supports(u.Feature) {
			unsupported++
		}
	}
	if unsupported == 0 {
		t.Fatal("expected enums to be reported unsupported when targeting PHP 8.0")
	}

	targetNewEnough, err := NewConstraint("8.1")
	if err != nil {
		t.Fatalf("NewConstraint: %v", err)
	}
	for _, u := range usages {
		if !targetNewEnough.Supports(u.Feature) {
			t.Errorf("expected %s to be supported when targeting PHP 8.1", u.Feature)
		}
	}
}
