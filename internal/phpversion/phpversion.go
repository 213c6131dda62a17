// Package phpversion gates PHP syntax features against a configured
// target language version, the same way the teacher's package manager
// gates a dependency's allowed versions against a manifest constraint
// (cmd/orizon/pkg/commands/outdated.go, internal/packagemanager).
package phpversion

import (
	semver "github.com/Masterminds/semver/v3"
)

// Feature is a syntax feature whose availability depends on the
// target PHP version.
type Feature string

const (
	FeatureUnionTypes             Feature = "union-types"
	FeatureNamedArguments         Feature = "named-arguments"
	FeatureConstructorPromotion   Feature = "constructor-promotion"
	FeatureMatch                  Feature = "match-expression"
	FeatureNullsafeOperator       Feature = "nullsafe-operator"
	FeatureAttributes             Feature = "attributes"
	FeatureMixedType              Feature = "mixed-type"
	FeatureEnums                  Feature = "enums"
	FeatureReadonlyProperties     Feature = "readonly-properties"
	FeatureNeverType              Feature = "never-type"
	FeatureIntersectionTypes      Feature = "intersection-types"
	FeatureFirstClassCallables    Feature = "first-class-callables"
	FeatureReadonlyClasses        Feature = "readonly-classes"
	FeatureDNFTypes               Feature = "dnf-types"
)

// featureMinVersion records the PHP release each feature first
// shipped in. Versions follow real PHP language history: union
// types/named arguments/promotion/match/nullsafe/attributes/mixed
// landed in 8.0; enums/readonly properties/never/intersection
// types/first-class callables in 8.1; readonly classes and DNF types
// in 8.2.
var featureMinVersion = map[Feature]*semver.Version{
	FeatureUnionTypes:           semver.MustParse("8.0.0"),
	FeatureNamedArguments:       semver.MustParse("8.0.0"),
	FeatureConstructorPromotion: semver.MustParse("8.0.0"),
	FeatureMatch:                semver.MustParse("8.0.0"),
	FeatureNullsafeOperator:     semver.MustParse("8.0.0"),
	FeatureAttributes:           semver.MustParse("8.0.0"),
	FeatureMixedType:            semver.MustParse("8.0.0"),
	FeatureEnums:                semver.MustParse("8.1.0"),
	FeatureReadonlyProperties:   semver.MustParse("8.1.0"),
	FeatureNeverType:            semver.MustParse("8.1.0"),
	FeatureIntersectionTypes:    semver.MustParse("8.1.0"),
	FeatureFirstClassCallables:  semver.MustParse("8.1.0"),
	FeatureReadonlyClasses:      semver.MustParse("8.2.0"),
	FeatureDNFTypes:             semver.MustParse("8.2.0"),
}

// MinVersion returns the PHP version a feature first became
// available in, or nil if f is unrecognized.
func MinVersion(f Feature) *semver.Version {
	return featureMinVersion[f]
}

// Constraint pins a single target PHP version (not a range: a parser
// run targets one concrete PHP version, unlike a package manager's
// "^8.1" dependency range) that syntax features are checked against.
type Constraint struct {
	target *semver.Version
}

// NewConstraint parses a target version string such as "8.1" or
// "8.1.2" into a Constraint.
func NewConstraint(version string) (*Constraint, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, err
	}
	return &Constraint{target: v}, nil
}

// Supports reports whether f is available at c's target version.
// Unrecognized features are always reported as supported, since
// gating only applies to the closed set this package knows about.
func (c *Constraint) Supports(f Feature) bool {
	min, ok := featureMinVersion[f]
	if !ok {
		return true
	}
	return !c.target.LessThan(min)
}

func (c *Constraint) String() string { return c.target.String() }
