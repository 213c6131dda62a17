package token

import "testing"

func TestLookupKeywordCaseInsensitivity(t *testing.T) {
	for _, spelling := range []string{"function", "FUNCTION", "Function", "fUnCtIoN"} {
		kind, ok := LookupKeyword(spelling)
		if !ok {
			t.Fatalf("LookupKeyword(%q): expected a match", spelling)
		}
		if kind != KwFunction {
			t.Fatalf("LookupKeyword(%q) = %s, want KwFunction", spelling, kind)
		}
	}
}

func TestLookupKeywordRejectsNonKeyword(t *testing.T) {
	if _, ok := LookupKeyword("myclass"); ok {
		t.Fatalf("LookupKeyword(%q) unexpectedly matched", "myclass")
	}
}

func TestIsTypeKeyword(t *testing.T) {
	for _, k := range []Kind{KwInt, KwString, KwBool, KwSelf, KwStatic, KwCallable} {
		if !IsTypeKeyword(k) {
			t.Fatalf("IsTypeKeyword(%s) = false, want true", k)
		}
	}
	if IsTypeKeyword(KwFunction) {
		t.Fatalf("IsTypeKeyword(KwFunction) = true, want false")
	}
}

func TestIsCastKeyword(t *testing.T) {
	for _, name := range []string{"int", "integer", "boolean", "double", "array", "unset"} {
		if !IsCastKeyword(name) {
			t.Fatalf("IsCastKeyword(%q) = false, want true", name)
		}
	}
	if IsCastKeyword("callable") {
		t.Fatalf("IsCastKeyword(%q) = true, want false", "callable")
	}
}

func TestKindStringKnownAndUnknown(t *testing.T) {
	if got := KwClass.String(); got != "class" {
		t.Fatalf("KwClass.String() = %q, want %q", got, "class")
	}
	if got := Arrow.String(); got != "->" {
		t.Fatalf("Arrow.String() = %q, want %q", got, "->")
	}
	unknown := Kind(-1)
	if got := unknown.String(); got != "Kind(-1)" {
		t.Fatalf("unknown Kind.String() = %q, want %q", got, "Kind(-1)")
	}
}

func TestKeywordsCoversLookupTable(t *testing.T) {
	all := Keywords()
	if len(all) == 0 {
		t.Fatalf("Keywords() returned no entries")
	}
	seen := make(map[string]bool, len(all))
	for _, s := range all {
		seen[s] = true
	}
	for _, want := range []string{"class", "function", "match", "readonly", "enum"} {
		if !seen[want] {
			t.Fatalf("Keywords() missing %q", want)
		}
	}
}
