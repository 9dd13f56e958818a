package phpdoctype

import (
	"sort"
	"strings"
)

// CanonicalType is a normalized type-expression string: a union of
// intersections, sorted and deduplicated, with no parentheses.
type CanonicalType string

// Keyword atoms recognized by the grammar (spec data model §3).
const (
	Int            = "int"
	Float          = "float"
	Bool           = "bool"
	String         = "string"
	Array          = "array"
	Iterable       = "iterable"
	Object         = "object"
	Callable       = "callable"
	Resource       = "resource"
	Mixed          = "mixed"
	Never          = "never"
	Null           = "null"
	Void           = "void"
	Self           = "self"
	Parent         = "parent"
	ArrayKey       = "array-key"
	Scalar         = "scalar"
	CallableString = "callable-string"
)

// scalarKeywords is the fixed, lowercase atom vocabulary besides class
// names and static(FQ).
var scalarKeywords = map[string]bool{
	Int: true, Float: true, Bool: true, String: true, Array: true,
	Iterable: true, Object: true, Callable: true, Resource: true,
	Mixed: true, Never: true, Null: true, Void: true, Self: true,
	Parent: true, ArrayKey: true, Scalar: true, CallableString: true,
}

// IsKeywordAtom reports whether s is one of the fixed lowercase atom
// keywords (as opposed to a qualified class name or static(FQ) form).
func IsKeywordAtom(s string) bool {
	return scalarKeywords[s]
}

// IsQualifiedName reports whether s begins with the namespace
// separator, i.e. is a fully-qualified class/interface name.
func IsQualifiedName(s string) bool {
	return strings.HasPrefix(s, `\`)
}

// IsStaticBinding reports whether s is the synthetic static(FQ) form.
func IsStaticBinding(s string) bool {
	return strings.HasPrefix(s, "static(") && strings.HasSuffix(s, ")")
}

// StaticBindingTarget extracts FQ from static(FQ); ok is false if s is
// not that form.
func StaticBindingTarget(s string) (fq string, ok bool) {
	if !IsStaticBinding(s) {
		return "", false
	}
	return s[len("static(") : len(s)-1], true
}

// MakeStaticBinding builds the static(FQ) synthetic form.
func MakeStaticBinding(fq string) string {
	return "static(" + fq + ")"
}

// SplitUnion splits a canonical (or pre-canonical) type string on '|'
// into its intersection components. A type with no '|' yields a single
// element slice.
func SplitUnion(t string) []string {
	if t == "" {
		return nil
	}
	return strings.Split(t, "|")
}

// SplitIntersection splits a single union member on '&' into its atoms.
func SplitIntersection(t string) []string {
	if t == "" {
		return nil
	}
	return strings.Split(t, "&")
}

// JoinIntersection renders a sorted, deduplicated set of atoms as an
// intersection. Caller must have already removed redundant/absorbed
// members.
func JoinIntersection(atoms []string) string {
	return strings.Join(atoms, "&")
}

// JoinUnion renders a sorted, deduplicated set of intersection strings
// as a union.
func JoinUnion(members []string) string {
	return strings.Join(members, "|")
}

// dedupeSorted returns ss deduplicated and lexicographically sorted.
func dedupeSorted(ss []string) []string {
	seen := make(map[string]bool, len(ss))
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// NormalizeUnion applies the union-level invariants of spec §3 that do
// not require assignability (that step — "wider absorbs narrower" — is
// applied by typeparse, which has access to the comparator):
//
//   - mixed present anywhere -> collapse to {mixed}
//   - never dropped unless it's the only remaining member
//   - sort + dedupe
//
// members are intersection strings (already internally normalized).
func NormalizeUnion(members []string) CanonicalType {
	members = dedupeSorted(members)
	for _, m := range members {
		if m == Mixed {
			return CanonicalType(Mixed)
		}
	}
	if len(members) > 1 {
		filtered := members[:0:0]
		for _, m := range members {
			if m != Never {
				filtered = append(filtered, m)
			}
		}
		if len(filtered) == 0 {
			return CanonicalType(Never)
		}
		members = filtered
	}
	if len(members) == 0 {
		return CanonicalType(Never)
	}
	return CanonicalType(JoinUnion(members))
}

// NormalizeIntersection applies the intersection-level invariants of
// spec §3 that don't require the supertype oracle (callers needing
// "each component's known supertypes are removed" pre-filter atoms
// before calling this):
//
//   - never collapses the whole intersection to {never}
//   - mixed is removed when other components exist
//   - sort + dedupe
func NormalizeIntersection(atoms []string) string {
	atoms = dedupeSorted(atoms)
	for _, a := range atoms {
		if a == Never {
			return Never
		}
	}
	if len(atoms) > 1 {
		filtered := atoms[:0:0]
		for _, a := range atoms {
			if a != Mixed {
				filtered = append(filtered, a)
			}
		}
		if len(filtered) > 0 {
			atoms = filtered
		}
	}
	return JoinIntersection(atoms)
}
