// Package typecompare implements the TypeComparator (spec §4.4):
// assignability between two canonical type strings, understanding DNF
// (union-of-intersections) combinations via the HierarchyOracle.
package typecompare

import (
	"github.com/wudi/phpdoctype"
	"github.com/wudi/phpdoctype/hierarchy"
)

// CompareTypes decides whether every value of narrow is a value of
// wide (spec §4.4). wide/narrow are nilable — nil represents "no
// annotation" (spec data model's "null" sentinel), distinct from the
// canonical `null` keyword atom.
func CompareTypes(wide, narrow *phpdoctype.CanonicalType, oracle *hierarchy.Oracle, scope *phpdoctype.Scope) bool {
	if narrow == nil {
		return false
	}
	if wide == nil || string(*wide) == phpdoctype.Mixed || string(*narrow) == phpdoctype.Never {
		return true
	}

	wideInters := phpdoctype.SplitUnion(string(*wide))
	narrowInters := phpdoctype.SplitUnion(string(*narrow))

	for _, ni := range narrowInters {
		expanded := expand(phpdoctype.SplitIntersection(ni), oracle, scope)
		satisfied := false
		for _, wj := range wideInters {
			if isSubset(phpdoctype.SplitIntersection(wj), expanded) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// expand returns atoms plus every supertype of each atom (spec §4.4
// step 3: "expand to N_i ∪ supertypes(each component)").
func expand(atoms []string, oracle *hierarchy.Oracle, scope *phpdoctype.Scope) map[string]bool {
	set := make(map[string]bool, len(atoms)*2)
	for _, a := range atoms {
		set[a] = true
		if oracle == nil {
			continue
		}
		for _, s := range oracle.SuperTypes(a, scope) {
			set[s] = true
		}
	}
	return set
}

func isSubset(small []string, big map[string]bool) bool {
	for _, s := range small {
		if !big[s] {
			return false
		}
	}
	return true
}
