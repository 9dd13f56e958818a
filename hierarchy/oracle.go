// Package hierarchy implements the HierarchyOracle (spec §4.3): given a
// base canonical atom, it answers which qualified names/keywords are
// its supertypes, understanding the builtin Library plus a file's
// dynamic Artifacts table, and the primitive/self/parent/static
// structural rules.
package hierarchy

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/wudi/phpdoctype"
)

// Oracle answers supertype queries for one file walk: the builtin
// Library is shared read-only state (spec §5); Artifacts is the
// per-file table pass 1 produced.
type Oracle struct {
	Library   Library
	Artifacts phpdoctype.ArtifactTable
}

// New returns an Oracle over lib (nil defaults to DefaultLibrary) and
// artifacts (nil is treated as empty).
func New(lib Library, artifacts phpdoctype.ArtifactTable) *Oracle {
	if lib == nil {
		lib = DefaultLibrary
	}
	if artifacts == nil {
		artifacts = phpdoctype.ArtifactTable{}
	}
	return &Oracle{Library: lib, Artifacts: artifacts}
}

// primitiveDirectSupers encodes the structural rules of spec §4.3 for
// the fixed keyword atoms: int|string -> array-key, scalar;
// array-key|float|bool -> scalar; callable-string -> callable,string,
// array-key,scalar; array -> iterable.
var primitiveDirectSupers = map[string][]string{
	phpdoctype.Int:            {phpdoctype.ArrayKey},
	phpdoctype.String:         {phpdoctype.ArrayKey},
	phpdoctype.ArrayKey:       {phpdoctype.Scalar},
	phpdoctype.Float:          {phpdoctype.Scalar},
	phpdoctype.Bool:           {phpdoctype.Scalar},
	phpdoctype.CallableString: {phpdoctype.Callable, phpdoctype.String},
	phpdoctype.Array:          {phpdoctype.Iterable},
}

// SuperTypes returns the deduplicated, unsorted set of supertypes for
// base (spec §4.3). scope supplies self/parent/static resolution.
func (o *Oracle) SuperTypes(base string, scope *phpdoctype.Scope) []string {
	switch {
	case base == phpdoctype.Self:
		if scope == nil || scope.ClassName == "" {
			return nil
		}
		// scope.ClassName itself is included: `self` and the class's own
		// FQ name must be interchangeable in both directions of
		// typesMatch's bidirectional compareTypes check, the same as a
		// real `Child` return type is equal to (not merely narrower
		// than) a documented `@return self` on a method of \App\Child.
		return dedupe(append([]string{scope.ClassName, phpdoctype.Object}, o.classSupers(scope.ClassName)...))

	case base == phpdoctype.Parent:
		if scope == nil || scope.ParentName == "" {
			return nil
		}
		return dedupe(append([]string{scope.ParentName, phpdoctype.Object}, o.classSupers(scope.ParentName)...))

	case base == "static":
		if scope == nil || scope.ClassName == "" {
			return []string{"static", phpdoctype.Object}
		}
		return o.staticSupers(scope.ClassName)

	case phpdoctype.IsStaticBinding(base):
		target, _ := phpdoctype.StaticBindingTarget(base)
		return o.staticSupers(target)

	case phpdoctype.IsQualifiedName(base):
		supers := o.classSupers(base)
		if !slices.Contains(supers, phpdoctype.Object) {
			supers = append(supers, phpdoctype.Object)
		}
		// The reverse half of the self/parent symmetry above: a native
		// type naming the enclosing class (or its parent) literally must
		// also count `self` (or `parent`) among its supertypes, or a
		// documented `self`/`parent` annotation would only ever match
		// the FQ name one way round.
		if scope != nil {
			if base == scope.ClassName {
				supers = append(supers, phpdoctype.Self)
			}
			if scope.ParentName != "" && base == scope.ParentName {
				supers = append(supers, phpdoctype.Parent)
			}
		}
		return dedupe(supers)

	default:
		return o.primitiveSupers(base)
	}
}

// staticSupers implements "static(X) includes static, self, parent,
// object plus X's supers" (spec §4.3) literally: X itself is not
// included.
func (o *Oracle) staticSupers(x string) []string {
	base := []string{"static", phpdoctype.Self, phpdoctype.Parent, phpdoctype.Object}
	return dedupe(append(base, o.classSupers(x)...))
}

// primitiveSupers walks primitiveDirectSupers transitively (int ->
// array-key -> scalar, etc).
func (o *Oracle) primitiveSupers(base string) []string {
	direct, ok := primitiveDirectSupers[base]
	if !ok {
		return nil
	}
	visited := map[string]bool{base: true}
	var out []string
	queue := append([]string{}, direct...)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		out = append(out, cur)
		queue = append(queue, primitiveDirectSupers[cur]...)
	}
	return out
}

// classSupers walks the Library then Artifacts tables transitively via
// a worklist with a visited set, so cycles in user-supplied
// extends/implements chains cannot loop forever (spec §9). name itself
// is excluded from the result (spec §4.3: "the base class itself is
// excluded from the returned set").
func (o *Oracle) classSupers(name string) []string {
	visited := map[string]bool{name: true}
	var out []string
	queue := o.directSupers(name)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		out = append(out, cur)
		queue = append(queue, o.directSupers(cur)...)
	}
	return out
}

func (o *Oracle) directSupers(name string) []string {
	var out []string
	if supers, ok := o.Library[name]; ok {
		out = append(out, supers...)
	}
	if art, ok := o.Artifacts[name]; ok {
		if art.Extends != "" {
			out = append(out, art.Extends)
		}
		out = append(out, art.Implements...)
	}
	return out
}

func dedupe(ss []string) []string {
	seen := make(map[string]bool, len(ss))
	out := ss[:0:0]
	for _, s := range ss {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// KnownBuiltins returns the sorted list of qualified names the default
// Library table declares: what the oracle recognizes out of the box.
func KnownBuiltins() []string {
	names := maps.Keys(DefaultLibrary)
	slices.Sort(names)
	return names
}

// IsKnownBuiltinPrefix reports whether name (without its namespace
// separator) looks like one of the single-segment builtin names: a
// leading separator followed by exactly one name segment.
func IsKnownBuiltinPrefix(name string) bool {
	return strings.HasPrefix(name, `\`) && !strings.Contains(name[1:], `\`)
}
