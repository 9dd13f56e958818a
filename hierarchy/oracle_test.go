package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wudi/phpdoctype"
)

func TestSuperTypes_Primitives(t *testing.T) {
	o := New(nil, nil)
	assert.ElementsMatch(t, []string{"array-key", "scalar"}, o.SuperTypes("int", nil))
	assert.ElementsMatch(t, []string{"array-key", "scalar"}, o.SuperTypes("string", nil))
	assert.ElementsMatch(t, []string{"scalar"}, o.SuperTypes("float", nil))
	assert.ElementsMatch(t, []string{"iterable"}, o.SuperTypes("array", nil))
	assert.ElementsMatch(t, []string{"callable", "string", "array-key", "scalar"}, o.SuperTypes("callable-string", nil))
}

func TestSuperTypes_Builtin(t *testing.T) {
	o := New(nil, nil)
	got := o.SuperTypes(`\Iterator`, nil)
	assert.Contains(t, got, `\Traversable`)
	assert.Contains(t, got, "iterable")
	assert.Contains(t, got, "object")
	assert.NotContains(t, got, `\Iterator`)
}

func TestSuperTypes_ArtifactsExtendLibrary(t *testing.T) {
	artifacts := phpdoctype.ArtifactTable{
		`\App\MyException`: {Name: `\App\MyException`, Extends: `\RuntimeException`},
	}
	o := New(nil, artifacts)
	got := o.SuperTypes(`\App\MyException`, nil)
	assert.Contains(t, got, `\RuntimeException`)
	assert.Contains(t, got, `\Exception`)
	assert.Contains(t, got, `\Throwable`)
	assert.Contains(t, got, "object")
}

func TestSuperTypes_CyclicArtifactsTerminate(t *testing.T) {
	artifacts := phpdoctype.ArtifactTable{
		`\A`: {Name: `\A`, Extends: `\B`},
		`\B`: {Name: `\B`, Extends: `\A`},
	}
	o := New(nil, artifacts)
	done := make(chan []string, 1)
	go func() { done <- o.SuperTypes(`\A`, nil) }()
	got := <-done
	assert.Contains(t, got, `\B`)
	assert.Contains(t, got, "object")
	assert.NotContains(t, got, `\A`)
}

func TestSuperTypes_SelfParentStatic(t *testing.T) {
	artifacts := phpdoctype.ArtifactTable{
		`\App\Child`:  {Name: `\App\Child`, Extends: `\App\Base`},
		`\App\Base`:   {Name: `\App\Base`},
	}
	o := New(nil, artifacts)
	scope := &phpdoctype.Scope{ClassName: `\App\Child`, ParentName: `\App\Base`}

	self := o.SuperTypes(phpdoctype.Self, scope)
	assert.Contains(t, self, `\App\Base`)
	assert.Contains(t, self, "object")

	parent := o.SuperTypes(phpdoctype.Parent, scope)
	assert.Contains(t, parent, `\App\Base`)
	assert.Contains(t, parent, "object")

	static := o.SuperTypes(phpdoctype.MakeStaticBinding(`\App\Child`), scope)
	assert.Contains(t, static, "static")
	assert.Contains(t, static, phpdoctype.Self)
	assert.Contains(t, static, phpdoctype.Parent)
	assert.Contains(t, static, "object")
	assert.Contains(t, static, `\App\Base`)
	assert.NotContains(t, static, `\App\Child`)
}

// TestSuperTypes_SelfIncludesOwnClassName pins down the fix for
// self's asymmetry with parent: a method in \App\Child declared
// `@return self` on a function that natively returns \App\Child
// itself needs `self`'s supertype set to contain \App\Child, the same
// way parent's set already contained scope.ParentName.
func TestSuperTypes_SelfIncludesOwnClassName(t *testing.T) {
	artifacts := phpdoctype.ArtifactTable{
		`\App\Child`: {Name: `\App\Child`, Extends: `\App\Base`},
		`\App\Base`:  {Name: `\App\Base`},
	}
	o := New(nil, artifacts)
	scope := &phpdoctype.Scope{ClassName: `\App\Child`, ParentName: `\App\Base`}

	self := o.SuperTypes(phpdoctype.Self, scope)
	assert.Contains(t, self, `\App\Child`)
}

// TestSuperTypes_OwnClassNameIncludesSelf is the reverse direction: a
// native type naming the enclosing class literally must list `self`
// among its supertypes too, or comparing a native \App\Child type
// against a documented `self` would only ever succeed one way round.
func TestSuperTypes_OwnClassNameIncludesSelf(t *testing.T) {
	artifacts := phpdoctype.ArtifactTable{
		`\App\Child`: {Name: `\App\Child`, Extends: `\App\Base`},
		`\App\Base`:  {Name: `\App\Base`},
	}
	o := New(nil, artifacts)
	scope := &phpdoctype.Scope{ClassName: `\App\Child`, ParentName: `\App\Base`}

	childSupers := o.SuperTypes(`\App\Child`, scope)
	assert.Contains(t, childSupers, phpdoctype.Self)

	baseSupers := o.SuperTypes(`\App\Base`, scope)
	assert.Contains(t, baseSupers, phpdoctype.Parent)
}
