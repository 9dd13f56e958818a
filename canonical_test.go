package phpdoctype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUnion_MixedAbsorbs(t *testing.T) {
	got := NormalizeUnion([]string{"int", "mixed", "string"})
	assert.Equal(t, CanonicalType(Mixed), got)
}

func TestNormalizeUnion_NeverElidedUnlessAlone(t *testing.T) {
	assert.Equal(t, CanonicalType("int|string"), NormalizeUnion([]string{"string", "never", "int"}))
	assert.Equal(t, CanonicalType(Never), NormalizeUnion([]string{"never"}))
}

func TestNormalizeUnion_SortDedupe(t *testing.T) {
	assert.Equal(t, NormalizeUnion([]string{"string", "int"}), NormalizeUnion([]string{"int", "string", "int"}))
}

func TestNormalizeIntersection_NeverCollapses(t *testing.T) {
	assert.Equal(t, Never, NormalizeIntersection([]string{"object", "never"}))
}

func TestNormalizeIntersection_MixedRemovedWhenOthersExist(t *testing.T) {
	assert.Equal(t, `\Foo`, NormalizeIntersection([]string{`\Foo`, "mixed"}))
}

func TestFixList_ApplyRightToLeft(t *testing.T) {
	fl := FixList{
		{Pos: 0, Len: 7, Replacement: "int"},
		{Pos: 8, Len: 7, Replacement: "bool"},
	}
	got := fl.Apply("integer|boolean")
	assert.Equal(t, "int|bool", got)
}

func TestScope_ResolveName(t *testing.T) {
	s := NewRootScope()
	s.Namespace = `\Ns`
	s.AddUse("Foo", `\Other\Foo`)

	assert.Equal(t, `\Other\Foo`, s.ResolveName("Foo"))
	assert.Equal(t, `\Ns\Bar`, s.ResolveName("Bar"))
	assert.Equal(t, `\Already\Qualified`, s.ResolveName(`\Already\Qualified`))
}

func TestScope_CloneIsIndependent(t *testing.T) {
	s := NewRootScope()
	s.AddUse("A", `\A`)
	clone := s.Clone()
	clone.AddUse("B", `\B`)

	_, onOriginal := s.Uses["B"]
	assert.False(t, onOriginal)
	assert.Equal(t, `\A`, clone.Uses["A"])
}
