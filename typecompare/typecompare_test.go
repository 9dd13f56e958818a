package typecompare

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wudi/phpdoctype"
	"github.com/wudi/phpdoctype/hierarchy"
)

func ct(s string) *phpdoctype.CanonicalType {
	c := phpdoctype.CanonicalType(s)
	return &c
}

func TestCompareTypes_Reflexive(t *testing.T) {
	o := hierarchy.New(nil, nil)
	assert.True(t, CompareTypes(ct("int|string"), ct("int|string"), o, nil))
}

func TestCompareTypes_MixedAbsorbsAnything(t *testing.T) {
	o := hierarchy.New(nil, nil)
	assert.True(t, CompareTypes(ct(phpdoctype.Mixed), ct(`\Foo`), o, nil))
}

func TestCompareTypes_NeverAssignableToAnything(t *testing.T) {
	o := hierarchy.New(nil, nil)
	assert.True(t, CompareTypes(ct(`\Foo`), ct(phpdoctype.Never), o, nil))
}

func TestCompareTypes_NilNarrowIsUndefined(t *testing.T) {
	o := hierarchy.New(nil, nil)
	assert.False(t, CompareTypes(ct("int"), nil, o, nil))
}

func TestCompareTypes_NilWideIsUnannotated(t *testing.T) {
	o := hierarchy.New(nil, nil)
	assert.True(t, CompareTypes(nil, ct("int"), o, nil))
}

func TestCompareTypes_ClassHierarchy(t *testing.T) {
	o := hierarchy.New(nil, nil)
	assert.True(t, CompareTypes(ct(`\Iterator`), ct(`\ArrayIterator`), o, nil))
	assert.False(t, CompareTypes(ct(`\ArrayIterator`), ct(`\Iterator`), o, nil))
}

func TestCompareTypes_UnionNarrowRequiresAllMembersSatisfied(t *testing.T) {
	o := hierarchy.New(nil, nil)
	assert.True(t, CompareTypes(ct("int|string"), ct("int"), o, nil))
	assert.False(t, CompareTypes(ct("int"), ct("int|string"), o, nil))
}

func TestCompareTypes_IntersectionNarrowing(t *testing.T) {
	o := hierarchy.New(nil, nil)
	assert.True(t, CompareTypes(ct("object"), ct(`\Iterator&\Countable`), o, nil))
}
