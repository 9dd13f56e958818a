package typeparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wudi/phpdoctype"
	"github.com/wudi/phpdoctype/hierarchy"
)

func scopeWithClass(class, parent string) *phpdoctype.Scope {
	s := phpdoctype.NewRootScope()
	s.ClassName = class
	s.ParentName = parent
	return s
}

func TestParseTypeAndName_PlainKeyword(t *testing.T) {
	o := hierarchy.New(nil, nil)
	r := ParseTypeAndName(nil, o, "int", phpdoctype.WantType, false)
	require.False(t, r.Failed())
	assert.Equal(t, phpdoctype.CanonicalType("int"), *r.Type)
	assert.True(t, r.PHPFig)
}

func TestParseTypeAndName_AliasNormalizedWithFix(t *testing.T) {
	o := hierarchy.New(nil, nil)
	r := ParseTypeAndName(nil, o, "Integer", phpdoctype.WantType, false)
	require.False(t, r.Failed())
	assert.Equal(t, phpdoctype.CanonicalType("int"), *r.Type)
	require.NotNil(t, r.Fixed)
	assert.Equal(t, "int", *r.Fixed)
}

func TestParseTypeAndName_NullablePrefix(t *testing.T) {
	o := hierarchy.New(nil, nil)
	r := ParseTypeAndName(nil, o, "?int", phpdoctype.WantType, false)
	require.False(t, r.Failed())
	assert.Equal(t, phpdoctype.CanonicalType("int|null"), *r.Type)
	assert.False(t, r.PHPFig)
}

func TestParseTypeAndName_GenericsCollapseToBaseAtom(t *testing.T) {
	o := hierarchy.New(nil, nil)
	r := ParseTypeAndName(nil, o, "array<int, string>", phpdoctype.WantType, false)
	require.False(t, r.Failed())
	assert.Equal(t, phpdoctype.CanonicalType("array"), *r.Type)
	assert.False(t, r.PHPFig)
}

func TestParseTypeAndName_IntStringCollapsesToArrayKey(t *testing.T) {
	// array-key is added alongside int|string, then the "wider absorbs
	// narrower" elision removes both now-redundant members, leaving the
	// single wider atom.
	o := hierarchy.New(nil, nil)
	r := ParseTypeAndName(nil, o, "int|string", phpdoctype.WantType, false)
	require.False(t, r.Failed())
	assert.Equal(t, phpdoctype.CanonicalType("array-key"), *r.Type)
}

func TestParseTypeAndName_ScalarComponentsCollapseToScalar(t *testing.T) {
	o := hierarchy.New(nil, nil)
	r := ParseTypeAndName(nil, o, "bool|float|int|string", phpdoctype.WantType, false)
	require.False(t, r.Failed())
	assert.Equal(t, phpdoctype.CanonicalType("scalar"), *r.Type)
}

func TestParseTypeAndName_WiderAbsorbsNarrowerAcrossBuiltinHierarchy(t *testing.T) {
	o := hierarchy.New(nil, nil)
	r := ParseTypeAndName(nil, o, `\Traversable|array`, phpdoctype.WantType, false)
	require.False(t, r.Failed())
	assert.Equal(t, phpdoctype.CanonicalType("iterable"), *r.Type)
}

func TestParseTypeAndName_IntersectionSupertypeElision(t *testing.T) {
	o := hierarchy.New(nil, nil)
	r := ParseTypeAndName(nil, o, `\Iterator&\Traversable`, phpdoctype.WantType, false)
	require.False(t, r.Failed())
	assert.Equal(t, phpdoctype.CanonicalType(`\Iterator`), *r.Type)
}

func TestParseTypeAndName_IntersectionInvalidParticipantFails(t *testing.T) {
	o := hierarchy.New(nil, nil)
	r := ParseTypeAndName(nil, o, "int&string", phpdoctype.WantType, false)
	assert.True(t, r.Failed())
}

func TestParseTypeAndName_AmpersandAsPassByReferenceStopsIntersection(t *testing.T) {
	o := hierarchy.New(nil, nil)
	r := ParseTypeAndName(nil, o, "int &$x", phpdoctype.WantPassSplat, false)
	require.False(t, r.Failed())
	assert.Equal(t, phpdoctype.CanonicalType("int"), *r.Type)
	assert.Equal(t, "&", r.PassSplat)
	require.NotNil(t, r.Name)
	assert.Equal(t, "$x", *r.Name)
}

func TestParseTypeAndName_ParenthesizedUnionInsideIntersectionRejected(t *testing.T) {
	o := hierarchy.New(nil, nil)
	r := ParseTypeAndName(nil, o, `(\Foo|\Bar)&\Baz`, phpdoctype.WantType, false)
	assert.True(t, r.Failed())
}

func TestParseTypeAndName_TrailingGarbageRollsBack(t *testing.T) {
	o := hierarchy.New(nil, nil)
	r := ParseTypeAndName(nil, o, "int#bad", phpdoctype.WantType, false)
	assert.True(t, r.Failed())
	assert.Equal(t, "int#bad", r.Rem)
}

func TestParseTypeAndName_UnrecognizedWordIsTreatedAsClassName(t *testing.T) {
	o := hierarchy.New(nil, nil)
	r := ParseTypeAndName(nil, o, "intxyz", phpdoctype.WantType, false)
	require.False(t, r.Failed())
	assert.Equal(t, phpdoctype.CanonicalType(`\intxyz`), *r.Type)
}

func TestParseTypeAndName_DelimiterAfterTypeIsAccepted(t *testing.T) {
	o := hierarchy.New(nil, nil)
	r := ParseTypeAndName(nil, o, "int,", phpdoctype.WantType, false)
	require.False(t, r.Failed())
	assert.Equal(t, phpdoctype.CanonicalType("int"), *r.Type)
	assert.Equal(t, ",", r.Rem)
}

func TestParseTypeAndName_GowideFallbackForUnknownConstruct(t *testing.T) {
	o := hierarchy.New(nil, nil)
	wide := ParseTypeAndName(nil, o, "key-of<array>", phpdoctype.WantType, true)
	require.False(t, wide.Failed())
	assert.Equal(t, phpdoctype.CanonicalType(phpdoctype.Mixed), *wide.Type)

	narrow := ParseTypeAndName(nil, o, "key-of<array>", phpdoctype.WantType, false)
	require.False(t, narrow.Failed())
	assert.Equal(t, phpdoctype.CanonicalType(phpdoctype.Never), *narrow.Type)
}

func TestParseTypeAndName_KeyOfRejectsNonIterableBound(t *testing.T) {
	o := hierarchy.New(nil, nil)
	r := ParseTypeAndName(nil, o, "key-of<int>", phpdoctype.WantType, true)
	assert.True(t, r.Failed())
}

func TestParseTypeAndName_StaticResolvesAgainstScope(t *testing.T) {
	o := hierarchy.New(nil, nil)
	scope := scopeWithClass(`\App\Child`, `\App\Base`)
	r := ParseTypeAndName(scope, o, "static", phpdoctype.WantType, false)
	require.False(t, r.Failed())
	assert.Equal(t, phpdoctype.CanonicalType(phpdoctype.MakeStaticBinding(`\App\Child`)), *r.Type)
	assert.False(t, r.PHPFig)
}

func TestParseTypeAndName_StaticBindingIsIdempotentAcrossReparse(t *testing.T) {
	o := hierarchy.New(nil, nil)
	scope := scopeWithClass(`\App\Child`, `\App\Base`)
	first := ParseTypeAndName(scope, o, "static", phpdoctype.WantType, false)
	require.False(t, first.Failed())
	second := ParseTypeAndName(nil, o, string(*first.Type), phpdoctype.WantType, false)
	require.False(t, second.Failed())
	assert.Equal(t, *first.Type, *second.Type)
}

func TestParseTypeAndName_SelfAndParentAreKeptAsAtoms(t *testing.T) {
	o := hierarchy.New(nil, nil)
	scope := scopeWithClass(`\App\Child`, `\App\Base`)
	self := ParseTypeAndName(scope, o, "self", phpdoctype.WantType, false)
	require.False(t, self.Failed())
	assert.Equal(t, phpdoctype.CanonicalType("self"), *self.Type)
	assert.True(t, self.PHPFig)

	parent := ParseTypeAndName(scope, o, "parent", phpdoctype.WantType, false)
	require.False(t, parent.Failed())
	assert.Equal(t, phpdoctype.CanonicalType("parent"), *parent.Type)
	assert.False(t, parent.PHPFig)
}

func TestParseTypeAndName_ClassConstantSuffixFallsBack(t *testing.T) {
	o := hierarchy.New(nil, nil)
	r := ParseTypeAndName(nil, o, `\Foo::*`, phpdoctype.WantType, true)
	require.False(t, r.Failed())
	assert.Equal(t, phpdoctype.CanonicalType(phpdoctype.Mixed), *r.Type)
	assert.False(t, r.PHPFig)
}

func TestParseTypeAndName_ConditionalReturnTypeUnionsBranches(t *testing.T) {
	o := hierarchy.New(nil, nil)
	r := ParseTypeAndName(nil, o, "$x is int ? string : bool", phpdoctype.WantType, false)
	require.False(t, r.Failed())
	assert.Equal(t, phpdoctype.CanonicalType("bool|string"), *r.Type)
	assert.False(t, r.PHPFig)
}

func TestParseTemplate_DefaultsToMixed(t *testing.T) {
	o := hierarchy.New(nil, nil)
	r := ParseTemplate(nil, o, "T")
	require.False(t, r.Failed())
	assert.Equal(t, "T", *r.Name)
	assert.Equal(t, phpdoctype.CanonicalType(phpdoctype.Mixed), *r.Type)
}

func TestParseTemplate_WithBound(t *testing.T) {
	o := hierarchy.New(nil, nil)
	r := ParseTemplate(nil, o, `T of \Countable`)
	require.False(t, r.Failed())
	assert.Equal(t, "T", *r.Name)
	assert.Equal(t, phpdoctype.CanonicalType(`\Countable`), *r.Type)
}
