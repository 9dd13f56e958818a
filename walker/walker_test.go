package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wudi/phpdoctype/config"
	"github.com/wudi/phpdoctype/filetoken"
	"github.com/wudi/phpdoctype/report"
)

func findingCodes(findings []report.Finding) []string {
	var codes []string
	for _, f := range findings {
		codes = append(codes, f.Code)
	}
	return codes
}

func countCode(findings []report.Finding, code string) int {
	n := 0
	for _, f := range findings {
		if f.Code == code {
			n++
		}
	}
	return n
}

// TestWalk_ParamAndReturnMismatch is spec §8 scenario 6 verbatim: a
// function whose native types are the exact reverse of its docblock's
// claims must report exactly one mismatch on each.
func TestWalk_ParamAndReturnMismatch(t *testing.T) {
	src := `<?php
/**
 * @param string $x
 * @return int
 */
function f(int $x): string {
}
`
	w := New(config.Default(), nil)
	shim := w.Walk(src)

	assert.Equal(t, 1, countCode(shim.Findings(), "phpdoc_fun_param_type_mismatch"), "codes: %v", findingCodes(shim.Findings()))
	assert.Equal(t, 1, countCode(shim.Findings(), "phpdoc_fun_ret_type_mismatch"), "codes: %v", findingCodes(shim.Findings()))
}

func TestWalk_MatchingTypesProduceNoMismatch(t *testing.T) {
	src := `<?php
/**
 * @param int $x
 * @return string
 */
function f(int $x): string {
}
`
	w := New(config.Default(), nil)
	shim := w.Walk(src)

	assert.Equal(t, 0, countCode(shim.Findings(), "phpdoc_fun_param_type_mismatch"))
	assert.Equal(t, 0, countCode(shim.Findings(), "phpdoc_fun_ret_type_mismatch"))
}

func TestWalk_MissingDocBlockOnStrictConfig(t *testing.T) {
	src := `<?php
function f(int $x): string {
}
`
	w := New(config.Strict(), nil)
	shim := w.Walk(src)

	assert.Equal(t, 1, countCode(shim.Findings(), "phpdoc_fun_missing_doc"))
}

func TestWalk_MissingParamTagUnderStrictConfig(t *testing.T) {
	src := `<?php
/**
 * @return string
 */
function f(int $x): string {
}
`
	w := New(config.Strict(), nil)
	shim := w.Walk(src)

	assert.Equal(t, 1, countCode(shim.Findings(), "phpdoc_fun_param_type"))
}

func TestWalk_DuplicateParamTagIsMisplaced(t *testing.T) {
	src := `<?php
/**
 * @param int $x
 * @param int $x
 * @return string
 */
function f(int $x): string {
}
`
	w := New(config.Strict(), nil)
	shim := w.Walk(src)

	assert.Equal(t, 1, countCode(shim.Findings(), "phpdoc_tag_misplaced"))
}

func TestWalk_PassSplatMismatch(t *testing.T) {
	src := `<?php
/**
 * @param int $x
 */
function f(int &$x) {
}
`
	w := New(config.Strict(), nil)
	shim := w.Walk(src)

	assert.Equal(t, 1, countCode(shim.Findings(), "phpdoc_fun_param_pass_splat_mismatch"))
}

func TestWalk_PropertyTypeMismatch(t *testing.T) {
	src := `<?php
class Box {
    /**
     * @var string
     */
    public int $value;
}
`
	w := New(config.Strict(), nil)
	shim := w.Walk(src)

	assert.Equal(t, 1, countCode(shim.Findings(), "phpdoc_fun_param_type_mismatch"))
}

func TestWalk_SameClassTypeNoMismatch(t *testing.T) {
	src := `<?php
interface Shape {}
class Circle implements Shape {}

class Canvas {
    /**
     * @param Circle $s
     */
    public function draw(Circle $s) {
    }
}
`
	w := New(config.Default(), nil)
	shim := w.Walk(src)

	assert.Equal(t, 0, countCode(shim.Findings(), "phpdoc_fun_param_type_mismatch"), "codes: %v", findingCodes(shim.Findings()))
}

// TestWalk_DocWiderThanNativeStillMismatches pins down the bidirectional
// equality typesMatch enforces (see its doc comment in checks.go): a
// documented supertype of the native type is still flagged, even though
// the HierarchyOracle confirms Circle is assignable to Shape one way.
func TestWalk_DocWiderThanNativeStillMismatches(t *testing.T) {
	src := `<?php
interface Shape {}
class Circle implements Shape {}

class Canvas {
    /**
     * @param Shape $s
     */
    public function draw(Circle $s) {
    }
}
`
	w := New(config.Default(), nil)
	shim := w.Walk(src)

	assert.Equal(t, 1, countCode(shim.Findings(), "phpdoc_fun_param_type_mismatch"), "codes: %v", findingCodes(shim.Findings()))
}

func TestWalk_DebugModeCleanFileDoesNotPanic(t *testing.T) {
	w := New(config.Config{DebugMode: true}, nil)
	require.NotPanics(t, func() {
		w.Walk("<?php\n")
	})
}

func TestWalk_UnclaimedVarCommentReportsUnparseableSyntax(t *testing.T) {
	src := `<?php
/**
 * @var
 */
`
	w := New(config.Default(), nil)
	shim := w.Walk(src)

	assert.Equal(t, 1, countCode(shim.Findings(), "phpdoc_var_type_unparseable"), "codes: %v", findingCodes(shim.Findings()))
}

// TestWalk_SelfReturnTypeMatchesOwnClassName guards the hierarchy
// oracle's self/parent symmetry fix: a method returning its own class
// natively must not be flagged just because its docblock says `self`.
func TestWalk_SelfReturnTypeMatchesOwnClassName(t *testing.T) {
	src := `<?php
namespace App;

class Child {
    /**
     * @return self
     */
    public function make(): Child {
    }
}
`
	w := New(config.Default(), nil)
	shim := w.Walk(src)

	assert.Equal(t, 0, countCode(shim.Findings(), "phpdoc_fun_ret_type_mismatch"), "codes: %v", findingCodes(shim.Findings()))
}

// TestWalk_ParentParamTypeMatchesBaseClassName is the parent-side
// counterpart: a parameter natively typed as the parent class must
// match a `parent` PHPDoc annotation in both compareTypes directions.
func TestWalk_ParentParamTypeMatchesBaseClassName(t *testing.T) {
	src := `<?php
namespace App;

class Base {
}

class Child extends Base {
    /**
     * @param parent $other
     */
    public function merge(Base $other) {
    }
}
`
	w := New(config.Default(), nil)
	shim := w.Walk(src)

	assert.Equal(t, 0, countCode(shim.Findings(), "phpdoc_fun_param_type_mismatch"), "codes: %v", findingCodes(shim.Findings()))
}

func TestCollectArtifacts_ResolvesExtendsImplements(t *testing.T) {
	src := `<?php
namespace App;

use App\Contracts\Shape;

class Circle extends Base implements Shape {
}
`
	s := filetoken.Tokenize(src)
	table := collectArtifacts(s)

	art, ok := table[`\App\Circle`]
	require.True(t, ok)
	assert.Equal(t, `\App\Base`, art.Extends)
	assert.Equal(t, []string{`\App\Contracts\Shape`}, art.Implements)
}
