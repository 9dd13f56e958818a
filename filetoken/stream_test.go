package filetoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wudi/phpdoctype/lexer"
)

func TestTokenize_ClassScopeIsMatched(t *testing.T) {
	src := "<?php\nclass Foo {\n public function bar() {\n  return 1;\n }\n}\n"
	s := Tokenize(src)
	require.Greater(t, s.Len(), 0)

	var classIdx = -1
	for _, r := range s.Records {
		if r.Token.Type == lexer.T_CLASS {
			classIdx = r.Index
			break
		}
	}
	require.NotEqual(t, -1, classIdx)
	rec := s.At(classIdx)
	assert.NotEqual(t, -1, rec.ScopeOpener)
	assert.NotEqual(t, -1, rec.ScopeCloser)
	assert.Equal(t, lexer.TOKEN_LBRACE, s.At(rec.ScopeOpener).Token.Type)
	assert.Equal(t, lexer.TOKEN_RBRACE, s.At(rec.ScopeCloser).Token.Type)
}

func TestTokenize_FunctionParenAndScopeMatched(t *testing.T) {
	src := "<?php\nfunction f($a, $b) {\n return $a + $b;\n}\n"
	s := Tokenize(src)

	var fnIdx = -1
	for _, r := range s.Records {
		if r.Token.Type == lexer.T_FUNCTION {
			fnIdx = r.Index
			break
		}
	}
	require.NotEqual(t, -1, fnIdx)
	rec := s.At(fnIdx)
	assert.NotEqual(t, -1, rec.ParenOpener)
	assert.NotEqual(t, -1, rec.ParenCloser)
	assert.NotEqual(t, -1, rec.ScopeOpener)
	assert.NotEqual(t, -1, rec.ScopeCloser)
	assert.Less(t, rec.ParenCloser, rec.ScopeOpener)
}

func TestTokenize_AbstractMethodHasNoScope(t *testing.T) {
	src := "<?php\nabstract class Foo {\n abstract public function bar();\n}\n"
	s := Tokenize(src)

	var fnIdx = -1
	for _, r := range s.Records {
		if r.Token.Type == lexer.T_FUNCTION {
			fnIdx = r.Index
			break
		}
	}
	require.NotEqual(t, -1, fnIdx)
	rec := s.At(fnIdx)
	assert.Equal(t, -1, rec.ScopeOpener)
	assert.Equal(t, -1, rec.ScopeCloser)
}

func TestAt_OutOfRangeReturnsEOF(t *testing.T) {
	s := Tokenize("<?php\n")
	rec := s.At(s.Len() + 10)
	assert.Equal(t, lexer.T_EOF, rec.Token.Type)
}

func TestTokenize_SquareBracketsMatched(t *testing.T) {
	src := "<?php\n$a = [1, 2];\n"
	s := Tokenize(src)

	var openIdx = -1
	for _, r := range s.Records {
		if r.Token.Type == lexer.TOKEN_LBRACKET {
			openIdx = r.Index
			break
		}
	}
	require.NotEqual(t, -1, openIdx)
	rec := s.At(openIdx)
	assert.NotEqual(t, -1, rec.BracketCloser)
	assert.Equal(t, lexer.TOKEN_RBRACKET, s.At(rec.BracketCloser).Token.Type)
}

func TestTokenize_AttributeGroupCloserMatched(t *testing.T) {
	src := "<?php\n#[Attribute]\nclass Foo {}\n"
	s := Tokenize(src)

	var attrIdx = -1
	for _, r := range s.Records {
		if r.Token.Type == lexer.T_ATTRIBUTE {
			attrIdx = r.Index
			break
		}
	}
	require.NotEqual(t, -1, attrIdx)
	rec := s.At(attrIdx)
	require.NotEqual(t, -1, rec.AttributeCloser)
	assert.Equal(t, lexer.TOKEN_RBRACKET, s.At(rec.AttributeCloser).Token.Type)
}

func TestTokenize_NamespaceWithBraceHasScope(t *testing.T) {
	src := "<?php\nnamespace App {\n class Foo {}\n}\n"
	s := Tokenize(src)

	var nsIdx = -1
	for _, r := range s.Records {
		if r.Token.Type == lexer.T_NAMESPACE {
			nsIdx = r.Index
			break
		}
	}
	require.NotEqual(t, -1, nsIdx)
	rec := s.At(nsIdx)
	assert.NotEqual(t, -1, rec.ScopeOpener)
	assert.NotEqual(t, -1, rec.ScopeCloser)
}

func TestTokenize_NamespaceWithSemicolonHasNoScope(t *testing.T) {
	src := "<?php\nnamespace App;\nclass Foo {}\n"
	s := Tokenize(src)

	var nsIdx = -1
	for _, r := range s.Records {
		if r.Token.Type == lexer.T_NAMESPACE {
			nsIdx = r.Index
			break
		}
	}
	require.NotEqual(t, -1, nsIdx)
	rec := s.At(nsIdx)
	assert.Equal(t, -1, rec.ScopeOpener)
	assert.Equal(t, -1, rec.ScopeCloser)
}
