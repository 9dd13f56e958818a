package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wudi/phpdoctype/lexer"
)

func TestNewStructuralError_FormatsTypeAndPosition(t *testing.T) {
	err := NewStructuralError("unclosed scope", lexer.Position{Line: 12, Column: 4})
	assert.Equal(t, StructuralError, err.Type)
	assert.Equal(t, "Structural Error at line 12, column 4: unclosed scope", err.Error())
}

func TestNewSyntaxError_FormatsTypeAndPosition(t *testing.T) {
	err := NewSyntaxError(`unparseable @var type expression: "int|"`, lexer.Position{Line: 3, Column: 1})
	assert.Equal(t, SyntaxError, err.Type)
	assert.Equal(t, `Syntax Error at line 3, column 1: unparseable @var type expression: "int|"`, err.Error())
}
