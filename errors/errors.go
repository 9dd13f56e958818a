// Package errors defines the internal error value the walker attaches
// to a Finding when something goes wrong partway through a check,
// rather than a plain string: which phase failed (syntax, lexical,
// semantic, or structural) travels with the message and position.
package errors

import (
	"fmt"

	"github.com/wudi/phpdoctype/lexer"
)

// ErrorType classifies an Error by which phase detected it.
type ErrorType int

const (
	SyntaxError ErrorType = iota
	LexicalError
	SemanticError
	// StructuralError is a failure that escaped a declaration handler
	// during the walker's traversal (a recovered panic in debug mode).
	StructuralError
)

func (t ErrorType) String() string {
	switch t {
	case SyntaxError:
		return "Syntax Error"
	case LexicalError:
		return "Lexical Error"
	case SemanticError:
		return "Semantic Error"
	case StructuralError:
		return "Structural Error"
	default:
		return "Error"
	}
}

// Error is a single classified failure, positioned in the source file
// it was found in.
type Error struct {
	Type     ErrorType
	Message  string
	Position lexer.Position
}

// NewSyntaxError returns a SyntaxError positioned at pos.
func NewSyntaxError(message string, pos lexer.Position) *Error {
	return &Error{Type: SyntaxError, Message: message, Position: pos}
}

// NewLexicalError returns a LexicalError positioned at pos.
func NewLexicalError(message string, pos lexer.Position) *Error {
	return &Error{Type: LexicalError, Message: message, Position: pos}
}

// NewSemanticError returns a SemanticError positioned at pos.
func NewSemanticError(message string, pos lexer.Position) *Error {
	return &Error{Type: SemanticError, Message: message, Position: pos}
}

// NewStructuralError returns a StructuralError positioned at pos.
func NewStructuralError(message string, pos lexer.Position) *Error {
	return &Error{Type: StructuralError, Message: message, Position: pos}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d, column %d: %s", e.Type, e.Position.Line, e.Position.Column, e.Message)
}
