package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wudi/phpdoctype"
	"github.com/wudi/phpdoctype/lexer"
)

func TestAddError_SetsSeverity(t *testing.T) {
	s := New()
	s.AddError("E001", "type mismatch", lexer.Position{Line: 1})
	require.Len(t, s.Findings(), 1)
	assert.Equal(t, SeverityError, s.Findings()[0].Severity)
	assert.True(t, s.HasErrors())
}

func TestAddFixableWarning_RecordsFixAndFinding(t *testing.T) {
	s := New()
	s.AddFixableWarning("W010", "non-canonical spelling", lexer.Position{Line: 2}, phpdoctype.Fix{Pos: 5, Len: 3, Replacement: "int"})
	require.Len(t, s.Findings(), 1)
	assert.True(t, s.Findings()[0].Fixable)
	assert.Len(t, s.AllFixes(), 1)
}

func TestChangeset_BeginReplaceEnd(t *testing.T) {
	s := New()
	id := s.BeginChangeset()
	require.NoError(t, s.ReplaceToken(id, phpdoctype.Fix{Pos: 0, Len: 1, Replacement: "a"}))
	require.NoError(t, s.ReplaceToken(id, phpdoctype.Fix{Pos: 10, Len: 1, Replacement: "b"}))
	fixes, err := s.EndChangeset(id)
	require.NoError(t, err)
	assert.Len(t, fixes, 2)

	_, err = s.EndChangeset(id)
	assert.Error(t, err)
}

func TestReplaceToken_UnknownChangesetErrors(t *testing.T) {
	s := New()
	err := s.ReplaceToken("does-not-exist", phpdoctype.Fix{})
	assert.Error(t, err)
}

func TestHasErrors_FalseWhenOnlyWarnings(t *testing.T) {
	s := New()
	s.AddWarning("W001", "missing doc block", lexer.Position{})
	assert.False(t, s.HasErrors())
}
