package typelex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexer_BasicTokens(t *testing.T) {
	l := New(`int|string`)
	assert.Equal(t, "int", l.Peek(0).str())
	assert.Equal(t, "|", l.Peek(1).str())
	assert.Equal(t, "string", l.Peek(2).str())
	l.Advance()
	assert.Equal(t, "|", l.Peek(0).str())
}

func TestLexer_ThreeAndTwoCharPunctuation(t *testing.T) {
	l := New(`...::`)
	assert.Equal(t, "...", l.Peek(0).str())
	l.Advance()
	assert.Equal(t, "::", l.Peek(0).str())
}

func TestLexer_UnterminatedStringIsEndOfStream(t *testing.T) {
	l := New(`'abc`)
	tok := l.Peek(0)
	assert.Nil(t, tok.Text)
}

func TestLexer_SnapshotRestore(t *testing.T) {
	l := New(`A&B`)
	l.Peek(0)
	snap := l.Snapshot()
	l.Advance()
	l.Advance()
	assert.Equal(t, "B", l.Peek(0).str())
	l.Restore(snap)
	assert.Equal(t, "A", l.Peek(0).str())
}

func TestLexer_PrecedingWhitespace(t *testing.T) {
	l := New(`A &B`)
	a := l.Peek(0)
	l.Advance()
	amp := l.Peek(0)
	assert.True(t, l.HasPrecedingWhitespace(amp))
	_ = a
}

func TestLexer_NegativeNumber(t *testing.T) {
	l := New(`int<-5,5>`)
	assert.Equal(t, "int", l.Peek(0).str())
	l.Advance()
	assert.Equal(t, "<", l.Peek(0).str())
	l.Advance()
	assert.Equal(t, "-5", l.Peek(0).str())
}
