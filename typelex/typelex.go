// Package typelex implements the lexer-less... rather, the small
// lookahead-capable lexer TypeParser drives over a PHPDoc/native
// type-expression text buffer (spec §4.1). It is independent of the
// full PHP source tokenizer in package lexer: type expressions are a
// tiny irregular grammar lexed directly from their own substring.
package typelex

import "strings"

// Token is a lexed span within the type-expression text. Text is nil
// to mark end-of-input or an unterminated string (spec §3).
type Token struct {
	Start int
	End   int
	Text  *string
}

func (t Token) str() string {
	if t.Text == nil {
		return ""
	}
	return *t.Text
}

// Lexer is a single-threaded cursor over a text buffer with a growable
// lookahead queue (spec §4.1).
type Lexer struct {
	text   string
	pos    int
	lookahead []Token
}

// New returns a Lexer positioned at the start of text.
func New(text string) *Lexer {
	return &Lexer{text: text}
}

// Snapshot captures enough state to Restore to this exact lexer
// position later, for the parser's speculative-parse rollback.
type Snapshot struct {
	pos       int
	lookahead []Token
}

// Snapshot copies the lookahead queue and cursor position (spec §5:
// "Snapshot/restore is by copying the lookahead queue and the
// next-token pointer before a speculative parse").
func (l *Lexer) Snapshot() Snapshot {
	cp := make([]Token, len(l.lookahead))
	copy(cp, l.lookahead)
	return Snapshot{pos: l.pos, lookahead: cp}
}

// Restore resets the lexer to a previously captured Snapshot.
func (l *Lexer) Restore(s Snapshot) {
	l.pos = s.pos
	l.lookahead = make([]Token, len(s.lookahead))
	copy(l.lookahead, s.lookahead)
}

// Peek returns the k-th upcoming token (0 = current), lexing ahead and
// caching into the lookahead queue as needed.
func (l *Lexer) Peek(k int) Token {
	for len(l.lookahead) <= k {
		l.lookahead = append(l.lookahead, l.lexOne())
	}
	return l.lookahead[k]
}

// Advance consumes the current token (index 0) and shifts the
// lookahead queue down by one.
func (l *Lexer) Advance() {
	l.Peek(0)
	l.lookahead = l.lookahead[1:]
}

// PrecedingByte returns the raw byte immediately preceding tok's start
// in the original text, or 0 if tok starts at offset 0. The caller uses
// this to detect "no space before token" style smells (spec §4.1).
func (l *Lexer) PrecedingByte(tok Token) byte {
	if tok.Start <= 0 || tok.Start > len(l.text) {
		return 0
	}
	return l.text[tok.Start-1]
}

// HasPrecedingWhitespace reports whether whitespace (or start-of-input)
// immediately precedes tok.
func (l *Lexer) HasPrecedingWhitespace(tok Token) bool {
	if tok.Start == 0 {
		return true
	}
	b := l.PrecedingByte(tok)
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isIdentStart(b byte) bool {
	return b == '_' || b == '$' || b == '\\' || b >= 0x7F ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// lexOne scans the next token starting at l.pos, advancing l.pos past
// it. Whitespace is skipped first.
func (l *Lexer) lexOne() Token {
	for l.pos < len(l.text) && isWhitespace(l.text[l.pos]) {
		l.pos++
	}
	start := l.pos
	if l.pos >= len(l.text) {
		return Token{Start: start, End: start, Text: nil}
	}

	c := l.text[l.pos]

	switch {
	case c == '.' && strings.HasPrefix(l.text[l.pos:], "..."):
		l.pos += 3
		text := "..."
		return Token{Start: start, End: l.pos, Text: &text}
	case c == ':' && l.pos+1 < len(l.text) && l.text[l.pos+1] == ':':
		l.pos += 2
		text := "::"
		return Token{Start: start, End: l.pos, Text: &text}
	case c == '\'' || c == '"':
		return l.lexString(c)
	case isDigit(c) || (c == '-' && l.pos+1 < len(l.text) && isDigit(l.text[l.pos+1])):
		return l.lexNumber()
	case isIdentStart(c) && c != '$':
		return l.lexIdentifier(false)
	case c == '$':
		return l.lexIdentifier(true)
	default:
		l.pos++
		text := string(c)
		return Token{Start: start, End: l.pos, Text: &text}
	}
}

func (l *Lexer) lexString(quote byte) Token {
	start := l.pos
	l.pos++ // opening quote
	for l.pos < len(l.text) {
		c := l.text[l.pos]
		if c == '\\' && l.pos+1 < len(l.text) {
			l.pos += 2
			continue
		}
		if c == quote {
			l.pos++
			text := l.text[start:l.pos]
			return Token{Start: start, End: l.pos, Text: &text}
		}
		l.pos++
	}
	// unterminated: sentinel end-of-stream
	l.pos = len(l.text)
	return Token{Start: start, End: l.pos, Text: nil}
}

func (l *Lexer) lexNumber() Token {
	start := l.pos
	if l.text[l.pos] == '-' {
		l.pos++
	}
	for l.pos < len(l.text) {
		c := l.text[l.pos]
		if isDigit(c) || c == '.' || c == '_' {
			l.pos++
			continue
		}
		break
	}
	text := l.text[start:l.pos]
	return Token{Start: start, End: l.pos, Text: &text}
}

func (l *Lexer) lexIdentifier(dollar bool) Token {
	start := l.pos
	l.pos++ // first char ($ / letter / _ / \ / high-byte)
	for l.pos < len(l.text) {
		c := l.text[l.pos]
		ok := c == '_' || c >= 0x7F || (c >= 'a' && c <= 'z') ||
			(c >= 'A' && c <= 'Z') || isDigit(c)
		if !ok && !dollar {
			ok = c == '-' || c == '\\'
		}
		if !ok {
			break
		}
		l.pos++
	}
	text := l.text[start:l.pos]
	return Token{Start: start, End: l.pos, Text: &text}
}
