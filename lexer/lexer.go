package lexer

import (
	"fmt"
	"strconv"
	"strings"
)

// Lexer turns PHP source text into a stream of Tokens. It implements
// just enough of PHP's own lexer to correctly find every declaration
// and its PHPDoc comment: string/heredoc/backtick literals are
// consumed as single opaque tokens rather than split into the
// interpolation sub-tokens a full interpreter would need, since no
// check here ever inspects a string literal's contents.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
	line         int
	column       int

	state LexerState

	errors []string
}

// New returns a Lexer positioned at the start of input.
func New(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		state:  ST_INITIAL,
		errors: make([]string, 0),
	}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	l.position = l.readPosition
	l.readPosition++

	if l.position >= len(l.input) {
		l.ch = 0
		return
	}
	l.ch = l.input[l.position]

	if l.position == 0 {
		l.line = 1
		l.column = 0
		return
	}
	if l.input[l.position-1] == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) peekCharN(n int) byte {
	pos := l.readPosition + n
	if pos >= len(l.input) {
		return 0
	}
	return l.input[pos]
}

func (l *Lexer) getCurrentPosition() Position {
	return Position{Line: l.line, Column: l.column, Offset: l.position}
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.ch) {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLabelPart(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readQualifiedName reads a bare identifier or one qualified by `\`,
// returning which of the four name-shaped token types it turned out
// to be: T_NAME_FULLY_QUALIFIED (\Name), T_NAME_QUALIFIED
// (Name1\Name2), T_NAME_RELATIVE (namespace\Name), or plain T_STRING.
func (l *Lexer) readQualifiedName() (string, TokenType) {
	startPos := l.position

	if l.ch == '\\' {
		l.readChar()
		if !isLabelStart(l.ch) {
			return "\\", T_NS_SEPARATOR
		}
		for isLabelPart(l.ch) {
			l.readChar()
		}
		for l.ch == '\\' && isLabelStart(l.peekChar()) {
			l.readChar()
			for isLabelPart(l.ch) {
				l.readChar()
			}
		}
		return l.input[startPos:l.position], T_NAME_FULLY_QUALIFIED
	}

	identifier := l.readIdentifier()

	if identifier == "namespace" && l.ch == '\\' && isLabelStart(l.peekChar()) {
		for l.ch == '\\' && isLabelStart(l.peekChar()) {
			l.readChar()
			for isLabelPart(l.ch) {
				l.readChar()
			}
		}
		return l.input[startPos:l.position], T_NAME_RELATIVE
	}

	if l.ch == '\\' && isLabelStart(l.peekChar()) {
		for l.ch == '\\' && isLabelPart(l.peekChar()) {
			l.readChar()
			for isLabelPart(l.ch) {
				l.readChar()
			}
		}
		return l.input[startPos:l.position], T_NAME_QUALIFIED
	}

	return identifier, T_STRING
}

func (l *Lexer) readNumber() (string, TokenType) {
	position := l.position
	tokenType := T_LNUMBER

	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		l.readChar()
		l.readChar()
		for isHexDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
		return l.input[position:l.position], T_LNUMBER
	}
	if l.ch == '0' && (l.peekChar() == 'o' || l.peekChar() == 'O') {
		l.readChar()
		l.readChar()
		for isOctalDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
		return l.input[position:l.position], T_LNUMBER
	}
	if l.ch == '0' && isDigit(l.peekChar()) {
		for isOctalDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
		return l.input[position:l.position], T_LNUMBER
	}
	if l.ch == '0' && (l.peekChar() == 'b' || l.peekChar() == 'B') {
		l.readChar()
		l.readChar()
		for isBinaryDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
		return l.input[position:l.position], T_LNUMBER
	}

	for isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}

	// DNUM = ({LNUM}?"."{LNUM})|({LNUM}"."{LNUM}?) — the fractional
	// digits are optional on either side of the point.
	if l.ch == '.' {
		tokenType = T_DNUMBER
		l.readChar()
		for isDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		tokenType = T_DNUMBER
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
	}

	return l.input[position:l.position], tokenType
}

func (l *Lexer) convertNumberString(value string, tokenType TokenType) (TokenType, int64, float64, error) {
	if tokenType == T_DNUMBER {
		cleaned := strings.ReplaceAll(value, "_", "")
		floatVal, err := strconv.ParseFloat(cleaned, 64)
		return T_DNUMBER, 0, floatVal, err
	}

	cleaned := strings.ReplaceAll(value, "_", "")

	var intVal int64
	var err error

	switch {
	case strings.HasPrefix(cleaned, "0b") || strings.HasPrefix(cleaned, "0B"):
		intVal, err = strconv.ParseInt(cleaned[2:], 2, 64)
	case strings.HasPrefix(cleaned, "0x") || strings.HasPrefix(cleaned, "0X"):
		intVal, err = strconv.ParseInt(cleaned[2:], 16, 64)
	case strings.HasPrefix(cleaned, "0o") || strings.HasPrefix(cleaned, "0O"):
		intVal, err = strconv.ParseInt(cleaned[2:], 8, 64)
	case len(cleaned) > 1 && cleaned[0] == '0' && isOctalDigit(cleaned[1]):
		intVal, err = strconv.ParseInt(cleaned, 8, 64)
	default:
		intVal, err = strconv.ParseInt(cleaned, 10, 64)
	}

	if err != nil {
		// PHP's own behavior on overflow: fall back to a float rather
		// than erroring.
		if numError, ok := err.(*strconv.NumError); ok && numError.Err == strconv.ErrRange {
			if floatVal, floatErr := strconv.ParseFloat(cleaned, 64); floatErr == nil {
				return T_DNUMBER, 0, floatVal, nil
			}
		}
		return tokenType, intVal, 0, err
	}

	return tokenType, intVal, 0, err
}

// readDelimitedString consumes everything up to the next unescaped
// delimiter byte, resolving the handful of backslash escapes this
// analyzer's callers ever need to see through (only the delimiter
// itself actually matters to bracket/paren matching downstream; the
// rest is cosmetic). The delimiter is not included in the result.
func (l *Lexer) readDelimitedString(delimiter byte) (string, error) {
	l.readChar()

	var result strings.Builder
	for l.ch != delimiter && l.position < len(l.input) {
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				result.WriteByte('\n')
			case 'r':
				result.WriteByte('\r')
			case 't':
				result.WriteByte('\t')
			default:
				result.WriteByte(l.ch)
			}
		} else {
			result.WriteByte(l.ch)
		}
		l.readChar()
	}

	if l.ch != delimiter {
		return "", fmt.Errorf("unterminated string at line %d, column %d", l.line, l.column)
	}
	l.readChar()
	return result.String(), nil
}

func (l *Lexer) readLineComment() string {
	position := l.position
	for l.ch != '\n' && l.ch != '\r' && l.ch != 0 {
		if l.ch == '?' && l.peekChar() == '>' {
			break
		}
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readBlockComment() string {
	position := l.position
	for {
		if l.position >= len(l.input) {
			break
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			break
		}
		l.readChar()
	}
	return l.input[position:l.position]
}

// NextToken returns the next Token, dispatching on whether the lexer
// is still looking for a `<?php` open tag or is inside PHP code.
func (l *Lexer) NextToken() Token {
	if l.state == ST_INITIAL {
		return l.nextTokenInitial()
	}
	return l.nextTokenInScripting()
}

func (l *Lexer) nextTokenInitial() Token {
	var content strings.Builder
	pos := l.getCurrentPosition()

	for l.ch != 0 {
		if l.ch == '<' && l.peekChar() == '?' {
			if l.peekCharN(1) == 'p' && l.peekCharN(2) == 'h' && l.peekCharN(3) == 'p' {
				if content.Len() > 0 {
					return Token{Type: T_INLINE_HTML, Value: content.String(), Position: pos}
				}
				result := ""
				for i := 0; i < 5; i++ {
					result += string(l.ch)
					l.readChar()
				}
				if isWhitespace(l.ch) {
					result += string(l.ch)
					l.readChar()
				}
				l.state = ST_IN_SCRIPTING
				return Token{Type: T_OPEN_TAG, Value: result, Position: pos}
			}
			if l.peekCharN(1) == '=' {
				if content.Len() > 0 {
					return Token{Type: T_INLINE_HTML, Value: content.String(), Position: pos}
				}
				result := string(l.ch) + string(l.peekChar()) + string(l.peekCharN(1))
				l.readChar()
				l.readChar()
				l.readChar()
				l.state = ST_IN_SCRIPTING
				return Token{Type: T_OPEN_TAG_WITH_ECHO, Value: result, Position: pos}
			}
		}
		content.WriteByte(l.ch)
		l.readChar()
	}

	if content.Len() > 0 {
		return Token{Type: T_INLINE_HTML, Value: content.String(), Position: pos}
	}
	return Token{Type: T_EOF, Value: "", Position: l.getCurrentPosition()}
}

func (l *Lexer) nextTokenInScripting() Token {
	l.skipWhitespace()
	pos := l.getCurrentPosition()

	switch l.ch {
	case 0:
		return Token{Type: T_EOF, Value: "", Position: pos}

	case ';':
		l.readChar()
		return Token{Type: TOKEN_SEMICOLON, Value: ";", Position: pos}
	case ',':
		l.readChar()
		return Token{Type: TOKEN_COMMA, Value: ",", Position: pos}
	case '{':
		l.readChar()
		return Token{Type: TOKEN_LBRACE, Value: "{", Position: pos}
	case '}':
		l.readChar()
		return Token{Type: TOKEN_RBRACE, Value: "}", Position: pos}
	case '(':
		if tokenType, tokenValue, isCast := l.checkTypeCast(); isCast {
			return Token{Type: tokenType, Value: tokenValue, Position: pos}
		}
		l.readChar()
		return Token{Type: TOKEN_LPAREN, Value: "(", Position: pos}
	case ')':
		l.readChar()
		return Token{Type: TOKEN_RPAREN, Value: ")", Position: pos}
	case '[':
		l.readChar()
		return Token{Type: TOKEN_LBRACKET, Value: "[", Position: pos}
	case ']':
		l.readChar()
		return Token{Type: TOKEN_RBRACKET, Value: "]", Position: pos}
	case '~':
		l.readChar()
		return Token{Type: TOKEN_TILDE, Value: "~", Position: pos}
	case '@':
		l.readChar()
		return Token{Type: TOKEN_AT, Value: "@", Position: pos}

	case '+':
		if l.peekChar() == '+' {
			l.readChar()
			l.readChar()
			return Token{Type: T_INC, Value: "++", Position: pos}
		} else if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Type: T_PLUS_EQUAL, Value: "+=", Position: pos}
		}
		l.readChar()
		return Token{Type: TOKEN_PLUS, Value: "+", Position: pos}

	case '-':
		if l.peekChar() == '-' {
			l.readChar()
			l.readChar()
			return Token{Type: T_DEC, Value: "--", Position: pos}
		} else if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Type: T_MINUS_EQUAL, Value: "-=", Position: pos}
		} else if l.peekChar() == '>' {
			l.readChar()
			l.readChar()
			return Token{Type: T_OBJECT_OPERATOR, Value: "->", Position: pos}
		}
		l.readChar()
		return Token{Type: TOKEN_MINUS, Value: "-", Position: pos}

	case '*':
		if l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return Token{Type: T_POW_EQUAL, Value: "**=", Position: pos}
			}
			return Token{Type: T_POW, Value: "**", Position: pos}
		} else if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Type: T_MUL_EQUAL, Value: "*=", Position: pos}
		}
		l.readChar()
		return Token{Type: TOKEN_MULTIPLY, Value: "*", Position: pos}

	case '/':
		if l.peekChar() == '/' {
			comment := l.readLineComment()
			return Token{Type: T_COMMENT, Value: comment, Position: pos}
		} else if l.peekChar() == '*' {
			// PHP only treats /** as a doc comment when followed by
			// whitespace or content, not when it's just /**/.
			isDocComment := l.peekCharN(1) == '*' &&
				(isWhitespace(l.peekCharN(2)) || (l.peekCharN(2) != '/' && l.peekCharN(2) != 0))
			l.readChar()
			l.readChar()
			comment := l.readBlockComment()
			fullComment := "/*" + comment
			if isDocComment {
				return Token{Type: T_DOC_COMMENT, Value: fullComment, Position: pos}
			}
			return Token{Type: T_COMMENT, Value: fullComment, Position: pos}
		} else if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Type: T_DIV_EQUAL, Value: "/=", Position: pos}
		}
		l.readChar()
		return Token{Type: TOKEN_DIVIDE, Value: "/", Position: pos}

	case '%':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Type: T_MOD_EQUAL, Value: "%=", Position: pos}
		}
		l.readChar()
		return Token{Type: TOKEN_MODULO, Value: "%", Position: pos}

	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return Token{Type: T_IS_IDENTICAL, Value: "===", Position: pos}
			}
			return Token{Type: T_IS_EQUAL, Value: "==", Position: pos}
		} else if l.peekChar() == '>' {
			l.readChar()
			l.readChar()
			return Token{Type: T_DOUBLE_ARROW, Value: "=>", Position: pos}
		}
		l.readChar()
		return Token{Type: TOKEN_EQUAL, Value: "=", Position: pos}

	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return Token{Type: T_IS_NOT_IDENTICAL, Value: "!==", Position: pos}
			}
			return Token{Type: T_IS_NOT_EQUAL, Value: "!=", Position: pos}
		}
		l.readChar()
		return Token{Type: TOKEN_EXCLAMATION, Value: "!", Position: pos}

	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			if l.ch == '>' {
				l.readChar()
				return Token{Type: T_SPACESHIP, Value: "<=>", Position: pos}
			}
			return Token{Type: T_IS_SMALLER_OR_EQUAL, Value: "<=", Position: pos}
		} else if l.peekChar() == '>' {
			l.readChar()
			l.readChar()
			return Token{Type: T_IS_NOT_EQUAL, Value: "<>", Position: pos}
		} else if l.peekChar() == '<' {
			if l.peekCharN(1) == '<' {
				return l.handleHeredocStart(pos)
			}
			l.readChar()
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return Token{Type: T_SL_EQUAL, Value: "<<=", Position: pos}
			}
			return Token{Type: T_SL, Value: "<<", Position: pos}
		}
		l.readChar()
		return Token{Type: TOKEN_LT, Value: "<", Position: pos}

	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Type: T_IS_GREATER_OR_EQUAL, Value: ">=", Position: pos}
		} else if l.peekChar() == '>' {
			l.readChar()
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return Token{Type: T_SR_EQUAL, Value: ">>=", Position: pos}
			}
			return Token{Type: T_SR, Value: ">>", Position: pos}
		}
		l.readChar()
		return Token{Type: TOKEN_GT, Value: ">", Position: pos}

	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			l.readChar()
			return Token{Type: T_BOOLEAN_AND, Value: "&&", Position: pos}
		} else if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Type: T_AND_EQUAL, Value: "&=", Position: pos}
		}
		// A by-ref parameter's `&` and an intersection type's `&` are
		// the same byte; PHP (and parseNativeParamTokens, downstream)
		// tells them apart by whether a `$name` or `...` follows.
		if l.isAmpersandFollowedByVarOrVararg() {
			l.readChar()
			return Token{Type: T_AMPERSAND_FOLLOWED_BY_VAR_OR_VARARG, Value: "&", Position: pos}
		}
		l.readChar()
		return Token{Type: T_AMPERSAND_NOT_FOLLOWED_BY_VAR_OR_VARARG, Value: "&", Position: pos}

	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			l.readChar()
			return Token{Type: T_BOOLEAN_OR, Value: "||", Position: pos}
		} else if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Type: T_OR_EQUAL, Value: "|=", Position: pos}
		}
		l.readChar()
		return Token{Type: TOKEN_PIPE, Value: "|", Position: pos}

	case '^':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Type: T_XOR_EQUAL, Value: "^=", Position: pos}
		}
		l.readChar()
		return Token{Type: TOKEN_CARET, Value: "^", Position: pos}

	case '.':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Type: T_CONCAT_EQUAL, Value: ".=", Position: pos}
		} else if l.peekChar() == '.' && l.peekCharN(1) == '.' {
			l.readChar()
			l.readChar()
			l.readChar()
			return Token{Type: T_ELLIPSIS, Value: "...", Position: pos}
		} else if isDigit(l.peekChar()) {
			number, tokenType := l.readNumber()
			finalTokenType, intVal, floatVal, err := l.convertNumberString(number, tokenType)
			if err != nil {
				l.addError(fmt.Sprintf("failed to convert number %s: %v", number, err))
			}
			return Token{Type: finalTokenType, Value: number, IntValue: intVal, FloatValue: floatVal, Position: pos}
		}
		l.readChar()
		return Token{Type: TOKEN_DOT, Value: ".", Position: pos}

	case '?':
		if l.peekChar() == '?' {
			l.readChar()
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return Token{Type: T_COALESCE_EQUAL, Value: "??=", Position: pos}
			}
			return Token{Type: T_COALESCE, Value: "??", Position: pos}
		} else if l.peekChar() == '-' && l.peekCharN(1) == '>' {
			l.readChar()
			l.readChar()
			l.readChar()
			return Token{Type: T_NULLSAFE_OBJECT_OPERATOR, Value: "?->", Position: pos}
		} else if l.peekChar() == '>' {
			l.readChar()
			l.readChar()
			l.state = ST_INITIAL
			return Token{Type: T_CLOSE_TAG, Value: "?>", Position: pos}
		}
		l.readChar()
		return Token{Type: TOKEN_QUESTION, Value: "?", Position: pos}

	case ':':
		if l.peekChar() == ':' {
			l.readChar()
			l.readChar()
			return Token{Type: T_PAAMAYIM_NEKUDOTAYIM, Value: "::", Position: pos}
		}
		l.readChar()
		return Token{Type: TOKEN_COLON, Value: ":", Position: pos}

	case '$':
		if isLabelStart(l.peekChar()) {
			l.readChar()
			identifier := l.readIdentifier()
			return Token{Type: T_VARIABLE, Value: "$" + identifier, Position: pos}
		}
		l.readChar()
		return Token{Type: TOKEN_DOLLAR, Value: "$", Position: pos}

	case '\\':
		name, tokenType := l.readQualifiedName()
		return Token{Type: tokenType, Value: name, Position: pos}

	case '"':
		str, err := l.readDelimitedString('"')
		if err != nil {
			l.addError(err.Error())
			return Token{Type: T_BAD_CHARACTER, Value: "", Position: pos}
		}
		return Token{Type: T_CONSTANT_ENCAPSED_STRING, Value: `"` + str + `"`, Position: pos}

	case '\'':
		str, err := l.readDelimitedString('\'')
		if err != nil {
			l.addError(err.Error())
			return Token{Type: T_BAD_CHARACTER, Value: "", Position: pos}
		}
		return Token{Type: T_CONSTANT_ENCAPSED_STRING, Value: "'" + str + "'", Position: pos}

	case '`':
		str, err := l.readDelimitedString('`')
		if err != nil {
			l.addError(err.Error())
			return Token{Type: T_BAD_CHARACTER, Value: "", Position: pos}
		}
		return Token{Type: TOKEN_BACKTICK, Value: "`" + str + "`", Position: pos}

	case '#':
		if l.peekChar() == '[' {
			l.readChar()
			l.readChar()
			return Token{Type: T_ATTRIBUTE, Value: "#[", Position: pos}
		}
		comment := l.readLineComment()
		return Token{Type: T_COMMENT, Value: comment, Position: pos}

	default:
		if isLabelStart(l.ch) {
			name, tokenType := l.readQualifiedName()

			if tokenType == T_STRING {
				if name == "yield" {
					if tok, ok := l.tryYieldFrom(pos); ok {
						return tok
					}
				}
				if hookTok, ok := l.tryPropertyHook(name, pos); ok {
					return hookTok
				}
				if keywordType, isKeyword := IsKeyword(name); isKeyword {
					return Token{Type: keywordType, Value: name, Position: pos}
				}
			}

			return Token{Type: tokenType, Value: name, Position: pos}
		} else if isDigit(l.ch) {
			number, tokenType := l.readNumber()
			finalTokenType, intVal, floatVal, err := l.convertNumberString(number, tokenType)
			if err != nil {
				l.addError(fmt.Sprintf("failed to convert number %s: %v", number, err))
			}
			return Token{Type: finalTokenType, Value: number, IntValue: intVal, FloatValue: floatVal, Position: pos}
		}

		ch := l.ch
		l.readChar()
		l.addError(fmt.Sprintf("unexpected character '%c' at line %d, column %d", ch, pos.Line, pos.Column))
		return Token{Type: T_BAD_CHARACTER, Value: string(ch), Position: pos}
	}
}

// tryYieldFrom looks past whitespace for "from" following a bare
// "yield", restoring position if it isn't there.
func (l *Lexer) tryYieldFrom(pos Position) (Token, bool) {
	savedPosition, savedReadPos, savedCh, savedLine, savedColumn := l.position, l.readPosition, l.ch, l.line, l.column

	l.skipWhitespace()
	if isLabelStart(l.ch) {
		if next := l.readIdentifier(); next == "from" {
			return Token{Type: T_YIELD_FROM, Value: "yield from", Position: pos}, true
		}
	}

	l.position, l.readPosition, l.ch, l.line, l.column = savedPosition, savedReadPos, savedCh, savedLine, savedColumn
	return Token{}, false
}

// tryPropertyHook recognizes the PHP 8.4 asymmetric-visibility
// modifiers private(set)/protected(set)/public(set) immediately
// following one of those three keywords.
func (l *Lexer) tryPropertyHook(name string, pos Position) (Token, bool) {
	var hookType TokenType
	switch name {
	case "private":
		hookType = T_PRIVATE_SET
	case "protected":
		hookType = T_PROTECTED_SET
	case "public":
		hookType = T_PUBLIC_SET
	default:
		return Token{}, false
	}

	if l.ch != '(' || l.peekChar() != 's' || l.peekCharN(1) != 'e' || l.peekCharN(2) != 't' || l.peekCharN(3) != ')' {
		return Token{}, false
	}

	hookPart := ""
	for i := 0; i < 5; i++ {
		hookPart += string(l.ch)
		l.readChar()
	}
	return Token{Type: hookType, Value: name + hookPart, Position: pos}, true
}

// handleHeredocStart reads an entire <<<LABEL ... LABEL heredoc or
// <<<'LABEL' ... LABEL nowdoc as one token positioned at the opening
// `<<<`; its Value runs from the end of the opening label through the
// closing label. Nothing downstream needs the body
// split into an interpolation-aware sub-token stream: function and
// method bodies are skipped wholesale by the declaration walker, and a
// heredoc used as a property default is never compared against
// anything.
func (l *Lexer) handleHeredocStart(pos Position) Token {
	l.readChar()
	l.readChar()
	l.readChar()

	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}

	quote := byte(0)
	if l.ch == '\'' || l.ch == '"' {
		quote = l.ch
		l.readChar()
	}

	label := l.readHeredocLabel()
	if quote != 0 && l.ch == quote {
		l.readChar()
	}

	if label == "" {
		l.addError("invalid heredoc/nowdoc label")
		return Token{Type: T_CONSTANT_ENCAPSED_STRING, Value: "<<<", Position: pos}
	}

	start := l.position
	for l.ch != '\n' && l.ch != '\r' && l.ch != 0 {
		l.readChar()
	}
	if l.ch == '\r' {
		l.readChar()
	}
	if l.ch == '\n' {
		l.readChar()
	}

	for l.ch != 0 && !l.isAtHeredocEnd(label) {
		l.readChar()
	}
	for i := 0; i < len(label); i++ {
		l.readChar()
	}

	return Token{Type: T_CONSTANT_ENCAPSED_STRING, Value: l.input[start:l.position], Position: pos}
}

func (l *Lexer) readHeredocLabel() string {
	var label strings.Builder
	if !isLabelStart(l.ch) {
		return ""
	}
	for isLabelPart(l.ch) {
		label.WriteByte(l.ch)
		l.readChar()
	}
	return label.String()
}

// isAtHeredocEnd reports whether the current position is a valid
// heredoc/nowdoc closing label: at the start of a line (allowing
// leading indentation, PHP 7.3+'s flexible heredoc syntax), matching
// label exactly, and not itself a prefix of a longer identifier.
func (l *Lexer) isAtHeredocEnd(label string) bool {
	if l.column != 0 {
		pos := l.position - 1
		for pos >= 0 && l.input[pos] != '\n' && l.input[pos] != '\r' {
			if l.input[pos] != ' ' && l.input[pos] != '\t' {
				return false
			}
			pos--
		}
	}

	labelLen := len(label)
	if l.position+labelLen > len(l.input) {
		return false
	}
	if l.input[l.position:l.position+labelLen] != label {
		return false
	}

	nextPos := l.position + labelLen
	if nextPos >= len(l.input) {
		return true
	}
	return !isLabelPart(l.input[nextPos])
}

func (l *Lexer) addError(msg string) {
	l.errors = append(l.errors, msg)
}

// GetErrors returns every lexical error accumulated so far (e.g.
// unterminated strings), in the order they were found.
func (l *Lexer) GetErrors() []string {
	return l.errors
}

// checkTypeCast reports whether the parenthesized text starting at
// the current '(' is a cast expression like "(int)", restoring the
// lexer's position and returning false if it isn't.
func (l *Lexer) checkTypeCast() (TokenType, string, bool) {
	oldPosition, oldReadPosition, oldCh, oldLine, oldColumn := l.position, l.readPosition, l.ch, l.line, l.column

	l.readChar()
	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}

	start := l.position
	if isLabelStart(l.ch) {
		for isLabelPart(l.ch) {
			l.readChar()
		}
	}
	typeName := l.input[start:l.position]

	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}

	restore := func() (TokenType, string, bool) {
		l.position, l.readPosition, l.ch, l.line, l.column = oldPosition, oldReadPosition, oldCh, oldLine, oldColumn
		return 0, "", false
	}

	if l.ch != ')' {
		return restore()
	}

	var tokenType TokenType
	switch strings.ToLower(typeName) {
	case "int", "integer":
		tokenType = T_INT_CAST
	case "bool", "boolean":
		tokenType = T_BOOL_CAST
	case "float", "double", "real":
		tokenType = T_DOUBLE_CAST
	case "string", "binary":
		tokenType = T_STRING_CAST
	case "array":
		tokenType = T_ARRAY_CAST
	case "object":
		tokenType = T_OBJECT_CAST
	case "unset":
		tokenType = T_UNSET_CAST
	default:
		return restore()
	}

	l.readChar()
	return tokenType, "(" + typeName + ")", true
}

func isLabelStart(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || ch >= 0x80
}

func isLabelPart(ch byte) bool {
	return isLabelStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

func isOctalDigit(ch byte) bool {
	return '0' <= ch && ch <= '7'
}

func isBinaryDigit(ch byte) bool {
	return ch == '0' || ch == '1'
}

// isAmpersandFollowedByVarOrVararg implements PHP's own
// OPTIONAL_WHITESPACE_OR_COMMENTS("$"|"...") lookahead for telling a
// by-reference `&` apart from an intersection-type `&`.
func (l *Lexer) isAmpersandFollowedByVarOrVararg() bool {
	pos := l.readPosition

	for pos < len(l.input) {
		ch := l.input[pos]

		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			pos++
			continue
		}
		if ch == '/' && pos+1 < len(l.input) && l.input[pos+1] == '/' {
			for pos < len(l.input) && l.input[pos] != '\n' {
				pos++
			}
			continue
		}
		if ch == '/' && pos+1 < len(l.input) && l.input[pos+1] == '*' {
			pos += 2
			for pos+1 < len(l.input) {
				if l.input[pos] == '*' && l.input[pos+1] == '/' {
					pos += 2
					break
				}
				pos++
			}
			continue
		}
		if ch == '#' {
			for pos < len(l.input) && l.input[pos] != '\n' {
				pos++
			}
			continue
		}

		if ch == '$' {
			return true
		}
		if ch == '.' && pos+2 < len(l.input) && l.input[pos+1] == '.' && l.input[pos+2] == '.' {
			return true
		}
		return false
	}

	return false
}
