// Package filetoken reshapes the package lexer's raw PHP token stream
// into PHP_CodeSniffer-style records: each token additionally knows
// its enclosing scope's opening/closing brace and, for a
// parenthesized construct, its opening/closing parenthesis. The
// DeclarationWalker (package walker) consumes a *Stream rather than a
// bare token slice, mirroring the host tokenizer spec.md §1 treats as
// an external collaborator.
package filetoken

import "github.com/wudi/phpdoctype/lexer"

// Record is a single token plus the bracket-matching metadata the
// walker needs to find a declaration's body without re-scanning. Field
// names mirror the host tokenizer record contract spec.md §6
// specifies the shape of (scope_opener/closer, parenthesis_opener/
// closer, bracket_opener/closer, attribute_closer); comment_tags is
// not carried here since the underlying lexer emits a whole PHPDoc
// block as a single T_DOC_COMMENT token rather than per-tag
// sub-tokens — package walker's own docblock scanner splits it.
type Record struct {
	Token lexer.Token
	Index int

	// ScopeOpener/ScopeCloser are the indices of the '{'/'}' pair that
	// delimits this token's body, set only on tokens that open a
	// scope (T_CLASS, T_INTERFACE, T_TRAIT, T_FUNCTION, T_NAMESPACE
	// with braces). -1 means "not applicable" or "abstract/interface
	// method with no body".
	ScopeOpener int
	ScopeCloser int

	// ParenOpener/ParenCloser locate a function/method's parameter
	// list. -1 when not applicable.
	ParenOpener int
	ParenCloser int

	// BracketOpener/BracketCloser pair every '['/']', set on both the
	// opening and closing token. -1 when not applicable.
	BracketOpener int
	BracketCloser int

	// AttributeCloser is, on a T_ATTRIBUTE ('#[') token, the index of
	// the ']' that closes it (tracked by bracket depth, since the
	// attribute's own opening bracket is fused into the T_ATTRIBUTE
	// token rather than a separate '['). -1 when not applicable.
	AttributeCloser int
}

// Stream is a fully tokenized, bracket-matched file.
type Stream struct {
	Records []Record
}

// Tokenize runs the package lexer over source and builds a Stream with
// bracket matching resolved (spec §1: the source tokenizer is an
// external collaborator; this is this module's concrete stand-in for
// it).
func Tokenize(source string) *Stream {
	lx := lexer.New(source)
	var records []Record
	for {
		tok := lx.NextToken()
		records = append(records, Record{
			Token: tok, Index: len(records),
			ScopeOpener: -1, ScopeCloser: -1,
			ParenOpener: -1, ParenCloser: -1,
			BracketOpener: -1, BracketCloser: -1,
			AttributeCloser: -1,
		})
		if tok.Type == lexer.T_EOF {
			break
		}
	}
	s := &Stream{Records: records}
	s.matchScopes()
	s.matchSquareBrackets()
	s.matchAttributes()
	return s
}

// matchBrackets pairs every '{'...'}' and '('...')' via a stack, so
// ParenOpener/ParenCloser can be looked up in O(1) once assigned by
// matchScopes.
func (s *Stream) matchBrackets() (braces, parens map[int]int) {
	braces = map[int]int{}
	parens = map[int]int{}
	var braceStack, parenStack []int
	for _, r := range s.Records {
		switch r.Token.Type {
		case lexer.TOKEN_LBRACE:
			braceStack = append(braceStack, r.Index)
		case lexer.TOKEN_RBRACE:
			if n := len(braceStack); n > 0 {
				open := braceStack[n-1]
				braceStack = braceStack[:n-1]
				braces[open] = r.Index
				braces[r.Index] = open
			}
		case lexer.TOKEN_LPAREN:
			parenStack = append(parenStack, r.Index)
		case lexer.TOKEN_RPAREN:
			if n := len(parenStack); n > 0 {
				open := parenStack[n-1]
				parenStack = parenStack[:n-1]
				parens[open] = r.Index
				parens[r.Index] = open
			}
		}
	}
	return braces, parens
}

// isScopeKeyword reports whether t opens a class-ish, function, or
// brace-delimited namespace declaration whose body the walker needs to
// find. A semicolon-style `namespace Foo;` declaration hits the
// TOKEN_SEMICOLON branch below and is left with ScopeOpener/Closer
// == -1, meaning "extends to end of file".
func isScopeKeyword(t lexer.TokenType) bool {
	switch t {
	case lexer.T_CLASS, lexer.T_INTERFACE, lexer.T_TRAIT, lexer.T_FUNCTION, lexer.T_NAMESPACE:
		return true
	}
	return false
}

// matchScopes walks every declaration-opening keyword forward to its
// parameter list (if a T_FUNCTION) and its opening '{' (if the
// declaration has a body at all — interface methods and abstract
// methods don't), filling in ScopeOpener/ScopeCloser/ParenOpener/
// ParenCloser on that keyword's Record.
func (s *Stream) matchScopes() {
	braces, parens := s.matchBrackets()
	for i := range s.Records {
		if !isScopeKeyword(s.Records[i].Token.Type) {
			continue
		}
		j := i + 1
		if s.Records[i].Token.Type == lexer.T_FUNCTION {
			for j < len(s.Records) && s.Records[j].Token.Type != lexer.TOKEN_LPAREN && s.Records[j].Token.Type != lexer.TOKEN_SEMICOLON && s.Records[j].Token.Type != lexer.TOKEN_LBRACE {
				j++
			}
			if j < len(s.Records) && s.Records[j].Token.Type == lexer.TOKEN_LPAREN {
				open := s.Records[j].Index
				if close, ok := parens[open]; ok {
					s.Records[i].ParenOpener = open
					s.Records[i].ParenCloser = close
					j = close + 1
				}
			}
		}
		for j < len(s.Records) && s.Records[j].Token.Type != lexer.TOKEN_LBRACE && s.Records[j].Token.Type != lexer.TOKEN_SEMICOLON {
			j++
		}
		if j < len(s.Records) && s.Records[j].Token.Type == lexer.TOKEN_LBRACE {
			open := s.Records[j].Index
			if close, ok := braces[open]; ok {
				s.Records[i].ScopeOpener = open
				s.Records[i].ScopeCloser = close
			}
		}
	}
}

// matchSquareBrackets pairs every '['...']' via a stack, covering both
// array-literal/array-access brackets and an attribute group's
// trailing ']'.
func (s *Stream) matchSquareBrackets() {
	var stack []int
	for i := range s.Records {
		switch s.Records[i].Token.Type {
		case lexer.TOKEN_LBRACKET:
			stack = append(stack, i)
		case lexer.TOKEN_RBRACKET:
			if n := len(stack); n > 0 {
				open := stack[n-1]
				stack = stack[:n-1]
				s.Records[open].BracketOpener = open
				s.Records[open].BracketCloser = i
				s.Records[i].BracketOpener = open
				s.Records[i].BracketCloser = i
			}
		}
	}
}

// matchAttributes locates, for every T_ATTRIBUTE ('#[') token, the ']'
// that closes it. The attribute's own opening bracket is fused into
// the T_ATTRIBUTE token itself (the lexer has no separate '[' for it),
// so matching tracks bracket depth starting at 1 rather than using the
// '['/']' stack above.
func (s *Stream) matchAttributes() {
	for i := range s.Records {
		if s.Records[i].Token.Type != lexer.T_ATTRIBUTE {
			continue
		}
		depth := 1
		for j := i + 1; j < len(s.Records); j++ {
			switch s.Records[j].Token.Type {
			case lexer.TOKEN_LBRACKET:
				depth++
			case lexer.TOKEN_RBRACKET:
				depth--
				if depth == 0 {
					s.Records[i].AttributeCloser = j
				}
			}
			if depth == 0 {
				break
			}
		}
	}
}

// At returns the Record at i, or a T_EOF Record whose Index and
// matching fields are all -1 if i is out of range (so callers can Peek past the end safely).
func (s *Stream) At(i int) Record {
	if i < 0 || i >= len(s.Records) {
		return Record{
			Token: lexer.Token{Type: lexer.T_EOF}, Index: -1,
			ScopeOpener: -1, ScopeCloser: -1,
			ParenOpener: -1, ParenCloser: -1,
			BracketOpener: -1, BracketCloser: -1,
			AttributeCloser: -1,
		}
	}
	return s.Records[i]
}

// Len returns the number of records, including the trailing T_EOF.
func (s *Stream) Len() int {
	return len(s.Records)
}
