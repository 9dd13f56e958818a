package lexer

// LexerState selects which of NextToken's two scanning modes is
// active. A declaration-level PHPDoc sniff never needs to look inside
// a string's interpolation or track nested brace contexts the way a
// full expression-evaluating tokenizer does, so every other PHP
// lexer state PHP's own engine defines collapses into the single
// ST_IN_SCRIPTING mode here: double-quoted strings, heredoc/nowdoc
// bodies, and backtick shell-exec strings are all read as one atomic
// token apiece (see readDelimitedString, handleHeredocStart).
type LexerState int

const (
	// ST_INITIAL scans raw HTML up to the next <?php/<?= open tag.
	ST_INITIAL LexerState = iota
	// ST_IN_SCRIPTING scans PHP code proper.
	ST_IN_SCRIPTING
)

func (s LexerState) String() string {
	switch s {
	case ST_INITIAL:
		return "ST_INITIAL"
	case ST_IN_SCRIPTING:
		return "ST_IN_SCRIPTING"
	default:
		return "UNKNOWN_STATE"
	}
}
