package walker

import (
	"regexp"
	"strings"

	"github.com/wudi/phpdoctype"
)

// tagLineRe matches one `@tagname rest-of-line` line within a PHPDoc
// block, after stripping the comment's own `/**`/`*/` delimiters and
// each line's leading ` * `.
var tagLineRe = regexp.MustCompile(`(?m)^[ \t]*(?:/\*\*)?[ \t]*\*?[ \t]*@([A-Za-z][A-Za-z0-9_\\]*)[ \t]*(.*)$`)

// scanDocComment splits a T_DOC_COMMENT token's raw text into a
// phpdoctype.Comment keyed by tag name. ptr anchors every occurrence
// at the comment token's own index — the underlying lexer has no
// sub-token for an individual `@tag` line, unlike the PHPCS-style
// multi-token doc-comment model spec §6 describes.
func scanDocComment(ptr int, text string) *phpdoctype.Comment {
	c := phpdoctype.NewComment(ptr)
	for _, m := range tagLineRe.FindAllStringSubmatch(text, -1) {
		tag := strings.ToLower(m[1])
		content := strings.TrimSpace(m[2])
		content = strings.TrimSpace(strings.TrimSuffix(content, "*/"))
		c.AddTag(tag, phpdoctype.TagOccurrence{Ptr: ptr, Content: content, CStartPtr: ptr, CEndPtr: ptr})
	}
	return c
}

// paramOccurrence finds the @param occurrence whose Content names
// varName (e.g. "$x"), parsing just enough of each occurrence's text
// to find its `$name` token without invoking the full type parser.
func paramOccurrence(occs []phpdoctype.TagOccurrence, varName string) (phpdoctype.TagOccurrence, bool) {
	for _, occ := range occs {
		if occContainsVar(occ.Content, varName) {
			return occ, true
		}
	}
	return phpdoctype.TagOccurrence{}, false
}

func occContainsVar(content, varName string) bool {
	for _, field := range strings.Fields(content) {
		if field == varName {
			return true
		}
		// A field that merely starts with varName names a different
		// variable ("$xy" when looking for "$x"), so the occurrence does
		// not match; a field continuing with '[' is skipped instead.
		if strings.HasPrefix(field, varName) && len(field) > len(varName) && field[len(varName)] != '[' {
			return false
		}
	}
	return false
}
