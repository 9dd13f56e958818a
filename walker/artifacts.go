package walker

import (
	"strings"

	"github.com/wudi/phpdoctype"
	"github.com/wudi/phpdoctype/filetoken"
	"github.com/wudi/phpdoctype/lexer"
)

// collectArtifacts is pass 1 (spec §4.5): visit classish declarations
// only, recording {extends, implements} fully qualified against the
// namespace/uses accumulated so far.
func collectArtifacts(s *filetoken.Stream) phpdoctype.ArtifactTable {
	table := phpdoctype.ArtifactTable{}
	namespace := ""
	uses := map[string]string{}
	depth := 0

	for i := 0; i < s.Len(); i++ {
		t := s.At(i).Token
		switch t.Type {
		case lexer.TOKEN_LBRACE:
			depth++
		case lexer.TOKEN_RBRACE:
			depth--
		case lexer.T_NAMESPACE:
			end := headerEnd(s, i)
			namespace = strings.Join(collectNameList(s, i+1, end), "")
			if namespace != "" && !strings.HasPrefix(namespace, `\`) {
				namespace = `\` + namespace
			}
			uses = map[string]string{}
		case lexer.T_USE:
			if depth == 0 {
				registerUse(s, i, uses)
			}
		case lexer.T_CLASS, lexer.T_INTERFACE, lexer.T_TRAIT:
			name := getDeclarationName(s, i)
			if name == "" {
				continue
			}
			scope := &phpdoctype.Scope{Namespace: namespace, Uses: uses}
			fq := scope.ResolveName(name)
			art := &phpdoctype.Artifact{Name: fq}
			if ext := findExtendedClassName(s, i); ext != "" {
				art.Extends = scope.ResolveName(ext)
			}
			for _, n := range findImplementedInterfaceNames(s, i) {
				art.Implements = append(art.Implements, scope.ResolveName(n))
			}
			table[fq] = art
		}
	}
	return table
}

// registerUse parses a namespace-level `use Name\Space [as Alias];`
// (optionally `use function`/`use const`) and records alias -> FQ into
// uses. Group-use (`use Foo\{Bar, Baz};`) is left unsupported — noted
// in DESIGN.md — and causes this statement to be skipped rather than
// misparsed.
func registerUse(s *filetoken.Stream, ptr int, uses map[string]string) {
	end := s.Len()
	for i := ptr + 1; i < s.Len(); i++ {
		if s.At(i).Token.Type == lexer.TOKEN_SEMICOLON {
			end = i
			break
		}
	}

	var cur strings.Builder
	var alias string
	sawAs := false
	for i := ptr + 1; i < end; i++ {
		t := s.At(i).Token
		switch t.Type {
		case lexer.T_FUNCTION, lexer.T_CONST:
			// `use function foo;` / `use const FOO;` share this shape.
		case lexer.T_AS:
			sawAs = true
		case lexer.T_STRING, lexer.T_NS_SEPARATOR, lexer.T_NAME_QUALIFIED, lexer.T_NAME_FULLY_QUALIFIED, lexer.T_NAME_RELATIVE:
			if sawAs {
				alias = t.Value
			} else {
				cur.WriteString(t.Value)
			}
		case lexer.TOKEN_LBRACE:
			return
		}
	}
	name := cur.String()
	if name == "" {
		return
	}
	if !strings.HasPrefix(name, `\`) {
		name = `\` + name
	}
	if alias == "" {
		parts := strings.Split(name, `\`)
		alias = parts[len(parts)-1]
	}
	uses[alias] = name
}
