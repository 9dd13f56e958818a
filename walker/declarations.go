package walker

import (
	"strings"

	"github.com/wudi/phpdoctype/filetoken"
	"github.com/wudi/phpdoctype/lexer"
)

// The functions below are this module's concrete stand-in for the
// host file API spec.md §6 lists as consumed, but treats as an
// external collaborator: getDeclarationName, findExtendedClassName,
// findImplementedInterfaceNames, getMethodParameters,
// getMethodProperties, getMemberProperties. Each operates over a
// *filetoken.Stream rather than a live host AST.

// getDeclarationName returns the identifier immediately following a
// T_CLASS/T_INTERFACE/T_TRAIT/T_FUNCTION token at ptr, skipping a
// by-reference `&` on `function &foo()`.
func getDeclarationName(s *filetoken.Stream, ptr int) string {
	for i := ptr + 1; i < s.Len(); i++ {
		t := s.At(i).Token
		if t.Type == lexer.T_AMPERSAND_NOT_FOLLOWED_BY_VAR_OR_VARARG {
			continue
		}
		if t.Type == lexer.T_STRING {
			return t.Value
		}
		return ""
	}
	return ""
}

// headerEnd returns the index bounding a declaration's header: its
// ScopeOpener if the declaration has a body, otherwise the next ';'
// (an abstract/interface method, or a semicolon-style namespace), or
// the stream's length if neither is found.
func headerEnd(s *filetoken.Stream, ptr int) int {
	if rec := s.At(ptr); rec.ScopeOpener != -1 {
		return rec.ScopeOpener
	}
	for i := ptr + 1; i < s.Len(); i++ {
		if s.At(i).Token.Type == lexer.TOKEN_SEMICOLON {
			return i
		}
	}
	return s.Len()
}

// collectNameList reads a comma-separated list of (possibly
// namespace-qualified) names between [start, end), stopping early at a
// keyword or brace that ends the list.
func collectNameList(s *filetoken.Stream, start, end int) []string {
	var names []string
	var cur strings.Builder
	for i := start; i < end; i++ {
		t := s.At(i).Token
		switch t.Type {
		case lexer.T_STRING, lexer.T_NS_SEPARATOR, lexer.T_NAME_QUALIFIED, lexer.T_NAME_FULLY_QUALIFIED, lexer.T_NAME_RELATIVE:
			cur.WriteString(t.Value)
		case lexer.TOKEN_COMMA:
			if cur.Len() > 0 {
				names = append(names, cur.String())
				cur.Reset()
			}
		case lexer.T_IMPLEMENTS, lexer.T_EXTENDS, lexer.TOKEN_LBRACE:
			if cur.Len() > 0 {
				names = append(names, cur.String())
			}
			return names
		}
	}
	if cur.Len() > 0 {
		names = append(names, cur.String())
	}
	return names
}

// scanAfterKeyword finds kw within ptr's header and returns the name
// list that follows it.
func scanAfterKeyword(s *filetoken.Stream, ptr int, kw lexer.TokenType) []string {
	end := headerEnd(s, ptr)
	for i := ptr + 1; i < end; i++ {
		if s.At(i).Token.Type == kw {
			return collectNameList(s, i+1, end)
		}
	}
	return nil
}

// findExtendedClassName returns the first name following `extends` in
// ptr's header, "" if none. An interface's additional extended
// interfaces are reported by findImplementedInterfaceNames instead,
// since Artifact carries a single Extends slot (spec §3 data model).
func findExtendedClassName(s *filetoken.Stream, ptr int) string {
	names := scanAfterKeyword(s, ptr, lexer.T_EXTENDS)
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// findImplementedInterfaceNames returns every name following
// `implements`, plus any name after the first under `extends` (an
// interface extending more than one parent).
func findImplementedInterfaceNames(s *filetoken.Stream, ptr int) []string {
	extendNames := scanAfterKeyword(s, ptr, lexer.T_EXTENDS)
	implNames := scanAfterKeyword(s, ptr, lexer.T_IMPLEMENTS)
	var out []string
	if len(extendNames) > 1 {
		out = append(out, extendNames[1:]...)
	}
	return append(out, implNames...)
}

// NativeParam is one parameter of a native function signature.
type NativeParam struct {
	Name      string // "$x"
	TypeText  string // "" if untyped
	PassSplat string // any of "", "&", "...", "&..."
}

// getMethodParameters walks the parameter list of the T_FUNCTION token
// at fnPtr, splitting top-level commas and reconstructing each
// parameter's type text, pass/splat markers, and name.
func getMethodParameters(s *filetoken.Stream, fnPtr int) []NativeParam {
	rec := s.At(fnPtr)
	if rec.ParenOpener == -1 || rec.ParenCloser == -1 {
		return nil
	}
	var params []NativeParam
	var cur []lexer.Token
	depth := 0
	flush := func() {
		if len(cur) == 0 {
			return
		}
		params = append(params, parseNativeParamTokens(cur))
		cur = nil
	}
	for i := rec.ParenOpener + 1; i < rec.ParenCloser; i++ {
		t := s.At(i).Token
		switch t.Type {
		case lexer.TOKEN_LPAREN, lexer.TOKEN_LBRACKET, lexer.TOKEN_LBRACE:
			depth++
		case lexer.TOKEN_RPAREN, lexer.TOKEN_RBRACKET, lexer.TOKEN_RBRACE:
			depth--
		}
		if depth == 0 && t.Type == lexer.TOKEN_COMMA {
			flush()
			continue
		}
		cur = append(cur, t)
	}
	flush()
	return params
}

func parseNativeParamTokens(tokens []lexer.Token) NativeParam {
	i, n := 0, len(tokens)
	for i < n {
		switch tokens[i].Type {
		case lexer.T_PUBLIC, lexer.T_PROTECTED, lexer.T_PRIVATE, lexer.T_READONLY, lexer.T_STATIC,
			lexer.T_PUBLIC_SET, lexer.T_PROTECTED_SET, lexer.T_PRIVATE_SET:
			i++
			continue
		case lexer.T_ATTRIBUTE:
			depth := 1
			i++
			for i < n && depth > 0 {
				switch tokens[i].Type {
				case lexer.TOKEN_LBRACKET:
					depth++
				case lexer.TOKEN_RBRACKET:
					depth--
				}
				i++
			}
			continue
		}
		break
	}

	var typeToks []lexer.Token
	var passSplat strings.Builder
	var name string
	for i < n {
		t := tokens[i]
		switch t.Type {
		case lexer.T_VARIABLE:
			name = t.Value
			i = n
			continue
		case lexer.T_AMPERSAND_FOLLOWED_BY_VAR_OR_VARARG:
			passSplat.WriteString("&")
			i++
			continue
		case lexer.T_ELLIPSIS:
			passSplat.WriteString("...")
			i++
			continue
		}
		typeToks = append(typeToks, t)
		i++
	}
	return NativeParam{Name: name, TypeText: joinTokenText(typeToks), PassSplat: passSplat.String()}
}

// joinTokenText concatenates token values verbatim: PHP type-expression
// tokens never need inserted whitespace to stay unambiguous (namespace
// separators, `|`, `&`, `?` are all their own tokens).
func joinTokenText(toks []lexer.Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.Value)
	}
	return b.String()
}

// getReturnTypeText reconstructs the native return-type text following
// a function's `: ` marker, "" if the function is untyped.
func getReturnTypeText(s *filetoken.Stream, fnPtr int) string {
	rec := s.At(fnPtr)
	if rec.ParenCloser == -1 {
		return ""
	}
	i := rec.ParenCloser + 1
	if s.At(i).Token.Type != lexer.TOKEN_COLON {
		return ""
	}
	i++
	end := rec.ScopeOpener
	if end == -1 {
		end = s.Len()
		for j := i; j < s.Len(); j++ {
			if s.At(j).Token.Type == lexer.TOKEN_SEMICOLON {
				end = j
				break
			}
		}
	}
	var toks []lexer.Token
	for j := i; j < end; j++ {
		toks = append(toks, s.At(j).Token)
	}
	return joinTokenText(toks)
}

// MethodProps is the modifier set on a method declaration (spec §6's
// getMethodProperties).
type MethodProps struct {
	IsPublic   bool
	IsStatic   bool
	IsAbstract bool
}

// getMethodProperties scans backward from a T_FUNCTION token over its
// modifier keywords.
func getMethodProperties(s *filetoken.Stream, fnPtr int) MethodProps {
	mp := MethodProps{IsPublic: true}
	for i := fnPtr - 1; i >= 0; i-- {
		switch s.At(i).Token.Type {
		case lexer.T_PUBLIC:
			mp.IsPublic = true
		case lexer.T_PROTECTED, lexer.T_PRIVATE:
			mp.IsPublic = false
		case lexer.T_STATIC:
			mp.IsStatic = true
		case lexer.T_ABSTRACT:
			mp.IsAbstract = true
		case lexer.T_FINAL, lexer.T_READONLY:
			// modifier, keep scanning backward
		default:
			return mp
		}
	}
	return mp
}

// MemberProps is a class property declaration's modifiers plus its
// native type text, if any (spec §6's getMemberProperties).
type MemberProps struct {
	IsPublic   bool
	IsStatic   bool
	IsReadonly bool
	TypeText   string
}

// getMemberProperties scans backward from a property's T_VARIABLE
// token over its modifiers and type tokens.
func getMemberProperties(s *filetoken.Stream, varPtr int) MemberProps {
	mp := MemberProps{IsPublic: true}
	var typeToks []lexer.Token
	sawModifier := false
	for i := varPtr - 1; i >= 0; i-- {
		t := s.At(i).Token
		switch t.Type {
		case lexer.T_PUBLIC:
			mp.IsPublic = true
			sawModifier = true
			continue
		case lexer.T_PROTECTED, lexer.T_PRIVATE:
			mp.IsPublic = false
			sawModifier = true
			continue
		case lexer.T_STATIC:
			mp.IsStatic = true
			sawModifier = true
			continue
		case lexer.T_READONLY:
			mp.IsReadonly = true
			sawModifier = true
			continue
		case lexer.T_VAR:
			sawModifier = true
			continue
		case lexer.TOKEN_SEMICOLON, lexer.TOKEN_LBRACE, lexer.TOKEN_COMMA, lexer.T_CLASS, lexer.T_INTERFACE, lexer.T_TRAIT:
		default:
			if !sawModifier {
				typeToks = append(typeToks, t)
				continue
			}
		}
		break
	}
	for a, b := 0, len(typeToks)-1; a < b; a, b = a+1, b-1 {
		typeToks[a], typeToks[b] = typeToks[b], typeToks[a]
	}
	mp.TypeText = joinTokenText(typeToks)
	return mp
}
