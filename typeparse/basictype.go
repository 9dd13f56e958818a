package typeparse

import (
	"fmt"
	"strings"

	"github.com/wudi/phpdoctype"
	"github.com/wudi/phpdoctype/typecompare"
	"github.com/wudi/phpdoctype/typelex"
)

// keywordAliases maps a non-canonical spelling to its canonical atom
// (spec §4.2 style table).
var keywordAliases = map[string]string{
	"integer":       phpdoctype.Int,
	"boolean":       phpdoctype.Bool,
	"double":        phpdoctype.Float,
	"never-return":  phpdoctype.Never,
	"never-returns": phpdoctype.Never,
	"no-return":     phpdoctype.Never,
}

// directKeywords is the fixed-spelling subset of the atom vocabulary
// reachable by plain case-insensitive match (self/parent are accepted
// by resolveKeyword and kept as atoms; static is handled by parseStatic
// since it needs scope substitution).
var directKeywords = map[string]bool{
	phpdoctype.Int: true, phpdoctype.Float: true, phpdoctype.Bool: true,
	phpdoctype.String: true, phpdoctype.Array: true, phpdoctype.Iterable: true,
	phpdoctype.Object: true, phpdoctype.Callable: true, phpdoctype.Resource: true,
	phpdoctype.Mixed: true, phpdoctype.Never: true, phpdoctype.Null: true,
	phpdoctype.Void: true, phpdoctype.ArrayKey: true, phpdoctype.Scalar: true,
	phpdoctype.CallableString: true,
}

func resolveKeyword(lowered string) (canon string, ok bool) {
	if c, found := keywordAliases[lowered]; found {
		return c, true
	}
	if directKeywords[lowered] {
		return lowered, true
	}
	if lowered == phpdoctype.Self || lowered == phpdoctype.Parent {
		return lowered, true
	}
	return "", false
}

// parseSingleType implements `'(' anyType ')' arraySuffix* | basicType
// arraySuffix*` (spec §4.2). A parenthesized sub-union is rejected:
// the grammar's DNF invariant forbids distributing "(A|B)&C".
func (p *parser) parseSingleType() (string, error) {
	if tok := p.lex.Peek(0); tok.Text != nil && *tok.Text == "(" {
		p.lex.Advance()
		inner, err := p.parseUnion()
		if err != nil {
			return "", err
		}
		if len(phpdoctype.SplitUnion(inner)) > 1 {
			return "", fmt.Errorf("parenthesized union is not valid DNF: %q", inner)
		}
		closeTok := p.lex.Peek(0)
		if closeTok.Text == nil || *closeTok.Text != ")" {
			return "", fmt.Errorf("expected ')'")
		}
		p.lex.Advance()
		return p.applyArraySuffixes(inner)
	}

	atom, err := p.parseBasicType()
	if err != nil {
		return "", err
	}
	return p.applyArraySuffixes(atom)
}

// applyArraySuffixes consumes zero or more literal `[]` suffixes. The
// canonical model has no "array of X" atom, so any suffixed type
// collapses to the bare array keyword (spec §3 atom list).
func (p *parser) applyArraySuffixes(atom string) (string, error) {
	for {
		tok := p.lex.Peek(0)
		if tok.Text == nil || *tok.Text != "[" {
			break
		}
		next := p.lex.Peek(1)
		if next.Text == nil || *next.Text != "]" {
			break
		}
		p.lex.Advance()
		p.lex.Advance()
		atom = phpdoctype.Array
		p.phpfig = false
	}
	return atom, nil
}

// parseIntersection implements `singleType ('&' singleType)*` with the
// '&' / pass-by-reference disambiguation, intersection participant
// validation, and supertype elision (spec §4.2).
func (p *parser) parseIntersection() (string, error) {
	first, err := p.parseSingleType()
	if err != nil {
		return "", err
	}
	atoms := []string{first}
	for {
		tok := p.lex.Peek(0)
		if tok.Text == nil || *tok.Text != "&" {
			break
		}
		if isAmpersandTerminator(p.lex.Peek(1)) {
			break
		}
		p.lex.Advance()
		m, err := p.parseSingleType()
		if err != nil {
			return "", err
		}
		atoms = append(atoms, m)
	}
	if len(atoms) > 1 {
		for _, a := range atoms {
			if !p.isValidIntersectionParticipant(a) {
				return "", fmt.Errorf("invalid intersection participant %q", a)
			}
		}
		atoms = p.elideIntersectionSupertypes(atoms)
	}
	return phpdoctype.NormalizeIntersection(atoms), nil
}

// isAmpersandTerminator reports whether the token following an '&'
// means the '&' is a by-reference parameter marker rather than an
// intersection operator (spec §4.2: "'&' is ambiguous with
// pass-by-reference; disambiguated by what follows").
func isAmpersandTerminator(tok typelex.Token) bool {
	if tok.Text == nil {
		return true
	}
	switch *tok.Text {
	case "...", "=", ",", ")":
		return true
	}
	return strings.HasPrefix(*tok.Text, "$")
}

func (p *parser) isValidIntersectionParticipant(atom string) bool {
	switch atom {
	case phpdoctype.Object, phpdoctype.Iterable, phpdoctype.Callable,
		phpdoctype.Self, phpdoctype.Parent:
		return true
	}
	return phpdoctype.IsQualifiedName(atom) || phpdoctype.IsStaticBinding(atom)
}

// elideIntersectionSupertypes drops an atom that is a known supertype
// of another atom present in the same intersection (spec §4.2: "each
// component's known supertypes are removed").
func (p *parser) elideIntersectionSupertypes(atoms []string) []string {
	keep := make([]bool, len(atoms))
	for i := range keep {
		keep[i] = true
	}
	for i, a := range atoms {
		supers := p.oracle.SuperTypes(a, p.scope)
		superSet := make(map[string]bool, len(supers))
		for _, s := range supers {
			superSet[s] = true
		}
		for j, b := range atoms {
			if i == j {
				continue
			}
			if superSet[b] {
				keep[j] = false
			}
		}
	}
	out := make([]string, 0, len(atoms))
	for i, a := range atoms {
		if keep[i] {
			out = append(out, a)
		}
	}
	return out
}

// parseBasicType recognizes a single basic type: a keyword atom (with
// its generic/shape/signature suffix where applicable), a class-ish
// construct (class-string, int-mask[-of], key-of/value-of), self/
// parent/static/$this, or a qualified class name with an optional
// `::CONST` / `::*` class-constant suffix (spec §4.2).
func (p *parser) parseBasicType() (string, error) {
	tok := p.lex.Peek(0)
	if tok.Text == nil {
		return "", fmt.Errorf("unexpected end of type expression")
	}
	text := *tok.Text

	if text == "$this" {
		p.lex.Advance()
		p.phpfig = false
		if p.scope != nil && p.scope.ClassName != "" {
			return phpdoctype.MakeStaticBinding(p.scope.ClassName), nil
		}
		return p.gowideFallback(), nil
	}
	if strings.HasPrefix(text, "$") {
		return "", fmt.Errorf("unexpected variable %q in type position", text)
	}

	lowered := strings.ToLower(text)

	switch lowered {
	case "class-string":
		p.lex.Advance()
		if err := p.parseOptionalAngleOfType(); err != nil {
			return "", err
		}
		p.phpfig = false
		return phpdoctype.String, nil

	case "int-mask-of":
		p.lex.Advance()
		if err := p.expect("<"); err != nil {
			return "", err
		}
		if _, err := p.parseAnyType(); err != nil {
			return "", err
		}
		if err := p.expect(">"); err != nil {
			return "", err
		}
		p.phpfig = false
		return phpdoctype.Int, nil

	case "int-mask":
		p.lex.Advance()
		if tok := p.lex.Peek(0); tok.Text != nil && *tok.Text == "<" {
			p.lex.Advance()
			if err := p.skipBalancedAngle(); err != nil {
				return "", err
			}
		}
		p.phpfig = false
		return phpdoctype.Int, nil

	case "key-of", "value-of":
		p.lex.Advance()
		if err := p.expect("<"); err != nil {
			return "", err
		}
		inner, err := p.parseAnyType()
		if err != nil {
			return "", err
		}
		if err := p.expect(">"); err != nil {
			return "", err
		}
		bound := phpdoctype.CanonicalType(phpdoctype.Iterable + "|" + phpdoctype.Object)
		innerCT := phpdoctype.CanonicalType(inner)
		if !p.compareAssignable(&bound, &innerCT) {
			return "", fmt.Errorf("%s<%s>: %s is not assignable to iterable|object", lowered, inner, inner)
		}
		p.phpfig = false
		return p.gowideFallback(), nil

	case "static":
		return p.parseStatic()
	}

	if canon, ok := resolveKeyword(lowered); ok {
		p.lex.Advance()
		if text != canon {
			p.addFix(tok, canon)
		}
		if canon == phpdoctype.Parent {
			p.phpfig = false
		}
		switch canon {
		case phpdoctype.Int:
			if err := p.maybeIntRange(); err != nil {
				return "", err
			}
		case phpdoctype.Array:
			if err := p.maybeArrayGenericOrShape(); err != nil {
				return "", err
			}
		case phpdoctype.Iterable:
			if err := p.maybeIterableGeneric(); err != nil {
				return "", err
			}
		case phpdoctype.Object:
			if err := p.maybeObjectShape(); err != nil {
				return "", err
			}
		case phpdoctype.Callable:
			if err := p.maybeCallableSignature(); err != nil {
				return "", err
			}
		}
		return canon, nil
	}

	if !looksLikeIdentifierToken(text) {
		return "", fmt.Errorf("unexpected token %q in type position", text)
	}

	p.lex.Advance()
	fq := p.scope.ResolveName(text)
	if tok := p.lex.Peek(0); tok.Text != nil && *tok.Text == "::" {
		p.lex.Advance()
		ctok := p.lex.Peek(0)
		if ctok.Text == nil {
			return "", fmt.Errorf("expected constant name or '*' after '::'")
		}
		ct := *ctok.Text
		if ct != "*" && !looksLikeIdentifierToken(ct) {
			return "", fmt.Errorf("expected constant name or '*' after '::', got %q", ct)
		}
		p.lex.Advance()
		// A bare `::*` with no constant name is accepted permissively
		// (see DESIGN.md Open Question decisions).
		p.phpfig = false
		return p.gowideFallback(), nil
	}
	return fq, nil
}

// parseStatic handles both the bare `static` keyword (resolved against
// scope) and the synthetic `static(FQ)` form a previous canonicalize
// pass may have emitted, so re-parsing a canonical string is
// idempotent.
func (p *parser) parseStatic() (string, error) {
	p.lex.Advance()
	p.phpfig = false

	if next := p.lex.Peek(0); next.Text != nil && *next.Text == "(" && !p.lex.HasPrecedingWhitespace(next) {
		p.lex.Advance()
		nameTok := p.lex.Peek(0)
		if nameTok.Text == nil {
			return "", fmt.Errorf("expected class name inside static(...)")
		}
		name := *nameTok.Text
		p.lex.Advance()
		if err := p.expect(")"); err != nil {
			return "", err
		}
		return phpdoctype.MakeStaticBinding(name), nil
	}

	if p.scope != nil && p.scope.ClassName != "" {
		return phpdoctype.MakeStaticBinding(p.scope.ClassName), nil
	}
	return p.gowideFallback(), nil
}

func (p *parser) compareAssignable(wide, narrow *phpdoctype.CanonicalType) bool {
	return typecompare.CompareTypes(wide, narrow, p.oracle, p.scope)
}

func (p *parser) expect(sym string) error {
	tok := p.lex.Peek(0)
	if tok.Text == nil || *tok.Text != sym {
		return fmt.Errorf("expected %q", sym)
	}
	p.lex.Advance()
	return nil
}

// skipBalancedAngle consumes tokens up to and including the matching
// '>' for content that isn't itself a type expression (int-mask bound
// lists of integers/class-constants): it tracks '<'/'>' nesting depth
// without attempting to parse the contents as types.
func (p *parser) skipBalancedAngle() error {
	depth := 1
	for {
		tok := p.lex.Peek(0)
		if tok.Text == nil {
			return fmt.Errorf("unterminated '<...>'")
		}
		switch *tok.Text {
		case "<":
			depth++
		case ">":
			depth--
			if depth == 0 {
				p.lex.Advance()
				return nil
			}
		}
		p.lex.Advance()
	}
}

// parseOptionalAngleOfType consumes an optional `<TYPE>` suffix (used
// by class-string, which is valid both bare and parameterized).
func (p *parser) parseOptionalAngleOfType() error {
	tok := p.lex.Peek(0)
	if tok.Text == nil || *tok.Text != "<" {
		return nil
	}
	p.lex.Advance()
	if _, err := p.parseAnyType(); err != nil {
		return err
	}
	return p.expect(">")
}

func (p *parser) maybeIntRange() error {
	tok := p.lex.Peek(0)
	if tok.Text == nil || *tok.Text != "<" {
		return nil
	}
	p.lex.Advance()
	p.phpfig = false
	return p.skipBalancedAngle()
}

func (p *parser) maybeArrayGenericOrShape() error {
	tok := p.lex.Peek(0)
	if tok.Text == nil {
		return nil
	}
	switch *tok.Text {
	case "<":
		p.lex.Advance()
		if _, err := p.parseAnyType(); err != nil {
			return err
		}
		if tok := p.lex.Peek(0); tok.Text != nil && *tok.Text == "," {
			p.lex.Advance()
			if _, err := p.parseAnyType(); err != nil {
				return err
			}
		}
		if err := p.expect(">"); err != nil {
			return err
		}
		p.phpfig = false
		return nil
	case "{":
		p.phpfig = false
		return p.parseShapeEntries()
	}
	return nil
}

func (p *parser) maybeIterableGeneric() error {
	tok := p.lex.Peek(0)
	if tok.Text == nil || *tok.Text != "<" {
		return nil
	}
	p.lex.Advance()
	if _, err := p.parseAnyType(); err != nil {
		return err
	}
	if tok := p.lex.Peek(0); tok.Text != nil && *tok.Text == "," {
		p.lex.Advance()
		if _, err := p.parseAnyType(); err != nil {
			return err
		}
	}
	if err := p.expect(">"); err != nil {
		return err
	}
	p.phpfig = false
	return nil
}

func (p *parser) maybeObjectShape() error {
	tok := p.lex.Peek(0)
	if tok.Text == nil || *tok.Text != "{" {
		return nil
	}
	p.phpfig = false
	return p.parseShapeEntries()
}

// parseShapeEntries implements `'{' (KEY '?'? ':' TYPE) (',' ...)* ','?
// '}'` used by both array{...} and object{...} (spec §4.2).
func (p *parser) parseShapeEntries() error {
	if err := p.expect("{"); err != nil {
		return err
	}
	if tok := p.lex.Peek(0); tok.Text != nil && *tok.Text == "}" {
		p.lex.Advance()
		return nil
	}
	for {
		keyTok := p.lex.Peek(0)
		if keyTok.Text == nil {
			return fmt.Errorf("unterminated shape")
		}
		p.lex.Advance()
		if tok := p.lex.Peek(0); tok.Text != nil && *tok.Text == "?" {
			p.lex.Advance()
		}
		if err := p.expect(":"); err != nil {
			return err
		}
		if _, err := p.parseAnyType(); err != nil {
			return err
		}
		tok := p.lex.Peek(0)
		if tok.Text != nil && *tok.Text == "," {
			p.lex.Advance()
			if t2 := p.lex.Peek(0); t2.Text != nil && *t2.Text == "}" {
				p.lex.Advance()
				return nil
			}
			continue
		}
		if tok.Text != nil && *tok.Text == "}" {
			p.lex.Advance()
			return nil
		}
		return fmt.Errorf("expected ',' or '}' in shape")
	}
}

// maybeCallableSignature implements `'(' (TYPE '...'? (',' ...)*)?
// ')' (':' TYPE)?` after the `callable` keyword (spec §4.2).
func (p *parser) maybeCallableSignature() error {
	tok := p.lex.Peek(0)
	if tok.Text == nil || *tok.Text != "(" {
		return nil
	}
	p.lex.Advance()
	p.phpfig = false
	if t := p.lex.Peek(0); t.Text == nil || *t.Text != ")" {
		for {
			if _, err := p.parseAnyType(); err != nil {
				return err
			}
			if t := p.lex.Peek(0); t.Text != nil && *t.Text == "..." {
				p.lex.Advance()
			}
			if t := p.lex.Peek(0); t.Text != nil && *t.Text == "&" {
				p.lex.Advance()
			}
			if t := p.lex.Peek(0); t.Text != nil && *t.Text == "," {
				p.lex.Advance()
				continue
			}
			break
		}
	}
	if err := p.expect(")"); err != nil {
		return err
	}
	if t := p.lex.Peek(0); t.Text != nil && *t.Text == ":" {
		p.lex.Advance()
		if _, err := p.parseAnyType(); err != nil {
			return err
		}
	}
	return nil
}

func looksLikeIdentifierToken(text string) bool {
	if text == "" {
		return false
	}
	c := text[0]
	return c == '_' || c == '\\' || c >= 0x7F || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
