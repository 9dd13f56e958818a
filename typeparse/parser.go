// Package typeparse implements the TypeParser (spec §4.2): a
// recursive-descent parser over the PHPDoc/native type-expression
// grammar that produces a canonical type string, a style-corrected
// ("fixed") rendering, and a flag tracking conformance to the
// published PHP-FIG documentation-comment standard.
//
// Each public entry point (ParseTypeAndName, ParseTemplate) constructs
// and discards its own parser struct — there is no parser state shared
// across calls (spec §5).
package typeparse

import (
	"fmt"
	"strings"

	"github.com/wudi/phpdoctype"
	"github.com/wudi/phpdoctype/hierarchy"
	"github.com/wudi/phpdoctype/typecompare"
	"github.com/wudi/phpdoctype/typelex"
)

// parser holds the mutable state of a single parse attempt: the
// lexer's lookahead, accumulated Fix records, and the running phpfig
// flag. It is never reused across public entry points (spec §9:
// "Mutable this-based parser state... re-expressed as a single parser
// struct passed by mutable reference; each public entry point
// constructs and discards it").
type parser struct {
	lex    *typelex.Lexer
	scope  *phpdoctype.Scope
	oracle *hierarchy.Oracle
	gowide bool

	fixes  phpdoctype.FixList
	phpfig bool
}

func newParser(text string, scope *phpdoctype.Scope, oracle *hierarchy.Oracle, gowide bool) *parser {
	if scope == nil {
		scope = phpdoctype.NewRootScope()
	}
	if oracle == nil {
		oracle = hierarchy.New(nil, nil)
	}
	return &parser{
		lex:    typelex.New(text),
		scope:  scope,
		oracle: oracle,
		gowide: gowide,
		phpfig: true,
	}
}

func (p *parser) gowideFallback() string {
	if p.gowide {
		return phpdoctype.Mixed
	}
	return phpdoctype.Never
}

func (p *parser) addFix(tok typelex.Token, replacement string) {
	p.fixes = append(p.fixes, phpdoctype.Fix{
		Pos:         tok.Start,
		Len:         tok.End - tok.Start,
		Replacement: replacement,
	})
}

// ParseTypeAndName is the TypeParser's main entry point (spec §4.2).
// want selects how much beyond the bare type to consume; gowide=true
// falls unknown constructs back to mixed (native annotations),
// gowide=false falls back to never (PHPDoc annotations).
func ParseTypeAndName(scope *phpdoctype.Scope, oracle *hierarchy.Oracle, text string, want phpdoctype.Want, gowide bool) *phpdoctype.ParseResult {
	p := newParser(text, scope, oracle, gowide)
	snap := p.lex.Snapshot()

	typ, err := p.parseAnyType()
	if err != nil {
		p.lex.Restore(snap)
		return &phpdoctype.ParseResult{Rem: text}
	}

	passSplat := ""
	if want >= phpdoctype.WantPassSplat {
		for {
			tok := p.lex.Peek(0)
			if tok.Text == nil {
				break
			}
			if *tok.Text == "&" {
				passSplat += "&"
				p.lex.Advance()
				continue
			}
			if *tok.Text == "..." {
				passSplat += "..."
				p.lex.Advance()
				continue
			}
			break
		}
	}

	var namePtr *string
	if want >= phpdoctype.WantName {
		if tok := p.lex.Peek(0); tok.Text != nil && strings.HasPrefix(*tok.Text, "$") {
			n := *tok.Text
			namePtr = &n
			p.lex.Advance()
		}
	}

	if want >= phpdoctype.WantDefaultValue {
		if tok := p.lex.Peek(0); tok.Text != nil && *tok.Text == "=" {
			p.lex.Advance()
			// The default-value expression itself is PHP expression
			// grammar, which is out of this parser's scope (spec §1
			// excludes the source tokenizer/expression parser); the
			// caller gets it back verbatim via Rem.
		}
	}

	trail := p.lex.Peek(0)
	if !p.trailingContentOK(trail) {
		p.lex.Restore(snap)
		return &phpdoctype.ParseResult{Rem: text}
	}

	rem := ""
	if trail.Text != nil {
		rem = text[trail.Start:]
	}

	ct := phpdoctype.CanonicalType(typ)
	fixed := p.fixes.Apply(text)
	return &phpdoctype.ParseResult{
		Type:      &ct,
		PassSplat: passSplat,
		Name:      namePtr,
		Rem:       rem,
		Fixed:     &fixed,
		PHPFig:    p.phpfig,
	}
}

// trailingContentOK implements the spec §4.2 rollback guard: the next
// token after a type (or name) must be end-of-input, a delimiter in
// {, ; : .}, or preceded by whitespace in the original text.
func (p *parser) trailingContentOK(tok typelex.Token) bool {
	if tok.Text == nil {
		return true
	}
	switch *tok.Text {
	case ",", ";", ":", ".":
		return true
	}
	return p.lex.HasPrecedingWhitespace(tok)
}

// ParseTemplate implements the `NAME ('of'|'as' TYPE)?` grammar (spec
// §4.2), defaulting the bound to mixed.
func ParseTemplate(scope *phpdoctype.Scope, oracle *hierarchy.Oracle, text string) *phpdoctype.ParseResult {
	p := newParser(text, scope, oracle, true)

	tok := p.lex.Peek(0)
	if tok.Text == nil {
		return &phpdoctype.ParseResult{Rem: text}
	}
	name := *tok.Text
	p.lex.Advance()

	bound := phpdoctype.Mixed
	if kw := p.lex.Peek(0); kw.Text != nil {
		low := strings.ToLower(*kw.Text)
		if low == "of" || low == "as" {
			p.lex.Advance()
			b, err := p.parseAnyType()
			if err != nil {
				return &phpdoctype.ParseResult{Rem: text}
			}
			bound = b
		}
	}

	ct := phpdoctype.CanonicalType(bound)
	fixed := p.fixes.Apply(text)
	return &phpdoctype.ParseResult{
		Type:   &ct,
		Name:   &name,
		Fixed:  &fixed,
		PHPFig: p.phpfig,
	}
}

// parseAnyType implements the top-level grammar alternative: nullable
// shorthand, conditional return type, or a plain union (spec §4.2).
func (p *parser) parseAnyType() (string, error) {
	if tok := p.lex.Peek(0); tok.Text != nil && strings.HasPrefix(*tok.Text, "$") {
		if isTok := p.lex.Peek(1); isTok.Text != nil && strings.EqualFold(*isTok.Text, "is") {
			return p.parseConditional()
		}
	}
	if tok := p.lex.Peek(0); tok.Text != nil && *tok.Text == "?" {
		p.lex.Advance()
		inner, err := p.parseSingleType()
		if err != nil {
			return "", err
		}
		p.phpfig = false
		return string(p.finalizeUnion([]string{inner, phpdoctype.Null})), nil
	}
	return p.parseUnion()
}

// parseConditional implements `$IDENT is TYPE ? TYPE : TYPE` (spec
// §4.2). The condition governs which branch applies at runtime, which
// this static analyzer cannot evaluate, so the canonical result is the
// union of both branches.
func (p *parser) parseConditional() (string, error) {
	p.lex.Advance() // $IDENT
	p.lex.Advance() // is
	if _, err := p.parseAnyType(); err != nil {
		return "", err
	}
	if tok := p.lex.Peek(0); tok.Text == nil || *tok.Text != "?" {
		return "", fmt.Errorf("expected '?' in conditional type")
	}
	p.lex.Advance()
	trueType, err := p.parseAnyType()
	if err != nil {
		return "", err
	}
	if tok := p.lex.Peek(0); tok.Text == nil || *tok.Text != ":" {
		return "", fmt.Errorf("expected ':' in conditional type")
	}
	p.lex.Advance()
	falseType, err := p.parseAnyType()
	if err != nil {
		return "", err
	}
	p.phpfig = false
	members := append(phpdoctype.SplitUnion(trueType), phpdoctype.SplitUnion(falseType)...)
	return string(p.finalizeUnion(members)), nil
}

// parseUnion implements `intersection ('|' intersection)*`.
func (p *parser) parseUnion() (string, error) {
	first, err := p.parseIntersection()
	if err != nil {
		return "", err
	}
	members := []string{first}
	for {
		tok := p.lex.Peek(0)
		if tok.Text == nil || *tok.Text != "|" {
			break
		}
		p.lex.Advance()
		m, err := p.parseIntersection()
		if err != nil {
			return "", err
		}
		members = append(members, m)
	}
	return string(p.finalizeUnion(members)), nil
}

// finalizeUnion applies the union-side canonicalization rules of spec
// §4.2: structural additions (array-key/scalar/iterable), "wider
// absorbs narrower" elision via the comparator, then the shared
// mixed/never/sort/dedupe invariants.
func (p *parser) finalizeUnion(members []string) phpdoctype.CanonicalType {
	present := make(map[string]bool, len(members))
	for _, m := range members {
		present[m] = true
	}
	if present[phpdoctype.Int] && present[phpdoctype.String] {
		members = append(members, phpdoctype.ArrayKey)
		present[phpdoctype.ArrayKey] = true
	}
	if present[phpdoctype.Bool] && present[phpdoctype.Float] && present[phpdoctype.ArrayKey] {
		members = append(members, phpdoctype.Scalar)
	}
	if present[`\Traversable`] && present[phpdoctype.Array] {
		members = append(members, phpdoctype.Iterable)
	}
	members = p.elideNarrower(members)
	return phpdoctype.NormalizeUnion(members)
}

// elideNarrower drops a union member when a strictly wider member is
// also present (spec §4.2: "wider absorbs narrower").
func (p *parser) elideNarrower(members []string) []string {
	keep := make([]bool, len(members))
	for i := range keep {
		keep[i] = true
	}
	for i, ni := range members {
		if !keep[i] {
			continue
		}
		narrow := phpdoctype.CanonicalType(ni)
		for j, wj := range members {
			if i == j || !keep[j] {
				continue
			}
			wide := phpdoctype.CanonicalType(wj)
			if wj == ni {
				continue
			}
			widerAbsorbs := typecompare.CompareTypes(&wide, &narrow, p.oracle, p.scope)
			narrowerAbsorbs := typecompare.CompareTypes(&narrow, &wide, p.oracle, p.scope)
			if widerAbsorbs && !narrowerAbsorbs {
				keep[i] = false
				break
			}
		}
	}
	out := make([]string, 0, len(members))
	for i, m := range members {
		if keep[i] {
			out = append(out, m)
		}
	}
	return out
}
