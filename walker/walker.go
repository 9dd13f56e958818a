// Package walker implements the DeclarationWalker (spec §4.5): a
// two-pass traversal over a tokenized PHP file that locates
// declarations, retrieves each one's PHPDoc comment, and runs the
// TypeParser/TypeComparator/HierarchyOracle pipeline to report
// PHPDoc/native type disagreements through the ReportingShim.
package walker

import (
	"fmt"

	"github.com/wudi/phpdoctype"
	"github.com/wudi/phpdoctype/config"
	"github.com/wudi/phpdoctype/errors"
	"github.com/wudi/phpdoctype/filetoken"
	"github.com/wudi/phpdoctype/hierarchy"
	"github.com/wudi/phpdoctype/lexer"
	"github.com/wudi/phpdoctype/report"
)

// Walker drives one file's two-pass walk. A Walker is single-use: call
// Walk once per file, matching the parser's "state reset at the top of
// every public entry point" discipline (spec §5).
type Walker struct {
	cfg    config.Config
	lib    hierarchy.Library
	oracle *hierarchy.Oracle
	shim   *report.Shim
	stream *filetoken.Stream

	// currentPos tracks the position of the token runPass2 is currently
	// dispatching, so a recovered panic can still be attributed to
	// roughly the right place in the file instead of line 0.
	currentPos lexer.Position
}

// New returns a Walker configured by cfg, using lib (nil defaults to
// hierarchy.DefaultLibrary) as the builtin supertype table.
func New(cfg config.Config, lib hierarchy.Library) *Walker {
	return &Walker{cfg: cfg, lib: lib}
}

// frame is one level of the Scope stack: scope is the context active
// until the token stream reaches closer (-1 meaning "to end of
// file" — a semicolon-style namespace, or the file's implicit root).
type frame struct {
	scope  *phpdoctype.Scope
	closer int
}

// pendingComment is the walker's single slot for an as-yet-unclaimed
// PHPDoc comment (spec §5's "pending comment" invariant).
type pendingComment struct {
	ptr     int
	comment *phpdoctype.Comment
}

// Walk tokenizes source, runs pass 1 (artifact collection) then pass 2
// (checking), and returns the ReportingShim holding every Finding.
func (w *Walker) Walk(source string) *report.Shim {
	w.stream = filetoken.Tokenize(source)
	artifacts := collectArtifacts(w.stream)
	w.oracle = hierarchy.New(w.lib, artifacts)
	w.shim = report.New()
	w.runPass2()
	return w.shim
}

// runPass2 is the checking pass (spec §4.5). Debug-mode structural
// failures are allowed to propagate out of safeDispatch and are caught
// here exactly once, emitting the single top-level diagnostic spec §7
// describes; outside debug mode safeDispatch already swallowed them
// per declaration.
func (w *Walker) runPass2() {
	defer func() {
		if r := recover(); r != nil {
			structErr := errors.NewStructuralError(fmt.Sprintf("PHPDoc type sniff failed to parse the file: %v", r), w.currentPos)
			w.shim.AddError("phpdoc_walker_failed", structErr.Error(), structErr.Position)
		}
	}()

	root := phpdoctype.NewRootScope()
	frames := []frame{{scope: root, closer: -1}}
	var pending *pendingComment

	for i := 0; i < w.stream.Len(); i++ {
		for len(frames) > 1 && frames[len(frames)-1].closer == i {
			if pending != nil {
				w.processPossVarComment(frames[len(frames)-1].scope, pending)
				pending = nil
			}
			frames = frames[:len(frames)-1]
		}
		cur := frames[len(frames)-1].scope
		rec := w.stream.At(i)
		w.currentPos = rec.Token.Position

		switch rec.Token.Type {
		case lexer.T_DOC_COMMENT:
			pending = &pendingComment{ptr: i, comment: scanDocComment(i, rec.Token.Value)}

		case lexer.T_ATTRIBUTE:
			if rec.AttributeCloser != -1 {
				i = rec.AttributeCloser
			}

		case lexer.T_NAMESPACE:
			w.processNamespace(i, cur, &frames)
			pending = nil

		case lexer.T_USE:
			if len(frames) == 1 {
				w.processUse(i, cur)
			}
			pending = nil

		case lexer.T_CLASS, lexer.T_INTERFACE, lexer.T_TRAIT:
			w.safeDispatch(func() { w.processClassish(i, cur, pending, &frames) })
			pending = nil

		case lexer.T_FUNCTION:
			capturedPending := pending
			w.safeDispatch(func() { w.processFunction(i, cur, capturedPending) })
			pending = nil
			// Skip the whole signature (and body, if any) so its
			// parameter variables are never mistaken for property
			// declarations by the T_VARIABLE case below.
			if rec.ScopeCloser != -1 {
				i = rec.ScopeCloser
			} else {
				i = headerEnd(w.stream, i)
			}

		case lexer.T_VARIABLE:
			if isPropertyDeclaration(w.stream, i) {
				capturedPending := pending
				w.safeDispatch(func() { w.processVariable(i, cur, capturedPending) })
				pending = nil
			}
		}
	}

	if pending != nil {
		w.processPossVarComment(root, pending)
	}
}

// safeDispatch runs fn, recovering a panic unless debug mode is on
// (spec §4.5/§7: "any exception raised inside a declaration handler
// while not in debug mode is swallowed... In debug mode the error is
// rethrown and terminates the pass").
func (w *Walker) safeDispatch(fn func()) {
	if w.cfg.DebugMode {
		fn()
		return
	}
	defer func() { recover() }()
	fn()
}

// processNamespace handles both brace-style (pushes a nested scope
// closed at its '}') and semicolon-style (mutates the enclosing scope
// for the remainder of the file) namespace declarations.
func (w *Walker) processNamespace(i int, cur *phpdoctype.Scope, frames *[]frame) {
	end := headerEnd(w.stream, i)
	name := firstName(collectNameList(w.stream, i+1, end))
	if name != "" && name[0] != '\\' {
		name = `\` + name
	}
	rec := w.stream.At(i)
	if rec.ScopeOpener != -1 {
		ns := cur.Clone()
		ns.Namespace = name
		ns.Uses = map[string]string{}
		ns.Kind = phpdoctype.ScopeNamespace
		*frames = append(*frames, frame{scope: ns, closer: rec.ScopeCloser})
		return
	}
	cur.Namespace = name
	for k := range cur.Uses {
		delete(cur.Uses, k)
	}
}

func firstName(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// processUse records one namespace-level `use` statement's alias into
// cur's Uses map.
func (w *Walker) processUse(i int, cur *phpdoctype.Scope) {
	registerUse(w.stream, i, cur.Uses)
}

// processClassish fully qualifies the declaration's name and its
// extends/implements list, runs the class-scoped checks available at
// this depth, and — if the declaration has a body — pushes a clone
// scope so nested members resolve self/parent/static correctly.
func (w *Walker) processClassish(i int, cur *phpdoctype.Scope, pending *pendingComment, frames *[]frame) {
	rec := w.stream.At(i)
	name := getDeclarationName(w.stream, i)
	if name == "" {
		return
	}
	fq := cur.ResolveName(name)

	var parentFQ string
	if ext := findExtendedClassName(w.stream, i); ext != "" {
		parentFQ = cur.ResolveName(ext)
	}

	if rec.ScopeOpener == -1 {
		return
	}
	classScope := cur.Clone()
	classScope.ClassName = fq
	classScope.ParentName = parentFQ
	classScope.Kind = phpdoctype.ScopeClassish
	*frames = append(*frames, frame{scope: classScope, closer: rec.ScopeCloser})
}

// processFunction runs the function-shaped checks against the pending
// comment, if any.
func (w *Walker) processFunction(i int, cur *phpdoctype.Scope, pending *pendingComment) {
	rec := w.stream.At(i)
	params := getMethodParameters(w.stream, i)
	nativeReturn := getReturnTypeText(w.stream, i)
	mprops := getMethodProperties(w.stream, i)

	var doc *phpdoctype.Comment
	if pending != nil {
		doc = pending.comment
	}
	w.checkFunctionDoc(cur, rec.Token.Position, mprops, params, nativeReturn, doc)
}

// processVariable runs the property-shaped checks against the pending
// comment, if any.
func (w *Walker) processVariable(i int, cur *phpdoctype.Scope, pending *pendingComment) {
	mprops := getMemberProperties(w.stream, i)
	var doc *phpdoctype.Comment
	if pending != nil {
		doc = pending.comment
	}
	w.checkPropertyDoc(cur, w.stream.At(i).Token.Position, mprops, doc)
}

// processPossVarComment handles a comment that reaches end-of-scope
// unclaimed by any declaration (spec §5): only its @var tags, if any,
// are validated syntactically — no type-match/style/phpfig checks,
// since there is no declaration to compare against.
func (w *Walker) processPossVarComment(scope *phpdoctype.Scope, pending *pendingComment) {
	pos := w.stream.At(pending.comment.Ptr).Token.Position
	for _, occ := range pending.comment.Tags["var"] {
		if !syntaxCheckOnly(scope, w.oracle, occ.Content) {
			synErr := errors.NewSyntaxError(fmt.Sprintf("unparseable @var type expression: %q", occ.Content), pos)
			w.shim.AddWarning("phpdoc_var_type_unparseable", synErr.Error(), synErr.Position)
		}
	}
}

// isPropertyDeclaration reports whether the T_VARIABLE token at ptr
// looks like a class property declaration rather than a parameter or a
// statement-local variable: immediately preceded (skipping modifiers
// and a type annotation) by a visibility/static/var/readonly keyword,
// and immediately followed by '=', ',', or ';'.
func isPropertyDeclaration(s *filetoken.Stream, ptr int) bool {
	next := s.At(ptr + 1).Token.Type
	switch next {
	case lexer.TOKEN_EQUAL, lexer.TOKEN_COMMA, lexer.TOKEN_SEMICOLON:
	default:
		return false
	}
	for i := ptr - 1; i >= 0; i-- {
		switch s.At(i).Token.Type {
		case lexer.T_PUBLIC, lexer.T_PROTECTED, lexer.T_PRIVATE, lexer.T_VAR, lexer.T_STATIC, lexer.T_READONLY:
			return true
		case lexer.TOKEN_SEMICOLON, lexer.TOKEN_LBRACE, lexer.TOKEN_RBRACE:
			return false
		}
	}
	return false
}
