package walker

import (
	"fmt"

	"github.com/wudi/phpdoctype"
	"github.com/wudi/phpdoctype/hierarchy"
	"github.com/wudi/phpdoctype/lexer"
	"github.com/wudi/phpdoctype/typecompare"
	"github.com/wudi/phpdoctype/typeparse"
)

// The seven checks of spec §4.5's table, one function each. Every
// check first tests whether the host enabled it (w.cfg) before doing
// any work.

// checkFunctionDoc applies every enabled check to one function/method
// declaration: parameter-by-parameter, then the return type.
func (w *Walker) checkFunctionDoc(scope *phpdoctype.Scope, pos lexer.Position, mprops MethodProps, params []NativeParam, nativeReturn string, doc *phpdoctype.Comment) {
	hasSignature := len(params) > 0 || (nativeReturn != "" && nativeReturn != phpdoctype.Void)

	if w.cfg.CheckHasDocBlocks && mprops.IsPublic && hasSignature && doc == nil {
		w.shim.AddWarning("phpdoc_fun_missing_doc", "public function with parameters or a non-void return has no PHPDoc block", pos)
		return
	}
	if doc == nil {
		return
	}

	var paramOccs []phpdoctype.TagOccurrence
	if doc != nil {
		paramOccs = doc.Tags["param"]
	}
	if w.cfg.CheckNoMisplaced {
		w.checkDuplicateParamNames(paramOccs, pos)
		if n := doc.Count("return"); n > 1 {
			w.shim.AddError("phpdoc_tag_misplaced", "more than one @return tag", pos)
		}
		if len(doc.Tags["var"]) > 0 {
			w.shim.AddError("phpdoc_tag_misplaced", "@var tag is misplaced on a function docblock", pos)
		}
	}

	for _, param := range params {
		w.checkParam(scope, pos, param, paramOccs)
	}
	w.checkReturn(scope, pos, nativeReturn, doc)
}

func (w *Walker) checkDuplicateParamNames(occs []phpdoctype.TagOccurrence, pos lexer.Position) {
	seen := map[string]bool{}
	for _, occ := range occs {
		name := extractParamName(occ.Content)
		if name == "" {
			continue
		}
		if seen[name] {
			w.shim.AddError("phpdoc_tag_misplaced", fmt.Sprintf("duplicate @param for %s", name), pos)
			continue
		}
		seen[name] = true
	}
}

func extractParamName(content string) string {
	for _, f := range splitFields(content) {
		if len(f) > 0 && f[0] == '$' {
			return f
		}
	}
	return ""
}

func splitFields(s string) []string {
	var out []string
	cur := ""
	for _, r := range s {
		if r == ' ' || r == '\t' {
			if cur != "" {
				out = append(out, cur)
				cur = ""
			}
			continue
		}
		cur += string(r)
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}

func (w *Walker) checkParam(scope *phpdoctype.Scope, pos lexer.Position, native NativeParam, paramOccs []phpdoctype.TagOccurrence) {
	occ, ok := paramOccurrence(paramOccs, native.Name)
	if !ok {
		if w.cfg.CheckHasTags {
			w.shim.AddWarning("phpdoc_fun_param_type", fmt.Sprintf("missing @param for %s", native.Name), pos)
		}
		return
	}

	docResult := typeparse.ParseTypeAndName(scope, w.oracle, occ.Content, phpdoctype.WantPassSplat, false)
	if docResult.Failed() {
		return
	}

	if w.cfg.CheckStyle && docResult.Fixed != nil && *docResult.Fixed != occ.Content {
		fix := phpdoctype.Fix{Pos: 0, Len: len(occ.Content), Replacement: *docResult.Fixed}
		w.shim.AddFixableWarning("phpdoc_var_type_style", fmt.Sprintf("non-canonical @param spelling for %s", native.Name), pos, fix)
	}
	if w.cfg.CheckPhpFig && !docResult.PHPFig {
		w.shim.AddWarning("phpdoc_class_prop_type_phpfig", fmt.Sprintf("@param for %s uses a non-PHP-FIG construct", native.Name), pos)
	}
	if w.cfg.CheckPassSplat && docResult.PassSplat != native.PassSplat {
		w.shim.AddError("phpdoc_fun_param_pass_splat_mismatch", fmt.Sprintf("@param for %s disagrees with the native signature's &/... markers", native.Name), pos)
	}
	if w.cfg.CheckTypeMatch && native.TypeText != "" {
		nativeResult := typeparse.ParseTypeAndName(scope, w.oracle, native.TypeText, phpdoctype.WantType, true)
		if !nativeResult.Failed() && !typesMatch(nativeResult.Type, docResult.Type, scope, w) {
			w.shim.AddError("phpdoc_fun_param_type_mismatch", fmt.Sprintf("@param type for %s does not match its native type", native.Name), pos)
		}
	}
}

func (w *Walker) checkReturn(scope *phpdoctype.Scope, pos lexer.Position, nativeReturn string, doc *phpdoctype.Comment) {
	occ, ok := doc.First("return")
	if !ok {
		if w.cfg.CheckHasTags && nativeReturn != "" && nativeReturn != phpdoctype.Void {
			w.shim.AddWarning("phpdoc_fun_ret_type", "missing @return tag", pos)
		}
		return
	}

	docResult := typeparse.ParseTypeAndName(scope, w.oracle, occ.Content, phpdoctype.WantType, false)
	if docResult.Failed() {
		return
	}

	if w.cfg.CheckStyle && docResult.Fixed != nil && *docResult.Fixed != occ.Content {
		fix := phpdoctype.Fix{Pos: 0, Len: len(occ.Content), Replacement: *docResult.Fixed}
		w.shim.AddFixableWarning("phpdoc_var_type_style", "non-canonical @return spelling", pos, fix)
	}
	if w.cfg.CheckPhpFig && !docResult.PHPFig {
		w.shim.AddWarning("phpdoc_class_prop_type_phpfig", "@return uses a non-PHP-FIG construct", pos)
	}
	if w.cfg.CheckTypeMatch && nativeReturn != "" {
		nativeResult := typeparse.ParseTypeAndName(scope, w.oracle, nativeReturn, phpdoctype.WantType, true)
		if !nativeResult.Failed() && !typesMatch(nativeResult.Type, docResult.Type, scope, w) {
			w.shim.AddError("phpdoc_fun_ret_type_mismatch", "@return type does not match the native return type", pos)
		}
	}
}

// checkPropertyDoc applies the property-shaped checks (no params/pass-
// splat, single @var tag) to a class property declaration.
func (w *Walker) checkPropertyDoc(scope *phpdoctype.Scope, pos lexer.Position, mprops MemberProps, doc *phpdoctype.Comment) {
	if w.cfg.CheckHasDocBlocks && mprops.IsPublic && doc == nil {
		w.shim.AddWarning("phpdoc_fun_missing_doc", "public property has no PHPDoc block", pos)
		return
	}
	if doc == nil {
		return
	}
	if w.cfg.CheckNoMisplaced {
		if n := doc.Count("var"); n > 1 {
			w.shim.AddError("phpdoc_tag_misplaced", "more than one @var tag", pos)
		}
		if len(doc.Tags["param"]) > 0 || len(doc.Tags["return"]) > 0 {
			w.shim.AddError("phpdoc_tag_misplaced", "@param/@return tag is misplaced on a property docblock", pos)
		}
	}

	occ, ok := doc.First("var")
	if !ok {
		if w.cfg.CheckHasTags {
			w.shim.AddWarning("phpdoc_fun_param_type", "missing @var tag", pos)
		}
		return
	}

	docResult := typeparse.ParseTypeAndName(scope, w.oracle, occ.Content, phpdoctype.WantName, false)
	if docResult.Failed() {
		return
	}
	if w.cfg.CheckStyle && docResult.Fixed != nil && *docResult.Fixed != occ.Content {
		fix := phpdoctype.Fix{Pos: 0, Len: len(occ.Content), Replacement: *docResult.Fixed}
		w.shim.AddFixableWarning("phpdoc_var_type_style", "non-canonical @var spelling", pos, fix)
	}
	if w.cfg.CheckPhpFig && !docResult.PHPFig {
		w.shim.AddWarning("phpdoc_class_prop_type_phpfig", "@var uses a non-PHP-FIG construct", pos)
	}
	if w.cfg.CheckTypeMatch && mprops.TypeText != "" {
		nativeResult := typeparse.ParseTypeAndName(scope, w.oracle, mprops.TypeText, phpdoctype.WantType, true)
		if !nativeResult.Failed() && !typesMatch(nativeResult.Type, docResult.Type, scope, w) {
			w.shim.AddError("phpdoc_fun_param_type_mismatch", "@var type does not match the property's native type", pos)
		}
	}
}

// syntaxCheckOnly parses content as a bare @var occurrence just far
// enough to know whether it's well-formed, with no declaration to
// compare it against. Used for a pending comment flushed at end of
// scope (spec §5).
func syntaxCheckOnly(scope *phpdoctype.Scope, oracle *hierarchy.Oracle, content string) bool {
	result := typeparse.ParseTypeAndName(scope, oracle, content, phpdoctype.WantName, false)
	return !result.Failed()
}

// typesMatch decides mismatch the way spec §4.5's typeMatch check
// does: compareTypes(native, doc) must hold in both directions, since
// a declared PHPDoc type narrower OR wider than the native annotation
// is equally a documentation error for a closed analyzer like this one.
func typesMatch(native, doc *phpdoctype.CanonicalType, scope *phpdoctype.Scope, w *Walker) bool {
	return typecompare.CompareTypes(native, doc, w.oracle, scope) && typecompare.CompareTypes(doc, native, w.oracle, scope)
}
