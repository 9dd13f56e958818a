// Package report implements the ReportingShim (spec §4.6): the sink
// the DeclarationWalker writes violations to, plus a changeset API a
// host CLI's `fix` subcommand uses to collect multiple token
// replacements atomically before writing them out.
package report

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/wudi/phpdoctype"
	"github.com/wudi/phpdoctype/lexer"
)

// Severity classifies a Finding.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// Finding is one reported violation.
type Finding struct {
	Severity    Severity
	Code        string
	Message     string
	Position    lexer.Position
	Fixable     bool
	ChangesetID string // "" unless the fix was attached via a changeset
}

// Shim accumulates Findings for a single file walk (spec §4.6). It is
// not safe for concurrent use; the walker owns one per file, matching
// the HierarchyOracle's per-file Artifacts table (spec §5).
type Shim struct {
	findings   []Finding
	changesets map[string]*changeset
}

type changeset struct {
	fixes phpdoctype.FixList
}

// New returns an empty Shim.
func New() *Shim {
	return &Shim{changesets: map[string]*changeset{}}
}

// AddError records a non-fixable, must-fix violation.
func (s *Shim) AddError(code, message string, pos lexer.Position) {
	s.findings = append(s.findings, Finding{Severity: SeverityError, Code: code, Message: message, Position: pos})
}

// AddWarning records a non-fixable advisory violation.
func (s *Shim) AddWarning(code, message string, pos lexer.Position) {
	s.findings = append(s.findings, Finding{Severity: SeverityWarning, Code: code, Message: message, Position: pos})
}

// AddFixableWarning records a warning accompanied by a single Fix a
// host's `fix` subcommand can apply directly, with no changeset
// needed (spec §4.6: most style/alias fixes are this shape).
func (s *Shim) AddFixableWarning(code, message string, pos lexer.Position, fix phpdoctype.Fix) {
	id := fmt.Sprintf("single:%s:%d", code, pos.Offset)
	s.findings = append(s.findings, Finding{Severity: SeverityWarning, Code: code, Message: message, Position: pos, Fixable: true, ChangesetID: id})
	cs := s.ensureChangeset(id)
	cs.fixes = append(cs.fixes, fix)
}

// BeginChangeset starts a new multi-fix changeset (spec §4.6: a single
// logical correction — e.g. rewriting `@param`'s type and its native
// signature counterpart together — that touches more than one token
// span) and returns its id.
func (s *Shim) BeginChangeset() string {
	id := uuid.NewString()
	s.ensureChangeset(id)
	return id
}

func (s *Shim) ensureChangeset(id string) *changeset {
	cs, ok := s.changesets[id]
	if !ok {
		cs = &changeset{}
		s.changesets[id] = cs
	}
	return cs
}

// ReplaceToken appends fix to the changeset id. Returns an error if id
// was never started via BeginChangeset.
func (s *Shim) ReplaceToken(id string, fix phpdoctype.Fix) error {
	cs, ok := s.changesets[id]
	if !ok {
		return fmt.Errorf("report: unknown changeset %q", id)
	}
	cs.fixes = append(cs.fixes, fix)
	return nil
}

// EndChangeset finalizes id, returning its accumulated fixes. The
// changeset may no longer be appended to afterward.
func (s *Shim) EndChangeset(id string) (phpdoctype.FixList, error) {
	cs, ok := s.changesets[id]
	if !ok {
		return nil, fmt.Errorf("report: unknown changeset %q", id)
	}
	delete(s.changesets, id)
	return cs.fixes, nil
}

// Findings returns every Finding recorded so far, in report order.
func (s *Shim) Findings() []Finding {
	return s.findings
}

// AllFixes flattens every still-open changeset's fixes into one list,
// for a `fix` subcommand that wants to apply everything at once
// without tracking individual changeset ids.
func (s *Shim) AllFixes() phpdoctype.FixList {
	var out phpdoctype.FixList
	for _, cs := range s.changesets {
		out = append(out, cs.fixes...)
	}
	return out
}

// HasErrors reports whether any Error-severity Finding was recorded.
func (s *Shim) HasErrors() bool {
	for _, f := range s.findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
