// Package idea models the markdown idea files tracked by the IM application:
// filename grammar, YAML frontmatter, body sections and the status lifecycle.
package idea

import (
	"fmt"
	"regexp"
)

// Type identifies the kind of work an idea file describes, encoded in the
// filename prefix.
type Type string

// Idea types.
const (
	// TypeUIPrimitive is a single UI component (U- prefix).
	TypeUIPrimitive Type = "U"
	// TypeComposition is an assembly of components (C- prefix).
	TypeComposition Type = "C"
	// TypeArchitecture is an architecture decision (ARCH- prefix).
	TypeArchitecture Type = "ARCH"
	// TypePlaybook is a process or usage playbook (PB- prefix).
	TypePlaybook Type = "PB"
	// TypeBug is a bug report (B- prefix).
	TypeBug Type = "B"
)

// Types lists all idea types in display order.
var Types = []Type{TypeUIPrimitive, TypeComposition, TypeArchitecture, TypePlaybook, TypeBug}

// filenameRegexp encodes the idea filename grammar: <TYPE>-<NNN>-<slug>.md.
var filenameRegexp = regexp.MustCompile(`^(U|C|ARCH|PB|B)-(\d{3})-([a-z0-9]+(?:-[a-z0-9]+)*)\.md$`)

// branchRegexp encodes the idea branch grammar: <TYPE>-<NNN>-<slug>.
var branchRegexp = regexp.MustCompile(`^(U|C|ARCH|PB|B)-(\d{3})-[a-z0-9]+(?:-[a-z0-9]+)*$`)

// commitSubjectRegexp matches commit subjects attributed to an idea.
var commitSubjectRegexp = regexp.MustCompile(`^(U|C|ARCH|PB|B)-\d{3}: .+`)

// ParseType parses an idea type from its filename prefix.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeUIPrimitive, TypeComposition, TypeArchitecture, TypePlaybook, TypeBug:
		return Type(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
}

// Label returns a human-readable name for the type.
func (t Type) Label() string {
	switch t {
	case TypeUIPrimitive:
		return "UI primitive"
	case TypeComposition:
		return "Composition"
	case TypeArchitecture:
		return "Architecture"
	case TypePlaybook:
		return "Playbook"
	case TypeBug:
		return "Bug"
	default:
		return string(t)
	}
}

// ChecklistItem is a single acceptance checklist entry.
type ChecklistItem struct {
	Text string
	Done bool
}

// Idea is a parsed idea file.
type Idea struct {
	// ID is the filename-encoded identifier, e.g. "U-012".
	ID     string
	Type   Type
	Number int
	Slug   string
	// File is the base filename the idea was parsed from.
	File  string
	Title string

	// Frontmatter fields.
	Status   Status
	Lane     string
	Owner    string
	Priority string
	Issue    int
	Branch   string
	PR       int

	// Body sections.
	Purpose   string
	Problem   string
	Proposal  string
	Checklist []ChecklistItem
}

// BranchName returns the canonical branch name for the idea.
func (i *Idea) BranchName() string {
	return fmt.Sprintf("%s-%s", i.ID, i.Slug)
}

// ChecklistDone reports how many checklist items are completed.
func (i *Idea) ChecklistDone() (done, total int) {
	for _, item := range i.Checklist {
		if item.Done {
			done++
		}
	}
	return done, len(i.Checklist)
}

// ValidFilename reports whether name matches the idea filename grammar.
func ValidFilename(name string) bool {
	return filenameRegexp.MatchString(name)
}

// ValidBranchName reports whether name matches the idea branch grammar.
func ValidBranchName(name string) bool {
	return branchRegexp.MatchString(name)
}

// ValidCommitSubject reports whether subject is attributed to an idea ID.
func ValidCommitSubject(subject string) bool {
	return commitSubjectRegexp.MatchString(subject)
}

// IDFromBranch extracts the idea ID from a branch name matching the idea
// branch grammar. ok is false for branches outside the grammar.
func IDFromBranch(branch string) (id string, ok bool) {
	m := branchRegexp.FindStringSubmatch(branch)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("%s-%s", m[1], m[2]), true
}

// Filename returns the canonical filename for a type, number and slug.
func Filename(t Type, number int, slug string) string {
	return fmt.Sprintf("%s-%03d-%s.md", t, number, slug)
}

// FormatID returns the canonical ID for a type and number, e.g. "ARCH-004".
func FormatID(t Type, number int) string {
	return fmt.Sprintf("%s-%03d", t, number)
}
