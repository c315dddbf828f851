package idea

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontmatter is the YAML block at the top of an idea file.
type frontmatter struct {
	Status   string `yaml:"status"`
	Lane     string `yaml:"lane,omitempty"`
	Owner    string `yaml:"owner,omitempty"`
	Priority string `yaml:"priority,omitempty"`
	Issue    int    `yaml:"issue,omitempty"`
	Branch   string `yaml:"branch,omitempty"`
	PR       int    `yaml:"pr,omitempty"`
}

// Section names recognized in idea file bodies.
const (
	SectionLane      = "Lane"
	SectionPurpose   = "Purpose"
	SectionProblem   = "Problem"
	SectionProposal  = "Proposal"
	SectionChecklist = "Acceptance Checklist"
)

var (
	titleRegexp     = regexp.MustCompile(`(?m)^# (.+)$`)
	sectionRegexp   = regexp.MustCompile(`(?m)^## +(.+?) *$`)
	checklistRegexp = regexp.MustCompile(`^- \[( |x|X)\] +(.*)$`)
	laneRegexp      = regexp.MustCompile(`^[A-Z]$`)
)

// Parse parses an idea file. The filename supplies the type, number and slug;
// the content supplies frontmatter and body sections.
func Parse(filename string, content []byte) (*Idea, error) {
	base := filepath.Base(filename)
	m := filenameRegexp.FindStringSubmatch(base)
	if m == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFilename, base)
	}

	ideaType, err := ParseType(m[1])
	if err != nil {
		return nil, err
	}
	number, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFilename, base)
	}

	front, body, err := splitFrontmatter(string(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", base, err)
	}

	status := StatusDraft
	if front.Status != "" {
		status, err = ParseStatus(front.Status)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", base, err)
		}
	}

	sections := splitSections(body)

	lane := front.Lane
	if lane == "" {
		// Older idea files carried the lane as a body section.
		lane = strings.TrimSpace(sections[SectionLane])
	}
	if lane != "" && !laneRegexp.MatchString(lane) {
		return nil, fmt.Errorf("%s: %w: %q", base, ErrInvalidLane, lane)
	}

	result := &Idea{
		ID:       FormatID(ideaType, number),
		Type:     ideaType,
		Number:   number,
		Slug:     m[3],
		File:     base,
		Title:    parseTitle(body),
		Status:   status,
		Lane:     lane,
		Owner:    front.Owner,
		Priority: front.Priority,
		Issue:    front.Issue,
		Branch:   front.Branch,
		PR:       front.PR,
		Purpose:  strings.TrimSpace(sections[SectionPurpose]),
		Problem:  strings.TrimSpace(sections[SectionProblem]),
		Proposal: strings.TrimSpace(sections[SectionProposal]),
	}
	result.Checklist = parseChecklist(sections[SectionChecklist])

	return result, nil
}

// MissingSections returns the required sections the idea does not carry.
// Purpose and Proposal are required everywhere, Problem for bugs, and the
// acceptance checklist for UI primitives and compositions.
func (i *Idea) MissingSections() []string {
	var missing []string
	if i.Purpose == "" {
		missing = append(missing, SectionPurpose)
	}
	if i.Proposal == "" {
		missing = append(missing, SectionProposal)
	}
	if i.Type == TypeBug && i.Problem == "" {
		missing = append(missing, SectionProblem)
	}
	if (i.Type == TypeUIPrimitive || i.Type == TypeComposition) && len(i.Checklist) == 0 {
		missing = append(missing, SectionChecklist)
	}
	return missing
}

// splitFrontmatter splits content into the parsed frontmatter and the body.
func splitFrontmatter(content string) (frontmatter, string, error) {
	var front frontmatter

	if !strings.HasPrefix(content, "---\n") {
		return front, "", ErrMissingFrontmatter
	}

	rest := content[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return front, "", ErrMissingFrontmatter
	}

	block := rest[:end+1]
	body := rest[end+len("\n---"):]
	body = strings.TrimPrefix(body, "\n")

	if err := yaml.Unmarshal([]byte(block), &front); err != nil {
		return front, "", fmt.Errorf("%w: %w", ErrFrontmatterParse, err)
	}

	return front, body, nil
}

// parseTitle returns the first top-level heading of the body.
func parseTitle(body string) string {
	m := titleRegexp.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// splitSections maps `## <name>` heading names to their section content.
func splitSections(body string) map[string]string {
	sections := make(map[string]string)

	matches := sectionRegexp.FindAllStringSubmatchIndex(body, -1)
	for i, m := range matches {
		name := body[m[2]:m[3]]
		start := m[1]
		end := len(body)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		sections[name] = strings.TrimSpace(body[start:end])
	}

	return sections
}

// parseChecklist parses `- [ ]` / `- [x]` lines into checklist items.
func parseChecklist(section string) []ChecklistItem {
	var items []ChecklistItem
	for _, line := range strings.Split(section, "\n") {
		m := checklistRegexp.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		items = append(items, ChecklistItem{
			Text: m[2],
			Done: m[1] != " ",
		})
	}
	return items
}
