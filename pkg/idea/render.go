package idea

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Render serializes the idea back to markdown in canonical order: frontmatter,
// title, then Purpose, Problem, Proposal and the acceptance checklist. Parsing
// the rendered output yields the same idea.
func (i *Idea) Render() ([]byte, error) {
	front := frontmatter{
		Status:   string(i.Status),
		Lane:     i.Lane,
		Owner:    i.Owner,
		Priority: i.Priority,
		Issue:    i.Issue,
		Branch:   i.Branch,
		PR:       i.PR,
	}

	frontData, err := yaml.Marshal(&front)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(frontData)
	b.WriteString("---\n")

	if i.Title != "" {
		b.WriteString("\n# ")
		b.WriteString(i.Title)
		b.WriteString("\n")
	}

	writeSection(&b, SectionPurpose, i.Purpose)
	writeSection(&b, SectionProblem, i.Problem)
	writeSection(&b, SectionProposal, i.Proposal)

	if len(i.Checklist) > 0 {
		b.WriteString("\n## ")
		b.WriteString(SectionChecklist)
		b.WriteString("\n\n")
		for _, item := range i.Checklist {
			mark := " "
			if item.Done {
				mark = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s\n", mark, item.Text)
		}
	}

	return []byte(b.String()), nil
}

// writeSection appends a section heading and its content when non-empty.
func writeSection(b *strings.Builder, name, content string) {
	if content == "" {
		return
	}
	b.WriteString("\n## ")
	b.WriteString(name)
	b.WriteString("\n\n")
	b.WriteString(content)
	b.WriteString("\n")
}
