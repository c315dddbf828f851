// Package changelog parses, merges and renders CHANGELOG.md files made of
// `## [version] - date` entries with `### title` subsections.
package changelog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// UnreleasedVersion is the version label that always sorts first.
const UnreleasedVersion = "Unreleased"

var (
	entryRegexp   = regexp.MustCompile(`^## \[([^\]]+)\](?: - (\d{4}-\d{2}-\d{2}))? *$`)
	sectionRegexp = regexp.MustCompile(`^### +(.+?) *$`)
)

// Section is a `### <title>` block inside a changelog entry.
type Section struct {
	Title string
	Lines []string
}

// Entry is a `## [version] - date` block.
type Entry struct {
	Version  string
	Date     string
	Sections []Section
}

// Changelog is a parsed CHANGELOG.md: optional preamble text followed by
// entries, newest first.
type Changelog struct {
	Preamble string
	Entries  []Entry
}

// Parse parses changelog content. Text before the first entry heading is kept
// verbatim as the preamble.
func Parse(content []byte) (*Changelog, error) {
	changelog := &Changelog{}

	var preamble []string
	var entry *Entry
	var section *Section

	flushSection := func() {
		if section != nil && entry != nil {
			entry.Sections = append(entry.Sections, *section)
		}
		section = nil
	}
	flushEntry := func() {
		flushSection()
		if entry != nil {
			changelog.Entries = append(changelog.Entries, *entry)
		}
		entry = nil
	}

	for _, line := range strings.Split(string(content), "\n") {
		if m := entryRegexp.FindStringSubmatch(line); m != nil {
			flushEntry()
			entry = &Entry{Version: m[1], Date: m[2]}
			continue
		}
		if m := sectionRegexp.FindStringSubmatch(line); m != nil {
			if entry == nil {
				return nil, fmt.Errorf("%w: %q appears before any version entry", ErrOrphanSection, line)
			}
			flushSection()
			section = &Section{Title: m[1]}
			continue
		}

		trimmed := strings.TrimRight(line, " \t")
		switch {
		case section != nil:
			if trimmed != "" {
				section.Lines = append(section.Lines, trimmed)
			}
		case entry != nil:
			if trimmed != "" {
				return nil, fmt.Errorf("%w: %q in entry [%s]", ErrContentOutsideSection, trimmed, entry.Version)
			}
		default:
			preamble = append(preamble, line)
		}
	}
	flushEntry()

	changelog.Preamble = strings.TrimSpace(strings.Join(preamble, "\n"))
	return changelog, nil
}

// Render serializes the changelog back to markdown. Rendering is canonical:
// one blank line between blocks, entries in stored order.
func (c *Changelog) Render() []byte {
	var b strings.Builder

	if c.Preamble != "" {
		b.WriteString(c.Preamble)
		b.WriteString("\n")
	}

	for _, entry := range c.Entries {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		if entry.Date != "" {
			fmt.Fprintf(&b, "## [%s] - %s\n", entry.Version, entry.Date)
		} else {
			fmt.Fprintf(&b, "## [%s]\n", entry.Version)
		}
		for _, section := range entry.Sections {
			fmt.Fprintf(&b, "\n### %s\n\n", section.Title)
			for _, line := range section.Lines {
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
	}

	return []byte(b.String())
}

// FindEntry returns the entry for a version, or nil.
func (c *Changelog) FindEntry(version string) *Entry {
	for i := range c.Entries {
		if c.Entries[i].Version == version {
			return &c.Entries[i]
		}
	}
	return nil
}

// compareVersions orders changelog versions newest-first: Unreleased sorts
// before everything, then dotted numeric segments descending.
func compareVersions(a, b string) int {
	if a == b {
		return 0
	}
	if a == UnreleasedVersion {
		return -1
	}
	if b == UnreleasedVersion {
		return 1
	}

	aParts := strings.Split(a, ".")
	bParts := strings.Split(b, ".")
	for i := 0; i < len(aParts) && i < len(bParts); i++ {
		aNum, aErr := strconv.Atoi(aParts[i])
		bNum, bErr := strconv.Atoi(bParts[i])
		if aErr != nil || bErr != nil {
			if cmp := strings.Compare(bParts[i], aParts[i]); cmp != 0 {
				return cmp
			}
			continue
		}
		if aNum != bNum {
			if aNum > bNum {
				return -1
			}
			return 1
		}
	}
	if len(aParts) > len(bParts) {
		return -1
	}
	if len(aParts) < len(bParts) {
		return 1
	}
	return 0
}
