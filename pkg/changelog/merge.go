package changelog

import (
	"time"
)

// Merge folds incoming entries into the changelog. Entries match by version,
// sections match by exact title, and lines are unioned with existing order
// preserved and exact duplicates dropped. When a matched entry disagrees on
// the date the incoming date wins. Unmatched entries are inserted keeping the
// newest-first version order. Merging is idempotent.
func (c *Changelog) Merge(incoming *Changelog) {
	for _, entry := range incoming.Entries {
		existing := c.FindEntry(entry.Version)
		if existing == nil {
			c.insertEntry(entry)
			continue
		}

		if entry.Date != "" && entry.Date != existing.Date {
			existing.Date = entry.Date
		}
		for _, section := range entry.Sections {
			existing.mergeSection(section)
		}
	}
}

// mergeSection unions a section into the entry, matching by title.
func (e *Entry) mergeSection(incoming Section) {
	for i := range e.Sections {
		if e.Sections[i].Title != incoming.Title {
			continue
		}
		seen := make(map[string]struct{}, len(e.Sections[i].Lines))
		for _, line := range e.Sections[i].Lines {
			seen[line] = struct{}{}
		}
		for _, line := range incoming.Lines {
			if _, ok := seen[line]; ok {
				continue
			}
			e.Sections[i].Lines = append(e.Sections[i].Lines, line)
			seen[line] = struct{}{}
		}
		return
	}
	e.Sections = append(e.Sections, incoming)
}

// insertEntry places a new entry keeping newest-first version order.
func (c *Changelog) insertEntry(entry Entry) {
	for i := range c.Entries {
		if compareVersions(entry.Version, c.Entries[i].Version) < 0 {
			c.Entries = append(c.Entries[:i], append([]Entry{entry}, c.Entries[i:]...)...)
			return
		}
	}
	c.Entries = append(c.Entries, entry)
}

// Validate checks ordering and date format, used by the changelog guardrail.
func (c *Changelog) Validate() error {
	for i, entry := range c.Entries {
		if entry.Date != "" {
			if _, err := time.Parse("2006-01-02", entry.Date); err != nil {
				return ErrInvalidDate
			}
		}
		if i > 0 && compareVersions(c.Entries[i-1].Version, entry.Version) >= 0 {
			return ErrVersionsOutOfOrder
		}
	}
	return nil
}
