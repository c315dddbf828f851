//go:build unit

package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleChangelog = `# Changelog

All notable changes to the component library are documented here.

## [Unreleased]

### Button variants

- Added ghost variant

## [1.4.0] - 2026-07-18

### Dialog

- Focus trap respects portalled content
- Escape closes nested dialogs first

### Tokens

- Spacing scale extended to 40

## [1.3.2] - 2026-06-30

### Dialog

- Fixed scroll lock on iOS
`

func TestParse(t *testing.T) {
	parsed, err := Parse([]byte(sampleChangelog))
	require.NoError(t, err)

	assert.Contains(t, parsed.Preamble, "# Changelog")
	require.Len(t, parsed.Entries, 3)

	assert.Equal(t, UnreleasedVersion, parsed.Entries[0].Version)
	assert.Empty(t, parsed.Entries[0].Date)

	entry := parsed.Entries[1]
	assert.Equal(t, "1.4.0", entry.Version)
	assert.Equal(t, "2026-07-18", entry.Date)
	require.Len(t, entry.Sections, 2)
	assert.Equal(t, "Dialog", entry.Sections[0].Title)
	assert.Len(t, entry.Sections[0].Lines, 2)
}

func TestParse_OrphanSection(t *testing.T) {
	_, err := Parse([]byte("### Dialog\n\n- orphan\n"))
	assert.ErrorIs(t, err, ErrOrphanSection)
}

func TestParse_ContentOutsideSection(t *testing.T) {
	_, err := Parse([]byte("## [1.0.0] - 2026-01-01\n\nstray text\n"))
	assert.ErrorIs(t, err, ErrContentOutsideSection)
}

func TestRender_RoundTrip(t *testing.T) {
	parsed, err := Parse([]byte(sampleChangelog))
	require.NoError(t, err)

	rendered := parsed.Render()
	reparsed, err := Parse(rendered)
	require.NoError(t, err)
	assert.Equal(t, parsed, reparsed)

	// Rendering is canonical, so a second pass is byte-identical.
	assert.Equal(t, rendered, reparsed.Render())
}

func TestMerge_MatchingEntryAndSection(t *testing.T) {
	existing, err := Parse([]byte(sampleChangelog))
	require.NoError(t, err)

	incoming, err := Parse([]byte(`## [1.4.0] - 2026-07-18

### Dialog

- Focus trap respects portalled content
- Added aria-describedby wiring

### Select

- Keyboard type-ahead
`))
	require.NoError(t, err)

	existing.Merge(incoming)

	entry := existing.FindEntry("1.4.0")
	require.NotNil(t, entry)
	require.Len(t, entry.Sections, 3)

	// Dedup kept the existing line once and appended the new one.
	assert.Equal(t, []string{
		"- Focus trap respects portalled content",
		"- Escape closes nested dialogs first",
		"- Added aria-describedby wiring",
	}, entry.Sections[0].Lines)
	assert.Equal(t, "Select", entry.Sections[2].Title)
}

func TestMerge_NewVersionInsertedInOrder(t *testing.T) {
	existing, err := Parse([]byte(sampleChangelog))
	require.NoError(t, err)

	incoming, err := Parse([]byte(`## [1.4.1] - 2026-08-02

### Dialog

- Patch for focus restore
`))
	require.NoError(t, err)

	existing.Merge(incoming)

	require.Len(t, existing.Entries, 4)
	assert.Equal(t, UnreleasedVersion, existing.Entries[0].Version)
	assert.Equal(t, "1.4.1", existing.Entries[1].Version)
	assert.Equal(t, "1.4.0", existing.Entries[2].Version)
	assert.Equal(t, "1.3.2", existing.Entries[3].Version)
}

func TestMerge_IncomingDateWins(t *testing.T) {
	existing, err := Parse([]byte("## [1.0.0] - 2026-01-01\n\n### Fixes\n\n- a\n"))
	require.NoError(t, err)
	incoming, err := Parse([]byte("## [1.0.0] - 2026-01-02\n\n### Fixes\n\n- a\n"))
	require.NoError(t, err)

	existing.Merge(incoming)
	assert.Equal(t, "2026-01-02", existing.Entries[0].Date)
}

func TestMerge_EmptyExisting(t *testing.T) {
	existing := &Changelog{}
	incoming, err := Parse([]byte("## [1.0.0] - 2026-01-01\n\n### Fixes\n\n- a\n"))
	require.NoError(t, err)

	existing.Merge(incoming)
	require.Len(t, existing.Entries, 1)
}

func TestMerge_Idempotent(t *testing.T) {
	existing, err := Parse([]byte(sampleChangelog))
	require.NoError(t, err)
	incoming, err := Parse([]byte(sampleChangelog))
	require.NoError(t, err)

	existing.Merge(incoming)
	once := existing.Render()
	existing.Merge(incoming)
	assert.Equal(t, once, existing.Render())
}

func TestValidate(t *testing.T) {
	parsed, err := Parse([]byte(sampleChangelog))
	require.NoError(t, err)
	assert.NoError(t, parsed.Validate())
}

func TestValidate_OutOfOrder(t *testing.T) {
	out := &Changelog{Entries: []Entry{
		{Version: "1.3.2", Date: "2026-06-30"},
		{Version: "1.4.0", Date: "2026-07-18"},
	}}
	assert.ErrorIs(t, out.Validate(), ErrVersionsOutOfOrder)
}

func TestValidate_BadDate(t *testing.T) {
	out := &Changelog{Entries: []Entry{{Version: "1.0.0", Date: "2026-13-40"}}}
	assert.ErrorIs(t, out.Validate(), ErrInvalidDate)
}

func TestCompareVersions(t *testing.T) {
	assert.Equal(t, -1, compareVersions(UnreleasedVersion, "9.9.9"))
	assert.Equal(t, -1, compareVersions("1.10.0", "1.9.0"))
	assert.Equal(t, 1, compareVersions("1.3.2", "1.4.0"))
	assert.Equal(t, 0, compareVersions("1.4.0", "1.4.0"))
	assert.Equal(t, -1, compareVersions("1.4.0.1", "1.4.0"))
}
