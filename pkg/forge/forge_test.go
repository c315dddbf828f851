//go:build unit

package forge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgoudin/idea-manager/pkg/idea"
	"github.com/mgoudin/idea-manager/pkg/logger"
)

func TestManager_GetForge(t *testing.T) {
	manager := NewManager(logger.NewNoopLogger())

	forge, err := manager.GetForge(GitHubName)
	require.NoError(t, err)
	assert.Equal(t, GitHubName, forge.Name())

	_, err = manager.GetForge("gitlab")
	assert.ErrorIs(t, err, ErrUnsupportedForge)
}

func TestParseGitHubRemote(t *testing.T) {
	cases := map[string]RepoRef{
		"https://github.com/acme-ui/components.git": {Owner: "acme-ui", Name: "components"},
		"https://github.com/acme-ui/components":     {Owner: "acme-ui", Name: "components"},
		"git@github.com:acme-ui/components.git":     {Owner: "acme-ui", Name: "components"},
	}
	for input, want := range cases {
		got, err := parseGitHubRemote(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := parseGitHubRemote("https://gitlab.com/acme-ui/components.git")
	assert.ErrorIs(t, err, ErrInvalidRemote)
}

func testIdea() *idea.Idea {
	return &idea.Idea{
		ID:       "U-012",
		Type:     idea.TypeUIPrimitive,
		File:     "U-012-button-variants.md",
		Title:    "Button variants",
		Issue:    42,
		Purpose:  "Add secondary and ghost variants.",
		Problem:  "Only the primary variant exists.",
		Proposal: "Extend the variant prop.",
		Checklist: []idea.ChecklistItem{
			{Text: "Variant prop accepts ghost", Done: true},
			{Text: "Tokens documented", Done: false},
		},
	}
}

func TestBuildPRBody(t *testing.T) {
	body, err := BuildPRBody(testIdea())
	require.NoError(t, err)

	assert.Contains(t, body, "## Purpose\n\nAdd secondary and ghost variants.")
	assert.Contains(t, body, "## Problem\n\nOnly the primary variant exists.")
	assert.Contains(t, body, "- [x] Variant prop accepts ghost")
	assert.Contains(t, body, "- [ ] Tokens documented")
	assert.Contains(t, body, "Closes #42")
}

func TestBuildPRBody_OmitsEmptySections(t *testing.T) {
	i := testIdea()
	i.Problem = ""
	i.Checklist = nil
	i.Issue = 0

	body, err := BuildPRBody(i)
	require.NoError(t, err)

	assert.NotContains(t, body, "## Problem")
	assert.NotContains(t, body, "## Acceptance Checklist")
	assert.NotContains(t, body, "Closes #")
}

func TestBuildTitles(t *testing.T) {
	i := testIdea()
	assert.Equal(t, "U-012: Button variants", BuildPRTitle(i))
	assert.Equal(t, "U-012: Button variants", BuildIssueTitle(i))
}

func TestBuildIssueBody(t *testing.T) {
	body, err := BuildIssueBody(testIdea())
	require.NoError(t, err)
	assert.Contains(t, body, "Tracked by idea file `U-012-button-variants.md`.")
}
