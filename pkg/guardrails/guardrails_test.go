//go:build unit

package guardrails

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mgoudin/idea-manager/pkg/config"
	"github.com/mgoudin/idea-manager/pkg/git"
	"github.com/mgoudin/idea-manager/pkg/logger"
	"github.com/mgoudin/idea-manager/pkg/status"
)

func testConfig() config.Config {
	return config.Config{
		IdeasDir:        "ideas",
		ChangelogFile:   "CHANGELOG.md",
		StatusFile:      "status.yaml",
		Lanes:           map[string]string{"A": "primitives", "B": "compositions"},
		CommitPrefixes:  []string{"chore", "docs", "fix", "ci"},
		CommitWindow:    5,
		BranchAllowlist: []string{"main", "develop"},
	}
}

func TestCommitMessagesCheck(t *testing.T) {
	tests := []struct {
		name             string
		subjects         []string
		expectedProblems int
	}{
		{
			name:             "idea subjects pass",
			subjects:         []string{"U-001: add button", "B-012: fix focus trap"},
			expectedProblems: 0,
		},
		{
			name:             "allowed prefixes pass",
			subjects:         []string{"chore: bump deps", "docs: update readme", "ci: cache modules"},
			expectedProblems: 0,
		},
		{
			name:             "merge commits pass",
			subjects:         []string{"Merge pull request #42 from acme/U-001-button"},
			expectedProblems: 0,
		},
		{
			name:             "unattributed subjects fail",
			subjects:         []string{"wip", "U-1: too short", "feat: not allowed"},
			expectedProblems: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGit := git.NewMockGit(ctrl)
			mockGit.EXPECT().RecentSubjects("/repo", 5).Return(tt.subjects, nil)

			check := newCommitMessagesCheck(testConfig(), mockGit)
			result, err := check.Run(context.Background(), "/repo")
			require.NoError(t, err)
			assert.Len(t, result.Problems, tt.expectedProblems)
		})
	}
}

func TestBranchNameCheck(t *testing.T) {
	tests := []struct {
		name     string
		branch   string
		expectOK bool
	}{
		{name: "allowlisted branch", branch: "main", expectOK: true},
		{name: "idea branch", branch: "U-001-button-primitive", expectOK: true},
		{name: "free-form branch", branch: "feature/quick-fix", expectOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGit := git.NewMockGit(ctrl)
			mockGit.EXPECT().GetCurrentBranch("/repo").Return(tt.branch, nil)

			check := newBranchNameCheck(testConfig(), mockGit)
			result, err := check.Run(context.Background(), "/repo")
			require.NoError(t, err)
			assert.Equal(t, tt.expectOK, result.OK())
		})
	}
}

func TestUniqueIDsCheck(t *testing.T) {
	tests := []struct {
		name             string
		branches         []string
		records          []status.Record
		expectedProblems int
	}{
		{
			name:     "one branch per idea",
			branches: []string{"main", "U-001-button", "C-002-form"},
			records: []status.Record{
				{ID: "U-001", PR: 10},
				{ID: "C-002", PR: 11},
			},
			expectedProblems: 0,
		},
		{
			name:             "two branches for one idea",
			branches:         []string{"U-001-button", "U-001-button-v2"},
			expectedProblems: 1,
		},
		{
			name:     "two ideas share a PR",
			branches: []string{"main"},
			records: []status.Record{
				{ID: "U-001", PR: 10},
				{ID: "C-002", PR: 10},
			},
			expectedProblems: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGit := git.NewMockGit(ctrl)
			mockGit.EXPECT().ListBranches("/repo", "").Return(tt.branches, nil)

			mockStatus := status.NewMockManager(ctrl)
			mockStatus.EXPECT().ListIdeas().Return(tt.records, nil)

			check := newUniqueIDsCheck(mockGit, mockStatus)
			result, err := check.Run(context.Background(), "/repo")
			require.NoError(t, err)
			assert.Len(t, result.Problems, tt.expectedProblems)
		})
	}
}

func TestRunner_UnknownCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := NewRunner(testConfig(), nil, nil, nil, logger.NewNoopLogger())
	_, err := runner.Run(context.Background(), "/repo", []string{"nonexistent"})
	assert.ErrorIs(t, err, ErrUnknownCheck)
}

func TestRunner_SelectsNamedChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGit := git.NewMockGit(ctrl)
	mockGit.EXPECT().GetCurrentBranch("/repo").Return("main", nil)

	runner := NewRunner(testConfig(), nil, mockGit, nil, logger.NewNoopLogger())
	results, err := runner.Run(context.Background(), "/repo", []string{"branch-name"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "branch-name", results[0].Check)
	assert.True(t, results[0].OK())
}

func TestRunner_Checks(t *testing.T) {
	runner := NewRunner(testConfig(), nil, nil, nil, logger.NewNoopLogger())
	assert.Equal(t, []string{
		"commit-messages",
		"branch-name",
		"idea-files",
		"readme-presence",
		"changelog",
		"unique-ids",
	}, runner.Checks())
}
