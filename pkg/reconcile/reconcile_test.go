//go:build unit

package reconcile

import (
	"context"
	"io/fs"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mgoudin/idea-manager/pkg/config"
	pkgfs "github.com/mgoudin/idea-manager/pkg/fs"
	"github.com/mgoudin/idea-manager/pkg/idea"
	"github.com/mgoudin/idea-manager/pkg/logger"
	"github.com/mgoudin/idea-manager/pkg/projects"
	"github.com/mgoudin/idea-manager/pkg/status"
)

// fakeDirEntry implements os.DirEntry for ReadDir expectations.
type fakeDirEntry struct {
	name string
	dir  bool
}

func (e fakeDirEntry) Name() string               { return e.name }
func (e fakeDirEntry) IsDir() bool                { return e.dir }
func (e fakeDirEntry) Type() fs.FileMode          { return 0 }
func (e fakeDirEntry) Info() (fs.FileInfo, error) { return nil, nil }

func testConfig() config.Config {
	return config.Config{
		IdeasDir:      "ideas",
		ChangelogFile: "CHANGELOG.md",
		StatusFile:    "status.yaml",
		ProjectOwner:  "acme",
		ProjectNumber: 7,
	}
}

func ideaFile(status string, issue int) []byte {
	return []byte(`---
status: ` + status + `
lane: A
issue: ` + strconv.Itoa(issue) + `
---
# Button

## Purpose

A button.

## Proposal

Build it.

## Acceptance Checklist

- [ ] renders
`)
}

func TestReconciler_Plan_BoardWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := pkgfs.NewMockFS(ctrl)
	mockProjects := projects.NewMockProjects(ctrl)

	mockProjects.EXPECT().ResolveProject("acme", 7).Return("PVT_1", nil)
	mockProjects.EXPECT().ListItems("PVT_1").Return([]projects.Item{
		{ID: "ITEM_1", IssueNumber: 10, Status: "In Review"},
	}, nil)

	mockFS.EXPECT().ReadDir("ideas").Return([]fs.DirEntry{
		fakeDirEntry{name: "U-001-button.md"},
	}, nil)
	mockFS.EXPECT().ReadFile("ideas/U-001-button.md").Return(ideaFile("PR Open", 10), nil)

	r := NewReconciler(testConfig(), mockFS, nil, mockProjects, nil, logger.NewNoopLogger())
	plan, err := r.Plan(context.Background(), "/repo")
	require.NoError(t, err)

	require.Len(t, plan.Actions, 1)
	assert.Equal(t, Action{
		ID:   "U-001",
		File: "U-001-button.md",
		From: idea.StatusPROpen,
		To:   idea.StatusInReview,
	}, plan.Actions[0])
	assert.Empty(t, plan.Upserts)
	assert.Empty(t, plan.Warnings)
}

func TestReconciler_Plan_NoDrift(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := pkgfs.NewMockFS(ctrl)
	mockProjects := projects.NewMockProjects(ctrl)

	mockProjects.EXPECT().ResolveProject("acme", 7).Return("PVT_1", nil)
	mockProjects.EXPECT().ListItems("PVT_1").Return([]projects.Item{
		{ID: "ITEM_1", IssueNumber: 10, Status: "Ticketed"},
	}, nil)

	mockFS.EXPECT().ReadDir("ideas").Return([]fs.DirEntry{
		fakeDirEntry{name: "U-001-button.md"},
	}, nil)
	mockFS.EXPECT().ReadFile("ideas/U-001-button.md").Return(ideaFile("Ticketed", 10), nil)

	r := NewReconciler(testConfig(), mockFS, nil, mockProjects, nil, logger.NewNoopLogger())
	plan, err := r.Plan(context.Background(), "/repo")
	require.NoError(t, err)
	assert.True(t, plan.Empty())
}

func TestReconciler_Plan_MissingItemBecomesUpsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := pkgfs.NewMockFS(ctrl)
	mockProjects := projects.NewMockProjects(ctrl)

	mockProjects.EXPECT().ResolveProject("acme", 7).Return("PVT_1", nil)
	mockProjects.EXPECT().ListItems("PVT_1").Return(nil, nil)

	mockFS.EXPECT().ReadDir("ideas").Return([]fs.DirEntry{
		fakeDirEntry{name: "C-002-form.md"},
	}, nil)
	mockFS.EXPECT().ReadFile("ideas/C-002-form.md").Return(ideaFile("Branched", 12), nil)

	r := NewReconciler(testConfig(), mockFS, nil, mockProjects, nil, logger.NewNoopLogger())
	plan, err := r.Plan(context.Background(), "/repo")
	require.NoError(t, err)

	require.Len(t, plan.Upserts, 1)
	assert.Equal(t, Upsert{ID: "C-002", Issue: 12, Status: idea.StatusBranched}, plan.Upserts[0])
	assert.Empty(t, plan.Actions)
}

func TestReconciler_Plan_Warnings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := pkgfs.NewMockFS(ctrl)
	mockProjects := projects.NewMockProjects(ctrl)

	mockProjects.EXPECT().ResolveProject("acme", 7).Return("PVT_1", nil)
	mockProjects.EXPECT().ListItems("PVT_1").Return([]projects.Item{
		{ID: "ITEM_1", IssueNumber: 10, Status: "Blocked"},
	}, nil)

	mockFS.EXPECT().ReadDir("ideas").Return([]fs.DirEntry{
		fakeDirEntry{name: "U-001-button.md"},
		fakeDirEntry{name: "C-002-form.md"},
		fakeDirEntry{name: "notes.txt"},
		fakeDirEntry{name: "archive", dir: true},
	}, nil)
	// U-001 has an issue but the board status does not parse.
	mockFS.EXPECT().ReadFile("ideas/U-001-button.md").Return(ideaFile("Ticketed", 10), nil)
	// C-002 has no issue.
	mockFS.EXPECT().ReadFile("ideas/C-002-form.md").Return(ideaFile("Draft", 0), nil)

	r := NewReconciler(testConfig(), mockFS, nil, mockProjects, nil, logger.NewNoopLogger())
	plan, err := r.Plan(context.Background(), "/repo")
	require.NoError(t, err)

	assert.True(t, plan.Empty())
	require.Len(t, plan.Warnings, 2)
	assert.Contains(t, plan.Warnings[0], "no issue")
	assert.Contains(t, plan.Warnings[1], "does not parse")
}

func TestReconciler_Plan_NoProjectConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.ProjectOwner = ""

	r := NewReconciler(cfg, nil, nil, nil, nil, logger.NewNoopLogger())
	_, err := r.Plan(context.Background(), "/repo")
	assert.ErrorIs(t, err, ErrProjectNotConfigured)
}

func TestReconciler_Apply_RewritesFileAndIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := pkgfs.NewMockFS(ctrl)
	mockStatus := status.NewMockManager(ctrl)

	mockFS.EXPECT().ReadFile("ideas/U-001-button.md").Return(ideaFile("PR Open", 10), nil)

	var written []byte
	mockFS.EXPECT().
		WriteFileAtomic("ideas/U-001-button.md", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, data []byte, _ interface{}) error {
			written = data
			return nil
		})

	mockStatus.EXPECT().GetIdea("U-001").Return(&status.Record{ID: "U-001", ItemID: "ITEM_1"}, nil)
	mockStatus.EXPECT().UpsertIdea(gomock.Any()).DoAndReturn(func(record status.Record) error {
		assert.Equal(t, "In Review", record.Status)
		assert.Equal(t, "ITEM_1", record.ItemID)
		return nil
	})

	r := NewReconciler(testConfig(), mockFS, nil, nil, mockStatus, logger.NewNoopLogger())
	err := r.Apply(context.Background(), "/repo", &Plan{
		Actions: []Action{{
			ID:   "U-001",
			File: "U-001-button.md",
			From: idea.StatusPROpen,
			To:   idea.StatusInReview,
		}},
	})
	require.NoError(t, err)

	rewritten, err := idea.Parse("U-001-button.md", written)
	require.NoError(t, err)
	assert.Equal(t, idea.StatusInReview, rewritten.Status)
}
