//go:build unit

package ideamanager

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mgoudin/idea-manager/pkg/dependencies"
	"github.com/mgoudin/idea-manager/pkg/forge"
	pkgfs "github.com/mgoudin/idea-manager/pkg/fs"
	"github.com/mgoudin/idea-manager/pkg/projects"
	"github.com/mgoudin/idea-manager/pkg/status"
)

const draftIdea = `---
status: Draft
lane: A
---
# Tooltip

## Purpose

A tooltip.

## Proposal

Build it.

## Acceptance Checklist

- [ ] Implemented
`

const ticketedIdea = `---
status: Ticketed
lane: A
issue: 42
---
# Tooltip

## Purpose

A tooltip.

## Proposal

Build it.

## Acceptance Checklist

- [ ] Implemented
`

func expectLoadIdea(mockFS *pkgfs.MockFS, file, content string) {
	mockFS.EXPECT().ReadDir("ideas").Return([]fs.DirEntry{
		fakeDirEntry{name: file},
	}, nil)
	mockFS.EXPECT().ReadFile("ideas/" + file).Return([]byte(content), nil)
}

func expectForge(ctrl *gomock.Controller) (*forge.MockManagerInterface, *forge.MockForge, forge.RepoRef) {
	mockForge := forge.NewMockForge(ctrl)
	mockManager := forge.NewMockManagerInterface(ctrl)
	ref := forge.RepoRef{Owner: "acme", Name: "design-system"}

	mockManager.EXPECT().GetForgeForRepository(".").Return(mockForge, nil)
	mockForge.EXPECT().RepoFromRemote(".").Return(ref, nil)
	return mockManager, mockForge, ref
}

func TestTicket_CreatesIssueAndBoardItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := pkgfs.NewMockFS(ctrl)
	mockStatus := status.NewMockManager(ctrl)
	mockProjects := projects.NewMockProjects(ctrl)
	mockManager, mockForge, ref := expectForge(ctrl)

	expectLoadIdea(mockFS, "U-004-tooltip.md", draftIdea)

	mockForge.EXPECT().
		CreateIssue(ref, "U-004: Tooltip", gomock.Any(), []string{"lane-A"}).
		Return(&forge.IssueInfo{Number: 42, NodeID: "I_42"}, nil)

	mockProjects.EXPECT().ResolveProject("acme", 7).Return("PVT_1", nil).Times(2)
	mockProjects.EXPECT().UpsertItem("PVT_1", "I_42").Return("ITEM_1", nil)
	mockProjects.EXPECT().WaitForItem("PVT_1", 42).Return(&projects.Item{ID: "ITEM_1", IssueNumber: 42}, nil)
	mockProjects.EXPECT().ResolveFields("PVT_1").Return(&projects.Fields{
		IDs: map[string]string{"Status": "F_1"},
		Options: map[string]map[string]string{
			"Status": {"Ticketed": "OPT_T"},
		},
	}, nil)
	mockProjects.EXPECT().SetSingleSelect("PVT_1", "ITEM_1", "F_1", "OPT_T").Return(nil)

	mockFS.EXPECT().WriteFileAtomic("ideas/U-004-tooltip.md", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, data []byte, _ interface{}) error {
			assert.Contains(t, string(data), "status: Ticketed")
			assert.Contains(t, string(data), "issue: 42")
			return nil
		})
	mockStatus.EXPECT().UpsertIdea(gomock.Any()).DoAndReturn(func(record status.Record) error {
		assert.Equal(t, 42, record.Issue)
		assert.Equal(t, "ITEM_1", record.ItemID)
		assert.Equal(t, "Ticketed", record.Status)
		return nil
	})

	im := newTestManager(&dependencies.Dependencies{
		FS:            mockFS,
		Config:        expectConfig(ctrl, testConfig()),
		StatusManager: mockStatus,
		ForgeManager:  mockManager,
		Projects:      mockProjects,
	})

	require.NoError(t, im.Ticket("U-004"))
}

func TestTicket_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := pkgfs.NewMockFS(ctrl)
	mockStatus := status.NewMockManager(ctrl)
	mockProjects := projects.NewMockProjects(ctrl)
	mockManager, mockForge, ref := expectForge(ctrl)

	expectLoadIdea(mockFS, "U-004-tooltip.md", ticketedIdea)

	// Existing issue is fetched, never recreated.
	mockForge.EXPECT().GetIssue(ref, 42).Return(&forge.IssueInfo{Number: 42, NodeID: "I_42"}, nil)

	mockProjects.EXPECT().ResolveProject("acme", 7).Return("PVT_1", nil).Times(2)
	mockProjects.EXPECT().UpsertItem("PVT_1", "I_42").Return("ITEM_1", nil)
	mockProjects.EXPECT().WaitForItem("PVT_1", 42).Return(&projects.Item{ID: "ITEM_1", IssueNumber: 42}, nil)
	mockProjects.EXPECT().ResolveFields("PVT_1").Return(&projects.Fields{
		IDs: map[string]string{"Status": "F_1"},
		Options: map[string]map[string]string{
			"Status": {"Ticketed": "OPT_T"},
		},
	}, nil)
	mockProjects.EXPECT().SetSingleSelect("PVT_1", "ITEM_1", "F_1", "OPT_T").Return(nil)

	mockFS.EXPECT().WriteFileAtomic("ideas/U-004-tooltip.md", gomock.Any(), gomock.Any()).Return(nil)
	mockStatus.EXPECT().UpsertIdea(gomock.Any()).Return(nil)

	im := newTestManager(&dependencies.Dependencies{
		FS:            mockFS,
		Config:        expectConfig(ctrl, testConfig()),
		StatusManager: mockStatus,
		ForgeManager:  mockManager,
		Projects:      mockProjects,
	})

	require.NoError(t, im.Ticket("U-004"))
}

func TestTicket_BoardlessKeepsItemID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := pkgfs.NewMockFS(ctrl)
	mockStatus := status.NewMockManager(ctrl)
	mockManager, mockForge, ref := expectForge(ctrl)

	expectLoadIdea(mockFS, "U-004-tooltip.md", ticketedIdea)
	mockForge.EXPECT().GetIssue(ref, 42).Return(&forge.IssueInfo{Number: 42, NodeID: "I_42"}, nil)

	// Without a board, the recorded item ID is read once and carried over.
	mockStatus.EXPECT().GetIdea("U-004").Return(&status.Record{ID: "U-004", ItemID: "ITEM_9"}, nil)
	mockFS.EXPECT().WriteFileAtomic("ideas/U-004-tooltip.md", gomock.Any(), gomock.Any()).Return(nil)
	mockStatus.EXPECT().UpsertIdea(gomock.Any()).DoAndReturn(func(record status.Record) error {
		assert.Equal(t, "ITEM_9", record.ItemID)
		return nil
	})

	im := newTestManager(&dependencies.Dependencies{
		FS:            mockFS,
		Config:        expectConfig(ctrl, boardlessConfig()),
		StatusManager: mockStatus,
		ForgeManager:  mockManager,
	})

	require.NoError(t, im.Ticket("U-004"))
}

func TestTicket_IdeaNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := pkgfs.NewMockFS(ctrl)
	mockFS.EXPECT().ReadDir("ideas").Return(nil, nil)

	im := newTestManager(&dependencies.Dependencies{
		FS:     mockFS,
		Config: expectConfig(ctrl, testConfig()),
	})

	err := im.Ticket("U-999")
	assert.ErrorIs(t, err, ErrIdeaNotFound)
}
