//go:build unit

package ideamanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mgoudin/idea-manager/pkg/dependencies"
	pkgfs "github.com/mgoudin/idea-manager/pkg/fs"
	"github.com/mgoudin/idea-manager/pkg/status"
)

const mergedIdea = `---
status: Merged
lane: A
issue: 42
branch: U-004-tooltip
pr: 7
---
# Tooltip

## Purpose

A tooltip.

## Proposal

Build it.

## Acceptance Checklist

- [x] Implemented
`

func TestArchive_MovesFileAndMarksArchived(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := pkgfs.NewMockFS(ctrl)
	mockStatus := status.NewMockManager(ctrl)

	expectLoadIdea(mockFS, "U-004-tooltip.md", mergedIdea)

	mockFS.EXPECT().MkdirAll("ideas/archive", gomock.Any()).Return(nil)
	mockFS.EXPECT().Rename("ideas/U-004-tooltip.md", "ideas/archive/U-004-tooltip.md").Return(nil)
	mockFS.EXPECT().WriteFileAtomic("ideas/archive/U-004-tooltip.md", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, data []byte, _ interface{}) error {
			assert.Contains(t, string(data), "status: Archived")
			return nil
		})

	mockStatus.EXPECT().GetIdea("U-004").Return(&status.Record{ID: "U-004"}, nil)
	mockStatus.EXPECT().UpsertIdea(gomock.Any()).DoAndReturn(func(record status.Record) error {
		assert.Equal(t, "Archived", record.Status)
		assert.Equal(t, "ideas/archive/U-004-tooltip.md", record.File)
		return nil
	})

	im := newTestManager(&dependencies.Dependencies{
		FS:            mockFS,
		Config:        expectConfig(ctrl, boardlessConfig()),
		StatusManager: mockStatus,
	})

	require.NoError(t, im.Archive("U-004", false))
}

func TestArchive_NotMergedWithoutForce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := pkgfs.NewMockFS(ctrl)
	expectLoadIdea(mockFS, "U-004-tooltip.md", ticketedIdea)

	im := newTestManager(&dependencies.Dependencies{
		FS:     mockFS,
		Config: expectConfig(ctrl, boardlessConfig()),
	})

	err := im.Archive("U-004", false)
	assert.ErrorIs(t, err, ErrNotMerged)
}

func TestArchive_ForceArchivesNonMerged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := pkgfs.NewMockFS(ctrl)
	mockStatus := status.NewMockManager(ctrl)

	expectLoadIdea(mockFS, "U-004-tooltip.md", ticketedIdea)

	mockFS.EXPECT().MkdirAll("ideas/archive", gomock.Any()).Return(nil)
	mockFS.EXPECT().Rename("ideas/U-004-tooltip.md", "ideas/archive/U-004-tooltip.md").Return(nil)
	mockFS.EXPECT().WriteFileAtomic("ideas/archive/U-004-tooltip.md", gomock.Any(), gomock.Any()).Return(nil)

	mockStatus.EXPECT().GetIdea("U-004").Return(&status.Record{ID: "U-004"}, nil)
	mockStatus.EXPECT().UpsertIdea(gomock.Any()).Return(nil)

	im := newTestManager(&dependencies.Dependencies{
		FS:            mockFS,
		Config:        expectConfig(ctrl, boardlessConfig()),
		StatusManager: mockStatus,
	})

	require.NoError(t, im.Archive("U-004", true))
}
