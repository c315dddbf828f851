//go:build unit

package ideamanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mgoudin/idea-manager/pkg/config"
	"github.com/mgoudin/idea-manager/pkg/dependencies"
	pkgfs "github.com/mgoudin/idea-manager/pkg/fs"
	"github.com/mgoudin/idea-manager/pkg/git"
	"github.com/mgoudin/idea-manager/pkg/status"
)

// boardlessConfig returns a config without a project board, so branch tests
// do not have to stub the projects client.
func boardlessConfig() config.Config {
	cfg := testConfig()
	cfg.ProjectOwner = ""
	cfg.ProjectNumber = 0
	return cfg
}

func TestCreateBranch_CreatesAndChecksOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := pkgfs.NewMockFS(ctrl)
	mockGit := git.NewMockGit(ctrl)
	mockStatus := status.NewMockManager(ctrl)

	expectLoadIdea(mockFS, "U-004-tooltip.md", ticketedIdea)

	mockGit.EXPECT().ListBranches(".", "U-004-*").Return(nil, nil)
	mockGit.EXPECT().CreateBranch(".", "U-004-tooltip").Return(nil)
	mockGit.EXPECT().CheckoutBranch(".", "U-004-tooltip").Return(nil)

	mockStatus.EXPECT().GetIdea("U-004").Return(&status.Record{ID: "U-004"}, nil)
	mockFS.EXPECT().WriteFileAtomic("ideas/U-004-tooltip.md", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, data []byte, _ interface{}) error {
			assert.Contains(t, string(data), "status: Branched")
			assert.Contains(t, string(data), "branch: U-004-tooltip")
			return nil
		})
	mockStatus.EXPECT().UpsertIdea(gomock.Any()).DoAndReturn(func(record status.Record) error {
		assert.Equal(t, "U-004-tooltip", record.Branch)
		assert.Equal(t, "Branched", record.Status)
		return nil
	})

	im := newTestManager(&dependencies.Dependencies{
		FS:            mockFS,
		Git:           mockGit,
		Config:        expectConfig(ctrl, boardlessConfig()),
		StatusManager: mockStatus,
	})

	require.NoError(t, im.CreateBranch("U-004"))
}

func TestCreateBranch_SecondBranchRefused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := pkgfs.NewMockFS(ctrl)
	mockGit := git.NewMockGit(ctrl)

	expectLoadIdea(mockFS, "U-004-tooltip.md", ticketedIdea)
	mockGit.EXPECT().ListBranches(".", "U-004-*").Return([]string{"U-004-tooltip"}, nil)

	im := newTestManager(&dependencies.Dependencies{
		FS:     mockFS,
		Git:    mockGit,
		Config: expectConfig(ctrl, boardlessConfig()),
	})

	err := im.CreateBranch("U-004")
	assert.ErrorIs(t, err, ErrBranchAlreadyOpen)
}

func TestCreateBranch_RequiresIssue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := pkgfs.NewMockFS(ctrl)
	expectLoadIdea(mockFS, "U-004-tooltip.md", draftIdea)

	im := newTestManager(&dependencies.Dependencies{
		FS:     mockFS,
		Config: expectConfig(ctrl, boardlessConfig()),
	})

	err := im.CreateBranch("U-004")
	assert.ErrorIs(t, err, ErrNoIssue)
}
