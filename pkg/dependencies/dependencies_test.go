//go:build unit

package dependencies

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mgoudin/idea-manager/pkg/config"
	"github.com/mgoudin/idea-manager/pkg/status"
)

// TestDependencies_Validate_MissingFS tests validation failure when FS is missing
func TestDependencies_Validate_MissingFS(t *testing.T) {
	deps := New()
	deps.FS = nil // Override the default
	deps.Config = config.NewManager("")
	deps.StatusManager = status.NewManager(nil, "status.yaml")

	err := deps.Validate()
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrFSMissing)
}

// TestDependencies_Validate_MissingConfig tests validation failure when Config is missing
func TestDependencies_Validate_MissingConfig(t *testing.T) {
	deps := New()
	deps.StatusManager = status.NewManager(deps.FS, "status.yaml")

	err := deps.Validate()
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigMissing)
}

// TestDependencies_Validate_AllMissing tests validation failure when all dependencies are missing
func TestDependencies_Validate_AllMissing(t *testing.T) {
	deps := &Dependencies{} // All fields are nil

	err := deps.Validate()
	assert.Error(t, err)
	// Should return the first missing dependency (FS)
	assert.ErrorIs(t, err, ErrFSMissing)
}

// TestDependencies_New_Defaults tests that New() creates a Dependencies instance with proper defaults
func TestDependencies_New_Defaults(t *testing.T) {
	deps := New()

	// Check that defaults are set
	assert.NotNil(t, deps.FS)
	assert.NotNil(t, deps.Git)
	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.Prompt)
	assert.NotNil(t, deps.HookManager)
	assert.NotNil(t, deps.ForgeManager)
	assert.NotNil(t, deps.Projects)

	// Config and StatusManager are not defaulted
	assert.Nil(t, deps.Config)
	assert.Nil(t, deps.StatusManager)
}

// TestDependencies_Chaining tests the fluent With* API
func TestDependencies_Chaining(t *testing.T) {
	cfg := config.NewManager("")
	deps := New().
		WithConfig(cfg).
		WithStatusManager(status.NewManager(nil, "status.yaml"))

	assert.NoError(t, deps.Validate())
	assert.Equal(t, cfg, deps.Config)
}
