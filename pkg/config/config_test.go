//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	manager := NewManager("unused")
	cfg := manager.DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_MissingIdeasDir(t *testing.T) {
	cfg := Config{StatusFile: "status.yaml", ChangelogFile: "CHANGELOG.md"}
	assert.ErrorIs(t, cfg.Validate(), ErrIdeasDirEmpty)
}

func TestConfig_Validate_InvalidLane(t *testing.T) {
	manager := NewManager("unused")
	cfg := manager.DefaultConfig()
	cfg.Lanes["AB"] = "too long"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidLane)
}

func TestConfig_Validate_ProjectNumberRequired(t *testing.T) {
	manager := NewManager("unused")
	cfg := manager.DefaultConfig()
	cfg.ProjectOwner = "acme-ui"
	cfg.ProjectNumber = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidProject)
}

func TestManager_GetConfig_NotInitialized(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "config.yaml"))
	_, err := manager.GetConfig()
	assert.ErrorIs(t, err, ErrConfigNotInitialized)
}

func TestManager_GetConfig_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\tnot yaml"), 0644))

	manager := NewManager(path)
	_, err := manager.GetConfig()
	assert.ErrorIs(t, err, ErrConfigFileParse)
}

func TestManager_SaveAndGetConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	manager := NewManager(path)

	cfg := manager.DefaultConfig()
	cfg.ProjectOwner = "acme-ui"
	cfg.ProjectNumber = 4
	require.NoError(t, manager.SaveConfig(cfg))

	loaded, err := manager.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "acme-ui", loaded.ProjectOwner)
	assert.Equal(t, 4, loaded.ProjectNumber)
	assert.Equal(t, cfg.IdeasDir, loaded.IdeasDir)
}

func TestManager_GetConfigWithFallback(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "config.yaml"))
	cfg, err := manager.GetConfigWithFallback()
	assert.NoError(t, err)
	assert.Equal(t, "ideas", cfg.IdeasDir)
}
