package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/domain"
)

func TestManager_GetProjectConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		dataDir := t.TempDir()
		configContent := "[log]\nlevel = \"debug\""
		err := os.WriteFile(filepath.Join(dataDir, domain.ConfigFileName), []byte(configContent), 0o644)
		require.NoError(t, err)

		manager := NewManagerWithGlobalDir(dataDir, "")
		info := manager.GetProjectConfigInfo()

		assert.Equal(t, filepath.Join(dataDir, domain.ConfigFileName), info.Path)
		assert.Equal(t, configContent, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		dataDir := t.TempDir()

		manager := NewManagerWithGlobalDir(dataDir, "")
		info := manager.GetProjectConfigInfo()

		assert.Equal(t, filepath.Join(dataDir, domain.ConfigFileName), info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})
}

func TestManager_GetGlobalConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		globalDir := t.TempDir()
		configContent := "[history]\nlimit = 5"
		err := os.WriteFile(filepath.Join(globalDir, domain.ConfigFileName), []byte(configContent), 0o644)
		require.NoError(t, err)

		manager := NewManagerWithGlobalDir("", globalDir)
		info := manager.GetGlobalConfigInfo()

		assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), info.Path)
		assert.Equal(t, configContent, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns empty info when global dir is empty", func(t *testing.T) {
		manager := NewManagerWithGlobalDir("", "")
		info := manager.GetGlobalConfigInfo()

		assert.Empty(t, info.Path)
		assert.False(t, info.Exists)
	})
}

func TestManager_InitProjectConfig(t *testing.T) {
	t.Run("creates config file and data directory", func(t *testing.T) {
		dataDir := filepath.Join(t.TempDir(), domain.DataDirName)

		manager := NewManagerWithGlobalDir(dataDir, "")
		err := manager.InitProjectConfig()
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(dataDir, domain.ConfigFileName))
		require.NoError(t, err)
		assert.Equal(t, domain.ConfigTemplate, string(content))
	})

	t.Run("returns error if file already exists", func(t *testing.T) {
		dataDir := t.TempDir()
		err := os.WriteFile(filepath.Join(dataDir, domain.ConfigFileName), []byte("existing"), 0o644)
		require.NoError(t, err)

		manager := NewManagerWithGlobalDir(dataDir, "")
		err = manager.InitProjectConfig()

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}

func TestManager_InitGlobalConfig(t *testing.T) {
	t.Run("creates config file and parent directory", func(t *testing.T) {
		globalDir := filepath.Join(t.TempDir(), domain.AppName)

		manager := NewManagerWithGlobalDir("", globalDir)
		err := manager.InitGlobalConfig()
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(globalDir, domain.ConfigFileName))
		require.NoError(t, err)
		assert.Contains(t, string(content), "taskboard configuration")
	})

	t.Run("returns error without global dir", func(t *testing.T) {
		manager := NewManagerWithGlobalDir("", "")

		assert.Error(t, manager.InitGlobalConfig())
	})
}
