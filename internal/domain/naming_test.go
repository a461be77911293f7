package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaths(t *testing.T) {
	root := filepath.Join("home", "me", "project")
	dataDir := DataDir(root)

	assert.Equal(t, filepath.Join(root, ".taskboard"), dataDir)
	assert.Equal(t, filepath.Join(dataDir, "tasks.csv"), StorePath(dataDir, ""))
	assert.Equal(t, filepath.Join(dataDir, "other.csv"), StorePath(dataDir, "other.csv"))
	assert.Equal(t, filepath.Join(dataDir, "config.toml"), ConfigPath(dataDir))
	assert.Equal(t, filepath.Join(dataDir, "logs", "taskboard.log"), LogPath(dataDir))
	assert.Equal(t, filepath.Join("cfg", "taskboard"), GlobalConfigDir("cfg"))

	abs, _ := filepath.Abs("elsewhere.csv")
	assert.Equal(t, abs, StorePath(dataDir, abs))
}

func TestItemLabel(t *testing.T) {
	assert.Equal(t, "global", ItemLabel(0))
	assert.Equal(t, "item-12", ItemLabel(12))
}
