package domain

import (
	"fmt"
	"path/filepath"
)

// File and directory names.
const (
	DataDirName    = ".taskboard"  // Project data directory
	ConfigFileName = "config.toml" // Config file name
	AppName        = "taskboard"   // Used for the global config directory
	LogFileName    = "taskboard.log"
)

// DataDir returns the project data directory under root.
func DataDir(root string) string {
	return filepath.Join(root, DataDirName)
}

// StorePath returns the store file path. Absolute file names are kept as is.
func StorePath(dataDir, file string) string {
	if file == "" {
		file = DefaultStoreFile
	}
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dataDir, file)
}

// ConfigPath returns the project config file path.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, ConfigFileName)
}

// LogPath returns the log file path.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", LogFileName)
}

// GlobalConfigDir returns the global config directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppName)
}

// ItemLabel returns the log label for an item ID.
func ItemLabel(itemID int) string {
	if itemID <= 0 {
		return "global"
	}
	return fmt.Sprintf("item-%d", itemID)
}
