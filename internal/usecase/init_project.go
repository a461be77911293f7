// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/runoshun/taskboard/internal/domain"
)

// InitProjectInput contains the input parameters for InitProject.
type InitProjectInput struct {
	DataDir  string // Path to the .taskboard directory
	RootDir  string // Project root, where .gitignore is checked
	WithConf bool   // Also write the project config template if missing
}

// InitProjectOutput contains the output from InitProject.
type InitProjectOutput struct {
	DataDir            string // Path to the data directory
	AlreadyInitialized bool   // True if the store file already existed
	ConfigCreated      bool   // True if a config template was written
	GitignoreNeedsAdd  bool   // True if .taskboard/ is not in .gitignore
}

// InitProject prepares a project directory for taskboard.
type InitProject struct {
	storeInit     domain.StoreInitializer
	configManager domain.ConfigManager
}

// NewInitProject creates a new InitProject use case.
func NewInitProject(storeInit domain.StoreInitializer, configManager domain.ConfigManager) *InitProject {
	return &InitProject{
		storeInit:     storeInit,
		configManager: configManager,
	}
}

// Execute creates the data directory, the empty store file and optionally the
// config template. Running it again keeps existing files.
func (uc *InitProject) Execute(_ context.Context, in InitProjectInput) (*InitProjectOutput, error) {
	alreadyInitialized := uc.storeInit.IsInitialized()

	if err := os.MkdirAll(in.DataDir, 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	if _, err := uc.storeInit.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}

	configCreated := false
	if in.WithConf && uc.configManager != nil {
		err := uc.configManager.InitProjectConfig()
		switch {
		case err == nil:
			configCreated = true
		case errors.Is(err, domain.ErrConfigExists):
		default:
			return nil, fmt.Errorf("initialize config: %w", err)
		}
	}

	gitignoreNeedsAdd := false
	if !alreadyInitialized && in.RootDir != "" {
		gitignoreNeedsAdd = !isDataDirIgnored(in.RootDir)
	}

	return &InitProjectOutput{
		DataDir:            in.DataDir,
		AlreadyInitialized: alreadyInitialized,
		ConfigCreated:      configCreated,
		GitignoreNeedsAdd:  gitignoreNeedsAdd,
	}, nil
}

// isDataDirIgnored checks if .taskboard/ is listed in the root .gitignore.
func isDataDirIgnored(rootDir string) bool {
	content, err := os.ReadFile(filepath.Join(rootDir, ".gitignore"))
	if err != nil {
		return false
	}

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == domain.DataDirName || line == domain.DataDirName+"/" || line == "/"+domain.DataDirName+"/" {
			return true
		}
	}
	return false
}
