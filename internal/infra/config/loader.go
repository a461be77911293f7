// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/taskboard/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	dataDir       string // Path to the .taskboard directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/taskboard)
}

// NewLoader creates a new Loader.
func NewLoader(dataDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(dataDir, globalConfDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (project + global).
// Project config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.loadGlobalFile()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	project, err := l.loadFile(domain.ConfigPath(l.dataDir))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	// Merge: default <- global <- project (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		global.applyTo(base)
	}
	if project != nil {
		project.applyTo(base)
	}
	return base, nil
}

// LoadGlobal returns only the global configuration on top of the defaults.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	global, err := l.loadGlobalFile()
	if err != nil {
		return nil, err
	}
	base := domain.NewDefaultConfig()
	global.applyTo(base)
	return base, nil
}

func (l *Loader) loadGlobalFile() (*fileConfig, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// fileConfig holds the values set in one file. nil means not set.
type fileConfig struct {
	storeFile    *string
	historyLimit *int
	logLevel     *string
	color        *bool
	warnings     []string
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRaw(raw), nil
}

// convertRaw converts the raw map to a fileConfig and collects warnings.
func convertRaw(raw map[string]any) *fileConfig {
	res := &fileConfig{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "store":
			for k, v := range m {
				switch k {
				case "file":
					if s, ok := v.(string); ok {
						res.storeFile = &s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [store]: %s", k))
				}
			}
		case "history":
			for k, v := range m {
				switch k {
				case "limit":
					n, ok := v.(int64)
					if !ok || n < 0 {
						warnings = append(warnings, fmt.Sprintf("invalid value in [history]: limit = %v", v))
						continue
					}
					limit := int(n)
					res.historyLimit = &limit
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [history]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.logLevel = &s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "ui":
			for k, v := range m {
				switch k {
				case "color":
					if b, ok := v.(bool); ok {
						res.color = &b
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [ui]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.warnings = warnings
	return res
}

// applyTo overrides cfg with the values set in f.
func (f *fileConfig) applyTo(cfg *domain.Config) {
	if f.storeFile != nil && *f.storeFile != "" {
		cfg.Store.File = *f.storeFile
	}
	if f.historyLimit != nil {
		cfg.History.Limit = *f.historyLimit
	}
	if f.logLevel != nil && *f.logLevel != "" {
		cfg.Log.Level = *f.logLevel
	}
	if f.color != nil {
		color := *f.color
		cfg.UI.Color = &color
	}
	cfg.Warnings = append(cfg.Warnings, f.warnings...)
}
