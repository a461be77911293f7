package domain

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Store    StoreConfig   `toml:"store"`
	Log      LogConfig     `toml:"log"`
	Warnings []string      `toml:"-"` // Unknown keys found while loading
	History  HistoryConfig `toml:"history"`
	UI       UIConfig      `toml:"ui"`
}

// StoreConfig holds settings from the [store] section.
type StoreConfig struct {
	File string `toml:"file"` // Store file name, relative to the data directory
}

// HistoryConfig holds settings from the [history] section.
type HistoryConfig struct {
	Limit int `toml:"limit"` // Maximum number of remembered views (0 = unbounded)
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// UIConfig holds settings from the [ui] section.
type UIConfig struct {
	Color *bool `toml:"color"` // nil = default (enabled)
}

// ColorEnabled reports whether coloured output is enabled.
func (c UIConfig) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// Default configuration values.
const (
	DefaultStoreFile    = "tasks.csv"
	DefaultLogLevel     = "info"
	DefaultHistoryLimit = 0
)

// NewDefaultConfig returns a config populated with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Store:   StoreConfig{File: DefaultStoreFile},
		Log:     LogConfig{Level: DefaultLogLevel},
		History: HistoryConfig{Limit: DefaultHistoryLimit},
	}
}

// ConfigTemplate is written by 'taskboard config --init'.
const ConfigTemplate = `# taskboard configuration

[store]
# Store file name, relative to the .taskboard directory.
file = "tasks.csv"

[history]
# Maximum number of remembered views. 0 keeps one entry per item.
limit = 0

[log]
# debug, info, warn or error
level = "info"

[ui]
color = true
`
