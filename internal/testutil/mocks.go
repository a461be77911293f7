// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/runoshun/taskboard/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// LogEntry is a single record captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
	ItemID   int
}

func (e LogEntry) String() string {
	return fmt.Sprintf("[%s] [%s] [%s] %s", e.Level, domain.ItemLabel(e.ItemID), e.Category, e.Msg)
}

// MockLogger is a test double for domain.Logger that records every entry.
type MockLogger struct {
	Entries []LogEntry
}

// NewMockLogger creates an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

// Debug records a DEBUG entry.
func (m *MockLogger) Debug(itemID int, category, msg string) {
	m.record("DEBUG", itemID, category, msg)
}

// Info records an INFO entry.
func (m *MockLogger) Info(itemID int, category, msg string) {
	m.record("INFO", itemID, category, msg)
}

// Warn records a WARN entry.
func (m *MockLogger) Warn(itemID int, category, msg string) {
	m.record("WARN", itemID, category, msg)
}

// Error records an ERROR entry.
func (m *MockLogger) Error(itemID int, category, msg string) {
	m.record("ERROR", itemID, category, msg)
}

func (m *MockLogger) record(level string, itemID int, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, ItemID: itemID, Category: category, Msg: msg})
}

// ByLevel returns the entries with the given level.
func (m *MockLogger) ByLevel(level string) []LogEntry {
	var out []LogEntry
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Contains reports whether any entry message contains substr.
func (m *MockLogger) Contains(substr string) bool {
	for _, e := range m.Entries {
		if strings.Contains(e.Msg, substr) {
			return true
		}
	}
	return false
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config       *domain.Config
	GlobalConfig *domain.Config
	LoadErr      error
	GlobalErr    error
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// LoadGlobal returns the configured config or error.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.GlobalErr != nil {
		return nil, m.GlobalErr
	}
	if m.GlobalConfig != nil {
		return m.GlobalConfig, nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitProjectErr    error
	InitGlobalErr     error
	ProjectConfigInfo domain.ConfigInfo
	GlobalConfigInfo  domain.ConfigInfo
	InitProjectCalled bool
	InitGlobalCalled  bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetProjectConfigInfo returns the configured project config info.
func (m *MockConfigManager) GetProjectConfigInfo() domain.ConfigInfo {
	return m.ProjectConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitProjectConfig records the call and returns the configured error.
func (m *MockConfigManager) InitProjectConfig() error {
	m.InitProjectCalled = true
	return m.InitProjectErr
}

// InitGlobalConfig records the call and returns the configured error.
func (m *MockConfigManager) InitGlobalConfig() error {
	m.InitGlobalCalled = true
	return m.InitGlobalErr
}

// MockStoreInitializer is a test double for domain.StoreInitializer.
type MockStoreInitializer struct {
	InitErr     error
	Initialized bool
	Called      bool
}

// Ensure MockStoreInitializer implements domain.StoreInitializer interface.
var _ domain.StoreInitializer = (*MockStoreInitializer)(nil)

// IsInitialized returns the configured state.
func (m *MockStoreInitializer) IsInitialized() bool {
	return m.Initialized
}

// Initialize records the call and marks the store initialized.
func (m *MockStoreInitializer) Initialize() (bool, error) {
	m.Called = true
	if m.InitErr != nil {
		return false, m.InitErr
	}
	created := !m.Initialized
	m.Initialized = true
	return created, nil
}
