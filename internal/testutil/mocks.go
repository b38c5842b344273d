// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"strings"
	"time"

	"github.com/runoshun/lintmux/internal/domain"
)

// MockClock is a test double for domain.Clock.
// Each call to Now advances the time by Step, so durations are
// deterministic in tests.
type MockClock struct {
	NowTime time.Time
	Step    time.Duration
}

// Now returns the configured time and advances it by Step.
func (m *MockClock) Now() time.Time {
	t := m.NowTime
	m.NowTime = m.NowTime.Add(m.Step)
	return t
}

// CommandKey returns the lookup key MockExecutor uses for a command.
func CommandKey(cmd *domain.ExecCommand) string {
	return strings.Join(append([]string{cmd.Program}, cmd.Args...), " ")
}

// MockExecutor is a test double for domain.CommandExecutor.
// Outputs and Errs are keyed by CommandKey; commands with no configured
// output succeed with empty output.
type MockExecutor struct {
	Outputs map[string]*domain.CapturedOutput
	Errs    map[string]error
	Calls   []domain.ExecCommand
}

// NewMockExecutor creates a new MockExecutor with initialized maps.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Outputs: make(map[string]*domain.CapturedOutput),
		Errs:    make(map[string]error),
	}
}

// Execute records the call and returns the configured result.
func (m *MockExecutor) Execute(cmd *domain.ExecCommand) (*domain.CapturedOutput, error) {
	m.Calls = append(m.Calls, *cmd)
	key := CommandKey(cmd)
	if err, ok := m.Errs[key]; ok {
		return nil, err
	}
	if out, ok := m.Outputs[key]; ok {
		return out, nil
	}
	return &domain.CapturedOutput{}, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// NewMockConfigLoader creates a MockConfigLoader returning the default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Config, nil
}

// LoadGlobal returns the configured config.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	return m.Load()
}

// LoadRepo returns the configured config.
func (m *MockConfigLoader) LoadRepo() (*domain.Config, error) {
	return m.Load()
}

// LoadWithOptions returns the configured config (options are ignored).
func (m *MockConfigLoader) LoadWithOptions(_ domain.LoadConfigOptions) (*domain.Config, error) {
	return m.Load()
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	RepoConfigInfo    domain.ConfigInfo
	GlobalConfigInfo  domain.ConfigInfo
	InitRepoErr       error
	InitGlobalErr     error
	InitializedRepo   bool
	InitializedGlobal bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{}
}

// GetRepoConfigInfo returns the configured repo config info.
func (m *MockConfigManager) GetRepoConfigInfo() domain.ConfigInfo {
	return m.RepoConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitRepoConfig records the initialization.
func (m *MockConfigManager) InitRepoConfig(_ *domain.Config) error {
	if m.InitRepoErr != nil {
		return m.InitRepoErr
	}
	m.InitializedRepo = true
	return nil
}

// InitGlobalConfig records the initialization.
func (m *MockConfigManager) InitGlobalConfig(_ *domain.Config) error {
	if m.InitGlobalErr != nil {
		return m.InitGlobalErr
	}
	m.InitializedGlobal = true
	return nil
}

// LogEntry is one recorded log call.
type LogEntry struct {
	Level    string
	Tool     string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger.
type MockLogger struct {
	Entries []LogEntry
}

// NewMockLogger creates a new MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) record(level, tool, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, Tool: tool, Category: category, Msg: msg})
}

// Debug records a debug message.
func (m *MockLogger) Debug(tool, category, msg string) { m.record("debug", tool, category, msg) }

// Info records an info message.
func (m *MockLogger) Info(tool, category, msg string) { m.record("info", tool, category, msg) }

// Warn records a warning message.
func (m *MockLogger) Warn(tool, category, msg string) { m.record("warn", tool, category, msg) }

// Error records an error message.
func (m *MockLogger) Error(tool, category, msg string) { m.record("error", tool, category, msg) }

// Close is a no-op.
func (m *MockLogger) Close() error { return nil }
