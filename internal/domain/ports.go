package domain

import "time"

// CommandExecutor runs external commands to completion.
type CommandExecutor interface {
	// Execute runs the command synchronously and returns its captured
	// output. A non-zero exit status is not an error: the output is
	// returned with ExitCode set. An error is returned only when the
	// command could not be launched.
	Execute(cmd *ExecCommand) (*CapturedOutput, error)
}

// ConfigLoader loads the application configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- repo).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)

	// LoadRepo returns only the repository configuration.
	LoadRepo() (*Config, error)

	// LoadWithOptions returns the merged configuration with options to
	// ignore sources.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)
}

// LoadConfigOptions specifies which config sources to ignore.
type LoadConfigOptions struct {
	IgnoreGlobal bool
	IgnoreRepo   bool
}

// ConfigInfo contains information about a config file.
// Fields are ordered to minimize memory padding.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetRepoConfigInfo returns information about the repository config file.
	GetRepoConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitRepoConfig creates a repository config file from the template.
	InitRepoConfig(cfg *Config) error

	// InitGlobalConfig creates a global config file from the template.
	InitGlobalConfig(cfg *Config) error
}

// Logger records diagnostic messages to the lintmux log files.
// The tool argument selects the per-tool log file; an empty tool name
// logs only to the global log.
type Logger interface {
	Debug(tool, category, msg string)
	Info(tool, category, msg string)
	Warn(tool, category, msg string)
	Error(tool, category, msg string)
	Close() error
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}
