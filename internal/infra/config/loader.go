// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/lintmux/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	lintDir       string // Path to .git/lintmux directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/lintmux)
}

// NewLoader creates a new Loader.
func NewLoader(lintDir string) *Loader {
	return &Loader{
		lintDir:       lintDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(lintDir, globalConfDir string) *Loader {
	return &Loader{
		lintDir:       lintDir,
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
	return domain.GlobalLintDir(configHome)
}

// Load returns the merged configuration (default <- global <- repo).
// Repository config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	return l.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	globalPath := filepath.Join(l.globalConfDir, domain.ConfigFileName)
	return l.loadFile(globalPath)
}

// LoadRepo returns only the repository configuration.
func (l *Loader) LoadRepo() (*domain.Config, error) {
	repoPath := filepath.Join(l.lintDir, domain.ConfigFileName)
	return l.loadFile(repoPath)
}

// LoadWithOptions returns the merged configuration with options to ignore sources.
func (l *Loader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	var global, repo *domain.Config
	var err error

	if !opts.IgnoreGlobal {
		global, err = l.LoadGlobal()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if !opts.IgnoreRepo {
		repo, err = l.LoadRepo()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	// Merge: default <- global <- repo (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if repo != nil {
		base = mergeConfigs(base, repo)
	}

	base.Validate()
	return base, nil
}

// loadFile loads a single TOML config file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs merges the overlay config into base.
// Tool definitions with the same name are replaced wholesale; merging
// individual fields of a tool would make the effective argument list
// depend on two files at once.
func mergeConfigs(base, overlay *domain.Config) *domain.Config {
	result := &domain.Config{
		Tools: make(map[string]domain.Tool, len(base.Tools)+len(overlay.Tools)),
		Log:   base.Log,
	}
	for name, tool := range base.Tools {
		result.Tools[name] = tool
	}
	for name, tool := range overlay.Tools {
		result.Tools[name] = tool
	}
	if overlay.Log.Level != "" {
		result.Log.Level = overlay.Log.Level
	}
	return result
}
