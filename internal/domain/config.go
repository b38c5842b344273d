package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Tools    map[string]Tool `toml:"tools"` // Tool definitions from [tools.<name>]
	Warnings []string        `toml:"-"`
	Log      LogConfig       `toml:"log"`
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error (default: info)
}

// NewDefaultConfig returns the configuration with built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Tools: DefaultTools(),
		Log:   LogConfig{Level: "info"},
	}
}

// EnabledTools returns all enabled tools in execution order.
func (c *Config) EnabledTools() []Tool {
	var result []Tool
	for _, tool := range SortedTools(c.Tools) {
		if tool.Disabled {
			continue
		}
		result = append(result, tool)
	}
	return result
}

// Tool returns the named tool definition.
func (c *Config) Tool(name string) (Tool, error) {
	tool, ok := c.Tools[name]
	if !ok {
		return Tool{}, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	tool.Name = name
	return tool, nil
}

// Validate checks the configuration and records warnings for
// definitions that cannot be executed.
func (c *Config) Validate() {
	for _, tool := range SortedTools(c.Tools) {
		if tool.Program == "" {
			c.Warnings = append(c.Warnings, fmt.Sprintf("tool %q has no program and will fail to launch", tool.Name))
		}
	}
}

// File and directory naming.
const (
	ConfigFileName = "config.toml" // Config file name
	LintDirName    = "lintmux"     // Directory name under .git and XDG config home
)

// RepoLintDir returns the path to the .git/lintmux directory.
func RepoLintDir(gitDir string) string {
	return filepath.Join(gitDir, LintDirName)
}

// RepoConfigPath returns the path to the repository config file.
func RepoConfigPath(gitDir string) string {
	return filepath.Join(RepoLintDir(gitDir), ConfigFileName)
}

// GlobalLintDir returns the global config directory under configHome.
func GlobalLintDir(configHome string) string {
	return filepath.Join(configHome, LintDirName)
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalLintDir(configHome), ConfigFileName)
}

// toolTemplateData holds one tool entry for template rendering.
type toolTemplateData struct {
	Name        string
	Program     string
	ArgsList    string
	Description string
	Order       int
}

// templateData holds data for rendering the config template.
type templateData struct {
	LogLevel string
	Tools    []toolTemplateData
}

// RenderConfigTemplate renders the embedded config template for the
// given configuration. Tools are emitted in execution order.
func RenderConfigTemplate(cfg *Config) string {
	tools := make([]toolTemplateData, 0, len(cfg.Tools))
	for _, tool := range SortedTools(cfg.Tools) {
		quoted := make([]string, 0, len(tool.Args))
		for _, arg := range tool.Args {
			quoted = append(quoted, strconv.Quote(arg))
		}
		tools = append(tools, toolTemplateData{
			Name:        tool.Name,
			Program:     tool.Program,
			ArgsList:    strings.Join(quoted, ", "),
			Description: tool.Description,
			Order:       tool.Order,
		})
	}

	data := templateData{
		LogLevel: cfg.Log.Level,
		Tools:    tools,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Should never happen with valid data
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
