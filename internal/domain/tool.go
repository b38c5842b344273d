// Package domain contains core business entities and interfaces.
package domain

import (
	"sort"
	"strings"
)

// Built-in tool names.
const (
	ToolDylint = "dylint"
	ToolClippy = "clippy"
)

// Tool describes one static-analysis tool that lintmux drives.
// Fields are ordered to minimize memory padding.
type Tool struct {
	Name        string   `toml:"-" yaml:"name"`
	Program     string   `toml:"program" yaml:"program"`
	Dir         string   `toml:"dir,omitempty" yaml:"dir,omitempty"`
	Description string   `toml:"description,omitempty" yaml:"description,omitempty"`
	Args        []string `toml:"args" yaml:"args"`
	Order       int      `toml:"order,omitempty" yaml:"order,omitempty"`
	Disabled    bool     `toml:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// Command builds the ExecCommand for this tool.
// If the tool has no explicit working directory, dir is used.
func (t Tool) Command(dir string) *ExecCommand {
	cmdDir := t.Dir
	if cmdDir == "" {
		cmdDir = dir
	}
	return &ExecCommand{
		Program: t.Program,
		Args:    t.Args,
		Dir:     cmdDir,
	}
}

// CommandLine returns the tool invocation as a single display string.
func (t Tool) CommandLine() string {
	return strings.Join(append([]string{t.Program}, t.Args...), " ")
}

// DefaultTools returns the built-in tool definitions.
// The argument lists are fixed: all analyses / all targets, default
// features disabled, JSON message output.
func DefaultTools() map[string]Tool {
	return map[string]Tool{
		ToolDylint: {
			Program:     "cargo",
			Args:        []string{"dylint", "--all", "--", "--no-default-features", "--all-targets", "--message-format=json"},
			Order:       1,
			Description: "Run all dylint libraries",
		},
		ToolClippy: {
			Program:     "cargo",
			Args:        []string{"clippy", "--all-targets", "--message-format=json", "--no-default-features"},
			Order:       2,
			Description: "Run clippy across all targets",
		},
	}
}

// SortedTools returns the tools from the map in execution order.
// Tools are ordered by Order, then by name for a deterministic result.
// The Name field of each returned tool is filled in from the map key.
func SortedTools(tools map[string]Tool) []Tool {
	result := make([]Tool, 0, len(tools))
	for name, tool := range tools {
		tool.Name = name
		result = append(result, tool)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].Name < result[j].Name
	})
	return result
}
