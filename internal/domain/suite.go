package domain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// suiteFile is the YAML structure of a suite file.
//
// Format:
//
//	tools:
//	  - name: dylint
//	    program: cargo
//	    args: ["dylint", "--all", "--", "--message-format=json"]
//	  - name: clippy
//	    program: cargo
//	    args: ["clippy", "--all-targets", "--message-format=json"]
type suiteFile struct {
	Tools []Tool `yaml:"tools"`
}

// ParseSuite parses a YAML suite file into an ordered tool list.
// Document order is the execution order. Disabled entries are dropped.
func ParseSuite(content []byte) ([]Tool, error) {
	var suite suiteFile
	if err := yaml.Unmarshal(content, &suite); err != nil {
		return nil, fmt.Errorf("parse suite: %w", err)
	}
	if len(suite.Tools) == 0 {
		return nil, ErrEmptySuite
	}

	seen := make(map[string]bool, len(suite.Tools))
	tools := make([]Tool, 0, len(suite.Tools))
	for i, tool := range suite.Tools {
		if tool.Name == "" {
			return nil, fmt.Errorf("tool %d: %w", i+1, ErrEmptyToolName)
		}
		if tool.Program == "" {
			return nil, fmt.Errorf("tool %q: %w", tool.Name, ErrEmptyProgram)
		}
		if seen[tool.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTool, tool.Name)
		}
		seen[tool.Name] = true
		if tool.Disabled {
			continue
		}
		tool.Order = i + 1
		tools = append(tools, tool)
	}

	return tools, nil
}
