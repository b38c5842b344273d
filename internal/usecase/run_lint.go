// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/runoshun/lintmux/internal/domain"
)

// RunLintInput contains the parameters for running the lint tools.
// Fields are ordered to minimize memory padding.
type RunLintInput struct {
	Dir   string        // Working directory for the tools (default: repository root)
	Names []string      // Tool names to run (empty = all enabled, in configured order)
	Suite []domain.Tool // Suite tools; when set, replaces the configured tool set
}

// ToolResult contains the outcome of one tool invocation.
// Fields are ordered to minimize memory padding.
type ToolResult struct {
	Tool     domain.Tool
	Output   domain.CapturedOutput
	Duration time.Duration
}

// RunLintOutput contains the result of a lint run.
type RunLintOutput struct {
	Results  []ToolResult // Per-tool results, in execution order
	Combined []byte       // Concatenated stdout of all tools, no separator
}

// RunLint is the use case for driving the lint tools.
//
// Tools run strictly sequentially, each to completion before the next
// starts. The concatenation order is the execution order. A tool's
// non-zero exit status is not an error: its stdout still contributes to
// the combined output, since the JSON diagnostic stream is the carrier
// of failure information. A launch failure aborts the run before any
// combined output exists, so callers never emit partial output.
type RunLint struct {
	executor     domain.CommandExecutor
	configLoader domain.ConfigLoader
	clock        domain.Clock
	logger       domain.Logger
	repoRoot     string
}

// NewRunLint creates a new RunLint use case.
func NewRunLint(
	executor domain.CommandExecutor,
	configLoader domain.ConfigLoader,
	clock domain.Clock,
	logger domain.Logger,
	repoRoot string,
) *RunLint {
	return &RunLint{
		executor:     executor,
		configLoader: configLoader,
		clock:        clock,
		logger:       logger,
		repoRoot:     repoRoot,
	}
}

// Execute runs the selected tools and returns their combined output.
func (uc *RunLint) Execute(_ context.Context, in RunLintInput) (*RunLintOutput, error) {
	tools, err := uc.resolveTools(in)
	if err != nil {
		return nil, err
	}

	dir := in.Dir
	if dir == "" {
		dir = uc.repoRoot
	}

	out := &RunLintOutput{
		Results: make([]ToolResult, 0, len(tools)),
	}
	for _, tool := range tools {
		uc.logger.Debug(tool.Name, "run", "executing "+tool.CommandLine())

		start := uc.clock.Now()
		captured, err := uc.executor.Execute(tool.Command(dir))
		if err != nil {
			uc.logger.Error(tool.Name, "run", err.Error())
			return nil, fmt.Errorf("run %s: %w", tool.Name, err)
		}
		duration := uc.clock.Now().Sub(start)

		uc.logResult(tool, captured, duration)

		out.Results = append(out.Results, ToolResult{
			Tool:     tool,
			Output:   *captured,
			Duration: duration,
		})
		out.Combined = append(out.Combined, captured.Stdout...)
	}

	return out, nil
}

// resolveTools determines the ordered tool list for this run.
func (uc *RunLint) resolveTools(in RunLintInput) ([]domain.Tool, error) {
	if len(in.Suite) > 0 {
		return in.Suite, nil
	}

	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	enabled := cfg.EnabledTools()
	if len(in.Names) == 0 {
		if len(enabled) == 0 {
			return nil, domain.ErrNoTools
		}
		return enabled, nil
	}

	// Resolve all requested names first so an unknown name fails the run
	// instead of silently shrinking the selection.
	for _, name := range in.Names {
		if _, err := cfg.Tool(name); err != nil {
			return nil, err
		}
	}

	// Selection filters the configured order; the order of the given
	// names does not affect the execution order.
	var tools []domain.Tool
	for _, tool := range domain.SortedTools(cfg.Tools) {
		if slices.Contains(in.Names, tool.Name) {
			tools = append(tools, tool)
		}
	}
	if len(tools) == 0 {
		return nil, domain.ErrNoTools
	}
	return tools, nil
}

// logResult records the parts of the tool outcome that never reach stdout.
func (uc *RunLint) logResult(tool domain.Tool, captured *domain.CapturedOutput, duration time.Duration) {
	msg := fmt.Sprintf("exit status %d, %d bytes stdout, %d bytes stderr in %s",
		captured.ExitCode, len(captured.Stdout), len(captured.Stderr), duration.Round(time.Millisecond))
	if captured.ExitCode != 0 {
		uc.logger.Warn(tool.Name, "run", msg)
	} else {
		uc.logger.Info(tool.Name, "run", msg)
	}
	if len(captured.Stderr) > 0 {
		uc.logger.Debug(tool.Name, "stderr", string(captured.Stderr))
	}
}
