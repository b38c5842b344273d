package domain

import "errors"

// Domain errors.
var (
	ErrNotGitRepository = errors.New("not a git repository (or any of the parent directories)")
	ErrConfigExists     = errors.New("config file already exists")
	ErrToolNotFound     = errors.New("tool not found")
	ErrNoTools          = errors.New("no tools to run")
	ErrEmptySuite       = errors.New("suite file contains no tools")
	ErrDuplicateTool    = errors.New("duplicate tool name in suite")
	ErrEmptyToolName    = errors.New("tool name cannot be empty")
	ErrEmptyProgram     = errors.New("tool program cannot be empty")
)
