package usecase

import (
	"context"
	"errors"

	"github.com/runoshun/lintmux/internal/domain"
)

// ListToolsInput contains the parameters for listing tools.
type ListToolsInput struct {
	All      bool // Include disabled tools
	Disabled bool // Show only disabled tools
}

// ListToolsOutput contains the tool inventory.
type ListToolsOutput struct {
	Tools []domain.Tool // In execution order
}

// ListTools is the use case for listing the configured tools.
type ListTools struct {
	configLoader domain.ConfigLoader
}

// NewListTools creates a new ListTools use case.
func NewListTools(configLoader domain.ConfigLoader) *ListTools {
	return &ListTools{
		configLoader: configLoader,
	}
}

// Execute returns the configured tools matching the filter.
func (uc *ListTools) Execute(_ context.Context, in ListToolsInput) (*ListToolsOutput, error) {
	if in.All && in.Disabled {
		return nil, errors.New("all and disabled filters are mutually exclusive")
	}

	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, err
	}

	out := &ListToolsOutput{}
	for _, tool := range domain.SortedTools(cfg.Tools) {
		if in.Disabled && !tool.Disabled {
			continue
		}
		if !in.All && !in.Disabled && tool.Disabled {
			continue
		}
		out.Tools = append(out.Tools, tool)
	}

	return out, nil
}
