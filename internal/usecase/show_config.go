package usecase

import (
	"context"

	"github.com/runoshun/lintmux/internal/domain"
)

// ShowConfigInput contains the parameters for showing the configuration.
type ShowConfigInput struct {
	IgnoreGlobal bool // Exclude the global config source
	IgnoreRepo   bool // Exclude the repository config source
}

// ShowConfigOutput contains config file info and the effective config.
type ShowConfigOutput struct {
	RepoConfig      domain.ConfigInfo
	GlobalConfig    domain.ConfigInfo
	EffectiveConfig *domain.Config
}

// ShowConfig is the use case for displaying the effective configuration.
type ShowConfig struct {
	configManager domain.ConfigManager
	configLoader  domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configManager domain.ConfigManager, configLoader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
		configLoader:  configLoader,
	}
}

// Execute returns the config sources and the merged effective config.
func (uc *ShowConfig) Execute(_ context.Context, in ShowConfigInput) (*ShowConfigOutput, error) {
	effective, err := uc.configLoader.LoadWithOptions(domain.LoadConfigOptions{
		IgnoreGlobal: in.IgnoreGlobal,
		IgnoreRepo:   in.IgnoreRepo,
	})
	if err != nil {
		return nil, err
	}

	out := &ShowConfigOutput{
		EffectiveConfig: effective,
	}
	if !in.IgnoreRepo {
		out.RepoConfig = uc.configManager.GetRepoConfigInfo()
	}
	if !in.IgnoreGlobal {
		out.GlobalConfig = uc.configManager.GetGlobalConfigInfo()
	}

	return out, nil
}
