// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/runoshun/lintmux/internal/domain"
	"github.com/runoshun/lintmux/internal/infra/config"
	"github.com/runoshun/lintmux/internal/infra/executor"
	"github.com/runoshun/lintmux/internal/infra/git"
	"github.com/runoshun/lintmux/internal/infra/logging"
	"github.com/runoshun/lintmux/internal/usecase"
)

// Config holds the application configuration paths.
type Config struct {
	RepoRoot string // Root directory of the git repository
	GitDir   string // Path to .git directory
	LintDir  string // Path to .git/lintmux directory
}

// newConfig creates a new Config from the git client.
func newConfig(gitClient *git.Client) Config {
	return Config{
		RepoRoot: gitClient.RepoRoot(),
		GitDir:   gitClient.GitDir(),
		LintDir:  domain.RepoLintDir(gitClient.GitDir()),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Executor      domain.CommandExecutor
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Clock         domain.Clock
	Logger        domain.Logger

	// Configuration
	Config Config
}

// New creates a new Container by detecting the git repository from the given directory.
func New(dir string) (*Container, error) {
	gitClient, err := git.NewClient(dir)
	if err != nil {
		return nil, err
	}

	cfg := newConfig(gitClient)

	configLoader := config.NewLoader(cfg.LintDir)
	appConfig, _ := configLoader.Load() // ignore error, use defaults
	logLevel := "info"
	if appConfig != nil {
		logLevel = appConfig.Log.Level
	}

	return &Container{
		Executor:      executor.NewClient(),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(cfg.LintDir),
		Clock:         domain.RealClock{},
		Logger:        logging.New(cfg.LintDir, logging.ParseLevel(logLevel)),
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	cfg Config,
	exec domain.CommandExecutor,
	loader domain.ConfigLoader,
	manager domain.ConfigManager,
	clock domain.Clock,
	logger domain.Logger,
) *Container {
	return &Container{
		Executor:      exec,
		ConfigLoader:  loader,
		ConfigManager: manager,
		Clock:         clock,
		Logger:        logger,
		Config:        cfg,
	}
}

// UseCase factory methods

// RunLintUseCase returns a new RunLint use case.
func (c *Container) RunLintUseCase() *usecase.RunLint {
	return usecase.NewRunLint(c.Executor, c.ConfigLoader, c.Clock, c.Logger, c.Config.RepoRoot)
}

// ListToolsUseCase returns a new ListTools use case.
func (c *Container) ListToolsUseCase() *usecase.ListTools {
	return usecase.NewListTools(c.ConfigLoader)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
