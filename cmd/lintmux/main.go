// Package main is the entry point for the lintmux CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/lintmux/internal/app"
	"github.com/runoshun/lintmux/internal/cli"
	"github.com/runoshun/lintmux/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	container, err := app.New(cwd)
	if err != nil {
		// Allow running without a git repo for help/version
		if errors.Is(err, domain.ErrNotGitRepository) {
			return runWithoutContainer(err)
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Logger.Close() }()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// runWithoutContainer handles cases where a git repo is not found.
// This allows help and version output to work outside a repository.
func runWithoutContainer(gitErr error) error {
	if canRunWithoutRepo(os.Args[1:]) {
		rootCmd := cli.NewRootCommand(nil, version)
		return rootCmd.Execute()
	}
	// For other commands, return the git error
	return gitErr
}

func canRunWithoutRepo(args []string) bool {
	if len(args) == 0 {
		return true
	}
	if args[0] == "help" {
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
