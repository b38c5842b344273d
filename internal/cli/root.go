// Package cli provides the command-line interface for lintmux.
package cli

import (
	"fmt"

	"github.com/runoshun/lintmux/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupLint  = "lint"
)

// NewRootCommand creates the root command for lintmux.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "lintmux",
		Short: "Drive a fixed sequence of lint tools and emit their combined output",
		Long: `lintmux runs a configured sequence of static-analysis tools
(by default cargo dylint and cargo clippy), captures each tool's
standard output, and writes the concatenated result to stdout.

The tools emit newline-delimited JSON records; lintmux does not
reinterpret them, so the combined stream can be piped directly into
downstream consumers. Tool stderr and exit statuses are recorded in
.git/lintmux/logs and never mixed into stdout.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. outside a git repository)
			if c == nil {
				return nil
			}

			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				// Ignore error (e.g. not initialized)
				return nil
			}

			for _, w := range cfg.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupLint, Title: "Lint Commands:"},
	)

	runCmd := newRunCommand(c)
	runCmd.GroupID = groupLint
	root.AddCommand(runCmd)

	toolsCmd := newToolsCommand(c)
	toolsCmd.GroupID = groupLint
	root.AddCommand(toolsCmd)

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup
	root.AddCommand(configCmd)

	return root
}
