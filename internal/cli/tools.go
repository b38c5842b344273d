package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/runoshun/lintmux/internal/app"
	"github.com/runoshun/lintmux/internal/usecase"
	"github.com/spf13/cobra"
)

// newToolsCommand creates the tools command.
func newToolsCommand(c *app.Container) *cobra.Command {
	var opts struct {
		All      bool
		Disabled bool
	}

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List configured tools",
		Long: `List the configured lint tools in execution order.

By default, only enabled tools are shown. Use --all to include
disabled tools, or --disabled to show only disabled tools.

Note: --all and --disabled are mutually exclusive.

Examples:
  # List enabled tools
  lintmux tools

  # List all tools including disabled ones
  lintmux tools --all`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.All && opts.Disabled {
				return fmt.Errorf("--all and --disabled are mutually exclusive")
			}

			uc := c.ListToolsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListToolsInput{
				All:      opts.All,
				Disabled: opts.Disabled,
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tCOMMAND\tSTATUS")
			for _, tool := range out.Tools {
				status := "enabled"
				if tool.Disabled {
					status = "disabled"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", tool.Name, tool.CommandLine(), status)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "Include disabled tools")
	cmd.Flags().BoolVar(&opts.Disabled, "disabled", false, "Show only disabled tools")

	return cmd
}
