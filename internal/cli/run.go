package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/runoshun/lintmux/internal/app"
	"github.com/runoshun/lintmux/internal/domain"
	"github.com/runoshun/lintmux/internal/usecase"
	"github.com/spf13/cobra"
)

// newRunCommand creates the run command.
func newRunCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Suite string
		Dir   string
		Quiet bool
	}

	cmd := &cobra.Command{
		Use:   "run [tool...]",
		Short: "Run the lint tools and print their combined output",
		Long: `Run the configured lint tools sequentially and print the
concatenation of their standard outputs, followed by one newline.

With no arguments, all enabled tools run in configured order. Naming
tools restricts the run to those tools; the configured order still
applies regardless of the argument order. A tool's non-zero exit
status does not fail the run: its diagnostic stream is still emitted.
If a tool cannot be launched at all, the run aborts and nothing is
written to stdout.

Examples:
  # Run all enabled tools
  lintmux run

  # Run only clippy
  lintmux run clippy

  # Run an ad-hoc suite defined in a YAML file
  lintmux run --suite nightly.yaml

  # Pipe the combined JSON stream into a consumer
  lintmux run --quiet | jq -c 'select(.reason == "compiler-message")'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := usecase.RunLintInput{
				Names: args,
				Dir:   opts.Dir,
			}

			if opts.Suite != "" {
				if len(args) > 0 {
					return fmt.Errorf("tool arguments cannot be combined with --suite")
				}
				content, err := os.ReadFile(opts.Suite)
				if err != nil {
					return fmt.Errorf("read suite file: %w", err)
				}
				suite, err := domain.ParseSuite(content)
				if err != nil {
					return err
				}
				in.Suite = suite
			}

			uc := c.RunLintUseCase()
			out, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			if !opts.Quiet {
				for _, result := range out.Results {
					printToolStatus(cmd, result)
				}
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", out.Combined)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Suite, "suite", "", "Run tools from a YAML suite file instead of the configuration")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "Working directory for the tools (default: repository root)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress per-tool status lines on stderr")

	return cmd
}

// printToolStatus writes a one-line status for a tool result to stderr.
func printToolStatus(cmd *cobra.Command, result usecase.ToolResult) {
	name := styleToolName.Render(result.Tool.Name)
	duration := result.Duration.Round(time.Millisecond)

	var status string
	if result.Output.ExitCode == 0 {
		status = styleOK.Render("ok")
	} else {
		status = styleFindings.Render(fmt.Sprintf("exit %d", result.Output.ExitCode))
	}

	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s %s (%s, %d bytes)\n",
		name, status, duration, len(result.Output.Stdout))
}
