package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/runoshun/lintmux/internal/domain"
	"github.com/runoshun/lintmux/internal/testutil"
	"github.com/runoshun/lintmux/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoToolConfig returns a config with tools "alpha" and "beta" in that order.
func twoToolConfig() *domain.Config {
	return &domain.Config{
		Tools: map[string]domain.Tool{
			"alpha": {Program: "tool-a", Args: []string{"--json"}, Order: 1},
			"beta":  {Program: "tool-b", Args: []string{"--json"}, Order: 2},
		},
		Log: domain.LogConfig{Level: "info"},
	}
}

func newRunLint(exec *testutil.MockExecutor, cfg *domain.Config) *usecase.RunLint {
	loader := testutil.NewMockConfigLoader()
	loader.Config = cfg
	clock := &testutil.MockClock{NowTime: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), Step: time.Second}
	return usecase.NewRunLint(exec, loader, clock, testutil.NewMockLogger(), "/repo")
}

func TestRunLint_Execute(t *testing.T) {
	t.Run("concatenates outputs in configured order with no separator", func(t *testing.T) {
		exec := testutil.NewMockExecutor()
		exec.Outputs["tool-a --json"] = &domain.CapturedOutput{Stdout: []byte("foo")}
		exec.Outputs["tool-b --json"] = &domain.CapturedOutput{Stdout: []byte("bar")}

		uc := newRunLint(exec, twoToolConfig())
		out, err := uc.Execute(context.Background(), usecase.RunLintInput{})

		require.NoError(t, err)
		assert.Equal(t, "foobar", string(out.Combined))
		require.Len(t, exec.Calls, 2)
		assert.Equal(t, "tool-a", exec.Calls[0].Program)
		assert.Equal(t, "tool-b", exec.Calls[1].Program)
	})

	t.Run("runs tools from the repository root by default", func(t *testing.T) {
		exec := testutil.NewMockExecutor()

		uc := newRunLint(exec, twoToolConfig())
		_, err := uc.Execute(context.Background(), usecase.RunLintInput{})

		require.NoError(t, err)
		require.Len(t, exec.Calls, 2)
		assert.Equal(t, "/repo", exec.Calls[0].Dir)
		assert.Equal(t, "/repo", exec.Calls[1].Dir)
	})

	t.Run("dir override applies to all tools", func(t *testing.T) {
		exec := testutil.NewMockExecutor()

		uc := newRunLint(exec, twoToolConfig())
		_, err := uc.Execute(context.Background(), usecase.RunLintInput{Dir: "/elsewhere"})

		require.NoError(t, err)
		assert.Equal(t, "/elsewhere", exec.Calls[0].Dir)
	})

	t.Run("non-zero exit status still contributes stdout", func(t *testing.T) {
		exec := testutil.NewMockExecutor()
		exec.Outputs["tool-a --json"] = &domain.CapturedOutput{Stdout: []byte("foo"), ExitCode: 101}
		exec.Outputs["tool-b --json"] = &domain.CapturedOutput{Stdout: []byte("bar")}

		uc := newRunLint(exec, twoToolConfig())
		out, err := uc.Execute(context.Background(), usecase.RunLintInput{})

		require.NoError(t, err)
		assert.Equal(t, "foobar", string(out.Combined))
		assert.Equal(t, 101, out.Results[0].Output.ExitCode)
	})

	t.Run("empty outputs produce empty combined output", func(t *testing.T) {
		exec := testutil.NewMockExecutor()

		uc := newRunLint(exec, twoToolConfig())
		out, err := uc.Execute(context.Background(), usecase.RunLintInput{})

		require.NoError(t, err)
		assert.Empty(t, out.Combined)
		assert.Len(t, out.Results, 2)
	})

	t.Run("launch failure aborts before later tools run", func(t *testing.T) {
		exec := testutil.NewMockExecutor()
		exec.Errs["tool-a --json"] = errors.New(`launch tool-a: exec: "tool-a": executable file not found in $PATH`)

		uc := newRunLint(exec, twoToolConfig())
		out, err := uc.Execute(context.Background(), usecase.RunLintInput{})

		require.Error(t, err)
		assert.Nil(t, out)
		assert.Len(t, exec.Calls, 1, "second tool must not start after a launch failure")
	})

	t.Run("unknown tool name fails the run", func(t *testing.T) {
		exec := testutil.NewMockExecutor()

		uc := newRunLint(exec, twoToolConfig())
		_, err := uc.Execute(context.Background(), usecase.RunLintInput{Names: []string{"gamma"}})

		require.ErrorIs(t, err, domain.ErrToolNotFound)
		assert.Empty(t, exec.Calls)
	})

	t.Run("selection filters the configured order", func(t *testing.T) {
		exec := testutil.NewMockExecutor()

		uc := newRunLint(exec, twoToolConfig())
		_, err := uc.Execute(context.Background(), usecase.RunLintInput{Names: []string{"beta", "alpha"}})

		require.NoError(t, err)
		require.Len(t, exec.Calls, 2)
		assert.Equal(t, "tool-a", exec.Calls[0].Program, "argument order must not change execution order")
		assert.Equal(t, "tool-b", exec.Calls[1].Program)
	})

	t.Run("selecting a single tool runs only that tool", func(t *testing.T) {
		exec := testutil.NewMockExecutor()
		exec.Outputs["tool-b --json"] = &domain.CapturedOutput{Stdout: []byte("bar")}

		uc := newRunLint(exec, twoToolConfig())
		out, err := uc.Execute(context.Background(), usecase.RunLintInput{Names: []string{"beta"}})

		require.NoError(t, err)
		assert.Equal(t, "bar", string(out.Combined))
		require.Len(t, exec.Calls, 1)
		assert.Equal(t, "tool-b", exec.Calls[0].Program)
	})

	t.Run("all tools disabled is an error", func(t *testing.T) {
		cfg := twoToolConfig()
		for name, tool := range cfg.Tools {
			tool.Disabled = true
			cfg.Tools[name] = tool
		}

		uc := newRunLint(testutil.NewMockExecutor(), cfg)
		_, err := uc.Execute(context.Background(), usecase.RunLintInput{})

		require.ErrorIs(t, err, domain.ErrNoTools)
	})

	t.Run("suite tools replace the configured set", func(t *testing.T) {
		exec := testutil.NewMockExecutor()
		exec.Outputs["suite-tool lint"] = &domain.CapturedOutput{Stdout: []byte("baz")}

		uc := newRunLint(exec, twoToolConfig())
		out, err := uc.Execute(context.Background(), usecase.RunLintInput{
			Suite: []domain.Tool{
				{Name: "custom", Program: "suite-tool", Args: []string{"lint"}},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "baz", string(out.Combined))
		require.Len(t, exec.Calls, 1)
		assert.Equal(t, "suite-tool", exec.Calls[0].Program)
	})

	t.Run("config load error propagates", func(t *testing.T) {
		loader := testutil.NewMockConfigLoader()
		loader.Err = errors.New("broken config")
		clock := &testutil.MockClock{NowTime: time.Now()}
		uc := usecase.NewRunLint(testutil.NewMockExecutor(), loader, clock, testutil.NewMockLogger(), "/repo")

		_, err := uc.Execute(context.Background(), usecase.RunLintInput{})

		require.ErrorContains(t, err, "broken config")
	})

	t.Run("repeated runs produce identical output", func(t *testing.T) {
		exec := testutil.NewMockExecutor()
		exec.Outputs["tool-a --json"] = &domain.CapturedOutput{Stdout: []byte("foo")}
		exec.Outputs["tool-b --json"] = &domain.CapturedOutput{Stdout: []byte("bar")}

		uc := newRunLint(exec, twoToolConfig())
		first, err := uc.Execute(context.Background(), usecase.RunLintInput{})
		require.NoError(t, err)
		second, err := uc.Execute(context.Background(), usecase.RunLintInput{})
		require.NoError(t, err)

		assert.Equal(t, first.Combined, second.Combined)
	})

	t.Run("records durations using the clock", func(t *testing.T) {
		exec := testutil.NewMockExecutor()

		uc := newRunLint(exec, twoToolConfig())
		out, err := uc.Execute(context.Background(), usecase.RunLintInput{})

		require.NoError(t, err)
		for _, result := range out.Results {
			assert.Equal(t, time.Second, result.Duration)
		}
	})
}

func TestRunLint_DefaultTools(t *testing.T) {
	t.Run("runs dylint before clippy with the fixed argument lists", func(t *testing.T) {
		exec := testutil.NewMockExecutor()

		uc := newRunLint(exec, domain.NewDefaultConfig())
		_, err := uc.Execute(context.Background(), usecase.RunLintInput{})

		require.NoError(t, err)
		require.Len(t, exec.Calls, 2)
		assert.Equal(t, "cargo", exec.Calls[0].Program)
		assert.Equal(t, []string{"dylint", "--all", "--", "--no-default-features", "--all-targets", "--message-format=json"}, exec.Calls[0].Args)
		assert.Equal(t, "cargo", exec.Calls[1].Program)
		assert.Equal(t, []string{"clippy", "--all-targets", "--message-format=json", "--no-default-features"}, exec.Calls[1].Args)
	})
}
