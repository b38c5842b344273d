package cli_test

import (
	"bytes"
	"testing"

	"github.com/runoshun/lintmux/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	t.Run("shows help without arguments", func(t *testing.T) {
		root := cli.NewRootCommand(nil, "test")
		var stdout bytes.Buffer
		root.SetOut(&stdout)
		root.SetArgs([]string{})

		require.NoError(t, root.Execute())
		assert.Contains(t, stdout.String(), "run")
		assert.Contains(t, stdout.String(), "tools")
		assert.Contains(t, stdout.String(), "config")
	})

	t.Run("prints version", func(t *testing.T) {
		root := cli.NewRootCommand(nil, "1.2.3")
		var stdout bytes.Buffer
		root.SetOut(&stdout)
		root.SetArgs([]string{"--version"})

		require.NoError(t, root.Execute())
		assert.Contains(t, stdout.String(), "1.2.3")
	})

	t.Run("surfaces config warnings on stderr", func(t *testing.T) {
		c := newTestContainer(nil)
		cfg, err := c.ConfigLoader.Load()
		require.NoError(t, err)
		cfg.Warnings = []string{"tool \"broken\" has no program and will fail to launch"}

		_, stderr, err := execute(t, c, "tools")
		require.NoError(t, err)
		assert.Contains(t, stderr, "Warning:")
	})
}
