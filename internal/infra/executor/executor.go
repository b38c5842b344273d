// Package executor provides command execution functionality.
package executor

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"

	"github.com/runoshun/lintmux/internal/domain"
)

// Client implements domain.CommandExecutor interface.
type Client struct{}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Execute runs the command synchronously and captures stdout and stderr
// separately. A non-zero exit status is mapped into the captured output,
// not an error; only spawn-level failures are returned as errors.
func (c *Client) Execute(cmd *domain.ExecCommand) (*domain.CapturedOutput, error) {
	// #nosec G204 - cmd.Program and cmd.Args come from trusted UseCase code
	execCmd := exec.Command(cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}

	var stdout, stderr bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	err := execCmd.Run()
	out := &domain.CapturedOutput{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		return nil, fmt.Errorf("launch %s: %w", cmd.Program, err)
	}
	return out, nil
}
