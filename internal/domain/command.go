package domain

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
}

// CapturedOutput holds the result of running an ExecCommand to completion.
// Stdout carries the tool's diagnostic stream and is the only part that
// reaches the combined output; Stderr and ExitCode are kept for logging.
type CapturedOutput struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}
