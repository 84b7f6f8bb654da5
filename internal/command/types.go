// Package command runs commands inside service containers: execute_command
// for arbitrary commands and file_dir_read for read-only inspection.
package command

import "context"

// MaxOutputLength is the number of characters of command output returned
// before the rest is cut off.
const MaxOutputLength = 2048

const truncatedSuffix = "... (truncated)"

// ReadOnlyCommands are the base commands file_dir_read accepts.
var ReadOnlyCommands = []string{"ls", "cat", "head", "tail", "find", "grep", "tree", "pwd", "whoami", "which", "file"}

// Input selects a container and the argv to run in it.
type Input struct {
	ServiceID     string   `json:"serviceId" validate:"required"`
	EnvironmentID string   `json:"environmentId" validate:"required"`
	Command       []string `json:"command" validate:"required,min=1"`
}

// Result is the raw outcome reported by the API.
type Result struct {
	ExitCode int    `json:"exitCode"`
	Output   string `json:"output"`
}

// Runner is the command execution contract consumed by the MCP tools.
type Runner interface {
	// Execute runs any command permitted by the configured filter.
	Execute(ctx context.Context, in Input) (string, error)
	// ReadOnly runs a command whose base command is in ReadOnlyCommands.
	ReadOnly(ctx context.Context, in Input) (string, error)
}
