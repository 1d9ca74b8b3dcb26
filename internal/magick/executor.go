package magick

import (
	"context"
	"os/exec"
)

// Executor abstracts command execution for testability.
type Executor interface {
	// Run executes the command and returns its combined stdout and stderr.
	Run(ctx context.Context, name string, args []string) ([]byte, error)
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, name string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	return cmd.CombinedOutput()
}

// DefaultExecutor returns the executor that runs commands on the host.
func DefaultExecutor() Executor {
	return commandExecutor{}
}
