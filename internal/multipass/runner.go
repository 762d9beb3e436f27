package multipass

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// waitDelay bounds how long Run waits for output pipes after the process
// exits or is killed; a grandchild holding stdout must not outlive a timeout.
const waitDelay = 500 * time.Millisecond

// commandRunner runs an external command and returns its captured output.
//
// In production, this is satisfied by execRunner.
// In tests, this is satisfied by mock implementations.
type commandRunner interface {
	// Run executes name with args and waits for it to exit.
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// execRunner runs commands with os/exec.
type execRunner struct{}

// Run executes the command, capturing stdout and stderr separately.
func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
