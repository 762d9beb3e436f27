package multipass

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"
)

// DefaultCommand is the executable looked up on PATH when none is configured.
const DefaultCommand = "multipass"

// listArgs requests the machine-readable listing.
var listArgs = []string{"list", "--format", "json"}

// Client runs multipass list commands.
type Client struct {
	command string
	timeout time.Duration
	runner  commandRunner
}

// Option configures a Client.
type Option func(*Client)

// WithCommand overrides the multipass executable name or path.
func WithCommand(command string) Option {
	return func(c *Client) {
		if command != "" {
			c.command = command
		}
	}
}

// WithTimeout bounds each list invocation. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// NewClient creates a Client that shells out to multipass.
func NewClient(opts ...Option) *Client {
	return newClientWithRunner(execRunner{}, opts...)
}

// newClientWithRunner creates a Client with an injected runner.
// This allows for testing without a multipass installation.
func newClientWithRunner(runner commandRunner, opts ...Option) *Client {
	c := &Client{
		command: DefaultCommand,
		runner:  runner,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Command returns the executable the client invokes.
func (c *Client) Command() string {
	return c.command
}

// List returns every instance multipass knows about, in the order multipass
// reports them. Errors match one of ErrNotFound, ErrCommandFailed,
// ErrMalformedOutput or ErrTimeout.
func (c *Client) List(ctx context.Context) ([]Instance, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	stdout, stderr, err := c.runner.Run(ctx, c.command, listArgs...)
	if err != nil {
		return nil, c.classify(ctx, err, stderr)
	}

	instances, err := ParseList(stdout)
	if err != nil {
		return nil, err
	}

	return instances, nil
}

// classify maps a runner error onto the package's error kinds.
func (c *Client) classify(ctx context.Context, err error, stderr []byte) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s: %w", ErrTimeout, c.timeout, err)
	}

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s: %w", ErrNotFound, c.command, err)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{
			Code:   exitErr.ExitCode(),
			Stderr: strings.TrimSpace(string(stderr)),
		}
	}

	return fmt.Errorf("failed to run %s: %w", c.command, err)
}
