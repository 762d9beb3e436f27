package multipass

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the multipass executable does not exist.
	ErrNotFound = errors.New("multipass executable not found")
	// ErrCommandFailed is returned when multipass exits with a non-zero status.
	ErrCommandFailed = errors.New("multipass command failed")
	// ErrMalformedOutput is returned when the listing cannot be decoded.
	ErrMalformedOutput = errors.New("malformed multipass output")
	// ErrTimeout is returned when the list command outlives its timeout.
	ErrTimeout = errors.New("multipass command timed out")
)

// ExitError describes a multipass invocation that exited non-zero.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s: exit status %d", ErrCommandFailed, e.Code)
	}
	return fmt.Sprintf("%s: exit status %d: %s", ErrCommandFailed, e.Code, e.Stderr)
}

// Is reports ExitError as ErrCommandFailed.
func (e *ExitError) Is(target error) bool {
	return target == ErrCommandFailed
}
