package multipass

import (
	"context"
	"strings"
	"sync"
)

// mockRunner is a mock implementation of the commandRunner interface for testing.
type mockRunner struct {
	mu sync.Mutex

	// Configurable behavior
	runFunc func(ctx context.Context, name string, args ...string) ([]byte, []byte, error)

	// Call tracking
	runCalls []string
}

// newMockRunner creates a mock runner that prints an empty listing.
func newMockRunner() *mockRunner {
	m := &mockRunner{}

	m.runFunc = func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		return []byte(`{"list": []}`), nil, nil
	}

	return m
}

// withStdout configures the mock to print stdout and exit cleanly.
func (m *mockRunner) withStdout(stdout string) *mockRunner {
	m.runFunc = func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		return []byte(stdout), nil, nil
	}
	return m
}

func (m *mockRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	m.mu.Lock()
	m.runCalls = append(m.runCalls, strings.Join(append([]string{name}, args...), " "))
	m.mu.Unlock()

	return m.runFunc(ctx, name, args...)
}
