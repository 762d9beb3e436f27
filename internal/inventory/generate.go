package inventory

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jbweber/mpinventory/internal/multipass"
)

// Lister lists instances from the VM manager.
//
// In production, this is satisfied by *multipass.Client.
// In tests, this is satisfied by mock implementations.
type Lister interface {
	List(ctx context.Context) ([]multipass.Instance, error)
}

// Generate lists instances and builds the inventory document.
//
// Generate never returns a nil document. When listing fails the document is
// Empty() and the returned error says why; callers print the document either
// way so the consuming tool always receives valid output.
func Generate(ctx context.Context, lister Lister, policy Policy, logger *zap.Logger) (*Document, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	instances, err := lister.List(ctx)
	if err != nil {
		logger.Warn("falling back to empty inventory",
			zap.String("reason", reasonFor(err)),
			zap.Error(err),
		)
		return Empty(), fmt.Errorf("failed to list instances: %w", err)
	}

	doc := Build(instances, policy)
	logger.Debug("built inventory",
		zap.Int("instances", len(instances)),
		zap.Int("hosts", len(doc.HostVars)),
		zap.String("group", policy.withDefaults().Group),
	)

	return doc, nil
}

// reasonFor names the failure kind for log output.
func reasonFor(err error) string {
	switch {
	case errors.Is(err, multipass.ErrNotFound):
		return "not_found"
	case errors.Is(err, multipass.ErrCommandFailed):
		return "command_failed"
	case errors.Is(err, multipass.ErrMalformedOutput):
		return "malformed_output"
	case errors.Is(err, multipass.ErrTimeout):
		return "timeout"
	default:
		return "unknown"
	}
}
