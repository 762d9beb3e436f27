// Package multipass lists virtual machines managed by the multipass CLI.
//
// The package runs `multipass list --format json` as a subprocess and decodes
// the result into Instance values. It does not start, stop or otherwise
// manage instances.
//
// Error Kinds:
//
// Failures are reported as one of a small set of sentinel errors so callers
// can tell them apart with errors.Is:
//   - ErrNotFound: the multipass executable could not be located
//   - ErrCommandFailed: multipass exited non-zero (see *ExitError)
//   - ErrMalformedOutput: stdout was not the expected JSON listing
//   - ErrTimeout: the configured timeout elapsed before multipass exited
//
// Consumer-Side Interface:
//
// The subprocess is reached through the commandRunner interface. Production
// code uses execRunner (os/exec); tests supply a mock that returns canned
// stdout and errors.
package multipass
