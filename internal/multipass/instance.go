package multipass

import (
	"encoding/json"
	"fmt"
)

// StateRunning is the state multipass reports for a booted instance.
const StateRunning = "Running"

// Instance is a single entry of `multipass list --format json`.
type Instance struct {
	Name    string   `json:"name"`
	State   string   `json:"state"`
	IPv4    []string `json:"ipv4"`
	Release string   `json:"release,omitempty"`
}

// IsRunning reports whether the instance is in the Running state.
func (i Instance) IsRunning() bool {
	return i.State == StateRunning
}

// PrimaryAddress returns the first reported address.
// Any further addresses are ignored; an empty first address counts as none.
func (i Instance) PrimaryAddress() (string, bool) {
	if len(i.IPv4) == 0 || i.IPv4[0] == "" {
		return "", false
	}
	return i.IPv4[0], true
}

// listing is the top-level document printed by multipass.
type listing struct {
	List *[]Instance `json:"list"`
}

// ParseList decodes the JSON printed by `multipass list --format json`.
// A document without a "list" key is rejected.
func ParseList(data []byte) ([]Instance, error) {
	var doc listing
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedOutput, err)
	}
	if doc.List == nil {
		return nil, fmt.Errorf("%w: missing \"list\" key", ErrMalformedOutput)
	}
	return *doc.List, nil
}
