// Package output provides formatters for displaying inventory documents
// in various formats (table, YAML, JSON).
package output

import (
	"fmt"

	"github.com/jbweber/mpinventory/internal/inventory"
)

// Format represents an output format type.
type Format string

const (
	// FormatTable is a human-readable table format.
	FormatTable Format = "table"
	// FormatYAML is an Ansible YAML inventory for static use.
	FormatYAML Format = "yaml"
	// FormatJSON is the dynamic inventory JSON consumed by Ansible.
	FormatJSON Format = "json"
)

// Formatter formats inventory documents for output.
type Formatter interface {
	// FormatInventory formats a complete inventory document.
	FormatInventory(doc *inventory.Document) (string, error)
}

// Options contains options for formatting output.
type Options struct {
	// Format specifies the output format.
	Format Format
	// NoHeaders omits headers in table format.
	NoHeaders bool
}

// NewFormatter creates a new Formatter based on the specified format.
func NewFormatter(opts Options) (Formatter, error) {
	switch opts.Format {
	case FormatTable:
		return &TableFormatter{NoHeaders: opts.NoHeaders}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (supported: table, yaml, json)", opts.Format)
	}
}

// ValidateFormat checks if a format string is valid.
func ValidateFormat(format string) error {
	f := Format(format)
	switch f {
	case FormatTable, FormatYAML, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid formats: table, yaml, json)", format)
	}
}
