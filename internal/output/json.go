package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jbweber/mpinventory/internal/inventory"
)

// Indent is the indentation Ansible inventory scripts conventionally print with.
const Indent = "    "

// JSONFormatter formats documents as Ansible dynamic inventory JSON.
type JSONFormatter struct{}

// FormatInventory formats a document with _meta first and 4-space indentation.
func (f *JSONFormatter) FormatInventory(doc *inventory.Document) (string, error) {
	if doc == nil {
		doc = inventory.Empty()
	}
	return encode(doc, "inventory")
}

// FormatHost formats the variables of a single host, as returned by --host.
// A nil vars prints an empty object.
func (f *JSONFormatter) FormatHost(vars *inventory.HostVars) (string, error) {
	if vars == nil {
		return encode(struct{}{}, "host variables")
	}
	return encode(vars, "host variables")
}

// encode marshals v with the inventory indentation and a trailing newline.
func encode(v any, what string) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", Indent)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(v); err != nil {
		return "", fmt.Errorf("failed to marshal %s to JSON: %w", what, err)
	}

	return buf.String(), nil
}
