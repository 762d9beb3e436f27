package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/jbweber/mpinventory/internal/inventory"
)

// TableFormatter formats documents as human-readable tables.
type TableFormatter struct {
	// NoHeaders omits the header row.
	NoHeaders bool
}

// FormatInventory formats one row per host in group order.
func (f *TableFormatter) FormatInventory(doc *inventory.Document) (string, error) {
	if doc == nil || len(doc.HostVars) == 0 {
		return "No hosts found\n", nil
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	// Write header unless NoHeaders is set
	if !f.NoHeaders {
		_, _ = fmt.Fprintln(w, "HOST\tADDRESS\tUSER\tGROUPS")
	}

	for _, host := range doc.Hosts() {
		vars, _ := doc.Host(host)
		groups := strings.Join(doc.GroupsOf(host), ",")
		if groups == "" {
			groups = "-"
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			host, vars.AnsibleHost, vars.AnsibleUser, groups)
	}

	_ = w.Flush()
	return buf.String(), nil
}
