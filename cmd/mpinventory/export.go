package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jbweber/mpinventory/internal/output"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		outputFormat string
		file         string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a static inventory file",
		Long: `Write a snapshot of the current inventory for use as a static
Ansible inventory.

Output formats:
  -o yaml   Ansible YAML inventory (default)
  -o json   Dynamic inventory JSON

Example:
  mpinventory export -o yaml --file inventory.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := output.Format(outputFormat)
			if format != output.FormatYAML && format != output.FormatJSON {
				return fmt.Errorf("invalid format: %s (valid formats: yaml, json)", outputFormat)
			}

			doc, err := generateStrict(cmd, opts)
			if err != nil {
				return err
			}

			formatter, err := output.NewFormatter(output.Options{Format: format})
			if err != nil {
				return err
			}

			result, err := formatter.FormatInventory(doc)
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}

			if file == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), result)
				return err
			}

			if err := os.WriteFile(file, []byte(result), 0644); err != nil {
				return fmt.Errorf("failed to write file %s: %w", file, err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote %d host(s) to %s\n", len(doc.HostVars), file)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", string(output.FormatYAML), "Output format: yaml, json")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Write to this file instead of stdout")

	return cmd
}
