package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jbweber/mpinventory/internal/inventory"
	"github.com/jbweber/mpinventory/internal/output"
)

func newHostsCmd(opts *rootOptions) *cobra.Command {
	var (
		outputFormat string
		noHeaders    bool
	)

	cmd := &cobra.Command{
		Use:   "hosts",
		Short: "Show the hosts the inventory would contain",
		Long: `Show the hosts the inventory would contain, one row per host.

Unlike the inventory itself, errors from multipass are reported and the
command exits non-zero.

Output formats:
  -o table  Human-readable table (default)
  -o yaml   Static Ansible YAML inventory
  -o json   Dynamic inventory JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate output format
			if err := output.ValidateFormat(outputFormat); err != nil {
				return err
			}

			doc, err := generateStrict(cmd, opts)
			if err != nil {
				return err
			}

			formatter, err := output.NewFormatter(output.Options{
				Format:    output.Format(outputFormat),
				NoHeaders: noHeaders,
			})
			if err != nil {
				return err
			}

			result, err := formatter.FormatInventory(doc)
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), result)
			return err
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", string(output.FormatTable), "Output format: table, yaml, json")
	cmd.Flags().BoolVar(&noHeaders, "no-headers", false, "Omit the table header row")

	return cmd
}

// generateStrict builds the inventory and returns listing failures instead
// of falling back to an empty document.
func generateStrict(cmd *cobra.Command, opts *rootOptions) (*inventory.Document, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg, cmd.ErrOrStderr())
	defer func() { _ = logger.Sync() }()

	doc, err := inventory.Generate(cmd.Context(), opts.newLister(cfg), cfg.Policy(), logger)
	if err != nil {
		return nil, err
	}

	return doc, nil
}
