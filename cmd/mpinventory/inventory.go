package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jbweber/mpinventory/internal/config"
	"github.com/jbweber/mpinventory/internal/inventory"
	"github.com/jbweber/mpinventory/internal/logging"
	"github.com/jbweber/mpinventory/internal/output"
)

// runInventory implements the inventory script protocol. Every data failure
// degrades to an empty document so the exit status stays 0.
func runInventory(cmd *cobra.Command, opts *rootOptions) error {
	stderr := cmd.ErrOrStderr()

	doc := inventory.Empty()
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		logger := fallbackLogger(stderr)
		logger.Warn("ignoring invalid configuration, printing empty inventory", zap.Error(err))
	} else {
		logger := newLogger(cfg, stderr)
		defer func() { _ = logger.Sync() }()

		// Generate always returns a printable document; the error only
		// explains why it is empty and has already been logged.
		doc, _ = inventory.Generate(cmd.Context(), opts.newLister(cfg), cfg.Policy(), logger)
	}

	formatter := &output.JSONFormatter{}

	var result string
	if opts.host != "" {
		var vars *inventory.HostVars
		if v, ok := doc.Host(opts.host); ok {
			vars = &v
		}
		result, err = formatter.FormatHost(vars)
	} else {
		result, err = formatter.FormatInventory(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to format inventory: %w", err)
	}

	_, err = io.WriteString(cmd.OutOrStdout(), result)
	return err
}

// newLogger builds the configured logger, or a warn-level console logger if
// the configured one cannot be built.
func newLogger(cfg *config.Config, w io.Writer) *zap.Logger {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, w)
	if err != nil {
		logger = fallbackLogger(w)
		logger.Warn("failed to build configured logger", zap.Error(err))
	}
	return logger
}

// fallbackLogger is used before a valid configuration is available.
func fallbackLogger(w io.Writer) *zap.Logger {
	logger, err := logging.New("warn", logging.FormatConsole, w)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
