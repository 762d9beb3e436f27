package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jbweber/mpinventory/internal/config"
	"github.com/jbweber/mpinventory/internal/inventory"
	"github.com/jbweber/mpinventory/internal/multipass"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd(multipassLister).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// listerFactory builds the instance lister for a configuration.
type listerFactory func(cfg *config.Config) inventory.Lister

// multipassLister lists instances with the multipass CLI.
func multipassLister(cfg *config.Config) inventory.Lister {
	return multipass.NewClient(cfg.ClientOptions()...)
}

// configSearchPaths is where config.yaml is looked up; nil means the
// per-user and system defaults.
var configSearchPaths []string

// rootOptions holds flag values shared by every command.
type rootOptions struct {
	configFile string
	verbose    bool
	list       bool
	host       string

	// searchPaths overrides the config search path; nil means the defaults.
	searchPaths []string
	newLister   listerFactory
}

func newRootCmd(newLister listerFactory) *cobra.Command {
	opts := &rootOptions{newLister: newLister, searchPaths: configSearchPaths}

	rootCmd := &cobra.Command{
		Use:   "mpinventory",
		Short: "mpinventory - Ansible dynamic inventory for multipass VMs",
		Long: `mpinventory prints an Ansible dynamic inventory built from the
instances reported by 'multipass list'.

Every running instance with an IPv4 address is placed in a single group,
with ansible_host set to its first address and ansible_user set to a fixed
login account.

Use it directly as an inventory script:
  ansible-inventory -i mpinventory --list
  ansible all -i mpinventory -m ping

When multipass is missing, fails, or prints something unexpected, an empty
inventory is printed and the exit status is still 0.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInventory(cmd, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVar(&opts.list, "list", false, "Print the full inventory (default behavior)")
	flags.StringVar(&opts.host, "host", "", "Print the variables of a single host")
	rootCmd.MarkFlagsMutuallyExclusive("list", "host")

	def := config.Default()
	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&opts.configFile, "config", "", "Path to a YAML config file")
	persistent.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug diagnostics to stderr")
	persistent.String("command", def.Command, "multipass executable name or path")
	persistent.String("group", def.Group, "Inventory group for running instances")
	persistent.String("user", def.User, "ansible_user assigned to every host")
	persistent.Duration("timeout", def.Timeout, "Maximum time to wait for multipass (0 waits forever)")
	persistent.String("log-level", def.LogLevel, "Log level: debug, info, warn, error")
	persistent.String("log-format", def.LogFormat, "Log format: console or json")

	rootCmd.AddCommand(newHostsCmd(opts))
	rootCmd.AddCommand(newExportCmd(opts))

	return rootCmd
}

// loadConfig merges the config file, environment and flags of cmd.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		File:        opts.configFile,
		SearchPaths: opts.searchPaths,
		Flags:       cmd.Flags(),
	})
	if err != nil {
		return nil, err
	}

	if cfg.LoggingError != nil {
		fallbackLogger(cmd.ErrOrStderr()).Warn("ignoring invalid log settings, using defaults", zap.Error(cfg.LoggingError))
	}

	if opts.verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}
