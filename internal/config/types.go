// Package config loads mpinventory settings from defaults, an optional YAML
// file, MPINVENTORY_* environment variables and command-line flags.
package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jbweber/mpinventory/internal/inventory"
	"github.com/jbweber/mpinventory/internal/logging"
	"github.com/jbweber/mpinventory/internal/multipass"
)

// Config represents the complete inventory configuration.
type Config struct {
	Command   string        `mapstructure:"command" yaml:"command"`
	Group     string        `mapstructure:"group" yaml:"group"`
	User      string        `mapstructure:"user" yaml:"user"`
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout,omitempty"` // 0 means wait forever
	LogLevel  string        `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string        `mapstructure:"log_format" yaml:"log_format"`

	// LoggingError records why Load replaced invalid log settings with
	// their defaults.
	LoggingError error `mapstructure:"-" yaml:"-"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Command:   multipass.DefaultCommand,
		Group:     inventory.DefaultGroup,
		User:      inventory.DefaultUser,
		LogLevel:  "error",
		LogFormat: logging.FormatConsole,
	}
}

// Ansible group names: letters, digits and underscores, not starting with a digit.
var groupNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// reservedGroups cannot be used as the output group.
var reservedGroups = map[string]bool{
	inventory.MetaKey: true,
	"all":             true,
	"ungrouped":       true,
}

// Normalize trims surrounding whitespace from user input.
func (c *Config) Normalize() {
	c.Command = strings.TrimSpace(c.Command)
	c.Group = strings.TrimSpace(c.Group)
	c.User = strings.TrimSpace(c.User)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Command == "" {
		return fmt.Errorf("command is required")
	}

	if c.Group == "" {
		return fmt.Errorf("group is required")
	}
	if !groupNamePattern.MatchString(c.Group) {
		return fmt.Errorf("group must contain only letters, digits or underscores and not start with a digit, got %q", c.Group)
	}
	if reservedGroups[c.Group] {
		return fmt.Errorf("group %q is reserved", c.Group)
	}

	if c.User == "" {
		return fmt.Errorf("user is required")
	}
	if strings.ContainsAny(c.User, " \t\n") {
		return fmt.Errorf("user must not contain whitespace, got %q", c.User)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %s", c.Timeout)
	}

	return c.validateLogging()
}

// validateLogging checks only the log settings.
func (c *Config) validateLogging() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	switch c.LogFormat {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("log_format must be %q or %q, got %q", logging.FormatConsole, logging.FormatJSON, c.LogFormat)
	}
	return nil
}

// Policy returns the inventory policy described by the configuration.
func (c *Config) Policy() inventory.Policy {
	return inventory.Policy{Group: c.Group, User: c.User}
}

// ClientOptions returns the multipass client options described by the configuration.
func (c *Config) ClientOptions() []multipass.Option {
	return []multipass.Option{
		multipass.WithCommand(c.Command),
		multipass.WithTimeout(c.Timeout),
	}
}
