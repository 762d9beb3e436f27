package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. MPINVENTORY_GROUP.
const EnvPrefix = "MPINVENTORY"

// Configuration keys.
const (
	KeyCommand   = "command"
	KeyGroup     = "group"
	KeyUser      = "user"
	KeyTimeout   = "timeout"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// LoadOptions controls where Load looks for settings.
type LoadOptions struct {
	// File is an explicit config file. A missing explicit file is an error.
	File string
	// SearchPaths are directories searched for config.yaml when File is
	// empty. Nil means DefaultSearchPaths().
	SearchPaths []string
	// Flags are bound by their config key names (dashes become underscores).
	// Only flags the user changed override other sources.
	Flags *pflag.FlagSet
}

// DefaultSearchPaths returns the per-user and system config directories.
func DefaultSearchPaths() []string {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "mpinventory"))
	}
	return append(paths, "/etc/mpinventory")
}

// newViper creates a viper instance with defaults and environment binding.
func newViper() *viper.Viper {
	v := viper.New()

	def := Default()
	v.SetDefault(KeyCommand, def.Command)
	v.SetDefault(KeyGroup, def.Group)
	v.SetDefault(KeyUser, def.User)
	v.SetDefault(KeyTimeout, def.Timeout)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyLogFormat, def.LogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load builds a Config. Precedence, highest first: changed flags,
// environment, config file, defaults. Invalid log settings do not fail the
// load: both fall back to their defaults and the problem is kept in
// Config.LoggingError.
func Load(opts LoadOptions) (*Config, error) {
	v := newViper()

	if err := readConfigFile(v, opts); err != nil {
		return nil, err
	}

	if opts.Flags != nil {
		if err := bindFlags(v, opts.Flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	cfg.Normalize()

	if err := cfg.validateLogging(); err != nil {
		def := Default()
		cfg.LogLevel = def.LogLevel
		cfg.LogFormat = def.LogFormat
		cfg.LoggingError = err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// readConfigFile loads the explicit file, or the first config.yaml found on
// the search paths. Finding no file on the search paths is not an error.
func readConfigFile(v *viper.Viper, opts LoadOptions) error {
	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", opts.File, err)
		}
		return nil
	}

	paths := opts.SearchPaths
	if paths == nil {
		paths = DefaultSearchPaths()
	}
	if len(paths) == 0 {
		return nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}

// bindFlags binds every flag whose name maps to a known key.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		switch key {
		case KeyCommand, KeyGroup, KeyUser, KeyTimeout, KeyLogLevel, KeyLogFormat:
		default:
			return
		}
		if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
			bindErr = fmt.Errorf("failed to bind flag --%s: %w", f.Name, err)
		}
	})
	return bindErr
}
