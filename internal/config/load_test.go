package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(LoadOptions{SearchPaths: []string{}})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_SearchPathFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `group: lab
user: admin
timeout: 30s
`)

	cfg, err := Load(LoadOptions{SearchPaths: []string{dir}})
	require.NoError(t, err)
	assert.Equal(t, "lab", cfg.Group)
	assert.Equal(t, "admin", cfg.User)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "multipass", cfg.Command)
}

func TestLoad_SearchPathMissingIsFine(t *testing.T) {
	cfg, err := Load(LoadOptions{SearchPaths: []string{t.TempDir()}})
	require.NoError(t, err)
	assert.Equal(t, "your_ubuntu_servers", cfg.Group)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(LoadOptions{File: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "group: [unterminated\n")
	_, err := Load(LoadOptions{File: path})
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "group: _meta\n")
	_, err := Load(LoadOptions{File: path})
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestLoad_InvalidLoggingFallsBackToDefaults(t *testing.T) {
	t.Setenv("MPINVENTORY_LOG_LEVEL", "bogus")
	t.Setenv("MPINVENTORY_LOG_FORMAT", "xml")
	t.Setenv("MPINVENTORY_GROUP", "lab")

	cfg, err := Load(LoadOptions{SearchPaths: []string{}})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "lab", cfg.Group)
	assert.ErrorContains(t, cfg.LoggingError, "log_level")
}

func TestLoad_InvalidLoggingDoesNotMaskOtherErrors(t *testing.T) {
	t.Setenv("MPINVENTORY_LOG_LEVEL", "bogus")
	t.Setenv("MPINVENTORY_GROUP", "_meta")

	_, err := Load(LoadOptions{SearchPaths: []string{}})
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "group: lab\nuser: admin\n")
	t.Setenv("MPINVENTORY_GROUP", "staging")
	t.Setenv("MPINVENTORY_TIMEOUT", "2m")

	cfg, err := Load(LoadOptions{File: path})
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Group)
	assert.Equal(t, "admin", cfg.User)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("MPINVENTORY_GROUP", "staging")
	t.Setenv("MPINVENTORY_USER", "envuser")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("group", "", "")
	flags.String("user", "", "")
	flags.String("log-level", "", "")
	flags.Bool("list", false, "")
	require.NoError(t, flags.Parse([]string{"--group", "prod", "--log-level", "debug", "--list"}))

	cfg, err := Load(LoadOptions{SearchPaths: []string{}, Flags: flags})
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Group)
	// unchanged flag does not mask the environment
	assert.Equal(t, "envuser", cfg.User)
	assert.Equal(t, "debug", cfg.LogLevel)
}
