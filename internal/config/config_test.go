package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv("HOME", dir)
	t.Setenv("FINCEPT_CONFIG", "")
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, AuthModeSimulated, cfg.Auth.Mode)
	require.Equal(t, time.Second, cfg.Auth.Latency)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, 1, cfg.Help.FuzzyDistance)
	require.Equal(t, filepath.Join(dir, "config", "fincept", "keybindings.toml"), cfg.UI.Keybindings)
	require.Equal(t, filepath.Join(dir, "cache", "fincept", "fincept.log"), cfg.Log.File)
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[auth]
latency = "250ms"

[log]
level = "DEBUG"
file = "/tmp/fincept-test.log"

[help]
fuzzy_distance = 2
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 250*time.Millisecond, cfg.Auth.Latency)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "/tmp/fincept-test.log", cfg.Log.File)
	require.Equal(t, 2, cfg.Help.FuzzyDistance)
}

func TestLoadFromDefaultLocation(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "config", "fincept")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("[auth]\nlatency = \"3s\"\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 3*time.Second, cfg.Auth.Latency)
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("FINCEPT_AUTH_LATENCY", "5ms")
	t.Setenv("FINCEPT_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 5*time.Millisecond, cfg.Auth.Latency)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingExplicitFileUsesDefaults(t *testing.T) {
	dir := isolate(t)
	cfg, err := Load(filepath.Join(dir, "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, time.Second, cfg.Auth.Latency)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[auth\nlatency ="), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{
		Auth: AuthConfig{Mode: AuthModeSimulated, Latency: time.Second},
		Log:  LogConfig{Level: "info"},
		Help: HelpConfig{FuzzyDistance: 1},
	}
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown mode", func(c *Config) { c.Auth.Mode = "ldap" }},
		{"negative latency", func(c *Config) { c.Auth.Latency = -time.Second }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"negative distance", func(c *Config) { c.Help.FuzzyDistance = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			require.Error(t, c.Validate())
		})
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolate(t)
	t.Setenv("FINCEPT_AUTH_MODE", "oauth")
	_, err := Load("")
	require.ErrorContains(t, err, "auth.mode")
}
