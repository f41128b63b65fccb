package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/fincept/fincept-shell/internal/helpdesk"
	"github.com/fincept/fincept-shell/internal/logger"
)

// AuthModeSimulated is the only backend the shell ships with.
const AuthModeSimulated = "simulated"

// Config holds application configuration.
type Config struct {
	Auth AuthConfig
	Log  LogConfig
	Help HelpConfig
	UI   UIConfig
}

// AuthConfig selects the submit backend.
type AuthConfig struct {
	Mode    string
	Latency time.Duration
}

// LogConfig holds the log sink settings.
type LogConfig struct {
	Level string
	File  string
}

// HelpConfig tunes the help terminal.
type HelpConfig struct {
	FuzzyDistance int `mapstructure:"fuzzy_distance"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Keybindings string
}

// Dir is where config.toml and keybindings.toml live.
func Dir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "fincept")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "fincept")
}

func defaultLogFile() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "fincept", "fincept.log")
	}
	return filepath.Join(os.TempDir(), "fincept.log")
}

// Load reads configuration from path (or FINCEPT_CONFIG, or the default
// location) and environment. Env var overrides use prefix FINCEPT_. A
// missing config file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("auth.mode", AuthModeSimulated)
	v.SetDefault("auth.latency", time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", defaultLogFile())
	v.SetDefault("help.fuzzy_distance", helpdesk.DefaultFuzzyDistance)
	v.SetDefault("ui.keybindings", filepath.Join(Dir(), "keybindings.toml"))

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("FINCEPT_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FINCEPT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Auth.Mode = strings.ToLower(strings.TrimSpace(c.Auth.Mode))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the shell cannot run with.
func (c Config) Validate() error {
	if c.Auth.Mode != AuthModeSimulated {
		return fmt.Errorf("config: unknown auth.mode %q", c.Auth.Mode)
	}
	if c.Auth.Latency < 0 {
		return fmt.Errorf("config: auth.latency must not be negative, got %s", c.Auth.Latency)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Help.FuzzyDistance < 0 {
		return fmt.Errorf("config: help.fuzzy_distance must not be negative, got %d", c.Help.FuzzyDistance)
	}
	return nil
}
