// Package config loads softkbd settings from TOML, JSON or YAML files with
// environment overrides.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ardnew/softkbd/keyboard"
	"github.com/ardnew/softkbd/layout"
	"github.com/ardnew/softkbd/pkg"
)

// Environment variables that override file settings.
const (
	EnvDevice   = "SOFTKBD_DEVICE"
	EnvLogLevel = "SOFTKBD_LOG_LEVEL"
	EnvSettle   = "SOFTKBD_SETTLE_DELAY"
	EnvHold     = "SOFTKBD_HOLD_DELAY"
)

// Duration is a time.Duration written as a Go duration string ("10ms") in
// every supported format.
type Duration time.Duration

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Timing mirrors layout.Timing with file-friendly durations.
type Timing struct {
	ModifierDelay Duration `toml:"modifier_delay" json:"modifier_delay" yaml:"modifier_delay"`
	HoldDelay     Duration `toml:"hold_delay" json:"hold_delay" yaml:"hold_delay"`
	ReleaseDelay  Duration `toml:"release_delay" json:"release_delay" yaml:"release_delay"`
	SettleDelay   Duration `toml:"settle_delay" json:"settle_delay" yaml:"settle_delay"`
}

// Layout converts the settings to layout.Timing.
func (t Timing) Layout() layout.Timing {
	return layout.Timing{
		ModifierDelay: time.Duration(t.ModifierDelay),
		HoldDelay:     time.Duration(t.HoldDelay),
		ReleaseDelay:  time.Duration(t.ReleaseDelay),
		SettleDelay:   time.Duration(t.SettleDelay),
	}
}

// Log holds logging settings.
type Log struct {
	Level  string `toml:"level" json:"level" yaml:"level"`
	Format string `toml:"format" json:"format" yaml:"format"`
}

// Config is the complete softkbd configuration.
type Config struct {
	Device string `toml:"device" json:"device" yaml:"device"`
	Macros string `toml:"macros" json:"macros" yaml:"macros"`
	Timing Timing `toml:"timing" json:"timing" yaml:"timing"`
	Log    Log    `toml:"log" json:"log" yaml:"log"`
}

// Default returns the built-in configuration.
func Default() *Config {
	t := layout.DefaultTiming()
	return &Config{
		Device: keyboard.DefaultDevice,
		Timing: Timing{
			ModifierDelay: Duration(t.ModifierDelay),
			HoldDelay:     Duration(t.HoldDelay),
			ReleaseDelay:  Duration(t.ReleaseDelay),
			SettleDelay:   Duration(t.SettleDelay),
		},
		Log: Log{Level: "warn", Format: "text"},
	}
}

// Load reads path, applies environment overrides and validates the
// result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pkg.LogDebug(pkg.ComponentConfig, "configuration loaded",
		"path", path,
		"device", cfg.Device)
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			pkg.LogInfo(pkg.ComponentConfig, "no configuration file, using defaults", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	switch filepath.Ext(path) {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
	}
	return cfg, nil
}

// ApplyEnvOverrides replaces settings with SOFTKBD_* environment values.
func (c *Config) ApplyEnvOverrides() error {
	if v := os.Getenv(EnvDevice); v != "" {
		c.Device = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	for _, o := range []struct {
		env string
		dst *Duration
	}{
		{EnvSettle, &c.Timing.SettleDelay},
		{EnvHold, &c.Timing.HoldDelay},
	} {
		v := os.Getenv(o.env)
		if v == "" {
			continue
		}
		if err := o.dst.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%w: %s=%q: %w", pkg.ErrInvalidConfig, o.env, v, err)
		}
	}
	return nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Device == "" {
		return fmt.Errorf("%w: device path is empty", pkg.ErrInvalidConfig)
	}
	if err := c.Timing.Layout().Validate(); err != nil {
		return fmt.Errorf("%w: %w", pkg.ErrInvalidConfig, err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: log level %q", pkg.ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", pkg.ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// LogLevel parses the configured level.
func (c *Config) LogLevel() (slog.Level, error) {
	if c.Log.Level == "" {
		return slog.LevelWarn, nil
	}
	return pkg.ParseLogLevel(c.Log.Level)
}

// ApplyLogging configures the pkg logger from the settings.
func (c *Config) ApplyLogging() {
	if level, err := c.LogLevel(); err == nil {
		pkg.SetLogLevel(level)
	}
	if c.Log.Format == "json" {
		pkg.SetLogFormat(pkg.LogFormatJSON)
	}
}
