package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/softkbd/keyboard"
	"github.com/ardnew/softkbd/layout"
	"github.com/ardnew/softkbd/pkg"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, keyboard.DefaultDevice, cfg.Device)
	assert.Equal(t, layout.DefaultTiming(), cfg.Timing.Layout())
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFormats(t *testing.T) {
	want := layout.Timing{
		ModifierDelay: 4 * time.Millisecond,
		HoldDelay:     20 * time.Millisecond,
		ReleaseDelay:  4 * time.Millisecond,
		SettleDelay:   25 * time.Millisecond,
	}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "softkbd.toml", `
device = "/dev/hidg1"

[timing]
modifier_delay = "4ms"
hold_delay = "20ms"
release_delay = "4ms"
settle_delay = "25ms"

[log]
level = "debug"
`},
		{"json", "softkbd.json", `{
  "device": "/dev/hidg1",
  "timing": {"modifier_delay": "4ms", "hold_delay": "20ms", "release_delay": "4ms", "settle_delay": "25ms"},
  "log": {"level": "debug"}
}`},
		{"yaml", "softkbd.yaml", `
device: /dev/hidg1
timing:
  modifier_delay: 4ms
  hold_delay: 20ms
  release_delay: 4ms
  settle_delay: 25ms
log:
  level: debug
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, "/dev/hidg1", cfg.Device)
			assert.Equal(t, want, cfg.Timing.Layout())
			level, err := cfg.LogLevel()
			require.NoError(t, err)
			assert.Equal(t, slog.LevelDebug, level)
		})
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "partial.toml", "[timing]\nsettle_delay = \"50ms\"\n"))
	require.NoError(t, err)
	assert.Equal(t, Duration(50*time.Millisecond), cfg.Timing.SettleDelay)
	assert.Equal(t, Duration(layout.DefaultTiming().HoldDelay), cfg.Timing.HoldDelay)
	assert.Equal(t, keyboard.DefaultDevice, cfg.Device)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative delay", "[timing]\nhold_delay = \"-5ms\"\n"},
		{"empty device", "device = \"\"\n"},
		{"bad level", "[log]\nlevel = \"chatty\"\n"},
		{"bad format", "[log]\nformat = \"xml\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "bad.toml", tt.content))
			require.ErrorIs(t, err, pkg.ErrInvalidConfig)
		})
	}

	_, err := Load(writeFile(t, "garbage.toml", "timing = [[["))
	require.Error(t, err)
	_, err = Load(writeFile(t, "bad-duration.json", `{"timing": {"hold_delay": "soon"}}`))
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvDevice, "/dev/hidg3")
	t.Setenv(EnvSettle, "40ms")
	t.Setenv(EnvLogLevel, "info")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/dev/hidg3", cfg.Device)
	assert.Equal(t, 40*time.Millisecond, cfg.Timing.Layout().SettleDelay)
	assert.Equal(t, "info", cfg.Log.Level)

	t.Setenv(EnvHold, "forever")
	_, err = Load("")
	require.ErrorIs(t, err, pkg.ErrInvalidConfig)
}

func TestDurationText(t *testing.T) {
	d := Duration(1500 * time.Microsecond)
	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1.5ms", string(text))

	var back Duration
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, d, back)
}
