package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Display: DisplayConfig{
			Mode:  "screen",
			Color: true,
		},
		Game: GameConfig{
			AllowCheats: true,
			Intro:       true,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "puzzleland",
		},
	}
}

func TestValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, validConfig(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "puzzleland.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
  file: "-"
display:
  mode: plain
  color: false
game:
  allow_cheats: false
  intro: false
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "-", cfg.Logging.File)
	assert.Equal(t, "plain", cfg.Display.Mode)
	assert.False(t, cfg.Display.Color)
	assert.False(t, cfg.Game.AllowCheats)
	assert.False(t, cfg.Game.Intro)
	assert.Equal(t, "puzzleland", cfg.Telemetry.ServiceName, "unset keys keep their defaults")
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "puzzleland.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  mode: plain\n"), 0644))
	t.Setenv("PUZZLELAND_DISPLAY_MODE", "screen")
	t.Setenv("PUZZLELAND_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "screen", cfg.Display.Mode)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("PUZZLELAND_DISPLAY_MODE", "hologram")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display.mode")
}

func TestValidateCollectsAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	cfg.Logging.Format = "xml"
	cfg.Display.Mode = ""
	cfg.Telemetry = TelemetryConfig{Enabled: true}

	err := cfg.Validate()
	require.Error(t, err)
	for _, key := range []string{"logging.level", "logging.format", "display.mode", "telemetry.service_name"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestValidateDisplayModes(t *testing.T) {
	for _, mode := range []string{"screen", "plain"} {
		cfg := validConfig()
		cfg.Display.Mode = mode
		assert.NoError(t, cfg.Validate(), "mode %q should be valid", mode)
	}
}

func TestPropertyUnknownLevelsRejected(t *testing.T) {
	valid := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	rapid.Check(t, func(t *rapid.T) {
		level := rapid.StringMatching(`[a-z]{1,8}`).Draw(t, "level")
		cfg := validConfig()
		cfg.Logging.Level = level
		err := cfg.Validate()
		if valid[level] && err != nil {
			t.Fatalf("valid level %q rejected: %v", level, err)
		}
		if !valid[level] && err == nil {
			t.Fatalf("invalid level %q accepted", level)
		}
	})
}
