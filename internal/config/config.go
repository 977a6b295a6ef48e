// Package config provides Viper-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. PUZZLELAND_DISPLAY_MODE.
const EnvPrefix = "PUZZLELAND"

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// File is where log lines go. Empty selects the per-user state
	// directory; "-" discards them.
	File string `mapstructure:"file"`
}

// DisplayConfig selects how frames reach the terminal.
type DisplayConfig struct {
	// Mode is "screen" for a full-screen view or "plain" for printed lines.
	Mode  string `mapstructure:"mode"`
	Color bool   `mapstructure:"color"`
}

// GameConfig holds gameplay switches.
type GameConfig struct {
	// AllowCheats lets the C key at the intro prompt unlock every ability.
	AllowCheats bool `mapstructure:"allow_cheats"`
	// Intro shows the welcome text before the first room.
	Intro bool `mapstructure:"intro"`
	// Catalog is an optional .po file replacing the built-in messages.
	Catalog string `mapstructure:"catalog"`
}

// TelemetryConfig holds OpenTelemetry tracing settings. The exporter
// endpoint comes from the standard OTEL_* environment variables.
type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Display   DisplayConfig   `mapstructure:"display"`
	Game      GameConfig      `mapstructure:"game"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateDisplay(c.Display); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Telemetry.Enabled && c.Telemetry.ServiceName == "" {
		errs = append(errs, "telemetry.service_name must not be empty when telemetry is enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	var errs []string
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", l.Format))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateDisplay(d DisplayConfig) error {
	switch d.Mode {
	case "screen", "plain":
		return nil
	}
	return fmt.Errorf("display.mode must be one of [screen, plain], got %q", d.Mode)
}

// Load builds the configuration from defaults, the optional YAML file at
// path and PUZZLELAND_* environment overrides, then validates it.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.file", "")

	v.SetDefault("display.mode", "screen")
	v.SetDefault("display.color", true)

	v.SetDefault("game.allow_cheats", true)
	v.SetDefault("game.intro", true)
	v.SetDefault("game.catalog", "")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "puzzleland")
}
