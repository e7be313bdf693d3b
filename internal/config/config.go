// Package config loads the ambient settings of the reorganizer from the environment.
// Paths are deliberately not part of it.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/n2code/reorganizer/internal/logging"
)

const (
	VerbosityDefault = "default"
	VerbosityVerbose = "verbose"
	VerbosityQuiet   = "quiet"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings read from REORGANIZER_* variables. The defaults are applied by Parse.
type Config struct {
	LogLevel  string `env:"REORGANIZER_LOG_LEVEL" envDefault:"warn"`
	Verbosity string `env:"REORGANIZER_VERBOSITY" envDefault:"default"`
	Color     string `env:"REORGANIZER_COLOR" envDefault:"auto"`
}

// Parse loads the configuration from the process environment.
func Parse() (Config, error) {
	return parse(env.Options{})
}

// ParseFrom loads the configuration from the given variables instead of the process environment.
// A nil map is treated as an empty environment.
func ParseFrom(environment map[string]string) (Config, error) {
	if environment == nil {
		environment = map[string]string{}
	}
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Verbosity = strings.ToLower(strings.TrimSpace(cfg.Verbosity))
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !logging.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("REORGANIZER_LOG_LEVEL %q is invalid, permitted values are: %s", c.LogLevel, strings.Join(logging.Levels, ", "))
	}
	switch c.Verbosity {
	case VerbosityDefault, VerbosityVerbose, VerbosityQuiet:
	default:
		return fmt.Errorf("REORGANIZER_VERBOSITY %q is invalid, permitted values are: %s, %s, %s", c.Verbosity, VerbosityDefault, VerbosityVerbose, VerbosityQuiet)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("REORGANIZER_COLOR %q is invalid, permitted values are: %s, %s, %s", c.Color, ColorAuto, ColorAlways, ColorNever)
	}
	return nil
}

// UseColors decides whether output is colored given whether stdout is a terminal.
func (c Config) UseColors(stdoutIsTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return stdoutIsTerminal
	}
}
