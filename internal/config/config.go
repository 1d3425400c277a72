// SPDX-License-Identifier: MIT
// Package config resolves wgraph CLI settings from three layers, lowest
// priority first:
//
//  1. built-in defaults (Default);
//  2. an optional YAML file;
//  3. WGRAPH_* environment variables.
//
// The merged result is checked with validator struct tags before use.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding file and default values.
const (
	EnvLogLevel     = "WGRAPH_LOG_LEVEL"
	EnvLogFormat    = "WGRAPH_LOG_FORMAT"
	EnvStrictLabels = "WGRAPH_STRICT_LABELS"
	EnvMaxVertices  = "WGRAPH_MAX_VERTICES"
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrInvalidConfig wraps every rejected setting.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the resolved CLI configuration.
type Config struct {
	Log  Log          `yaml:"log"`
	Load LoadSettings `yaml:"load"`
}

// Log selects the logger built by internal/logging.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// LoadSettings tunes how JSON graph documents are read.
type LoadSettings struct {
	// StrictLabels rejects repeated node labels.
	StrictLabels bool `yaml:"strict_labels"`

	// MaxVertices caps the vertex count of one graph; 0 keeps the loader default.
	MaxVertices int `yaml:"max_vertices" validate:"gte=0"`
}

// Default returns warn-level console logging and permissive labels.
func Default() *Config {
	return &Config{
		Log: Log{Level: "warn", Format: FormatConsole},
	}
}

// Load builds a Config from the defaults, the YAML file at path (skipped
// when path is empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		defer f.Close()
		if err = cfg.decodeYAML(f); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decodeYAML overlays r onto cfg. Unknown keys are rejected; an empty
// document changes nothing.
func (c *Config) decodeYAML(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// applyEnv overlays non-empty WGRAPH_* variables read through getenv.
func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := getenv(EnvLogFormat); v != "" {
		c.Log.Format = strings.ToLower(v)
	}
	if v := getenv(EnvStrictLabels); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvStrictLabels, v, err)
		}
		c.Load.StrictLabels = strict
	}
	if v := getenv(EnvMaxVertices); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvMaxVertices, v, err)
		}
		c.Load.MaxVertices = limit
	}

	return nil
}

// Validate checks every field against its allowed values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s (got %q)", fe.Namespace(), fe.Param(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
		}
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
