// Package config loads flashdeck settings from an optional YAML file
// layered under FLASHDECK_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "FLASHDECK_"

// LLM selects the provider used by card generation. API keys are read by
// the llm package from the provider's own environment variables.
type LLM struct {
	Provider string `koanf:"provider" validate:"omitempty,oneof=anthropic openai gemini mock"`
	Model    string `koanf:"model"`
}

// Config is the resolved application configuration.
type Config struct {
	// DataDir holds the database and log file. Empty means the platform
	// default under XDG_DATA_HOME.
	DataDir string `koanf:"data_dir"`
	// Theme is the palette applied at startup. The persisted in-app toggle
	// takes precedence once set.
	Theme string `koanf:"theme" validate:"omitempty,oneof=dark light"`
	LLM   LLM    `koanf:"llm"`
}

func defaults() Config {
	return Config{
		Theme: "dark",
		LLM: LLM{
			Provider: "anthropic",
		},
	}
}

// DefaultPath returns the conventional config file location,
// $XDG_CONFIG_HOME/flashdeck/config.yaml.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "flashdeck", "config.yaml")
}

// Load reads the config file at path (DefaultPath when empty), then applies
// environment overrides. A missing file is not an error; a malformed one is.
// Nested keys use a double underscore in the environment, e.g.
// FLASHDECK_LLM__MODEL for llm.model.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
