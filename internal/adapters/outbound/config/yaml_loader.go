package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/respdiff/respdiff/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is read from the working directory when --config is not given.
const DefaultFileName = ".respdiff.yaml"

// EnvLogLevel overrides log_level from the file when set.
const EnvLogLevel = "RESPDIFF_LOG_LEVEL"

// YAMLLoader implements domain.ConfigLoader by reading a YAML file.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads the config at path.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(path string) (domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := domain.DefaultConfig()
			applyEnvOverrides(&cfg)
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	// Validate before merging so typos in the raw file are reported.
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", path, err)
	}

	cfg = mergeConfig(domain.DefaultConfig(), cfg)
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// mergeConfig overlays explicit values on top of the defaults.
// Explicit (non-zero) values always win.
func mergeConfig(base, override domain.Config) domain.Config {
	result := base

	if override.Timeout != "" {
		result.Timeout = override.Timeout
	}
	if override.Scheme != "" {
		result.Scheme = override.Scheme
	}
	if override.MaxOutputChars > 0 {
		result.MaxOutputChars = override.MaxOutputChars
	}
	if len(override.IgnoreFields) > 0 {
		result.IgnoreFields = override.IgnoreFields
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.AnonymousPass != nil {
		result.AnonymousPass = override.AnonymousPass
	}
	if override.Bench.Users > 0 {
		result.Bench.Users = override.Bench.Users
	}
	if override.Bench.Rounds > 0 {
		result.Bench.Rounds = override.Bench.Rounds
	}
	if override.Bench.Rate > 0 {
		result.Bench.Rate = override.Bench.Rate
	}

	return result
}

func applyEnvOverrides(cfg *domain.Config) {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.LogLevel = lvl
	}
}
