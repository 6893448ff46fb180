package domain

import (
	"fmt"
	"time"
)

// DefaultMaxOutputChars is how much of a formatted body is printed for a DIFF.
const DefaultMaxOutputChars = 1000

// ValidLogLevels enumerates the accepted log_level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidSchemes enumerates the accepted URL schemes.
var ValidSchemes = []string{"http", "https"}

// Config holds tool configuration loaded from .respdiff.yaml.
// Zero values mean "not set" and are filled from DefaultConfig.
type Config struct {
	Timeout        string      `yaml:"timeout"          json:"timeout,omitempty"`
	Scheme         string      `yaml:"scheme"           json:"scheme,omitempty"`
	MaxOutputChars int         `yaml:"max_output_chars" json:"max_output_chars,omitempty"`
	IgnoreFields   []string    `yaml:"ignore_fields"    json:"ignore_fields,omitempty"`
	LogLevel       string      `yaml:"log_level"        json:"log_level,omitempty"`
	AnonymousPass  *bool       `yaml:"anonymous_pass"   json:"anonymous_pass,omitempty"`
	Bench          BenchConfig `yaml:"bench"            json:"bench,omitempty"`
}

// BenchConfig tunes the latency bench.
type BenchConfig struct {
	Users  int     `yaml:"users"  json:"users,omitempty"`
	Rounds int     `yaml:"rounds" json:"rounds,omitempty"`
	Rate   float64 `yaml:"rate"   json:"rate,omitempty"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	anonymous := true
	return Config{
		Timeout:        "60s",
		Scheme:         "https",
		MaxOutputChars: DefaultMaxOutputChars,
		LogLevel:       "warn",
		AnonymousPass:  &anonymous,
		Bench: BenchConfig{
			Users:  1,
			Rounds: 1,
			Rate:   1,
		},
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return &ValidationError{Index: -1, Field: "timeout", Reason: fmt.Sprintf("is not a duration (%v)", err)}
		}
		if d < 0 {
			return &ValidationError{Index: -1, Field: "timeout", Reason: "must not be negative"}
		}
	}

	if c.Scheme != "" && !contains(ValidSchemes, c.Scheme) {
		return &ValidationError{Index: -1, Field: "scheme", Reason: fmt.Sprintf("has unknown value %q (valid: http, https)", c.Scheme)}
	}

	if c.MaxOutputChars < 0 {
		return &ValidationError{Index: -1, Field: "max_output_chars", Reason: fmt.Sprintf("must be >= 0 (got %d)", c.MaxOutputChars)}
	}

	if c.LogLevel != "" && !contains(ValidLogLevels, c.LogLevel) {
		return &ValidationError{Index: -1, Field: "log_level", Reason: fmt.Sprintf("has unknown value %q (valid: debug, info, warn, error)", c.LogLevel)}
	}

	for i, f := range c.IgnoreFields {
		if f == "" {
			return &ValidationError{Index: -1, Field: fmt.Sprintf("ignore_fields[%d]", i), Reason: "must not be empty"}
		}
	}

	if c.Bench.Users < 0 {
		return &ValidationError{Index: -1, Field: "bench.users", Reason: fmt.Sprintf("must be >= 0 (got %d)", c.Bench.Users)}
	}
	if c.Bench.Rounds < 0 {
		return &ValidationError{Index: -1, Field: "bench.rounds", Reason: fmt.Sprintf("must be >= 0 (got %d)", c.Bench.Rounds)}
	}
	if c.Bench.Rate < 0 {
		return &ValidationError{Index: -1, Field: "bench.rate", Reason: fmt.Sprintf("must be >= 0 (got %.2f)", c.Bench.Rate)}
	}

	return nil
}

// TimeoutDuration returns the parsed request timeout; zero disables it.
func (c Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Anonymous reports whether the comparator should also run without credentials.
func (c Config) Anonymous() bool {
	return c.AnonymousPass == nil || *c.AnonymousPass
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
