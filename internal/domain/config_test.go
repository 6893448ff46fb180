package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/respdiff/respdiff/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := domain.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 60*time.Second, cfg.TimeoutDuration())
	assert.Equal(t, domain.DefaultMaxOutputChars, cfg.MaxOutputChars)
	assert.True(t, cfg.Anonymous())
}

func TestConfig_ZeroValueIsValid(t *testing.T) {
	assert.NoError(t, domain.Config{}.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       domain.Config
		wantField string
	}{
		{"bad timeout", domain.Config{Timeout: "soon"}, "timeout"},
		{"negative timeout", domain.Config{Timeout: "-1s"}, "timeout"},
		{"bad scheme", domain.Config{Scheme: "ftp"}, "scheme"},
		{"negative max chars", domain.Config{MaxOutputChars: -1}, "max_output_chars"},
		{"bad log level", domain.Config{LogLevel: "verbose"}, "log_level"},
		{"empty ignore field", domain.Config{IgnoreFields: []string{"ok", ""}}, "ignore_fields[1]"},
		{"negative users", domain.Config{Bench: domain.BenchConfig{Users: -2}}, "bench.users"},
		{"negative rounds", domain.Config{Bench: domain.BenchConfig{Rounds: -1}}, "bench.rounds"},
		{"negative rate", domain.Config{Bench: domain.BenchConfig{Rate: -0.5}}, "bench.rate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestConfig_TimeoutZeroDisables(t *testing.T) {
	cfg := domain.Config{Timeout: "0"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, time.Duration(0), cfg.TimeoutDuration())
}

func TestConfig_AnonymousPassCanBeDisabled(t *testing.T) {
	off := false
	cfg := domain.Config{AnonymousPass: &off}
	assert.False(t, cfg.Anonymous())
}

func TestCompareConfig_Validate(t *testing.T) {
	strategy := domain.QueryParam{Name: "key"}
	assert.Error(t, domain.CompareConfig{NewDomain: "b", Credentials: strategy}.Validate())
	assert.Error(t, domain.CompareConfig{CurrentDomain: "a", Credentials: strategy}.Validate())
	assert.Error(t, domain.CompareConfig{CurrentDomain: "a", NewDomain: "b"}.Validate())
	assert.NoError(t, domain.CompareConfig{CurrentDomain: "a", NewDomain: "b", Credentials: strategy}.Validate())
}

func TestCompareConfig_NewDomainKeyDefaultsToCurrent(t *testing.T) {
	cfg := domain.CompareConfig{CurrentKey: "k1"}
	assert.Equal(t, "k1", cfg.NewDomainKey())
	cfg.NewKey = "k2"
	assert.Equal(t, "k2", cfg.NewDomainKey())
}
