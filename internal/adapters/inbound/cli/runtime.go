package cli

import (
	"fmt"

	"github.com/respdiff/respdiff/internal/adapters/outbound/config"
	"github.com/respdiff/respdiff/internal/adapters/outbound/logging"
	"github.com/respdiff/respdiff/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// envAPIKey supplies the credential when none is passed on the command line.
const envAPIKey = "DC_API_KEY"

// runtimeFlags are the settings shared by every command that sends requests.
type runtimeFlags struct {
	configPath string
	scheme     string
	timeout    string
	logLevel   string
	requests   string
}

func (f *runtimeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", config.DefaultFileName, "path to the config file")
	cmd.Flags().StringVar(&f.scheme, "scheme", "", "URL scheme, http or https (overrides config)")
	cmd.Flags().StringVar(&f.timeout, "timeout", "", "per-request timeout, 0 disables it (overrides config)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
}

// registerRequests adds --requests for commands that replay descriptor files.
func (f *runtimeFlags) registerRequests(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.requests, "requests", "", "comma-separated JSON request files")
}

// load reads the config file, applies flag overrides and builds the logger.
func (f *runtimeFlags) load() (domain.Config, *zap.Logger, error) {
	cfg, err := config.New().Load(f.configPath)
	if err != nil {
		return domain.Config{}, nil, fmt.Errorf("loading config: %w", err)
	}

	if f.scheme != "" {
		cfg.Scheme = f.scheme
	}
	if f.timeout != "" {
		cfg.Timeout = f.timeout
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, nil, err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return domain.Config{}, nil, fmt.Errorf("creating logger: %w", err)
	}
	return cfg, logger, nil
}
