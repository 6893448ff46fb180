package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/respdiff/respdiff/internal/adapters/outbound/httpclient"
	"github.com/respdiff/respdiff/internal/adapters/outbound/requests"
	"github.com/respdiff/respdiff/internal/adapters/outbound/tui"
	"github.com/respdiff/respdiff/internal/application"
	"github.com/respdiff/respdiff/internal/domain"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	var (
		rt         runtimeFlags
		apiKey     string
		apiVersion string
		skipCache  bool
		withCache  bool
		users      int
		rounds     int
		rateFlag   float64
	)

	cmd := &cobra.Command{
		Use:   "bench <domain>",
		Short: "Measure request latency against one domain",
		Long: "Replay the requests from --requests files as POST /<api-version><path> from concurrent users " +
			"and print latency statistics per request.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rt.requests == "" {
				return errors.New("--requests is required")
			}

			cfg, logger, err := rt.load()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			descriptors, err := requests.New().Load(requests.SplitPaths(rt.requests)...)
			if err != nil {
				return err
			}

			opts := domain.BenchOptions{
				Domain:     args[0],
				APIKey:     apiKey,
				APIVersion: apiVersion,
				SkipCache:  skipCache,
				WithCache:  withCache,
				Users:      cfg.Bench.Users,
				Rounds:     cfg.Bench.Rounds,
				Rate:       cfg.Bench.Rate,
			}
			if opts.APIKey == "" {
				opts.APIKey = os.Getenv(envAPIKey)
			}
			if cmd.Flags().Changed("users") {
				opts.Users = users
			}
			if cmd.Flags().Changed("rounds") {
				opts.Rounds = rounds
			}
			if cmd.Flags().Changed("rate") {
				opts.Rate = rateFlag
			}

			svc := application.NewBenchService(httpclient.New(cfg.Scheme, cfg.TimeoutDuration()), logger)
			stats, err := svc.Run(cmd.Context(), opts, descriptors)
			if err != nil {
				return fmt.Errorf("bench failed: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderBench(opts, stats))
			return nil
		},
	}

	rt.register(cmd)
	rt.registerRequests(cmd)
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key (default $"+envAPIKey+")")
	cmd.Flags().StringVar(&apiVersion, "api-version", "v2", "API version prefix for every request path")
	cmd.Flags().BoolVar(&skipCache, "skip-cache", false, "send X-Skip-Cache: true")
	cmd.Flags().BoolVar(&withCache, "with-cache", false, "report names with a _with_cache suffix for cache-warm runs")
	cmd.MarkFlagsMutuallyExclusive("skip-cache", "with-cache")
	cmd.Flags().IntVar(&users, "users", 1, "concurrent users (overrides config)")
	cmd.Flags().IntVar(&rounds, "rounds", 1, "rounds per user (overrides config)")
	cmd.Flags().Float64Var(&rateFlag, "rate", 1, "rounds per second per user (overrides config)")
	return cmd
}
