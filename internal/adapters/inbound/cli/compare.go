package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/respdiff/respdiff/internal/adapters/outbound/gitinfo"
	"github.com/respdiff/respdiff/internal/adapters/outbound/history"
	"github.com/respdiff/respdiff/internal/adapters/outbound/httpclient"
	"github.com/respdiff/respdiff/internal/adapters/outbound/requests"
	"github.com/respdiff/respdiff/internal/adapters/outbound/tui"
	"github.com/respdiff/respdiff/internal/application"
	"github.com/respdiff/respdiff/internal/domain"
	"github.com/respdiff/respdiff/internal/domain/endpoints"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCompareCmd() *cobra.Command {
	var (
		rt          runtimeFlags
		noAnonymous bool
		showDiff    bool
		record      bool
		historyDir  string
	)

	cmd := &cobra.Command{
		Use:   "compare <set> <current_domain> <new_domain> [api_key] [new_api_key]",
		Short: "Compare responses of two API domains",
		Long: "Send every endpoint of a set to both domains and print SAME, DIFF or ERROR per request pair.\n" +
			"The api_key defaults to $" + envAPIKey + "; new_api_key defaults to api_key.",
		Args: cobra.RangeArgs(3, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := endpoints.Lookup(args[0])
			if err != nil {
				return err
			}

			cfg, logger, err := rt.load()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			creds, err := domain.CredentialStrategyFor(set.Family)
			if err != nil {
				return err
			}

			eps, errorTests := set.Endpoints, set.ErrorTests
			if rt.requests != "" {
				descriptors, err := requests.New().Load(requests.SplitPaths(rt.requests)...)
				if err != nil {
					return err
				}
				eps = make([]domain.EndpointSpec, len(descriptors))
				for i, d := range descriptors {
					eps[i] = d.Endpoint()
				}
				errorTests = nil
			}

			cc := domain.CompareConfig{
				CurrentDomain:  args[1],
				NewDomain:      args[2],
				Credentials:    creds,
				Anonymous:      cfg.Anonymous() && !noAnonymous,
				ShowDiff:       showDiff,
				IgnoreFields:   cfg.IgnoreFields,
				MaxOutputChars: cfg.MaxOutputChars,
			}
			if len(args) > 3 {
				cc.CurrentKey = args[3]
			} else {
				cc.CurrentKey = os.Getenv(envAPIKey)
			}
			if len(args) > 4 {
				cc.NewKey = args[4]
			}
			if cc.CurrentKey == "" {
				logger.Warn("no API key given, credentialed requests are sent without one",
					zap.String("env", envAPIKey))
			}

			svc, err := application.NewCompareService(httpclient.New(cfg.Scheme, cfg.TimeoutDuration()), cc, logger)
			if err != nil {
				return err
			}

			logger.Info("comparing domains",
				zap.String("set", set.Name),
				zap.String("current", cc.CurrentDomain),
				zap.String("new", cc.NewDomain),
				zap.Int("endpoints", len(eps)),
			)

			out := cmd.OutOrStdout()
			reporter := &consoleReporter{w: out, maxChars: cc.MaxOutputChars, showDiff: cc.ShowDiff}
			summary, err := svc.Run(cmd.Context(), eps, errorTests, reporter)
			if err != nil {
				return fmt.Errorf("comparison interrupted: %w", err)
			}
			fmt.Fprint(out, tui.RenderSummary(summary))

			if record {
				entry := domain.RunEntry{
					Timestamp:     time.Now().UTC().Format(time.RFC3339),
					Set:           set.Name,
					CurrentDomain: cc.CurrentDomain,
					NewDomain:     cc.NewDomain,
					Summary:       summary,
				}
				if rev, err := gitinfo.New().Revision(historyDir); err == nil {
					entry.Revision = rev
				} else {
					logger.Debug("run not tied to a commit", zap.Error(err))
				}
				if err := history.New().Save(historyDir, entry); err != nil {
					return fmt.Errorf("recording run: %w", err)
				}
			}
			return nil
		},
	}

	rt.register(cmd)
	rt.registerRequests(cmd)
	cmd.Flags().BoolVar(&noAnonymous, "no-anonymous", false, "skip the pass without API key")
	cmd.Flags().BoolVar(&showDiff, "show-diff", false, "print a line diff under each DIFF")
	cmd.Flags().BoolVar(&record, "record", false, "append the run summary to the run history")
	cmd.Flags().StringVar(&historyDir, "history-dir", ".", "directory holding .respdiff/history")
	return cmd
}
