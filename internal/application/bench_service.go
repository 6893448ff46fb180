package application

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/respdiff/respdiff/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const skipCacheHeader = "X-Skip-Cache"

// BenchService replays descriptors against one domain from concurrent users
// and summarises latencies per request name.
type BenchService struct {
	fetcher domain.Fetcher
	logger  *zap.Logger
	now     func() time.Time
}

func NewBenchService(fetcher domain.Fetcher, logger *zap.Logger) *BenchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BenchService{fetcher: fetcher, logger: logger, now: time.Now}
}

type benchTarget struct {
	name string
	path string
	body map[string]any
}

// Run blocks until every user finished its rounds or ctx is cancelled.
// Request failures are counted, not returned.
func (s *BenchService) Run(ctx context.Context, opts domain.BenchOptions, descriptors []domain.Descriptor) ([]domain.BenchStat, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bench options: %w", err)
	}

	creds, err := domain.CredentialStrategyFor(domain.FamilyBench)
	if err != nil {
		return nil, err
	}

	var targets []benchTarget
	for _, d := range descriptors {
		if !d.SupportsVersion(opts.APIVersion) {
			s.logger.Debug("skipping request for api version",
				zap.String("test_name", d.TestName),
				zap.String("api_version", opts.APIVersion),
			)
			continue
		}
		targets = append(targets, benchTarget{
			name: opts.RequestName(d),
			path: "/" + opts.APIVersion + d.Path,
			body: d.Body(),
		})
	}
	if len(targets) == 0 {
		s.logger.Warn("no requests to bench", zap.String("api_version", opts.APIVersion))
		return nil, nil
	}

	s.logger.Info("starting bench",
		zap.String("domain", opts.Domain),
		zap.Int("requests", len(targets)),
		zap.Int("users", opts.Users),
		zap.Int("rounds", opts.Rounds),
		zap.Float64("rate", opts.Rate),
	)

	rec := newLatencyRecorder()
	g, gctx := errgroup.WithContext(ctx)
	for u := 0; u < opts.Users; u++ {
		g.Go(func() error {
			limiter := rate.NewLimiter(rate.Limit(opts.Rate), 1)
			for round := 0; round < opts.Rounds; round++ {
				if err := limiter.Wait(gctx); err != nil {
					return err
				}
				for _, t := range targets {
					if err := gctx.Err(); err != nil {
						return err
					}
					s.send(gctx, opts, creds, t, rec)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return rec.stats(), err
	}
	return rec.stats(), nil
}

func (s *BenchService) send(ctx context.Context, opts domain.BenchOptions, creds domain.CredentialStrategy, t benchTarget, rec *latencyRecorder) {
	req, err := domain.NewRequest(domain.MethodPost, t.path, t.body)
	if err != nil {
		rec.fail(t.name)
		return
	}
	creds.Attach(req, opts.APIKey)
	if opts.SkipCache {
		req.Header.Set(skipCacheHeader, "true")
	}

	start := s.now()
	resp, err := s.fetcher.Fetch(ctx, opts.Domain, req)
	elapsed := s.now().Sub(start)
	if err != nil {
		s.logger.Debug("bench request failed", zap.String("name", t.name), zap.Error(err))
		rec.fail(t.name)
		return
	}
	rec.record(t.name, elapsed, resp.StatusCode >= 400)
}

type latencyRecorder struct {
	mu       sync.Mutex
	samples  map[string][]time.Duration
	counts   map[string]int
	failures map[string]int
}

func newLatencyRecorder() *latencyRecorder {
	return &latencyRecorder{
		samples:  make(map[string][]time.Duration),
		counts:   make(map[string]int),
		failures: make(map[string]int),
	}
}

func (r *latencyRecorder) record(name string, d time.Duration, failed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples[name] = append(r.samples[name], d)
	r.counts[name]++
	if failed {
		r.failures[name]++
	}
}

// fail records a request that never produced a response.
func (r *latencyRecorder) fail(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[name]++
	r.failures[name]++
}

func (r *latencyRecorder) stats() []domain.BenchStat {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.BenchStat, 0, len(r.counts))
	for name, n := range r.counts {
		stat := domain.SummarizeLatencies(name, r.samples[name])
		stat.Count = n
		stat.Failures = r.failures[name]
		out = append(out, stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
