package application

import (
	"context"
	"fmt"

	"github.com/respdiff/respdiff/internal/domain"
	"github.com/respdiff/respdiff/internal/domain/compare"
	"go.uber.org/zap"
)

const (
	sectionWithKey    = "With API key"
	sectionWithoutKey = "Without API key"
	sectionErrorTests = "Error tests"
)

// CompareService drives the comparator:
// build request -> attach credential -> fetch both domains -> classify -> verdict.
// Everything runs sequentially so output order matches input order.
type CompareService struct {
	fetcher domain.Fetcher
	cfg     domain.CompareConfig
	logger  *zap.Logger
}

func NewCompareService(fetcher domain.Fetcher, cfg domain.CompareConfig, logger *zap.Logger) (*CompareService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid compare config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CompareService{fetcher: fetcher, cfg: cfg, logger: logger}, nil
}

// Run compares every endpoint with credentials, then without (when the
// anonymous pass is enabled), then runs errorTests with credentials.
// Individual failures never stop the run; only context cancellation does.
func (s *CompareService) Run(ctx context.Context, eps, errorTests []domain.EndpointSpec, reporter domain.ResultReporter) (domain.RunSummary, error) {
	var summary domain.RunSummary

	reporter.Section(sectionWithKey)
	if err := s.runPass(ctx, eps, true, reporter, &summary); err != nil {
		return summary, err
	}

	if s.cfg.Anonymous {
		reporter.Section(sectionWithoutKey)
		if err := s.runPass(ctx, eps, false, reporter, &summary); err != nil {
			return summary, err
		}
	}

	if len(errorTests) > 0 {
		reporter.Section(sectionErrorTests)
		if err := s.runPass(ctx, errorTests, true, reporter, &summary); err != nil {
			return summary, err
		}
	}

	return summary, nil
}

func (s *CompareService) runPass(ctx context.Context, eps []domain.EndpointSpec, useKey bool, reporter domain.ResultReporter, summary *domain.RunSummary) error {
	for _, ep := range eps {
		for _, method := range ep.Methods {
			if err := ctx.Err(); err != nil {
				return err
			}
			r := s.Compare(ctx, ep, method, useKey)
			summary.Add(r.Verdict)
			reporter.Result(r)
		}
	}
	return nil
}

// Compare sends one request pair and classifies the outcome. Transport
// failures on either side produce a VerdictError result, never an error.
func (s *CompareService) Compare(ctx context.Context, ep domain.EndpointSpec, method domain.Method, useKey bool) domain.ComparisonResult {
	result := domain.ComparisonResult{
		Endpoint:      ep.Path,
		Method:        method,
		CurrentDomain: s.cfg.CurrentDomain,
		NewDomain:     s.cfg.NewDomain,
	}

	currentKey, newKey := "", ""
	if useKey {
		currentKey, newKey = s.cfg.CurrentKey, s.cfg.NewDomainKey()
	}

	current, err := s.fetch(ctx, s.cfg.CurrentDomain, ep, method, currentKey)
	if err != nil {
		return s.failed(result, err)
	}
	next, err := s.fetch(ctx, s.cfg.NewDomain, ep, method, newKey)
	if err != nil {
		return s.failed(result, err)
	}

	result.Current = current
	result.New = next
	result.CurrentBody = compare.Classify(current, s.cfg.IgnoreFields)
	result.NewBody = compare.Classify(next, s.cfg.IgnoreFields)

	if !compare.Equal(result.CurrentBody, result.NewBody) {
		result.Verdict = domain.VerdictDiff
		s.logger.Debug("responses differ",
			zap.String("method", string(method)),
			zap.String("endpoint", ep.Path),
			zap.Int("current_status", current.StatusCode),
			zap.Int("new_status", next.StatusCode),
		)
		return result
	}

	result.Verdict = domain.VerdictSame
	s.logger.Info("responses match",
		zap.String("method", string(method)),
		zap.String("endpoint", ep.Path),
		zap.String("reason", current.Reason),
	)
	if current.StatusCode < 400 {
		s.logger.Debug("response body",
			zap.String("endpoint", ep.Path),
			zap.String("kind", result.CurrentBody.Kind.String()),
			zap.ByteString("body", result.CurrentBody.Raw),
		)
	}
	return result
}

func (s *CompareService) fetch(ctx context.Context, host string, ep domain.EndpointSpec, method domain.Method, key string) (*domain.Response, error) {
	req, err := domain.NewRequest(method, ep.Path, ep.Payload)
	if err != nil {
		return nil, err
	}
	s.cfg.Credentials.Attach(req, key)

	resp, err := s.fetcher.Fetch(ctx, host, req)
	if err != nil {
		return nil, fmt.Errorf("fetching from %s: %w", host, err)
	}
	return resp, nil
}

func (s *CompareService) failed(result domain.ComparisonResult, err error) domain.ComparisonResult {
	result.Verdict = domain.VerdictError
	result.Err = err
	s.logger.Debug("comparison failed",
		zap.String("method", string(result.Method)),
		zap.String("endpoint", result.Endpoint),
		zap.Error(err),
	)
	return result
}
