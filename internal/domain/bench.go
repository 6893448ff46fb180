package domain

import (
	"errors"
	"sort"
	"time"
)

// BenchOptions configures one latency bench run against a single domain.
type BenchOptions struct {
	Domain     string
	APIKey     string
	APIVersion string
	SkipCache  bool
	WithCache  bool
	Users      int
	Rounds     int
	// Rate is rounds per second per user.
	Rate float64
}

// Validate checks the options before any request is sent.
func (o BenchOptions) Validate() error {
	if o.Domain == "" {
		return errors.New("domain must not be empty")
	}
	if o.APIVersion == "" {
		return errors.New("api version must not be empty")
	}
	if o.Users <= 0 {
		return errors.New("users must be > 0")
	}
	if o.Rounds <= 0 {
		return errors.New("rounds must be > 0")
	}
	if o.Rate <= 0 {
		return errors.New("rate must be > 0")
	}
	if o.SkipCache && o.WithCache {
		return errors.New("skip cache and with cache are mutually exclusive")
	}
	return nil
}

// RequestName is the name a descriptor is reported under in bench results.
func (o BenchOptions) RequestName(d Descriptor) string {
	name := d.TestName + "_" + o.APIVersion
	switch {
	case o.SkipCache:
		name += "_skip_cache"
	case o.WithCache:
		name += "_with_cache"
	}
	return name
}

// BenchStat summarises the latencies recorded for one request name.
type BenchStat struct {
	Name     string        `json:"name"`
	Count    int           `json:"count"`
	Failures int           `json:"failures"`
	Min      time.Duration `json:"min"`
	Max      time.Duration `json:"max"`
	Mean     time.Duration `json:"mean"`
	P50      time.Duration `json:"p50"`
	P95      time.Duration `json:"p95"`
}

// SummarizeLatencies computes latency figures from raw samples. Count is the
// number of samples; callers that also saw transport failures adjust Count
// and Failures themselves.
func SummarizeLatencies(name string, samples []time.Duration) BenchStat {
	stat := BenchStat{Name: name, Count: len(samples)}
	if len(samples) == 0 {
		return stat
	}

	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, s := range sorted {
		total += s
	}
	stat.Min = sorted[0]
	stat.Max = sorted[len(sorted)-1]
	stat.Mean = total / time.Duration(len(sorted))
	stat.P50 = percentile(sorted, 50)
	stat.P95 = percentile(sorted, 95)
	return stat
}

// percentile uses the nearest-rank method on an ascending slice.
func percentile(sorted []time.Duration, p int) time.Duration {
	rank := (p*len(sorted) + 99) / 100
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}
