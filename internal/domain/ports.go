package domain

import "context"

// Fetcher sends a request to a domain and returns the full response.
// Transport failures (connection errors, timeouts, truncated bodies) are
// returned as errors; any HTTP status is a successful fetch.
type Fetcher interface {
	Fetch(ctx context.Context, domain string, req *Request) (*Response, error)
}

// DescriptorLoader reads request descriptor files.
type DescriptorLoader interface {
	Load(paths ...string) ([]Descriptor, error)
}

// ConfigLoader reads tool configuration from a file path.
type ConfigLoader interface {
	Load(path string) (Config, error)
}

// ResultReporter receives comparator output as it is produced.
type ResultReporter interface {
	Section(title string)
	Result(r ComparisonResult)
}

// RunHistory persists comparator run summaries under a directory.
type RunHistory interface {
	Save(dir string, entry RunEntry) error
	Load(dir string) ([]RunEntry, error)
}

// RevisionReader identifies the source revision a run was made from.
type RevisionReader interface {
	Revision(dir string) (Revision, error)
}
