package domain

import "errors"

// CompareConfig is everything the comparator needs, fixed at construction.
type CompareConfig struct {
	CurrentDomain  string
	NewDomain      string
	CurrentKey     string
	NewKey         string
	Credentials    CredentialStrategy
	Anonymous      bool
	ShowDiff       bool
	IgnoreFields   []string
	MaxOutputChars int
}

// Validate checks that both domains are set and a strategy is chosen.
func (c CompareConfig) Validate() error {
	if c.CurrentDomain == "" {
		return errors.New("current domain must not be empty")
	}
	if c.NewDomain == "" {
		return errors.New("new domain must not be empty")
	}
	if c.Credentials == nil {
		return errors.New("credential strategy must be set")
	}
	return nil
}

// NewDomainKey returns the credential for the new domain, which defaults to
// the current domain's key.
func (c CompareConfig) NewDomainKey() string {
	if c.NewKey != "" {
		return c.NewKey
	}
	return c.CurrentKey
}

// EndpointSet is a named list of endpoints plus the expected-error endpoints
// that are only run with credentials.
type EndpointSet struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Family      Family         `json:"family"`
	Endpoints   []EndpointSpec `json:"endpoints"`
	ErrorTests  []EndpointSpec `json:"error_tests,omitempty"`
}
