package domain

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Method is an HTTP method supported by the comparator.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// ParseMethod normalizes s and reports an error for anything but GET or POST.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToUpper(strings.TrimSpace(s))); m {
	case MethodGet, MethodPost:
		return m, nil
	default:
		return "", fmt.Errorf("invalid method %q (use GET or POST)", s)
	}
}

// EndpointSpec describes one endpoint to drive through the comparator.
// A bare path is an EndpointSpec with Methods defaulted to GET and no payload.
type EndpointSpec struct {
	Name    string         `json:"test_name,omitempty"`
	Path    string         `json:"path"`
	Methods []Method       `json:"methods"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Endpoint builds an EndpointSpec, defaulting Methods to GET when none are given.
func Endpoint(path string, payload map[string]any, methods ...Method) EndpointSpec {
	if len(methods) == 0 {
		methods = []Method{MethodGet}
	}
	return EndpointSpec{Path: path, Methods: methods, Payload: payload}
}

// Label returns the name of the endpoint, falling back to its path.
func (e EndpointSpec) Label() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Path
}

// Request is a transport-neutral outgoing request. Credential strategies
// mutate Query and Header before it is sent.
type Request struct {
	Method   Method
	Path     string
	Query    url.Values
	Header   http.Header
	JSONBody any
}

// NewRequest maps an endpoint payload onto a request: GET payloads become
// query parameters, POST payloads become the JSON body.
func NewRequest(method Method, path string, payload map[string]any) (*Request, error) {
	req := &Request{
		Method: method,
		Path:   path,
		Query:  url.Values{},
		Header: http.Header{},
	}

	switch method {
	case MethodGet:
		q, err := QueryFromPayload(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding query for %s: %w", path, err)
		}
		req.Query = q
	case MethodPost:
		if payload != nil {
			req.JSONBody = payload
		}
	default:
		return nil, fmt.Errorf("invalid method %q (use GET or POST)", method)
	}

	return req, nil
}

// Response is what a Fetcher returns for a completed exchange.
type Response struct {
	StatusCode  int
	Reason      string
	ContentType string
	Body        []byte
}

// Verdict classifies a compared request pair.
type Verdict string

const (
	VerdictSame  Verdict = "SAME"
	VerdictDiff  Verdict = "DIFF"
	VerdictError Verdict = "ERROR"
)

// ComparisonResult is produced per request pair, rendered and then dropped.
type ComparisonResult struct {
	Endpoint      string
	Method        Method
	CurrentDomain string
	NewDomain     string
	Current       *Response
	New           *Response
	CurrentBody   Body
	NewBody       Body
	Verdict       Verdict
	Err           error
}

// Status returns the shared status code of a SAME result.
func (r ComparisonResult) Status() int {
	if r.Current == nil {
		return 0
	}
	return r.Current.StatusCode
}

// EmptyBody reports whether a SAME result carried no body bytes.
func (r ComparisonResult) EmptyBody() bool {
	return r.Current != nil && len(r.Current.Body) == 0
}

// RunSummary counts verdicts across a whole comparator run.
type RunSummary struct {
	Same   int `json:"same"`
	Diff   int `json:"diff"`
	Errors int `json:"errors"`
}

// Add records one verdict.
func (s *RunSummary) Add(v Verdict) {
	switch v {
	case VerdictSame:
		s.Same++
	case VerdictDiff:
		s.Diff++
	default:
		s.Errors++
	}
}

// Total returns the number of compared pairs.
func (s RunSummary) Total() int { return s.Same + s.Diff + s.Errors }
