package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/respdiff/respdiff/internal/domain"
)

const userAgent = "respdiff"

// Client implements domain.Fetcher over net/http.
type Client struct {
	http   *http.Client
	scheme string
}

// New creates a Client that reaches hosts over scheme. A zero timeout leaves
// requests unbounded.
func New(scheme string, timeout time.Duration) *Client {
	return NewWithHTTPClient(scheme, &http.Client{Timeout: timeout})
}

// NewWithHTTPClient wraps an existing http.Client.
func NewWithHTTPClient(scheme string, hc *http.Client) *Client {
	if scheme == "" {
		scheme = "https"
	}
	return &Client{http: hc, scheme: scheme}
}

// URL builds the absolute URL for req on host. Query parameters already in
// the request path are kept verbatim; req.Query is appended after them.
func (c *Client) URL(host string, req *domain.Request) (string, error) {
	u, err := url.Parse(fmt.Sprintf("%s://%s%s", c.scheme, host, req.Path))
	if err != nil {
		return "", fmt.Errorf("building url for %s%s: %w", host, req.Path, err)
	}
	if extra := req.Query.Encode(); extra != "" {
		if u.RawQuery == "" {
			u.RawQuery = extra
		} else {
			u.RawQuery += "&" + extra
		}
	}
	return u.String(), nil
}

// Fetch sends req to host and reads the whole response body.
func (c *Client) Fetch(ctx context.Context, host string, req *domain.Request) (*domain.Response, error) {
	target, err := c.URL(host, req)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if req.JSONBody != nil {
		data, err := json.Marshal(req.JSONBody)
		if err != nil {
			return nil, fmt.Errorf("encoding body for %s: %w", req.Path, err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method), target, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for name, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(name, v)
		}
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			uerr.URL = redact(uerr.URL)
		}
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", host, err)
	}

	return &domain.Response{
		StatusCode:  resp.StatusCode,
		Reason:      reason(resp),
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}

// redact drops the query string so credentials passed as parameters never
// reach console output.
func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if u.RawQuery != "" {
		u.RawQuery = "..."
	}
	return u.String()
}

func reason(resp *http.Response) string {
	r := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if r == "" {
		return http.StatusText(resp.StatusCode)
	}
	return r
}
