package mcp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/respdiff/respdiff/internal/adapters/outbound/history"
	"github.com/respdiff/respdiff/internal/adapters/outbound/httpclient"
	"github.com/respdiff/respdiff/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callTool(t *testing.T, h func(context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	req := mcplib.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return text.Text, res.IsError
}

type keyLog struct {
	mu  sync.Mutex
	key string
}

func (k *keyLog) set(v string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.key = v
}

func (k *keyLog) get() string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.key
}

func host(t *testing.T, body string, seen *keyLog) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			seen.set(r.Header.Get("x-api-key") + r.URL.Query().Get("key"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return strings.TrimPrefix(srv.URL, "http://")
}

func testDeps() Deps {
	return Deps{
		Fetcher: httpclient.New("http", 2*time.Second),
		Config:  domain.DefaultConfig(),
		APIKey:  "server-key",
	}
}

func TestCompareEndpoint_Diff(t *testing.T) {
	seen := &keyLog{}
	a := host(t, `{"v": 1}`, seen)
	b := host(t, `{"v": 2}`, nil)

	out, isErr := callTool(t, handleCompareEndpoint(testDeps()), map[string]any{
		"current_domain": a,
		"new_domain":     b,
		"path":           "/version",
	})
	require.False(t, isErr, out)

	var rep compareReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, domain.VerdictDiff, rep.Verdict)
	assert.Equal(t, domain.MethodGet, rep.Method)
	assert.Equal(t, 200, rep.CurrentStatus)
	assert.Contains(t, rep.NewBody, `"v": 2`)
	assert.NotEmpty(t, rep.Changes)
	assert.Equal(t, "server-key", seen.get())
}

func TestCompareEndpoint_SamePostAnonymous(t *testing.T) {
	seen := &keyLog{}
	a := host(t, `{"v": 1}`, seen)
	b := host(t, `{"v": 1}`, nil)

	out, isErr := callTool(t, handleCompareEndpoint(testDeps()), map[string]any{
		"current_domain": a,
		"new_domain":     b,
		"path":           "/v2/node",
		"method":         "post",
		"payload":        `{"nodes": ["geoId/06"]}`,
		"anonymous":      true,
	})
	require.False(t, isErr, out)

	var rep compareReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, domain.VerdictSame, rep.Verdict)
	assert.Equal(t, domain.MethodPost, rep.Method)
	assert.Empty(t, rep.CurrentBody)
	assert.Empty(t, seen.get())
}

func TestCompareEndpoint_TransportError(t *testing.T) {
	a := host(t, `{}`, nil)

	out, isErr := callTool(t, handleCompareEndpoint(testDeps()), map[string]any{
		"current_domain": a,
		"new_domain":     "127.0.0.1:1",
		"path":           "/version",
	})
	require.False(t, isErr, "an ERROR verdict is a result, not a tool failure")

	var rep compareReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, domain.VerdictError, rep.Verdict)
	assert.Contains(t, rep.Error, "127.0.0.1:1")
}

func TestCompareEndpoint_BadInput(t *testing.T) {
	base := map[string]any{"current_domain": "a", "new_domain": "b", "path": "/version"}
	cases := map[string]map[string]any{
		"missing path":  {"current_domain": "a", "new_domain": "b"},
		"bad method":    {"method": "DELETE"},
		"unknown set":   {"set": "bogus"},
		"payload shape": {"payload": `[1, 2]`},
	}
	for name, extra := range cases {
		args := map[string]any{}
		if name != "missing path" {
			for k, v := range base {
				args[k] = v
			}
		}
		for k, v := range extra {
			args[k] = v
		}
		_, isErr := callTool(t, handleCompareEndpoint(testDeps()), args)
		assert.True(t, isErr, name)
	}
}

func TestListSets(t *testing.T) {
	out, isErr := callTool(t, handleListSets(), nil)
	require.False(t, isErr)

	var sets []domain.EndpointSet
	require.NoError(t, json.Unmarshal([]byte(out), &sets))
	var names []string
	for _, s := range sets {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"mixer", "new", "nl"}, names)
}

func TestRunHistory(t *testing.T) {
	dir := t.TempDir()
	h := history.New()
	require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: "t1", Set: "mixer"}))
	require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: "t2", Set: "nl"}))
	require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: "t3", Set: "mixer"}))

	deps := testDeps()
	deps.History = h
	deps.HistoryDir = dir

	out, isErr := callTool(t, handleRunHistory(deps), map[string]any{"set": "mixer", "limit": float64(1)})
	require.False(t, isErr)

	var entries []domain.RunEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "t3", entries[0].Timestamp)
}

func TestRunHistory_Unavailable(t *testing.T) {
	_, isErr := callTool(t, handleRunHistory(testDeps()), nil)
	assert.True(t, isErr)
}

func TestSetResource(t *testing.T) {
	req := mcplib.ReadResourceRequest{}
	req.Params.URI = "respdiff://sets/nl"
	contents, err := handleSetResource()(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcplib.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "respdiff://sets/nl", text.URI)
	assert.Contains(t, text.Text, "/nl/detect")

	req.Params.URI = "respdiff://sets/bogus"
	_, err = handleSetResource()(context.Background(), req)
	assert.Error(t, err)
}

func TestSetsResource(t *testing.T) {
	contents, err := handleSetsResource()(context.Background(), mcplib.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)
	text, ok := contents[0].(mcplib.TextResourceContents)
	require.True(t, ok)
	assert.Contains(t, text.Text, `"name": "mixer"`)
}
