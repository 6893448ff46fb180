package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/respdiff/respdiff/internal/application"
	"github.com/respdiff/respdiff/internal/domain"
	"github.com/respdiff/respdiff/internal/domain/compare"
	"github.com/respdiff/respdiff/internal/domain/endpoints"
)

// registerTools registers all respdiff MCP tools on the given server.
func registerTools(s *server.MCPServer, deps Deps) {
	s.AddTool(
		mcplib.NewTool("respdiff_list_sets",
			mcplib.WithDescription("Returns the built-in endpoint sets with their endpoints, methods and payloads"),
		),
		handleListSets(),
	)

	s.AddTool(
		mcplib.NewTool("respdiff_compare_endpoint",
			mcplib.WithDescription("Send one request to the current and the new domain and classify the pair as SAME, DIFF or ERROR"),
			mcplib.WithString("current_domain", mcplib.Required(), mcplib.Description("Host of the current deployment")),
			mcplib.WithString("new_domain", mcplib.Required(), mcplib.Description("Host of the new deployment")),
			mcplib.WithString("path", mcplib.Required(), mcplib.Description("Request path, e.g. /v2/node")),
			mcplib.WithString("method", mcplib.Description("GET or POST (default: GET)")),
			mcplib.WithString("set", mcplib.Description("Endpoint set whose credential placement to use (default: mixer)")),
			mcplib.WithString("payload", mcplib.Description("JSON object sent as query parameters for GET or as body for POST")),
			mcplib.WithString("api_key", mcplib.Description("API key for both domains (default: server key)")),
			mcplib.WithString("new_api_key", mcplib.Description("API key for the new domain (default: api_key)")),
			mcplib.WithBoolean("anonymous", mcplib.Description("Send the request without any API key")),
		),
		handleCompareEndpoint(deps),
	)

	s.AddTool(
		mcplib.NewTool("respdiff_run_history",
			mcplib.WithDescription("Returns recorded compare runs, oldest first"),
			mcplib.WithString("set", mcplib.Description("Only return runs of this endpoint set")),
			mcplib.WithNumber("limit", mcplib.Description("Only return the last N runs")),
		),
		handleRunHistory(deps),
	)
}

func handleListSets() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		sets, err := allSets()
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(sets)
	}
}

// compareReport is the JSON shape of one comparison.
type compareReport struct {
	Verdict       domain.Verdict `json:"verdict"`
	Method        domain.Method  `json:"method"`
	Endpoint      string         `json:"endpoint"`
	CurrentDomain string         `json:"current_domain"`
	NewDomain     string         `json:"new_domain"`
	CurrentStatus int            `json:"current_status,omitempty"`
	NewStatus     int            `json:"new_status,omitempty"`
	CurrentBody   string         `json:"current_body,omitempty"`
	NewBody       string         `json:"new_body,omitempty"`
	Changes       []string       `json:"changes,omitempty"`
	Error         string         `json:"error,omitempty"`
}

func newCompareReport(r domain.ComparisonResult, maxChars int) compareReport {
	rep := compareReport{
		Verdict:       r.Verdict,
		Method:        r.Method,
		Endpoint:      r.Endpoint,
		CurrentDomain: r.CurrentDomain,
		NewDomain:     r.NewDomain,
	}
	if r.Err != nil {
		rep.Error = r.Err.Error()
		return rep
	}

	rep.CurrentStatus = r.Current.StatusCode
	rep.NewStatus = r.New.StatusCode
	if r.Verdict == domain.VerdictDiff {
		rep.CurrentBody = compare.Format(r.CurrentBody, maxChars)
		rep.NewBody = compare.Format(r.NewBody, maxChars)
		for _, l := range compare.ChangedLines(compare.Format(r.CurrentBody, 0), compare.Format(r.NewBody, 0)) {
			prefix := "+ "
			if l.Op == compare.LineRemoved {
				prefix = "- "
			}
			rep.Changes = append(rep.Changes, prefix+l.Text)
		}
	}
	return rep
}

func handleCompareEndpoint(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		currentDomain, err := request.RequireString("current_domain")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		newDomain, err := request.RequireString("new_domain")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		method, err := domain.ParseMethod(request.GetString("method", string(domain.MethodGet)))
		if err != nil {
			return errorResult(err.Error()), nil
		}

		set, err := endpoints.Lookup(request.GetString("set", "mixer"))
		if err != nil {
			return errorResult(err.Error()), nil
		}
		creds, err := domain.CredentialStrategyFor(set.Family)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var payload map[string]any
		if raw := request.GetString("payload", ""); raw != "" {
			if err := json.Unmarshal([]byte(raw), &payload); err != nil {
				return errorResult(fmt.Sprintf("payload must be a JSON object: %v", err)), nil
			}
		}

		cc := domain.CompareConfig{
			CurrentDomain:  currentDomain,
			NewDomain:      newDomain,
			CurrentKey:     request.GetString("api_key", deps.APIKey),
			NewKey:         request.GetString("new_api_key", ""),
			Credentials:    creds,
			IgnoreFields:   deps.Config.IgnoreFields,
			MaxOutputChars: deps.Config.MaxOutputChars,
		}
		svc, err := application.NewCompareService(deps.Fetcher, cc, deps.Logger)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		useKey := !request.GetBool("anonymous", false)
		r := svc.Compare(ctx, domain.Endpoint(path, payload, method), method, useKey)
		return jsonResult(newCompareReport(r, cc.MaxOutputChars))
	}
}

func handleRunHistory(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		if deps.History == nil {
			return errorResult("run history is not available"), nil
		}
		entries, err := deps.History.Load(deps.HistoryDir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading history failed: %v", err)), nil
		}

		set := request.GetString("set", "")
		limit := request.GetInt("limit", 0)

		out := []domain.RunEntry{}
		for _, e := range entries {
			if set == "" || e.Set == set {
				out = append(out, e)
			}
		}
		if limit > 0 && len(out) > limit {
			out = out[len(out)-limit:]
		}
		return jsonResult(out)
	}
}

func allSets() ([]domain.EndpointSet, error) {
	var sets []domain.EndpointSet
	for _, name := range endpoints.Names() {
		set, err := endpoints.Lookup(name)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
