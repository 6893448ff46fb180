package tui_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/respdiff/respdiff/internal/adapters/outbound/tui"
	"github.com/respdiff/respdiff/internal/domain"
	"github.com/respdiff/respdiff/internal/domain/compare"
	"github.com/stretchr/testify/assert"
)

func jsonResp(code int, body string) *domain.Response {
	return &domain.Response{StatusCode: code, ContentType: "application/json", Body: []byte(body)}
}

func result(verdict domain.Verdict, current, next *domain.Response) domain.ComparisonResult {
	r := domain.ComparisonResult{
		Endpoint:      "/version",
		Method:        domain.MethodGet,
		CurrentDomain: "api.example.org",
		NewDomain:     "api2.example.org",
		Current:       current,
		New:           next,
		Verdict:       verdict,
	}
	if current != nil {
		r.CurrentBody = compare.Classify(current, nil)
	}
	if next != nil {
		r.NewBody = compare.Classify(next, nil)
	}
	return r
}

func TestRenderResult_Same(t *testing.T) {
	r := result(domain.VerdictSame, jsonResp(200, `{"version":"1.0"}`), jsonResp(200, `{"version":"1.0"}`))
	assert.Equal(t, "SAME 200 GET /version\n", tui.RenderResult(r, 1000, false))
}

func TestRenderResult_SameEmptyBody(t *testing.T) {
	r := result(domain.VerdictSame, jsonResp(204, ""), jsonResp(204, ""))
	assert.Equal(t, "SAME 204 EMPTY GET /version\n", tui.RenderResult(r, 1000, false))
}

func TestRenderResult_SameErrorStatus(t *testing.T) {
	r := result(domain.VerdictSame, jsonResp(404, `{"code":5}`), jsonResp(404, `{"code":5}`))
	assert.Equal(t, "SAME 404 GET /version\n", tui.RenderResult(r, 1000, false))
}

func TestRenderResult_Diff(t *testing.T) {
	r := result(domain.VerdictDiff, jsonResp(200, `{"version":"1.0"}`), jsonResp(500, `{"version":"2.0"}`))
	out := tui.RenderResult(r, 1000, false)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Equal(t, "DIFF GET /version", lines[0])
	assert.Contains(t, out, "  Current (api.example.org): 200 {")
	assert.Contains(t, out, "  New (api2.example.org): 500 {")
	assert.Contains(t, out, `"version": "1.0"`)
	assert.Contains(t, out, `"version": "2.0"`)
}

func TestRenderResult_DiffNonJSONShowsSize(t *testing.T) {
	html := &domain.Response{StatusCode: 200, ContentType: "text/html", Body: []byte("<html>a</html>")}
	r := result(domain.VerdictDiff, html, jsonResp(200, `{}`))
	out := tui.RenderResult(r, 1000, false)
	assert.Contains(t, out, "Current (api.example.org): 200 Content-Type: text/html; Size: 14")
}

func TestRenderResult_DiffTruncates(t *testing.T) {
	long := fmt.Sprintf(`{"k": %q}`, strings.Repeat("x", 200))
	r := result(domain.VerdictDiff, jsonResp(200, long), jsonResp(200, `{}`))
	out := tui.RenderResult(r, 50, false)
	assert.Regexp(t, `(?s)Current \(api\.example\.org\): 200 .{50}\.\.\.<\d+ chars omitted>`, out)
}

func TestRenderResult_DiffWithLineDiff(t *testing.T) {
	r := result(domain.VerdictDiff, jsonResp(200, `{"version":"1.0"}`), jsonResp(200, `{"version":"2.0"}`))
	out := tui.RenderResult(r, 1000, true)
	assert.Contains(t, out, `- `)
	assert.Contains(t, out, `+ `)
	assert.Contains(t, out, `"version": "2.0"`)
}

func TestRenderResult_Error(t *testing.T) {
	r := domain.ComparisonResult{
		Endpoint: "/version",
		Method:   domain.MethodPost,
		Verdict:  domain.VerdictError,
		Err:      errors.New("dial tcp: connection refused"),
	}
	assert.Equal(t, "ERROR POST /version: dial tcp: connection refused\n", tui.RenderResult(r, 1000, false))
}

func TestRenderSection(t *testing.T) {
	assert.Equal(t, "\nWith API key\n", tui.RenderSection("With API key"))
}

func TestRenderSummary(t *testing.T) {
	out := tui.RenderSummary(domain.RunSummary{Same: 3, Diff: 1, Errors: 2})
	assert.Contains(t, out, "6 compared")
	assert.Contains(t, out, "3 same")
	assert.Contains(t, out, "1 diff")
	assert.Contains(t, out, "2 errors")
}
