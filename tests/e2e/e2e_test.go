package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "respdiff-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "respdiff")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/respdiff")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func testdataPath(parts ...string) string {
	abs, _ := filepath.Abs(filepath.Join(append([]string{"../../testdata"}, parts...)...))
	return abs
}

func run(t *testing.T, env []string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), env...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// deployment serves the same data as the other, except for elapsed time and
// whatever drift says differs.
func deployment(t *testing.T, drift bool) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") == "" && r.Header.Get("x-api-key") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"message": "missing key"}`)
			return
		}
		body := map[string]any{
			"path":  r.URL.Path,
			"debug": map[string]any{"elapsed_ms": len(r.URL.Path)},
		}
		if drift && r.URL.Path == "/version" {
			body["release"] = "next"
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return strings.TrimPrefix(srv.URL, "http://")
}

// --- Compare Tests ---

func TestE2E_Compare(t *testing.T) {
	current, next := deployment(t, false), deployment(t, true)

	out, code := run(t, []string{"DC_API_KEY=k1"}, "compare", "mixer", current, next,
		"--config", testdataPath("respdiff.yaml"),
		"--requests", testdataPath("requests", "smoke.json"))
	assert.Equal(t, 0, code, out)

	assert.Contains(t, out, "DIFF GET /version")
	assert.Contains(t, out, "SAME 200 GET /v1/node/property-values")
	assert.Contains(t, out, "SAME 200 POST /v2/observation")
	assert.Contains(t, out, "Without API key")
	assert.Contains(t, out, "SAME 401 GET /version")
	assert.Contains(t, out, "8 compared")
}

func TestE2E_CompareUnknownSet(t *testing.T) {
	out, code := run(t, nil, "compare", "bogus", "a.example.org", "b.example.org")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "invalid endpoint set")
}

// --- Endpoints Tests ---

func TestE2E_Endpoints(t *testing.T) {
	out, code := run(t, nil, "endpoints", "mixer")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "/version")
}

// --- Version Test ---

func TestE2E_Version(t *testing.T) {
	out, code := run(t, nil, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "respdiff")
}
