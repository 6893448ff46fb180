package compare_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/respdiff/respdiff/internal/domain"
	"github.com/respdiff/respdiff/internal/domain/compare"
	"github.com/stretchr/testify/assert"
)

func TestFormat_JSONIndentsUnderStatusLine(t *testing.T) {
	body := compare.Classify(jsonResponse(`{"version":"1.0","tags":["a"]}`), nil)
	got := compare.Format(body, domain.DefaultMaxOutputChars)
	want := "{\n    \"version\": \"1.0\",\n    \"tags\": [\n      \"a\"\n    ]\n  }"
	assert.Equal(t, want, got)
}

func TestFormat_NonJSONShowsSize(t *testing.T) {
	body := compare.Classify(&domain.Response{ContentType: "text/html", Body: []byte("<html></html>")}, nil)
	assert.Equal(t, "Content-Type: text/html; Size: 13", compare.Format(body, domain.DefaultMaxOutputChars))
}

func TestFormat_InvalidJSONShowsSize(t *testing.T) {
	body := compare.Classify(jsonResponse(`{oops`), nil)
	got := compare.Format(body, domain.DefaultMaxOutputChars)
	assert.Contains(t, got, "invalid JSON")
	assert.Contains(t, got, "Size: 5")
}

func TestFormat_TruncatesLongJSON(t *testing.T) {
	body := compare.Classify(jsonResponse(fmt.Sprintf(`{"k": %q}`, strings.Repeat("x", 1500))), nil)
	full := compare.Format(body, 0)
	got := compare.Format(body, 1000)

	want := full[:1000] + fmt.Sprintf("...<%d chars omitted>", len(full)-1000)
	assert.Equal(t, want, got)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"under budget", "abc", 5, "abc"},
		{"exactly budget", "abcde", 5, "abcde"},
		{"over budget", "abcdefgh", 5, "abcde...<3 chars omitted>"},
		{"no limit", "abcdefgh", 0, "abcdefgh"},
		{"counts characters not bytes", "ééééé", 2, "éé...<3 chars omitted>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compare.Truncate(tt.in, tt.max))
		})
	}
}
