package compare

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/respdiff/respdiff/internal/domain"
)

// Format renders a body for console output. JSON is indented with two spaces
// and every continuation line is shifted by two more so it nests under the
// status line. The result is cut to maxChars characters; maxChars <= 0 means
// no limit. Non-JSON bodies are summarised by Content-Type and byte size.
func Format(body domain.Body, maxChars int) string {
	switch body.Kind {
	case domain.BodyJSON:
		var buf bytes.Buffer
		if err := json.Indent(&buf, body.Raw, "  ", "  "); err != nil {
			return Truncate(string(body.Raw), maxChars)
		}
		return Truncate(string(bytes.TrimSpace(buf.Bytes())), maxChars)
	case domain.BodyInvalidJSON:
		return fmt.Sprintf("invalid JSON; Content-Type: %s; Size: %d", body.ContentType, len(body.Raw))
	default:
		return fmt.Sprintf("Content-Type: %s; Size: %d", body.ContentType, len(body.Raw))
	}
}

// Truncate cuts s to exactly max characters and notes how many were dropped.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return fmt.Sprintf("%s...<%d chars omitted>", string(runes[:max]), len(runes)-max)
}
