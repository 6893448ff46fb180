package domain

import "fmt"

// ValidationError reports a rejected descriptor or configuration entry.
// Index is -1 when the error is not tied to a list entry.
type ValidationError struct {
	File   string
	Index  int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "is required"
	}
	switch {
	case e.File != "" && e.Index >= 0:
		return fmt.Sprintf("%s: entry %d: field %q %s", e.File, e.Index, e.Field, reason)
	case e.File != "":
		return fmt.Sprintf("%s: field %q %s", e.File, e.Field, reason)
	default:
		return fmt.Sprintf("field %q %s", e.Field, reason)
	}
}
