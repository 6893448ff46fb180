package domain

// Revision is the commit checked out in the directory a run was started from.
type Revision struct {
	Commit string `json:"commit"`
	Branch string `json:"branch,omitempty"`
}

// ShortCommit returns the first seven characters of the commit hash.
func (r Revision) ShortCommit() string {
	if len(r.Commit) > 7 {
		return r.Commit[:7]
	}
	return r.Commit
}

// RunEntry records one completed comparator run.
type RunEntry struct {
	Timestamp     string     `json:"timestamp"`
	Revision      Revision   `json:"revision,omitempty"`
	Set           string     `json:"set"`
	CurrentDomain string     `json:"current_domain"`
	NewDomain     string     `json:"new_domain"`
	Summary       RunSummary `json:"summary"`
}

// Clean reports whether the run had neither DIFF nor ERROR results.
func (e RunEntry) Clean() bool {
	return e.Summary.Diff == 0 && e.Summary.Errors == 0
}
