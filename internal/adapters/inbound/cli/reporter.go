package cli

import (
	"fmt"
	"io"

	"github.com/respdiff/respdiff/internal/adapters/outbound/tui"
	"github.com/respdiff/respdiff/internal/domain"
)

// consoleReporter writes comparator output as soon as each result is ready.
type consoleReporter struct {
	w        io.Writer
	maxChars int
	showDiff bool
}

func (r *consoleReporter) Section(title string) {
	fmt.Fprint(r.w, tui.RenderSection(title))
}

func (r *consoleReporter) Result(res domain.ComparisonResult) {
	fmt.Fprint(r.w, tui.RenderResult(res, r.maxChars, r.showDiff))
}
