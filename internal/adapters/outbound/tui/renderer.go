package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/respdiff/respdiff/internal/domain"
	"github.com/respdiff/respdiff/internal/domain/compare"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderSection renders the header printed before each comparator pass.
func RenderSection(title string) string {
	return "\n" + titleStyle.Render(title) + "\n"
}

// RenderResult renders one comparison as console lines. maxChars bounds each
// formatted body of a DIFF; showDiff appends a line diff of the two bodies.
func RenderResult(r domain.ComparisonResult, maxChars int, showDiff bool) string {
	switch r.Verdict {
	case domain.VerdictSame:
		return renderSame(r)
	case domain.VerdictDiff:
		return renderDiff(r, maxChars, showDiff)
	default:
		return fmt.Sprintf("%s %s %s: %v\n", errorTagStyle.Render("ERROR"), r.Method, r.Endpoint, r.Err)
	}
}

func renderSame(r domain.ComparisonResult) string {
	code := r.Status()
	var status string
	switch {
	case code >= 400:
		status = warnStyle.Render(fmt.Sprintf("%d", code))
	case r.EmptyBody():
		status = warnStyle.Render(fmt.Sprintf("%d EMPTY", code))
	default:
		status = fmt.Sprintf("%d", code)
	}
	return fmt.Sprintf("%s %s %s %s\n", passStyle.Render("SAME"), status, r.Method, r.Endpoint)
}

func renderDiff(r domain.ComparisonResult, maxChars int, showDiff bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n", failStyle.Render("DIFF"), r.Method, r.Endpoint)
	fmt.Fprintf(&b, "  Current (%s): %d %s\n", r.CurrentDomain, r.Current.StatusCode, compare.Format(r.CurrentBody, maxChars))
	fmt.Fprintf(&b, "  New (%s): %d %s\n", r.NewDomain, r.New.StatusCode, compare.Format(r.NewBody, maxChars))

	if showDiff {
		lines := compare.ChangedLines(compare.Format(r.CurrentBody, 0), compare.Format(r.NewBody, 0))
		for _, l := range lines {
			switch l.Op {
			case compare.LineRemoved:
				b.WriteString("  " + failStyle.Render("- "+l.Text) + "\n")
			case compare.LineAdded:
				b.WriteString("  " + passStyle.Render("+ "+l.Text) + "\n")
			}
		}
	}
	return b.String()
}

// RenderSummary renders the verdict counts printed at the end of a run.
func RenderSummary(s domain.RunSummary) string {
	var b strings.Builder
	b.WriteString("\n  " + separatorLine + "\n")
	fmt.Fprintf(&b, "  %s  %s  %s  %s\n",
		titleStyle.Render(fmt.Sprintf("%d compared", s.Total())),
		passStyle.Render(fmt.Sprintf("%d same", s.Same)),
		failStyle.Render(fmt.Sprintf("%d diff", s.Diff)),
		errorTagStyle.Render(fmt.Sprintf("%d errors", s.Errors)),
	)
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
