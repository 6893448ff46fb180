package tui

import (
	"fmt"
	"strings"

	"github.com/respdiff/respdiff/internal/domain"
)

// RenderHistory renders recorded runs oldest first, with the change in DIFF
// count against the previous run of the same set.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	lastDiff := map[string]int{}
	for _, e := range entries {
		hash := e.Revision.ShortCommit()
		if hash == "" {
			hash = "·······"
		}
		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		counts := passStyle.Render("clean")
		if !e.Clean() {
			counts = fmt.Sprintf("%s %s",
				failStyle.Render(fmt.Sprintf("%d diff", e.Summary.Diff)),
				errorTagStyle.Render(fmt.Sprintf("%d errors", e.Summary.Errors)))
		}

		line := fmt.Sprintf("  %s  %s  %s  %s -> %s  %s/%d",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			headerStyle.Render(padRight(e.Set, 6)),
			e.CurrentDomain,
			e.NewDomain,
			counts,
			e.Summary.Total(),
		)

		if prev, ok := lastDiff[e.Set]; ok {
			if d := e.Summary.Diff - prev; d > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", d))
			} else if d < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -d))
			}
		}
		lastDiff[e.Set] = e.Summary.Diff

		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
