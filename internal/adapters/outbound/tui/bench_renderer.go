package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/respdiff/respdiff/internal/domain"
)

// RenderBench renders per-request latency statistics as a table.
func RenderBench(opts domain.BenchOptions, stats []domain.BenchStat) string {
	var b strings.Builder

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n",
		headerStyle.Render("Latency bench"),
		dimStyle.Render(fmt.Sprintf("%s  %s  users=%d rounds=%d", opts.Domain, opts.APIVersion, opts.Users, opts.Rounds)),
	)
	b.WriteString("  " + separatorLine + "\n")

	if len(stats) == 0 {
		b.WriteString("  " + dimStyle.Render("No requests") + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "  %s %6s %6s %9s %9s %9s %9s\n",
		dimStyle.Render(padRight("name", 32)), "reqs", "fails", "mean", "p50", "p95", "max")

	for _, s := range stats {
		fails := fmt.Sprintf("%6d", s.Failures)
		if s.Failures > 0 {
			fails = failStyle.Render(fails)
		}
		fmt.Fprintf(&b, "  %s %6d %s %9s %9s %9s %9s\n",
			padRight(s.Name, 32), s.Count, fails,
			ms(s.Mean), ms(s.P50), ms(s.P95), ms(s.Max))
	}
	return b.String()
}

func ms(d time.Duration) string {
	return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
}
