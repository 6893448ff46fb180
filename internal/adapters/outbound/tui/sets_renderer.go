package tui

import (
	"fmt"
	"strings"

	"github.com/respdiff/respdiff/internal/domain"
)

// RenderEndpointSets lists the built-in sets with their sizes.
func RenderEndpointSets(sets []domain.EndpointSet) string {
	var b strings.Builder
	for _, s := range sets {
		fmt.Fprintf(&b, "  %s %s  %s\n",
			headerStyle.Render(padRight(s.Name, 8)),
			dimStyle.Render(fmt.Sprintf("%2d endpoints, %d error tests", len(s.Endpoints), len(s.ErrorTests))),
			s.Description,
		)
	}
	return b.String()
}

// RenderEndpointSet lists every endpoint of one set with its methods.
func RenderEndpointSet(set domain.EndpointSet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", headerStyle.Render(set.Name), dimStyle.Render(fmt.Sprintf("(%s credentials)", set.Family)))
	renderEndpoints(&b, set.Endpoints)
	if len(set.ErrorTests) > 0 {
		b.WriteString("\n" + titleStyle.Render("Error tests") + "\n")
		renderEndpoints(&b, set.ErrorTests)
	}
	return b.String()
}

func renderEndpoints(b *strings.Builder, eps []domain.EndpointSpec) {
	if len(eps) == 0 {
		b.WriteString("  " + dimStyle.Render("(empty)") + "\n")
		return
	}
	for _, e := range eps {
		methods := make([]string, len(e.Methods))
		for i, m := range e.Methods {
			methods[i] = string(m)
		}
		fmt.Fprintf(b, "  %s %s\n", dimStyle.Render(padRight(strings.Join(methods, ","), 9)), e.Path)
	}
}
