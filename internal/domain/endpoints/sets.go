// Package endpoints holds the built-in endpoint sets the comparator can run.
package endpoints

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/respdiff/respdiff/internal/domain"
)

// Scratch is the set for trying out endpoints without touching the built-in
// lists. Add entries here locally and run with set name "new".
var Scratch = []domain.EndpointSpec{}

func newSet() domain.EndpointSet {
	return domain.EndpointSet{
		Name:        "new",
		Description: "Scratch list for endpoints under development",
		Family:      domain.FamilyMixer,
		Endpoints:   Scratch,
	}
}

var registry = map[string]func() domain.EndpointSet{
	"mixer": mixerSet,
	"nl":    nlSet,
	"new":   newSet,
}

// Lookup returns the endpoint set registered under name.
func Lookup(name string) (domain.EndpointSet, error) {
	build, ok := registry[name]
	if !ok {
		return domain.EndpointSet{}, fmt.Errorf("invalid endpoint set %q (use %s)", name, joinNames())
	}
	return build(), nil
}

// Names returns the registered set names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func joinNames() string {
	names := Names()
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = strconv.Quote(n)
	}
	if len(quoted) < 2 {
		return strings.Join(quoted, "")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}
