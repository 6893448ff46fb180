package endpoints

import "github.com/respdiff/respdiff/internal/domain"

var (
	get     = []domain.Method{domain.MethodGet}
	post    = []domain.Method{domain.MethodPost}
	getPost = []domain.Method{domain.MethodGet, domain.MethodPost}
)

func mixerSet() domain.EndpointSet {
	return domain.EndpointSet{
		Name:        "mixer",
		Description: "Mixer REST API (v2)",
		Family:      domain.FamilyMixer,
		Endpoints: []domain.EndpointSpec{
			domain.Endpoint("/version", map[string]any{}, get...),
			domain.Endpoint("/v2/resolve", map[string]any{
				"nodes":    []any{"Mountain View, CA", "New York City"},
				"property": "<-description{typeOf:City}->dcid",
			}, getPost...),
			domain.Endpoint("/v2/event", map[string]any{
				"node":     "country/USA",
				"property": "<-location{typeOf:FireEvent, date:2020-10, area:3.1#6.2#Acre}",
			}, getPost...),
			domain.Endpoint("/v2/node", map[string]any{
				"nodes":    "geoId/06",
				"property": "<-",
			}, getPost...),
			// GET flattens nested selectors into dotted parameter names.
			domain.Endpoint("/v2/observation", map[string]any{
				"date":           "LATEST",
				"variable.dcids": []any{"Count_Person"},
				"entity.dcids":   []any{"country/USA"},
				"select":         []any{"entity", "variable", "value", "date"},
			}, get...),
			domain.Endpoint("/v2/observation", map[string]any{
				"date":     "LATEST",
				"variable": map[string]any{"dcids": []any{"Count_Person"}},
				"entity":   map[string]any{"dcids": []any{"country/USA"}},
				"select":   []any{"entity", "variable", "value", "date"},
			}, post...),
			domain.Endpoint("/v2/sparql", map[string]any{
				"query": "SELECT ?name WHERE {?biologicalSpecimen typeOf BiologicalSpecimen . ?biologicalSpecimen name ?name} ORDER BY DESC(?name) LIMIT 10",
			}, getPost...),
		},
		ErrorTests: []domain.EndpointSpec{
			// 400
			domain.Endpoint("/v2/observation?entity.dcids=country/USA&variable.dcids=Count_Person", map[string]any{}, getPost...),
			// 404
			domain.Endpoint("/nonexistent", map[string]any{}, getPost...),
			// 415
			domain.Endpoint("/v2/sparql?name=example.com&type=A", map[string]any{}, getPost...),
			// 500: too many series (Count_Person for every US city).
			domain.Endpoint("/v2/observation?entity.expression=country/USA%3C-containedInPlace%2B%7BtypeOf%3ACity%7D&variable.dcids=Count_Person&select=entity&select=variable&select=date&select=value", map[string]any{}, getPost...),
		},
	}
}
