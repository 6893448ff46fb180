package endpoints

import "github.com/respdiff/respdiff/internal/domain"

func nlSet() domain.EndpointSet {
	return domain.EndpointSet{
		Name:        "nl",
		Description: "Natural-language query API",
		Family:      domain.FamilyNL,
		Endpoints: []domain.EndpointSpec{
			domain.Endpoint("/healthz", nil, get...),
			domain.Endpoint("/nl/data", map[string]any{
				"q": "What is the population of California?",
			}, getPost...),
			domain.Endpoint("/nl/data", map[string]any{
				"q":   "Which counties in Texas have the highest median income?",
				"all": "true",
			}, getPost...),
			domain.Endpoint("/nl/detect", map[string]any{
				"q": "unemployment rate in Kenya",
			}, get...),
		},
		ErrorTests: []domain.EndpointSpec{
			// 400: missing query
			domain.Endpoint("/nl/data", map[string]any{}, getPost...),
			// 404
			domain.Endpoint("/nonexistent", map[string]any{}, getPost...),
		},
	}
}
