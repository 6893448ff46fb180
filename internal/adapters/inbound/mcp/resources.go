package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/respdiff/respdiff/internal/domain/endpoints"
)

const setsURI = "respdiff://sets"

// registerResources registers all respdiff MCP resources on the given server.
func registerResources(s *server.MCPServer) {
	s.AddResource(
		mcplib.NewResource(
			setsURI,
			"Endpoint Sets",
			mcplib.WithResourceDescription("All built-in endpoint sets"),
			mcplib.WithMIMEType("application/json"),
		),
		handleSetsResource(),
	)

	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			setsURI+"/{name}",
			"Endpoint Set",
			mcplib.WithTemplateDescription("Endpoints and error tests of one set"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleSetResource(),
	)
}

func handleSetsResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		sets, err := allSets()
		if err != nil {
			return nil, err
		}
		return jsonContents(setsURI, sets)
	}
}

func handleSetResource() server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		name := strings.TrimPrefix(request.Params.URI, setsURI+"/")
		if name == "" || name == request.Params.URI {
			return nil, fmt.Errorf("set name is required")
		}

		set, err := endpoints.Lookup(name)
		if err != nil {
			return nil, err
		}
		return jsonContents(request.Params.URI, set)
	}
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
