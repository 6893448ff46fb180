package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/respdiff/respdiff/internal/domain"
	"go.uber.org/zap"
)

// Deps are the collaborators shared by every tool and resource handler.
type Deps struct {
	Fetcher domain.Fetcher
	History domain.RunHistory
	// HistoryDir is where recorded runs are read from.
	HistoryDir string
	// APIKey is used when a tool call does not pass api_key.
	APIKey string
	Config domain.Config
	Logger *zap.Logger
}

// NewRespdiffMCPServer creates an MCP server exposing the endpoint sets, single
// request comparisons and the run history.
func NewRespdiffMCPServer(deps Deps) *server.MCPServer {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	s := server.NewMCPServer(
		"respdiff",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, deps)
	registerResources(s)

	return s
}
