package cli

import (
	"os"

	"github.com/mark3labs/mcp-go/server"
	mcpadapter "github.com/respdiff/respdiff/internal/adapters/inbound/mcp"
	"github.com/respdiff/respdiff/internal/adapters/outbound/history"
	"github.com/respdiff/respdiff/internal/adapters/outbound/httpclient"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the respdiff MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var (
		rt         runtimeFlags
		historyDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start respdiff MCP server (stdio)",
		Long: "Start the respdiff MCP server using stdio transport. Assistants can list endpoint sets, " +
			"compare single requests between two domains and read the run history. The default API key is $" + envAPIKey + ".",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := rt.load()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			s := mcpadapter.NewRespdiffMCPServer(mcpadapter.Deps{
				Fetcher:    httpclient.New(cfg.Scheme, cfg.TimeoutDuration()),
				History:    history.New(),
				HistoryDir: historyDir,
				APIKey:     os.Getenv(envAPIKey),
				Config:     cfg,
				Logger:     logger,
			})
			return server.ServeStdio(s)
		},
	}

	rt.register(cmd)
	cmd.Flags().StringVar(&historyDir, "history-dir", ".", "directory holding .respdiff/history")
	return cmd
}
