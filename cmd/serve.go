package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/digitgenius/shopassist/internal/catalog"
	"github.com/digitgenius/shopassist/internal/config"
	mcpserver "github.com/digitgenius/shopassist/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing product catalog tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		idx, err := catalog.Load(cfg.CatalogDir, cfg.CatalogGlobs)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "shopassist MCP server started on stdio (products=%d)\n", idx.Count())

		srv := mcpserver.NewServer(idx)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
