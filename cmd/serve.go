package cmd

import (
	"fmt"
	"time"

	"github.com/mj1618/selection-lens/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the selection tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the current text
selection to AI agents.

Tools:
  get_selection     Selected text and bounds (cached for --cache-ttl)
  inspect_focused   Attributes of the focused element

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  selection-lens serve
  selection-lens serve --transport streamable-http --port 8080
  selection-lens serve --cache-ttl 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", -1, "Snapshot cache TTL in milliseconds, 0 to disable (default SELECTION_LENS_CACHE_TTL_MS or 500)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	srvCfg := server.Config{
		Transport: transport,
		Port:      port,
		CacheTTL:  cfg.CacheTTL,
	}
	if cacheTTLMs >= 0 {
		srvCfg.CacheTTL = time.Duration(cacheTTLMs) * time.Millisecond
	}

	ctrl, err := newController()
	if err != nil {
		return err
	}
	defer ctrl.Close()

	srv := server.New(ctrl, srvCfg, logger)
	if err := srv.Serve(srvCfg); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
