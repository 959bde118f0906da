// Package server exposes the selection controller as MCP tools.
package server

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/selection-lens/internal/model"
	"github.com/mj1618/selection-lens/internal/selection"
	"github.com/mj1618/selection-lens/internal/version"
)

// Walker is the part of selection.Controller the server uses.
type Walker interface {
	Walk() selection.Snapshot
	Inspect(attribute string) (model.Inspection, error)
}

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// Server wraps the MCP server with the controller and snapshot cache.
type Server struct {
	walker   Walker
	walkerMu sync.Mutex
	cache    *SnapshotCache
	logger   *slog.Logger
	mcp      *mcpserver.MCPServer
}

// New creates an MCP server with the selection tools registered.
func New(w Walker, cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		walker: w,
		cache:  NewSnapshotCache(cfg.CacheTTL),
		logger: logger,
	}
	s.mcp = mcpserver.NewMCPServer("selection-lens", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport and blocks.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		s.logger.Info("serving MCP", "transport", cfg.Transport)
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		addr := fmt.Sprintf(":%d", cfg.Port)
		s.logger.Info("serving MCP", "transport", cfg.Transport, "addr", addr)
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(addr)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	// get_selection
	s.mcp.AddTool(
		mcp.NewTool("get_selection",
			mcp.WithDescription("Get the text currently selected in the focused application and its on-screen bounds [x, y, width, height]."),
			mcp.WithBoolean("fresh", mcp.Description("Bypass the snapshot cache and walk the accessibility tree now")),
		),
		s.handleGetSelection,
	)

	// inspect_focused
	s.mcp.AddTool(
		mcp.NewTool("inspect_focused",
			mcp.WithDescription("Describe the focused UI element: pid, role, and the attributes it supports. Optionally read one attribute's value."),
			mcp.WithString("attribute", mcp.Description("Attribute to read (e.g. 'AXValue', 'AXSelectedTextRange')")),
		),
		s.handleInspectFocused,
	)
}
