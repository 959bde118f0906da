package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"
)

// toText serializes v to YAML for an MCP response.
func toText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func (s *Server) handleGetSelection(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fresh := request.GetBool("fresh", false)

	s.walkerMu.Lock()
	defer s.walkerMu.Unlock()

	if fresh {
		s.cache.Invalidate()
	}
	snap := s.cache.Get(s.walker.Walk)
	s.logger.Debug("get_selection", "outcome", snap.Outcome, "fresh", fresh)
	return mcp.NewToolResultText(toText(snap.Selection())), nil
}

func (s *Server) handleInspectFocused(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	attribute := request.GetString("attribute", "")

	s.walkerMu.Lock()
	defer s.walkerMu.Unlock()

	ins, err := s.walker.Inspect(attribute)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("inspect focused element: %v", err)), nil
	}
	return mcp.NewToolResultText(toText(ins)), nil
}
