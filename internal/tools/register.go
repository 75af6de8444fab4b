package tools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/omarshaarawi/espn-fantasy-mcp/internal/config"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/service"
)

// Tool is one registrable MCP tool.
type Tool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// All returns the full tool catalog in listing order.
func All(svc *service.FantasyService, cfg config.ESPNAPI) []Tool {
	return []Tool{
		NewLeagueSettingsTool(svc, cfg),
		NewStandingsTool(svc, cfg),
		NewTeamTool(svc, cfg),
		NewRosterTool(svc, cfg),
		NewFreeAgentsTool(svc, cfg),
		NewPlayerInfoTool(svc, cfg),
		NewModifyLineupTool(svc, cfg),
		NewAddFreeAgentTool(svc, cfg),
		NewDropPlayerTool(svc, cfg),
		NewClaimWaiverTool(svc, cfg),
		NewCancelWaiverTool(svc, cfg),
	}
}

// Register adds every tool to the server.
func Register(s *server.MCPServer, svc *service.FantasyService, cfg config.ESPNAPI) {
	for _, t := range All(svc, cfg) {
		def := t.Definition()
		s.AddTool(def, logged(def.Name, t.Handle))
	}
}

func logged(name string, handle server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		slog.Debug("Tool called", "tool", name)
		result, err := handle(ctx, req)
		if err != nil {
			slog.Error("Tool call rejected", "tool", name, "error", err)
		}
		return result, err
	}
}
