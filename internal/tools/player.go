package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/omarshaarawi/espn-fantasy-mcp/internal/api/fantasy"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/config"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/service"
)

// FreeAgentsTool handles the get_free_agents MCP tool.
type FreeAgentsTool struct {
	base
}

func NewFreeAgentsTool(svc *service.FantasyService, cfg config.ESPNAPI) *FreeAgentsTool {
	return &FreeAgentsTool{base{svc: svc, cfg: cfg}}
}

func (t *FreeAgentsTool) Definition() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Get list of available free agents on the waiver wire"),
		mcp.WithString("position",
			mcp.Description("Filter by position (C, 1B, 2B, SS, 3B, OF, SP, RP, P)"),
		),
		mcp.WithNumber("size",
			mcp.Description("Number of players to return (default: 50)"),
		),
	}, leagueOptions()...)
	return mcp.NewTool("get_free_agents", opts...)
}

func (t *FreeAgentsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := t.leagueRef(req)
	if err != nil {
		return nil, err
	}

	size := intArg(req, "size", fantasy.DefaultFreeAgentSize)
	position := req.GetString("position", "")

	players, err := t.svc.FreeAgents(ctx, ref, size, position)
	if err != nil {
		return failure(err)
	}
	return success(playerMaps(players))
}

// PlayerInfoTool handles the get_player_info MCP tool.
type PlayerInfoTool struct {
	base
}

func NewPlayerInfoTool(svc *service.FantasyService, cfg config.ESPNAPI) *PlayerInfoTool {
	return &PlayerInfoTool{base{svc: svc, cfg: cfg}}
}

func (t *PlayerInfoTool) Definition() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription(
			"Look up a player by name and get detailed information including stats, position, team, and roster status. " +
				"Supports fuzzy matching for misspelled names.",
		),
		mcp.WithString("player_name",
			mcp.Required(),
			mcp.Description("Player's full name (e.g., 'Shohei Ohtani', 'Aaron Judge')"),
		),
	}, leagueOptions()...)
	return mcp.NewTool("get_player_info", opts...)
}

func (t *PlayerInfoTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("player_name", "")
	if name == "" {
		return nil, &InputError{Message: "player_name is required"}
	}
	ref, err := t.leagueRef(req)
	if err != nil {
		return nil, err
	}

	player, err := t.svc.PlayerInfo(ctx, ref, name)
	if err != nil {
		return failure(err)
	}
	return success(player.ToMap())
}
