package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/omarshaarawi/espn-fantasy-mcp/internal/config"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/service"
)

// TeamTool handles the get_team MCP tool.
type TeamTool struct {
	base
}

func NewTeamTool(svc *service.FantasyService, cfg config.ESPNAPI) *TeamTool {
	return &TeamTool{base{svc: svc, cfg: cfg}}
}

func (t *TeamTool) Definition() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Get detailed information about a specific team"),
		t.teamIDOption(),
	}, leagueOptions()...)
	return mcp.NewTool("get_team", opts...)
}

func (t *TeamTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := t.leagueRef(req)
	if err != nil {
		return nil, err
	}
	teamID, err := t.teamID(req)
	if err != nil {
		return nil, err
	}

	team, err := t.svc.Team(ctx, ref, teamID)
	if err != nil {
		return failure(err)
	}
	return success(team.ToMap())
}

// RosterTool handles the get_roster MCP tool.
type RosterTool struct {
	base
}

func NewRosterTool(svc *service.FantasyService, cfg config.ESPNAPI) *RosterTool {
	return &RosterTool{base{svc: svc, cfg: cfg}}
}

func (t *RosterTool) Definition() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Get current roster for a team with player details and lineup positions"),
		t.teamIDOption(),
	}, leagueOptions()...)
	return mcp.NewTool("get_roster", opts...)
}

func (t *RosterTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := t.leagueRef(req)
	if err != nil {
		return nil, err
	}
	teamID, err := t.teamID(req)
	if err != nil {
		return nil, err
	}

	roster, err := t.svc.Roster(ctx, ref, teamID)
	if err != nil {
		return failure(err)
	}
	return success(playerMaps(roster))
}
