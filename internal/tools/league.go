package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/omarshaarawi/espn-fantasy-mcp/internal/config"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/service"
)

// LeagueSettingsTool handles the get_league_settings MCP tool.
type LeagueSettingsTool struct {
	base
}

func NewLeagueSettingsTool(svc *service.FantasyService, cfg config.ESPNAPI) *LeagueSettingsTool {
	return &LeagueSettingsTool{base{svc: svc, cfg: cfg}}
}

func (t *LeagueSettingsTool) Definition() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Get league configuration including scoring categories, roster settings, and league rules"),
	}, leagueOptions()...)
	return mcp.NewTool("get_league_settings", opts...)
}

func (t *LeagueSettingsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := t.leagueRef(req)
	if err != nil {
		return nil, err
	}

	settings, err := t.svc.LeagueSettings(ctx, ref)
	if err != nil {
		return failure(err)
	}
	return success(settings.ToMap())
}

// StandingsTool handles the get_standings MCP tool.
type StandingsTool struct {
	base
}

func NewStandingsTool(svc *service.FantasyService, cfg config.ESPNAPI) *StandingsTool {
	return &StandingsTool{base{svc: svc, cfg: cfg}}
}

func (t *StandingsTool) Definition() mcp.Tool {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Get current league standings with team records and rankings"),
	}, leagueOptions()...)
	return mcp.NewTool("get_standings", opts...)
}

func (t *StandingsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := t.leagueRef(req)
	if err != nil {
		return nil, err
	}

	standings, err := t.svc.Standings(ctx, ref)
	if err != nil {
		return failure(err)
	}
	return success(teamMaps(standings))
}
