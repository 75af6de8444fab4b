package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/omarshaarawi/espn-fantasy-mcp/internal/config"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/service"
)

func writeTool(name, description string, teamID mcp.ToolOption, fields ...mcp.ToolOption) mcp.Tool {
	opts := append([]mcp.ToolOption{mcp.WithDescription(description), teamID}, fields...)
	opts = append(opts, leagueOptions()...)
	opts = append(opts, writeOptions()...)
	return mcp.NewTool(name, opts...)
}

// AddFreeAgentTool handles the add_free_agent MCP tool.
type AddFreeAgentTool struct {
	base
}

func NewAddFreeAgentTool(svc *service.FantasyService, cfg config.ESPNAPI) *AddFreeAgentTool {
	return &AddFreeAgentTool{base{svc: svc, cfg: cfg}}
}

func (t *AddFreeAgentTool) Definition() mcp.Tool {
	return writeTool("add_free_agent",
		"Add a free agent to a team, optionally dropping a rostered player in the same transaction. "+
			"Uses a confirmation pattern: first call (confirm=false) previews the transaction, "+
			"second call (confirm=true) executes it.",
		t.teamIDOption(),
		mcp.WithNumber("add_player_id",
			mcp.Required(),
			mcp.Description("ESPN player ID of the free agent to add"),
		),
		mcp.WithNumber("drop_player_id",
			mcp.Description("ESPN player ID to drop from the roster (optional)"),
		),
	)
}

func (t *AddFreeAgentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := t.leagueRef(req)
	if err != nil {
		return nil, err
	}
	teamID, err := t.teamID(req)
	if err != nil {
		return nil, err
	}
	addID, err := requiredIntArg(req, "add_player_id")
	if err != nil {
		return nil, err
	}

	resp, err := t.svc.AddFreeAgent(ctx, service.AddFreeAgentRequest{
		LeagueRef:       ref,
		TeamID:          teamID,
		AddPlayerID:     addID,
		DropPlayerID:    optionalIntPtr(req, "drop_player_id"),
		ScoringPeriodID: optionalIntPtr(req, "scoring_period_id"),
		Confirm:         boolArg(req, "confirm", false),
	})
	if err != nil {
		return failure(err)
	}
	return textResult(resp)
}

// DropPlayerTool handles the drop_player MCP tool.
type DropPlayerTool struct {
	base
}

func NewDropPlayerTool(svc *service.FantasyService, cfg config.ESPNAPI) *DropPlayerTool {
	return &DropPlayerTool{base{svc: svc, cfg: cfg}}
}

func (t *DropPlayerTool) Definition() mcp.Tool {
	return writeTool("drop_player",
		"Drop a player from a team's roster. "+
			"Uses a confirmation pattern: first call (confirm=false) previews the drop, "+
			"second call (confirm=true) executes it.",
		t.teamIDOption(),
		mcp.WithNumber("player_id",
			mcp.Required(),
			mcp.Description("ESPN player ID to drop"),
		),
	)
}

func (t *DropPlayerTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := t.leagueRef(req)
	if err != nil {
		return nil, err
	}
	teamID, err := t.teamID(req)
	if err != nil {
		return nil, err
	}
	playerID, err := requiredIntArg(req, "player_id")
	if err != nil {
		return nil, err
	}

	resp, err := t.svc.DropPlayer(ctx, service.DropPlayerRequest{
		LeagueRef:       ref,
		TeamID:          teamID,
		PlayerID:        playerID,
		ScoringPeriodID: optionalIntPtr(req, "scoring_period_id"),
		Confirm:         boolArg(req, "confirm", false),
	})
	if err != nil {
		return failure(err)
	}
	return textResult(resp)
}

// ClaimWaiverTool handles the claim_waiver MCP tool.
type ClaimWaiverTool struct {
	base
}

func NewClaimWaiverTool(svc *service.FantasyService, cfg config.ESPNAPI) *ClaimWaiverTool {
	return &ClaimWaiverTool{base{svc: svc, cfg: cfg}}
}

func (t *ClaimWaiverTool) Definition() mcp.Tool {
	return writeTool("claim_waiver",
		"Submit a waiver claim for a player, with an optional FAAB bid and an optional drop. "+
			"Claims stay pending until waivers process. "+
			"Uses a confirmation pattern: first call (confirm=false) previews the claim, "+
			"second call (confirm=true) submits it.",
		t.teamIDOption(),
		mcp.WithNumber("add_player_id",
			mcp.Required(),
			mcp.Description("ESPN player ID to claim"),
		),
		mcp.WithNumber("drop_player_id",
			mcp.Description("ESPN player ID to drop if the claim succeeds (optional)"),
		),
		mcp.WithNumber("bid_amount",
			mcp.Description("FAAB bid amount (default: 0)"),
		),
	)
}

func (t *ClaimWaiverTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := t.leagueRef(req)
	if err != nil {
		return nil, err
	}
	teamID, err := t.teamID(req)
	if err != nil {
		return nil, err
	}
	addID, err := requiredIntArg(req, "add_player_id")
	if err != nil {
		return nil, err
	}

	resp, err := t.svc.ClaimWaiver(ctx, service.ClaimWaiverRequest{
		LeagueRef:       ref,
		TeamID:          teamID,
		AddPlayerID:     addID,
		DropPlayerID:    optionalIntPtr(req, "drop_player_id"),
		BidAmount:       optionalIntPtr(req, "bid_amount"),
		ScoringPeriodID: optionalIntPtr(req, "scoring_period_id"),
		Confirm:         boolArg(req, "confirm", false),
	})
	if err != nil {
		return failure(err)
	}
	return textResult(resp)
}

// CancelWaiverTool handles the cancel_waiver MCP tool.
type CancelWaiverTool struct {
	base
}

func NewCancelWaiverTool(svc *service.FantasyService, cfg config.ESPNAPI) *CancelWaiverTool {
	return &CancelWaiverTool{base{svc: svc, cfg: cfg}}
}

func (t *CancelWaiverTool) Definition() mcp.Tool {
	return writeTool("cancel_waiver",
		"Cancel a pending waiver claim. "+
			"Uses a confirmation pattern: first call (confirm=false) previews the cancellation, "+
			"second call (confirm=true) executes it.",
		t.teamIDOption(),
		mcp.WithString("transaction_id",
			mcp.Required(),
			mcp.Description("ID of the pending waiver claim transaction"),
		),
	)
}

func (t *CancelWaiverTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := t.leagueRef(req)
	if err != nil {
		return nil, err
	}
	teamID, err := t.teamID(req)
	if err != nil {
		return nil, err
	}
	txID := req.GetString("transaction_id", "")
	if txID == "" {
		return nil, &InputError{Message: "transaction_id is required"}
	}

	resp, err := t.svc.CancelWaiver(ctx, service.CancelWaiverRequest{
		LeagueRef:       ref,
		TeamID:          teamID,
		TransactionID:   txID,
		ScoringPeriodID: optionalIntPtr(req, "scoring_period_id"),
		Confirm:         boolArg(req, "confirm", false),
	})
	if err != nil {
		return failure(err)
	}
	return textResult(resp)
}
