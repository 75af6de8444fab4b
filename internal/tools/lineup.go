package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/omarshaarawi/espn-fantasy-mcp/internal/api/espn"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/config"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/service"
)

// ModifyLineupTool handles the modify_lineup MCP tool.
type ModifyLineupTool struct {
	base
}

func NewModifyLineupTool(svc *service.FantasyService, cfg config.ESPNAPI) *ModifyLineupTool {
	return &ModifyLineupTool{base{svc: svc, cfg: cfg}}
}

func (t *ModifyLineupTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Modify team lineup by moving players between lineup slots. " +
				"Uses a confirmation pattern: first call (confirm=false) previews the changes, " +
				"second call (confirm=true) executes them. " +
				"Can move a single player or swap multiple players in one transaction.",
		),
		t.teamIDOption(),
		mcp.WithArray("moves",
			mcp.Required(),
			mcp.Description("List of lineup moves to make"),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"player_id": map[string]any{"type": "integer", "description": "ESPN player ID"},
					"from_slot": map[string]any{"type": "integer", "description": "Current lineup slot ID"},
					"to_slot":   map[string]any{"type": "integer", "description": "Target lineup slot ID"},
				},
				"required": []string{"player_id", "from_slot", "to_slot"},
			}),
		),
	}
	opts = append(opts, leagueOptions()...)
	opts = append(opts, writeOptions()...)
	return mcp.NewTool("modify_lineup", opts...)
}

func (t *ModifyLineupTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, err := t.leagueRef(req)
	if err != nil {
		return nil, err
	}
	teamID, err := t.teamID(req)
	if err != nil {
		return nil, err
	}
	moves, err := movesArg(req)
	if err != nil {
		return nil, err
	}

	resp, err := t.svc.ModifyLineup(ctx, service.LineupRequest{
		LeagueRef:       ref,
		TeamID:          teamID,
		Moves:           moves,
		ScoringPeriodID: optionalIntPtr(req, "scoring_period_id"),
		Confirm:         boolArg(req, "confirm", false),
	})
	if err != nil {
		return failure(err)
	}
	return textResult(resp)
}

func movesArg(req mcp.CallToolRequest) ([]espn.LineupMove, error) {
	raw, _ := req.GetArguments()["moves"].([]any)
	if len(raw) == 0 {
		return nil, &InputError{Message: "moves array is required and cannot be empty"}
	}

	moves := make([]espn.LineupMove, 0, len(raw))
	for i, item := range raw {
		m, _ := item.(map[string]any)
		playerID, ok1 := toInt(m["player_id"])
		from, ok2 := toInt(m["from_slot"])
		to, ok3 := toInt(m["to_slot"])
		if !ok1 || !ok2 || !ok3 {
			return nil, &InputError{Message: fmt.Sprintf("move %d requires player_id, from_slot and to_slot", i+1)}
		}
		moves = append(moves, espn.LineupMove{PlayerID: playerID, FromSlot: from, ToSlot: to})
	}
	return moves, nil
}
