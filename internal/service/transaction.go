package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/omarshaarawi/espn-fantasy-mcp/internal/api/espn"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/models"
)

const (
	prefixLineup       = "Failed to modify lineup: "
	prefixAddFreeAgent = "Failed to add free agent: "
	prefixDrop         = "Failed to drop player: "
	prefixClaimWaiver  = "Failed to submit waiver claim: "
	prefixCancelWaiver = "Failed to cancel waiver claim: "

	waiverPreviewNote  = "Waiver claims are pending until processed during waiver period"
	waiverExecutedNote = "Waiver claim is pending and will be processed during the waiver period"
)

type LineupRequest struct {
	LeagueRef
	TeamID          int
	Moves           []espn.LineupMove
	ScoringPeriodID *int
	Confirm         bool
}

type AddFreeAgentRequest struct {
	LeagueRef
	TeamID          int
	AddPlayerID     int
	DropPlayerID    *int
	ScoringPeriodID *int
	Confirm         bool
}

type DropPlayerRequest struct {
	LeagueRef
	TeamID          int
	PlayerID        int
	ScoringPeriodID *int
	Confirm         bool
}

type ClaimWaiverRequest struct {
	LeagueRef
	TeamID          int
	AddPlayerID     int
	DropPlayerID    *int
	BidAmount       *int
	ScoringPeriodID *int
	Confirm         bool
}

type CancelWaiverRequest struct {
	LeagueRef
	TeamID          int
	TransactionID   string
	ScoringPeriodID *int
	Confirm         bool
}

// MoveDetail describes one validated lineup move.
type MoveDetail struct {
	PlayerID     int    `json:"player_id"`
	PlayerName   string `json:"player_name"`
	FromSlot     int    `json:"from_slot"`
	FromSlotName string `json:"from_slot_name"`
	ToSlot       int    `json:"to_slot"`
	ToSlotName   string `json:"to_slot_name"`
	Position     string `json:"position"`
}

type PlayerDetail struct {
	PlayerID     int                  `json:"player_id"`
	PlayerName   string               `json:"player_name"`
	Position     string               `json:"position"`
	ProTeam      string               `json:"pro_team"`
	RosterStatus *models.RosterStatus `json:"roster_status,omitempty"`
}

type TransactionDetail struct {
	Type      string        `json:"type,omitempty"`
	BidAmount *int          `json:"bid_amount,omitempty"`
	Add       *PlayerDetail `json:"add,omitempty"`
	Drop      *PlayerDetail `json:"drop,omitempty"`
}

// TransactionResponse is either a preview or an executed result.
type TransactionResponse struct {
	Success              bool               `json:"success"`
	Preview              bool               `json:"preview,omitempty"`
	Executed             bool               `json:"executed,omitempty"`
	Message              string             `json:"message"`
	TransactionID        *string            `json:"transaction_id,omitempty"`
	Status               *string            `json:"status,omitempty"`
	IsPending            *bool              `json:"is_pending,omitempty"`
	BidAmount            *int               `json:"bid_amount,omitempty"`
	RelatedTransactionID *string            `json:"related_transaction_id,omitempty"`
	TeamID               int                `json:"team_id"`
	TeamName             string             `json:"team_name,omitempty"`
	ScoringPeriodID      int                `json:"scoring_period_id"`
	Moves                []MoveDetail       `json:"moves,omitempty"`
	Transaction          *TransactionDetail `json:"transaction,omitempty"`
	Note                 string             `json:"note,omitempty"`
	Instructions         string             `json:"instructions,omitempty"`
	RawResponse          json.RawMessage    `json:"raw_response,omitempty"`
}

// transaction is one write operation split into its three phases.
// validate must not write; execute performs the single platform POST.
type transaction struct {
	name    string
	prefix  string
	teamID  int
	period  *int
	confirm bool

	validate func(ctx context.Context, league League) error
	preview  func(resp *TransactionResponse)
	execute  func(ctx context.Context, league League) (*models.TransactionResult, error)
	executed func(resp *TransactionResponse, result *models.TransactionResult)
}

func (s *FantasyService) run(ctx context.Context, ref LeagueRef, tx transaction) (*TransactionResponse, error) {
	league, err := s.connect(ctx, ref.LeagueID, ref.SeasonYear)
	if err != nil {
		return nil, readFailure(tx.prefix, err)
	}

	if err := tx.validate(ctx, league); err != nil {
		return nil, readFailure(tx.prefix, err)
	}

	if !tx.confirm {
		team, err := league.Team(tx.teamID)
		if err != nil {
			return nil, readFailure(tx.prefix, err)
		}
		period := league.CurrentScoringPeriod()
		if tx.period != nil {
			period = *tx.period
		}
		resp := &TransactionResponse{
			Success:         true,
			Preview:         true,
			TeamID:          tx.teamID,
			TeamName:        team.TeamName,
			ScoringPeriodID: period,
		}
		tx.preview(resp)
		return resp, nil
	}

	result, err := tx.execute(ctx, league)
	if err != nil {
		slog.Error("Transaction failed", "operation", tx.name, "team_id", tx.teamID, "error", err)
		return nil, writeFailure(tx.prefix, err)
	}
	slog.Info("Transaction executed", "operation", tx.name, "team_id", tx.teamID, "transaction_id", result.ID)

	resp := &TransactionResponse{
		Success:         true,
		Executed:        true,
		TransactionID:   &result.ID,
		Status:          &result.Status,
		TeamID:          tx.teamID,
		ScoringPeriodID: result.ScoringPeriodID,
		RawResponse:     rawResponse(result.Raw),
	}
	tx.executed(resp, result)
	return resp, nil
}

func rawResponse(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || !json.Valid(raw) {
		return json.RawMessage("null")
	}
	return raw
}

// validateLineup checks every move against the roster and collects one
// error per invalid move.
func validateLineup(roster []models.FantasyPlayer, moves []espn.LineupMove) ([]MoveDetail, error) {
	byID := make(map[int]models.FantasyPlayer, len(roster))
	for _, p := range roster {
		byID[p.PlayerID] = p
	}

	var errs []string
	details := make([]MoveDetail, 0, len(moves))
	for i, m := range moves {
		p, ok := byID[m.PlayerID]
		if !ok {
			errs = append(errs, fmt.Sprintf("Move %d: Player ID %d not found on team roster", i+1, m.PlayerID))
			continue
		}

		from := espn.SlotName(m.FromSlot)
		if current := p.SlotName(); current != from {
			errs = append(errs, fmt.Sprintf("Move %d: Player %s is currently in slot %s, not %s", i+1, p.Name, current, from))
		}

		details = append(details, MoveDetail{
			PlayerID:     m.PlayerID,
			PlayerName:   p.Name,
			FromSlot:     m.FromSlot,
			FromSlotName: from,
			ToSlot:       m.ToSlot,
			ToSlotName:   espn.SlotName(m.ToSlot),
			Position:     p.Position,
		})
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Message: "Invalid lineup moves", Errors: errs}
	}
	return details, nil
}

func (s *FantasyService) ModifyLineup(ctx context.Context, req LineupRequest) (*TransactionResponse, error) {
	var moves []MoveDetail

	return s.run(ctx, req.LeagueRef, transaction{
		name:    "modify_lineup",
		prefix:  prefixLineup,
		teamID:  req.TeamID,
		period:  req.ScoringPeriodID,
		confirm: req.Confirm,
		validate: func(ctx context.Context, league League) error {
			roster, err := league.Roster(req.TeamID)
			if err != nil {
				return err
			}
			moves, err = validateLineup(roster, req.Moves)
			return err
		},
		preview: func(resp *TransactionResponse) {
			resp.Message = "Preview of lineup changes. Set confirm=true to execute."
			resp.Moves = moves
			resp.Instructions = "To execute these changes, call this tool again with confirm=true"
		},
		execute: func(ctx context.Context, league League) (*models.TransactionResult, error) {
			return league.ModifyLineup(ctx, req.TeamID, req.Moves, req.ScoringPeriodID)
		},
		executed: func(resp *TransactionResponse, _ *models.TransactionResult) {
			resp.Message = "Lineup changes executed successfully"
			resp.Moves = moves
		},
	})
}

func playerDetail(p models.FantasyPlayer) *PlayerDetail {
	return &PlayerDetail{
		PlayerID:   p.PlayerID,
		PlayerName: p.Name,
		Position:   p.Position,
		ProTeam:    p.Team,
	}
}

// resolveAddDrop looks up the incoming player anywhere in the league and
// the outgoing player on the acting roster.
func resolveAddDrop(ctx context.Context, league League, teamID, addPlayerID int, dropPlayerID *int) (*models.FantasyPlayer, *models.FantasyPlayer, error) {
	add, err := league.FindPlayerByID(ctx, addPlayerID)
	if err != nil {
		return nil, nil, err
	}
	if add == nil {
		return nil, nil, &PlayerNotFoundError{Message: fmt.Sprintf("Player ID %d not found", addPlayerID)}
	}

	if dropPlayerID == nil {
		return add, nil, nil
	}
	drop, err := rosterPlayer(league, teamID, *dropPlayerID)
	if err != nil {
		return nil, nil, err
	}
	return add, drop, nil
}

func rosterPlayer(league League, teamID, playerID int) (*models.FantasyPlayer, error) {
	roster, err := league.Roster(teamID)
	if err != nil {
		return nil, err
	}
	for i := range roster {
		if roster[i].PlayerID == playerID {
			return &roster[i], nil
		}
	}
	return nil, &ValidationError{Message: fmt.Sprintf("Player ID %d not found on team roster", playerID)}
}

func (s *FantasyService) AddFreeAgent(ctx context.Context, req AddFreeAgentRequest) (*TransactionResponse, error) {
	detail := &TransactionDetail{}

	return s.run(ctx, req.LeagueRef, transaction{
		name:    "add_free_agent",
		prefix:  prefixAddFreeAgent,
		teamID:  req.TeamID,
		period:  req.ScoringPeriodID,
		confirm: req.Confirm,
		validate: func(ctx context.Context, league League) error {
			add, drop, err := resolveAddDrop(ctx, league, req.TeamID, req.AddPlayerID, req.DropPlayerID)
			if err != nil {
				return err
			}
			detail.Add = playerDetail(*add)
			if drop != nil {
				detail.Drop = playerDetail(*drop)
			}
			return nil
		},
		preview: func(resp *TransactionResponse) {
			resp.Message = "Preview of add/drop transaction. Set confirm=true to execute."
			resp.Transaction = detail
			resp.Instructions = "To execute this transaction, call this tool again with confirm=true"
		},
		execute: func(ctx context.Context, league League) (*models.TransactionResult, error) {
			return league.AddFreeAgent(ctx, req.TeamID, req.AddPlayerID, req.DropPlayerID, req.ScoringPeriodID)
		},
		executed: func(resp *TransactionResponse, _ *models.TransactionResult) {
			resp.Message = "Add/drop transaction executed successfully"
			resp.Transaction = detail
		},
	})
}

func (s *FantasyService) DropPlayer(ctx context.Context, req DropPlayerRequest) (*TransactionResponse, error) {
	detail := &TransactionDetail{}

	return s.run(ctx, req.LeagueRef, transaction{
		name:    "drop_player",
		prefix:  prefixDrop,
		teamID:  req.TeamID,
		period:  req.ScoringPeriodID,
		confirm: req.Confirm,
		validate: func(ctx context.Context, league League) error {
			p, err := rosterPlayer(league, req.TeamID, req.PlayerID)
			if err != nil {
				return err
			}
			detail.Drop = playerDetail(*p)
			return nil
		},
		preview: func(resp *TransactionResponse) {
			resp.Message = "Preview of drop transaction. Set confirm=true to execute."
			resp.Transaction = detail
			resp.Instructions = "To execute this transaction, call this tool again with confirm=true"
		},
		execute: func(ctx context.Context, league League) (*models.TransactionResult, error) {
			return league.DropPlayer(ctx, req.TeamID, req.PlayerID, req.ScoringPeriodID)
		},
		executed: func(resp *TransactionResponse, _ *models.TransactionResult) {
			resp.Message = "Drop transaction executed successfully"
			resp.Transaction = detail
		},
	})
}

func (s *FantasyService) ClaimWaiver(ctx context.Context, req ClaimWaiverRequest) (*TransactionResponse, error) {
	bid := 0
	if req.BidAmount != nil {
		bid = *req.BidAmount
	}
	detail := &TransactionDetail{Type: espn.TransactionWaiver, BidAmount: &bid}

	return s.run(ctx, req.LeagueRef, transaction{
		name:    "claim_waiver",
		prefix:  prefixClaimWaiver,
		teamID:  req.TeamID,
		period:  req.ScoringPeriodID,
		confirm: req.Confirm,
		validate: func(ctx context.Context, league League) error {
			add, drop, err := resolveAddDrop(ctx, league, req.TeamID, req.AddPlayerID, req.DropPlayerID)
			if err != nil {
				return err
			}
			detail.Add = playerDetail(*add)
			status := add.RosterStatus
			detail.Add.RosterStatus = &status
			if drop != nil {
				detail.Drop = playerDetail(*drop)
			}
			return nil
		},
		preview: func(resp *TransactionResponse) {
			resp.Message = "Preview of waiver claim. Set confirm=true to execute."
			resp.Transaction = detail
			resp.Note = waiverPreviewNote
			resp.Instructions = "To execute this waiver claim, call this tool again with confirm=true"
		},
		execute: func(ctx context.Context, league League) (*models.TransactionResult, error) {
			return league.ClaimWaiver(ctx, req.TeamID, req.AddPlayerID, req.DropPlayerID, bid, req.ScoringPeriodID)
		},
		executed: func(resp *TransactionResponse, result *models.TransactionResult) {
			resp.Message = "Waiver claim submitted successfully"
			resp.IsPending = &result.IsPending
			resp.BidAmount = &result.BidAmount
			resp.Transaction = detail
			resp.Note = waiverExecutedNote
		},
	})
}

// CancelWaiver withdraws a pending claim. The transaction id is not
// checked here; an unknown id is rejected by the platform on execute.
func (s *FantasyService) CancelWaiver(ctx context.Context, req CancelWaiverRequest) (*TransactionResponse, error) {
	return s.run(ctx, req.LeagueRef, transaction{
		name:    "cancel_waiver",
		prefix:  prefixCancelWaiver,
		teamID:  req.TeamID,
		period:  req.ScoringPeriodID,
		confirm: req.Confirm,
		validate: func(context.Context, League) error {
			return nil
		},
		preview: func(resp *TransactionResponse) {
			resp.Message = "Preview of waiver claim cancellation. Set confirm=true to execute."
			resp.TransactionID = &req.TransactionID
			resp.Instructions = "To cancel this waiver claim, call this tool again with confirm=true"
		},
		execute: func(ctx context.Context, league League) (*models.TransactionResult, error) {
			return league.CancelWaiver(ctx, req.TeamID, req.TransactionID, req.ScoringPeriodID)
		},
		executed: func(resp *TransactionResponse, result *models.TransactionResult) {
			resp.Message = "Waiver claim cancelled successfully"
			resp.RelatedTransactionID = &result.RelatedTransactionID
		},
	})
}
