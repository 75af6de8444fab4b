package service

import (
	"context"
	"fmt"

	"github.com/omarshaarawi/espn-fantasy-mcp/internal/api/espn"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/api/fantasy"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/models"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/repository/memory"
)

// League is the platform surface one tool call works against.
type League interface {
	CurrentScoringPeriod() int
	LeagueSettings(ctx context.Context) (models.LeagueSettings, error)
	Team(idx int) (models.FantasyTeam, error)
	Standings() []models.FantasyTeam
	Roster(idx int) ([]models.FantasyPlayer, error)
	FreeAgents(ctx context.Context, size int, position string) ([]models.FantasyPlayer, error)
	FindPlayerByID(ctx context.Context, playerID int) (*models.FantasyPlayer, error)
	PlayerByName(ctx context.Context, name string, fuzzyMatch bool, threshold int) (*models.FantasyPlayer, []string, error)

	ModifyLineup(ctx context.Context, idx int, moves []espn.LineupMove, scoringPeriodID *int) (*models.TransactionResult, error)
	AddFreeAgent(ctx context.Context, idx, addPlayerID int, dropPlayerID, scoringPeriodID *int) (*models.TransactionResult, error)
	DropPlayer(ctx context.Context, idx, playerID int, scoringPeriodID *int) (*models.TransactionResult, error)
	ClaimWaiver(ctx context.Context, idx, addPlayerID int, dropPlayerID *int, bidAmount int, scoringPeriodID *int) (*models.TransactionResult, error)
	CancelWaiver(ctx context.Context, idx int, transactionID string, scoringPeriodID *int) (*models.TransactionResult, error)
}

// Connector opens a League for one (league, season) pair.
type Connector func(ctx context.Context, leagueID string, seasonYear int) (League, error)

// NewConnector connects through the platform API, sharing one directory
// cache across every league it opens.
func NewConnector(api *espn.API, directory *memory.DirectoryRepository) Connector {
	return func(ctx context.Context, leagueID string, seasonYear int) (League, error) {
		league, err := fantasy.Connect(ctx, api, directory, leagueID, seasonYear)
		if err != nil {
			return nil, err
		}
		return league, nil
	}
}

// LeagueRef is a resolved league id and season.
type LeagueRef struct {
	LeagueID   string
	SeasonYear int
}

type FantasyService struct {
	connect Connector
}

func NewFantasyService(connect Connector) *FantasyService {
	return &FantasyService{connect: connect}
}

func (s *FantasyService) LeagueSettings(ctx context.Context, ref LeagueRef) (models.LeagueSettings, error) {
	league, err := s.connect(ctx, ref.LeagueID, ref.SeasonYear)
	if err != nil {
		return models.LeagueSettings{}, err
	}
	return league.LeagueSettings(ctx)
}

func (s *FantasyService) Standings(ctx context.Context, ref LeagueRef) ([]models.FantasyTeam, error) {
	league, err := s.connect(ctx, ref.LeagueID, ref.SeasonYear)
	if err != nil {
		return nil, err
	}
	return league.Standings(), nil
}

func (s *FantasyService) Team(ctx context.Context, ref LeagueRef, teamID int) (models.FantasyTeam, error) {
	league, err := s.connect(ctx, ref.LeagueID, ref.SeasonYear)
	if err != nil {
		return models.FantasyTeam{}, err
	}
	return league.Team(teamID)
}

func (s *FantasyService) Roster(ctx context.Context, ref LeagueRef, teamID int) ([]models.FantasyPlayer, error) {
	league, err := s.connect(ctx, ref.LeagueID, ref.SeasonYear)
	if err != nil {
		return nil, err
	}
	return league.Roster(teamID)
}

func (s *FantasyService) FreeAgents(ctx context.Context, ref LeagueRef, size int, position string) ([]models.FantasyPlayer, error) {
	league, err := s.connect(ctx, ref.LeagueID, ref.SeasonYear)
	if err != nil {
		return nil, err
	}
	return league.FreeAgents(ctx, size, position)
}

// PlayerInfo looks a player up by name with fuzzy suggestions on a miss.
func (s *FantasyService) PlayerInfo(ctx context.Context, ref LeagueRef, name string) (*models.FantasyPlayer, error) {
	league, err := s.connect(ctx, ref.LeagueID, ref.SeasonYear)
	if err != nil {
		return nil, err
	}

	player, suggestions, err := league.PlayerByName(ctx, name, true, fantasy.DefaultFuzzyThreshold)
	if err != nil {
		return nil, err
	}
	if player == nil {
		if suggestions == nil {
			suggestions = []string{}
		}
		return nil, &PlayerNotFoundError{
			Message:     fmt.Sprintf("Player '%s' not found", name),
			Suggestions: suggestions,
		}
	}
	return player, nil
}
