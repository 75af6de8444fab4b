package fantasy

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/omarshaarawi/espn-fantasy-mcp/internal/api/espn"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/models"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/repository/memory"
)

const DefaultFreeAgentSize = 50

var (
	ErrTeamNotFound    = errors.New("team not found")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrUnknownPosition = errors.New("unknown position")
)

// League is a connection to one league season. Team indexes are positions
// in the team list ordered by platform team id.
type League struct {
	api        *espn.API
	directory  *memory.DirectoryRepository
	LeagueID   string
	SeasonYear int

	snapshot *models.LeagueResponse
	teams    []models.Team
	members  map[string]string
}

// Connect loads the league snapshot that every read is served from.
func Connect(ctx context.Context, api *espn.API, directory *memory.DirectoryRepository, leagueID string, seasonYear int) (*League, error) {
	snapshot, err := api.GetLeague(ctx, leagueID, seasonYear)
	if err != nil {
		return nil, fmt.Errorf("connecting to league %s: %w", leagueID, err)
	}

	teams := append([]models.Team(nil), snapshot.Teams...)
	sort.SliceStable(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })

	return &League{
		api:        api,
		directory:  directory,
		LeagueID:   leagueID,
		SeasonYear: seasonYear,
		snapshot:   snapshot,
		teams:      teams,
		members:    memberNames(snapshot.Members),
	}, nil
}

// CurrentScoringPeriod is the platform's current scoring period.
func (l *League) CurrentScoringPeriod() int {
	return l.snapshot.ScoringPeriodID
}

func (l *League) team(idx int) (models.Team, error) {
	if idx < 0 || idx >= len(l.teams) {
		return models.Team{}, fmt.Errorf("%w: team_id %d out of range (league has %d teams)", ErrTeamNotFound, idx, len(l.teams))
	}
	return l.teams[idx], nil
}

func (l *League) LeagueSettings(ctx context.Context) (models.LeagueSettings, error) {
	raw, err := l.api.GetRawSettings(ctx, l.LeagueID, l.SeasonYear)
	if err != nil {
		return models.LeagueSettings{}, err
	}
	return mapSettings(l.LeagueID, l.SeasonYear, l.snapshot.Settings, raw), nil
}

func (l *League) Team(idx int) (models.FantasyTeam, error) {
	t, err := l.team(idx)
	if err != nil {
		return models.FantasyTeam{}, err
	}
	return mapTeam(idx, t, l.members), nil
}

// Standings returns every team ordered by ascending standing.
func (l *League) Standings() []models.FantasyTeam {
	standings := make([]models.FantasyTeam, len(l.teams))
	for i, t := range l.teams {
		standings[i] = mapTeam(i, t, l.members)
	}
	sortStandings(standings)
	return standings
}

func sortStandings(teams []models.FantasyTeam) {
	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].Standing < teams[j].Standing
	})
}

func (l *League) Roster(idx int) ([]models.FantasyPlayer, error) {
	t, err := l.team(idx)
	if err != nil {
		return nil, err
	}
	players := make([]models.FantasyPlayer, 0, len(t.Roster.Entries))
	for _, entry := range t.Roster.Entries {
		players = append(players, mapRosterEntry(entry, idx, t))
	}
	return players, nil
}

// FreeAgents lists available players. An empty position returns all.
func (l *League) FreeAgents(ctx context.Context, size int, position string) ([]models.FantasyPlayer, error) {
	if size <= 0 {
		size = DefaultFreeAgentSize
	}

	var slotFilter []int
	if position != "" {
		id, ok := espn.SlotID(position)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPosition, position)
		}
		slotFilter = []int{id}
	}

	entries, err := l.api.GetFreeAgents(ctx, l.LeagueID, l.SeasonYear, l.CurrentScoringPeriod(), size, slotFilter)
	if err != nil {
		return nil, err
	}

	players := make([]models.FantasyPlayer, 0, len(entries))
	for _, e := range entries {
		players = append(players, mapFreeAgent(e))
	}
	return players, nil
}

// FindPlayerByID searches every roster, then a large free agent batch.
// It returns nil without error when the id is in neither.
func (l *League) FindPlayerByID(ctx context.Context, playerID int) (*models.FantasyPlayer, error) {
	for idx, t := range l.teams {
		for _, entry := range t.Roster.Entries {
			if entry.PlayerID == playerID || entry.PlayerPoolEntry.Player.ID == playerID {
				p := mapRosterEntry(entry, idx, t)
				return &p, nil
			}
		}
	}

	agents, err := l.FreeAgents(ctx, espn.FreeAgentLookups, "")
	if err != nil {
		return nil, err
	}
	for i := range agents {
		if agents[i].PlayerID == playerID {
			return &agents[i], nil
		}
	}
	return nil, nil
}

// PlayerByName resolves an exact directory name, or returns up to five
// suggestions when fuzzy matching is on.
func (l *League) PlayerByName(ctx context.Context, name string, fuzzyMatch bool, threshold int) (*models.FantasyPlayer, []string, error) {
	directory, err := l.playerDirectory(ctx)
	if err != nil {
		return nil, nil, err
	}

	if id, ok := directory[name]; ok {
		p, err := l.FindPlayerByID(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		if p != nil {
			return p, []string{}, nil
		}
	}

	if !fuzzyMatch {
		return nil, []string{}, nil
	}

	names := make([]string, 0, len(directory))
	for n := range directory {
		names = append(names, n)
	}
	return nil, rankNames(name, names, threshold), nil
}

func (l *League) playerDirectory(ctx context.Context) (map[string]int, error) {
	key := memory.DirectoryKey{LeagueID: l.LeagueID, SeasonYear: l.SeasonYear}
	return l.directory.GetOrPopulate(key, func() (map[string]int, error) {
		players, err := l.api.GetPlayerDirectory(ctx, l.SeasonYear)
		if err != nil {
			return nil, err
		}
		directory := make(map[string]int, len(players))
		for _, p := range players {
			directory[p.FullName] = p.ID
		}
		return directory, nil
	})
}

func (l *League) period(scoringPeriodID *int) int {
	if scoringPeriodID != nil {
		return *scoringPeriodID
	}
	return l.CurrentScoringPeriod()
}

func (l *League) submit(ctx context.Context, tx models.Transaction) (*models.TransactionResult, error) {
	return l.api.SubmitTransaction(ctx, l.LeagueID, l.SeasonYear, tx)
}

func (l *League) ModifyLineup(ctx context.Context, idx int, moves []espn.LineupMove, scoringPeriodID *int) (*models.TransactionResult, error) {
	t, err := l.team(idx)
	if err != nil {
		return nil, err
	}
	return l.submit(ctx, espn.NewLineupTransaction(t.ID, l.period(scoringPeriodID), moves))
}

func (l *League) AddFreeAgent(ctx context.Context, idx, addPlayerID int, dropPlayerID, scoringPeriodID *int) (*models.TransactionResult, error) {
	t, err := l.team(idx)
	if err != nil {
		return nil, err
	}
	return l.submit(ctx, espn.NewAddDropTransaction(t.ID, l.period(scoringPeriodID), addPlayerID, dropPlayerID))
}

func (l *League) DropPlayer(ctx context.Context, idx, playerID int, scoringPeriodID *int) (*models.TransactionResult, error) {
	t, err := l.team(idx)
	if err != nil {
		return nil, err
	}
	return l.submit(ctx, espn.NewDropTransaction(t.ID, l.period(scoringPeriodID), playerID))
}

func (l *League) ClaimWaiver(ctx context.Context, idx, addPlayerID int, dropPlayerID *int, bidAmount int, scoringPeriodID *int) (*models.TransactionResult, error) {
	t, err := l.team(idx)
	if err != nil {
		return nil, err
	}
	return l.submit(ctx, espn.NewWaiverTransaction(t.ID, l.period(scoringPeriodID), addPlayerID, dropPlayerID, bidAmount))
}

func (l *League) CancelWaiver(ctx context.Context, idx int, transactionID string, scoringPeriodID *int) (*models.TransactionResult, error) {
	t, err := l.team(idx)
	if err != nil {
		return nil, err
	}
	return l.submit(ctx, espn.NewCancelWaiverTransaction(t.ID, l.period(scoringPeriodID), transactionID))
}
