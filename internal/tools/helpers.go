// Package tools exposes the fantasy service as MCP tools.
//
// Every tool is a struct built by a constructor with Definition() returning
// the schema and Handle() processing a call. Handlers answer with a JSON
// envelope; only missing required arguments surface as Go errors.
package tools

import (
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/omarshaarawi/espn-fantasy-mcp/internal/config"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/service"
)

// InputError reports a missing or malformed required argument. It is
// returned to the framework instead of being wrapped in an envelope.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// base carries what every tool needs.
type base struct {
	svc *service.FantasyService
	cfg config.ESPNAPI
}

// leagueRef resolves league_id and season_year against the environment.
func (b base) leagueRef(req mcp.CallToolRequest) (service.LeagueRef, error) {
	leagueID, season, err := b.cfg.Resolve(req.GetString("league_id", ""), intArg(req, "season_year", 0))
	if err != nil {
		if errors.Is(err, config.ErrLeagueIDRequired) {
			return service.LeagueRef{}, &InputError{Message: err.Error()}
		}
		return service.LeagueRef{}, err
	}
	return service.LeagueRef{LeagueID: leagueID, SeasonYear: season}, nil
}

// teamID returns team_id, falling back to ESPN_TEAM_ID.
func (b base) teamID(req mcp.CallToolRequest) (int, error) {
	if id, ok := optionalIntArg(req, "team_id"); ok {
		return id, nil
	}
	if id, ok := b.cfg.DefaultTeamID(); ok {
		return id, nil
	}
	return 0, &InputError{Message: "team_id is required"}
}

// teamIDOption marks team_id required unless a default team is configured.
func (b base) teamIDOption() mcp.ToolOption {
	opts := []mcp.PropertyOption{mcp.Description("Team ID (0-based index)")}
	if _, ok := b.cfg.DefaultTeamID(); ok {
		opts[0] = mcp.Description("Team ID (0-based index, defaults to ESPN_TEAM_ID)")
	} else {
		opts = append(opts, mcp.Required())
	}
	return mcp.WithNumber("team_id", opts...)
}

func leagueOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("league_id",
			mcp.Description("ESPN League ID (defaults to ESPN_LEAGUE_ID)"),
		),
		mcp.WithNumber("season_year",
			mcp.Description("Season year (defaults to ESPN_SEASON_YEAR)"),
		),
	}
}

func writeOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("scoring_period_id",
			mcp.Description("Scoring period for the transaction (defaults to the current period)"),
		),
		mcp.WithBoolean("confirm",
			mcp.Description("If false (default), returns a preview. If true, executes the transaction."),
			mcp.DefaultBool(false),
		),
	}
}

// intArg extracts an integer argument, returning defaultVal if the key is
// missing or not a number (JSON numbers are float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	if v, ok := optionalIntArg(req, key); ok {
		return v
	}
	return defaultVal
}

func optionalIntArg(req mcp.CallToolRequest, key string) (int, bool) {
	return toInt(req.GetArguments()[key])
}

func optionalIntPtr(req mcp.CallToolRequest, key string) *int {
	v, ok := optionalIntArg(req, key)
	if !ok {
		return nil
	}
	return &v
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}

// boolArg extracts a boolean argument from a tool request.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}

func requiredIntArg(req mcp.CallToolRequest, key string) (int, error) {
	v, ok := optionalIntArg(req, key)
	if !ok {
		return 0, &InputError{Message: fmt.Sprintf("%s is required", key)}
	}
	return v, nil
}
