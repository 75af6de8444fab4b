package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
)

const DefaultSeasonYear = 2024

var ErrLeagueIDRequired = errors.New("league_id is required")

type Config struct {
	ESPNAPI   ESPNAPI
	Directory Directory
}

type ESPNAPI struct {
	ESPNS2      string        `envconfig:"ESPN_S2"`
	SWID        string        `envconfig:"ESPN_SWID"`
	LeagueID    string        `envconfig:"ESPN_LEAGUE_ID"`
	SeasonYear  int           `envconfig:"ESPN_SEASON_YEAR" default:"2024"`
	TeamID      string        `envconfig:"ESPN_TEAM_ID"`
	ReadsURL    string        `envconfig:"ESPN_READS_URL" default:"https://lm-api-reads.fantasy.espn.com/apis/v3"`
	WritesURL   string        `envconfig:"ESPN_WRITES_URL" default:"https://lm-api-writes.fantasy.espn.com/apis/v3"`
	HTTPTimeout time.Duration `envconfig:"ESPN_HTTP_TIMEOUT" default:"10s"`
}

// Directory controls the player directory cache.
type Directory struct {
	// Refresh is a standard five-field cron expression. Empty disables
	// scheduled eviction.
	Refresh string `envconfig:"ESPN_DIRECTORY_REFRESH"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	if c.Directory.Refresh != "" {
		if _, err := cron.ParseStandard(c.Directory.Refresh); err != nil {
			return nil, fmt.Errorf("parsing ESPN_DIRECTORY_REFRESH: %w", err)
		}
	}
	return &c, nil
}

// HasAuth reports whether both session cookies are configured.
func (c ESPNAPI) HasAuth() bool {
	return c.ESPNS2 != "" && c.SWID != ""
}

// DefaultTeamID returns the configured team index, if any.
func (c ESPNAPI) DefaultTeamID() (int, bool) {
	if c.TeamID == "" {
		return 0, false
	}
	id, err := strconv.Atoi(c.TeamID)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Resolve applies per-call overrides on top of the environment defaults.
// A zero season falls back to the configured year, then DefaultSeasonYear.
func (c ESPNAPI) Resolve(leagueID string, seasonYear int) (string, int, error) {
	if leagueID == "" {
		leagueID = c.LeagueID
	}
	if leagueID == "" {
		return "", 0, ErrLeagueIDRequired
	}
	if seasonYear == 0 {
		seasonYear = c.SeasonYear
	}
	if seasonYear == 0 {
		seasonYear = DefaultSeasonYear
	}
	return leagueID, seasonYear, nil
}
