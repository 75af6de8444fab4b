package models

type RosterStatus string

const (
	RosterStatusRostered  RosterStatus = "ROSTERED"
	RosterStatusFreeAgent RosterStatus = "FREE_AGENT"
	RosterStatusWaivers   RosterStatus = "WAIVERS"
	RosterStatusUnknown   RosterStatus = "UNKNOWN"
)

const (
	DefaultInjuryStatus = "ACTIVE"
	UnknownOwner        = "Unknown"
)

type FantasyTeam struct {
	TeamID        int      `json:"team_id"`
	TeamName      string   `json:"team_name"`
	TeamAbbrev    string   `json:"team_abbrev"`
	Owners        []string `json:"owners"`
	PrimaryOwner  string   `json:"primary_owner"`
	Wins          int      `json:"wins"`
	Losses        int      `json:"losses"`
	Ties          int      `json:"ties"`
	PointsFor     float64  `json:"points_for"`
	PointsAgainst float64  `json:"points_against"`
	Standing      int      `json:"standing"`
}

// NewFantasyTeam fills the primary owner from the owner list.
func NewFantasyTeam(id int, name, abbrev string, owners []string) FantasyTeam {
	if owners == nil {
		owners = []string{}
	}
	primary := UnknownOwner
	if len(owners) > 0 {
		primary = owners[0]
	}
	return FantasyTeam{
		TeamID:       id,
		TeamName:     name,
		TeamAbbrev:   abbrev,
		Owners:       owners,
		PrimaryOwner: primary,
	}
}

func (t FantasyTeam) ToMap() map[string]any {
	return map[string]any{
		"team_id":        t.TeamID,
		"team_name":      t.TeamName,
		"team_abbrev":    t.TeamAbbrev,
		"owners":         t.Owners,
		"primary_owner":  t.PrimaryOwner,
		"wins":           t.Wins,
		"losses":         t.Losses,
		"ties":           t.Ties,
		"points_for":     t.PointsFor,
		"points_against": t.PointsAgainst,
		"standing":       t.Standing,
	}
}

type FantasyPlayer struct {
	PlayerID      int            `json:"player_id"`
	Name          string         `json:"name"`
	Team          string         `json:"team"`
	Position      string         `json:"position"`
	EligibleSlots []string       `json:"eligible_slots"`
	LineupSlot    *string        `json:"lineup_slot"`
	InjuryStatus  string         `json:"injury_status"`
	Stats         map[string]any `json:"stats"`

	RosterStatus      RosterStatus `json:"roster_status"`
	FantasyTeamID     *int         `json:"fantasy_team_id"`
	FantasyTeamName   *string      `json:"fantasy_team_name"`
	FantasyTeamAbbrev *string      `json:"fantasy_team_abbrev"`
}

// NewFantasyPlayer returns an unowned player with the documented defaults.
func NewFantasyPlayer(id int, name, proTeam, position string) FantasyPlayer {
	return FantasyPlayer{
		PlayerID:      id,
		Name:          name,
		Team:          proTeam,
		Position:      position,
		EligibleSlots: []string{},
		InjuryStatus:  DefaultInjuryStatus,
		Stats:         map[string]any{},
		RosterStatus:  RosterStatusUnknown,
	}
}

// Rostered marks the player as owned by the given fantasy team.
func (p *FantasyPlayer) Rostered(teamID int, teamName, teamAbbrev string) {
	p.RosterStatus = RosterStatusRostered
	p.FantasyTeamID = &teamID
	p.FantasyTeamName = &teamName
	p.FantasyTeamAbbrev = &teamAbbrev
}

// Unrostered marks the player as available with the given status and
// clears ownership and lineup slot.
func (p *FantasyPlayer) Unrostered(status RosterStatus) {
	p.RosterStatus = status
	p.LineupSlot = nil
	p.FantasyTeamID = nil
	p.FantasyTeamName = nil
	p.FantasyTeamAbbrev = nil
}

// SlotName returns the lineup slot or "" when the player has none.
func (p FantasyPlayer) SlotName() string {
	if p.LineupSlot == nil {
		return ""
	}
	return *p.LineupSlot
}

func (p FantasyPlayer) ToMap() map[string]any {
	m := map[string]any{
		"player_id":           p.PlayerID,
		"name":                p.Name,
		"team":                p.Team,
		"position":            p.Position,
		"eligible_slots":      p.EligibleSlots,
		"lineup_slot":         nil,
		"injury_status":       p.InjuryStatus,
		"stats":               p.Stats,
		"roster_status":       string(p.RosterStatus),
		"fantasy_team_id":     nil,
		"fantasy_team_name":   nil,
		"fantasy_team_abbrev": nil,
	}
	if p.LineupSlot != nil {
		m["lineup_slot"] = *p.LineupSlot
	}
	if p.FantasyTeamID != nil {
		m["fantasy_team_id"] = *p.FantasyTeamID
	}
	if p.FantasyTeamName != nil {
		m["fantasy_team_name"] = *p.FantasyTeamName
	}
	if p.FantasyTeamAbbrev != nil {
		m["fantasy_team_abbrev"] = *p.FantasyTeamAbbrev
	}
	return m
}

type LeagueSettings struct {
	LeagueID         string `json:"league_id"`
	Name             string `json:"name"`
	SeasonYear       int    `json:"season_year"`
	TeamCount        int    `json:"team_count"`
	PlayoffTeamCount int    `json:"playoff_team_count"`
	RegSeasonCount   int    `json:"reg_season_count"`
	ScoringType      string `json:"scoring_type"`

	AcquisitionSettings map[string]any `json:"acquisition_settings"`
	DraftSettings       map[string]any `json:"draft_settings"`
	FinanceSettings     map[string]any `json:"finance_settings"`
	RosterSettings      map[string]any `json:"roster_settings"`
	ScheduleSettings    map[string]any `json:"schedule_settings"`
	ScoringSettings     map[string]any `json:"scoring_settings"`
	TradeSettings       map[string]any `json:"trade_settings"`

	ExperienceType  *string `json:"experience_type"`
	IsPublic        bool    `json:"is_public"`
	RestrictionType *string `json:"restriction_type"`

	StatCategories map[string][]string `json:"stat_categories"`
	StatIDMap      map[string]string   `json:"stat_id_map"`
}

// NewLeagueSettings returns settings with empty raw blocks and IsPublic set.
func NewLeagueSettings(leagueID, name string, seasonYear int) LeagueSettings {
	return LeagueSettings{
		LeagueID:            leagueID,
		Name:                name,
		SeasonYear:          seasonYear,
		AcquisitionSettings: map[string]any{},
		DraftSettings:       map[string]any{},
		FinanceSettings:     map[string]any{},
		RosterSettings:      map[string]any{},
		ScheduleSettings:    map[string]any{},
		ScoringSettings:     map[string]any{},
		TradeSettings:       map[string]any{},
		IsPublic:            true,
		StatCategories:      map[string][]string{},
		StatIDMap:           map[string]string{},
	}
}

func (s LeagueSettings) ToMap() map[string]any {
	m := map[string]any{
		"league_id":            s.LeagueID,
		"name":                 s.Name,
		"season_year":          s.SeasonYear,
		"team_count":           s.TeamCount,
		"playoff_team_count":   s.PlayoffTeamCount,
		"reg_season_count":     s.RegSeasonCount,
		"scoring_type":         s.ScoringType,
		"acquisition_settings": s.AcquisitionSettings,
		"draft_settings":       s.DraftSettings,
		"finance_settings":     s.FinanceSettings,
		"roster_settings":      s.RosterSettings,
		"schedule_settings":    s.ScheduleSettings,
		"scoring_settings":     s.ScoringSettings,
		"trade_settings":       s.TradeSettings,
		"experience_type":      nil,
		"is_public":            s.IsPublic,
		"restriction_type":     nil,
		"stat_categories":      s.StatCategories,
		"stat_id_map":          s.StatIDMap,
	}
	if s.ExperienceType != nil {
		m["experience_type"] = *s.ExperienceType
	}
	if s.RestrictionType != nil {
		m["restriction_type"] = *s.RestrictionType
	}
	return m
}
