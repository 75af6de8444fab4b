package models

import "encoding/json"

type LeagueResponse struct {
	ID              int      `json:"id"`
	ScoringPeriodID int      `json:"scoringPeriodId"`
	SeasonID        int      `json:"seasonId"`
	SegmentID       int      `json:"segmentId"`
	Status          Status   `json:"status"`
	Teams           []Team   `json:"teams"`
	Members         []Member `json:"members"`
	Settings        Settings `json:"settings"`
}

type Settings struct {
	Name             string           `json:"name"`
	Size             int              `json:"size"`
	ScheduleSettings ScheduleSettings `json:"scheduleSettings"`
	ScoringSettings  ScoringSettings  `json:"scoringSettings"`
}

type ScheduleSettings struct {
	MatchupPeriodCount int `json:"matchupPeriodCount"`
	PlayoffTeamCount   int `json:"playoffTeamCount"`
}

type ScoringSettings struct {
	ScoringType  string        `json:"scoringType"`
	ScoringItems []ScoringItem `json:"scoringItems"`
}

type ScoringItem struct {
	StatID        int     `json:"statId"`
	IsReverseItem bool    `json:"isReverseItem"`
	Points        float64 `json:"points"`
}

// RawSettingsResponse keeps the settings object undecoded so its nested
// blocks can be passed through verbatim.
type RawSettingsResponse struct {
	Settings map[string]any `json:"settings"`
}

type Status struct {
	CurrentMatchupPeriod int  `json:"currentMatchupPeriod"`
	FinalScoringPeriod   int  `json:"finalScoringPeriod"`
	FirstScoringPeriod   int  `json:"firstScoringPeriod"`
	LatestScoringPeriod  int  `json:"latestScoringPeriod"`
	IsActive             bool `json:"isActive"`
}

type Member struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
}

type Team struct {
	ID                  int      `json:"id"`
	Abbreviation        string   `json:"abbrev"`
	Name                string   `json:"name"`
	Location            string   `json:"location"`
	Nickname            string   `json:"nickname"`
	Owners              []string `json:"owners"`
	PlayoffSeed         int      `json:"playoffSeed"`
	RankCalculatedFinal int      `json:"rankCalculatedFinal"`
	Points              float64  `json:"points"`
	Roster              Roster   `json:"roster"`
	Record              Record   `json:"record"`
}

type Roster struct {
	Entries []RosterEntry `json:"entries"`
}

type Record struct {
	Overall RecordDetails `json:"overall"`
}

type RecordDetails struct {
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	Percentage    float64 `json:"percentage"`
	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
}

type RosterEntry struct {
	PlayerID        int             `json:"playerId"`
	LineupSlotID    int             `json:"lineupSlotId"`
	AcquisitionType string          `json:"acquisitionType"`
	PlayerPoolEntry PlayerPoolEntry `json:"playerPoolEntry"`
}

type PlayerCardResponse struct {
	Players []PlayerPoolEntry `json:"players"`
}

type PlayerPoolEntry struct {
	ID               int     `json:"id"`
	OnTeamID         int     `json:"onTeamId"`
	Status           string  `json:"status"`
	Player           Player  `json:"player"`
	AppliedStatTotal float64 `json:"appliedStatTotal"`
}

type Player struct {
	ID                int       `json:"id"`
	FullName          string    `json:"fullName"`
	DefaultPositionID int       `json:"defaultPositionId"`
	ProTeamID         int       `json:"proTeamId"`
	EligibleSlots     []int     `json:"eligibleSlots"`
	Ownership         Ownership `json:"ownership"`
	Stats             []Stat    `json:"stats"`
	InjuryStatus      string    `json:"injuryStatus"`
}

type Ownership struct {
	PercentOwned float64 `json:"percentOwned"`
}

type Stat struct {
	ID              string             `json:"id"`
	SeasonID        int                `json:"seasonId"`
	StatSourceID    int                `json:"statSourceId"`
	StatSplitTypeID int                `json:"statSplitTypeId"`
	ScoringPeriodID int                `json:"scoringPeriodId"`
	AppliedTotal    float64            `json:"appliedTotal"`
	Stats           map[string]float64 `json:"stats"`
	AppliedStats    map[string]float64 `json:"appliedStats"`
}

// DirectoryPlayer is one row of the season-wide player index.
type DirectoryPlayer struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

type Transaction struct {
	IsLeagueManager      bool              `json:"isLeagueManager"`
	TeamID               int               `json:"teamId"`
	Type                 string            `json:"type"`
	MemberID             string            `json:"memberId,omitempty"`
	ScoringPeriodID      int               `json:"scoringPeriodId"`
	ExecutionType        string            `json:"executionType"`
	BidAmount            *int              `json:"bidAmount,omitempty"`
	RelatedTransactionID string            `json:"relatedTransactionId,omitempty"`
	Items                []TransactionItem `json:"items"`
}

type TransactionItem struct {
	PlayerID         int    `json:"playerId"`
	Type             string `json:"type"`
	FromLineupSlotID *int   `json:"fromLineupSlotId,omitempty"`
	ToLineupSlotID   *int   `json:"toLineupSlotId,omitempty"`
	FromTeamID       *int   `json:"fromTeamId,omitempty"`
	ToTeamID         *int   `json:"toTeamId,omitempty"`
}

// TransactionResult is the platform's reply to a write. Raw holds the
// undecoded body for auditing.
type TransactionResult struct {
	ID                   string          `json:"id"`
	Status               string          `json:"status"`
	ScoringPeriodID      int             `json:"scoringPeriodId"`
	IsPending            bool            `json:"isPending"`
	BidAmount            int             `json:"bidAmount"`
	RelatedTransactionID string          `json:"relatedTransactionId"`
	Raw                  json.RawMessage `json:"-"`
}
