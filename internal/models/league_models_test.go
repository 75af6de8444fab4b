package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestRosterStatusValues(t *testing.T) {
	tests := map[RosterStatus]string{
		RosterStatusRostered:  "ROSTERED",
		RosterStatusFreeAgent: "FREE_AGENT",
		RosterStatusWaivers:   "WAIVERS",
		RosterStatusUnknown:   "UNKNOWN",
	}
	for status, want := range tests {
		if string(status) != want {
			t.Errorf("status = %q, want %q", status, want)
		}
	}
}

func TestNewFantasyTeam_PrimaryOwner(t *testing.T) {
	team := NewFantasyTeam(0, "Test Team", "TEST", []string{"John Doe", "Jane Doe"})
	if team.PrimaryOwner != "John Doe" {
		t.Errorf("PrimaryOwner = %q, want John Doe", team.PrimaryOwner)
	}

	team = NewFantasyTeam(1, "Orphans", "ORP", nil)
	if team.PrimaryOwner != UnknownOwner {
		t.Errorf("PrimaryOwner = %q, want %q", team.PrimaryOwner, UnknownOwner)
	}
	if team.Owners == nil || len(team.Owners) != 0 {
		t.Errorf("Owners = %v, want empty slice", team.Owners)
	}
	if team.Ties != 0 || team.PointsFor != 0 || team.PointsAgainst != 0 || team.Standing != 0 {
		t.Error("numeric defaults should be zero")
	}
}

func TestFantasyTeam_ToMap(t *testing.T) {
	team := NewFantasyTeam(0, "Test Team", "TEST", []string{"John Doe"})
	team.Wins = 10
	team.Losses = 5
	team.PointsFor = 500.0
	team.PointsAgainst = 450.0
	team.Standing = 1

	want := map[string]any{
		"team_id":        0,
		"team_name":      "Test Team",
		"team_abbrev":    "TEST",
		"owners":         []string{"John Doe"},
		"primary_owner":  "John Doe",
		"wins":           10,
		"losses":         5,
		"ties":           0,
		"points_for":     500.0,
		"points_against": 450.0,
		"standing":       1,
	}
	if got := team.ToMap(); !reflect.DeepEqual(got, want) {
		t.Errorf("ToMap() = %v, want %v", got, want)
	}
}

func TestNewFantasyPlayer_Defaults(t *testing.T) {
	p := NewFantasyPlayer(12345, "Test Player", "NYY", "SS")

	if p.LineupSlot != nil {
		t.Errorf("LineupSlot = %v, want nil", *p.LineupSlot)
	}
	if p.InjuryStatus != "ACTIVE" {
		t.Errorf("InjuryStatus = %q, want ACTIVE", p.InjuryStatus)
	}
	if p.RosterStatus != RosterStatusUnknown {
		t.Errorf("RosterStatus = %q, want UNKNOWN", p.RosterStatus)
	}
	if p.EligibleSlots == nil || p.Stats == nil {
		t.Error("EligibleSlots and Stats should be empty, not nil")
	}
	if p.FantasyTeamID != nil || p.FantasyTeamName != nil || p.FantasyTeamAbbrev != nil {
		t.Error("fantasy team fields should be nil")
	}
}

func TestFantasyPlayer_RosteredInvariant(t *testing.T) {
	p := NewFantasyPlayer(1, "Aaron Judge", "NYY", "OF")
	slot := "OF"
	p.LineupSlot = &slot

	p.Rostered(0, "Test Team", "TEST")
	if p.RosterStatus != RosterStatusRostered || p.FantasyTeamID == nil || *p.FantasyTeamID != 0 {
		t.Fatalf("Rostered() did not set ownership: %+v", p)
	}

	p.Unrostered(RosterStatusWaivers)
	if p.RosterStatus != RosterStatusWaivers {
		t.Errorf("RosterStatus = %q, want WAIVERS", p.RosterStatus)
	}
	if p.FantasyTeamID != nil || p.FantasyTeamName != nil || p.FantasyTeamAbbrev != nil {
		t.Error("Unrostered() must clear the fantasy team")
	}
	if p.LineupSlot != nil {
		t.Error("Unrostered() must clear the lineup slot")
	}
}

func TestFantasyPlayer_ToMap(t *testing.T) {
	p := NewFantasyPlayer(12345, "Aaron Judge", "NYY", "OF")
	p.EligibleSlots = []string{"OF", "UTIL"}
	slot := "OF"
	p.LineupSlot = &slot
	p.Stats = map[string]any{"002024": map[string]float64{"HR": 45}}
	p.Rostered(0, "Test Team", "TEST")

	got := p.ToMap()
	want := map[string]any{
		"player_id":           12345,
		"name":                "Aaron Judge",
		"team":                "NYY",
		"position":            "OF",
		"eligible_slots":      []string{"OF", "UTIL"},
		"lineup_slot":         "OF",
		"injury_status":       "ACTIVE",
		"stats":               map[string]any{"002024": map[string]float64{"HR": 45}},
		"roster_status":       "ROSTERED",
		"fantasy_team_id":     0,
		"fantasy_team_name":   "Test Team",
		"fantasy_team_abbrev": "TEST",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToMap() = %v, want %v", got, want)
	}
}

func TestFantasyPlayer_ToMap_Defaults(t *testing.T) {
	got := NewFantasyPlayer(1, "Nobody", "", "").ToMap()
	for _, key := range []string{"lineup_slot", "fantasy_team_id", "fantasy_team_name", "fantasy_team_abbrev"} {
		if got[key] != nil {
			t.Errorf("%s = %v, want nil", key, got[key])
		}
	}
	if got["roster_status"] != "UNKNOWN" {
		t.Errorf("roster_status = %v, want UNKNOWN", got["roster_status"])
	}
}

func TestFantasyPlayer_JSONNullFields(t *testing.T) {
	b, err := json.Marshal(NewFantasyPlayer(1, "Nobody", "", ""))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v, ok := decoded["lineup_slot"]; !ok || v != nil {
		t.Errorf("lineup_slot should serialize as null, got %v (present=%v)", v, ok)
	}
}

func TestNewLeagueSettings_Defaults(t *testing.T) {
	s := NewLeagueSettings("123456", "Test League", 2024)

	if !s.IsPublic {
		t.Error("IsPublic should default to true")
	}
	if s.ExperienceType != nil || s.RestrictionType != nil {
		t.Error("optional string fields should default to nil")
	}
	for name, block := range map[string]map[string]any{
		"acquisition": s.AcquisitionSettings,
		"draft":       s.DraftSettings,
		"finance":     s.FinanceSettings,
		"roster":      s.RosterSettings,
		"schedule":    s.ScheduleSettings,
		"scoring":     s.ScoringSettings,
		"trade":       s.TradeSettings,
	} {
		if block == nil || len(block) != 0 {
			t.Errorf("%s settings = %v, want empty map", name, block)
		}
	}
}

func TestLeagueSettings_ToMap(t *testing.T) {
	s := NewLeagueSettings("123456", "Test Fantasy League", 2024)
	s.TeamCount = 12
	s.PlayoffTeamCount = 6
	s.RegSeasonCount = 162
	s.ScoringType = "H2H_CATEGORY"
	s.AcquisitionSettings = map[string]any{"acquisitionBudget": 100.0}
	s.StatCategories = map[string][]string{
		"batting":  {"HR", "R"},
		"pitching": {"ERA", "K"},
	}
	exp := "REDRAFT"
	s.ExperienceType = &exp

	got := s.ToMap()
	if got["league_id"] != "123456" || got["team_count"] != 12 || got["scoring_type"] != "H2H_CATEGORY" {
		t.Errorf("identity fields not preserved: %v", got)
	}
	if !reflect.DeepEqual(got["acquisition_settings"], map[string]any{"acquisitionBudget": 100.0}) {
		t.Errorf("acquisition_settings = %v", got["acquisition_settings"])
	}
	if !reflect.DeepEqual(got["stat_categories"], s.StatCategories) {
		t.Errorf("stat_categories = %v", got["stat_categories"])
	}
	if got["experience_type"] != "REDRAFT" {
		t.Errorf("experience_type = %v, want REDRAFT", got["experience_type"])
	}
	if got["restriction_type"] != nil {
		t.Errorf("restriction_type = %v, want nil", got["restriction_type"])
	}
	if got["is_public"] != true {
		t.Errorf("is_public = %v, want true", got["is_public"])
	}
}
