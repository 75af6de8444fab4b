package fantasy

import (
	"sort"
	"strconv"
	"strings"

	"github.com/omarshaarawi/espn-fantasy-mcp/internal/api/espn"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/models"
)

func mapTeam(idx int, team models.Team, members map[string]string) models.FantasyTeam {
	owners := make([]string, 0, len(team.Owners))
	for _, id := range team.Owners {
		if name, ok := members[id]; ok && name != "" {
			owners = append(owners, name)
		} else {
			owners = append(owners, id)
		}
	}

	t := models.NewFantasyTeam(idx, teamName(team), team.Abbreviation, owners)
	t.Wins = team.Record.Overall.Wins
	t.Losses = team.Record.Overall.Losses
	t.Ties = team.Record.Overall.Ties
	t.PointsFor = team.Record.Overall.PointsFor
	t.PointsAgainst = team.Record.Overall.PointsAgainst
	t.Standing = team.PlayoffSeed
	return t
}

func teamName(team models.Team) string {
	if team.Name != "" {
		return team.Name
	}
	return strings.TrimSpace(team.Location + " " + team.Nickname)
}

func memberNames(members []models.Member) map[string]string {
	names := make(map[string]string, len(members))
	for _, m := range members {
		full := strings.TrimSpace(m.FirstName + " " + m.LastName)
		switch {
		case full != "":
			names[m.ID] = full
		case m.DisplayName != "":
			names[m.ID] = m.DisplayName
		}
	}
	return names
}

func mapPlayer(p models.Player) models.FantasyPlayer {
	player := models.NewFantasyPlayer(p.ID, p.FullName, espn.ProTeamName(p.ProTeamID), espn.PositionName(p.DefaultPositionID))

	for _, slot := range p.EligibleSlots {
		player.EligibleSlots = append(player.EligibleSlots, espn.SlotName(slot))
	}
	if p.InjuryStatus != "" {
		player.InjuryStatus = p.InjuryStatus
	}
	for _, s := range p.Stats {
		key := s.ID
		if key == "" {
			key = strconv.Itoa(s.ScoringPeriodID)
		}
		player.Stats[key] = translateStats(s.Stats)
	}
	return player
}

func mapRosterEntry(entry models.RosterEntry, idx int, team models.Team) models.FantasyPlayer {
	p := entry.PlayerPoolEntry.Player
	if p.ID == 0 {
		p.ID = entry.PlayerID
	}
	player := mapPlayer(p)
	slot := espn.SlotName(entry.LineupSlotID)
	player.LineupSlot = &slot
	player.Rostered(idx, teamName(team), team.Abbreviation)
	return player
}

func mapFreeAgent(entry models.PlayerPoolEntry) models.FantasyPlayer {
	player := mapPlayer(entry.Player)
	if player.PlayerID == 0 {
		player.PlayerID = entry.ID
	}
	status := models.RosterStatusFreeAgent
	if entry.Status == "WAIVERS" {
		status = models.RosterStatusWaivers
	}
	player.Unrostered(status)
	return player
}

func translateStats(raw map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(raw))
	for key, value := range raw {
		if name, ok := espn.StatName(key); ok {
			out[name] = value
		} else {
			out[key] = value
		}
	}
	return out
}

func mapSettings(leagueID string, seasonYear int, s models.Settings, raw map[string]any) models.LeagueSettings {
	settings := models.NewLeagueSettings(leagueID, s.Name, seasonYear)
	settings.TeamCount = s.Size
	settings.PlayoffTeamCount = s.ScheduleSettings.PlayoffTeamCount
	settings.RegSeasonCount = s.ScheduleSettings.MatchupPeriodCount
	settings.ScoringType = s.ScoringSettings.ScoringType

	settings.AcquisitionSettings = block(raw, "acquisitionSettings")
	settings.DraftSettings = block(raw, "draftSettings")
	settings.FinanceSettings = block(raw, "financeSettings")
	settings.RosterSettings = block(raw, "rosterSettings")
	settings.ScheduleSettings = block(raw, "scheduleSettings")
	settings.ScoringSettings = block(raw, "scoringSettings")
	settings.TradeSettings = block(raw, "tradeSettings")

	if v, ok := raw["experienceType"].(string); ok {
		settings.ExperienceType = &v
	}
	if v, ok := raw["isPublic"].(bool); ok {
		settings.IsPublic = v
	}
	if v, ok := raw["restrictionType"].(string); ok {
		settings.RestrictionType = &v
	}

	for id, name := range espn.StatsMap {
		settings.StatIDMap[strconv.Itoa(id)] = name
	}
	settings.StatCategories = statCategories(settings.ScoringSettings)

	return settings
}

func block(raw map[string]any, key string) map[string]any {
	if m, ok := raw[key].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// statCategories splits the league's scoring items into sorted batting and
// pitching name lists. Items without a known name are skipped.
func statCategories(scoring map[string]any) map[string][]string {
	batting, pitching := []string{}, []string{}

	items, _ := scoring["scoringItems"].([]any)
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id, ok := m["statId"].(float64)
		if !ok {
			continue
		}
		name, ok := espn.StatName(strconv.Itoa(int(id)))
		if !ok {
			continue
		}
		if espn.IsPitchingStat(name) {
			pitching = append(pitching, name)
		} else {
			batting = append(batting, name)
		}
	}

	sort.Strings(batting)
	sort.Strings(pitching)
	return map[string][]string{
		"batting":  batting,
		"pitching": pitching,
	}
}
