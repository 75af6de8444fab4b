package espn

import "strconv"

// Fantasy baseball game code used in every endpoint path.
const gameCode = "flb"

const (
	SlotBench        = 16
	SlotInjuredList  = 17
	FreeAgentTeamID  = 0
	FreeAgentLookups = 1000
)

var lineupSlots = map[int]string{
	0:  "C",
	1:  "1B",
	2:  "2B",
	3:  "3B",
	4:  "SS",
	5:  "OF",
	6:  "2B/SS",
	7:  "1B/3B",
	8:  "LF",
	9:  "CF",
	10: "RF",
	11: "DH",
	12: "UTIL",
	13: "P",
	14: "SP",
	15: "RP",
	16: "BE",
	17: "IL",
	19: "IF",
}

var slotIDs = func() map[string]int {
	m := make(map[string]int, len(lineupSlots))
	for id, name := range lineupSlots {
		m[name] = id
	}
	return m
}()

var defaultPositions = map[int]string{
	1:  "SP",
	2:  "C",
	3:  "1B",
	4:  "2B",
	5:  "3B",
	6:  "SS",
	7:  "LF",
	8:  "CF",
	9:  "RF",
	10: "DH",
	11: "RP",
}

var proTeams = map[int]string{
	0: "FA", 1: "Bal", 2: "Bos", 3: "LAA", 4: "ChW", 5: "Cle", 6: "Det", 7: "KC", 8: "Mil",
	9: "Min", 10: "NYY", 11: "Oak", 12: "Sea", 13: "Tex", 14: "Tor", 15: "Atl", 16: "ChC",
	17: "Cin", 18: "Hou", 19: "LAD", 20: "Wsh", 21: "NYM", 22: "Phi", 23: "Pit", 24: "StL",
	25: "SD", 26: "SF", 27: "Col", 28: "Mia", 29: "Ari", 30: "TB",
}

// StatsMap translates platform stat ids to their short names.
var StatsMap = map[int]string{
	0: "AB", 1: "H", 2: "AVG", 3: "2B", 4: "3B", 5: "HR", 6: "XBH", 7: "1B", 8: "TB",
	9: "SLG", 10: "B_BB", 11: "B_IBB", 12: "HBP", 13: "SF", 14: "SH", 15: "SAC", 16: "PA",
	17: "OBP", 18: "OPS", 19: "RC", 20: "R", 21: "RBI", 23: "SB", 24: "CS", 25: "SB-CS",
	26: "GDP", 27: "B_SO", 28: "PS", 29: "PPA", 31: "CYC",

	32: "GP", 33: "GS", 34: "OUTS", 35: "TBF", 36: "P", 37: "P_H", 38: "OBA", 39: "P_BB",
	40: "P_IBB", 41: "WHIP", 42: "HBP", 43: "OOBP", 44: "P_R", 45: "ER", 46: "P_HR",
	47: "ERA", 48: "K", 49: "K/9", 50: "WP", 51: "BLK", 52: "PK", 53: "W", 54: "L",
	55: "WPCT", 56: "SVO", 57: "SV", 58: "BLSV", 59: "SV%", 60: "HLD", 62: "CG", 63: "QS",
	65: "NH", 66: "PG",

	67: "TC", 68: "PO", 69: "A", 70: "OFA", 71: "FPCT", 72: "E", 73: "DP", 74: "B_G_W",
	75: "B_G_L", 76: "P_G_W", 77: "P_G_L", 81: "G", 82: "K/BB", 83: "SVHD", 99: "STARTER",
}

var pitchingStats = map[string]bool{
	"GP": true, "GS": true, "OUTS": true, "TBF": true, "P_H": true, "P_BB": true,
	"WHIP": true, "P_R": true, "ER": true, "P_HR": true, "ERA": true, "K": true,
	"W": true, "L": true, "SV": true, "QS": true, "HLD": true, "BLSV": true,
	"K/BB": true, "SVHD": true, "WP": true, "BLK": true, "PK": true, "SVO": true,
	"CG": true, "WPCT": true, "OBA": true, "OOBP": true, "P_IBB": true, "SV%": true,
	"64": true,
}

// SlotName returns the slot label, or the decimal id for unknown slots.
func SlotName(id int) string {
	if name, ok := lineupSlots[id]; ok {
		return name
	}
	return strconv.Itoa(id)
}

// SlotID reverses SlotName for known labels.
func SlotID(name string) (int, bool) {
	id, ok := slotIDs[name]
	return id, ok
}

func PositionName(id int) string {
	return defaultPositions[id]
}

func ProTeamName(id int) string {
	return proTeams[id]
}

// StatName returns the short name for a stat id key such as "5".
func StatName(key string) (string, bool) {
	id, err := strconv.Atoi(key)
	if err != nil {
		return "", false
	}
	name, ok := StatsMap[id]
	return name, ok
}

// IsPitchingStat reports whether the stat name belongs to the pitching bucket.
func IsPitchingStat(name string) bool {
	return pitchingStats[name]
}
