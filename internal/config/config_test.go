package config

import (
	"errors"
	"os"
	"testing"
	"time"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for k, v := range env {
		t.Setenv(k, v)
	}
}

// clearEnv unsets every variable the config reads. envconfig treats a
// set-but-empty variable as present, so t.Setenv(k, "") is not enough.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ESPN_S2", "ESPN_SWID", "ESPN_LEAGUE_ID", "ESPN_SEASON_YEAR", "ESPN_TEAM_ID",
		"ESPN_READS_URL", "ESPN_WRITES_URL", "ESPN_HTTP_TIMEOUT", "ESPN_DIRECTORY_REFRESH",
	} {
		old, ok := os.LookupEnv(k)
		os.Unsetenv(k)
		if ok {
			t.Cleanup(func() { os.Setenv(k, old) })
		}
	}
}

func TestNew_WithEnvVars(t *testing.T) {
	clearEnv(t)
	setEnv(t, map[string]string{
		"ESPN_S2":          "test_espn_s2_token",
		"ESPN_SWID":        "{TEST-SWID-1234}",
		"ESPN_LEAGUE_ID":   "123456",
		"ESPN_SEASON_YEAR": "2025",
		"ESPN_TEAM_ID":     "3",
	})

	cfg, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if cfg.ESPNAPI.ESPNS2 != "test_espn_s2_token" {
		t.Errorf("ESPNS2 = %q", cfg.ESPNAPI.ESPNS2)
	}
	if cfg.ESPNAPI.SWID != "{TEST-SWID-1234}" {
		t.Errorf("SWID = %q", cfg.ESPNAPI.SWID)
	}
	if cfg.ESPNAPI.LeagueID != "123456" {
		t.Errorf("LeagueID = %q, want 123456", cfg.ESPNAPI.LeagueID)
	}
	if cfg.ESPNAPI.SeasonYear != 2025 {
		t.Errorf("SeasonYear = %d, want 2025", cfg.ESPNAPI.SeasonYear)
	}
	if id, ok := cfg.ESPNAPI.DefaultTeamID(); !ok || id != 3 {
		t.Errorf("DefaultTeamID = %d, %v; want 3, true", id, ok)
	}
	if !cfg.ESPNAPI.HasAuth() {
		t.Error("HasAuth() = false, want true")
	}
}

func TestNew_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if cfg.ESPNAPI.SeasonYear != DefaultSeasonYear {
		t.Errorf("SeasonYear = %d, want %d", cfg.ESPNAPI.SeasonYear, DefaultSeasonYear)
	}
	if cfg.ESPNAPI.HTTPTimeout != 10*time.Second {
		t.Errorf("HTTPTimeout = %v, want 10s", cfg.ESPNAPI.HTTPTimeout)
	}
	if cfg.ESPNAPI.ReadsURL == "" || cfg.ESPNAPI.WritesURL == "" {
		t.Error("platform URLs should have defaults")
	}
	if _, ok := cfg.ESPNAPI.DefaultTeamID(); ok {
		t.Error("DefaultTeamID should be unset")
	}
}

func TestHasAuth_PartialCredentials(t *testing.T) {
	tests := []struct {
		name string
		api  ESPNAPI
		want bool
	}{
		{"both", ESPNAPI{ESPNS2: "s2", SWID: "swid"}, true},
		{"only s2", ESPNAPI{ESPNS2: "s2"}, false},
		{"only swid", ESPNAPI{SWID: "swid"}, false},
		{"neither", ESPNAPI{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.api.HasAuth(); got != tt.want {
				t.Errorf("HasAuth() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNew_InvalidRefreshSchedule(t *testing.T) {
	clearEnv(t)
	t.Setenv("ESPN_DIRECTORY_REFRESH", "every tuesday")

	if _, err := New(); err == nil {
		t.Fatal("expected error for invalid cron expression")
	}
}

func TestNew_ValidRefreshSchedule(t *testing.T) {
	clearEnv(t)
	t.Setenv("ESPN_DIRECTORY_REFRESH", "0 6 * * *")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if cfg.Directory.Refresh != "0 6 * * *" {
		t.Errorf("Refresh = %q", cfg.Directory.Refresh)
	}
}

func TestResolve(t *testing.T) {
	api := ESPNAPI{LeagueID: "123456", SeasonYear: 2024}

	leagueID, season, err := api.Resolve("", 0)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if leagueID != "123456" || season != 2024 {
		t.Errorf("Resolve() = %s, %d; want 123456, 2024", leagueID, season)
	}

	leagueID, season, err = api.Resolve("999", 2023)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if leagueID != "999" || season != 2023 {
		t.Errorf("Resolve() = %s, %d; want 999, 2023", leagueID, season)
	}
}

func TestResolve_MissingLeagueID(t *testing.T) {
	api := ESPNAPI{}
	_, _, err := api.Resolve("", 0)
	if !errors.Is(err, ErrLeagueIDRequired) {
		t.Fatalf("err = %v, want ErrLeagueIDRequired", err)
	}
}

func TestResolve_SeasonFallback(t *testing.T) {
	api := ESPNAPI{LeagueID: "1"}
	_, season, err := api.Resolve("", 0)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if season != DefaultSeasonYear {
		t.Errorf("season = %d, want %d", season, DefaultSeasonYear)
	}
}
