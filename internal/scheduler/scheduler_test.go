package scheduler

import (
	"testing"
	"time"

	"github.com/omarshaarawi/espn-fantasy-mcp/internal/repository/memory"
)

func TestScheduler_RefreshClearsDirectory(t *testing.T) {
	repo := memory.NewDirectoryRepository()
	repo.Save(memory.DirectoryKey{LeagueID: "1", SeasonYear: 2024}, map[string]int{"Aaron Judge": 33192})
	repo.Save(memory.DirectoryKey{LeagueID: "2", SeasonYear: 2024}, map[string]int{"Shohei Ohtani": 39832})

	s, err := NewScheduler(repo, "0 6 * * *")
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	s.refreshDirectory()

	if _, ok := repo.Get(memory.DirectoryKey{LeagueID: "1", SeasonYear: 2024}); ok {
		t.Error("directory should be empty after refresh")
	}
}

func TestScheduler_StartSchedulesJob(t *testing.T) {
	s, err := NewScheduler(memory.NewDirectoryRepository(), "0 6 * * *")
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Stop()

	next, err := s.NextRun()
	if err != nil {
		t.Fatalf("NextRun: %v", err)
	}
	if next.Hour() != 6 || next.Minute() != 0 || !next.After(time.Now()) {
		t.Errorf("next run = %v, want the next 06:00 UTC", next)
	}
}

func TestScheduler_InvalidExpression(t *testing.T) {
	s, err := NewScheduler(memory.NewDirectoryRepository(), "not a cron")
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	defer s.Stop()

	if err := s.Start(); err == nil {
		t.Error("expected an error for an invalid cron expression")
	}
}
