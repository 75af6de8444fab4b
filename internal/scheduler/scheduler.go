package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Evicter drops cached entries and reports how many were removed.
type Evicter interface {
	Clear() int
}

type Scheduler struct {
	s         gocron.Scheduler
	directory Evicter
	refresh   string
}

// NewScheduler builds a scheduler that clears the player directory cache
// on the given five-field cron expression.
func NewScheduler(directory Evicter, refresh string) (*Scheduler, error) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:         s,
		directory: directory,
		refresh:   refresh,
	}, nil
}

func (s *Scheduler) Start() error {
	_, err := s.s.NewJob(
		gocron.CronJob(s.refresh, false),
		gocron.NewTask(s.refreshDirectory),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create directory refresh job: %w", err)
	}

	s.s.Start()
	slog.Info("Directory refresh scheduled", "cron", s.refresh)
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

// NextRun reports when the refresh job fires next.
func (s *Scheduler) NextRun() (time.Time, error) {
	jobs := s.s.Jobs()
	if len(jobs) == 0 {
		return time.Time{}, fmt.Errorf("no directory refresh job scheduled")
	}
	return jobs[0].NextRun()
}

func (s *Scheduler) refreshDirectory() {
	evicted := s.directory.Clear()
	slog.Info("Cleared player directory cache", "entries", evicted)
}
