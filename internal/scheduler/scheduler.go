// Package scheduler runs the slow periodic jobs: the autosave flush and the
// leaderboard history snapshot. The fast 100ms production tick lives in the
// economy core; cron cannot express sub-second cadence.
package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"CookieForge/internal/account"
	"CookieForge/internal/options"
	"CookieForge/internal/recorder"
)

// Scheduler manages all cron jobs.
type Scheduler struct {
	Cron     *cron.Cron
	Accounts *account.Repository
	Options  *options.Store
	Recorder recorder.Recorder
}

// NewScheduler creates a new Scheduler.
func NewScheduler(accounts *account.Repository, opts *options.Store, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Accounts: accounts,
		Options:  opts,
		Recorder: rec,
	}
}

// RegisterAll registers the autosave and leaderboard snapshot jobs.
func (s *Scheduler) RegisterAll(autosaveCron, snapshotCron string) error {
	if _, err := s.Cron.AddFunc(autosaveCron, s.autosave); err != nil {
		return fmt.Errorf("register autosave job: %w", err)
	}
	if _, err := s.Cron.AddFunc(snapshotCron, s.snapshotLeaderboard); err != nil {
		return fmt.Errorf("register snapshot job: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// autosave flushes accounts and preferences. Skipped when the player turned
// autosave off; the per-action syncs still run regardless.
func (s *Scheduler) autosave() {
	if s.Options != nil && !s.Options.Current().AutoSave {
		return
	}
	s.Accounts.Flush()
	if s.Options != nil {
		s.Options.Save()
	}
}

func (s *Scheduler) snapshotLeaderboard() {
	entries := s.Accounts.Leaderboard()
	if len(entries) == 0 {
		return
	}
	if err := s.Recorder.RecordLeaderboard(entries); err != nil {
		log.Printf("[ERROR] record leaderboard snapshot: %v", err)
	}
}
