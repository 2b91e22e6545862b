package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the report job on a cron schedule for long-running mode.
type Scheduler struct {
	Cron *cron.Cron
	Job  func()
}

// NewScheduler creates a scheduler around the given job.
func NewScheduler(job func()) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds()),
		Job:  job,
	}
}

// Register adds the job under a seconds-granularity cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.Job); err != nil {
		return fmt.Errorf("register report task: %w", err)
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
