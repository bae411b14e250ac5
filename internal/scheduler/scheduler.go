package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const tickTimeout = 30 * time.Second

// Regenerator recomputes the alert collection against the current clock.
type Regenerator interface {
	Regenerate(ctx context.Context) (int, error)
}

// Scheduler sweeps the alert rules on a cron schedule. Time-based rules
// cross their boundaries without any record changing, so mutation-driven
// recomputation alone would miss them.
type Scheduler struct {
	cron   *cron.Cron
	alerts Regenerator
	logger *slog.Logger
}

// New creates a scheduler that runs the alert sweep on the given cron
// schedule (e.g. "@hourly").
func New(alerts Regenerator, schedule string, logger *slog.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(),
		alerts: alerts,
		logger: logger,
	}

	if _, err := s.cron.AddFunc(schedule, s.tick); err != nil {
		return nil, fmt.Errorf("invalid alert schedule %q: %w", schedule, err)
	}

	return s, nil
}

// Start begins running the schedule in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("alert scheduler started")
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("alert scheduler stopped")
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), tickTimeout)
	defer cancel()

	count, err := s.alerts.Regenerate(ctx)
	if err != nil {
		s.logger.Error("scheduled alert sweep failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("scheduled alert sweep", "new_alerts", count)
	}
}
