package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-co-op/gocron/v2"

	"crowdledger/internal/config/configs"
	"crowdledger/internal/core/port"
)

const sweepJobName = "campaign_deadline_sweeper"

// Sweeper periodically finalizes campaigns whose deadline has passed. It acts
// as an ordinary caller of the ledger: a campaign finalized by someone else
// between listing and finalizing is skipped, never settled twice.
type Sweeper struct {
	scheduler gocron.Scheduler
	ctx       context.Context
	cancel    context.CancelFunc
	svc       port.LedgerUseCase
	cfg       configs.Sweep
	logger    *slog.Logger
}

// NewSweeper creates the scheduler and registers the sweep job. Start must be
// called to begin running it.
func NewSweeper(svc port.LedgerUseCase, cfg configs.Sweep, logger *slog.Logger, opts ...gocron.SchedulerOption) (*Sweeper, error) {
	s, err := gocron.NewScheduler(opts...)
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	sw := &Sweeper{scheduler: s, ctx: ctx, cancel: cancel, svc: svc, cfg: cfg, logger: logger}

	_, err = s.NewJob(
		gocron.DurationJob(cfg.Interval),
		gocron.NewTask(func() { sw.Run(sw.ctx) }),
		gocron.WithName(sweepJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		cancel()
		_ = s.Shutdown()
		return nil, fmt.Errorf("register %s: %w", sweepJobName, err)
	}
	return sw, nil
}

// Start begins running the job in the background.
func (s *Sweeper) Start() {
	s.scheduler.Start()
	s.logger.Info("sweeper started", slog.Duration("interval", s.cfg.Interval))
}

// Stop cancels a running sweep, waits for it and stops the scheduler.
func (s *Sweeper) Stop() error {
	s.cancel()
	if err := s.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("shutdown scheduler: %w", err)
	}
	s.logger.Info("sweeper stopped")
	return nil
}

// Run performs one sweep.
func (s *Sweeper) Run(ctx context.Context) {
	res, err := s.svc.FinalizeEnded(ctx, s.cfg.Caller, s.cfg.BatchSize)
	if err != nil {
		s.logger.Error("sweep failed", slog.Any("error", err))
	}
	if res.Finalized > 0 || res.Skipped > 0 {
		s.logger.Info("sweep completed",
			slog.Int("finalized", res.Finalized),
			slog.Int("successful", res.Successful),
			slog.Int("skipped", res.Skipped),
		)
	}
}
