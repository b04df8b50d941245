package maintenance

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/productscience/liquidstake/operator/logging"
)

// cronLogger routes cron's own logging through the scheduler subsystem.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logging.Debug(msg, logging.Scheduler, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logging.Error(msg, logging.Scheduler, append(keysAndValues, "error", err)...)
}

// Scheduler triggers the runner on a standard five-field cron schedule.
// Runs never overlap: a tick arriving while a run is in progress is skipped.
type Scheduler struct {
	cron   *cron.Cron
	runner *Runner
	ctx    context.Context
	cancel context.CancelFunc
}

func NewScheduler(spec string, runner *Runner) (*Scheduler, error) {
	logger := cronLogger{}
	c := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	s := &Scheduler{cron: c, runner: runner}
	if _, err := c.AddFunc(spec, s.tick); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) tick() {
	s.runner.Run(s.ctx)
}

// Start begins scheduling; runs are cancelled when ctx is done or Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.cron.Start()
	logging.Info("scheduler started", logging.Scheduler, "entries", len(s.cron.Entries()))
}

// Stop halts scheduling and waits for a run in progress to finish.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	<-s.cron.Stop().Done()
	logging.Info("scheduler stopped", logging.Scheduler)
}
