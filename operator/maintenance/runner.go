package maintenance

import (
	"context"
	"fmt"
	"sync"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/google/uuid"

	"github.com/productscience/liquidstake/operator/config"
	"github.com/productscience/liquidstake/operator/logging"
	"github.com/productscience/liquidstake/x/liquidstaking/types"
)

// StepReport is the outcome of one maintenance message.
type StepReport struct {
	Attempts int    `json:"attempts"`
	OK       bool   `json:"ok"`
	Error    string `json:"error,omitempty"`
}

// RunReport is the outcome of one scheduled run.
type RunReport struct {
	ID            string     `json:"id"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    time.Time  `json:"finished_at"`
	ClaimAndStake StepReport `json:"claim_and_stake"`
	AdvanceWindow StepReport `json:"advance_window"`
}

func (r RunReport) OK() bool {
	return r.ClaimAndStake.OK && r.AdvanceWindow.OK
}

// Runner submits claim_and_stake once and advance_window with retries.
type Runner struct {
	admin       string
	retry       config.RetryConfig
	broadcaster Broadcaster
	now         func() time.Time
	sleep       func(ctx context.Context, d time.Duration) error

	mu   sync.RWMutex
	last *RunReport
	runs uint64
}

func NewRunner(admin string, retry config.RetryConfig, broadcaster Broadcaster) *Runner {
	return &Runner{
		admin:       admin,
		retry:       retry,
		broadcaster: broadcaster,
		now:         time.Now,
		sleep:       sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (r *Runner) Run(ctx context.Context) RunReport {
	report := RunReport{ID: uuid.NewString(), StartedAt: r.now()}
	logging.Info("maintenance run started", logging.Maintenance, "run_id", report.ID)

	report.ClaimAndStake = r.submit(ctx, report.ID, &types.MsgClaimAndStake{Admin: r.admin}, 1)
	// advance_window runs even when compounding failed; withdrawals must not stall
	report.AdvanceWindow = r.submit(ctx, report.ID, &types.MsgAdvanceWindow{Admin: r.admin}, r.retry.Attempts)
	report.FinishedAt = r.now()

	r.mu.Lock()
	r.last = &report
	r.runs++
	r.mu.Unlock()

	logging.Info("maintenance run finished", logging.Maintenance,
		"run_id", report.ID,
		"ok", report.OK(),
		"advance_attempts", report.AdvanceWindow.Attempts,
	)
	return report
}

func (r *Runner) submit(ctx context.Context, runID string, msg sdk.Msg, attempts int) StepReport {
	var step StepReport
	for step.Attempts < attempts {
		if step.Attempts > 0 {
			if err := r.sleep(ctx, r.retry.Delay); err != nil {
				step.Error = err.Error()
				return step
			}
		}
		step.Attempts++
		logging.Trace("broadcasting maintenance message", logging.Maintenance,
			"run_id", runID,
			"msg", fmt.Sprintf("%T", msg),
			"attempt", step.Attempts,
		)
		err := r.broadcaster.Broadcast(ctx, msg)
		if err == nil {
			step.OK = true
			step.Error = ""
			return step
		}
		step.Error = err.Error()
		logging.Warn("maintenance message failed", logging.Maintenance,
			"run_id", runID,
			"msg", fmt.Sprintf("%T", msg),
			"attempt", step.Attempts,
			"error", err,
		)
	}
	logging.Error("maintenance message gave up", logging.Maintenance,
		"run_id", runID,
		"msg", fmt.Sprintf("%T", msg),
		"attempts", step.Attempts,
	)
	return step
}

// LastReport returns the latest run and the number of runs so far.
func (r *Runner) LastReport() (RunReport, uint64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.last == nil {
		return RunReport{}, r.runs, false
	}
	return *r.last, r.runs, true
}
