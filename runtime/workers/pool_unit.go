package workers

import (
	"context"
	"fmt"
	"log/slog"
	"room-bot/contract"
	"room-bot/domain/event"
	"room-bot/errors"
	"time"
)

// Ensure *PoolUnitWorker implements the contract.Worker interface at compile time.
var _ contract.Worker = (*PoolUnitWorker)(nil)

// Job is one handler run submitted by the router.
// Attrs are logged with any failure so the event can be traced.
type Job struct {
	Name  string
	Attrs []any
	Run   func(ctx context.Context) error
}

// PoolUnitWorker drains the shared job channel. Each job gets its own timeout
// and is the failure boundary: an error or a panic is logged, reported on the
// telemetry channel and never propagates to the router or the supervisor.
type PoolUnitWorker struct {
	jobs      <-chan Job
	telemetry chan<- event.Event
	timeout   time.Duration
	log       *slog.Logger
}

func NewPoolUnitWorker(
	jobs <-chan Job,
	telemetry chan<- event.Event,
	timeout time.Duration,
	log *slog.Logger) *PoolUnitWorker {
	return &PoolUnitWorker{
		jobs:      jobs,
		telemetry: telemetry,
		timeout:   timeout,
		log:       log,
	}
}

func (w *PoolUnitWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case job, ok := <-w.jobs:
			if !ok {
				w.log.Debug("Job channel is closed")
				return nil
			}
			if err := w.execute(ctx, job); err != nil {
				w.log.Error("Handler failed", append([]any{"job", job.Name, "error", err}, job.Attrs...)...)
				w.notifyFailure(job, err)
			}
		}
	}
}

func (w *PoolUnitWorker) execute(ctx context.Context, job Job) (err error) {
	jobCtx := ctx
	if w.timeout > 0 {
		var cancel context.CancelFunc
		jobCtx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errors.ErrHandlerPanic, r)
		}
	}()
	return job.Run(jobCtx)
}

func (w *PoolUnitWorker) notifyFailure(job Job, err error) {
	if w.telemetry == nil {
		return
	}
	select {
	case w.telemetry <- event.New(event.HandlerFailedType, event.HandlerFailed{Job: job.Name, Err: err}):
	default:
		w.log.Debug("Telemetry channel full, dropping failure event", "job", job.Name)
	}
}
