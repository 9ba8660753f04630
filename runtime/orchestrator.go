// Package runtime moves platform events to the policy handlers.
// It owns the channels, the worker pool and the timers, not the rules.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"room-bot/contract"
	"room-bot/domain/event"
	"room-bot/runtime/workers"
	"sync"
	"time"
)

const lowCapacityThreshold = 4

type Orchestrator struct {
	mu             sync.Mutex
	log            *slog.Logger
	numWorkers     int
	handlerTimeout time.Duration
	metricInterval time.Duration
	supervisor     contract.ISupervisor
	jobs           chan workers.Job
	telemetry      chan event.Event
	recorder       event.Recorder
	workers        []contract.Worker
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	telemetry chan event.Event, recorder event.Recorder,
	numWorkers, bufferSize int, handlerTimeout, metricInterval time.Duration) *Orchestrator {
	return &Orchestrator{
		log:            log,
		numWorkers:     numWorkers,
		handlerTimeout: handlerTimeout,
		metricInterval: metricInterval,
		supervisor:     supervisor,
		jobs:           make(chan workers.Job, bufferSize),
		telemetry:      telemetry,
		recorder:       recorder,
	}
}

// Jobs is the queue the router submits handler runs to.
func (o *Orchestrator) Jobs() chan<- workers.Job {
	return o.jobs
}

// Add registers long-running workers (router, console, debug server) that
// start together with the pool.
func (o *Orchestrator) Add(w ...contract.Worker) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.workers = append(o.workers, w...)
}

// Start prepares the pool and the telemetry pipeline, hands every worker to
// the supervisor and blocks until the supervisor returns.
func (o *Orchestrator) Start(ctx context.Context) error {
	if o.numWorkers <= 0 {
		return fmt.Errorf("at least one pool worker is required, got %d", o.numWorkers)
	}
	poolWorkers := o.preparePoolWorkers()
	telemetryWorkers := o.prepareTelemetry()

	o.mu.Lock()
	o.supervisor.Add(telemetryWorkers...)
	o.supervisor.Add(poolWorkers...)
	o.supervisor.Add(o.workers...)
	o.mu.Unlock()

	o.log.Info(fmt.Sprintf("Starting %d pool workers and all supervised workers", o.numWorkers))
	o.supervisor.Run(ctx)
	return nil
}

func (o *Orchestrator) preparePoolWorkers() []contract.Worker {
	var res []contract.Worker
	for i := 0; i < o.numWorkers; i++ {
		res = append(res, workers.NewPoolUnitWorker(o.jobs, o.telemetry, o.handlerTimeout, o.log))
	}
	return res
}

func (o *Orchestrator) prepareTelemetry() []contract.Worker {
	handlers := []event.Handler{
		event.NewCounterHandler(o.log, o.recorder),
		event.NewHandlerFailedHandler(o.log, o.recorder),
		event.NewWorkerRestartedAfterPanicHandler(o.log, o.recorder),
		event.NewChannelCapacityHandler(o.log, o.recorder, lowCapacityThreshold),
	}
	res := []contract.Worker{workers.NewTelemetryWorker(o.log, o.telemetry, handlers)}
	if o.metricInterval > 0 {
		res = append(res, workers.NewChannelCapacityWorker(o.log, []workers.NamedChannel{
			{Name: "jobs", Channel: o.jobs},
			{Name: "telemetry", Channel: o.telemetry},
		}, o.telemetry, o.metricInterval))
	}
	return res
}

// Stop cancels the supervised context; every worker returns on ctx.Done.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
