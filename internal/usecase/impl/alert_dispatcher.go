package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"drivesafe/config"
	"drivesafe/internal/domain/entity"
	"drivesafe/internal/domain/lifecycle"
	"drivesafe/internal/domain/service"
	"drivesafe/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrAlertRunnerStopped is returned by Dispatch once shutdown has begun.
var ErrAlertRunnerStopped = errors.New("alert runner is stopped")

const (
	alertResultBuffer = 64
	publishTimeout    = 10 * time.Second
)

// AlertDispatcherParams holds dependencies for the AlertDispatcher, injected by Fx.
type AlertDispatcherParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	Alerts    usecase.AlertUsecase
	Publisher service.EventPublisher
}

// NewAlertDispatcher picks the in-process runner or the Pub/Sub hand-off from configuration.
func NewAlertDispatcher(params AlertDispatcherParams) usecase.AlertDispatcher {
	alertCfg := params.Config.Alert
	if alertCfg != nil && alertCfg.Dispatch == config.AlertDispatchPubSub {
		params.Logger.Info("Emergency alerts dispatched through Pub/Sub")

		return &publishingDispatcher{publisher: params.Publisher, logger: params.Logger}
	}

	runTimeout := 2 * time.Minute
	if alertCfg != nil && alertCfg.RunTimeout > 0 {
		runTimeout = alertCfg.RunTimeout
	}

	runner := newAlertRunner(params.Alerts, params.Logger, runTimeout)
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			runner.start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return runner.stop(ctx)
		},
	})

	return runner
}

// alertRun is one finished alert handed to the sink.
type alertRun struct {
	event   *entity.EmergencyEvent
	result  *entity.DeliveryResult
	elapsed time.Duration
}

// alertRunner runs each alert on its own goroutine, detached from the caller's context.
// Every outcome goes through the results channel to a single logging sink.
type alertRunner struct {
	alerts     usecase.AlertUsecase
	logger     *slog.Logger
	runTimeout time.Duration

	mu       sync.Mutex
	stopped  bool
	inflight sync.WaitGroup
	results  chan alertRun
	sinkDone chan struct{}
	once     sync.Once
}

func newAlertRunner(alerts usecase.AlertUsecase, logger *slog.Logger, runTimeout time.Duration) *alertRunner {
	return &alertRunner{
		alerts:     alerts,
		logger:     logger,
		runTimeout: runTimeout,
		results:    make(chan alertRun, alertResultBuffer),
		sinkDone:   make(chan struct{}),
	}
}

func (r *alertRunner) start() {
	r.once.Do(func() {
		go r.sink()
	})
}

// Dispatch starts delivery in the background and returns immediately.
func (r *alertRunner) Dispatch(ctx context.Context, event *entity.EmergencyEvent) error {
	if event == nil {
		return errors.New("nil emergency event")
	}

	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()

		return ErrAlertRunnerStopped
	}
	r.inflight.Add(1)
	r.mu.Unlock()

	// Sink must be running before any result is produced.
	r.start()

	detached := context.WithoutCancel(ctx)

	go func() {
		defer r.inflight.Done()

		runCtx, cancel := context.WithTimeout(detached, r.runTimeout)
		defer cancel()

		started := time.Now()
		result := r.alerts.SendEmergencyAlert(runCtx, event)
		r.results <- alertRun{event: event, result: result, elapsed: time.Since(started)}
	}()

	return nil
}

func (r *alertRunner) sink() {
	defer close(r.sinkDone)

	for run := range r.results {
		r.logResult(run)
	}
}

func (r *alertRunner) logResult(run alertRun) {
	if run.result == nil {
		r.logger.Error("Emergency alert produced no result", slog.Any("event", run.event))

		return
	}

	attrs := []any{
		slog.Any("event", run.event),
		slog.Any("result", run.result),
		slog.Duration("elapsed", run.elapsed),
	}

	switch {
	case !run.result.Success:
		r.logger.Warn("Emergency alert not delivered", attrs...)
	case run.result.Failed > 0:
		r.logger.Warn("Emergency alert partially delivered", attrs...)
	default:
		r.logger.Info("Emergency alert delivered", attrs...)
	}
}

// stop refuses new alerts, waits for in-flight ones and drains the sink.
func (r *alertRunner) stop(ctx context.Context) error {
	r.mu.Lock()
	alreadyStopped := r.stopped
	r.stopped = true
	r.mu.Unlock()

	if alreadyStopped {
		return nil
	}

	r.start()

	done := make(chan struct{})
	go func() {
		r.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "waiting for in-flight emergency alerts")
	}

	close(r.results)

	select {
	case <-r.sinkDone:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "draining emergency alert results")
	}
}

// publishingDispatcher hands events to the alert worker through the event publisher.
type publishingDispatcher struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func (d *publishingDispatcher) Dispatch(ctx context.Context, event *entity.EmergencyEvent) error {
	if event == nil {
		return errors.New("nil emergency event")
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := d.publisher.PublishAlertEvent(publishCtx, service.NewAlertEvent(event)); err != nil {
		return errors.Wrap(err, "failed to publish emergency alert")
	}

	return nil
}
