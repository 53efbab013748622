package impl

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"drivesafe/config"
	"drivesafe/internal/domain/entity"
	"drivesafe/internal/domain/service"
	mockSvc "drivesafe/internal/mocks/service"
	mockUsecase "drivesafe/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// syncBuffer is a log sink safe for concurrent writers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func newBufferedLogger() (*slog.Logger, *syncBuffer) {
	buf := &syncBuffer{}

	return slog.New(slog.NewJSONHandler(buf, nil)), buf
}

func TestAlertRunner_DispatchReturnsBeforeDelivery(t *testing.T) {
	alerts := mockUsecase.NewMockAlertUsecase(t)
	logger, logs := newBufferedLogger()
	runner := newAlertRunner(alerts, logger, time.Second)
	runner.start()

	release := make(chan struct{})
	event := newAccidentEvent(uuid.New())

	alerts.EXPECT().
		SendEmergencyAlert(mock.Anything, event).
		RunAndReturn(func(ctx context.Context, _ *entity.EmergencyEvent) *entity.DeliveryResult {
			<-release

			return &entity.DeliveryResult{Success: true, InAppSent: true, FCMSent: true, Tokens: 1, Sent: 1, Batches: 1}
		}).
		Once()

	require.NoError(t, runner.Dispatch(context.Background(), event))
	close(release)

	require.NoError(t, runner.stop(context.Background()))
	assert.Contains(t, logs.String(), "Emergency alert delivered")
}

func TestAlertRunner_RunIsDetachedFromCallerContext(t *testing.T) {
	alerts := mockUsecase.NewMockAlertUsecase(t)
	runner := newAlertRunner(alerts, newDiscardLogger(), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	event := newAccidentEvent(uuid.New())

	started := make(chan struct{})
	var runErr error
	alerts.EXPECT().
		SendEmergencyAlert(mock.Anything, event).
		RunAndReturn(func(ctx context.Context, _ *entity.EmergencyEvent) *entity.DeliveryResult {
			<-started
			runErr = ctx.Err()

			return &entity.DeliveryResult{Success: true}
		}).
		Once()

	require.NoError(t, runner.Dispatch(ctx, event))
	// the request finishes before delivery starts
	cancel()
	close(started)

	require.NoError(t, runner.stop(context.Background()))
	assert.NoError(t, runErr)
}

func TestAlertRunner_LogsFailuresAndPartialDelivery(t *testing.T) {
	alerts := mockUsecase.NewMockAlertUsecase(t)
	logger, logs := newBufferedLogger()
	runner := newAlertRunner(alerts, logger, time.Second)

	notFound := newAccidentEvent(uuid.New())
	partial := newAccidentEvent(uuid.New())

	alerts.EXPECT().
		SendEmergencyAlert(mock.Anything, notFound).
		Return(&entity.DeliveryResult{Success: false, Error: "User not found"}).
		Once()
	alerts.EXPECT().
		SendEmergencyAlert(mock.Anything, partial).
		Return(&entity.DeliveryResult{Success: true, InAppSent: true, FCMSent: true, Tokens: 3, Sent: 2, Failed: 1, Batches: 1}).
		Once()

	require.NoError(t, runner.Dispatch(context.Background(), notFound))
	require.NoError(t, runner.Dispatch(context.Background(), partial))
	require.NoError(t, runner.stop(context.Background()))

	out := logs.String()
	assert.Contains(t, out, "Emergency alert not delivered")
	assert.Contains(t, out, "User not found")
	assert.Contains(t, out, "Emergency alert partially delivered")
}

func TestAlertRunner_RejectsAfterStop(t *testing.T) {
	runner := newAlertRunner(mockUsecase.NewMockAlertUsecase(t), newDiscardLogger(), time.Second)

	require.NoError(t, runner.stop(context.Background()))
	require.NoError(t, runner.stop(context.Background()))

	err := runner.Dispatch(context.Background(), newAccidentEvent(uuid.New()))
	assert.ErrorIs(t, err, ErrAlertRunnerStopped)
}

func TestAlertRunner_StopTimesOutOnStuckAlert(t *testing.T) {
	alerts := mockUsecase.NewMockAlertUsecase(t)
	runner := newAlertRunner(alerts, newDiscardLogger(), time.Second)

	release := make(chan struct{})
	defer close(release)

	event := newAccidentEvent(uuid.New())
	alerts.EXPECT().
		SendEmergencyAlert(mock.Anything, event).
		RunAndReturn(func(context.Context, *entity.EmergencyEvent) *entity.DeliveryResult {
			<-release

			return &entity.DeliveryResult{Success: true}
		}).
		Once()

	require.NoError(t, runner.Dispatch(context.Background(), event))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := runner.stop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAlertRunner_NilEvent(t *testing.T) {
	runner := newAlertRunner(mockUsecase.NewMockAlertUsecase(t), newDiscardLogger(), time.Second)

	assert.Error(t, runner.Dispatch(context.Background(), nil))
}

func TestNewAlertDispatcher_InProcessRegistersLifecycle(t *testing.T) {
	alerts := mockUsecase.NewMockAlertUsecase(t)
	lc := fxtest.NewLifecycle(t)

	dispatcher := NewAlertDispatcher(AlertDispatcherParams{
		Lc:        lc,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
		Alerts:    alerts,
		Publisher: mockSvc.NewMockEventPublisher(t),
	})
	require.IsType(t, &alertRunner{}, dispatcher)

	event := newAccidentEvent(uuid.New())
	alerts.EXPECT().SendEmergencyAlert(mock.Anything, event).Return(&entity.DeliveryResult{Success: true}).Once()

	lc.RequireStart()
	require.NoError(t, dispatcher.Dispatch(context.Background(), event))
	lc.RequireStop()

	assert.ErrorIs(t, dispatcher.Dispatch(context.Background(), event), ErrAlertRunnerStopped)
}

func TestNewAlertDispatcher_PubSubPublishesEvent(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	cfg := newTestConfig()
	cfg.Alert.Dispatch = config.AlertDispatchPubSub

	dispatcher := NewAlertDispatcher(AlertDispatcherParams{
		Lc:        fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    newDiscardLogger(),
		Alerts:    mockUsecase.NewMockAlertUsecase(t),
		Publisher: publisher,
	})

	event := newAccidentEvent(uuid.New())
	event.RequestID = "req-1"

	publisher.EXPECT().
		PublishAlertEvent(mock.Anything, mock.MatchedBy(func(e *service.AlertEvent) bool {
			return e.UserID == event.UserID.String() &&
				e.Kind == string(entity.EventKindAccident) &&
				e.SourceID == event.SourceID.String() &&
				e.RequestID == "req-1"
		})).
		Return(nil).
		Once()

	assert.NoError(t, dispatcher.Dispatch(context.Background(), event))
}

func TestPublishingDispatcher_WrapsPublishError(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	dispatcher := &publishingDispatcher{publisher: publisher, logger: newDiscardLogger()}

	publisher.EXPECT().PublishAlertEvent(mock.Anything, mock.Anything).Return(errors.New("topic missing")).Once()

	err := dispatcher.Dispatch(context.Background(), newAccidentEvent(uuid.New()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "topic missing")
}
