package impl

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"drivesafe/config"
	"drivesafe/internal/domain/entity"
	"drivesafe/internal/domain/service"
	mockSvc "drivesafe/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeTokens(n int) []string {
	return newContact("t", n).FCMTokens
}

func TestPartitionTokens(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		size      int
		wantSizes []int
	}{
		{name: "empty", count: 0, size: 500, wantSizes: nil},
		{name: "single token", count: 1, size: 500, wantSizes: []int{1}},
		{name: "exact batch", count: 500, size: 500, wantSizes: []int{500}},
		{name: "one over", count: 501, size: 500, wantSizes: []int{500, 1}},
		{name: "three batches", count: 1200, size: 500, wantSizes: []int{500, 500, 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := makeTokens(tt.count)
			batches := partitionTokens(tokens, tt.size)

			require.Len(t, batches, len(tt.wantSizes))

			var flattened []string
			for i, batch := range batches {
				assert.Equal(t, i, batch.Index)
				assert.Len(t, batch.Tokens, tt.wantSizes[i])
				assert.LessOrEqual(t, len(batch.Tokens), config.MaxAlertBatchSize)
				flattened = append(flattened, batch.Tokens...)
			}
			if tt.count > 0 {
				assert.Equal(t, tokens, flattened)
			}
		})
	}
}

func TestAggregateTokens_KeepsOrderAndDuplicates(t *testing.T) {
	contacts := []*entity.Contact{
		{ID: uuid.New(), FCMTokens: []string{"a", "b"}},
		{ID: uuid.New()},
		{ID: uuid.New(), FCMTokens: []string{"b", "c"}},
	}

	assert.Equal(t, []string{"a", "b", "b", "c"}, aggregateTokens(contacts))
	assert.Empty(t, aggregateTokens(nil))
}

func TestSynthesizeResult(t *testing.T) {
	notified := []uuid.UUID{uuid.New()}

	t.Run("mixed outcomes", func(t *testing.T) {
		outcomes := []entity.BatchOutcome{
			{Index: 0, Size: 500, SuccessCount: 498, FailureCount: 2},
			{Index: 1, Size: 500, FailureCount: 500, Err: errors.New("unavailable")},
			{Index: 2, Size: 200, SuccessCount: 200},
		}

		result := synthesizeResult(notified, 1200, outcomes)

		assert.True(t, result.Success)
		assert.True(t, result.InAppSent)
		assert.True(t, result.FCMSent)
		assert.Equal(t, 1200, result.Tokens)
		assert.Equal(t, 698, result.Sent)
		assert.Equal(t, 502, result.Failed)
		assert.Equal(t, result.Tokens, result.Sent+result.Failed)
		assert.Equal(t, 3, result.Batches)
		assert.Equal(t, []string{"batch 1 (500 tokens): unavailable"}, result.Errors)
		assert.Equal(t, notified, result.NotifiedContacts)
	})

	t.Run("every batch failed", func(t *testing.T) {
		outcomes := []entity.BatchOutcome{
			{Index: 0, Size: 3, FailureCount: 3, Err: errors.New("down")},
		}

		result := synthesizeResult(notified, 3, outcomes)

		assert.True(t, result.Success)
		assert.False(t, result.FCMSent)
		assert.Zero(t, result.Sent)
		assert.Equal(t, 3, result.Failed)
		assert.Len(t, result.Errors, 1)
	})

	t.Run("no tokens", func(t *testing.T) {
		result := synthesizeResult(notified, 0, nil)

		assert.True(t, result.Success)
		assert.True(t, result.InAppSent)
		assert.False(t, result.FCMSent)
		assert.Zero(t, result.Tokens)
		assert.Zero(t, result.Batches)
		assert.Empty(t, result.Errors)
	})
}

func TestStringifyData(t *testing.T) {
	at := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

	got := stringifyData(map[string]any{
		"type":   "accident_alert",
		"count":  3,
		"urgent": true,
		"at":     at,
		"empty":  nil,
		"ratio":  0.5,
	})

	assert.Equal(t, map[string]string{
		"type":   "accident_alert",
		"count":  "3",
		"urgent": "true",
		"at":     "2026-10-17T09:30:00Z",
		"empty":  "",
		"ratio":  "0.5",
	}, got)
}

func newTestDispatcher(t *testing.T, push service.PushService, mutate func(cfg *config.AlertConfig)) *batchDispatcher {
	t.Helper()

	cfg := newTestConfig().Alert
	if mutate != nil {
		mutate(cfg)
	}

	return newBatchDispatcher(push, cfg, newDiscardLogger())
}

func TestBatchDispatcher_IsolatesFailedBatch(t *testing.T) {
	push := mockSvc.NewMockPushService(t)
	tokens := makeTokens(1200)
	template := &service.PushMessage{Title: "title", Body: "body", Hints: entity.EventKindAccident.PushHints()}

	push.EXPECT().
		SendMulticast(mock.Anything, mock.AnythingOfType("*service.PushMessage")).
		RunAndReturn(func(_ context.Context, msg *service.PushMessage) (*service.MulticastResult, error) {
			if msg.Tokens[0] == tokens[500] {
				return nil, errors.New("provider unavailable")
			}

			return &service.MulticastResult{SuccessCount: len(msg.Tokens)}, nil
		}).
		Times(3)

	outcomes := newTestDispatcher(t, push, nil).dispatch(context.Background(), tokens, template)

	require.Len(t, outcomes, 3)
	assert.Equal(t, entity.BatchOutcome{Index: 0, Size: 500, SuccessCount: 500}, outcomes[0])
	assert.Equal(t, 1, outcomes[1].Index)
	assert.Equal(t, 500, outcomes[1].FailureCount)
	assert.Zero(t, outcomes[1].SuccessCount)
	assert.ErrorContains(t, outcomes[1].Err, "provider unavailable")
	assert.Equal(t, 200, outcomes[2].SuccessCount)
}

func TestBatchDispatcher_RespectsConcurrencyLimit(t *testing.T) {
	var (
		current int32
		peak    int32
	)

	push := mockSvc.NewMockPushService(t)
	push.EXPECT().
		SendMulticast(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, msg *service.PushMessage) (*service.MulticastResult, error) {
			n := atomic.AddInt32(&current, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&current, -1)

			return &service.MulticastResult{SuccessCount: len(msg.Tokens)}, nil
		}).
		Times(6)

	dispatcher := newTestDispatcher(t, push, func(cfg *config.AlertConfig) {
		cfg.BatchSize = 10
		cfg.BatchConcurrency = 2
	})

	outcomes := dispatcher.dispatch(context.Background(), makeTokens(60), &service.PushMessage{})

	require.Len(t, outcomes, 6)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
	for i, outcome := range outcomes {
		assert.Equal(t, i, outcome.Index)
		assert.Equal(t, 10, outcome.SuccessCount)
	}
}

func TestBatchDispatcher_SequentialKeepsProviderOrder(t *testing.T) {
	var (
		mu    sync.Mutex
		order []string
	)

	push := mockSvc.NewMockPushService(t)
	push.EXPECT().
		SendMulticast(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, msg *service.PushMessage) (*service.MulticastResult, error) {
			mu.Lock()
			order = append(order, msg.Tokens[0])
			mu.Unlock()

			return &service.MulticastResult{SuccessCount: len(msg.Tokens)}, nil
		}).
		Times(3)

	tokens := makeTokens(25)
	dispatcher := newTestDispatcher(t, push, func(cfg *config.AlertConfig) {
		cfg.BatchSize = 10
		cfg.BatchConcurrency = 1
	})

	dispatcher.dispatch(context.Background(), tokens, &service.PushMessage{})

	assert.Equal(t, []string{tokens[0], tokens[10], tokens[20]}, order)
}

func TestBatchDispatcher_ProviderPanicFailsOnlyThatBatch(t *testing.T) {
	push := mockSvc.NewMockPushService(t)
	push.EXPECT().
		SendMulticast(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, msg *service.PushMessage) (*service.MulticastResult, error) {
			if len(msg.Tokens) == 5 {
				panic("boom")
			}

			return &service.MulticastResult{SuccessCount: len(msg.Tokens)}, nil
		}).
		Times(2)

	dispatcher := newTestDispatcher(t, push, func(cfg *config.AlertConfig) {
		cfg.BatchSize = 10
	})

	outcomes := dispatcher.dispatch(context.Background(), makeTokens(15), &service.PushMessage{})

	require.Len(t, outcomes, 2)
	assert.Equal(t, 10, outcomes[0].SuccessCount)
	assert.Equal(t, 5, outcomes[1].FailureCount)
	assert.ErrorContains(t, outcomes[1].Err, "panicked")
}

func TestBatchDispatcher_NilResultCountsAsFailure(t *testing.T) {
	push := mockSvc.NewMockPushService(t)
	push.EXPECT().
		SendMulticast(mock.Anything, mock.Anything).
		Return(nil, nil).
		Once()

	outcomes := newTestDispatcher(t, push, nil).dispatch(context.Background(), makeTokens(4), &service.PushMessage{})

	require.Len(t, outcomes, 1)
	assert.Equal(t, 4, outcomes[0].FailureCount)
	assert.Error(t, outcomes[0].Err)
}

func TestBatchDispatcher_RateLimitedStillDeliversAll(t *testing.T) {
	push := mockSvc.NewMockPushService(t)
	push.EXPECT().
		SendMulticast(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, msg *service.PushMessage) (*service.MulticastResult, error) {
			return &service.MulticastResult{SuccessCount: len(msg.Tokens)}, nil
		}).
		Times(4)

	dispatcher := newTestDispatcher(t, push, func(cfg *config.AlertConfig) {
		cfg.BatchSize = 5
		cfg.RateLimitPerSecond = 1000
	})
	require.NotNil(t, dispatcher.limiter)

	outcomes := dispatcher.dispatch(context.Background(), makeTokens(20), &service.PushMessage{})

	total := 0
	for _, outcome := range outcomes {
		total += outcome.SuccessCount
	}
	assert.Equal(t, 20, total)
}

func TestBatchDispatcher_CancelledContextFailsThrottledBatches(t *testing.T) {
	push := mockSvc.NewMockPushService(t)

	dispatcher := newTestDispatcher(t, push, func(cfg *config.AlertConfig) {
		cfg.RateLimitPerSecond = 1
	})
	// drain the single burst token so the next Wait blocks
	require.True(t, dispatcher.limiter.Allow())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes := dispatcher.dispatch(ctx, makeTokens(3), &service.PushMessage{})

	require.Len(t, outcomes, 1)
	assert.Equal(t, 3, outcomes[0].FailureCount)
	assert.Error(t, outcomes[0].Err)
}

func TestNewBatchDispatcher_ClampsBatchSize(t *testing.T) {
	dispatcher := newTestDispatcher(t, mockSvc.NewMockPushService(t), func(cfg *config.AlertConfig) {
		cfg.BatchSize = 10_000
		cfg.BatchConcurrency = 0
	})

	assert.Equal(t, config.MaxAlertBatchSize, dispatcher.batchSize)
	assert.Equal(t, 1, dispatcher.concurrency)
	assert.Nil(t, dispatcher.limiter)
}

func TestNewBatchDispatcher_ZeroConfigStillDelivers(t *testing.T) {
	push := mockSvc.NewMockPushService(t)
	push.EXPECT().
		SendMulticast(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, msg *service.PushMessage) (*service.MulticastResult, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			assert.Greater(t, time.Until(deadline), time.Second)

			return &service.MulticastResult{SuccessCount: len(msg.Tokens)}, nil
		}).
		Once()

	dispatcher := newBatchDispatcher(push, &config.AlertConfig{}, newDiscardLogger())
	assert.Equal(t, defaultPushTimeout, dispatcher.timeout)

	outcomes := dispatcher.dispatch(context.Background(), makeTokens(2), &service.PushMessage{Title: "title"})

	require.Len(t, outcomes, 1)
	assert.NoError(t, outcomes[0].Err)
	assert.Equal(t, 2, outcomes[0].SuccessCount)
	assert.Zero(t, outcomes[0].FailureCount)
}
