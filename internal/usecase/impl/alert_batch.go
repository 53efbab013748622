package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"drivesafe/config"
	"drivesafe/internal/domain/entity"
	"drivesafe/internal/domain/service"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const defaultPushTimeout = 15 * time.Second

// batchDispatcher sends a message to many tokens in provider-sized batches.
// Batches are isolated: one failing call never affects the others.
type batchDispatcher struct {
	push        service.PushService
	batchSize   int
	concurrency int
	timeout     time.Duration
	limiter     *rate.Limiter // nil when unthrottled
	logger      *slog.Logger
}

func newBatchDispatcher(push service.PushService, cfg *config.AlertConfig, logger *slog.Logger) *batchDispatcher {
	d := &batchDispatcher{
		push:        push,
		batchSize:   cfg.BatchSize,
		concurrency: cfg.BatchConcurrency,
		timeout:     cfg.PushTimeout,
		logger:      logger,
	}

	if d.batchSize <= 0 || d.batchSize > config.MaxAlertBatchSize {
		d.batchSize = config.MaxAlertBatchSize
	}
	if d.concurrency <= 0 {
		d.concurrency = 1
	}
	if d.timeout <= 0 {
		d.timeout = defaultPushTimeout
	}
	if cfg.RateLimitPerSecond > 0 {
		d.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitPerSecond), 1)
	}

	return d
}

// dispatch partitions tokens and sends every batch, returning outcomes in batch order.
func (d *batchDispatcher) dispatch(ctx context.Context, tokens []string, template *service.PushMessage) []entity.BatchOutcome {
	batches := partitionTokens(tokens, d.batchSize)
	outcomes := make([]entity.BatchOutcome, len(batches))

	var g errgroup.Group
	g.SetLimit(d.concurrency)

	for i, batch := range batches {
		g.Go(func() error {
			outcomes[i] = d.sendBatch(ctx, batch, template)

			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func (d *batchDispatcher) sendBatch(ctx context.Context, batch entity.DeliveryBatch, template *service.PushMessage) (outcome entity.BatchOutcome) {
	outcome = entity.BatchOutcome{Index: batch.Index, Size: len(batch.Tokens)}

	defer func() {
		if r := recover(); r != nil {
			outcome = failedOutcome(outcome, fmt.Errorf("push provider panicked: %v", r))
		}
	}()

	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return failedOutcome(outcome, err)
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	msg := *template
	msg.Tokens = batch.Tokens

	result, err := d.push.SendMulticast(callCtx, &msg)
	if err != nil {
		d.logger.Error("Failed to send push batch",
			slog.Int("batch", batch.Index),
			slog.Int("batch_size", len(batch.Tokens)),
			slog.Any("error", err),
		)

		return failedOutcome(outcome, err)
	}
	if result == nil {
		return failedOutcome(outcome, fmt.Errorf("push provider returned no result"))
	}

	outcome.SuccessCount = result.SuccessCount
	outcome.FailureCount = result.FailureCount
	outcome.InvalidTokens = result.InvalidTokens

	return outcome
}

func failedOutcome(outcome entity.BatchOutcome, err error) entity.BatchOutcome {
	outcome.SuccessCount = 0
	outcome.FailureCount = outcome.Size
	outcome.InvalidTokens = nil
	outcome.Err = err

	return outcome
}

// partitionTokens splits tokens into contiguous batches of at most size, preserving order.
func partitionTokens(tokens []string, size int) []entity.DeliveryBatch {
	if len(tokens) == 0 {
		return nil
	}

	batches := make([]entity.DeliveryBatch, 0, (len(tokens)+size-1)/size)
	for start := 0; start < len(tokens); start += size {
		end := min(start+size, len(tokens))
		batches = append(batches, entity.DeliveryBatch{
			Index:  len(batches),
			Tokens: tokens[start:end],
		})
	}

	return batches
}

// aggregateTokens concatenates every contact's tokens in contact order. Duplicates are kept.
func aggregateTokens(contacts []*entity.Contact) []string {
	total := 0
	for _, contact := range contacts {
		total += len(contact.FCMTokens)
	}

	tokens := make([]string, 0, total)
	for _, contact := range contacts {
		tokens = append(tokens, contact.FCMTokens...)
	}

	return tokens
}

// synthesizeResult folds batch outcomes into a delivery result.
func synthesizeResult(notified []uuid.UUID, tokenCount int, outcomes []entity.BatchOutcome) *entity.DeliveryResult {
	result := &entity.DeliveryResult{
		Success:          true,
		InAppSent:        true,
		Tokens:           tokenCount,
		Batches:          len(outcomes),
		NotifiedContacts: notified,
	}

	for _, outcome := range outcomes {
		result.Sent += outcome.SuccessCount
		result.Failed += outcome.FailureCount
		if outcome.Err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("batch %d (%d tokens): %v", outcome.Index, outcome.Size, outcome.Err))
		}
	}
	result.FCMSent = result.Sent > 0

	return result
}

// invalidTokens collects the tokens the provider rejected across all batches.
func invalidTokens(outcomes []entity.BatchOutcome) []string {
	var tokens []string
	for _, outcome := range outcomes {
		tokens = append(tokens, outcome.InvalidTokens...)
	}

	return tokens
}

// stringifyData coerces payload values to strings for the push provider.
func stringifyData(data map[string]any) map[string]string {
	out := make(map[string]string, len(data))
	for key, value := range data {
		switch v := value.(type) {
		case nil:
			out[key] = ""
		case string:
			out[key] = v
		case time.Time:
			out[key] = v.Format(time.RFC3339)
		default:
			out[key] = fmt.Sprint(v)
		}
	}

	return out
}
