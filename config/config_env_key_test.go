package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"alert": map[string]any{
			"batchConcurrency":   4,
			"rateLimitPerSecond": 0,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "ALERT_BATCHCONCURRENCY", want: "alert.batchConcurrency"},
		{envKey: "ALERT_RATELIMITPERSECOND", want: "alert.rateLimitPerSecond"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestWithAlertDefaults(t *testing.T) {
	t.Run("nil config gets provider limits", func(t *testing.T) {
		alert := withAlertDefaults(nil)

		assert.Equal(t, AlertDispatchInProcess, alert.Dispatch)
		assert.Equal(t, MaxAlertBatchSize, alert.BatchSize)
		assert.Equal(t, 4, alert.BatchConcurrency)
		assert.Equal(t, 8, alert.RecordConcurrency)
		assert.Equal(t, 15*time.Second, alert.PushTimeout)
		assert.Equal(t, 2*time.Minute, alert.RunTimeout)
	})

	t.Run("oversized batch is capped", func(t *testing.T) {
		alert := withAlertDefaults(&AlertConfig{BatchSize: 1000, Dispatch: AlertDispatchPubSub})

		assert.Equal(t, MaxAlertBatchSize, alert.BatchSize)
		assert.Equal(t, AlertDispatchPubSub, alert.Dispatch)
	})

	t.Run("explicit values are kept", func(t *testing.T) {
		alert := withAlertDefaults(&AlertConfig{BatchSize: 100, BatchConcurrency: 1, PushTimeout: time.Second})

		assert.Equal(t, 100, alert.BatchSize)
		assert.Equal(t, 1, alert.BatchConcurrency)
		assert.Equal(t, time.Second, alert.PushTimeout)
	})
}

func TestWithInviteDefaults(t *testing.T) {
	invite := withInviteDefaults(nil)

	assert.Equal(t, 24*time.Hour, invite.TTL)
	assert.Equal(t, 8, invite.CodeLength)
}
