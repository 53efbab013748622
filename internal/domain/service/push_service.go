package service

import (
	"context"

	"drivesafe/internal/domain/entity"
)

// PushMessage is one multicast request to the push provider.
type PushMessage struct {
	Tokens []string
	Title  string
	Body   string
	Data   map[string]string // provider payloads only carry string values
	Hints  entity.PushHints
}

// MulticastResult is the provider's per-token tally for one multicast call.
type MulticastResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string // tokens the provider reported as unregistered or malformed
}

// PushService defines the interface for the push notification provider.
type PushService interface {
	// SendMulticast delivers one message to every token in a single provider call.
	// An error means the call as a whole failed and no per-token tally is available.
	SendMulticast(ctx context.Context, msg *PushMessage) (*MulticastResult, error)
}
