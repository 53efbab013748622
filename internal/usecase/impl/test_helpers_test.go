package impl

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"drivesafe/config"
	"drivesafe/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Alert: &config.AlertConfig{
			Dispatch:          config.AlertDispatchInProcess,
			BatchSize:         config.MaxAlertBatchSize,
			BatchConcurrency:  2,
			RecordConcurrency: 4,
			PushTimeout:       time.Second,
			RecordTimeout:     time.Second,
			RunTimeout:        5 * time.Second,
		},
		Invite: &config.InviteConfig{
			TTL:        24 * time.Hour,
			CodeLength: 8,
		},
	}
}

// newContact builds a contact with n distinct tokens prefixed by the contact's first name.
func newContact(firstName string, n int) *entity.Contact {
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("%s-token-%04d", firstName, i)
	}

	return &entity.Contact{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  "Tester",
		FCMTokens: tokens,
	}
}

func contactIDs(contacts []*entity.Contact) []uuid.UUID {
	ids := make([]uuid.UUID, len(contacts))
	for i, contact := range contacts {
		ids[i] = contact.ID
	}

	return ids
}
