package usecase

import (
	"context"

	"drivesafe/internal/domain/entity"
)

// AlertUsecase fans an emergency event out to the user's emergency contacts.
type AlertUsecase interface {
	// SendEmergencyAlert records an in-app notification for every contact and pushes the alert
	// to every registered token. It never returns an error: every failure is reported in the result.
	SendEmergencyAlert(ctx context.Context, event *entity.EmergencyEvent) *entity.DeliveryResult
}

// AlertDispatcher hands an emergency event off for delivery without waiting for the outcome.
type AlertDispatcher interface {
	// Dispatch returns once the event is accepted. The error only reports a failed hand-off.
	Dispatch(ctx context.Context, event *entity.EmergencyEvent) error
}
