package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "drivesafe/internal/delivery/context"
	"drivesafe/internal/domain/entity"
	domainerrors "drivesafe/internal/domain/errors"
	"drivesafe/internal/domain/repository"
	"drivesafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type accidentService struct {
	accidentRepo repository.AccidentRepository
	alerts       usecase.AlertDispatcher
	logger       *slog.Logger
}

// NewAccidentService creates a new accident service instance
func NewAccidentService(
	accidentRepo repository.AccidentRepository,
	alerts usecase.AlertDispatcher,
	logger *slog.Logger,
) usecase.AccidentUsecase {
	return &accidentService{
		accidentRepo: accidentRepo,
		alerts:       alerts,
		logger:       logger,
	}
}

func (s *accidentService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateAccident stores the accident and hands the emergency alert to the dispatcher.
// The caller never waits on delivery and a dispatch failure does not fail the request.
func (s *accidentService) CreateAccident(ctx context.Context, userID uuid.UUID, input *usecase.AccidentInput) (*entity.Accident, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("accident is required")
	}

	now := time.Now()
	detected := now
	if input.DetectedTime != nil && !input.DetectedTime.IsZero() {
		detected = *input.DetectedTime
	}

	accident := &entity.Accident{
		ID:           uuid.New(),
		UserID:       userID,
		DeviceID:     input.DeviceID,
		DetectedTime: detected,
		Location:     input.Location,
		ContactNum:   input.ContactNum,
		ContactTime:  input.ContactTime,
		CreatedAt:    now,
	}

	if err := s.accidentRepo.CreateAccident(ctx, accident); err != nil {
		return nil, errors.Wrap(err, "failed to create accident")
	}

	logger := s.getLogger(ctx)

	event := &entity.EmergencyEvent{
		Kind:       entity.EventKindAccident,
		UserID:     userID,
		OccurredAt: accident.DetectedTime,
		Location:   accident.Location,
		SourceID:   &accident.ID,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
	}
	if err := s.alerts.Dispatch(ctx, event); err != nil {
		logger.Error("Failed to dispatch accident alert",
			slog.String("accident_id", accident.ID.String()),
			slog.Any("error", err),
		)
	} else {
		logger.Info("Accident alert dispatched", slog.String("accident_id", accident.ID.String()))
	}

	return accident, nil
}

// ListAccidents returns the user's accidents, newest first
func (s *accidentService) ListAccidents(ctx context.Context, filter entity.AccidentFilter) ([]*entity.Accident, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("endDate is before startDate")
	}

	accidents, err := s.accidentRepo.ListAccidents(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accidents")
	}
	if accidents == nil {
		accidents = []*entity.Accident{}
	}

	return accidents, nil
}

// GetAccident returns one of the user's accidents
func (s *accidentService) GetAccident(ctx context.Context, userID, accidentID uuid.UUID) (*entity.Accident, error) {
	accident, err := s.accidentRepo.FindAccidentByID(ctx, userID, accidentID)
	if err != nil {
		if errors.Is(err, repository.ErrAccidentNotFound) {
			return nil, domainerrors.ErrAccidentNotFound
		}

		return nil, errors.Wrap(err, "failed to find accident")
	}

	return accident, nil
}

// DeleteAccident removes one of the user's accidents
func (s *accidentService) DeleteAccident(ctx context.Context, userID, accidentID uuid.UUID) error {
	if err := s.accidentRepo.DeleteAccident(ctx, userID, accidentID); err != nil {
		if errors.Is(err, repository.ErrAccidentNotFound) {
			return domainerrors.ErrAccidentNotFound
		}

		return errors.Wrap(err, "failed to delete accident")
	}

	return nil
}
