package impl

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"drivesafe/config"
	deliverycontext "drivesafe/internal/delivery/context"
	"drivesafe/internal/domain/entity"
	domainerrors "drivesafe/internal/domain/errors"
	"drivesafe/internal/domain/repository"
	"drivesafe/internal/domain/service"
	"drivesafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	accidentAlertTitle  = "⚠️ Emergency: Accident Detected"
	accidentAlertBody   = "%s may have been in an accident. Tap for details."
	unknownLocation     = "Unknown location"
	flutterClickAction  = "FLUTTER_NOTIFICATION_CLICK"
	detectedTimeLayout  = "Jan 2, 2006, 3:04 PM"
	errInvalidEventText = "invalid emergency event"
)

type alertService struct {
	userRepo         repository.UserRepository
	contactRepo      repository.ContactRepository
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	dispatcher       *batchDispatcher
	recordLimit      int
	recordTimeout    time.Duration
	logger           *slog.Logger
}

// NewAlertService creates the emergency alert fan-out use case
func NewAlertService(
	userRepo repository.UserRepository,
	contactRepo repository.ContactRepository,
	notificationRepo repository.NotificationRepository,
	deviceRepo repository.DeviceRepository,
	pushSvc service.PushService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AlertUsecase {
	alertCfg := cfg.Alert
	if alertCfg == nil {
		alertCfg = &config.AlertConfig{}
	}

	recordLimit := alertCfg.RecordConcurrency
	if recordLimit <= 0 {
		recordLimit = 1
	}
	recordTimeout := alertCfg.RecordTimeout
	if recordTimeout <= 0 {
		recordTimeout = 5 * time.Second
	}

	return &alertService{
		userRepo:         userRepo,
		contactRepo:      contactRepo,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		dispatcher:       newBatchDispatcher(pushSvc, alertCfg, logger),
		recordLimit:      recordLimit,
		recordTimeout:    recordTimeout,
		logger:           logger,
	}
}

func (s *alertService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SendEmergencyAlert resolves the user's contacts, records an in-app notification for each
// and pushes the alert to all of their tokens.
func (s *alertService) SendEmergencyAlert(ctx context.Context, event *entity.EmergencyEvent) (result *entity.DeliveryResult) {
	logger := s.getLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Emergency alert panicked", slog.Any("panic", r))
			result = &entity.DeliveryResult{Success: false, Error: fmt.Sprintf("alert delivery panicked: %v", r)}
		}
	}()

	if event == nil || event.UserID == uuid.Nil || !event.Kind.Valid() {
		return &entity.DeliveryResult{Success: false, Error: errInvalidEventText}
	}
	logger = logger.With(slog.Any("event", event))

	user, contacts, err := s.resolveContacts(ctx, event.UserID)
	if err != nil {
		logger.Warn("Emergency alert not sent", slog.Any("error", err))

		return &entity.DeliveryResult{Success: false, Error: gateMessage(err)}
	}

	title, body, data := buildAlertContent(event, user)

	notified := s.recordInApp(ctx, logger, contacts, &entity.Notification{
		Title: title,
		Body:  body,
		Type:  event.Kind.NotificationType(),
		Data:  data,
	})

	tokens := aggregateTokens(contacts)
	if len(tokens) == 0 {
		logger.Info("No push tokens for emergency contacts",
			slog.Int("contacts", len(contacts)),
		)

		return synthesizeResult(notified, 0, nil)
	}

	outcomes := s.dispatcher.dispatch(ctx, tokens, &service.PushMessage{
		Title: title,
		Body:  body,
		Data:  stringifyData(data),
		Hints: event.Kind.PushHints(),
	})

	s.deactivateInvalidTokens(ctx, logger, invalidTokens(outcomes))

	return synthesizeResult(notified, len(tokens), outcomes)
}

// resolveContacts is the gate: it fails when the user is unknown or has no reachable contacts.
func (s *alertService) resolveContacts(ctx context.Context, userID uuid.UUID) (*entity.User, []*entity.Contact, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, domainerrors.ErrUserNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find user")
	}

	if len(user.EmergencyContactIDs) == 0 {
		return nil, nil, domainerrors.ErrNoEmergencyContacts
	}

	contacts, err := s.contactRepo.ExpandContacts(ctx, user.EmergencyContactIDs)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to expand emergency contacts")
	}
	if len(contacts) == 0 {
		return nil, nil, domainerrors.ErrNoEmergencyContacts
	}

	return user, contacts, nil
}

// recordInApp writes one notification per contact. Failures are logged and skipped; the
// returned ids keep contact order.
func (s *alertService) recordInApp(ctx context.Context, logger *slog.Logger, contacts []*entity.Contact, template *entity.Notification) []uuid.UUID {
	recorded := make([]bool, len(contacts))

	var g errgroup.Group
	g.SetLimit(s.recordLimit)

	for i, contact := range contacts {
		g.Go(func() error {
			if err := s.recordOne(ctx, contact, template); err != nil {
				logger.Error("Failed to record in-app notification",
					slog.String("contact_id", contact.ID.String()),
					slog.Any("error", err),
				)

				return nil
			}
			recorded[i] = true

			return nil
		})
	}
	_ = g.Wait()

	notified := make([]uuid.UUID, 0, len(contacts))
	for i, ok := range recorded {
		if ok {
			notified = append(notified, contacts[i].ID)
		}
	}

	return notified
}

func (s *alertService) recordOne(ctx context.Context, contact *entity.Contact, template *entity.Notification) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("notification store panicked: %v", r)
		}
	}()

	writeCtx, cancel := context.WithTimeout(ctx, s.recordTimeout)
	defer cancel()

	notification := &entity.Notification{
		ID:        uuid.New(),
		UserID:    contact.ID,
		Title:     template.Title,
		Body:      template.Body,
		Type:      template.Type,
		IsRead:    false,
		Data:      maps.Clone(template.Data),
		CreatedAt: time.Now(),
	}

	return s.notificationRepo.CreateNotification(writeCtx, notification)
}

func (s *alertService) deactivateInvalidTokens(ctx context.Context, logger *slog.Logger, tokens []string) {
	if len(tokens) == 0 {
		return
	}

	count, err := s.deviceRepo.DeactivateByTokens(ctx, tokens)
	if err != nil {
		logger.Warn("Failed to deactivate devices with invalid tokens",
			slog.Int("tokens", len(tokens)),
			slog.Any("error", err),
		)

		return
	}

	logger.Info("Deactivated devices with invalid tokens", slog.Int64("devices", count))
}

// buildAlertContent renders the title, body and data payload shared by every contact.
func buildAlertContent(event *entity.EmergencyEvent, user *entity.User) (title, body string, data map[string]any) {
	location := event.Location
	if location == "" {
		location = unknownLocation
	}

	// UTC regardless of the offset the client reported
	occurredAt := event.OccurredAt.UTC()

	data = map[string]any{
		"type":         string(event.Kind),
		"userId":       event.UserID.String(),
		"detectedTime": occurredAt.Format(detectedTimeLayout),
		"detectedAt":   occurredAt.Format(time.RFC3339),
		"location":     location,
		"clickAction":  flutterClickAction,
	}
	if event.SourceID != nil {
		data["accidentId"] = event.SourceID.String()
	}

	return accidentAlertTitle, fmt.Sprintf(accidentAlertBody, user.DisplayName()), data
}

// gateMessage maps a gate failure to the message reported in the delivery result.
func gateMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return err.Error()
}
