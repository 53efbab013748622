package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"drivesafe/config"
	"drivesafe/internal/domain/entity"
	"drivesafe/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// MaxMulticastTokens is the provider's limit for one multicast call.
const MaxMulticastTokens = 500

// ErrPushDisabled is returned by the disabled push service for every call.
var ErrPushDisabled = errors.New("push provider is not configured")

// multicastSender is the slice of *messaging.Client used here.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
}

// NewFirebaseService creates a new Firebase push service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.PushService, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var fbConfig *firebase.Config
	if projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendMulticast sends one message to up to 500 device tokens
func (s *firebaseService) SendMulticast(ctx context.Context, msg *service.PushMessage) (*service.MulticastResult, error) {
	if len(msg.Tokens) == 0 {
		return &service.MulticastResult{}, nil
	}

	if len(msg.Tokens) > MaxMulticastTokens {
		return nil, fmt.Errorf("token count exceeds limit: %d (max %d)", len(msg.Tokens), MaxMulticastTokens)
	}

	response, err := s.client.SendEachForMulticast(ctx, buildMulticastMessage(msg))
	if err != nil {
		return nil, fmt.Errorf("failed to send multicast notification: %w", err)
	}

	result := &service.MulticastResult{
		SuccessCount:  response.SuccessCount,
		FailureCount:  response.FailureCount,
		InvalidTokens: make([]string, 0),
	}

	for idx, sendResponse := range response.Responses {
		if sendResponse == nil || sendResponse.Error == nil || idx >= len(msg.Tokens) {
			continue
		}
		// Check if error is due to invalid or unregistered token
		if messaging.IsInvalidArgument(sendResponse.Error) ||
			messaging.IsUnregistered(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, msg.Tokens[idx])
		}
	}

	return result, nil
}

func buildMulticastMessage(msg *service.PushMessage) *messaging.MulticastMessage {
	return &messaging.MulticastMessage{
		Tokens: msg.Tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data:    msg.Data,
		Android: buildAndroidConfig(msg.Hints.Android),
		APNS:    buildAPNSConfig(msg.Hints.APNS),
	}
}

func buildAndroidConfig(hints entity.AndroidHints) *messaging.AndroidConfig {
	return &messaging.AndroidConfig{
		Priority: hints.Priority,
		Notification: &messaging.AndroidNotification{
			ChannelID: hints.ChannelID,
			Priority:  androidNotificationPriority(hints.NotificationPriority),
			Sound:     hints.Sound,
			Icon:      hints.Icon,
		},
	}
}

func buildAPNSConfig(hints entity.APNSHints) *messaging.APNSConfig {
	return &messaging.APNSConfig{
		Headers: hints.Headers,
		Payload: &messaging.APNSPayload{
			Aps: &messaging.Aps{
				Sound:            hints.Sound,
				Category:         hints.Category,
				ContentAvailable: hints.ContentAvailable,
			},
		},
	}
}

func androidNotificationPriority(priority string) messaging.AndroidNotificationPriority {
	switch priority {
	case "min":
		return messaging.PriorityMin
	case "low":
		return messaging.PriorityLow
	case "default":
		return messaging.PriorityDefault
	case "high":
		return messaging.PriorityHigh
	case "max":
		return messaging.PriorityMax
	default:
		// zero value leaves the priority unset
		var unset messaging.AndroidNotificationPriority

		return unset
	}
}

type disabledPushService struct{}

// NewDisabledPushService returns a push service that fails every call, used when Firebase is not configured.
func NewDisabledPushService() service.PushService {
	return disabledPushService{}
}

func (disabledPushService) SendMulticast(context.Context, *service.PushMessage) (*service.MulticastResult, error) {
	return nil, ErrPushDisabled
}

// NewPushService builds the Firebase push service, or the disabled one when Firebase is not configured.
func NewPushService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushService, error) {
	if cfg.Firebase == nil || (cfg.Firebase.ProjectID == "" && cfg.Firebase.CredentialsPath == "") {
		logger.Warn("Firebase not configured, push delivery disabled")

		return NewDisabledPushService(), nil
	}

	svc, err := NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	logger.Info("Firebase push service initialized", slog.String("project_id", cfg.Firebase.ProjectID))

	return svc, nil
}
