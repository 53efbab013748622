package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"drivesafe/config"
	deliverycontext "drivesafe/internal/delivery/context"
	"drivesafe/internal/domain/constants"
	"drivesafe/internal/domain/entity"
	"drivesafe/internal/domain/service"
	"drivesafe/internal/infra/pubsub"
	mockusecase "drivesafe/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockusecase.MockAlertUsecase) {
	alerts := mockusecase.NewMockAlertUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Alerts: alerts,
	})

	return h, alerts
}

func newAlertEvent() *service.AlertEvent {
	accidentID := uuid.New()

	return service.NewAlertEvent(&entity.EmergencyEvent{
		Kind:       entity.EventKindAccident,
		UserID:     uuid.New(),
		OccurredAt: time.Date(2026, 10, 17, 14, 5, 0, 0, time.UTC),
		Location:   "Main St",
		SourceID:   &accidentID,
		RequestID:  "req-from-api",
	})
}

func pushRequest(t *testing.T, body any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(raw))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_HandlePush_Delivers(t *testing.T) {
	h, alerts := newTestPushHandler(t)
	alert := newAlertEvent()
	envelope, err := pubsub.NewPushEnvelope(alert, "projects/test/subscriptions/alerts")
	require.NoError(t, err)

	alerts.EXPECT().
		SendEmergencyAlert(mock.Anything, mock.MatchedBy(func(event *entity.EmergencyEvent) bool {
			return event.UserID.String() == alert.UserID &&
				event.Kind == entity.EventKindAccident &&
				event.SourceID != nil && event.SourceID.String() == alert.SourceID &&
				event.RequestID == "req-from-api"
		})).
		RunAndReturn(func(ctx context.Context, _ *entity.EmergencyEvent) *entity.DeliveryResult {
			assert.Equal(t, "req-from-api", deliverycontext.GetRequestIDFromContext(ctx))
			assert.NotNil(t, deliverycontext.GetLogger(ctx))

			return &entity.DeliveryResult{Success: true, InAppSent: true, FCMSent: true, Tokens: 2, Sent: 2, Batches: 1}
		})

	c, rec := pushRequest(t, envelope)
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_AcknowledgesDeliveryFailure(t *testing.T) {
	h, alerts := newTestPushHandler(t)
	envelope, err := pubsub.NewPushEnvelope(newAlertEvent(), "sub")
	require.NoError(t, err)

	alerts.EXPECT().
		SendEmergencyAlert(mock.Anything, mock.Anything).
		Return(&entity.DeliveryResult{Success: false, Error: "No emergency contacts"})

	c, rec := pushRequest(t, envelope)
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_MalformedPayload(t *testing.T) {
	badKind := newAlertEvent()
	badKind.Kind = "fire"
	badKindEnvelope, err := pubsub.NewPushEnvelope(badKind, "sub")
	require.NoError(t, err)

	notBase64 := &pubsub.PushEnvelope{}
	notBase64.Message.Data = "%%%"

	notJSON := &pubsub.PushEnvelope{}
	notJSON.Message.Data = base64.StdEncoding.EncodeToString([]byte("not json"))

	tests := []struct {
		name string
		body any
	}{
		{name: "empty data", body: &pubsub.PushEnvelope{}},
		{name: "invalid base64", body: notBase64},
		{name: "invalid json", body: notJSON},
		{name: "unknown kind", body: badKindEnvelope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, alerts := newTestPushHandler(t)

			c, rec := pushRequest(t, tt.body)
			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			alerts.AssertNotCalled(t, "SendEmergencyAlert", mock.Anything, mock.Anything)
		})
	}
}

func TestPushHandler_HandlePush_RequestIDFallsBackToAttribute(t *testing.T) {
	h, alerts := newTestPushHandler(t)
	alert := newAlertEvent()
	alert.RequestID = ""
	envelope, err := pubsub.NewPushEnvelope(alert, "sub")
	require.NoError(t, err)
	envelope.Message.Attributes[pubsub.AttrRequestID] = "req-attr"

	alerts.EXPECT().
		SendEmergencyAlert(mock.Anything, mock.MatchedBy(func(event *entity.EmergencyEvent) bool {
			return event.RequestID == "req-attr"
		})).
		Return(&entity.DeliveryResult{Success: true, InAppSent: true})

	c, rec := pushRequest(t, envelope)
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewPushHandler_VerifiesOnlyGoogleOutsideDevelop(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		provider string
		want     bool
	}{
		{name: "google production", env: constants.EnvProduction, provider: constants.PubSubProviderGoogle, want: true},
		{name: "google develop", env: constants.EnvDevelop, provider: constants.PubSubProviderGoogle, want: false},
		{name: "local production", env: constants.EnvProduction, provider: constants.PubSubProviderLocal, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: tt.provider, PushAudience: "https://worker/push"}}
			cfg.Env.Env = tt.env

			h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})
			assert.Equal(t, tt.want, h.verifyPushAuth)
			assert.Equal(t, "https://worker/push", h.pushAudience)
		})
	}
}

func TestPushHandler_VerifyPubSubToken(t *testing.T) {
	h, alerts := newTestPushHandler(t)
	h.verifyPushAuth = true

	var gotAudience string
	h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		switch token {
		case "good":
			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		case "wrong-issuer":
			return &idtoken.Payload{Issuer: "evil.example.com"}, nil
		case "unverified":
			return &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}}, nil
		default:
			return nil, errors.New("bad signature")
		}
	}

	tests := []struct {
		name       string
		authHeader string
		wantCode   int
	}{
		{name: "missing header", authHeader: "", wantCode: http.StatusUnauthorized},
		{name: "not bearer", authHeader: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "invalid token", authHeader: "Bearer forged", wantCode: http.StatusUnauthorized},
		{name: "wrong issuer", authHeader: "Bearer wrong-issuer", wantCode: http.StatusUnauthorized},
		{name: "unverified email", authHeader: "Bearer unverified", wantCode: http.StatusUnauthorized},
		{name: "valid", authHeader: "Bearer good", wantCode: http.StatusOK},
	}

	alerts.EXPECT().
		SendEmergencyAlert(mock.Anything, mock.Anything).
		Return(&entity.DeliveryResult{Success: true, InAppSent: true}).
		Once()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope, err := pubsub.NewPushEnvelope(newAlertEvent(), "sub")
			require.NoError(t, err)

			c, rec := pushRequest(t, envelope)
			if tt.authHeader != "" {
				c.Request().Header.Set("Authorization", tt.authHeader)
			}

			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}

	assert.Equal(t, "http://example.com/push", gotAudience)
}
