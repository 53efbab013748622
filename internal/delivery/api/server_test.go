package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"drivesafe/config"
	"drivesafe/internal/delivery/api/middleware"
	"drivesafe/internal/delivery/api/router"
	"drivesafe/internal/delivery/api/router/handler"
	deliverycontext "drivesafe/internal/delivery/context"
	"drivesafe/internal/domain/entity"
	domainerrors "drivesafe/internal/domain/errors"
	"drivesafe/internal/domain/service"
	mockservice "drivesafe/internal/mocks/service"
	mockusecase "drivesafe/internal/mocks/usecase"
	"drivesafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

const validToken = "valid-token"

type apiFixture struct {
	t             *testing.T
	handler       http.Handler
	userID        uuid.UUID
	accidents     *mockusecase.MockAccidentUsecase
	notifications *mockusecase.MockNotificationUsecase
	devices       *mockusecase.MockDeviceUsecase
	contacts      *mockusecase.MockEmergencyContactUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"requestId"`
	} `json:"meta"`
}

func newAPIFixture(t *testing.T) *apiFixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &apiFixture{
		t:             t,
		userID:        uuid.New(),
		accidents:     mockusecase.NewMockAccidentUsecase(t),
		notifications: mockusecase.NewMockNotificationUsecase(t),
		devices:       mockusecase.NewMockDeviceUsecase(t),
		contacts:      mockusecase.NewMockEmergencyContactUsecase(t),
	}

	tokens := mockservice.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken(validToken).Return(&service.Claims{UserID: f.userID}, nil).Maybe()
	tokens.EXPECT().ValidateToken(mock.MatchedBy(func(s string) bool { return s != validToken })).
		Return(nil, errors.New("token is expired")).Maybe()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	srv, err := NewServer(ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			AccidentHandler:         handler.NewAccidentHandler(handler.AccidentHandlerParams{AccidentUC: f.accidents, Logger: logger}),
			NotificationHandler:     handler.NewNotificationHandler(handler.NotificationHandlerParams{NotificationUC: f.notifications, Logger: logger}),
			DeviceHandler:           handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: f.devices, Logger: logger}),
			EmergencyContactHandler: handler.NewEmergencyContactHandler(handler.EmergencyContactHandlerParams{ContactUC: f.contacts, Logger: logger}),
			AuthMiddleware:          middleware.NewAuthMiddleware(tokens, logger),
		},
	})
	require.NoError(t, err)
	f.handler = srv.(*apiServer).server

	return f
}

func (f *apiFixture) do(method, target string, body any) (*httptest.ResponseRecorder, envelope) {
	f.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(f.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+validToken)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(f.t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestServer_HealthIsPublic(t *testing.T) {
	f := newAPIFixture(t)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_Authentication(t *testing.T) {
	f := newAPIFixture(t)

	tests := []struct {
		name     string
		header   string
		wantCode string
	}{
		{name: "missing header", header: "", wantCode: "MISSING_TOKEN"},
		{name: "not bearer", header: "Token abc", wantCode: "INVALID_TOKEN_FORMAT"},
		{name: "rejected token", header: "Bearer expired", wantCode: "ACCESS_TOKEN_INVALID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/accidents", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			f.handler.ServeHTTP(rec, req)

			var env envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestServer_CreateAccident(t *testing.T) {
	f := newAPIFixture(t)
	detected := time.Date(2026, 10, 17, 14, 5, 0, 0, time.UTC)
	accidentID := uuid.New()

	f.accidents.EXPECT().
		CreateAccident(mock.Anything, f.userID, mock.MatchedBy(func(in *usecase.AccidentInput) bool {
			return in.Location == "Main St" && in.ContactNum == "911" && in.ContactTime == "14:06" &&
				in.DetectedTime != nil && in.DetectedTime.Equal(detected)
		})).
		Return(&entity.Accident{ID: accidentID, UserID: f.userID, Location: "Main St", DetectedTime: detected}, nil)

	rec, env := f.do(http.MethodPost, "/api/v1/accidents", map[string]any{
		"detectedTime": detected,
		"location":     "Main St",
		"contactNum":   "911",
		"contactTime":  "14:06",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), env.Meta.RequestID)

	var got entity.Accident
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, accidentID, got.ID)
}

func TestServer_CreateAccident_ValidationFailed(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(http.MethodPost, "/api/v1/accidents", map[string]any{"contactNum": "911"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Equal(t, map[string]any{
		"location":    "location is required",
		"contactTime": "contactTime is required",
	}, env.Error.Details)
}

func TestServer_ListAccidents_DateRange(t *testing.T) {
	f := newAPIFixture(t)
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	f.accidents.EXPECT().
		ListAccidents(mock.Anything, mock.MatchedBy(func(filter entity.AccidentFilter) bool {
			return filter.UserID == f.userID && filter.StartDate != nil && filter.StartDate.Equal(start) && filter.EndDate == nil
		})).
		Return([]*entity.Accident{}, nil)

	rec, env := f.do(http.MethodGet, "/api/v1/accidents?startDate=2026-10-01", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))

	rec, env = f.do(http.MethodGet, "/api/v1/accidents?endDate=last-week", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_DATE", env.Error.Code)
}

func TestServer_GetAccident_NotFound(t *testing.T) {
	f := newAPIFixture(t)
	accidentID := uuid.New()

	f.accidents.EXPECT().GetAccident(mock.Anything, f.userID, accidentID).Return(nil, domainerrors.ErrAccidentNotFound)

	rec, env := f.do(http.MethodGet, "/api/v1/accidents/"+accidentID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ACCIDENT_NOT_FOUND", env.Error.Code)

	rec, env = f.do(http.MethodGet, "/api/v1/accidents/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", env.Error.Code)
}

func TestServer_UnhandledErrorIsHidden(t *testing.T) {
	f := newAPIFixture(t)
	accidentID := uuid.New()

	f.accidents.EXPECT().DeleteAccident(mock.Anything, f.userID, accidentID).Return(errors.New("connection reset by peer"))

	rec, env := f.do(http.MethodDelete, "/api/v1/accidents/"+accidentID.String(), nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestServer_ListNotifications(t *testing.T) {
	f := newAPIFixture(t)

	f.notifications.EXPECT().
		ListNotifications(mock.Anything, mock.MatchedBy(func(filter entity.NotificationFilter) bool {
			return filter.UserID == f.userID && filter.Limit == 5 && filter.Skip == 10 &&
				filter.IsRead != nil && !*filter.IsRead
		})).
		Return(&entity.NotificationPage{Notifications: []*entity.Notification{}, TotalCount: 12, UnreadCount: 12, HasMore: false}, nil)

	rec, env := f.do(http.MethodGet, "/api/v1/notifications?limit=5&skip=10&read=false", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"notifications":[],"totalCount":12,"unreadCount":12,"hasMore":false}`, string(env.Data))

	for _, query := range []string{"limit=-1", "skip=abc", "read=maybe"} {
		rec, env = f.do(http.MethodGet, "/api/v1/notifications?"+query, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
		assert.Equal(t, "INVALID_QUERY", env.Error.Code, query)
	}
}

func TestServer_MarkNotifications(t *testing.T) {
	f := newAPIFixture(t)
	notificationID := uuid.New()

	f.notifications.EXPECT().MarkAllAsRead(mock.Anything, f.userID).Return(int64(3), nil)
	f.notifications.EXPECT().MarkAsRead(mock.Anything, f.userID, notificationID).Return(domainerrors.ErrNotificationNotFound)

	rec, env := f.do(http.MethodPatch, "/api/v1/notifications/read-all", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":3}`, string(env.Data))

	rec, env = f.do(http.MethodPatch, "/api/v1/notifications/"+notificationID.String()+"/read", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOTIFICATION_NOT_FOUND", env.Error.Code)
}

func TestServer_UnreadCountAndClearInbox(t *testing.T) {
	f := newAPIFixture(t)

	f.notifications.EXPECT().UnreadCount(mock.Anything, f.userID).Return(int64(2), nil)
	f.notifications.EXPECT().DeleteAllNotifications(mock.Anything, f.userID).Return(int64(5), nil)

	rec, env := f.do(http.MethodGet, "/api/v1/notifications/unread-count", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":2}`, string(env.Data))

	rec, env = f.do(http.MethodDelete, "/api/v1/notifications", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":5}`, string(env.Data))
}

func TestServer_EmergencyContacts(t *testing.T) {
	f := newAPIFixture(t)
	inviterID := uuid.New()

	f.contacts.EXPECT().
		AcceptInvitation(mock.Anything, f.userID, "ABCD2345").
		Return(&entity.Contact{ID: inviterID, FirstName: "Alice"}, nil).Once()
	f.contacts.EXPECT().
		AcceptInvitation(mock.Anything, f.userID, "ABCD2345").
		Return(nil, domainerrors.ErrEmergencyContactExists).Once()

	rec, env := f.do(http.MethodPost, "/api/v1/emergency-contacts/accept", map[string]string{"code": "ABCD2345"})
	require.Equal(t, http.StatusOK, rec.Code)
	var inviter entity.Contact
	require.NoError(t, json.Unmarshal(env.Data, &inviter))
	assert.Equal(t, inviterID, inviter.ID)

	rec, env = f.do(http.MethodPost, "/api/v1/emergency-contacts/accept", map[string]string{"code": "ABCD2345"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "EMERGENCY_CONTACT_EXISTS", env.Error.Code)

	rec, env = f.do(http.MethodPost, "/api/v1/emergency-contacts/accept", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	rec, env = f.do(http.MethodDelete, "/api/v1/emergency-contacts/nope", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", env.Error.Code)
}

func TestServer_GenerateInviteCode(t *testing.T) {
	f := newAPIFixture(t)
	expires := time.Date(2026, 10, 18, 14, 5, 0, 0, time.UTC)

	f.contacts.EXPECT().
		GenerateInviteCode(mock.Anything, f.userID).
		Return(&usecase.InviteCode{Code: "ABCD2345", ExpiresAt: expires, QRCodePNG: []byte{0x89, 'P', 'N', 'G'}}, nil)

	rec, env := f.do(http.MethodPost, "/api/v1/emergency-contacts/generate-code", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"code":"ABCD2345","expiresAt":"2026-10-18T14:05:00Z","qrCode":"iVBORw=="}`, string(env.Data))
}

func TestServer_RegisterDevice_Validation(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(http.MethodPost, "/api/v1/devices", map[string]string{
		"fcm_token": "token",
		"device_id": "device",
		"platform":  "windows",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Equal(t, map[string]any{"platform": "platform must be one of: ios android"}, env.Error.Details)
}
