package postgres

import (
	"testing"
	"time"

	"drivesafe/internal/domain/entity"
	"drivesafe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUserDomain_KeepsContactOrder(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	code := "ABCD2345"
	expires := time.Now().Add(time.Hour)

	user := toUserDomain(&model.UserModel{
		ID:                     uuid.New(),
		FirstName:              "Jane",
		EmergencyInviteCode:    &code,
		EmergencyInviteExpires: &expires,
		EmergencyContacts: []model.EmergencyContactModel{
			{ContactID: first},
			{ContactID: second},
		},
	})

	require.NotNil(t, user)
	assert.Equal(t, []uuid.UUID{first, second}, user.EmergencyContactIDs)
	assert.Equal(t, code, user.InviteCode)
	assert.Equal(t, &expires, user.InviteExpiresAt)
}

func TestToUserDomain_NoInvite(t *testing.T) {
	user := toUserDomain(&model.UserModel{ID: uuid.New()})

	assert.Empty(t, user.InviteCode)
	assert.Nil(t, user.InviteExpiresAt)
	assert.NotNil(t, user.EmergencyContactIDs)
	assert.Nil(t, toUserDomain(nil))
}

func TestNotificationMapping(t *testing.T) {
	notification := &entity.Notification{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Title:  "title",
		Body:   "body",
		Type:   entity.NotificationTypeAccidentAlert,
		Data:   map[string]any{"accidentId": "42"},
	}

	back := toNotificationDomain(fromNotificationDomain(notification))
	assert.Equal(t, notification, back)

	empty := toNotificationDomain(&model.NotificationModel{ID: uuid.New()})
	assert.NotNil(t, empty.Data)
}

func TestAccidentMapping(t *testing.T) {
	accident := &entity.Accident{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		DetectedTime: time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC),
		Location:     "somewhere",
		ContactNum:   "911",
	}

	assert.Equal(t, accident, toAccidentDomain(fromAccidentDomain(accident)))
	assert.Nil(t, toAccidentDomain(nil))
}
