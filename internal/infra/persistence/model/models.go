// Package model holds the GORM persistence models.
package model

// All returns every model managed by this service, in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&EmergencyContactModel{},
		&UserDeviceModel{},
		&NotificationModel{},
		&AccidentModel{},
	}
}
