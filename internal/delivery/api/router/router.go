// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"drivesafe/internal/delivery/api/middleware"
	"drivesafe/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccidentHandler         *handler.AccidentHandler
	NotificationHandler     *handler.NotificationHandler
	DeviceHandler           *handler.DeviceHandler
	EmergencyContactHandler *handler.EmergencyContactHandler
	AuthMiddleware          *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accidentHandler         *handler.AccidentHandler
	notificationHandler     *handler.NotificationHandler
	deviceHandler           *handler.DeviceHandler
	emergencyContactHandler *handler.EmergencyContactHandler
	authMiddleware          *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accidentHandler:         params.AccidentHandler,
		notificationHandler:     params.NotificationHandler,
		deviceHandler:           params.DeviceHandler,
		emergencyContactHandler: params.EmergencyContactHandler,
		authMiddleware:          params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	accidentsGroup := apiV1.Group("/accidents")
	{
		accidentsGroup.POST("", r.accidentHandler.CreateAccident)
		accidentsGroup.GET("", r.accidentHandler.ListAccidents)
		accidentsGroup.GET("/:id", r.accidentHandler.GetAccident)
		accidentsGroup.DELETE("/:id", r.accidentHandler.DeleteAccident)
	}

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.DELETE("", r.notificationHandler.DeleteAllNotifications)
		notificationsGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
		notificationsGroup.PATCH("/read-all", r.notificationHandler.MarkAllAsRead)
		notificationsGroup.PATCH("/:id/read", r.notificationHandler.MarkAsRead)
		notificationsGroup.DELETE("/:id", r.notificationHandler.DeleteNotification)
	}

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	contactsGroup := apiV1.Group("/emergency-contacts")
	{
		contactsGroup.POST("/generate-code", r.emergencyContactHandler.GenerateInviteCode)
		contactsGroup.POST("/accept", r.emergencyContactHandler.AcceptInvitation)
		contactsGroup.GET("", r.emergencyContactHandler.ListContacts)
		contactsGroup.DELETE("/:contactUserId", r.emergencyContactHandler.RemoveContact)
	}
}
