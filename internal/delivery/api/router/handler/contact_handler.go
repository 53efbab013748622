package handler

import (
	"log/slog"
	"net/http"

	"drivesafe/internal/delivery/api/response"
	"drivesafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EmergencyContactHandlerParams holds dependencies for EmergencyContactHandler, injected by Fx.
type EmergencyContactHandlerParams struct {
	fx.In

	ContactUC usecase.EmergencyContactUsecase
	Logger    *slog.Logger
}

// EmergencyContactHandler serves invitation and emergency contact endpoints
type EmergencyContactHandler struct {
	contactUC usecase.EmergencyContactUsecase
	logger    *slog.Logger
}

// NewEmergencyContactHandler is the constructor for EmergencyContactHandler
func NewEmergencyContactHandler(params EmergencyContactHandlerParams) *EmergencyContactHandler {
	return &EmergencyContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// AcceptInvitationRequest carries a scanned invitation, either the bare code or the QR link
type AcceptInvitationRequest struct {
	Code string `json:"code" validate:"required,max=512"`
}

// GenerateInviteCode issues a new invitation code with its QR image
func (h *EmergencyContactHandler) GenerateInviteCode(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	invite, err := h.contactUC.GenerateInviteCode(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, invite)
}

// AcceptInvitation makes the caller an emergency contact of the inviter
func (h *EmergencyContactHandler) AcceptInvitation(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req AcceptInvitationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invitation input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	inviter, err := h.contactUC.AcceptInvitation(c.Request().Context(), userID, req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, inviter)
}

// ListContacts returns the caller's emergency contacts
func (h *EmergencyContactHandler) ListContacts(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	contacts, err := h.contactUC.ListContacts(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, contacts)
}

// RemoveContact removes a user from the caller's emergency contacts
func (h *EmergencyContactHandler) RemoveContact(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	contactID, err := uuid.Parse(c.Param("contactUserId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid contact user ID")
	}

	if err := h.contactUC.RemoveContact(c.Request().Context(), userID, contactID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Emergency contact removed successfully"})
}
