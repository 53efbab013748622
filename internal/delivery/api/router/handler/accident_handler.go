package handler

import (
	"log/slog"
	"net/http"
	"time"

	"drivesafe/internal/delivery/api/response"
	"drivesafe/internal/domain/entity"
	"drivesafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccidentHandlerParams holds dependencies for AccidentHandler, injected by Fx.
type AccidentHandlerParams struct {
	fx.In

	AccidentUC usecase.AccidentUsecase
	Logger     *slog.Logger
}

// AccidentHandler serves the accident history endpoints.
type AccidentHandler struct {
	accidentUC usecase.AccidentUsecase
	logger     *slog.Logger
}

// NewAccidentHandler is the constructor for AccidentHandler
func NewAccidentHandler(params AccidentHandlerParams) *AccidentHandler {
	return &AccidentHandler{
		accidentUC: params.AccidentUC,
		logger:     params.Logger,
	}
}

// CreateAccidentRequest is the accident reported by the app after a crash is detected
type CreateAccidentRequest struct {
	DetectedTime *time.Time `json:"detectedTime"`
	Location     string     `json:"location" validate:"required,max=500"`
	ContactNum   string     `json:"contactNum" validate:"required,max=32"`
	ContactTime  string     `json:"contactTime" validate:"required,max=64"`
	DeviceID     string     `json:"deviceId" validate:"max=255"`
}

// CreateAccident stores an accident. Emergency contacts are alerted in the background.
func (h *AccidentHandler) CreateAccident(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req CreateAccidentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid accident input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	accident, err := h.accidentUC.CreateAccident(c.Request().Context(), userID, &usecase.AccidentInput{
		DetectedTime: req.DetectedTime,
		Location:     req.Location,
		ContactNum:   req.ContactNum,
		ContactTime:  req.ContactTime,
		DeviceID:     req.DeviceID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, accident)
}

// ListAccidents returns the caller's accidents, optionally bounded by startDate and endDate
func (h *AccidentHandler) ListAccidents(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	startDate, err := parseDateParam(c.QueryParam("startDate"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Invalid startDate format")
	}

	endDate, err := parseDateParam(c.QueryParam("endDate"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Invalid endDate format")
	}

	accidents, err := h.accidentUC.ListAccidents(c.Request().Context(), entity.AccidentFilter{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, accidents)
}

// GetAccident returns one of the caller's accidents
func (h *AccidentHandler) GetAccident(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	accidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid accident ID")
	}

	accident, err := h.accidentUC.GetAccident(c.Request().Context(), userID, accidentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, accident)
}

// DeleteAccident removes one of the caller's accidents
func (h *AccidentHandler) DeleteAccident(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	accidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid accident ID")
	}

	if err := h.accidentUC.DeleteAccident(c.Request().Context(), userID, accidentID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Accident deleted successfully"})
}
