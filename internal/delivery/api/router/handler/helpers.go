package handler

import (
	"time"

	"drivesafe/internal/delivery/api/middleware"
	"drivesafe/internal/delivery/api/response"
	"drivesafe/internal/delivery/api/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// requireUserID returns the authenticated user or writes a 401.
func requireUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// validationFailed writes a 400 listing the invalid fields.
func validationFailed(c echo.Context, err error) error {
	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Request validation failed", validationErr.Fields())
	}

	return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
}

// parseDateParam accepts RFC 3339 timestamps or plain dates.
func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}

	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid date %q", value)
	}

	return &t, nil
}
