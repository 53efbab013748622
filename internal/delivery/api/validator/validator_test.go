package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Token    string `json:"fcm_token" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
	Note     string `json:"note,omitempty" validate:"max=5"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleRequest{Token: "t", Platform: "ios"}))

	err := v.Validate(&sampleRequest{Platform: "windows", Note: "too long"})
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, map[string]string{
		"fcm_token": "fcm_token is required",
		"platform":  "platform must be one of: ios android",
		"note":      "note must be at most 5 characters",
	}, validationErr.Fields())
	assert.Contains(t, err.Error(), "fcm_token is required")
}
