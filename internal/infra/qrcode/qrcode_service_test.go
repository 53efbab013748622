package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "drivesafe://emergency-contacts/accept"

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "medium"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(256, tt.errorCorrectionLevel, testBaseURL)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateInviteQR(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)

	qrBytes, err := service.GenerateInviteQR("AB12CD34")
	require.NoError(t, err)
	require.True(t, len(qrBytes) > 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateInviteQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M", testBaseURL)

		qrBytes, err := service.GenerateInviteQR("AB12CD34")
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_GenerateInviteQR_EmptyCode(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)

	_, err := service.GenerateInviteQR("")
	assert.Error(t, err)
}

func TestQRCodeService_InviteLinkRoundTrip(t *testing.T) {
	svc := NewQRCodeService(256, "M", testBaseURL).(*qrcodeService)

	link, err := svc.inviteLink("AB12CD34")
	require.NoError(t, err)
	assert.Equal(t, testBaseURL+"?code=AB12CD34", link)

	code, err := svc.ParseInviteQR(link)
	require.NoError(t, err)
	assert.Equal(t, "AB12CD34", code)
}

func TestQRCodeService_ParseInviteQR(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)

	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{name: "bare code is upper-cased", content: " ab12cd34 ", want: "AB12CD34"},
		{name: "https link", content: "https://drivesafe.app/invite?code=ZZ99YY88", want: "ZZ99YY88"},
		{name: "link without code", content: "https://drivesafe.app/invite?foo=bar", wantErr: true},
		{name: "empty", content: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseInviteQR(tt.content)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
