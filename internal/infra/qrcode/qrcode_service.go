package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"drivesafe/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const inviteCodeParam = "code"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance.
// Invitation links are built as baseURL?code=<code>.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L", "LOW":
		level = qrcode.Low
	case "M", "MEDIUM":
		level = qrcode.Medium
	case "Q", "HIGH":
		level = qrcode.High
	case "H", "HIGHEST":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateInviteQR renders the invitation link for code as a PNG
func (s *qrcodeService) GenerateInviteQR(code string) ([]byte, error) {
	if code == "" {
		return nil, fmt.Errorf("empty invitation code")
	}

	link, err := s.inviteLink(code)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseInviteQR accepts either a scanned invitation link or a bare code
func (s *qrcodeService) ParseInviteQR(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("empty QR content")
	}

	if !strings.Contains(content, "?") && !strings.Contains(content, "://") {
		return strings.ToUpper(content), nil
	}

	parsed, err := url.Parse(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse QR content: %w", err)
	}

	code := parsed.Query().Get(inviteCodeParam)
	if code == "" {
		return "", fmt.Errorf("QR content has no invitation code")
	}

	return strings.ToUpper(code), nil
}

func (s *qrcodeService) inviteLink(code string) (string, error) {
	if s.baseURL == "" {
		return code, nil
	}

	link, err := url.Parse(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid QR base URL: %w", err)
	}

	query := link.Query()
	query.Set(inviteCodeParam, code)
	link.RawQuery = query.Encode()

	return link.String(), nil
}
