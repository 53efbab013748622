package service

// QRCodeService defines the interface for emergency contact invitation QR codes
type QRCodeService interface {
	// GenerateInviteQR renders a PNG QR code that encodes the invitation link for code
	GenerateInviteQR(code string) ([]byte, error)

	// ParseInviteQR extracts the invitation code from scanned QR content
	ParseInviteQR(content string) (string, error)
}
