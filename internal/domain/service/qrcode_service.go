package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateMentorInviteQR generates a PNG QR code inviting mentees to request the mentor
	GenerateMentorInviteQR(mentorUserID uuid.UUID) ([]byte, error)

	// ParseMentorInviteQR parses QR code data and returns the mentor's user ID
	ParseMentorInviteQR(qrData string) (uuid.UUID, error)
}
