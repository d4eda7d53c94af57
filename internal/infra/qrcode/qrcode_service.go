package qrcode

import (
	"encoding/json"
	"net/url"

	"mentorship/internal/domain/service"
	"mentorship/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	mentorInviteType = "mentor_invite"
	defaultSize      = 256
)

// ErrInvalidInvite is returned when QR data is not a mentor invite this service issued.
var ErrInvalidInvite = errors.New("invalid mentor invite QR data")

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// InviteData represents the payload encoded into a mentor invite QR code
type InviteData struct {
	Type         string `json:"type"`
	MentorUserID string `json:"mentor_user_id"`
	Link         string `json:"link,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		baseURL:              baseURL,
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateMentorInviteQR generates a PNG QR code inviting mentees to request the mentor
func (s *qrcodeService) GenerateMentorInviteQR(mentorUserID uuid.UUID) ([]byte, error) {
	if mentorUserID == uuid.Nil {
		return nil, errors.New("mentor user id must be provided")
	}

	data := InviteData{
		Type:         mentorInviteType,
		MentorUserID: mentorUserID.String(),
		Link:         s.inviteLink(mentorUserID),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseMentorInviteQR parses QR code data and returns the mentor's user ID
func (s *qrcodeService) ParseMentorInviteQR(qrData string) (uuid.UUID, error) {
	var data InviteData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(ErrInvalidInvite, "payload is not JSON")
	}

	if data.Type != mentorInviteType {
		return uuid.Nil, errors.Wrapf(ErrInvalidInvite, "unexpected type %q", data.Type)
	}

	mentorUserID, err := uuid.Parse(data.MentorUserID)
	if err != nil || mentorUserID == uuid.Nil {
		return uuid.Nil, errors.Wrap(ErrInvalidInvite, "mentor user id is not a valid UUID")
	}

	return mentorUserID, nil
}

func (s *qrcodeService) inviteLink(mentorUserID uuid.UUID) string {
	if s.baseURL == "" {
		return ""
	}

	link, err := url.Parse(s.baseURL)
	if err != nil {
		return ""
	}

	query := link.Query()
	query.Set("mentor", mentorUserID.String())
	link.RawQuery = query.Encode()

	return link.String()
}
