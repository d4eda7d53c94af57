package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_GenerateMentorInviteQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://mentorship.local/invite")

	qrBytes, err := service.GenerateMentorInviteQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateMentorInviteQR_NilMentor(t *testing.T) {
	service := NewQRCodeService(0, "", "")

	qrBytes, err := service.GenerateMentorInviteQR(uuid.Nil)
	assert.Error(t, err)
	assert.Nil(t, qrBytes)
}

func TestQRCodeService_InviteLink(t *testing.T) {
	mentorUserID := uuid.New()

	svc := NewQRCodeService(256, "M", "https://mentorship.local/invite?src=qr").(*qrcodeService)
	link := svc.inviteLink(mentorUserID)
	assert.Contains(t, link, "https://mentorship.local/invite?")
	assert.Contains(t, link, "mentor="+mentorUserID.String())
	assert.Contains(t, link, "src=qr")

	bare := NewQRCodeService(256, "M", "").(*qrcodeService)
	assert.Empty(t, bare.inviteLink(mentorUserID))
}

func TestQRCodeService_ParseMentorInviteQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")
	mentorUserID := uuid.New()

	valid, err := json.Marshal(InviteData{Type: mentorInviteType, MentorUserID: mentorUserID.String()})
	require.NoError(t, err)

	got, err := service.ParseMentorInviteQR(string(valid))
	require.NoError(t, err)
	assert.Equal(t, mentorUserID, got)

	tests := []struct {
		name   string
		qrData string
	}{
		{"not json", "mentor:" + mentorUserID.String()},
		{"wrong type", `{"type":"subscription","mentor_user_id":"` + mentorUserID.String() + `"}`},
		{"bad uuid", `{"type":"mentor_invite","mentor_user_id":"nope"}`},
		{"nil uuid", `{"type":"mentor_invite","mentor_user_id":"` + uuid.Nil.String() + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := service.ParseMentorInviteQR(tt.qrData)
			assert.ErrorIs(t, err, ErrInvalidInvite)
			assert.Equal(t, uuid.Nil, id)
		})
	}
}
