package model

import (
	"time"

	"github.com/google/uuid"
)

// MentorMatchModel mirrors the 'mentor_matches' table.
// The one-open-match-per-pair rule lives in the partial unique index uniq_open_match_pair (see Migrate).
type MentorMatchModel struct {
	ID              uuid.UUID           `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MentorID        uuid.UUID           `gorm:"type:uuid;not null;index"`
	MenteeID        uuid.UUID           `gorm:"type:uuid;not null;index"`
	Mentor          *MentorProfileModel `gorm:"foreignKey:MentorID"`
	Mentee          *MenteeProfileModel `gorm:"foreignKey:MenteeID"`
	Status          string              `gorm:"type:varchar(20);not null;default:'pending';index"`
	MatchScore      int                 `gorm:"not null;default:0"`
	RequestMessage  string              `gorm:"type:text;not null"`
	ResponseMessage string              `gorm:"type:text"`
	MatchedAt       *time.Time
	CompletedAt     *time.Time
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (MentorMatchModel) TableName() string {
	return "mentor_matches"
}

// ChatMessageModel mirrors the 'chat_messages' table. Messages are removed with their match.
type ChatMessageModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MatchID     uuid.UUID         `gorm:"type:uuid;not null;index:idx_chat_messages_match_created,priority:1"`
	Match       *MentorMatchModel `gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
	SenderID    uuid.UUID         `gorm:"type:uuid;not null"`
	ReceiverID  uuid.UUID         `gorm:"type:uuid;not null;index"`
	Body        string            `gorm:"type:text;not null"`
	MessageType string            `gorm:"type:varchar(10);not null;default:'text'"`
	IsRead      bool              `gorm:"not null;default:false"`
	ReadAt      *time.Time
	CreatedAt   time.Time `gorm:"index:idx_chat_messages_match_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
