package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. The ID is the subject of the caller's access token.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	MentorProfile *MentorProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	MenteeProfile *MenteeProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// MentorProfileModel mirrors the 'mentor_profiles' table. UserID references users.id (UUID).
// The counter bounds are enforced by check constraints created in Migrate.
type MentorProfileModel struct {
	ID                     uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID                 uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex"`
	User                   *UserModel                  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	YearsOfExperience      int                         `gorm:"not null;default:0"`
	AreasOfStrength        datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	AreasOfExpertise       datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	Bio                    string                      `gorm:"type:text"`
	Industry               string                      `gorm:"type:varchar(100)"`
	CurrentRole            string                      `gorm:"type:varchar(100)"`
	Company                string                      `gorm:"type:varchar(100)"`
	MentoringExperience    string                      `gorm:"type:text"`
	Availability           string                      `gorm:"type:varchar(255)"`
	PreferredMeetingFormat string                      `gorm:"type:varchar(50)"`
	LanguagePreferences    datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	Timezone               string                      `gorm:"type:varchar(64)"`
	MaxMentees             int                         `gorm:"not null;default:3"`
	CurrentMenteeCount     int                         `gorm:"not null;default:0"`
	IsActive               bool                        `gorm:"not null;default:true;index"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (MentorProfileModel) TableName() string {
	return "mentor_profiles"
}

// MenteeProfileModel mirrors the 'mentee_profiles' table. UserID references users.id (UUID).
type MenteeProfileModel struct {
	ID               uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex"`
	User             *UserModel                  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CareerStage      string                      `gorm:"type:varchar(50)"`
	Skills           datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	LearningGoals    datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	Interests        datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	TimeAvailability string                      `gorm:"type:varchar(255)"`
	Bio              string                      `gorm:"type:text"`
	IsActive         bool                        `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (MenteeProfileModel) TableName() string {
	return "mentee_profiles"
}
