// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"mentorship/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	Register(ctx context.Context, userID uuid.UUID, input *RegisterInput) (*entity.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	BecomeMentor(ctx context.Context, userID uuid.UUID, input *MentorProfileInput) (*entity.MentorProfile, error)
	BecomeMentee(ctx context.Context, userID uuid.UUID, input *MenteeProfileInput) (*entity.MenteeProfile, error)
	UpdateMentorProfile(ctx context.Context, userID uuid.UUID, input *UpdateMentorProfileInput) (*entity.MentorProfile, error)
	UpdateMenteeProfile(ctx context.Context, userID uuid.UUID, input *UpdateMenteeProfileInput) (*entity.MenteeProfile, error)
	HasPreferences(ctx context.Context, userID uuid.UUID) (*PreferenceStatus, error)
}

// --- Input DTOs ---

// RegisterInput defines the data required to create a user. Either profile may be attached at once.
type RegisterInput struct {
	Email  string              `json:"email"`
	Name   string              `json:"name"`
	Mentor *MentorProfileInput `json:"mentor,omitempty"`
	Mentee *MenteeProfileInput `json:"mentee,omitempty"`
}

// MentorProfileInput defines the data required to create a mentor profile.
type MentorProfileInput struct {
	YearsOfExperience      int      `json:"years_of_experience"`
	AreasOfStrength        []string `json:"areas_of_strength"`
	AreasOfExpertise       []string `json:"areas_of_expertise"`
	Bio                    string   `json:"bio"`
	Industry               string   `json:"industry"`
	CurrentRole            string   `json:"current_role"`
	Company                string   `json:"company"`
	MentoringExperience    string   `json:"mentoring_experience"`
	Availability           string   `json:"availability"`
	PreferredMeetingFormat string   `json:"preferred_meeting_format"`
	LanguagePreferences    []string `json:"language_preferences"`
	Timezone               string   `json:"timezone"`
	MaxMentees             int      `json:"max_mentees"` // 0 selects the configured default.
}

// MenteeProfileInput defines the data required to create a mentee profile.
type MenteeProfileInput struct {
	CareerStage      string   `json:"career_stage"`
	Skills           []string `json:"skills"`
	LearningGoals    []string `json:"learning_goals"`
	Interests        []string `json:"interests"`
	TimeAvailability string   `json:"time_availability"`
	Bio              string   `json:"bio"`
}

// UpdateMentorProfileInput defines a partial update of a mentor profile.
type UpdateMentorProfileInput struct {
	YearsOfExperience      *int      `json:"years_of_experience,omitempty"`
	AreasOfStrength        *[]string `json:"areas_of_strength,omitempty"`
	AreasOfExpertise       *[]string `json:"areas_of_expertise,omitempty"`
	Bio                    *string   `json:"bio,omitempty"`
	Industry               *string   `json:"industry,omitempty"`
	CurrentRole            *string   `json:"current_role,omitempty"`
	Company                *string   `json:"company,omitempty"`
	MentoringExperience    *string   `json:"mentoring_experience,omitempty"`
	Availability           *string   `json:"availability,omitempty"`
	PreferredMeetingFormat *string   `json:"preferred_meeting_format,omitempty"`
	LanguagePreferences    *[]string `json:"language_preferences,omitempty"`
	Timezone               *string   `json:"timezone,omitempty"`
	MaxMentees             *int      `json:"max_mentees,omitempty"`
	IsActive               *bool     `json:"is_active,omitempty"`
}

// UpdateMenteeProfileInput defines a partial update of a mentee profile.
type UpdateMenteeProfileInput struct {
	CareerStage      *string   `json:"career_stage,omitempty"`
	Skills           *[]string `json:"skills,omitempty"`
	LearningGoals    *[]string `json:"learning_goals,omitempty"`
	Interests        *[]string `json:"interests,omitempty"`
	TimeAvailability *string   `json:"time_availability,omitempty"`
	Bio              *string   `json:"bio,omitempty"`
	IsActive         *bool     `json:"is_active,omitempty"`
}

// PreferenceStatus reports which capability records exist and whether each is filled in.
type PreferenceStatus struct {
	IsMentor       bool `json:"is_mentor"`
	IsMentee       bool `json:"is_mentee"`
	MentorComplete bool `json:"mentor_complete"`
	MenteeComplete bool `json:"mentee_complete"`
}
