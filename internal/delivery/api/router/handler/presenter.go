package handler

import (
	"time"

	"mentorship/internal/domain/entity"
	"mentorship/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse is the public view of a user with both capability records.
type UserResponse struct {
	ID            uuid.UUID              `json:"id"`
	Email         string                 `json:"email"`
	Name          string                 `json:"name"`
	MentorProfile *MentorProfileResponse `json:"mentor_profile,omitempty"`
	MenteeProfile *MenteeProfileResponse `json:"mentee_profile,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}

// MentorProfileResponse is the public view of a mentor profile.
type MentorProfileResponse struct {
	ID                     uuid.UUID `json:"id"`
	UserID                 uuid.UUID `json:"user_id"`
	Name                   string    `json:"name,omitempty"`
	YearsOfExperience      int       `json:"years_of_experience"`
	AreasOfStrength        []string  `json:"areas_of_strength"`
	AreasOfExpertise       []string  `json:"areas_of_expertise"`
	Bio                    string    `json:"bio"`
	Industry               string    `json:"industry"`
	CurrentRole            string    `json:"current_role"`
	Company                string    `json:"company"`
	MentoringExperience    string    `json:"mentoring_experience"`
	Availability           string    `json:"availability"`
	PreferredMeetingFormat string    `json:"preferred_meeting_format"`
	LanguagePreferences    []string  `json:"language_preferences"`
	Timezone               string    `json:"timezone"`
	MaxMentees             int       `json:"max_mentees"`
	CurrentMenteeCount     int       `json:"current_mentee_count"`
	IsActive               bool      `json:"is_active"`
}

// MenteeProfileResponse is the public view of a mentee profile.
type MenteeProfileResponse struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Name             string    `json:"name,omitempty"`
	CareerStage      string    `json:"career_stage"`
	Skills           []string  `json:"skills"`
	LearningGoals    []string  `json:"learning_goals"`
	Interests        []string  `json:"interests"`
	TimeAvailability string    `json:"time_availability"`
	Bio              string    `json:"bio"`
	IsActive         bool      `json:"is_active"`
}

// MentorListingResponse is a mentor with the score computed for this listing.
type MentorListingResponse struct {
	*MentorProfileResponse
	Score int `json:"score"`
}

// MatchResponse is the public view of a match with both parties joined.
type MatchResponse struct {
	ID              uuid.UUID              `json:"id"`
	MentorID        uuid.UUID              `json:"mentor_id"`
	MenteeID        uuid.UUID              `json:"mentee_id"`
	MentorUserID    uuid.UUID              `json:"mentor_user_id"`
	MenteeUserID    uuid.UUID              `json:"mentee_user_id"`
	Status          entity.MatchStatus     `json:"status"`
	MatchScore      int                    `json:"match_score"`
	RequestMessage  string                 `json:"request_message"`
	ResponseMessage string                 `json:"response_message,omitempty"`
	MatchedAt       *time.Time             `json:"matched_at,omitempty"`
	CompletedAt     *time.Time             `json:"completed_at,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
	Mentor          *MentorProfileResponse `json:"mentor,omitempty"`
	Mentee          *MenteeProfileResponse `json:"mentee,omitempty"`
}

func newUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		MentorProfile: newMentorProfileResponse(user.MentorProfile),
		MenteeProfile: newMenteeProfileResponse(user.MenteeProfile),
		CreatedAt:     user.CreatedAt,
	}
}

func newMentorProfileResponse(p *entity.MentorProfile) *MentorProfileResponse {
	if p == nil {
		return nil
	}

	resp := &MentorProfileResponse{
		ID:                     p.ID,
		UserID:                 p.UserID,
		YearsOfExperience:      p.YearsOfExperience,
		AreasOfStrength:        nonNil(p.AreasOfStrength),
		AreasOfExpertise:       nonNil(p.AreasOfExpertise),
		Bio:                    p.Bio,
		Industry:               p.Industry,
		CurrentRole:            p.CurrentRole,
		Company:                p.Company,
		MentoringExperience:    p.MentoringExperience,
		Availability:           p.Availability,
		PreferredMeetingFormat: p.PreferredMeetingFormat,
		LanguagePreferences:    nonNil(p.LanguagePreferences),
		Timezone:               p.Timezone,
		MaxMentees:             p.MaxMentees,
		CurrentMenteeCount:     p.CurrentMenteeCount,
		IsActive:               p.IsActive,
	}
	if p.User != nil {
		resp.Name = p.User.Name
	}

	return resp
}

func newMenteeProfileResponse(p *entity.MenteeProfile) *MenteeProfileResponse {
	if p == nil {
		return nil
	}

	resp := &MenteeProfileResponse{
		ID:               p.ID,
		UserID:           p.UserID,
		CareerStage:      p.CareerStage,
		Skills:           nonNil(p.Skills),
		LearningGoals:    nonNil(p.LearningGoals),
		Interests:        nonNil(p.Interests),
		TimeAvailability: p.TimeAvailability,
		Bio:              p.Bio,
		IsActive:         p.IsActive,
	}
	if p.User != nil {
		resp.Name = p.User.Name
	}

	return resp
}

func newMentorListingResponses(listings []*usecase.MentorListing) []*MentorListingResponse {
	out := make([]*MentorListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, &MentorListingResponse{
			MentorProfileResponse: newMentorProfileResponse(l.Mentor),
			Score:                 l.Score,
		})
	}

	return out
}

func newMatchResponse(m *entity.Match) *MatchResponse {
	return &MatchResponse{
		ID:              m.ID,
		MentorID:        m.MentorID,
		MenteeID:        m.MenteeID,
		MentorUserID:    m.MentorUserID,
		MenteeUserID:    m.MenteeUserID,
		Status:          m.Status,
		MatchScore:      m.MatchScore,
		RequestMessage:  m.RequestMessage,
		ResponseMessage: m.ResponseMessage,
		MatchedAt:       m.MatchedAt,
		CompletedAt:     m.CompletedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		Mentor:          newMentorProfileResponse(m.Mentor),
		Mentee:          newMenteeProfileResponse(m.Mentee),
	}
}

func newMatchResponses(matches []*entity.Match) []*MatchResponse {
	out := make([]*MatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, newMatchResponse(m))
	}

	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
