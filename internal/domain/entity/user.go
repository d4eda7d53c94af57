// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultMaxMentees is the capacity given to a mentor profile when none is supplied.
const DefaultMaxMentees = 3

// User is the core entity in the system, representing a unique "person" or "account".
// Whether the user can act as a mentor or mentee is decided solely by which
// capability records are present.
type User struct {
	ID            uuid.UUID      // The Global Unique Identifier (GUID) for the user.
	Email         string         // The user's primary contact email.
	Name          string         // The user's display name.
	MentorProfile *MentorProfile // Nil if this person cannot act as a mentor.
	MenteeProfile *MenteeProfile // Nil if this person cannot act as a mentee.
	CreatedAt     time.Time      // Timestamp of when this user account was created.
	UpdatedAt     time.Time      // Timestamp of the last modification to this user's data.
}

// IsMentor reports whether the user holds a mentor capability record.
func (u *User) IsMentor() bool {
	return u != nil && u.MentorProfile != nil
}

// IsMentee reports whether the user holds a mentee capability record.
func (u *User) IsMentee() bool {
	return u != nil && u.MenteeProfile != nil
}

// MentorProfile holds data specific to the "mentor" capability.
type MentorProfile struct {
	ID                     uuid.UUID
	UserID                 uuid.UUID // Owning user, one-to-one.
	User                   *User     // Owning user, populated by read models for display.
	YearsOfExperience      int
	AreasOfStrength        []string
	AreasOfExpertise       []string
	Bio                    string
	Industry               string
	CurrentRole            string
	Company                string
	MentoringExperience    string // Free text, matched by the scorer ("experienced", "some", "first").
	Availability           string
	PreferredMeetingFormat string
	LanguagePreferences    []string
	Timezone               string
	MaxMentees             int
	CurrentMenteeCount     int // Count of accepted or active matches, maintained by atomic increments.
	IsActive               bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// HasCapacity reports whether the mentor can take on another mentee.
func (p *MentorProfile) HasCapacity() bool {
	return p.CurrentMenteeCount < p.MaxMentees
}

// HasPreferences reports whether the mentor has filled in enough of the profile to be matched well.
func (p *MentorProfile) HasPreferences() bool {
	return p.YearsOfExperience > 0 && len(p.AreasOfStrength) > 0 && p.Bio != ""
}

// MenteeProfile holds data specific to the "mentee" capability.
type MenteeProfile struct {
	ID               uuid.UUID
	UserID           uuid.UUID // Owning user, one-to-one.
	User             *User     // Owning user, populated by read models for display.
	CareerStage      string
	Skills           []string
	LearningGoals    []string
	Interests        []string
	TimeAvailability string
	Bio              string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasPreferences reports whether the mentee has described what they want to learn.
func (p *MenteeProfile) HasPreferences() bool {
	return p.CareerStage != "" && len(p.Skills) > 0 && len(p.LearningGoals) > 0
}
