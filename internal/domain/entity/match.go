package entity

import (
	"time"

	"github.com/google/uuid"
)

// MatchStatus is the lifecycle state of a mentor/mentee pairing.
type MatchStatus string

const (
	MatchStatusPending   MatchStatus = "pending"
	MatchStatusAccepted  MatchStatus = "accepted"
	MatchStatusDeclined  MatchStatus = "declined"
	MatchStatusActive    MatchStatus = "active"
	MatchStatusCompleted MatchStatus = "completed"
)

// OpenMatchStatuses are the statuses that block a second request for the same pair.
var OpenMatchStatuses = []MatchStatus{MatchStatusPending, MatchStatusAccepted, MatchStatusActive}

// matchTransitions lists every allowed edge of the status machine.
var matchTransitions = map[MatchStatus][]MatchStatus{
	MatchStatusPending:  {MatchStatusAccepted, MatchStatusDeclined},
	MatchStatusAccepted: {MatchStatusActive, MatchStatusCompleted},
	MatchStatusActive:   {MatchStatusCompleted},
}

// String returns the string representation of the status.
func (s MatchStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusPending, MatchStatusAccepted, MatchStatusDeclined, MatchStatusActive, MatchStatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition may leave this status.
func (s MatchStatus) IsTerminal() bool {
	return s == MatchStatusDeclined || s == MatchStatusCompleted
}

// IsOpen reports whether the status counts toward the one-open-match-per-pair rule.
func (s MatchStatus) IsOpen() bool {
	return s == MatchStatusPending || s == MatchStatusAccepted || s == MatchStatusActive
}

// AllowsChat reports whether messages may be read or sent in this status.
func (s MatchStatus) AllowsChat() bool {
	return s == MatchStatusAccepted || s == MatchStatusActive
}

// HoldsCapacity reports whether a match in this status occupies a mentor slot.
func (s MatchStatus) HoldsCapacity() bool {
	return s == MatchStatusAccepted || s == MatchStatusActive
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s MatchStatus) CanTransitionTo(next MatchStatus) bool {
	for _, allowed := range matchTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// MatchDecision is a mentor's answer to a pending request.
type MatchDecision string

const (
	DecisionAccepted MatchDecision = "accepted"
	DecisionDeclined MatchDecision = "declined"
)

// IsValid checks if the decision is accepted or declined.
func (d MatchDecision) IsValid() bool {
	return d == DecisionAccepted || d == DecisionDeclined
}

// Status returns the match status the decision leads to.
func (d MatchDecision) Status() MatchStatus {
	return MatchStatus(d)
}

// Match pairs one mentor profile with one mentee profile.
type Match struct {
	ID              uuid.UUID
	MentorID        uuid.UUID // MentorProfile ID, immutable.
	MenteeID        uuid.UUID // MenteeProfile ID, immutable.
	MentorUserID    uuid.UUID // Owning user of the mentor profile, resolved by join.
	MenteeUserID    uuid.UUID // Owning user of the mentee profile, resolved by join.
	Status          MatchStatus
	MatchScore      int // Score captured at request time.
	RequestMessage  string
	ResponseMessage string
	MatchedAt       *time.Time // Set on transition to accepted.
	CompletedAt     *time.Time // Set on transition to completed.
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Mentor *MentorProfile // Joined for display, may be nil.
	Mentee *MenteeProfile // Joined for display, may be nil.
}

// IsParty reports whether userID owns either side of the match.
func (m *Match) IsParty(userID uuid.UUID) bool {
	return userID != uuid.Nil && (userID == m.MentorUserID || userID == m.MenteeUserID)
}

// OtherParty returns the user on the opposite side from userID.
// The boolean is false when userID is not a party.
func (m *Match) OtherParty(userID uuid.UUID) (uuid.UUID, bool) {
	switch userID {
	case uuid.Nil:
		return uuid.Nil, false
	case m.MentorUserID:
		return m.MenteeUserID, true
	case m.MenteeUserID:
		return m.MentorUserID, true
	default:
		return uuid.Nil, false
	}
}
