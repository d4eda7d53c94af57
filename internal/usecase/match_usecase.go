package usecase

import (
	"context"

	"mentorship/internal/domain/entity"

	"github.com/google/uuid"
)

// MentorListing is an available mentor with a display score computed at listing time.
type MentorListing struct {
	Mentor *entity.MentorProfile
	Score  int
}

// MatchUsecase defines the mentor/mentee match registry.
type MatchUsecase interface {
	// ListAvailableMentors returns active mentors owned by other users, each with a fresh score.
	ListAvailableMentors(ctx context.Context, requestingUserID uuid.UUID) ([]*MentorListing, error)

	// ListMatchesForUser returns every match the user takes part in through either profile, newest first.
	ListMatchesForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Match, error)

	// RequestMentorship creates a pending match from the caller's mentee profile to the mentor owned by mentorUserID.
	RequestMentorship(ctx context.Context, menteeUserID, mentorUserID uuid.UUID, message string) (*entity.Match, error)

	// RespondToRequest accepts or declines a pending match addressed to the caller's mentor profile.
	RespondToRequest(ctx context.Context, mentorUserID, matchID uuid.UUID, decision entity.MatchDecision, message string) (*entity.Match, error)

	// CompleteMentorship ends an accepted or active match and frees the mentor slot.
	CompleteMentorship(ctx context.Context, userID, matchID uuid.UUID) (*entity.Match, error)

	// GenerateMentorInviteQR renders a QR code mentees can scan to request the caller as mentor.
	GenerateMentorInviteQR(ctx context.Context, mentorUserID uuid.UUID) ([]byte, error)

	// RequestMentorshipViaQR resolves a scanned invite and requests that mentor.
	RequestMentorshipViaQR(ctx context.Context, menteeUserID uuid.UUID, qrData, message string) (*entity.Match, error)
}
