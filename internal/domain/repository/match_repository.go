package repository

import (
	"context"
	"errors"
	"time"

	"mentorship/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for match persistence.
var (
	// ErrMatchNotFound is returned when a match is not found.
	ErrMatchNotFound = errors.New("match not found")
	// ErrDuplicateOpenMatch is returned when the pair already has a pending, accepted or active match.
	ErrDuplicateOpenMatch = errors.New("open match already exists for pair")
	// ErrMatchStatusConflict is returned when a conditional transition finds the match in another status.
	ErrMatchStatusConflict = errors.New("match status changed concurrently")
)

// MatchTransition describes a conditional status change.
type MatchTransition struct {
	From            []entity.MatchStatus // The update only applies while the row is in one of these.
	To              entity.MatchStatus
	ResponseMessage *string
	MatchedAt       *time.Time
	CompletedAt     *time.Time
}

// MatchRepository defines persistence operations for matches.
type MatchRepository interface {
	// Create persists a new match. Returns ErrDuplicateOpenMatch when the pair already has an open match.
	Create(ctx context.Context, match *entity.Match) error

	// FindByID retrieves a match with both parties and their owning user IDs resolved.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Match, error)

	// FindByIDForUpdate is FindByID that also row-locks the match until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Match, error)

	// ExistsOpenBetween reports whether the pair has a pending, accepted or active match.
	ExistsOpenBetween(ctx context.Context, mentorID, menteeID uuid.UUID) (bool, error)

	// ListByParticipant retrieves matches where either profile ID participates, newest first.
	// A nil ID is ignored.
	ListByParticipant(ctx context.Context, mentorID, menteeID *uuid.UUID) ([]*entity.Match, error)

	// Transition applies t when the row is still in one of t.From, otherwise ErrMatchStatusConflict.
	Transition(ctx context.Context, id uuid.UUID, t *MatchTransition) error
}
