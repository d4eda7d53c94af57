package repository

import (
	"context"
	"errors"

	"mentorship/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when a mentor or mentee profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateProfile is returned when the user already holds a profile of that kind.
	ErrDuplicateProfile = errors.New("profile already exists")
	// ErrCapacityExceeded is returned when an increment would push a mentor past maxMentees.
	ErrCapacityExceeded = errors.New("mentor capacity exceeded")
)

// MentorRepository defines persistence operations for mentor capability records.
type MentorRepository interface {
	// FindByID retrieves a mentor profile by its own ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MentorProfile, error)

	// FindByUserID retrieves the mentor profile owned by a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.MentorProfile, error)

	// ListActive retrieves active mentor profiles not owned by excludeUserID, with their users loaded.
	ListActive(ctx context.Context, excludeUserID uuid.UUID, limit int) ([]*entity.MentorProfile, error)

	// Create persists a new mentor profile.
	Create(ctx context.Context, profile *entity.MentorProfile) error

	// Update persists descriptive fields. The mentee counter is never written here.
	Update(ctx context.Context, profile *entity.MentorProfile) error

	// IncrementMenteeCount atomically adds one to the counter unless it already equals maxMentees.
	IncrementMenteeCount(ctx context.Context, mentorID uuid.UUID) error

	// DecrementMenteeCount atomically subtracts one from the counter, never going below zero.
	DecrementMenteeCount(ctx context.Context, mentorID uuid.UUID) error
}

// MenteeRepository defines persistence operations for mentee capability records.
type MenteeRepository interface {
	// FindByUserID retrieves the mentee profile owned by a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.MenteeProfile, error)

	// Create persists a new mentee profile.
	Create(ctx context.Context, profile *entity.MenteeProfile) error

	// Update persists descriptive fields of a mentee profile.
	Update(ctx context.Context, profile *entity.MenteeProfile) error
}
