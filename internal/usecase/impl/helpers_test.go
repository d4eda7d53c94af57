package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mentorship/config"
	"mentorship/internal/domain/entity"
	"mentorship/internal/domain/repository"
	mockRepo "mentorship/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Matching: &config.MatchingConfig{DefaultMaxMentees: 3, ListLimit: 50},
		Chat:     &config.ChatConfig{MaxBodyLength: 20, StreamBuffer: 4},
	}
}

// expectTx registers one Execute call that runs the callback against a fresh factory.
// The callback's error is returned unchanged, as the real transaction manager does.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

func newTestMentor(userID uuid.UUID) *entity.MentorProfile {
	return &entity.MentorProfile{
		ID:                  uuid.New(),
		UserID:              userID,
		YearsOfExperience:   6,
		AreasOfStrength:     []string{"go", "distributed systems"},
		Bio:                 "Backend engineer who enjoys helping people grow their careers.",
		MentoringExperience: "experienced mentor",
		MaxMentees:          3,
		IsActive:            true,
	}
}

func newTestMentee(userID uuid.UUID) *entity.MenteeProfile {
	return &entity.MenteeProfile{
		ID:            uuid.New(),
		UserID:        userID,
		CareerStage:   "junior",
		Skills:        []string{"go"},
		LearningGoals: []string{"system design"},
		IsActive:      true,
	}
}

func newTestMatch(mentor *entity.MentorProfile, mentee *entity.MenteeProfile, status entity.MatchStatus) *entity.Match {
	return &entity.Match{
		ID:             uuid.New(),
		MentorID:       mentor.ID,
		MenteeID:       mentee.ID,
		MentorUserID:   mentor.UserID,
		MenteeUserID:   mentee.UserID,
		Status:         status,
		MatchScore:     90,
		RequestMessage: "Could you mentor me?",
		Mentor:         mentor,
		Mentee:         mentee,
	}
}
