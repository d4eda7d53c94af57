package impl

import (
	"context"
	"testing"

	"mentorship/internal/domain/entity"
	domainerrors "mentorship/internal/domain/errors"
	"mentorship/internal/domain/repository"
	mockRepo "mentorship/internal/mocks/repository"
	"mentorship/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:   srv,
		txManager: txManager,
	}
}

func TestProfileService_Register_WithMentorProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RegisterInput{
		Email:  " ada@example.com ",
		Name:   "Ada",
		Mentor: &usecase.MentorProfileInput{YearsOfExperience: 8, AreasOfStrength: []string{"go"}},
	}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.ID == userID && u.Email == "ada@example.com" && u.IsMentor() && !u.IsMentee()
			})).
			Return(nil)
	})

	user, err := fx.service.Register(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, 3, user.MentorProfile.MaxMentees, "default capacity applies")
	assert.Equal(t, 0, user.MentorProfile.CurrentMenteeCount)
	assert.True(t, user.MentorProfile.IsActive)
}

func TestProfileService_Register_Duplicate(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateUser)
	})

	_, err := fx.service.Register(ctx, userID, &usecase.RegisterInput{Email: "a@b.c", Name: "A"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestProfileService_Register_Validation(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	_, err := fx.service.Register(ctx, uuid.New(), &usecase.RegisterInput{Email: "", Name: "A"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.Register(ctx, uuid.New(), &usecase.RegisterInput{
		Email:  "a@b.c",
		Name:   "A",
		Mentor: &usecase.MentorProfileInput{YearsOfExperience: -1},
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	user, err := fx.service.GetProfile(ctx, userID)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_BecomeMentor_AlreadyMentor(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, MentorProfile: newTestMentor(userID)}, nil)
	})

	_, err := fx.service.BecomeMentor(ctx, userID, &usecase.MentorProfileInput{})

	assert.True(t, errors.Is(err, domainerrors.ErrProfileAlreadyExists))
}

func TestProfileService_BecomeMentee_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		menteeRepo := mockRepo.NewMockMenteeRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().MenteeRepo().Return(menteeRepo)
		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, MentorProfile: newTestMentor(userID)}, nil)
		menteeRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(p *entity.MenteeProfile) bool { return p.UserID == userID && p.IsActive })).
			Return(nil)
	})

	profile, err := fx.service.BecomeMentee(ctx, userID, &usecase.MenteeProfileInput{CareerStage: "student"})

	require.NoError(t, err)
	assert.Equal(t, "student", profile.CareerStage)
}

func TestProfileService_UpdateMentorProfile_PartialUpdate(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := newTestMentor(userID)
	existing.CurrentMenteeCount = 2
	bio := "Updated bio"
	maxMentees := 5

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		mentorRepo := mockRepo.NewMockMentorRepository(t)
		factory.EXPECT().MentorRepo().Return(mentorRepo)
		mentorRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)
		mentorRepo.EXPECT().Update(ctx, existing).Return(nil)
	})

	profile, err := fx.service.UpdateMentorProfile(ctx, userID, &usecase.UpdateMentorProfileInput{
		Bio:        &bio,
		MaxMentees: &maxMentees,
	})

	require.NoError(t, err)
	assert.Equal(t, "Updated bio", profile.Bio)
	assert.Equal(t, 5, profile.MaxMentees)
	assert.Equal(t, 6, profile.YearsOfExperience, "untouched fields are kept")
	assert.Equal(t, 2, profile.CurrentMenteeCount)
}

func TestProfileService_UpdateMentorProfile_CapacityBelowCurrent(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := newTestMentor(userID)
	existing.CurrentMenteeCount = 2
	maxMentees := 1

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		mentorRepo := mockRepo.NewMockMentorRepository(t)
		factory.EXPECT().MentorRepo().Return(mentorRepo)
		mentorRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)
	})

	_, err := fx.service.UpdateMentorProfile(ctx, userID, &usecase.UpdateMentorProfileInput{MaxMentees: &maxMentees})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, 3, existing.MaxMentees)
}

func TestProfileService_UpdateMenteeProfile_NoProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		menteeRepo := mockRepo.NewMockMenteeRepository(t)
		factory.EXPECT().MenteeRepo().Return(menteeRepo)
		menteeRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	})

	_, err := fx.service.UpdateMenteeProfile(ctx, userID, &usecase.UpdateMenteeProfileInput{})

	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_HasPreferences(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	mentee := newTestMentee(userID)
	mentee.LearningGoals = nil

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{
			ID:            userID,
			MentorProfile: newTestMentor(userID),
			MenteeProfile: mentee,
		}, nil)
	})

	status, err := fx.service.HasPreferences(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, &usecase.PreferenceStatus{
		IsMentor:       true,
		IsMentee:       true,
		MentorComplete: true,
		MenteeComplete: false,
	}, status)
}
