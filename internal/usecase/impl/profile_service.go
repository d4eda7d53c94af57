// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"mentorship/config"
	deliverycontext "mentorship/internal/delivery/context"
	"mentorship/internal/domain/entity"
	domainerrors "mentorship/internal/domain/errors"
	"mentorship/internal/domain/repository"
	"mentorship/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager         repository.TransactionManager
	defaultMaxMentees int
	logger            *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	defaultMaxMentees := entity.DefaultMaxMentees
	if params.Config != nil && params.Config.Matching != nil && params.Config.Matching.DefaultMaxMentees > 0 {
		defaultMaxMentees = params.Config.Matching.DefaultMaxMentees
	}

	return &profileService{
		txManager:         params.TxManager,
		defaultMaxMentees: defaultMaxMentees,
		logger:            params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the user and whichever capability records the input carries in one transaction.
func (srv *profileService) Register(ctx context.Context, userID uuid.UUID, input *usecase.RegisterInput) (*entity.User, error) {
	if input == nil || strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Name) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "email and name are required")
	}

	user := &entity.User{
		ID:    userID,
		Email: strings.TrimSpace(input.Email),
		Name:  strings.TrimSpace(input.Name),
	}

	if input.Mentor != nil {
		mentor, err := srv.newMentorProfile(userID, input.Mentor)
		if err != nil {
			return nil, err
		}
		user.MentorProfile = mentor
	}
	if input.Mentee != nil {
		user.MenteeProfile = newMenteeProfile(userID, input.Mentee)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateUser) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "user is already registered")
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.log(ctx).InfoContext(ctx, "User registered",
		slog.String("user_id", user.ID.String()),
		slog.Bool("is_mentor", user.IsMentor()),
		slog.Bool("is_mentee", user.IsMentee()),
	)

	return user, nil
}

// GetProfile retrieves the user with both capability records.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.log(ctx).DebugContext(ctx, "Getting user profile", slog.String("user_id", userID.String()))

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundUser, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = foundUser

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return user, nil
}

// BecomeMentor attaches a mentor capability record to an existing user.
func (srv *profileService) BecomeMentor(ctx context.Context, userID uuid.UUID, input *usecase.MentorProfileInput) (*entity.MentorProfile, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "mentor profile is required")
	}

	profile, err := srv.newMentorProfile(userID, input)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		if user.IsMentor() {
			return errors.Wrap(domainerrors.ErrProfileAlreadyExists, "user already has a mentor profile")
		}

		if err := repoFactory.MentorRepo().Create(ctx, profile); err != nil {
			if errors.Is(err, repository.ErrDuplicateProfile) {
				return errors.Wrap(domainerrors.ErrProfileAlreadyExists, "user already has a mentor profile")
			}

			return errors.Wrap(err, "failed to create mentor profile")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to become mentor")
	}

	srv.log(ctx).InfoContext(ctx, "Mentor profile created", slog.String("user_id", userID.String()))

	return profile, nil
}

// BecomeMentee attaches a mentee capability record to an existing user.
func (srv *profileService) BecomeMentee(ctx context.Context, userID uuid.UUID, input *usecase.MenteeProfileInput) (*entity.MenteeProfile, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "mentee profile is required")
	}

	profile := newMenteeProfile(userID, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		if user.IsMentee() {
			return errors.Wrap(domainerrors.ErrProfileAlreadyExists, "user already has a mentee profile")
		}

		if err := repoFactory.MenteeRepo().Create(ctx, profile); err != nil {
			if errors.Is(err, repository.ErrDuplicateProfile) {
				return errors.Wrap(domainerrors.ErrProfileAlreadyExists, "user already has a mentee profile")
			}

			return errors.Wrap(err, "failed to create mentee profile")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to become mentee")
	}

	srv.log(ctx).InfoContext(ctx, "Mentee profile created", slog.String("user_id", userID.String()))

	return profile, nil
}

// UpdateMentorProfile applies a partial update. The mentee counter is never changed here.
func (srv *profileService) UpdateMentorProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateMentorProfileInput) (*entity.MentorProfile, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "update input is required")
	}
	if input.YearsOfExperience != nil && *input.YearsOfExperience < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "years of experience cannot be negative")
	}
	if input.MaxMentees != nil && *input.MaxMentees <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "max mentees must be positive")
	}

	var profile *entity.MentorProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mentorRepo := repoFactory.MentorRepo()

		found, err := mentorRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "mentor profile not found")
			}

			return errors.Wrap(err, "failed to find mentor profile")
		}

		if input.MaxMentees != nil && *input.MaxMentees < found.CurrentMenteeCount {
			return errors.Wrapf(domainerrors.ErrValidationFailed,
				"max mentees cannot drop below the %d current mentees", found.CurrentMenteeCount)
		}

		applyMentorUpdate(found, input)

		if err := mentorRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update mentor profile")
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update mentor profile")
	}

	return profile, nil
}

// UpdateMenteeProfile applies a partial update to the caller's mentee profile.
func (srv *profileService) UpdateMenteeProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateMenteeProfileInput) (*entity.MenteeProfile, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "update input is required")
	}

	var profile *entity.MenteeProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		menteeRepo := repoFactory.MenteeRepo()

		found, err := menteeRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "mentee profile not found")
			}

			return errors.Wrap(err, "failed to find mentee profile")
		}

		applyMenteeUpdate(found, input)

		if err := menteeRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update mentee profile")
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update mentee profile")
	}

	return profile, nil
}

// HasPreferences reports which capability records the user holds and whether they are filled in.
func (srv *profileService) HasPreferences(ctx context.Context, userID uuid.UUID) (*usecase.PreferenceStatus, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := &usecase.PreferenceStatus{
		IsMentor: user.IsMentor(),
		IsMentee: user.IsMentee(),
	}
	if status.IsMentor {
		status.MentorComplete = user.MentorProfile.HasPreferences()
	}
	if status.IsMentee {
		status.MenteeComplete = user.MenteeProfile.HasPreferences()
	}

	return status, nil
}

func (srv *profileService) newMentorProfile(userID uuid.UUID, input *usecase.MentorProfileInput) (*entity.MentorProfile, error) {
	if input.YearsOfExperience < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "years of experience cannot be negative")
	}
	if input.MaxMentees < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "max mentees must be positive")
	}

	maxMentees := input.MaxMentees
	if maxMentees == 0 {
		maxMentees = srv.defaultMaxMentees
	}

	return &entity.MentorProfile{
		UserID:                 userID,
		YearsOfExperience:      input.YearsOfExperience,
		AreasOfStrength:        input.AreasOfStrength,
		AreasOfExpertise:       input.AreasOfExpertise,
		Bio:                    input.Bio,
		Industry:               input.Industry,
		CurrentRole:            input.CurrentRole,
		Company:                input.Company,
		MentoringExperience:    input.MentoringExperience,
		Availability:           input.Availability,
		PreferredMeetingFormat: input.PreferredMeetingFormat,
		LanguagePreferences:    input.LanguagePreferences,
		Timezone:               input.Timezone,
		MaxMentees:             maxMentees,
		IsActive:               true,
	}, nil
}

func newMenteeProfile(userID uuid.UUID, input *usecase.MenteeProfileInput) *entity.MenteeProfile {
	return &entity.MenteeProfile{
		UserID:           userID,
		CareerStage:      input.CareerStage,
		Skills:           input.Skills,
		LearningGoals:    input.LearningGoals,
		Interests:        input.Interests,
		TimeAvailability: input.TimeAvailability,
		Bio:              input.Bio,
		IsActive:         true,
	}
}

func applyMentorUpdate(profile *entity.MentorProfile, input *usecase.UpdateMentorProfileInput) {
	setIfPresent(&profile.YearsOfExperience, input.YearsOfExperience)
	setIfPresent(&profile.AreasOfStrength, input.AreasOfStrength)
	setIfPresent(&profile.AreasOfExpertise, input.AreasOfExpertise)
	setIfPresent(&profile.Bio, input.Bio)
	setIfPresent(&profile.Industry, input.Industry)
	setIfPresent(&profile.CurrentRole, input.CurrentRole)
	setIfPresent(&profile.Company, input.Company)
	setIfPresent(&profile.MentoringExperience, input.MentoringExperience)
	setIfPresent(&profile.Availability, input.Availability)
	setIfPresent(&profile.PreferredMeetingFormat, input.PreferredMeetingFormat)
	setIfPresent(&profile.LanguagePreferences, input.LanguagePreferences)
	setIfPresent(&profile.Timezone, input.Timezone)
	setIfPresent(&profile.MaxMentees, input.MaxMentees)
	setIfPresent(&profile.IsActive, input.IsActive)
}

func applyMenteeUpdate(profile *entity.MenteeProfile, input *usecase.UpdateMenteeProfileInput) {
	setIfPresent(&profile.CareerStage, input.CareerStage)
	setIfPresent(&profile.Skills, input.Skills)
	setIfPresent(&profile.LearningGoals, input.LearningGoals)
	setIfPresent(&profile.Interests, input.Interests)
	setIfPresent(&profile.TimeAvailability, input.TimeAvailability)
	setIfPresent(&profile.Bio, input.Bio)
	setIfPresent(&profile.IsActive, input.IsActive)
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
