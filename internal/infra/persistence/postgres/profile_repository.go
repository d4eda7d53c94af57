package postgres

import (
	"context"

	"mentorship/internal/domain/entity"
	domainerrors "mentorship/internal/domain/errors"
	"mentorship/internal/domain/repository"
	"mentorship/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// mentorRepository implements the repository.MentorRepository interface.
type mentorRepository struct {
	db *gorm.DB
}

// NewMentorRepository is the constructor for mentorRepository.
func NewMentorRepository(db *gorm.DB) repository.MentorRepository {
	return &mentorRepository{
		db: db,
	}
}

// FindByID retrieves a mentor profile by its own ID.
func (repo *mentorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MentorProfile, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByUserID retrieves the mentor profile owned by a user.
func (repo *mentorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.MentorProfile, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

func (repo *mentorRepository) findOne(ctx context.Context, query string, arg uuid.UUID) (*entity.MentorProfile, error) {
	var profileM model.MentorProfileModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("User").
		Where(query, arg).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find mentor profile")
	}

	return toMentorDomain(&profileM), nil
}

// ListActive retrieves active mentor profiles not owned by excludeUserID, with their users loaded.
func (repo *mentorRepository) ListActive(ctx context.Context, excludeUserID uuid.UUID, limit int) ([]*entity.MentorProfile, error) {
	var profileModels []*model.MentorProfileModel

	query := repo.db.WithContext(ctx).
		Preload("User").
		Where("is_active = ? AND user_id <> ?", true, excludeUserID).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active mentors")
	}

	profiles := make([]*entity.MentorProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toMentorDomain(profileM))
	}

	return profiles, nil
}

// Create persists a new mentor profile.
func (repo *mentorRepository) Create(ctx context.Context, profile *entity.MentorProfile) error {
	profileM := fromMentorDomain(profile)

	if err := repo.db.WithContext(ctx).Omit("User").Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProfile
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("mentor capacity out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create mentor profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update persists descriptive fields. The mentee counter is never written here.
func (repo *mentorRepository) Update(ctx context.Context, profile *entity.MentorProfile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MentorProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"years_of_experience":      profile.YearsOfExperience,
			"areas_of_strength":        jsonSlice(profile.AreasOfStrength),
			"areas_of_expertise":       jsonSlice(profile.AreasOfExpertise),
			"bio":                      profile.Bio,
			"industry":                 profile.Industry,
			"current_role":             profile.CurrentRole,
			"company":                  profile.Company,
			"mentoring_experience":     profile.MentoringExperience,
			"availability":             profile.Availability,
			"preferred_meeting_format": profile.PreferredMeetingFormat,
			"language_preferences":     jsonSlice(profile.LanguagePreferences),
			"timezone":                 profile.Timezone,
			"max_mentees":              profile.MaxMentees,
			"is_active":                profile.IsActive,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("maxMentees below current mentee count")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update mentor profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// IncrementMenteeCount atomically adds one to the counter unless it already equals maxMentees.
func (repo *mentorRepository) IncrementMenteeCount(ctx context.Context, mentorID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MentorProfileModel{}).
		Where("id = ? AND current_mentee_count < max_mentees", mentorID).
		Update("current_mentee_count", gorm.Expr("current_mentee_count + 1"))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment mentee count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCapacityExceeded
	}

	return nil
}

// DecrementMenteeCount atomically subtracts one from the counter, never going below zero.
func (repo *mentorRepository) DecrementMenteeCount(ctx context.Context, mentorID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MentorProfileModel{}).
		Where("id = ?", mentorID).
		Update("current_mentee_count", gorm.Expr("GREATEST(current_mentee_count - 1, 0)"))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement mentee count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// menteeRepository implements the repository.MenteeRepository interface.
type menteeRepository struct {
	db *gorm.DB
}

// NewMenteeRepository is the constructor for menteeRepository.
func NewMenteeRepository(db *gorm.DB) repository.MenteeRepository {
	return &menteeRepository{
		db: db,
	}
}

// FindByUserID retrieves the mentee profile owned by a user.
func (repo *menteeRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.MenteeProfile, error) {
	var profileM model.MenteeProfileModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("User").
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find mentee profile")
	}

	return toMenteeDomain(&profileM), nil
}

// Create persists a new mentee profile.
func (repo *menteeRepository) Create(ctx context.Context, profile *entity.MenteeProfile) error {
	profileM := fromMenteeDomain(profile)

	if err := repo.db.WithContext(ctx).Omit("User").Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProfile
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create mentee profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update persists descriptive fields of a mentee profile.
func (repo *menteeRepository) Update(ctx context.Context, profile *entity.MenteeProfile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MenteeProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"career_stage":      profile.CareerStage,
			"skills":            jsonSlice(profile.Skills),
			"learning_goals":    jsonSlice(profile.LearningGoals),
			"interests":         jsonSlice(profile.Interests),
			"time_availability": profile.TimeAvailability,
			"bio":               profile.Bio,
			"is_active":         profile.IsActive,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update mentee profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toMentorDomain(data *model.MentorProfileModel) *entity.MentorProfile {
	if data == nil {
		return nil
	}

	return &entity.MentorProfile{
		ID:                     data.ID,
		UserID:                 data.UserID,
		User:                   toUserSummary(data.User),
		YearsOfExperience:      data.YearsOfExperience,
		AreasOfStrength:        []string(data.AreasOfStrength),
		AreasOfExpertise:       []string(data.AreasOfExpertise),
		Bio:                    data.Bio,
		Industry:               data.Industry,
		CurrentRole:            data.CurrentRole,
		Company:                data.Company,
		MentoringExperience:    data.MentoringExperience,
		Availability:           data.Availability,
		PreferredMeetingFormat: data.PreferredMeetingFormat,
		LanguagePreferences:    []string(data.LanguagePreferences),
		Timezone:               data.Timezone,
		MaxMentees:             data.MaxMentees,
		CurrentMenteeCount:     data.CurrentMenteeCount,
		IsActive:               data.IsActive,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

func fromMentorDomain(data *entity.MentorProfile) *model.MentorProfileModel {
	if data == nil {
		return nil
	}

	return &model.MentorProfileModel{
		ID:                     data.ID,
		UserID:                 data.UserID,
		YearsOfExperience:      data.YearsOfExperience,
		AreasOfStrength:        jsonSlice(data.AreasOfStrength),
		AreasOfExpertise:       jsonSlice(data.AreasOfExpertise),
		Bio:                    data.Bio,
		Industry:               data.Industry,
		CurrentRole:            data.CurrentRole,
		Company:                data.Company,
		MentoringExperience:    data.MentoringExperience,
		Availability:           data.Availability,
		PreferredMeetingFormat: data.PreferredMeetingFormat,
		LanguagePreferences:    jsonSlice(data.LanguagePreferences),
		Timezone:               data.Timezone,
		MaxMentees:             data.MaxMentees,
		CurrentMenteeCount:     data.CurrentMenteeCount,
		IsActive:               data.IsActive,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

func toMenteeDomain(data *model.MenteeProfileModel) *entity.MenteeProfile {
	if data == nil {
		return nil
	}

	return &entity.MenteeProfile{
		ID:               data.ID,
		UserID:           data.UserID,
		User:             toUserSummary(data.User),
		CareerStage:      data.CareerStage,
		Skills:           []string(data.Skills),
		LearningGoals:    []string(data.LearningGoals),
		Interests:        []string(data.Interests),
		TimeAvailability: data.TimeAvailability,
		Bio:              data.Bio,
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromMenteeDomain(data *entity.MenteeProfile) *model.MenteeProfileModel {
	if data == nil {
		return nil
	}

	return &model.MenteeProfileModel{
		ID:               data.ID,
		UserID:           data.UserID,
		CareerStage:      data.CareerStage,
		Skills:           jsonSlice(data.Skills),
		LearningGoals:    jsonSlice(data.LearningGoals),
		Interests:        jsonSlice(data.Interests),
		TimeAvailability: data.TimeAvailability,
		Bio:              data.Bio,
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// jsonSlice keeps empty lists as '[]' rather than NULL.
func jsonSlice(values []string) datatypes.JSONSlice[string] {
	if values == nil {
		return datatypes.JSONSlice[string]{}
	}

	return datatypes.JSONSlice[string](values)
}
