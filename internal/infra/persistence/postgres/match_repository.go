package postgres

import (
	"context"
	"time"

	"mentorship/internal/domain/entity"
	domainerrors "mentorship/internal/domain/errors"
	"mentorship/internal/domain/repository"
	"mentorship/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// matchRepository implements the repository.MatchRepository interface.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(db *gorm.DB) repository.MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// Create persists a new match. Returns ErrDuplicateOpenMatch when the pair already has an open match.
func (repo *matchRepository) Create(ctx context.Context, match *entity.Match) error {
	matchM := fromMatchDomain(match)

	if err := repo.db.WithContext(ctx).Omit("Mentor", "Mentee").Create(matchM).Error; err != nil {
		if isConstraintViolationOn(err, uniqOpenMatchPair) {
			return repository.ErrDuplicateOpenMatch
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create match")
	}

	match.ID = matchM.ID
	match.CreatedAt = matchM.CreatedAt
	match.UpdatedAt = matchM.UpdatedAt

	return nil
}

// FindByID retrieves a match with both parties and their owning user IDs resolved.
func (repo *matchRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Match, error) {
	return repo.findByID(ctx, id, false)
}

// FindByIDForUpdate is FindByID that also row-locks the match until the transaction ends.
func (repo *matchRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Match, error) {
	return repo.findByID(ctx, id, true)
}

func (repo *matchRepository) findByID(ctx context.Context, id uuid.UUID, lock bool) (*entity.Match, error) {
	var matchM model.MentorMatchModel

	query := repo.withParties(repo.db.WithContext(ctx).Clauses(dbresolver.Write))
	if lock {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if err := query.Where("id = ?", id).First(&matchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMatchNotFound
		}

		return nil, errors.Wrap(err, "failed to find match by ID")
	}

	return toMatchDomain(&matchM), nil
}

// ExistsOpenBetween reports whether the pair has a pending, accepted or active match.
func (repo *matchRepository) ExistsOpenBetween(ctx context.Context, mentorID, menteeID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.MentorMatchModel{}).
		Where("mentor_id = ? AND mentee_id = ? AND status IN ?", mentorID, menteeID, statusStrings(entity.OpenMatchStatuses)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check open match")
	}

	return count > 0, nil
}

// ListByParticipant retrieves matches where either profile ID participates, newest first.
func (repo *matchRepository) ListByParticipant(ctx context.Context, mentorID, menteeID *uuid.UUID) ([]*entity.Match, error) {
	if mentorID == nil && menteeID == nil {
		return []*entity.Match{}, nil
	}

	var matchModels []*model.MentorMatchModel

	db := repo.db.WithContext(ctx)
	cond := db
	switch {
	case mentorID != nil && menteeID != nil:
		cond = cond.Where("mentor_id = ?", *mentorID).Or("mentee_id = ?", *menteeID)
	case mentorID != nil:
		cond = cond.Where("mentor_id = ?", *mentorID)
	default:
		cond = cond.Where("mentee_id = ?", *menteeID)
	}

	if err := repo.withParties(db).
		Where(cond).
		Order("created_at DESC").
		Order("id DESC").
		Find(&matchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list matches")
	}

	matches := make([]*entity.Match, 0, len(matchModels))
	for _, matchM := range matchModels {
		matches = append(matches, toMatchDomain(matchM))
	}

	return matches, nil
}

// Transition applies t when the row is still in one of t.From, otherwise ErrMatchStatusConflict.
func (repo *matchRepository) Transition(ctx context.Context, id uuid.UUID, t *repository.MatchTransition) error {
	updates := map[string]any{
		"status":     t.To.String(),
		"updated_at": time.Now(),
	}
	if t.ResponseMessage != nil {
		updates["response_message"] = *t.ResponseMessage
	}
	if t.MatchedAt != nil {
		updates["matched_at"] = *t.MatchedAt
	}
	if t.CompletedAt != nil {
		updates["completed_at"] = *t.CompletedAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.MentorMatchModel{}).
		Where("id = ? AND status IN ?", id, statusStrings(t.From)).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update match status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMatchStatusConflict
	}

	return nil
}

func (repo *matchRepository) withParties(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Mentor").
		Preload("Mentor.User").
		Preload("Mentee").
		Preload("Mentee.User")
}

// --- Mapper Functions ---

func toMatchDomain(data *model.MentorMatchModel) *entity.Match {
	if data == nil {
		return nil
	}

	match := &entity.Match{
		ID:              data.ID,
		MentorID:        data.MentorID,
		MenteeID:        data.MenteeID,
		Status:          entity.MatchStatus(data.Status),
		MatchScore:      data.MatchScore,
		RequestMessage:  data.RequestMessage,
		ResponseMessage: data.ResponseMessage,
		MatchedAt:       data.MatchedAt,
		CompletedAt:     data.CompletedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		Mentor:          toMentorDomain(data.Mentor),
		Mentee:          toMenteeDomain(data.Mentee),
	}
	if data.Mentor != nil {
		match.MentorUserID = data.Mentor.UserID
	}
	if data.Mentee != nil {
		match.MenteeUserID = data.Mentee.UserID
	}

	return match
}

func fromMatchDomain(data *entity.Match) *model.MentorMatchModel {
	if data == nil {
		return nil
	}

	return &model.MentorMatchModel{
		ID:              data.ID,
		MentorID:        data.MentorID,
		MenteeID:        data.MenteeID,
		Status:          data.Status.String(),
		MatchScore:      data.MatchScore,
		RequestMessage:  data.RequestMessage,
		ResponseMessage: data.ResponseMessage,
		MatchedAt:       data.MatchedAt,
		CompletedAt:     data.CompletedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func statusStrings(statuses []entity.MatchStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, s.String())
	}

	return out
}
