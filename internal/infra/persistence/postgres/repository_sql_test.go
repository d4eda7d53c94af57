package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"mentorship/internal/domain/entity"
	"mentorship/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// statementRecorder keeps the rendered SQL of every statement gorm builds.
type statementRecorder struct {
	statements []string
}

func (r *statementRecorder) LogMode(logger.LogLevel) logger.Interface { return r }

func (r *statementRecorder) Info(context.Context, string, ...any) {}

func (r *statementRecorder) Warn(context.Context, string, ...any) {}

func (r *statementRecorder) Error(context.Context, string, ...any) {}

func (r *statementRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.statements = append(r.statements, sql)
}

func (r *statementRecorder) last(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, r.statements, "no statement was built")

	return r.statements[len(r.statements)-1]
}

// newDryRunDB builds statements for the postgres dialect without executing them.
// Every write therefore reports zero affected rows.
func newDryRunDB(t *testing.T) (*gorm.DB, *statementRecorder) {
	t.Helper()

	recorder := &statementRecorder{}
	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=localhost user=mentorship dbname=mentorship sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 recorder,
	})
	require.NoError(t, err)

	return db, recorder
}

// failCreates makes every INSERT fail with err before it reaches the connection.
func failCreates(t *testing.T, db *gorm.DB, err error) {
	t.Helper()

	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail_create", func(tx *gorm.DB) {
		_ = tx.AddError(err)
	}))
}

func TestMatchRepository_ListByParticipant_GroupsParticipantFilter(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewMatchRepository(db)

	mentorID := uuid.New()
	menteeID := uuid.New()

	_, err := repo.ListByParticipant(context.Background(), &mentorID, &menteeID)
	require.NoError(t, err)

	sql := recorder.last(t)
	assert.Contains(t, sql, `FROM "mentor_matches"`)
	assert.Contains(t, sql, "WHERE (mentor_id = '"+mentorID.String()+"' OR mentee_id = '"+menteeID.String()+"')")
	assert.Regexp(t, `ORDER BY created_at DESC,\s*id DESC`, sql)
}

func TestMatchRepository_ListByParticipant_SingleProfile(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewMatchRepository(db)

	menteeID := uuid.New()

	_, err := repo.ListByParticipant(context.Background(), nil, &menteeID)
	require.NoError(t, err)

	sql := recorder.last(t)
	assert.Contains(t, sql, "mentee_id = '"+menteeID.String()+"'")
	assert.NotContains(t, sql, "mentor_id =")
}

func TestMatchRepository_ListByParticipant_NoProfilesSkipsQuery(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewMatchRepository(db)

	matches, err := repo.ListByParticipant(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.Empty(t, recorder.statements)
}

func TestMatchRepository_FindByIDForUpdate_LocksRow(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewMatchRepository(db)

	_, _ = repo.FindByIDForUpdate(context.Background(), uuid.New())

	assert.True(t, strings.HasSuffix(strings.TrimSpace(recorder.statements[0]), "FOR UPDATE"), recorder.statements[0])
}

func TestMatchRepository_Transition_IsConditionalOnStatus(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewMatchRepository(db)

	err := repo.Transition(context.Background(), uuid.New(), &repository.MatchTransition{
		From: []entity.MatchStatus{entity.MatchStatusAccepted, entity.MatchStatusActive},
		To:   entity.MatchStatusCompleted,
	})

	// Nothing is executed, so the guard sees no matching row.
	assert.ErrorIs(t, err, repository.ErrMatchStatusConflict)
	sql := recorder.last(t)
	assert.Contains(t, sql, `UPDATE "mentor_matches"`)
	assert.Contains(t, sql, "status IN ('accepted','active')")
}

func TestMatchRepository_Create_MapsConstraintViolations(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"open pair index", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: uniqOpenMatchPair}, repository.ErrDuplicateOpenMatch},
		{"missing profile", &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "fk_mentor_matches_mentor"}, repository.ErrProfileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _ := newDryRunDB(t)
			failCreates(t, db, tt.err)
			repo := NewMatchRepository(db)

			err := repo.Create(context.Background(), &entity.Match{
				MentorID:       uuid.New(),
				MenteeID:       uuid.New(),
				Status:         entity.MatchStatusPending,
				RequestMessage: "Please mentor me",
			})

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMentorRepository_IncrementMenteeCount_IsGuarded(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewMentorRepository(db)

	err := repo.IncrementMenteeCount(context.Background(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrCapacityExceeded)
	sql := recorder.last(t)
	assert.Contains(t, sql, "current_mentee_count + 1")
	assert.Contains(t, sql, "AND current_mentee_count < max_mentees")
}

func TestMentorRepository_DecrementMenteeCount_FloorsAtZero(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewMentorRepository(db)

	_ = repo.DecrementMenteeCount(context.Background(), uuid.New())

	assert.Contains(t, recorder.last(t), "GREATEST(current_mentee_count - 1, 0)")
}

func TestMessageRepository_ListByMatch_OrdersByCreatedAtThenID(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewMessageRepository(db)

	matchID := uuid.New()

	_, err := repo.ListByMatch(context.Background(), matchID)
	require.NoError(t, err)

	sql := recorder.last(t)
	assert.Contains(t, sql, "match_id = '"+matchID.String()+"'")
	assert.Regexp(t, `ORDER BY created_at ASC,\s*id ASC$`, strings.TrimSpace(sql))
}

func TestMessageRepository_Create_UnknownMatch(t *testing.T) {
	db, _ := newDryRunDB(t)
	failCreates(t, db, errors.WithStack(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "fk_chat_messages_match"}))
	repo := NewMessageRepository(db)

	err := repo.Create(context.Background(), &entity.ChatMessage{
		MatchID:     uuid.New(),
		SenderID:    uuid.New(),
		ReceiverID:  uuid.New(),
		Body:        "Hi!",
		MessageType: entity.MessageTypeText,
	})

	assert.ErrorIs(t, err, repository.ErrMatchNotFound)
}
