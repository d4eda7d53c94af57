package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"mentorship/internal/errors"
	"mentorship/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// extensionStatements run before AutoMigrate; the models default their ids to uuid_generate_v7().
var extensionStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS pg_uuidv7`,
}

// schemaStatements run after AutoMigrate. Each statement is idempotent.
var schemaStatements = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS ` + uniqOpenMatchPair + ` ON mentor_matches (mentor_id, mentee_id)
		WHERE status IN ('pending', 'accepted', 'active')`,
	`ALTER TABLE mentor_profiles DROP CONSTRAINT IF EXISTS chk_mentor_profiles_count`,
	`ALTER TABLE mentor_profiles ADD CONSTRAINT chk_mentor_profiles_count
		CHECK (max_mentees > 0 AND current_mentee_count >= 0 AND current_mentee_count <= max_mentees)`,
	`ALTER TABLE mentor_profiles DROP CONSTRAINT IF EXISTS chk_mentor_profiles_years`,
	`ALTER TABLE mentor_profiles ADD CONSTRAINT chk_mentor_profiles_years CHECK (years_of_experience >= 0)`,
	`ALTER TABLE mentor_matches DROP CONSTRAINT IF EXISTS chk_mentor_matches_status`,
	`ALTER TABLE mentor_matches ADD CONSTRAINT chk_mentor_matches_status
		CHECK (status IN ('pending', 'accepted', 'declined', 'active', 'completed'))`,
	`ALTER TABLE mentor_matches DROP CONSTRAINT IF EXISTS chk_mentor_matches_score`,
	`ALTER TABLE mentor_matches ADD CONSTRAINT chk_mentor_matches_score CHECK (match_score BETWEEN 0 AND 100)`,
	`ALTER TABLE chat_messages DROP CONSTRAINT IF EXISTS chk_chat_messages_type`,
	`ALTER TABLE chat_messages ADD CONSTRAINT chk_chat_messages_type CHECK (message_type IN ('text', 'code', 'file'))`,
	`ALTER TABLE user_devices DROP CONSTRAINT IF EXISTS chk_user_devices_platform`,
	`ALTER TABLE user_devices ADD CONSTRAINT chk_user_devices_platform CHECK (platform IN ('ios', 'android', 'web'))`,
}

// Models returns every persisted model in dependency order.
func Models() []any {
	return []any{
		&model.UserModel{},
		&model.MentorProfileModel{},
		&model.MenteeProfileModel{},
		&model.MentorMatchModel{},
		&model.ChatMessageModel{},
		&model.UserDeviceModel{},
	}
}

// Migrate creates or updates the schema, then applies the partial unique index and check constraints.
func Migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	tx := db.WithContext(ctx)

	for _, stmt := range extensionStatements {
		if err := tx.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "failed to create extension: %s", stmt)
		}
	}

	if err := tx.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate models")
	}

	for _, stmt := range schemaStatements {
		if err := tx.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "failed to apply schema statement: %s", stmt)
		}
	}

	logger.InfoContext(ctx, "Schema migrated", slog.Int("models", len(Models())), slog.Int("statements", len(schemaStatements)))

	return nil
}

// PrintPlan logs what Migrate would apply.
func PrintPlan(logger *slog.Logger) {
	for _, stmt := range extensionStatements {
		logger.Info("Extension statement", slog.String("sql", stmt))
	}

	for _, m := range Models() {
		logger.Info("AutoMigrate model", slog.String("model", fmt.Sprintf("%T", m)))
	}

	for _, stmt := range schemaStatements {
		logger.Info("Schema statement", slog.String("sql", strings.Join(strings.Fields(stmt), " ")))
	}
}
