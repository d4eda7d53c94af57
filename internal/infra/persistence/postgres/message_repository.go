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
	"gorm.io/plugin/dbresolver"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create persists a new chat message.
func (repo *messageRepository) Create(ctx context.Context, msg *entity.ChatMessage) error {
	msgM := fromMessageDomain(msg)

	if err := repo.db.WithContext(ctx).Omit("Match").Create(msgM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMatchNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chat message")
	}

	msg.ID = msgM.ID
	msg.CreatedAt = msgM.CreatedAt

	return nil
}

// ListByMatch retrieves every message of a match ordered by (created_at, id), oldest first.
func (repo *messageRepository) ListByMatch(ctx context.Context, matchID uuid.UUID) ([]*entity.ChatMessage, error) {
	var msgModels []*model.ChatMessageModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("match_id = ?", matchID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&msgModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list chat messages")
	}

	messages := make([]*entity.ChatMessage, 0, len(msgModels))
	for _, msgM := range msgModels {
		messages = append(messages, toMessageDomain(msgM))
	}

	return messages, nil
}

// MarkRead stamps readAt on every unread message of the match addressed to receiverID.
func (repo *messageRepository) MarkRead(ctx context.Context, matchID, receiverID uuid.UUID, readAt time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ChatMessageModel{}).
		Where("match_id = ? AND receiver_id = ? AND is_read = ?", matchID, receiverID, false).
		Updates(map[string]any{
			"is_read": true,
			"read_at": readAt,
		})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark chat messages read")
	}

	return result.RowsAffected, nil
}

// CountUnread counts unread messages of the match addressed to receiverID.
func (repo *messageRepository) CountUnread(ctx context.Context, matchID, receiverID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ChatMessageModel{}).
		Where("match_id = ? AND receiver_id = ? AND is_read = ?", matchID, receiverID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread chat messages")
	}

	return count, nil
}

// --- Mapper Functions ---

func toMessageDomain(data *model.ChatMessageModel) *entity.ChatMessage {
	if data == nil {
		return nil
	}

	return &entity.ChatMessage{
		ID:          data.ID,
		MatchID:     data.MatchID,
		SenderID:    data.SenderID,
		ReceiverID:  data.ReceiverID,
		Body:        data.Body,
		MessageType: entity.MessageType(data.MessageType),
		IsRead:      data.IsRead,
		ReadAt:      data.ReadAt,
		CreatedAt:   data.CreatedAt,
	}
}

func fromMessageDomain(data *entity.ChatMessage) *model.ChatMessageModel {
	if data == nil {
		return nil
	}

	return &model.ChatMessageModel{
		ID:          data.ID,
		MatchID:     data.MatchID,
		SenderID:    data.SenderID,
		ReceiverID:  data.ReceiverID,
		Body:        data.Body,
		MessageType: string(data.MessageType),
		IsRead:      data.IsRead,
		ReadAt:      data.ReadAt,
		CreatedAt:   data.CreatedAt,
	}
}
