package mysql

import (
	"context"
	"errors"
	"time"

	"Founder_Circle/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConversationRepository struct {
	DB *gorm.DB
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{DB: db}
}

// canonicalPair 参与者按字典序归一化，配合唯一索引保证一对用户一条会话
func canonicalPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

// GetOrCreate 取或建会话：入参顺序无关，结果稳定。
// 并发双建由唯一键 + DoNothing 兜底，冲突后重查。
func (r *ConversationRepository) GetOrCreate(ctx context.Context, userID1, userID2 string) (*model.Conversation, error) {
	p1, p2 := canonicalPair(userID1, userID2)

	var conv model.Conversation
	err := r.DB.WithContext(ctx).
		Where("participant1_id = ? AND participant2_id = ?", p1, p2).
		First(&conv).Error
	if err == nil {
		return &conv, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := model.Conversation{
		ID:             uuid.New().String(),
		Participant1ID: p1,
		Participant2ID: p2,
		LastMessageAt:  time.Now(),
	}
	res := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "participant1_id"}, {Name: "participant2_id"}},
		DoNothing: true,
	}).Create(&created)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 {
		return &created, nil
	}
	// 另一个请求先建好了
	err = r.DB.WithContext(ctx).
		Where("participant1_id = ? AND participant2_id = ?", p1, p2).
		First(&conv).Error
	return &conv, err
}

func (r *ConversationRepository) FindByID(ctx context.Context, id string) (*model.Conversation, error) {
	var conv model.Conversation
	err := r.DB.WithContext(ctx).First(&conv, "id = ?", id).Error
	return &conv, err
}

func (r *ConversationRepository) ListByUser(ctx context.Context, userID string) ([]model.Conversation, error) {
	var list []model.Conversation
	err := r.DB.WithContext(ctx).
		Where("participant1_id = ? OR participant2_id = ?", userID, userID).
		Order("last_message_at DESC").
		Find(&list).Error
	return list, err
}

func (r *ConversationRepository) IsParticipant(ctx context.Context, conversationID, userID string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Conversation{}).
		Where("id = ? AND (participant1_id = ? OR participant2_id = ?)", conversationID, userID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ConversationRepository) ListMessages(ctx context.Context, conversationID string) ([]model.Message, error) {
	var msgs []model.Message
	err := r.DB.WithContext(ctx).
		Preload("Sender").
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

func (r *ConversationRepository) LastMessage(ctx context.Context, conversationID string) (*model.Message, error) {
	var msg model.Message
	err := r.DB.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		First(&msg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// CountBySender 发送方在会话内的已有消息数，私信限流用
func (r *ConversationRepository) CountBySender(ctx context.Context, conversationID, senderID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Message{}).
		Where("conversation_id = ? AND sender_id = ?", conversationID, senderID).
		Count(&count).Error
	return count, err
}

// CreateMessage 落消息并推进会话的 last_message_at
func (r *ConversationRepository) CreateMessage(ctx context.Context, msg *model.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		return tx.Model(&model.Conversation{}).
			Where("id = ?", msg.ConversationID).
			Update("last_message_at", time.Now()).Error
	})
}
