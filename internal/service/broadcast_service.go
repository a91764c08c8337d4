package service

import (
	"context"
	"strings"

	"Founder_Circle/internal/model"
	"Founder_Circle/internal/pkg"
	"Founder_Circle/internal/repository/mysql"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// broadcastThreshold 收信门槛：命中标签数
const broadcastThreshold = 3

type BroadcastService struct {
	repo   *mysql.BroadcastRepository
	tags   *mysql.TagRepository
	users  *mysql.UserRepository
	convs  *mysql.ConversationRepository
	outbox *mysql.OutboxRepository
}

func NewBroadcastService(db *gorm.DB) *BroadcastService {
	return &BroadcastService{
		repo:   mysql.NewBroadcastRepository(db),
		tags:   mysql.NewTagRepository(db),
		users:  mysql.NewUserRepository(db),
		convs:  mysql.NewConversationRepository(db),
		outbox: mysql.NewOutboxRepository(db),
	}
}

type BroadcastResult struct {
	RecipientCount int `json:"recipientCount"`
}

// Send 按标签 + 城市定向群发，逐个投递为私信。
// 城市为空时不匹配任何人；收信方需命中至少 3 个标签且城市一致，发送者本人除外。
// 群发消息不走会话限流。
func (s *BroadcastService) Send(ctx context.Context, senderID, content string, tagNames []string, city string) (*BroadcastResult, error) {
	if strings.TrimSpace(content) == "" || len(tagNames) == 0 {
		return nil, ErrInvalidInput
	}

	tagIDs, err := s.tags.ResolveNames(ctx, tagNames)
	if err != nil {
		return nil, err
	}
	if len(tagIDs) == 0 {
		return &BroadcastResult{RecipientCount: 0}, nil
	}

	b := &model.Broadcast{
		ID:       uuid.New().String(),
		SenderID: senderID,
		Content:  content,
		City:     strings.TrimSpace(city),
	}
	if err = s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	if err = s.tags.SetTags(ctx, model.EntityBroadcast, b.ID, tagIDs); err != nil {
		return nil, err
	}

	// 没给城市就没有收信人，广播记录照常落库
	if strings.TrimSpace(city) == "" {
		return &BroadcastResult{RecipientCount: 0}, nil
	}
	normalizedCity := strings.ToLower(strings.TrimSpace(city))

	holders, err := s.tags.UsersHoldingTags(ctx, tagIDs)
	if err != nil {
		return nil, err
	}

	recipients := make([]string, 0)
	for _, h := range holders {
		if h.UserID == senderID || h.Matches < broadcastThreshold {
			continue
		}
		u, err := s.users.FindByID(ctx, h.UserID)
		if err != nil {
			continue
		}
		if strings.ToLower(strings.TrimSpace(u.City)) != normalizedCity {
			continue
		}
		recipients = append(recipients, h.UserID)
	}

	for _, recipientID := range recipients {
		conv, err := s.convs.GetOrCreate(ctx, senderID, recipientID)
		if err != nil {
			return nil, err
		}
		msg := &model.Message{
			ID:             uuid.New().String(),
			ConversationID: conv.ID,
			SenderID:       senderID,
			Content:        "[Broadcast] " + content,
		}
		if err = s.convs.CreateMessage(ctx, msg); err != nil {
			return nil, err
		}
	}

	if err = s.outbox.Insert(ctx, model.EventBroadcast, map[string]any{
		"broadcast_id":    b.ID,
		"sender_id":       senderID,
		"city":            b.City,
		"recipient_count": len(recipients),
	}); err != nil {
		pkg.Logger.Warn("outbox insert failed", zap.Error(err))
	}

	pkg.Logger.Info("broadcast delivered",
		zap.String("broadcast_id", b.ID),
		zap.Int("recipients", len(recipients)))
	return &BroadcastResult{RecipientCount: len(recipients)}, nil
}

func (s *BroadcastService) ListBySender(ctx context.Context, senderID string) ([]model.Broadcast, error) {
	return s.repo.ListBySender(ctx, senderID)
}
