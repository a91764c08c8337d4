package service

import (
	"context"
	"strings"

	"Founder_Circle/internal/model"
	"Founder_Circle/internal/repository/mysql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// preAcceptLimit follow 未通过前发信上限
const preAcceptLimit = 1

type MessageService struct {
	repo    *mysql.ConversationRepository
	follows *mysql.FollowRepository
	users   *mysql.UserRepository
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{
		repo:    mysql.NewConversationRepository(db),
		follows: mysql.NewFollowRepository(db),
		users:   mysql.NewUserRepository(db),
	}
}

func (s *MessageService) GetOrCreateConversation(ctx context.Context, userID, otherID string) (*model.Conversation, error) {
	if userID == otherID {
		return nil, ErrInvalidInput
	}
	if _, err := s.users.FindByID(ctx, otherID); err != nil {
		return nil, ErrUserNotFound
	}
	return s.repo.GetOrCreate(ctx, userID, otherID)
}

// ConversationView 会话 + 对端 + 最后一条消息
type ConversationView struct {
	Conversation model.Conversation `json:"conversation"`
	Other        *model.User        `json:"other"`
	LastMessage  *model.Message     `json:"lastMessage"`
}

func (s *MessageService) ListConversations(ctx context.Context, userID string) ([]ConversationView, error) {
	convs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]ConversationView, 0, len(convs))
	for _, c := range convs {
		otherID := c.Participant1ID
		if otherID == userID {
			otherID = c.Participant2ID
		}
		other, err := s.users.FindByID(ctx, otherID)
		if err != nil {
			continue
		}
		last, err := s.repo.LastMessage(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, ConversationView{Conversation: c, Other: other, LastMessage: last})
	}
	return out, nil
}

func (s *MessageService) ListMessages(ctx context.Context, userID, conversationID string) ([]model.Message, error) {
	ok, err := s.repo.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	return s.repo.ListMessages(ctx, conversationID)
}

// Send 发送消息。双方 follow 未通过前，发起方在该会话里最多发 1 条。
func (s *MessageService) Send(ctx context.Context, senderID, conversationID, content string) (*model.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrInvalidInput
	}
	conv, err := s.repo.FindByID(ctx, conversationID)
	if err != nil {
		return nil, ErrNotFound
	}
	if conv.Participant1ID != senderID && conv.Participant2ID != senderID {
		return nil, ErrForbidden
	}

	otherID := conv.Participant1ID
	if otherID == senderID {
		otherID = conv.Participant2ID
	}
	accepted, err := s.follows.HasAccepted(ctx, senderID, otherID)
	if err != nil {
		return nil, err
	}
	if !accepted {
		sent, err := s.repo.CountBySender(ctx, conversationID, senderID)
		if err != nil {
			return nil, err
		}
		if sent >= preAcceptLimit {
			return nil, ErrMessageLimit
		}
	}

	msg := &model.Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
	}
	if err = s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
