package service

import (
	"context"

	"Founder_Circle/internal/model"
	"Founder_Circle/internal/pkg"
	"Founder_Circle/internal/repository/mysql"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type FollowService struct {
	repo   *mysql.FollowRepository
	users  *mysql.UserRepository
	outbox *mysql.OutboxRepository
}

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{
		repo:   mysql.NewFollowRepository(db),
		users:  mysql.NewUserRepository(db),
		outbox: mysql.NewOutboxRepository(db),
	}
}

// Request 发起关注请求，落 pending，重复请求幂等
func (s *FollowService) Request(ctx context.Context, followerID, followingID string) (*model.Follow, error) {
	if followerID == followingID {
		return nil, ErrSelfFollow
	}
	if _, err := s.users.FindByID(ctx, followingID); err != nil {
		return nil, ErrUserNotFound
	}
	follow, err := s.repo.Request(ctx, followerID, followingID)
	if err != nil {
		return nil, err
	}
	if err = s.outbox.Insert(ctx, model.EventFollow, map[string]any{
		"action":       "requested",
		"follow_id":    follow.ID,
		"follower_id":  followerID,
		"following_id": followingID,
	}); err != nil {
		pkg.Logger.Warn("outbox insert failed", zap.Error(err))
	}
	return follow, nil
}

// Accept 只有被关注方可以通过请求
func (s *FollowService) Accept(ctx context.Context, userID, followID string) error {
	follow, err := s.repo.FindByID(ctx, followID)
	if err != nil {
		return ErrNotFound
	}
	if follow.FollowingID != userID {
		return ErrForbidden
	}
	if err = s.repo.Accept(ctx, followID); err != nil {
		return err
	}
	if err = s.outbox.Insert(ctx, model.EventFollow, map[string]any{
		"action":       "accepted",
		"follow_id":    follow.ID,
		"follower_id":  follow.FollowerID,
		"following_id": follow.FollowingID,
	}); err != nil {
		pkg.Logger.Warn("outbox insert failed", zap.Error(err))
	}
	return nil
}

func (s *FollowService) Decline(ctx context.Context, userID, followID string) error {
	follow, err := s.repo.FindByID(ctx, followID)
	if err != nil {
		return ErrNotFound
	}
	if follow.FollowingID != userID {
		return ErrForbidden
	}
	return s.repo.Decline(ctx, followID)
}

func (s *FollowService) Status(ctx context.Context, followerID, followingID string) (string, error) {
	return s.repo.Status(ctx, followerID, followingID)
}

func (s *FollowService) Followers(ctx context.Context, userID string) ([]model.User, error) {
	return s.repo.ListFollowers(ctx, userID)
}

func (s *FollowService) Following(ctx context.Context, userID string) ([]model.User, error) {
	return s.repo.ListFollowing(ctx, userID)
}

func (s *FollowService) Requests(ctx context.Context, userID string) ([]model.Follow, error) {
	return s.repo.ListRequests(ctx, userID)
}
