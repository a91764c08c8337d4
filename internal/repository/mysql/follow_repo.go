package mysql

import (
	"context"
	"errors"

	"Founder_Circle/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository struct {
	DB *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{DB: db}
}

// Request 发起关注请求（pending）。唯一键 (follower_id, following_id)
// 冲突时返回已存在的边，重复请求幂等。
func (r *FollowRepository) Request(ctx context.Context, followerID, followingID string) (*model.Follow, error) {
	follow := &model.Follow{
		ID:          uuid.New().String(),
		FollowerID:  followerID,
		FollowingID: followingID,
		Status:      model.FollowStatusPending,
	}
	res := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "follower_id"}, {Name: "following_id"}},
		DoNothing: true,
	}).Create(follow)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var existing model.Follow
		if err := r.DB.WithContext(ctx).
			Where("follower_id = ? AND following_id = ?", followerID, followingID).
			First(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	return follow, nil
}

func (r *FollowRepository) FindByID(ctx context.Context, id string) (*model.Follow, error) {
	var follow model.Follow
	err := r.DB.WithContext(ctx).First(&follow, "id = ?", id).Error
	return &follow, err
}

func (r *FollowRepository) Accept(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Model(&model.Follow{}).
		Where("id = ?", id).
		Update("status", model.FollowStatusAccepted).Error
}

// Decline 拒绝即删边，幂等
func (r *FollowRepository) Decline(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Delete(&model.Follow{}, "id = ?", id).Error
}

// Status 返回 follower→following 方向的关系状态，无边返回空串
func (r *FollowRepository) Status(ctx context.Context, followerID, followingID string) (string, error) {
	var follow model.Follow
	err := r.DB.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&follow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return follow.Status, nil
}

// HasAccepted 任一方向存在 accepted 边即视为互通，私信限流的放行条件
func (r *FollowRepository) HasAccepted(ctx context.Context, a, b string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Follow{}).
		Where("((follower_id = ? AND following_id = ?) OR (follower_id = ? AND following_id = ?)) AND status = ?",
			a, b, b, a, model.FollowStatusAccepted).
		Count(&count).Error
	return count > 0, err
}

func (r *FollowRepository) ListFollowers(ctx context.Context, userID string) ([]model.User, error) {
	var users []model.User
	err := r.DB.WithContext(ctx).Model(&model.User{}).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.following_id = ? AND follows.status = ?", userID, model.FollowStatusAccepted).
		Find(&users).Error
	return users, err
}

func (r *FollowRepository) ListFollowing(ctx context.Context, userID string) ([]model.User, error) {
	var users []model.User
	err := r.DB.WithContext(ctx).Model(&model.User{}).
		Joins("JOIN follows ON follows.following_id = users.id").
		Where("follows.follower_id = ? AND follows.status = ?", userID, model.FollowStatusAccepted).
		Find(&users).Error
	return users, err
}

func (r *FollowRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Follow{}).
		Where("following_id = ? AND status = ?", userID, model.FollowStatusAccepted).
		Count(&count).Error
	return count, err
}

func (r *FollowRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ? AND status = ?", userID, model.FollowStatusAccepted).
		Count(&count).Error
	return count, err
}

// ListRequests 收到的待处理请求，带发起者资料
func (r *FollowRepository) ListRequests(ctx context.Context, userID string) ([]model.Follow, error) {
	var rows []model.Follow
	err := r.DB.WithContext(ctx).
		Preload("Follower").
		Where("following_id = ? AND status = ?", userID, model.FollowStatusPending).
		Find(&rows).Error
	return rows, err
}
