package mysql

import (
	"context"
	"time"

	"Founder_Circle/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LaunchRepository struct {
	DB *gorm.DB
}

func NewLaunchRepository(db *gorm.DB) *LaunchRepository {
	return &LaunchRepository{DB: db}
}

func (r *LaunchRepository) Create(ctx context.Context, launch *model.Launch) error {
	if launch.ID == "" {
		launch.ID = uuid.New().String()
	}
	return r.DB.WithContext(ctx).Create(launch).Error
}

func (r *LaunchRepository) FindByID(ctx context.Context, id string) (*model.Launch, error) {
	var launch model.Launch
	err := r.DB.WithContext(ctx).First(&launch, "id = ?", id).Error
	return &launch, err
}

// List 全量列表，热度优先、新鲜度打破并列
func (r *LaunchRepository) List(ctx context.Context) ([]model.Launch, error) {
	var list []model.Launch
	err := r.DB.WithContext(ctx).
		Preload("Creator").
		Order("upvotes_count DESC, created_at DESC").
		Find(&list).Error
	return list, err
}

// ListSince 今日榜：createdAt >= since
func (r *LaunchRepository) ListSince(ctx context.Context, since time.Time) ([]model.Launch, error) {
	var list []model.Launch
	err := r.DB.WithContext(ctx).
		Preload("Creator").
		Where("created_at >= ?", since).
		Order("upvotes_count DESC, created_at DESC").
		Find(&list).Error
	return list, err
}

// ListBetween 昨日榜：from <= createdAt < to，取前 limit 条
func (r *LaunchRepository) ListBetween(ctx context.Context, from, to time.Time, limit int) ([]model.Launch, error) {
	var list []model.Launch
	err := r.DB.WithContext(ctx).
		Preload("Creator").
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("upvotes_count DESC, created_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

// DeleteExpired 硬删除超过 TTL 的发布及其投票与标签关联，
// 返回删除条数。不看热度，到点即清。
func (r *LaunchRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	var removed int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []string
		if err := tx.Model(&model.Launch{}).
			Where("created_at < ?", cutoff).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Where("launch_id IN ?", ids).Delete(&model.LaunchUpvote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("launch_id IN ?", ids).Delete(&model.LaunchComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("entity_type = ? AND entity_id IN ?", model.EntityLaunch, ids).
			Delete(&model.TagBinding{}).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", ids).Delete(&model.Launch{})
		removed = res.RowsAffected
		return res.Error
	})
	return removed, err
}

func (r *LaunchRepository) AddComment(ctx context.Context, comment *model.LaunchComment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	return r.DB.WithContext(ctx).Create(comment).Error
}

func (r *LaunchRepository) ListComments(ctx context.Context, launchID string) ([]model.LaunchComment, error) {
	var comments []model.LaunchComment
	err := r.DB.WithContext(ctx).
		Preload("User").
		Where("launch_id = ?", launchID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// UpvoteResult 软冲突用结构化结果表达，不抛错
type UpvoteResult struct {
	Success        bool `json:"success"`
	AlreadyUpvoted bool `json:"alreadyUpvoted"`
}

// Upvote 一人一票：唯一键 (launch_id, user_id) 条件插入，插入成功才加计数，
// 整体一个事务，并发下不会双票或丢增量
func (r *LaunchRepository) Upvote(ctx context.Context, launchID, userID string) (UpvoteResult, error) {
	var result UpvoteResult
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "launch_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(&model.LaunchUpvote{LaunchID: launchID, UserID: userID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			result = UpvoteResult{Success: false, AlreadyUpvoted: true}
			return nil
		}
		if err := tx.Model(&model.Launch{}).
			Where("id = ?", launchID).
			UpdateColumn("upvotes_count", gorm.Expr("upvotes_count + 1")).Error; err != nil {
			return err
		}
		result = UpvoteResult{Success: true, AlreadyUpvoted: false}
		return nil
	})
	return result, err
}

func (r *LaunchRepository) HasUpvoted(ctx context.Context, launchID, userID string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.LaunchUpvote{}).
		Where("launch_id = ? AND user_id = ?", launchID, userID).
		Count(&count).Error
	return count > 0, err
}

// Delete 删除单个发布及附属数据
func (r *LaunchRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("launch_id = ?", id).Delete(&model.LaunchUpvote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("launch_id = ?", id).Delete(&model.LaunchComment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("entity_type = ? AND entity_id = ?", model.EntityLaunch, id).
			Delete(&model.TagBinding{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Launch{}, "id = ?", id).Error
	})
}
