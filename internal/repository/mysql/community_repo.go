package mysql

import (
	"context"

	"Founder_Circle/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommunityRepository struct {
	DB *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) *CommunityRepository {
	return &CommunityRepository{DB: db}
}

// Create 创建社区并让创建者以管理员身份入驻，同一事务内完成
func (r *CommunityRepository) Create(ctx context.Context, c *model.Community) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		member := &model.CommunityMember{
			CommunityID: c.ID,
			UserID:      c.CreatorID,
			Role:        1,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "community_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(member).Error
	})
}

func (r *CommunityRepository) FindByID(ctx context.Context, id string) (*model.Community, error) {
	var community model.Community
	err := r.DB.WithContext(ctx).First(&community, "id = ?", id).Error
	return &community, err
}

func (r *CommunityRepository) List(ctx context.Context) ([]model.Community, error) {
	var list []model.Community
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *CommunityRepository) ListByUser(ctx context.Context, userID string) ([]model.Community, error) {
	var list []model.Community
	err := r.DB.WithContext(ctx).Model(&model.Community{}).
		Joins("JOIN community_members ON community_members.community_id = communities.id").
		Where("community_members.user_id = ?", userID).
		Find(&list).Error
	return list, err
}

// Join 幂等入驻：(community_id, user_id) 已存在则不报错
func (r *CommunityRepository) Join(ctx context.Context, communityID, userID string) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "community_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&model.CommunityMember{CommunityID: communityID, UserID: userID}).Error
}

func (r *CommunityRepository) Leave(ctx context.Context, communityID, userID string) error {
	return r.DB.WithContext(ctx).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Delete(&model.CommunityMember{}).Error
}

func (r *CommunityRepository) IsMember(ctx context.Context, communityID, userID string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.CommunityMember{}).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Count(&count).Error
	return count > 0, err
}

// Delete 删除社区及成员与标签关联
func (r *CommunityRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("community_id = ?", id).Delete(&model.CommunityMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("entity_type = ? AND entity_id = ?", model.EntityCommunity, id).
			Delete(&model.TagBinding{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Community{}, "id = ?", id).Error
	})
}
