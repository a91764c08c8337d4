package mysql

import (
	"context"
	"strings"

	"Founder_Circle/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TagRepository struct {
	DB *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{DB: db}
}

func (r *TagRepository) Create(ctx context.Context, tag *model.Tag) error {
	if tag.ID == "" {
		tag.ID = uuid.New().String()
	}
	return r.DB.WithContext(ctx).Create(tag).Error
}

func (r *TagRepository) List(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	err := r.DB.WithContext(ctx).Order("name ASC").Find(&tags).Error
	return tags, err
}

func (r *TagRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Tag{}).Count(&n).Error
	return n, err
}

// ResolveNames 按名称解析标签 ID，忽略大小写；未知名称静默丢弃
func (r *TagRepository) ResolveNames(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	lowered := make([]string, 0, len(names))
	for _, n := range names {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(n)))
	}
	var ids []string
	err := r.DB.WithContext(ctx).Model(&model.Tag{}).
		Where("LOWER(name) IN ?", lowered).
		Pluck("id", &ids).Error
	return ids, err
}

// SetTags 全量替换实体的标签集合：先删后插，空集合即清空。
// 不校验 tagIDs 是否存在于目录，调用方负责。
func (r *TagRepository) SetTags(ctx context.Context, entityType, entityID string, tagIDs []string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("entity_type = ? AND entity_id = ?", entityType, entityID).
			Delete(&model.TagBinding{}).Error; err != nil {
			return err
		}
		if len(tagIDs) == 0 {
			return nil
		}
		seen := make(map[string]struct{}, len(tagIDs))
		bindings := make([]model.TagBinding, 0, len(tagIDs))
		for _, id := range tagIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			bindings = append(bindings, model.TagBinding{
				EntityType: entityType,
				EntityID:   entityID,
				TagID:      id,
			})
		}
		return tx.Create(&bindings).Error
	})
}

// GetTags 解析实体标签集合为完整的 Tag 记录
func (r *TagRepository) GetTags(ctx context.Context, entityType, entityID string) ([]model.Tag, error) {
	var tags []model.Tag
	err := r.DB.WithContext(ctx).Model(&model.Tag{}).
		Joins("JOIN tag_bindings ON tag_bindings.tag_id = tags.id").
		Where("tag_bindings.entity_type = ? AND tag_bindings.entity_id = ?", entityType, entityID).
		Find(&tags).Error
	return tags, err
}

func (r *TagRepository) GetTagIDs(ctx context.Context, entityType, entityID string) ([]string, error) {
	var ids []string
	err := r.DB.WithContext(ctx).Model(&model.TagBinding{}).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Pluck("tag_id", &ids).Error
	return ids, err
}

// GetTagIDsBatch 批量取多个实体的标签集合，排序与打分用
func (r *TagRepository) GetTagIDsBatch(ctx context.Context, entityType string, entityIDs []string) (map[string][]string, error) {
	result := make(map[string][]string, len(entityIDs))
	if len(entityIDs) == 0 {
		return result, nil
	}
	var rows []model.TagBinding
	if err := r.DB.WithContext(ctx).
		Where("entity_type = ? AND entity_id IN ?", entityType, entityIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.EntityID] = append(result[row.EntityID], row.TagID)
	}
	return result, nil
}

// TagHolder 某用户命中的目标标签数
type TagHolder struct {
	UserID  string
	Matches int64
}

// UsersHoldingTags 统计每个用户持有多少个目标标签；广播定向用
func (r *TagRepository) UsersHoldingTags(ctx context.Context, tagIDs []string) ([]TagHolder, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}
	var holders []TagHolder
	err := r.DB.WithContext(ctx).Model(&model.TagBinding{}).
		Select("entity_id AS user_id, COUNT(*) AS matches").
		Where("entity_type = ? AND tag_id IN ?", model.EntityUser, tagIDs).
		Group("entity_id").
		Find(&holders).Error
	return holders, err
}

// UserIDsWithTagNameLike 标签名模糊命中的用户，搜索用
func (r *TagRepository) UserIDsWithTagNameLike(ctx context.Context, pattern string) ([]string, error) {
	var ids []string
	err := r.DB.WithContext(ctx).Model(&model.TagBinding{}).
		Joins("JOIN tags ON tags.id = tag_bindings.tag_id").
		Where("tag_bindings.entity_type = ? AND LOWER(tags.name) LIKE ?", model.EntityUser, "%"+strings.ToLower(pattern)+"%").
		Distinct().
		Pluck("tag_bindings.entity_id", &ids).Error
	return ids, err
}
