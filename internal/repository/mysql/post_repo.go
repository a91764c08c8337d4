package mysql

import (
	"context"

	"Founder_Circle/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{DB: db}
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	return r.DB.WithContext(ctx).Create(post).Error
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	err := r.DB.WithContext(ctx).First(&post, "id = ?", id).Error
	return &post, err
}

// ListRecent 全局最新窗口，带作者
func (r *PostRepository) ListRecent(ctx context.Context, limit int) ([]model.Post, error) {
	var posts []model.Post
	err := r.DB.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *PostRepository) ListByAuthor(ctx context.Context, authorID string) ([]model.Post, error) {
	var posts []model.Post
	err := r.DB.WithContext(ctx).
		Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// Delete 硬删除帖子及其附属数据
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("entity_type = ? AND entity_id = ?", model.EntityPost, id).
			Delete(&model.TagBinding{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, "id = ?", id).Error
	})
}

// AddComment 插入评论并原子加一评论数
func (r *PostRepository) AddComment(ctx context.Context, comment *model.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&model.Post{}).
			Where("id = ?", comment.PostID).
			UpdateColumn("comments_count", gorm.Expr("comments_count + 1")).Error
	})
}

func (r *PostRepository) ListComments(ctx context.Context, postID string) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.DB.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// Repost 复制原帖内容为新帖并原子加一转发数
func (r *PostRepository) Repost(ctx context.Context, original *model.Post, reposterID string) (*model.Post, error) {
	repost := &model.Post{
		ID:       uuid.New().String(),
		AuthorID: reposterID,
		Content:  "Reposted: " + original.Content,
		ImageURL: original.ImageURL,
	}
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(repost).Error; err != nil {
			return err
		}
		return tx.Model(&model.Post{}).
			Where("id = ?", original.ID).
			UpdateColumn("reposts_count", gorm.Expr("reposts_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return repost, nil
}
