package service

import (
	"context"
	"strings"

	"Founder_Circle/internal/model"
	"Founder_Circle/internal/repository/mysql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostService struct {
	repo  *mysql.PostRepository
	likes *mysql.PostLikeRepository
	tags  *mysql.TagRepository
	comm  *mysql.CommunityRepository
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{
		repo:  mysql.NewPostRepository(db),
		likes: mysql.NewPostLikeRepository(db),
		tags:  mysql.NewTagRepository(db),
		comm:  mysql.NewCommunityRepository(db),
	}
}

type CreatePostInput struct {
	Content     string
	ImageURL    string
	CommunityID string
	Tags        []string
}

func (s *PostService) Create(ctx context.Context, authorID string, in CreatePostInput) (*model.Post, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, ErrInvalidInput
	}
	if in.CommunityID != "" {
		if _, err := s.comm.FindByID(ctx, in.CommunityID); err != nil {
			return nil, ErrNotFound
		}
	}

	post := &model.Post{
		ID:          uuid.New().String(),
		AuthorID:    authorID,
		CommunityID: in.CommunityID,
		Content:     in.Content,
		ImageURL:    in.ImageURL,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	if len(in.Tags) > 0 {
		tagIDs, err := s.tags.ResolveNames(ctx, in.Tags)
		if err != nil {
			return nil, err
		}
		if err = s.tags.SetTags(ctx, model.EntityPost, post.ID, tagIDs); err != nil {
			return nil, err
		}
	}
	return post, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return post, nil
}

func (s *PostService) ListByAuthor(ctx context.Context, authorID string) ([]model.Post, error) {
	return s.repo.ListByAuthor(ctx, authorID)
}

// ListRecent 全局最新帖子，未登录也可读
func (s *PostService) ListRecent(ctx context.Context, limit int) ([]model.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.ListRecent(ctx, limit)
}

// Delete 只有作者本人可以删帖
func (s *PostService) Delete(ctx context.Context, userID, postID string) error {
	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return ErrNotFound
	}
	if post.AuthorID != userID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, postID)
}

// Like 幂等点赞，重复点赞不再累加计数
func (s *PostService) Like(ctx context.Context, userID, postID string) (bool, error) {
	if _, err := s.repo.FindByID(ctx, postID); err != nil {
		return false, ErrNotFound
	}
	return s.likes.Like(ctx, userID, postID)
}

func (s *PostService) Unlike(ctx context.Context, userID, postID string) (bool, error) {
	return s.likes.Unlike(ctx, userID, postID)
}

func (s *PostService) AddComment(ctx context.Context, userID, postID, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrInvalidInput
	}
	if _, err := s.repo.FindByID(ctx, postID); err != nil {
		return nil, ErrNotFound
	}
	comment := &model.Comment{
		ID:      uuid.New().String(),
		UserID:  userID,
		PostID:  postID,
		Content: content,
	}
	if err := s.repo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *PostService) ListComments(ctx context.Context, postID string) ([]model.Comment, error) {
	return s.repo.ListComments(ctx, postID)
}

// Repost 转发：复制内容加前缀并累加原帖转发数
func (s *PostService) Repost(ctx context.Context, userID, postID string) (*model.Post, error) {
	original, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.repo.Repost(ctx, original, userID)
}
