package service

import (
	"context"
	"strings"

	"Founder_Circle/internal/model"
	"Founder_Circle/internal/repository/mysql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommunityService struct {
	repo *mysql.CommunityRepository
	tags *mysql.TagRepository
}

func NewCommunityService(db *gorm.DB) *CommunityService {
	return &CommunityService{
		repo: mysql.NewCommunityRepository(db),
		tags: mysql.NewTagRepository(db),
	}
}

type CreateCommunityInput struct {
	Name        string
	Description string
	AvatarURL   string
	Tags        []string
}

func (s *CommunityService) Create(ctx context.Context, creatorID string, in CreateCommunityInput) (*model.Community, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrInvalidInput
	}
	c := &model.Community{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		AvatarURL:   in.AvatarURL,
		CreatorID:   creatorID,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	if len(in.Tags) > 0 {
		tagIDs, err := s.tags.ResolveNames(ctx, in.Tags)
		if err != nil {
			return nil, err
		}
		if err = s.tags.SetTags(ctx, model.EntityCommunity, c.ID, tagIDs); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (s *CommunityService) Get(ctx context.Context, id string) (*model.Community, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *CommunityService) List(ctx context.Context) ([]model.Community, error) {
	return s.repo.List(ctx)
}

func (s *CommunityService) ListByUser(ctx context.Context, userID string) ([]model.Community, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *CommunityService) Join(ctx context.Context, communityID, userID string) error {
	if _, err := s.repo.FindByID(ctx, communityID); err != nil {
		return ErrNotFound
	}
	return s.repo.Join(ctx, communityID, userID)
}

func (s *CommunityService) Leave(ctx context.Context, communityID, userID string) error {
	return s.repo.Leave(ctx, communityID, userID)
}

// Delete 仅创建者可删
func (s *CommunityService) Delete(ctx context.Context, userID, communityID string) error {
	c, err := s.repo.FindByID(ctx, communityID)
	if err != nil {
		return ErrNotFound
	}
	if c.CreatorID != userID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, communityID)
}
