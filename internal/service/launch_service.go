package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"Founder_Circle/internal/affinity"
	"Founder_Circle/internal/model"
	"Founder_Circle/internal/pkg"
	"Founder_Circle/internal/repository/mysql"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// 发布在首页上的存活周期
	launchTodayWindow = 24 * time.Hour
	launchMaxAge      = 48 * time.Hour

	yesterdayLimit = 7

	// 推荐门槛：标签重合数
	recommendThreshold = 2
)

type LaunchService struct {
	repo   *mysql.LaunchRepository
	tags   *mysql.TagRepository
	outbox *mysql.OutboxRepository
}

func NewLaunchService(db *gorm.DB) *LaunchService {
	return &LaunchService{
		repo:   mysql.NewLaunchRepository(db),
		tags:   mysql.NewTagRepository(db),
		outbox: mysql.NewOutboxRepository(db),
	}
}

type CreateLaunchInput struct {
	Name            string
	Tagline         string
	Description     string
	LogoURL         string
	ProductImageURL string
	WebsiteURL      string
	Tags            []string
}

func (s *LaunchService) Create(ctx context.Context, creatorID string, in CreateLaunchInput) (*model.Launch, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Tagline) == "" ||
		strings.TrimSpace(in.WebsiteURL) == "" ||
		len(in.Tags) == 0 {
		return nil, ErrInvalidInput
	}

	// 未知标签名会被静默丢弃，先解析，全不认识就拒绝
	tagIDs, err := s.tags.ResolveNames(ctx, in.Tags)
	if err != nil {
		return nil, err
	}
	if len(tagIDs) == 0 {
		return nil, ErrInvalidInput
	}

	launch := &model.Launch{
		ID:              uuid.New().String(),
		CreatorID:       creatorID,
		Name:            in.Name,
		Tagline:         in.Tagline,
		Description:     in.Description,
		LogoURL:         in.LogoURL,
		ProductImageURL: in.ProductImageURL,
		WebsiteURL:      in.WebsiteURL,
	}
	if err = s.repo.Create(ctx, launch); err != nil {
		return nil, err
	}
	if err = s.tags.SetTags(ctx, model.EntityLaunch, launch.ID, tagIDs); err != nil {
		return nil, err
	}

	if err = s.outbox.Insert(ctx, model.EventLaunch, map[string]any{
		"launch_id":  launch.ID,
		"creator_id": creatorID,
		"name":       launch.Name,
	}); err != nil {
		pkg.Logger.Warn("outbox insert failed", zap.Error(err))
	}
	return launch, nil
}

// sweep 清掉超过 48h 的发布，所有列表读路径都会先走一遍
func (s *LaunchService) sweep(ctx context.Context) {
	n, err := s.repo.DeleteExpired(ctx, time.Now().Add(-launchMaxAge))
	if err != nil {
		pkg.Logger.Warn("launch sweep failed", zap.Error(err))
		return
	}
	if n > 0 {
		pkg.Logger.Info("expired launches removed", zap.Int64("count", n))
	}
}

// List 存活期内的全部发布
func (s *LaunchService) List(ctx context.Context) ([]model.Launch, error) {
	s.sweep(ctx)
	return s.repo.List(ctx)
}

// Today 最近 24h 内的发布，按票数降序
func (s *LaunchService) Today(ctx context.Context) ([]model.Launch, error) {
	s.sweep(ctx)
	return s.repo.ListSince(ctx, time.Now().Add(-launchTodayWindow))
}

// Yesterday 24h~48h 窗口内票数最高的 7 个
func (s *LaunchService) Yesterday(ctx context.Context) ([]model.Launch, error) {
	s.sweep(ctx)
	now := time.Now()
	return s.repo.ListBetween(ctx, now.Add(-launchMaxAge), now.Add(-launchTodayWindow), yesterdayLimit)
}

// RankedLaunch 带相关度的发布
type RankedLaunch struct {
	model.Launch
	MatchingTags int `json:"matchingTags"`
}

// Recommended 与观者标签重合数达到门槛的发布，
// 按（重合数降序，票数降序）排；观者无标签时返回空。
func (s *LaunchService) Recommended(ctx context.Context, viewerID string) ([]RankedLaunch, error) {
	s.sweep(ctx)

	viewerTags, err := s.tags.GetTagIDs(ctx, model.EntityUser, viewerID)
	if err != nil {
		return nil, err
	}
	if len(viewerTags) == 0 {
		return []RankedLaunch{}, nil
	}

	launches, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(launches) == 0 {
		return []RankedLaunch{}, nil
	}

	ids := make([]string, 0, len(launches))
	for _, l := range launches {
		ids = append(ids, l.ID)
	}
	launchTags, err := s.tags.GetTagIDsBatch(ctx, model.EntityLaunch, ids)
	if err != nil {
		return nil, err
	}

	out := make([]RankedLaunch, 0, len(launches))
	for _, l := range launches {
		match := affinity.MatchCount(viewerTags, launchTags[l.ID])
		if match < recommendThreshold {
			continue
		}
		out = append(out, RankedLaunch{Launch: l, MatchingTags: match})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MatchingTags != out[j].MatchingTags {
			return out[i].MatchingTags > out[j].MatchingTags
		}
		return out[i].UpvotesCount > out[j].UpvotesCount
	})
	return out, nil
}

func (s *LaunchService) Get(ctx context.Context, id string) (*model.Launch, error) {
	launch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return launch, nil
}

func (s *LaunchService) AddComment(ctx context.Context, userID, launchID, content string) (*model.LaunchComment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrInvalidInput
	}
	if _, err := s.repo.FindByID(ctx, launchID); err != nil {
		return nil, ErrNotFound
	}
	comment := &model.LaunchComment{
		ID:       uuid.New().String(),
		UserID:   userID,
		LaunchID: launchID,
		Content:  content,
	}
	if err := s.repo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *LaunchService) ListComments(ctx context.Context, launchID string) ([]model.LaunchComment, error) {
	return s.repo.ListComments(ctx, launchID)
}

// Upvote 幂等投票，返回是否首次
func (s *LaunchService) Upvote(ctx context.Context, launchID, userID string) (mysql.UpvoteResult, error) {
	if _, err := s.repo.FindByID(ctx, launchID); err != nil {
		return mysql.UpvoteResult{}, ErrNotFound
	}
	return s.repo.Upvote(ctx, launchID, userID)
}

func (s *LaunchService) HasUpvoted(ctx context.Context, launchID, userID string) (bool, error) {
	return s.repo.HasUpvoted(ctx, launchID, userID)
}

// Delete 仅创建者可删
func (s *LaunchService) Delete(ctx context.Context, userID, launchID string) error {
	launch, err := s.repo.FindByID(ctx, launchID)
	if err != nil {
		return ErrNotFound
	}
	if launch.CreatorID != userID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, launchID)
}

// RunSweeper 周期性清理过期发布，读路径之外的兜底
func (s *LaunchService) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}
