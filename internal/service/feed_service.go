package service

import (
	"context"
	"sort"

	"Founder_Circle/internal/affinity"
	"Founder_Circle/internal/model"
	"Founder_Circle/internal/repository/mysql"

	"gorm.io/gorm"
)

// feedWindow 参与排序的最近帖子数
const feedWindow = 100

type FeedService struct {
	posts *mysql.PostRepository
	likes *mysql.PostLikeRepository
	tags  *mysql.TagRepository
}

func NewFeedService(db *gorm.DB) *FeedService {
	return &FeedService{
		posts: mysql.NewPostRepository(db),
		likes: mysql.NewPostLikeRepository(db),
		tags:  mysql.NewTagRepository(db),
	}
}

// FeedPost 带相关度与点赞标注的帖子
type FeedPost struct {
	model.Post
	MatchingTags int  `json:"matchingTags"`
	IsLiked      bool `json:"isLiked"`
}

// List 按标签重合度排序的信息流。
// 取最近 100 条，按（重合数降序，发布时间降序）排；观者无标签时退化为纯时间序。
func (s *FeedService) List(ctx context.Context, viewerID string) ([]FeedPost, error) {
	recent, err := s.posts.ListRecent(ctx, feedWindow)
	if err != nil {
		return nil, err
	}
	if len(recent) == 0 {
		return []FeedPost{}, nil
	}

	viewerTags, err := s.tags.GetTagIDs(ctx, model.EntityUser, viewerID)
	if err != nil {
		return nil, err
	}

	postIDs := make([]string, 0, len(recent))
	for _, p := range recent {
		postIDs = append(postIDs, p.ID)
	}
	liked, err := s.likes.LikedSet(ctx, viewerID, postIDs)
	if err != nil {
		return nil, err
	}

	out := make([]FeedPost, 0, len(recent))
	if len(viewerTags) == 0 {
		// 无标签直接保持时间序
		for _, p := range recent {
			out = append(out, FeedPost{Post: p, IsLiked: liked[p.ID]})
		}
		return out, nil
	}

	postTags, err := s.tags.GetTagIDsBatch(ctx, model.EntityPost, postIDs)
	if err != nil {
		return nil, err
	}
	for _, p := range recent {
		out = append(out, FeedPost{
			Post:         p,
			MatchingTags: affinity.MatchCount(viewerTags, postTags[p.ID]),
			IsLiked:      liked[p.ID],
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MatchingTags != out[j].MatchingTags {
			return out[i].MatchingTags > out[j].MatchingTags
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
