package service

import (
	"context"
	"testing"
	"time"

	"Founder_Circle/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createPostAt(t *testing.T, db *gorm.DB, authorID, content string, at time.Time) *model.Post {
	t.Helper()
	p := &model.Post{
		ID:       uuid.New().String(),
		AuthorID: authorID,
		Content:  content,
	}
	require.NoError(t, db.Create(p).Error)
	require.NoError(t, db.Model(p).Update("created_at", at).Error)
	p.CreatedAt = at
	return p
}

func TestFeedRankedByTagOverlap(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewFeedService(db)

	viewer := createUser(t, db, "viewer", "")
	author := createUser(t, db, "author", "")
	tags := createTags(t, db, "AI", "SaaS", "Fintech")
	bindTags(t, db, model.EntityUser, viewer.ID, tags["AI"], tags["SaaS"])

	now := time.Now()
	// 最新但零重合
	noMatch := createPostAt(t, db, author.ID, "no match", now)
	// 旧一些但重合 2
	twoMatch := createPostAt(t, db, author.ID, "two match", now.Add(-2*time.Hour))
	bindTags(t, db, model.EntityPost, twoMatch.ID, tags["AI"], tags["SaaS"])
	// 重合 1
	oneMatch := createPostAt(t, db, author.ID, "one match", now.Add(-time.Hour))
	bindTags(t, db, model.EntityPost, oneMatch.ID, tags["AI"], tags["Fintech"])

	feed, err := svc.List(ctx, viewer.ID)
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, twoMatch.ID, feed[0].ID)
	assert.Equal(t, 2, feed[0].MatchingTags)
	assert.Equal(t, oneMatch.ID, feed[1].ID)
	assert.Equal(t, noMatch.ID, feed[2].ID)
}

func TestFeedEqualOverlapFallsBackToRecency(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewFeedService(db)

	viewer := createUser(t, db, "viewer", "")
	author := createUser(t, db, "author", "")
	tags := createTags(t, db, "AI")
	bindTags(t, db, model.EntityUser, viewer.ID, tags["AI"])

	now := time.Now()
	older := createPostAt(t, db, author.ID, "older", now.Add(-time.Hour))
	bindTags(t, db, model.EntityPost, older.ID, tags["AI"])
	newer := createPostAt(t, db, author.ID, "newer", now)
	bindTags(t, db, model.EntityPost, newer.ID, tags["AI"])

	feed, err := svc.List(ctx, viewer.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, newer.ID, feed[0].ID)
	assert.Equal(t, older.ID, feed[1].ID)
}

func TestFeedViewerWithoutTagsKeepsRecency(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewFeedService(db)

	viewer := createUser(t, db, "viewer", "")
	author := createUser(t, db, "author", "")
	tags := createTags(t, db, "AI", "SaaS")

	now := time.Now()
	tagged := createPostAt(t, db, author.ID, "tagged", now.Add(-time.Hour))
	bindTags(t, db, model.EntityPost, tagged.ID, tags["AI"], tags["SaaS"])
	plain := createPostAt(t, db, author.ID, "plain", now)

	feed, err := svc.List(ctx, viewer.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, plain.ID, feed[0].ID)
	assert.Zero(t, feed[0].MatchingTags)
}

func TestFeedAnnotatesIsLiked(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewFeedService(db)
	postSvc := NewPostService(db)

	viewer := createUser(t, db, "viewer", "")
	author := createUser(t, db, "author", "")

	liked := createPostAt(t, db, author.ID, "liked", time.Now())
	other := createPostAt(t, db, author.ID, "other", time.Now().Add(-time.Minute))

	first, err := postSvc.Like(ctx, viewer.ID, liked.ID)
	require.NoError(t, err)
	assert.True(t, first)

	feed, err := svc.List(ctx, viewer.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	for _, fp := range feed {
		switch fp.ID {
		case liked.ID:
			assert.True(t, fp.IsLiked)
		case other.ID:
			assert.False(t, fp.IsLiked)
		}
	}
}

func TestFeedEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeedService(db)
	viewer := createUser(t, db, "viewer", "")

	feed, err := svc.List(context.Background(), viewer.ID)
	require.NoError(t, err)
	assert.Empty(t, feed)
}
