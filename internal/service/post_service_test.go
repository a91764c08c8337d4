package service

import (
	"context"
	"testing"

	"Founder_Circle/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostLikeIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewPostService(db)

	author := createUser(t, db, "author", "")
	liker := createUser(t, db, "liker", "")
	post, err := svc.Create(ctx, author.ID, CreatePostInput{Content: "hello"})
	require.NoError(t, err)

	first, err := svc.Like(ctx, liker.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, first)

	again, err := svc.Like(ctx, liker.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, again)

	got, err := svc.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.LikesCount)
}

func TestPostUnlikeFloorsAtZero(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewPostService(db)

	author := createUser(t, db, "author", "")
	liker := createUser(t, db, "liker", "")
	post, err := svc.Create(ctx, author.ID, CreatePostInput{Content: "hello"})
	require.NoError(t, err)

	removed, err := svc.Unlike(ctx, liker.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	got, err := svc.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Zero(t, got.LikesCount)
}

func TestPostRepostPrefixAndCount(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewPostService(db)

	author := createUser(t, db, "author", "")
	reposter := createUser(t, db, "reposter", "")
	post, err := svc.Create(ctx, author.ID, CreatePostInput{Content: "original thought"})
	require.NoError(t, err)

	repost, err := svc.Repost(ctx, reposter.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Reposted: original thought", repost.Content)
	assert.Equal(t, reposter.ID, repost.AuthorID)

	got, err := svc.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.RepostsCount)
}

func TestPostDeleteOnlyAuthor(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewPostService(db)

	author := createUser(t, db, "author", "")
	stranger := createUser(t, db, "stranger", "")
	post, err := svc.Create(ctx, author.ID, CreatePostInput{Content: "mine"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, stranger.ID, post.ID), ErrForbidden)
	require.NoError(t, svc.Delete(ctx, author.ID, post.ID))
	_, err = svc.Get(ctx, post.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostDeleteCascadesBindings(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewPostService(db)

	author := createUser(t, db, "author", "")
	createTags(t, db, "AI")
	post, err := svc.Create(ctx, author.ID, CreatePostInput{Content: "tagged", Tags: []string{"AI"}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, author.ID, post.ID))

	var count int64
	require.NoError(t, db.Model(&model.TagBinding{}).
		Where("entity_type = ? AND entity_id = ?", model.EntityPost, post.ID).
		Count(&count).Error)
	assert.Zero(t, count)
}

func TestPostCommentBumpsCount(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewPostService(db)

	author := createUser(t, db, "author", "")
	commenter := createUser(t, db, "commenter", "")
	post, err := svc.Create(ctx, author.ID, CreatePostInput{Content: "discuss"})
	require.NoError(t, err)

	_, err = svc.AddComment(ctx, commenter.ID, post.ID, "nice")
	require.NoError(t, err)

	got, err := svc.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.CommentsCount)

	comments, err := svc.ListComments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "nice", comments[0].Content)
}

func TestPostCreateRejectsUnknownCommunity(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	author := createUser(t, db, "author", "")

	_, err := svc.Create(context.Background(), author.ID, CreatePostInput{
		Content:     "where am I",
		CommunityID: "missing",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
