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

func createLaunchAt(t *testing.T, db *gorm.DB, creatorID, name string, upvotes int, at time.Time) *model.Launch {
	t.Helper()
	l := &model.Launch{
		ID:         uuid.New().String(),
		CreatorID:  creatorID,
		Name:       name,
		Tagline:    name + " tagline",
		WebsiteURL: "https://example.com/" + name,
	}
	require.NoError(t, db.Create(l).Error)
	require.NoError(t, db.Model(l).Updates(map[string]any{
		"created_at":    at,
		"upvotes_count": upvotes,
	}).Error)
	l.CreatedAt = at
	l.UpvotesCount = int64(upvotes)
	return l
}

func TestLaunchCreateValidation(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewLaunchService(db)
	creator := createUser(t, db, "creator", "")
	createTags(t, db, "AI")

	cases := []CreateLaunchInput{
		{Tagline: "t", WebsiteURL: "https://x.com", Tags: []string{"AI"}},
		{Name: "n", WebsiteURL: "https://x.com", Tags: []string{"AI"}},
		{Name: "n", Tagline: "t", Tags: []string{"AI"}},
		{Name: "n", Tagline: "t", WebsiteURL: "https://x.com"},
	}
	for _, in := range cases {
		_, err := svc.Create(ctx, creator.ID, in)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	launch, err := svc.Create(ctx, creator.ID, CreateLaunchInput{
		Name: "n", Tagline: "t", WebsiteURL: "https://x.com", Tags: []string{"AI"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, launch.ID)
}

func TestLaunchCreateRejectsAllUnknownTags(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewLaunchService(db)
	creator := createUser(t, db, "creator", "")
	createTags(t, db, "AI")

	_, err := svc.Create(ctx, creator.ID, CreateLaunchInput{
		Name: "n", Tagline: "t", WebsiteURL: "https://x.com",
		Tags: []string{"NoSuchTag", "AlsoUnknown"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// 不能留下无标签的孤儿发布
	var count int64
	require.NoError(t, db.Model(&model.Launch{}).Count(&count).Error)
	assert.Zero(t, count)

	// 部分认识的标签名仍然可以创建
	launch, err := svc.Create(ctx, creator.ID, CreateLaunchInput{
		Name: "n", Tagline: "t", WebsiteURL: "https://x.com",
		Tags: []string{"AI", "NoSuchTag"},
	})
	require.NoError(t, err)
	require.NoError(t, db.Model(&model.TagBinding{}).
		Where("entity_type = ? AND entity_id = ?", model.EntityLaunch, launch.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLaunchTodayAndYesterdayWindows(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewLaunchService(db)
	creator := createUser(t, db, "creator", "")

	now := time.Now()
	today := createLaunchAt(t, db, creator.ID, "today", 1, now.Add(-time.Hour))
	yesterday := createLaunchAt(t, db, creator.ID, "yesterday", 5, now.Add(-30*time.Hour))

	got, err := svc.Today(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, today.ID, got[0].ID)

	got, err = svc.Yesterday(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, yesterday.ID, got[0].ID)
}

func TestLaunchYesterdayTopSevenByUpvotes(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewLaunchService(db)
	creator := createUser(t, db, "creator", "")

	at := time.Now().Add(-30 * time.Hour)
	for i := 0; i < 9; i++ {
		createLaunchAt(t, db, creator.ID, string(rune('a'+i)), i, at.Add(time.Duration(i)*time.Minute))
	}

	got, err := svc.Yesterday(ctx)
	require.NoError(t, err)
	require.Len(t, got, 7)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].UpvotesCount, got[i].UpvotesCount)
	}
	assert.EqualValues(t, 8, got[0].UpvotesCount)
}

func TestLaunchListReadSweepsExpired(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewLaunchService(db)
	creator := createUser(t, db, "creator", "")

	expired := createLaunchAt(t, db, creator.ID, "expired", 0, time.Now().Add(-49*time.Hour))

	// 任意列表端点读一次就应清掉过期发布
	_, err := svc.Today(ctx)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Launch{}).Where("id = ?", expired.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLaunchRecommendedThresholdAndOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewLaunchService(db)

	viewer := createUser(t, db, "viewer", "")
	creator := createUser(t, db, "creator", "")
	tags := createTags(t, db, "AI", "SaaS", "Fintech")
	bindTags(t, db, model.EntityUser, viewer.ID, tags["AI"], tags["SaaS"], tags["Fintech"])

	now := time.Now()
	oneMatch := createLaunchAt(t, db, creator.ID, "one", 100, now.Add(-time.Hour))
	bindTags(t, db, model.EntityLaunch, oneMatch.ID, tags["AI"])

	twoLow := createLaunchAt(t, db, creator.ID, "two-low", 1, now.Add(-time.Hour))
	bindTags(t, db, model.EntityLaunch, twoLow.ID, tags["AI"], tags["SaaS"])

	twoHigh := createLaunchAt(t, db, creator.ID, "two-high", 9, now.Add(-2*time.Hour))
	bindTags(t, db, model.EntityLaunch, twoHigh.ID, tags["AI"], tags["Fintech"])

	three := createLaunchAt(t, db, creator.ID, "three", 0, now.Add(-3*time.Hour))
	bindTags(t, db, model.EntityLaunch, three.ID, tags["AI"], tags["SaaS"], tags["Fintech"])

	got, err := svc.Recommended(ctx, viewer.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// 重合数优先，票数其次
	assert.Equal(t, three.ID, got[0].ID)
	assert.Equal(t, twoHigh.ID, got[1].ID)
	assert.Equal(t, twoLow.ID, got[2].ID)
}

func TestLaunchRecommendedEmptyWithoutViewerTags(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewLaunchService(db)

	viewer := createUser(t, db, "viewer", "")
	creator := createUser(t, db, "creator", "")
	tags := createTags(t, db, "AI", "SaaS")
	l := createLaunchAt(t, db, creator.ID, "l", 10, time.Now())
	bindTags(t, db, model.EntityLaunch, l.ID, tags["AI"], tags["SaaS"])

	got, err := svc.Recommended(ctx, viewer.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLaunchUpvoteIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewLaunchService(db)

	voter := createUser(t, db, "voter", "")
	creator := createUser(t, db, "creator", "")
	l := createLaunchAt(t, db, creator.ID, "l", 0, time.Now())

	res, err := svc.Upvote(ctx, l.ID, voter.ID)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.False(t, res.AlreadyUpvoted)

	res, err = svc.Upvote(ctx, l.ID, voter.ID)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.True(t, res.AlreadyUpvoted)

	got, err := svc.Get(ctx, l.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.UpvotesCount)
}

func TestLaunchComments(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewLaunchService(db)

	creator := createUser(t, db, "creator", "")
	commenter := createUser(t, db, "commenter", "")
	l := createLaunchAt(t, db, creator.ID, "l", 0, time.Now())

	_, err := svc.AddComment(ctx, commenter.ID, l.ID, "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.AddComment(ctx, commenter.ID, "missing", "great product")
	assert.ErrorIs(t, err, ErrNotFound)

	first, err := svc.AddComment(ctx, commenter.ID, l.ID, "great product")
	require.NoError(t, err)
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Minute)).Error)
	second, err := svc.AddComment(ctx, creator.ID, l.ID, "thanks!")
	require.NoError(t, err)

	got, err := svc.ListComments(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// 新评论在前
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)
	assert.Equal(t, "great product", got[1].Content)
}

func TestLaunchSweepRemovesComments(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewLaunchService(db)

	creator := createUser(t, db, "creator", "")
	commenter := createUser(t, db, "commenter", "")
	expired := createLaunchAt(t, db, creator.ID, "expired", 0, time.Now().Add(-49*time.Hour))
	_, err := svc.AddComment(ctx, commenter.ID, expired.ID, "nice")
	require.NoError(t, err)

	_, err = svc.List(ctx)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.LaunchComment{}).
		Where("launch_id = ?", expired.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLaunchDeleteOnlyCreator(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewLaunchService(db)

	creator := createUser(t, db, "creator", "")
	stranger := createUser(t, db, "stranger", "")
	l := createLaunchAt(t, db, creator.ID, "l", 0, time.Now())

	assert.ErrorIs(t, svc.Delete(ctx, stranger.ID, l.ID), ErrForbidden)
	require.NoError(t, svc.Delete(ctx, creator.ID, l.ID))
	_, err := svc.Get(ctx, l.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
