package mysql

import (
	"context"
	"testing"

	"Founder_Circle/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTagTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Tag{}, &model.TagBinding{}))
	return db
}

func seedTag(t *testing.T, repo *TagRepository, name string) *model.Tag {
	t.Helper()
	tag := &model.Tag{ID: uuid.New().String(), Name: name}
	require.NoError(t, repo.Create(context.Background(), tag))
	return tag
}

func TestResolveNamesCaseInsensitive(t *testing.T) {
	db := newTagTestDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	ai := seedTag(t, repo, "AI")
	saas := seedTag(t, repo, "SaaS")

	ids, err := repo.ResolveNames(ctx, []string{"ai", " SAAS ", "Missing"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{ai.ID, saas.ID}, ids)
}

func TestResolveNamesAllUnknown(t *testing.T) {
	db := newTagTestDB(t)
	repo := NewTagRepository(db)

	ids, err := repo.ResolveNames(context.Background(), []string{"nope"})
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSetTagsReplacesExisting(t *testing.T) {
	db := newTagTestDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	ai := seedTag(t, repo, "AI")
	saas := seedTag(t, repo, "SaaS")
	fin := seedTag(t, repo, "Fintech")

	require.NoError(t, repo.SetTags(ctx, model.EntityUser, "u1", []string{ai.ID, saas.ID}))
	require.NoError(t, repo.SetTags(ctx, model.EntityUser, "u1", []string{fin.ID}))

	ids, err := repo.GetTagIDs(ctx, model.EntityUser, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{fin.ID}, ids)
}

func TestSetTagsEmptyClears(t *testing.T) {
	db := newTagTestDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	ai := seedTag(t, repo, "AI")
	require.NoError(t, repo.SetTags(ctx, model.EntityUser, "u1", []string{ai.ID}))
	require.NoError(t, repo.SetTags(ctx, model.EntityUser, "u1", nil))

	ids, err := repo.GetTagIDs(ctx, model.EntityUser, "u1")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSetTagsDeduplicates(t *testing.T) {
	db := newTagTestDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	ai := seedTag(t, repo, "AI")
	require.NoError(t, repo.SetTags(ctx, model.EntityUser, "u1", []string{ai.ID, ai.ID, ai.ID}))

	ids, err := repo.GetTagIDs(ctx, model.EntityUser, "u1")
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestBindingsScopedByEntityType(t *testing.T) {
	db := newTagTestDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	ai := seedTag(t, repo, "AI")
	// 同一个 id 在不同实体类型下互不影响
	require.NoError(t, repo.SetTags(ctx, model.EntityUser, "x", []string{ai.ID}))
	require.NoError(t, repo.SetTags(ctx, model.EntityPost, "x", nil))

	ids, err := repo.GetTagIDs(ctx, model.EntityUser, "x")
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestUsersHoldingTagsCounts(t *testing.T) {
	db := newTagTestDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	ai := seedTag(t, repo, "AI")
	saas := seedTag(t, repo, "SaaS")
	fin := seedTag(t, repo, "Fintech")

	require.NoError(t, repo.SetTags(ctx, model.EntityUser, "u1", []string{ai.ID, saas.ID, fin.ID}))
	require.NoError(t, repo.SetTags(ctx, model.EntityUser, "u2", []string{ai.ID}))
	// launch 绑定不计入
	require.NoError(t, repo.SetTags(ctx, model.EntityLaunch, "l1", []string{ai.ID, saas.ID, fin.ID}))

	holders, err := repo.UsersHoldingTags(ctx, []string{ai.ID, saas.ID, fin.ID})
	require.NoError(t, err)

	counts := map[string]int64{}
	for _, h := range holders {
		counts[h.UserID] = h.Matches
	}
	assert.EqualValues(t, 3, counts["u1"])
	assert.EqualValues(t, 1, counts["u2"])
	assert.NotContains(t, counts, "l1")
}

func TestGetTagIDsBatch(t *testing.T) {
	db := newTagTestDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	ai := seedTag(t, repo, "AI")
	saas := seedTag(t, repo, "SaaS")

	require.NoError(t, repo.SetTags(ctx, model.EntityPost, "p1", []string{ai.ID, saas.ID}))
	require.NoError(t, repo.SetTags(ctx, model.EntityPost, "p2", []string{saas.ID}))

	got, err := repo.GetTagIDsBatch(ctx, model.EntityPost, []string{"p1", "p2", "p3"})
	require.NoError(t, err)
	assert.Len(t, got["p1"], 2)
	assert.Len(t, got["p2"], 1)
	assert.Empty(t, got["p3"])
}
