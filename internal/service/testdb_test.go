package service

import (
	"context"
	"testing"

	"Founder_Circle/internal/model"
	"Founder_Circle/internal/repository/mysql"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个用例一个内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Tag{},
		&model.TagBinding{},
		&model.Post{},
		&model.PostLike{},
		&model.Comment{},
		&model.Community{},
		&model.CommunityMember{},
		&model.Follow{},
		&model.Launch{},
		&model.LaunchUpvote{},
		&model.LaunchComment{},
		&model.Conversation{},
		&model.Message{},
		&model.Broadcast{},
		&model.EventOutbox{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username, city string) *model.User {
	t.Helper()
	u := &model.User{
		ID:       uuid.New().String(),
		Username: username,
		Password: "x",
		Email:    username + "@example.com",
		City:     city,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createTags(t *testing.T, db *gorm.DB, names ...string) map[string]string {
	t.Helper()
	ids := make(map[string]string, len(names))
	for _, name := range names {
		tag := &model.Tag{ID: uuid.New().String(), Name: name}
		require.NoError(t, db.Create(tag).Error)
		ids[name] = tag.ID
	}
	return ids
}

func bindTags(t *testing.T, db *gorm.DB, entityType, entityID string, tagIDs ...string) {
	t.Helper()
	repo := mysql.NewTagRepository(db)
	require.NoError(t, repo.SetTags(context.Background(), entityType, entityID, tagIDs))
}
