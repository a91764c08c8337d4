package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIfEmptyOnlyRunsOnce(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewTagService(db)

	require.NoError(t, svc.SeedIfEmpty(ctx))
	tags, err := svc.List(ctx)
	require.NoError(t, err)
	seeded := len(tags)
	assert.NotZero(t, seeded)

	// 再跑一遍不应翻倍
	require.NoError(t, svc.SeedIfEmpty(ctx))
	tags, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, seeded)
}

func TestSeedSkippedWhenCatalogNotEmpty(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewTagService(db)

	_, err := svc.Create(ctx, "Custom", "already here")
	require.NoError(t, err)

	require.NoError(t, svc.SeedIfEmpty(ctx))
	tags, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestCreateTagRejectsBlankName(t *testing.T) {
	db := newTestDB(t)
	svc := NewTagService(db)

	_, err := svc.Create(context.Background(), "   ", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
