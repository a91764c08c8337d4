package service

import (
	"context"
	"testing"

	"Founder_Circle/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestUpdateProfileReplacesTags(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewUserService(db, nil)

	u := createUser(t, db, "founder", "")
	createTags(t, db, "AI", "SaaS", "Fintech")

	profile, err := svc.UpdateProfile(ctx, u.ID, ProfileUpdate{Tags: []string{"AI", "SaaS"}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"AI", "SaaS"}, profile.Tags)

	profile, err = svc.UpdateProfile(ctx, u.ID, ProfileUpdate{Tags: []string{"Fintech"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Fintech"}, profile.Tags)
}

func TestUpdateProfileTrimsCity(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewUserService(db, nil)

	u := createUser(t, db, "founder", "")
	profile, err := svc.UpdateProfile(ctx, u.ID, ProfileUpdate{City: strptr("  Bangalore  ")})
	require.NoError(t, err)
	assert.Equal(t, "Bangalore", profile.User.City)
}

func TestUpdateProfileNilFieldsUntouched(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewUserService(db, nil)

	u := createUser(t, db, "founder", "Mumbai")
	_, err := svc.UpdateProfile(ctx, u.ID, ProfileUpdate{Bio: strptr("building things")})
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", profile.User.City)
	assert.Equal(t, "building things", profile.User.Bio)
}

func TestSearchMatchesUsernameAndTag(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewUserService(db, nil)

	byName := createUser(t, db, "fintech_guru", "")
	tagged := createUser(t, db, "someone", "")
	createUser(t, db, "unrelated", "")
	tags := createTags(t, db, "Fintech")
	bindTags(t, db, model.EntityUser, tagged.ID, tags["Fintech"])

	users, err := svc.Search(ctx, "fintech", 20)
	require.NoError(t, err)

	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	assert.ElementsMatch(t, []string{byName.ID, tagged.ID}, ids)
}

func TestSearchEmptyQuery(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db, nil)
	createUser(t, db, "anyone", "")

	users, err := svc.Search(context.Background(), "   ", 20)
	require.NoError(t, err)
	assert.Empty(t, users)
}
