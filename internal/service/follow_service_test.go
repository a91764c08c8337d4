package service

import (
	"context"
	"testing"

	"Founder_Circle/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowSelfRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)
	alice := createUser(t, db, "alice", "")

	_, err := svc.Request(context.Background(), alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfFollow)
}

func TestFollowRequestIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewFollowService(db)

	alice := createUser(t, db, "alice", "")
	bob := createUser(t, db, "bob", "")

	f1, err := svc.Request(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	f2, err := svc.Request(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, f1.ID, f2.ID)

	var count int64
	require.NoError(t, db.Model(&model.Follow{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFollowAcceptOnlyByTarget(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewFollowService(db)

	alice := createUser(t, db, "alice", "")
	bob := createUser(t, db, "bob", "")
	eve := createUser(t, db, "eve", "")

	f, err := svc.Request(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Accept(ctx, eve.ID, f.ID), ErrForbidden)
	assert.ErrorIs(t, svc.Accept(ctx, alice.ID, f.ID), ErrForbidden)
	require.NoError(t, svc.Accept(ctx, bob.ID, f.ID))

	status, err := svc.Status(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, model.FollowStatusAccepted, status)
}

func TestFollowDeclineRemovesEdge(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewFollowService(db)

	alice := createUser(t, db, "alice", "")
	bob := createUser(t, db, "bob", "")

	f, err := svc.Request(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Decline(ctx, bob.ID, f.ID))

	status, err := svc.Status(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, status)

	// 拒绝后可以重新发起
	_, err = svc.Request(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
}

func TestFollowListsOnlyAccepted(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewFollowService(db)

	alice := createUser(t, db, "alice", "")
	bob := createUser(t, db, "bob", "")
	carol := createUser(t, db, "carol", "")

	f, err := svc.Request(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Accept(ctx, bob.ID, f.ID))
	// carol 的请求保持 pending
	_, err = svc.Request(ctx, carol.ID, bob.ID)
	require.NoError(t, err)

	followers, err := svc.Followers(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, alice.ID, followers[0].ID)

	requests, err := svc.Requests(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, carol.ID, requests[0].FollowerID)
	require.NotNil(t, requests[0].Follower)
	assert.Equal(t, "carol", requests[0].Follower.Username)
}

func TestFollowRequestWritesOutboxEvent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewFollowService(db)

	alice := createUser(t, db, "alice", "")
	bob := createUser(t, db, "bob", "")

	_, err := svc.Request(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	var events []model.EventOutbox
	require.NoError(t, db.Where("event_type = ?", model.EventFollow).Find(&events).Error)
	require.Len(t, events, 1)
	assert.Contains(t, events[0].Payload, alice.ID)
}
