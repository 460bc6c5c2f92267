package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"streamify/backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.FriendRequest{}, &models.Friendship{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{
		FullName:     name,
		Email:        fmt.Sprintf("%s@example.com", name),
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestFindPairwise_IgnoresDirection(t *testing.T) {
	db := newTestDB(t)
	requests := NewFriendRequestStore(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	request := &models.FriendRequest{SenderID: alice.ID, RecipientID: bob.ID, Status: models.StatusPending}
	require.NoError(t, requests.Create(context.Background(), request))

	found, err := requests.FindPairwise(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, request.ID, found.ID)

	found, err = requests.FindPairwise(context.Background(), bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, request.ID, found.ID)

	_, err = requests.FindPairwise(context.Background(), alice.ID, alice.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreate_SelfRequestRejected(t *testing.T) {
	db := newTestDB(t)
	requests := NewFriendRequestStore(db)
	alice := createUser(t, db, "alice")

	err := requests.Create(context.Background(), &models.FriendRequest{
		SenderID:    alice.ID,
		RecipientID: alice.ID,
		Status:      models.StatusPending,
	})
	assert.ErrorIs(t, err, models.ErrSelfRequest)
}

func TestCreate_PairUniqueness(t *testing.T) {
	db := newTestDB(t)
	requests := NewFriendRequestStore(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	require.NoError(t, requests.Create(context.Background(), &models.FriendRequest{
		SenderID: alice.ID, RecipientID: bob.ID, Status: models.StatusPending,
	}))

	// The unique index over the ordered pair rejects the reverse direction too.
	err := requests.Create(context.Background(), &models.FriendRequest{
		SenderID: bob.ID, RecipientID: alice.ID, Status: models.StatusPending,
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.FriendRequest{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMarkAccepted_ExactlyOnce(t *testing.T) {
	db := newTestDB(t)
	requests := NewFriendRequestStore(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	request := &models.FriendRequest{SenderID: alice.ID, RecipientID: bob.ID, Status: models.StatusPending}
	require.NoError(t, requests.Create(context.Background(), request))

	require.NoError(t, requests.MarkAccepted(context.Background(), request.ID))
	assert.ErrorIs(t, requests.MarkAccepted(context.Background(), request.ID), ErrConflict)
	assert.ErrorIs(t, requests.MarkAccepted(context.Background(), request.ID+100), ErrConflict)
}

func TestAddFriendEdge_Idempotent(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	require.NoError(t, users.AddFriendEdge(context.Background(), alice.ID, bob.ID))
	require.NoError(t, users.AddFriendEdge(context.Background(), alice.ID, bob.ID))

	var count int64
	require.NoError(t, db.Model(&models.Friendship{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	isFriend, err := users.IsFriend(context.Background(), bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, isFriend)
}

func TestListFriends_Projection(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	require.NoError(t, users.AddFriendEdge(context.Background(), alice.ID, bob.ID))

	friends, err := users.ListFriends(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "bob", friends[0].FullName)
	// Private columns stay out of the projection.
	assert.Empty(t, friends[0].Email)
	assert.Empty(t, friends[0].PasswordHash)
}
