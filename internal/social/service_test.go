package social

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"streamify/backend/internal/models"
	"streamify/backend/internal/store"
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

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	users := store.NewUserStore(db)
	requests := store.NewFriendRequestStore(db)
	return NewService(db, users, requests), db
}

func createUser(t *testing.T, db *gorm.DB, name string, onboarded bool) *models.User {
	t.Helper()
	user := &models.User{
		FullName:     name,
		Email:        fmt.Sprintf("%s@example.com", name),
		PasswordHash: "x",
		IsOnboarded:  onboarded,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestSendFriendRequest_Self(t *testing.T) {
	service, db := newTestService(t)
	alice := createUser(t, db, "alice", true)

	_, err := service.SendFriendRequest(context.Background(), alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfRequest)
}

func TestSendFriendRequest_RecipientMissing(t *testing.T) {
	service, db := newTestService(t)
	alice := createUser(t, db, "alice", true)

	_, err := service.SendFriendRequest(context.Background(), alice.ID, alice.ID+100)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSendFriendRequest_CreatesPending(t *testing.T) {
	service, db := newTestService(t)
	alice := createUser(t, db, "alice", true)
	bob := createUser(t, db, "bob", true)

	request, err := service.SendFriendRequest(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, request.SenderID)
	assert.Equal(t, bob.ID, request.RecipientID)
	assert.Equal(t, models.StatusPending, request.Status)

	// No friend edge yet.
	friends, err := service.ListFriends(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)

	incoming, err := service.ListIncomingRequests(context.Background(), bob.ID)
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, "alice", incoming[0].Sender.FullName)

	outgoing, err := service.ListOutgoingRequests(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, outgoing, 1)
	assert.Equal(t, "bob", outgoing[0].Recipient.FullName)
}

func TestSendFriendRequest_DuplicatePair(t *testing.T) {
	service, db := newTestService(t)
	alice := createUser(t, db, "alice", true)
	bob := createUser(t, db, "bob", true)

	_, err := service.SendFriendRequest(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)

	// Same direction.
	_, err = service.SendFriendRequest(context.Background(), alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrRequestExists)

	// Opposite direction before acceptance.
	_, err = service.SendFriendRequest(context.Background(), bob.ID, alice.ID)
	assert.ErrorIs(t, err, ErrRequestExists)

	var count int64
	require.NoError(t, db.Model(&models.FriendRequest{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAcceptFriendRequest_Symmetry(t *testing.T) {
	service, db := newTestService(t)
	alice := createUser(t, db, "alice", true)
	bob := createUser(t, db, "bob", true)

	request, err := service.SendFriendRequest(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)

	accepted, err := service.AcceptFriendRequest(context.Background(), request.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, accepted.Status)

	aliceFriends, err := service.ListFriends(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceFriends, 1)
	assert.Equal(t, bob.ID, aliceFriends[0].ID)

	bobFriends, err := service.ListFriends(context.Background(), bob.ID)
	require.NoError(t, err)
	require.Len(t, bobFriends, 1)
	assert.Equal(t, alice.ID, bobFriends[0].ID)

	// Already friends now, in both directions.
	_, err = service.SendFriendRequest(context.Background(), alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrAlreadyFriends)
	_, err = service.SendFriendRequest(context.Background(), bob.ID, alice.ID)
	assert.ErrorIs(t, err, ErrAlreadyFriends)
}

func TestAcceptFriendRequest_WrongActor(t *testing.T) {
	service, db := newTestService(t)
	alice := createUser(t, db, "alice", true)
	bob := createUser(t, db, "bob", true)
	carol := createUser(t, db, "carol", true)

	request, err := service.SendFriendRequest(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)

	// The sender may not self-accept.
	_, err = service.AcceptFriendRequest(context.Background(), request.ID, alice.ID)
	assert.ErrorIs(t, err, ErrNotRecipient)

	// Neither may a third party.
	_, err = service.AcceptFriendRequest(context.Background(), request.ID, carol.ID)
	assert.ErrorIs(t, err, ErrNotRecipient)

	// The request is still pending.
	incoming, err := service.ListIncomingRequests(context.Background(), bob.ID)
	require.NoError(t, err)
	assert.Len(t, incoming, 1)
}

func TestAcceptFriendRequest_Missing(t *testing.T) {
	service, db := newTestService(t)
	bob := createUser(t, db, "bob", true)

	_, err := service.AcceptFriendRequest(context.Background(), 12345, bob.ID)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestAcceptFriendRequest_Twice(t *testing.T) {
	service, db := newTestService(t)
	alice := createUser(t, db, "alice", true)
	bob := createUser(t, db, "bob", true)

	request, err := service.SendFriendRequest(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)

	_, err = service.AcceptFriendRequest(context.Background(), request.ID, bob.ID)
	require.NoError(t, err)

	// Repeat accepts fail, they do not silently succeed.
	_, err = service.AcceptFriendRequest(context.Background(), request.ID, bob.ID)
	assert.ErrorIs(t, err, ErrRequestNotPending)

	// The edge exists exactly once per direction.
	var count int64
	require.NoError(t, db.Model(&models.Friendship{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestListAcceptedByMe(t *testing.T) {
	service, db := newTestService(t)
	alice := createUser(t, db, "alice", true)
	bob := createUser(t, db, "bob", true)

	request, err := service.SendFriendRequest(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)

	accepted, err := service.ListAcceptedByMe(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Empty(t, accepted)

	_, err = service.AcceptFriendRequest(context.Background(), request.ID, bob.ID)
	require.NoError(t, err)

	accepted, err = service.ListAcceptedByMe(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, "bob", accepted[0].Recipient.FullName)

	// The recipient's side lists nothing here; acceptance is keyed to the sender.
	accepted, err = service.ListAcceptedByMe(context.Background(), bob.ID)
	require.NoError(t, err)
	assert.Empty(t, accepted)
}
