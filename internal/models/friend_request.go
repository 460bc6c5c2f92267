package models

import (
	"errors"

	"gorm.io/gorm"
)

// FriendRequestStatus defines the state of a friend request between two users.
type FriendRequestStatus string

const (
	// StatusPending means a friend request has been sent but not yet accepted.
	StatusPending FriendRequestStatus = "pending"

	// StatusAccepted means the recipient accepted the request and the users are now friends.
	StatusAccepted FriendRequestStatus = "accepted"
)

// ErrSelfRequest is returned by the BeforeCreate hook when a user tries to
// friend themselves.
var ErrSelfRequest = errors.New("sender and recipient must differ")

// FriendRequest represents the invitation workflow between two users.
//
// PairLoID/PairHiID hold the participant ids in ascending order so that the
// unique index covers the unordered pair: at most one request may ever exist
// between two users, regardless of who initiated it. Concurrent A→B and B→A
// sends are settled by the database, not by application-level checks.
type FriendRequest struct {
	gorm.Model
	SenderID    uint                `gorm:"not null;index"`
	RecipientID uint                `gorm:"not null;index"`
	Status      FriendRequestStatus `gorm:"type:varchar(20);not null;default:'pending'"`

	PairLoID uint `gorm:"not null;uniqueIndex:idx_friend_requests_pair"`
	PairHiID uint `gorm:"not null;uniqueIndex:idx_friend_requests_pair"`

	Sender    User `gorm:"foreignKey:SenderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Recipient User `gorm:"foreignKey:RecipientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// BeforeCreate rejects self-requests and derives the ordered pair columns.
func (fr *FriendRequest) BeforeCreate(tx *gorm.DB) error {
	if fr.SenderID == fr.RecipientID {
		return ErrSelfRequest
	}
	fr.PairLoID, fr.PairHiID = fr.SenderID, fr.RecipientID
	if fr.PairLoID > fr.PairHiID {
		fr.PairLoID, fr.PairHiID = fr.PairHiID, fr.PairLoID
	}
	return nil
}
