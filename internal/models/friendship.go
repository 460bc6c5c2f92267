package models

import "time"

// Friendship is one direction of the symmetric friend relation. Accepting a
// request writes both directions in a single transaction, so for every
// (UserID, FriendID) row the mirror (FriendID, UserID) row exists as well.
type Friendship struct {
	UserID    uint `gorm:"primaryKey"`
	FriendID  uint `gorm:"primaryKey"`
	CreatedAt time.Time

	User   User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Friend User `gorm:"foreignKey:FriendID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
