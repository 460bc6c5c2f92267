package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"streamify/backend/internal/models"
	"streamify/backend/internal/social"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Message string `json:"message" example:"An error message"`
}

// UserResponse is the authenticated user's own profile.
type UserResponse struct {
	ID               uint   `json:"id" example:"1"`
	FullName         string `json:"fullName" example:"Maria Silva"`
	Email            string `json:"email" example:"maria@example.com"`
	Bio              string `json:"bio"`
	ProfilePic       string `json:"profilePic"`
	NativeLanguage   string `json:"nativeLanguage" example:"portuguese"`
	LearningLanguage string `json:"learningLanguage" example:"japanese"`
	Location         string `json:"location"`
	IsOnboarded      bool   `json:"isOnboarded"`
}

// ProfilePreview is the public projection of a user shown to other users.
type ProfilePreview struct {
	ID               uint   `json:"id" example:"1"`
	FullName         string `json:"fullName" example:"Maria Silva"`
	ProfilePic       string `json:"profilePic"`
	NativeLanguage   string `json:"nativeLanguage" example:"portuguese"`
	LearningLanguage string `json:"learningLanguage" example:"japanese"`
}

// FriendRequestResponse is the wire shape of a friend request. Sender or
// recipient is populated depending on which side the caller is looking at.
type FriendRequestResponse struct {
	ID          uint            `json:"id" example:"1"`
	SenderID    uint            `json:"senderId" example:"1"`
	RecipientID uint            `json:"recipientId" example:"2"`
	Status      string          `json:"status" example:"pending"`
	CreatedAt   time.Time       `json:"createdAt"`
	Sender      *ProfilePreview `json:"sender,omitempty"`
	Recipient   *ProfilePreview `json:"recipient,omitempty"`
}

func newUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:               user.ID,
		FullName:         user.FullName,
		Email:            user.Email,
		Bio:              user.Bio,
		ProfilePic:       user.ProfilePic,
		NativeLanguage:   user.NativeLanguage,
		LearningLanguage: user.LearningLanguage,
		Location:         user.Location,
		IsOnboarded:      user.IsOnboarded,
	}
}

func newProfilePreview(user models.User) ProfilePreview {
	return ProfilePreview{
		ID:               user.ID,
		FullName:         user.FullName,
		ProfilePic:       user.ProfilePic,
		NativeLanguage:   user.NativeLanguage,
		LearningLanguage: user.LearningLanguage,
	}
}

func newFriendRequestResponse(request models.FriendRequest, withSender, withRecipient bool) FriendRequestResponse {
	response := FriendRequestResponse{
		ID:          request.ID,
		SenderID:    request.SenderID,
		RecipientID: request.RecipientID,
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt,
	}
	if withSender {
		sender := newProfilePreview(request.Sender)
		response.Sender = &sender
	}
	if withRecipient {
		recipient := newProfilePreview(request.Recipient)
		response.Recipient = &recipient
	}
	return response
}

// respondSocialError maps the social error taxonomy onto stable status codes.
// Unknown errors are logged and hidden behind a generic message so store
// internals never leak to clients.
func respondSocialError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, social.ErrSelfRequest):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, social.ErrUserNotFound), errors.Is(err, social.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, social.ErrNotRecipient):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, social.ErrAlreadyFriends),
		errors.Is(err, social.ErrRequestExists),
		errors.Is(err, social.ErrRequestNotPending):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		log.Error("social operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
	}
}
