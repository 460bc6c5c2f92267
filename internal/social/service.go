// Package social owns the friend-request state machine: request creation,
// acceptance and the symmetric materialization of friend edges. The stores it
// coordinates are passive data holders; every transition rule lives here.
package social

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"streamify/backend/internal/models"
	"streamify/backend/internal/store"
)

// Service validates and executes friend-graph transitions.
type Service struct {
	db       *gorm.DB
	users    *store.UserStore
	requests *store.FriendRequestStore
}

// NewService wires the social graph service to its stores. The db handle is
// used only to scope multi-store writes into a single transaction.
func NewService(db *gorm.DB, users *store.UserStore, requests *store.FriendRequestStore) *Service {
	return &Service{db: db, users: users, requests: requests}
}

// SendFriendRequest creates a pending request from sender to recipient.
//
// It fails with ErrSelfRequest when sender and recipient are the same user,
// ErrUserNotFound when the recipient does not exist, ErrAlreadyFriends when
// the pair already has a friend edge, and ErrRequestExists when any request
// already exists between the pair in either direction. The pairwise unique
// index backs the existence check, so a lost race surfaces as ErrRequestExists
// rather than a duplicate record.
func (s *Service) SendFriendRequest(ctx context.Context, senderID, recipientID uint) (*models.FriendRequest, error) {
	if senderID == recipientID {
		return nil, ErrSelfRequest
	}

	if _, err := s.users.FindByID(ctx, recipientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("look up recipient: %w", err)
	}

	friends, err := s.users.IsFriend(ctx, senderID, recipientID)
	if err != nil {
		return nil, fmt.Errorf("check friendship: %w", err)
	}
	if friends {
		return nil, ErrAlreadyFriends
	}

	if _, err := s.requests.FindPairwise(ctx, senderID, recipientID); err == nil {
		return nil, ErrRequestExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("check existing request: %w", err)
	}

	request := &models.FriendRequest{
		SenderID:    senderID,
		RecipientID: recipientID,
		Status:      models.StatusPending,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		if errors.Is(err, store.ErrConflict) {
			// Lost the race against an opposite-direction send.
			return nil, ErrRequestExists
		}
		return nil, fmt.Errorf("create friend request: %w", err)
	}
	return request, nil
}

// AcceptFriendRequest transitions a pending request to accepted and writes
// both friend edges as one atomic unit. It returns the accepted request.
//
// It fails with ErrRequestNotFound when the request does not exist,
// ErrNotRecipient when the caller is not the request's recipient (the sender
// may not self-accept), and ErrRequestNotPending when the request was already
// accepted. The status update is conditional on the pending status, so of two
// concurrent accepts exactly one performs the transition.
func (s *Service) AcceptFriendRequest(ctx context.Context, requestID, acceptingUserID uint) (*models.FriendRequest, error) {
	request, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("look up request: %w", err)
	}

	if request.RecipientID != acceptingUserID {
		return nil, ErrNotRecipient
	}
	if request.Status != models.StatusPending {
		return nil, ErrRequestNotPending
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.requests.WithTx(tx).MarkAccepted(ctx, request.ID); err != nil {
			return err
		}
		return s.users.WithTx(tx).AddFriendEdge(ctx, request.SenderID, request.RecipientID)
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrRequestNotPending
		}
		return nil, fmt.Errorf("accept friend request: %w", err)
	}

	request.Status = models.StatusAccepted
	return request, nil
}

// ListIncomingRequests returns pending requests addressed to the user, each
// carrying the sender's public profile projection.
func (s *Service) ListIncomingRequests(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	return s.requests.ListIncoming(ctx, userID)
}

// ListOutgoingRequests returns pending requests sent by the user, each
// carrying the recipient's public profile projection.
func (s *Service) ListOutgoingRequests(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	return s.requests.ListOutgoing(ctx, userID)
}

// ListAcceptedByMe returns accepted requests the user sent, surfacing who
// accepted them.
func (s *Service) ListAcceptedByMe(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	return s.requests.ListAcceptedBySender(ctx, userID)
}

// ListFriends returns the user's friends with the public profile projection.
func (s *Service) ListFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.users.ListFriends(ctx, userID)
}
