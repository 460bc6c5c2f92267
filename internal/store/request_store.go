package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"streamify/backend/internal/models"
)

// FriendRequestStore is the data access layer for friend requests. The only
// status transition it supports is pending to accepted.
type FriendRequestStore struct {
	db *gorm.DB
}

// NewFriendRequestStore creates a FriendRequestStore on top of the given handle.
func NewFriendRequestStore(db *gorm.DB) *FriendRequestStore {
	return &FriendRequestStore{db: db}
}

// WithTx returns a copy of the store bound to the given transaction handle.
func (s *FriendRequestStore) WithTx(tx *gorm.DB) *FriendRequestStore {
	return &FriendRequestStore{db: tx}
}

// Create inserts a new pending request. Returns ErrConflict when a request
// already exists for the unordered pair (unique index over pair_lo_id,
// pair_hi_id), which is what settles concurrent opposite-direction sends.
func (s *FriendRequestStore) Create(ctx context.Context, request *models.FriendRequest) error {
	if err := s.db.WithContext(ctx).Create(request).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// FindByID looks up a request by primary key.
func (s *FriendRequestStore) FindByID(ctx context.Context, id uint) (*models.FriendRequest, error) {
	var request models.FriendRequest
	if err := s.db.WithContext(ctx).First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

// FindPairwise looks up the request between two users ignoring direction.
func (s *FriendRequestStore) FindPairwise(ctx context.Context, idA, idB uint) (*models.FriendRequest, error) {
	lo, hi := idA, idB
	if lo > hi {
		lo, hi = hi, lo
	}
	var request models.FriendRequest
	err := s.db.WithContext(ctx).
		Where("pair_lo_id = ? AND pair_hi_id = ?", lo, hi).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

// MarkAccepted performs the single allowed status transition. The update is
// conditional on the current status, so of two concurrent accepts exactly one
// wins; the loser gets ErrConflict.
func (s *FriendRequestStore) MarkAccepted(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Model(&models.FriendRequest{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Update("status", models.StatusAccepted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}

// ListIncoming returns pending requests addressed to the user, sender preloaded,
// in insertion order.
func (s *FriendRequestStore) ListIncoming(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	return s.list(ctx, "recipient_id = ?", userID, models.StatusPending, "Sender")
}

// ListOutgoing returns pending requests sent by the user, recipient preloaded.
func (s *FriendRequestStore) ListOutgoing(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	return s.list(ctx, "sender_id = ?", userID, models.StatusPending, "Recipient")
}

// ListAcceptedBySender returns accepted requests sent by the user, recipient
// preloaded. Backs the "they accepted you" notification surface.
func (s *FriendRequestStore) ListAcceptedBySender(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	return s.list(ctx, "sender_id = ?", userID, models.StatusAccepted, "Recipient")
}

func (s *FriendRequestStore) list(ctx context.Context, cond string, userID uint, status models.FriendRequestStatus, preload string) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	err := s.db.WithContext(ctx).
		Where(cond, userID).
		Where("status = ?", status).
		Preload(preload, func(db *gorm.DB) *gorm.DB {
			return db.Select(ProjectionFields)
		}).
		Order("id").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
