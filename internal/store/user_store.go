package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"streamify/backend/internal/models"
)

// ProjectionFields are the user columns exposed to other users (friend lists,
// request listings, recommendations).
var ProjectionFields = []string{"id", "full_name", "profile_pic", "native_language", "learning_language"}

// UserStore is the data access layer for user accounts and friend edges.
// It holds no business rules; transition logic lives in the social service.
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a UserStore on top of the given database handle.
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// WithTx returns a copy of the store bound to the given transaction handle.
func (s *UserStore) WithTx(tx *gorm.DB) *UserStore {
	return &UserStore{db: tx}
}

// Create inserts a new user. Returns ErrConflict when the email is taken.
func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// FindByID looks up a user by primary key.
func (s *UserStore) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail looks up a user by email address.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Update persists changes to an existing user.
func (s *UserStore) Update(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Save(user).Error
}

// AddFriendEdge materializes the symmetric friend relation between two users.
// Both directions are written; re-adding an existing edge is a no-op.
func (s *UserStore) AddFriendEdge(ctx context.Context, idA, idB uint) error {
	edges := []models.Friendship{
		{UserID: idA, FriendID: idB},
		{UserID: idB, FriendID: idA},
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edges).Error
}

// IsFriend reports whether an edge from idA to idB exists. Edges are kept
// symmetric, so one direction is enough to answer for the pair.
func (s *UserStore) IsFriend(ctx context.Context, idA, idB uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Friendship{}).
		Where("user_id = ? AND friend_id = ?", idA, idB).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListFriends returns the friends of a user, restricted to the public
// projection fields, in stable id order.
func (s *UserStore) ListFriends(ctx context.Context, id uint) ([]models.User, error) {
	var friends []models.User
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Select(ProjectionFields).
		Joins("JOIN friendships ON friendships.friend_id = users.id").
		Where("friendships.user_id = ?", id).
		Order("users.id").
		Find(&friends).Error
	if err != nil {
		return nil, err
	}
	return friends, nil
}

// ListRecommendable returns onboarded users other than the viewer and the
// viewer's current friends, paginated in stable id order.
func (s *UserStore) ListRecommendable(ctx context.Context, viewerID uint, offset, limit int) ([]models.User, int64, error) {
	friendIDs := s.db.Model(&models.Friendship{}).
		Select("friend_id").
		Where("user_id = ?", viewerID)

	query := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id <> ?", viewerID).
		Where("is_onboarded = ?", true).
		Where("id NOT IN (?)", friendIDs)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := query.Order("id").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
