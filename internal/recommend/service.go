// Package recommend selects language partner candidates for a viewer.
package recommend

import (
	"context"

	"streamify/backend/internal/models"
	"streamify/backend/internal/store"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Service computes the recommendation candidate pool: onboarded users who are
// neither the viewer nor already the viewer's friends. No server-side ranking
// is applied; results come back in stable id order so pagination is coherent.
type Service struct {
	users *store.UserStore
}

// NewService wires the recommendation service to the user directory.
func NewService(users *store.UserStore) *Service {
	return &Service{users: users}
}

// GetRecommendations returns one page of candidates plus the pool size.
func (s *Service) GetRecommendations(ctx context.Context, viewerID uint, page, limit int) ([]models.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := (page - 1) * limit
	return s.users.ListRecommendable(ctx, viewerID, offset, limit)
}
