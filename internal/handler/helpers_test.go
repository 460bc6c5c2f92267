package handler

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"streamify/backend/internal/auth"
	"streamify/backend/internal/models"
)

// testUserHeader carries the authenticated user id in handler tests, standing
// in for the JWT middleware.
const testUserHeader = "X-Test-User"

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

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if raw := c.GetHeader(testUserHeader); raw != "" {
			id, _ := strconv.ParseUint(raw, 10, 32)
			c.Set(auth.ContextUserID, uint(id))
		}
		c.Next()
	})
	return router
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

// stubChat satisfies ChatProvider without talking to the hosted provider.
type stubChat struct {
	upserts []uint
}

func (s *stubChat) Token(userID uint) (string, error) {
	return fmt.Sprintf("token-%d", userID), nil
}

func (s *stubChat) UpsertUser(_ context.Context, user *models.User) error {
	s.upserts = append(s.upserts, user.ID)
	return nil
}
