package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"streamify/backend/internal/recommend"
	"streamify/backend/internal/store"
)

func TestGetRecommendedUsers(t *testing.T) {
	db := newTestDB(t)
	users := store.NewUserStore(db)
	userHandler := &UserHandler{Recommend: recommend.NewService(users), Log: zap.NewNop()}

	router := newTestRouter()
	router.GET("/users", userHandler.GetRecommendedUsers)

	viewer := createUser(t, db, "viewer", true)
	partner := createUser(t, db, "partner", true)
	createUser(t, db, "lurker", false)
	friend := createUser(t, db, "friend", true)
	require.NoError(t, users.AddFriendEdge(context.Background(), viewer.ID, friend.ID))

	req := httptest.NewRequest(http.MethodGet, "/users?page=1&limit=10", nil)
	req.Header.Set(testUserHeader, fmt.Sprint(viewer.ID))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	var response PaginatedResponse[UserResponse]
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.EqualValues(t, 1, response.Meta.TotalItems)
	require.Len(t, response.Data, 1)
	assert.Equal(t, partner.ID, response.Data[0].ID)
}

func TestGetChatToken(t *testing.T) {
	chatHandler := &ChatHandler{Chat: &stubChat{}, Log: zap.NewNop()}

	router := newTestRouter()
	router.GET("/chat/token", chatHandler.GetToken)

	req := httptest.NewRequest(http.MethodGet, "/chat/token", nil)
	req.Header.Set(testUserHeader, "7")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	var response map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "token-7", response["token"])
}
