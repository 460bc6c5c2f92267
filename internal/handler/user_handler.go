package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"streamify/backend/internal/auth"
	"streamify/backend/internal/recommend"
)

// UserHandler serves the partner recommendation listing.
type UserHandler struct {
	Recommend *recommend.Service
	Log       *zap.Logger
}

// GetRecommendedUsers godoc
// @Summary      List recommended language partners
// @Description  Returns onboarded users who are not the caller and not already the caller's friends.
// @Tags         users
// @Produce      json
// @Security     CookieAuth
// @Param        page  query     int  false  "Page number" default(1)
// @Param        limit query     int  false  "Items per page" default(10)
// @Success      200   {object}  PaginatedResponse[UserResponse]
// @Failure      401   {object}  ErrorResponse
// @Router       /users [get]
func (h *UserHandler) GetRecommendedUsers(c *gin.Context) {
	viewerID, _ := c.Get(auth.ContextUserID)

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	users, total, err := h.Recommend.GetRecommendations(c.Request.Context(), viewerID.(uint), page, limit)
	if err != nil {
		h.Log.Error("failed to fetch recommendations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, newUserResponse(user))
	}
	c.JSON(http.StatusOK, NewPaginatedResponse(responses, total, page, limit))
}
