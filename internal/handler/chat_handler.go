package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"streamify/backend/internal/auth"
)

// ChatHandler hands out provider tokens for the frontend chat/video SDK.
type ChatHandler struct {
	Chat ChatProvider
	Log  *zap.Logger
}

// GetToken godoc
// @Summary      Get a chat provider token
// @Description  Mints a token the frontend SDK uses to connect to the hosted chat/video provider as the caller.
// @Tags         chat
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  map[string]string "{"token": "..."}"
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /chat/token [get]
func (h *ChatHandler) GetToken(c *gin.Context) {
	viewerID, _ := c.Get(auth.ContextUserID)

	token, err := h.Chat.Token(viewerID.(uint))
	if err != nil {
		h.Log.Error("failed to mint chat token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
