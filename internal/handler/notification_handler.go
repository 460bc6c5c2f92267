package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"streamify/backend/internal/auth"
	"streamify/backend/internal/hub"
)

// NotificationHandler streams friend-activity events over SSE.
type NotificationHandler struct {
	Hub *hub.Hub
}

// Stream godoc
// @Summary      Subscribe to friend-activity notifications
// @Description  Server-sent events stream carrying friend_request and request_accepted events for the caller.
// @Tags         notifications
// @Produce      text/event-stream
// @Security     CookieAuth
// @Success      200
// @Failure      401  {object}  ErrorResponse
// @Router       /notifications/stream [get]
func (h *NotificationHandler) Stream(c *gin.Context) {
	viewerID, _ := c.Get(auth.ContextUserID)
	userID := viewerID.(uint)

	client := make(hub.Client, 8)
	h.Hub.Subscribe(userID, client)
	defer h.Hub.Unsubscribe(userID, client)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case message, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("message", string(message))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
