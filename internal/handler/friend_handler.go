package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"streamify/backend/internal/auth"
	"streamify/backend/internal/hub"
	"streamify/backend/internal/social"
)

// FriendHandler exposes the friend-graph operations.
type FriendHandler struct {
	Social *social.Service
	Hub    *hub.Hub
	Log    *zap.Logger
}

// SendFriendRequest godoc
// @Summary      Send friend request
// @Description  Sends a friend request to another user.
// @Tags         friends
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Recipient User ID"
// @Success      200  {object}  FriendRequestResponse
// @Failure      400  {object}  ErrorResponse "Self-request"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Recipient not found"
// @Failure      409  {object}  ErrorResponse "Already friends or request exists"
// @Router       /friend-request/{id} [post]
func (h *FriendHandler) SendFriendRequest(c *gin.Context) {
	viewerID, _ := c.Get(auth.ContextUserID)
	recipientID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	request, err := h.Social.SendFriendRequest(c.Request.Context(), viewerID.(uint), uint(recipientID))
	if err != nil {
		respondSocialError(c, h.Log, err)
		return
	}

	h.Hub.Notify(request.RecipientID, hub.Event{
		Type:    hub.EventFriendRequest,
		Payload: gin.H{"requestId": request.ID, "senderId": request.SenderID},
	})

	c.JSON(http.StatusOK, newFriendRequestResponse(*request, false, false))
}

// AcceptFriendRequest godoc
// @Summary      Accept friend request
// @Description  Accepts a pending friend request addressed to the caller. Both friend edges are written atomically.
// @Tags         friends
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Friend Request ID"
// @Success      200  {object}  map[string]string "{"message": "Friend request accepted"}"
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Caller is not the recipient"
// @Failure      404  {object}  ErrorResponse "Request not found"
// @Failure      409  {object}  ErrorResponse "Request already accepted"
// @Router       /friend-request/{id}/accept [put]
func (h *FriendHandler) AcceptFriendRequest(c *gin.Context) {
	viewerID, _ := c.Get(auth.ContextUserID)
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request ID"})
		return
	}

	request, err := h.Social.AcceptFriendRequest(c.Request.Context(), uint(requestID), viewerID.(uint))
	if err != nil {
		respondSocialError(c, h.Log, err)
		return
	}

	// Tell the sender their invite went through.
	h.Hub.Notify(request.SenderID, hub.Event{
		Type:    hub.EventRequestAccepted,
		Payload: gin.H{"requestId": request.ID, "recipientId": request.RecipientID},
	})

	c.JSON(http.StatusOK, gin.H{"message": "Friend request accepted"})
}

// GetFriendRequests godoc
// @Summary      List friend requests
// @Description  Returns pending requests addressed to the caller and requests the caller sent that were accepted.
// @Tags         friends
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Router       /friend-requests [get]
func (h *FriendHandler) GetFriendRequests(c *gin.Context) {
	viewerID, _ := c.Get(auth.ContextUserID)

	incoming, err := h.Social.ListIncomingRequests(c.Request.Context(), viewerID.(uint))
	if err != nil {
		respondSocialError(c, h.Log, err)
		return
	}
	accepted, err := h.Social.ListAcceptedByMe(c.Request.Context(), viewerID.(uint))
	if err != nil {
		respondSocialError(c, h.Log, err)
		return
	}

	incomingResponses := make([]FriendRequestResponse, 0, len(incoming))
	for _, request := range incoming {
		incomingResponses = append(incomingResponses, newFriendRequestResponse(request, true, false))
	}
	acceptedResponses := make([]FriendRequestResponse, 0, len(accepted))
	for _, request := range accepted {
		acceptedResponses = append(acceptedResponses, newFriendRequestResponse(request, false, true))
	}

	c.JSON(http.StatusOK, gin.H{
		"incomingRequests": incomingResponses,
		"acceptedRequests": acceptedResponses,
	})
}

// GetOutgoingFriendRequests godoc
// @Summary      List outgoing friend requests
// @Description  Returns the caller's pending requests with each recipient's profile.
// @Tags         friends
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}   FriendRequestResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /outgoing-friend-requests [get]
func (h *FriendHandler) GetOutgoingFriendRequests(c *gin.Context) {
	viewerID, _ := c.Get(auth.ContextUserID)

	outgoing, err := h.Social.ListOutgoingRequests(c.Request.Context(), viewerID.(uint))
	if err != nil {
		respondSocialError(c, h.Log, err)
		return
	}

	responses := make([]FriendRequestResponse, 0, len(outgoing))
	for _, request := range outgoing {
		responses = append(responses, newFriendRequestResponse(request, false, true))
	}
	c.JSON(http.StatusOK, responses)
}

// GetMyFriends godoc
// @Summary      List friends
// @Description  Returns the caller's friends with their public profiles.
// @Tags         friends
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}   ProfilePreview
// @Failure      401  {object}  ErrorResponse
// @Router       /friends [get]
func (h *FriendHandler) GetMyFriends(c *gin.Context) {
	viewerID, _ := c.Get(auth.ContextUserID)

	friends, err := h.Social.ListFriends(c.Request.Context(), viewerID.(uint))
	if err != nil {
		respondSocialError(c, h.Log, err)
		return
	}

	previews := make([]ProfilePreview, 0, len(friends))
	for _, friend := range friends {
		previews = append(previews, newProfilePreview(friend))
	}
	c.JSON(http.StatusOK, previews)
}
