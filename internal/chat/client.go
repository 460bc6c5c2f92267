// Package chat wraps the hosted Stream provider that carries the actual
// messaging and video traffic. The backend only mints user tokens and keeps
// provider-side user records in sync; the vendor wire protocol is the SDK's
// problem.
package chat

import (
	"context"
	"fmt"
	"strconv"
	"time"

	stream "github.com/GetStream/stream-chat-go/v6"

	"streamify/backend/internal/models"
)

// Client is a caller-owned handle to the chat provider. Construct it once in
// main and pass it to the components that need it.
type Client struct {
	api *stream.Client
}

// New creates a provider client from API credentials.
func New(apiKey, apiSecret string) (*Client, error) {
	api, err := stream.NewClient(apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("create stream client: %w", err)
	}
	return &Client{api: api}, nil
}

// Token mints a provider token the frontend SDK uses to connect as the user.
func (c *Client) Token(userID uint) (string, error) {
	return c.api.CreateToken(strconv.FormatUint(uint64(userID), 10), time.Time{})
}

// UpsertUser mirrors the user's display data into the provider so chat
// participants resolve to names and avatars.
func (c *Client) UpsertUser(ctx context.Context, user *models.User) error {
	_, err := c.api.UpsertUser(ctx, &stream.User{
		ID:    strconv.FormatUint(uint64(user.ID), 10),
		Name:  user.FullName,
		Image: user.ProfilePic,
	})
	if err != nil {
		return fmt.Errorf("upsert stream user: %w", err)
	}
	return nil
}
