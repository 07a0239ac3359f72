package api

import (
	"context"
	"net/http"

	"securechat/internal/domain"
)

type usernameBody struct {
	Username string `json:"username"`
}

// MyFriends lists confirmed friends with their public keys.
func (c *Client) MyFriends(ctx context.Context) ([]domain.Friend, error) {
	var out []domain.Friend
	if err := c.get(ctx, "/friendships/my-friends", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PendingRequests lists inbound friend requests awaiting an answer.
func (c *Client) PendingRequests(ctx context.Context) ([]domain.FriendRequest, error) {
	var out []domain.FriendRequest
	if err := c.get(ctx, "/friendships/requests/pending", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SendFriendRequest asks addressee to become a friend.
func (c *Client) SendFriendRequest(ctx context.Context, addressee string) error {
	return c.post(ctx, "/friendships/requests", struct {
		AddresseeUsername string `json:"addresseeUsername"`
	}{addressee}, nil)
}

// AcceptFriendRequest accepts the pending request from requester.
func (c *Client) AcceptFriendRequest(ctx context.Context, requester string) error {
	return c.put(ctx, "/friendships/requests/accept", usernameBody{requester}, nil)
}

// DeclineFriendRequest declines the pending request from requester.
func (c *Client) DeclineFriendRequest(ctx context.Context, requester string) error {
	return c.put(ctx, "/friendships/requests/decline", usernameBody{requester}, nil)
}

// Unfriend removes an existing friendship.
func (c *Client) Unfriend(ctx context.Context, friend string) error {
	return c.do(ctx, http.MethodDelete, "/friendships/unfriend", usernameBody{friend}, nil)
}

// BlockUser blocks all contact from username.
func (c *Client) BlockUser(ctx context.Context, username string) error {
	return c.post(ctx, "/friendships/block", usernameBody{username}, nil)
}

// UnblockUser lifts a block.
func (c *Client) UnblockUser(ctx context.Context, username string) error {
	return c.post(ctx, "/friendships/unblock", usernameBody{username}, nil)
}
