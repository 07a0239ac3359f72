package api

import "context"

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse carries the session token issued on register or login.
type AuthResponse struct {
	Token string `json:"token"`
}

// Register creates an account and returns its first session token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	var out AuthResponse
	if err := c.post(ctx, "/auth/register", req, &out); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}

// Login authenticates and returns a fresh session token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	var out AuthResponse
	if err := c.post(ctx, "/auth/login", req, &out); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}
