package api

import (
	"context"
	"net/url"

	"securechat/internal/domain"
)

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (domain.User, error) {
	var out domain.User
	if err := c.get(ctx, "/users/me", &out); err != nil {
		return domain.User{}, err
	}
	return out, nil
}

// UploadX25519Key associates the key-exchange public key with the account.
func (c *Client) UploadX25519Key(ctx context.Context, publicKey string) error {
	return c.put(ctx, "/users/me/x25519-key", struct {
		X25519PublicKey string `json:"x25519PublicKey"`
	}{publicKey}, nil)
}

// UploadEd25519Key associates the signing public key with the account.
func (c *Client) UploadEd25519Key(ctx context.Context, publicKey string) error {
	return c.put(ctx, "/users/me/ed25519-key", struct {
		Ed25519PublicKey string `json:"ed25519PublicKey"`
	}{publicKey}, nil)
}

// UserX25519Key fetches a peer's key-exchange public key.
func (c *Client) UserX25519Key(ctx context.Context, username string) (string, error) {
	var out struct {
		X25519PublicKey string `json:"x25519PublicKey"`
	}
	if err := c.get(ctx, "/users/"+url.PathEscape(username)+"/x25519-key", &out); err != nil {
		return "", err
	}
	return out.X25519PublicKey, nil
}

// UserEd25519Key fetches a peer's signing public key.
func (c *Client) UserEd25519Key(ctx context.Context, username string) (string, error) {
	var out struct {
		Ed25519PublicKey string `json:"ed25519PublicKey"`
	}
	if err := c.get(ctx, "/users/"+url.PathEscape(username)+"/ed25519-key", &out); err != nil {
		return "", err
	}
	return out.Ed25519PublicKey, nil
}
