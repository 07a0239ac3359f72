package api

import (
	"context"
	"net/url"

	"securechat/internal/domain"
)

// SendMessageRequest delivers one message. EncryptedContent is opaque to this
// client; FileURL and OriginalFilename accompany FILE messages only.
type SendMessageRequest struct {
	ReceiverUsername string             `json:"receiverUsername"`
	EncryptedContent string             `json:"encryptedContent"`
	MessageType      domain.MessageType `json:"messageType"`
	FileURL          string             `json:"fileUrl,omitempty"`
	OriginalFilename string             `json:"originalFilename,omitempty"`
}

// SendMessage posts a message to the backend.
func (c *Client) SendMessage(ctx context.Context, req SendMessageRequest) (domain.Message, error) {
	var out domain.Message
	if err := c.post(ctx, "/messages", req, &out); err != nil {
		return domain.Message{}, err
	}
	return out, nil
}

// Conversation fetches the message history with another user.
func (c *Client) Conversation(ctx context.Context, otherUsername string) ([]domain.Message, error) {
	var out []domain.Message
	if err := c.get(ctx, "/messages/"+url.PathEscape(otherUsername), &out); err != nil {
		return nil, err
	}
	return out, nil
}
