package domain

// User is the backend's "current user" profile record. It mirrors the remote
// record and may go stale until the next login or register.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
}

// Friend is one entry of the friend list, carrying the peer's public keys so
// a confidential channel can be established without a second round trip.
type Friend struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	Nickname         string `json:"nickname"`
	Status           string `json:"status"`
	Ed25519PublicKey string `json:"ed25519PublicKey"`
	X25519PublicKey  string `json:"x25519PublicKey"`
}

// FriendRequest is a pending inbound friend request.
type FriendRequest struct {
	RequesterID string `json:"requesterId"`
	Username    string `json:"username"`
	Nickname    string `json:"nickname"`
	SentAt      string `json:"sentAt"`
}

// MessageType distinguishes plain text messages from file attachments.
type MessageType string

const (
	MessageText MessageType = "TEXT"
	MessageFile MessageType = "FILE"
)

// Message is one entry of a conversation. EncryptedContent is carried opaque;
// this client does not encrypt or decrypt payloads.
type Message struct {
	ID               string      `json:"id"`
	SenderUsername   string      `json:"senderUsername"`
	ReceiverUsername string      `json:"receiverUsername"`
	EncryptedContent string      `json:"encryptedContent"`
	MessageType      MessageType `json:"messageType"`
	Timestamp        string      `json:"timestamp"`
	FileURL          string      `json:"fileUrl,omitempty"`
	OriginalFilename string      `json:"originalFilename,omitempty"`
	Nonce            string      `json:"nonce,omitempty"`
}

// UploadedFile describes a file stored by the backend.
type UploadedFile struct {
	FileName         string `json:"fileName"`
	FileURL          string `json:"fileUrl"`
	OriginalFilename string `json:"originalFilename"`
	FileType         string `json:"fileType"`
	Size             int64  `json:"size"`
}
