package store

import (
	"encoding/json"
	"sync"

	"securechat/internal/domain"
)

// Slot keys in durable storage. Values are strings; key material is base64
// text, the user profile is JSON text. A slot is either present and non-empty
// or absent, never an empty string.
const (
	SlotToken             = "token"
	SlotUser              = "user"
	SlotX25519PrivateKey  = "x25519PrivateKey"
	SlotEd25519PrivateKey = "ed25519PrivateKey"
)

// Slots lists every credential slot key, in a fixed order.
func Slots() []string {
	return []string{SlotToken, SlotUser, SlotX25519PrivateKey, SlotEd25519PrivateKey}
}

// Credentials is the process-wide credential store. It mirrors the four
// durable slots in memory and writes through on every setter, so the mirror
// and the backing storage never diverge. Setting an empty value clears the
// slot instead of persisting an empty string.
type Credentials struct {
	mu      sync.Mutex
	backing domain.Storage

	token  string
	user   string
	x25519 string
	ed25519 string
}

// NewCredentials returns a store over backing, seeding the mirror from
// whatever survived the previous process.
func NewCredentials(backing domain.Storage) *Credentials {
	c := &Credentials{backing: backing}
	c.token, _ = backing.Get(SlotToken)
	c.user, _ = backing.Get(SlotUser)
	c.x25519, _ = backing.Get(SlotX25519PrivateKey)
	c.ed25519, _ = backing.Get(SlotEd25519PrivateKey)
	return c
}

// Token returns the session token, reporting absence.
func (c *Credentials) Token() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token, c.token != ""
}

// SetToken replaces the session token. An empty token clears the slot.
func (c *Credentials) SetToken(token string) error {
	return c.put(SlotToken, token, &c.token)
}

// User returns the stored profile. A missing or unparseable record reads as
// absent.
func (c *Credentials) User() (domain.User, bool) {
	c.mu.Lock()
	raw := c.user
	c.mu.Unlock()
	if raw == "" {
		return domain.User{}, false
	}
	var u domain.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return domain.User{}, false
	}
	return u, true
}

// SetUser replaces the stored profile. A nil user clears the slot.
func (c *Credentials) SetUser(u *domain.User) error {
	if u == nil {
		return c.put(SlotUser, "", &c.user)
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return c.put(SlotUser, string(raw), &c.user)
}

// X25519PrivateKey returns the key-exchange private key, reporting absence.
func (c *Credentials) X25519PrivateKey() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.x25519, c.x25519 != ""
}

// SetX25519PrivateKey stores the key-exchange private key. Empty clears.
func (c *Credentials) SetX25519PrivateKey(key string) error {
	return c.put(SlotX25519PrivateKey, key, &c.x25519)
}

// Ed25519PrivateKey returns the signing private key, reporting absence.
func (c *Credentials) Ed25519PrivateKey() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ed25519, c.ed25519 != ""
}

// SetEd25519PrivateKey stores the signing private key. Empty clears.
func (c *Credentials) SetEd25519PrivateKey(key string) error {
	return c.put(SlotEd25519PrivateKey, key, &c.ed25519)
}

// PrivateKeys returns whatever private key material is currently held.
func (c *Credentials) PrivateKeys() domain.PrivateKeys {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.PrivateKeys{
		X25519PrivateKey:  c.x25519,
		Ed25519PrivateKey: c.ed25519,
	}
}

// IsAuthenticated reports whether both a token and a profile are held.
func (c *Credentials) IsAuthenticated() bool {
	_, hasToken := c.Token()
	_, hasUser := c.User()
	return hasToken && hasUser
}

// ClearAll erases all four slots. Idempotent.
func (c *Credentials) ClearAll() error {
	for _, slot := range Slots() {
		var mirror *string
		switch slot {
		case SlotToken:
			mirror = &c.token
		case SlotUser:
			mirror = &c.user
		case SlotX25519PrivateKey:
			mirror = &c.x25519
		case SlotEd25519PrivateKey:
			mirror = &c.ed25519
		}
		if err := c.put(slot, "", mirror); err != nil {
			return err
		}
	}
	return nil
}

// put writes through to durable storage first, updating the mirror only once
// the backing store has the value. Empty values delete the entry.
func (c *Credentials) put(key, value string, mirror *string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if value == "" {
		if err := c.backing.Delete(key); err != nil {
			return err
		}
		*mirror = ""
		return nil
	}
	if err := c.backing.Set(key, value); err != nil {
		return err
	}
	*mirror = value
	return nil
}

var _ domain.TokenSource = (*Credentials)(nil)
