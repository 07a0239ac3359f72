package domain

import "context"

// Storage is durable, string-keyed client-side storage. Absence is
// observable: Get reports false for keys that were never set or were deleted.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// TokenSource yields the current session token, if one is held.
type TokenSource interface {
	Token() (string, bool)
}

// SessionChecker reports whether the held session token has expired.
type SessionChecker interface {
	Expired() bool
}

// Prompter asks the user how to proceed with an interactive logout.
type Prompter interface {
	ConfirmLogout(ctx context.Context) (LogoutChoice, error)
}

// KeyExporter serializes private key material out of the client. Both
// operations report success to the user themselves; the boolean is for
// callers that need to know, never a substitute for the notification.
type KeyExporter interface {
	ToFile(keys PrivateKeys, label string) bool
	ToClipboard(keys PrivateKeys) bool
}

// Notifier surfaces short, non-blocking messages to the user.
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
