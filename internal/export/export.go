// Package export serializes private key material out of the client so a user
// does not lose access to encrypted history when logging out or switching
// devices. Nothing here mutates the credential store.
package export

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"securechat/internal/domain"
)

const artifactSuffix = "-securechat-private-keys.json"

// Exporter writes key artifacts into dir and reports every outcome to the
// user. The booleans mean "it happened", not "it was requested".
type Exporter struct {
	dir    string
	notify domain.Notifier
	log    *zap.Logger
}

// NewExporter returns an exporter writing into dir.
func NewExporter(dir string, notify domain.Notifier, log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{dir: dir, notify: notify, log: log}
}

// Filename returns the artifact name for a label, falling back to "unknown"
// when no label is available.
func Filename(label string) string {
	if label == "" {
		label = "unknown"
	}
	return label + artifactSuffix
}

// ToFile writes the keys as pretty-printed JSON named after label.
func (e *Exporter) ToFile(keys domain.PrivateKeys, label string) bool {
	raw, err := marshal(keys)
	if err != nil {
		e.fail("Failed to save private keys to file", err)
		return false
	}
	path := filepath.Join(e.dir, Filename(label))
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		e.fail("Failed to save private keys to file", err)
		return false
	}
	e.log.Info("exported private keys", zap.String("path", path))
	e.notify.Success("Private keys have been saved to " + path + ". Please keep them secure!")
	return true
}

// ToClipboard writes the same serialization to the system clipboard.
func (e *Exporter) ToClipboard(keys domain.PrivateKeys) bool {
	raw, err := marshal(keys)
	if err != nil {
		e.fail("Failed to copy private keys", err)
		return false
	}
	if err := clipboard.WriteAll(string(raw)); err != nil {
		// Surface the keys so the user can still copy them by hand.
		e.notify.Warning("Failed to copy to clipboard. Please copy manually: " + string(raw))
		e.log.Warn("clipboard write failed", zap.Error(err))
		return false
	}
	e.notify.Success("Private keys have been copied to clipboard. Please save them securely!")
	return true
}

// ToEncryptedFile writes the keys sealed under a passphrase instead of in the
// clear. The artifact carries an ".enc" suffix to keep it distinct from the
// plaintext form.
func (e *Exporter) ToEncryptedFile(keys domain.PrivateKeys, label, passphrase string) bool {
	raw, err := marshal(keys)
	if err != nil {
		e.fail("Failed to save private keys to file", err)
		return false
	}
	blob, err := seal(passphrase, raw)
	if err != nil {
		e.fail("Failed to encrypt private keys", err)
		return false
	}
	path := filepath.Join(e.dir, Filename(label)+".enc")
	if err := os.WriteFile(path, blob, 0o600); err != nil {
		e.fail("Failed to save private keys to file", err)
		return false
	}
	e.log.Info("exported encrypted private keys", zap.String("path", path))
	e.notify.Success("Encrypted private keys have been saved to " + path + ".")
	return true
}

func (e *Exporter) fail(msg string, err error) {
	e.notify.Error(msg + ": " + err.Error())
	e.log.Error("key export failed", zap.Error(err))
}

func marshal(keys domain.PrivateKeys) ([]byte, error) {
	return json.MarshalIndent(keys, "", "  ")
}

var _ domain.KeyExporter = (*Exporter)(nil)
