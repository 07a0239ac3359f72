package crypto

import "encoding/base64"

// B64 returns standard base64 encoding without newlines. All key material
// crossing a text boundary (store slots, uploads, exports) uses this form.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// UnB64 decodes the encoding produced by B64.
func UnB64(s string) ([]byte, error) { return base64.StdEncoding.DecodeString(s) }
