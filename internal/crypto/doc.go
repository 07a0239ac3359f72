// Package crypto generates the client's long-term asymmetric key material:
// an X25519 pair for key exchange and an Ed25519 pair for signing. All
// randomness comes from crypto/rand; generation failure is fatal and is
// never masked.
package crypto
