// Package store persists the client's authentication state: session token,
// user profile, and the two private keys. Durable persistence sits behind the
// domain.Storage port so tests can swap the file backend for an in-memory
// map; the Credentials type layers a write-through in-memory mirror on top.
package store
