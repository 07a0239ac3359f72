// Package api is the HTTP/JSON client for the SecureChat backend. The
// transport injects the bearer token from the credential store on every
// request and reacts to authorization failures through a caller-supplied
// hook; endpoint methods stay thin wrappers over shared JSON helpers.
package api
