// Package commands defines the securechat CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - register      Create an account and generate its key pairs
//   - login         Authenticate on this device
//   - logout        End the session, optionally exporting keys first
//   - whoami        Show the authenticated profile and key state
//   - export-keys   Write or copy the private keys
//   - keys          Fetch a peer's public keys
//   - friends       Manage the friend list and requests
//   - msg           Send messages and read conversations
//   - upload        Upload a file, optionally sending it to a friend
//
// # Implementation
//
// The root command loads the config and builds a dependency graph (storage,
// credential store, backend client, orchestrator, guard) before any
// subcommand runs. Protected subcommands pass through the guard, which
// forces a non-interactive logout when the session token has expired.
package commands
