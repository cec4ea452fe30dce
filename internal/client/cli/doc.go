// Package cli provides vaultctl, the interactive command-line client for
// vaultd.
//
// It wires configuration, the gRPC client, and a REPL. A background watcher
// pings vaultd and shows online/offline in the prompt.
//
// Key features:
//   - unlock / lock the vault (the first unlock sets the master password)
//   - list, search and show saved logins
//   - copy a secret to the clipboard
//   - add a login, optionally with a generated password
//   - find the login for a host, as autofill would
//   - generate passwords
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
