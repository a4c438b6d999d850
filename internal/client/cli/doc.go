// Package cli provides the interactive ContactKeeper command-line client.
//
// It wires configuration, the token store, the authenticated API client and
// an interactive REPL. Typical flow: resolve any stored session on startup,
// then execute user commands against the contact book.
//
// Key features:
//   - Register / Login / Logout / password management
//   - List, search, show, add, edit, delete contacts
//   - Favorite toggling
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Navigate and runREPL for details.
package cli
