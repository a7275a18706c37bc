// Package cli provides the interactive command-line host of the user
// directory console.
//
// It wires configuration, the local state database (persisted session
// cookies), the HTTP client and the users dashboard, then runs either a
// line-oriented REPL or the full-screen TUI. Typical flow: the users view is
// mounted, an unresolved session lands on the login screen, and after login
// the first page is printed.
//
// Key features:
//   - Login / Signup / Logout
//   - List, page through and filter users (filtering is admin only)
//   - Create, edit and delete users (admin only)
//
// The host is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
