// Package auth signs and verifies the session tokens of the stub directory
// server and hashes account passwords.
package auth
