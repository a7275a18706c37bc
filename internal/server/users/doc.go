// Package users is the in-memory user directory behind the stub server:
// the records, their repository and the account rules applied to them.
package users
