// Package client contains the console's side of the directory backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     session endpoints (Me, Login, Logout, Signup) and the user collection
//     (ListUsers, CreateUser, UpdateUser, DeleteUser).
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that tags every
//     request with an X-Request-Id and maps status codes to sentinel errors.
//  3. A cookie jar persisted in the local SQLite state database
//     (PersistentJar) and its bootstrap helpers (InitDatabase, RunMigrations)
//     applying embedded goose migrations.
//
// # Error Handling
//
// Transport conditions are exposed as sentinel errors that callers match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrUnexpectedStatus,
// ErrMalformedResponse. A success:false answer is a *RejectedError;
// OutcomeOf turns any of them into a models.Outcome.
//
// Concurrency & Contexts
//
// HTTPClient and PersistentJar are safe for concurrent use. All operations
// accept context.Context and honor cancellation and timeouts.
package client
