// Package cookies persists the console's backend session cookies in the
// local SQLite state database.
package cookies
