// Package httpapi serves the user directory over HTTP/JSON: the session
// endpoints under /auth and the collection endpoints under /users.
package httpapi
