package models

import "time"

// StoredCookie is a session cookie persisted between console runs so a
// restarted console keeps its backend session.
type StoredCookie struct {
	// URL is the origin the cookie was received from; cookiejar keys
	// cookies by it when they are replayed.
	URL string

	Name     string
	Value    string
	Domain   string
	Path     string
	Expires  time.Time
	Secure   bool
	HttpOnly bool
}

// Expired reports whether the cookie carries an expiry before now. Cookies
// without an expiry never expire locally.
func (c StoredCookie) Expired(now time.Time) bool {
	return !c.Expires.IsZero() && !c.Expires.After(now)
}
