// Package session resolves who is using the console and runs the login,
// signup and logout flows.
package session

import "github.com/dmitrijs2005/userconsole/internal/client/models"

// Session is either unauthenticated or carries the signed-in user.
type Session struct {
	user *models.User
}

func Unauthenticated() Session { return Session{} }

func Authenticated(u models.User) Session { return Session{user: &u} }

func (s Session) Authenticated() bool { return s.user != nil }

// User returns the signed-in user and whether there is one.
func (s Session) User() (models.User, bool) {
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Role is RoleUser until a session resolves.
func (s Session) Role() models.Role {
	if s.user == nil {
		return models.RoleUser
	}
	return s.user.Role
}

func (s Session) IsAdmin() bool { return s.Role() == models.RoleAdmin }
