package session

import (
	"context"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/nav"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// Identifier is the identity-check endpoint.
type Identifier interface {
	Me(ctx context.Context) (models.User, error)
}

// Resolver asks the backend who owns the current session.
type Resolver struct {
	id  Identifier
	nav nav.Navigator
	log logging.Logger
}

func NewResolver(id Identifier, n nav.Navigator, log logging.Logger) *Resolver {
	return &Resolver{id: id, nav: n, log: log}
}

// Resolve issues one identity request. Any failure sends the console to the
// login route and yields an unauthenticated session. There are no retries.
func (r *Resolver) Resolve(ctx context.Context) Session {
	u, err := r.id.Me(ctx)
	if err != nil {
		r.log.Warn(ctx, "session not resolved", "error", err)
		r.nav.Navigate(nav.RouteLogin)
		return Unauthenticated()
	}
	r.log.Debug(ctx, "session resolved", "user_id", u.ID, "role", u.Role)
	return Authenticated(u)
}
