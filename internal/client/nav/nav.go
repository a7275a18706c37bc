// Package nav defines the routes of the console and the navigation contract
// the core uses to move between them. Page transitions themselves belong to
// the host (REPL or TUI).
package nav

import "sync"

// Route names a screen of the console.
type Route string

const (
	RouteLogin   Route = "/login"
	RouteSignup  Route = "/signup"
	RouteUsers   Route = "/users"
	RouteNewUser Route = "/users/new"
)

// Navigator performs a page transition.
type Navigator interface {
	Navigate(route Route)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(Route)

func (f NavigatorFunc) Navigate(r Route) { f(r) }

// History is a Navigator that records every transition. Hosts read Current
// to decide which screen to show. It is safe for concurrent use because the
// session resolver may navigate from a background goroutine.
type History struct {
	mu     sync.Mutex
	routes []Route
}

// NewHistory starts a history at the given route.
func NewHistory(start Route) *History {
	return &History{routes: []Route{start}}
}

func (h *History) Navigate(r Route) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.routes = append(h.routes, r)
}

// Current returns the most recent route, or "" for an empty history.
func (h *History) Current() Route {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.routes) == 0 {
		return ""
	}
	return h.routes[len(h.routes)-1]
}

// Routes returns every recorded route, oldest first.
func (h *History) Routes() []Route {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Route(nil), h.routes...)
}
