package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Router builds the handler of the API:
//
//	GET    /auth/me          current session user
//	POST   /auth/login       sets the session cookie
//	POST   /auth/logout      clears it
//	POST   /users            self-registration
//	GET    /users            paginated, filtered list (session)
//	POST   /users/createUser admin only
//	PATCH  /users/{id}       admin only
//	DELETE /users/{id}       admin only
func (s *HTTPServer) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(s.withRequestLogging)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", s.login)
		r.Post("/logout", s.logout)

		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)
			r.Get("/me", s.me)
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", s.signup)

		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)
			r.Get("/", s.listUsers)

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Post("/createUser", s.createUser)
				r.Patch("/{id}", s.updateUser)
				r.Delete("/{id}", s.deleteUser)
			})
		})
	})

	return r
}
