package httpapi

import (
	"context"
	"net/http"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/userconsole/internal/server/auth"
	"github.com/dmitrijs2005/userconsole/internal/server/users"
)

type ctxKey string

const userKey ctxKey = "user"

func (s *HTTPServer) withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info(r.Context(), "request",
			"request_id", chiMiddleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"elapsed", time.Since(start),
		)
	})
}

// requireSession resolves the session cookie to a user and stores it in
// the request context. A missing, invalid or expired session is a 401.
func (s *HTTPServer) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(sessionCookie)
		if err != nil {
			fail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		id, err := auth.GetUserIDFromToken(c.Value, s.jwtSecret)
		if err != nil {
			s.logger.Debug(r.Context(), "session rejected", "error", err)
			fail(w, http.StatusUnauthorized, "Session expired")
			return
		}

		u, err := s.users.Get(r.Context(), id)
		if err != nil || u.Status != users.StatusActive {
			fail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, *u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := userFromContext(r.Context())
		if !ok || u.Role != users.RoleAdmin {
			fail(w, http.StatusForbidden, "Admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func userFromContext(ctx context.Context) (users.User, bool) {
	u, ok := ctx.Value(userKey).(users.User)
	return u, ok
}
