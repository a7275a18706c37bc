package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/server/auth"
	"github.com/dmitrijs2005/userconsole/internal/server/users"
)

const sessionCookie = "session"

func (s *HTTPServer) setSession(w http.ResponseWriter, u *users.User) error {
	token, err := auth.GenerateToken(u.ID, s.jwtSecret, s.sessionTTL)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(s.sessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *HTTPServer) me(w http.ResponseWriter, r *http.Request) {
	u, _ := userFromContext(r.Context())
	ok(w, "", &u)
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request")
		return
	}

	u, err := s.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		s.answerError(w, r, err)
		return
	}

	if err := s.setSession(w, u); err != nil {
		s.answerError(w, r, err)
		return
	}
	s.logger.Info(r.Context(), "user logged in", "user_id", u.ID)
	ok(w, "Login successful", u)
}

func (s *HTTPServer) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	ok(w, "Logged out", nil)
}

// answerError writes a success:false answer for business-rule errors and
// a 500 for everything else.
func (s *HTTPServer) answerError(w http.ResponseWriter, r *http.Request, err error) {
	if msg, ok := rejection(err); ok {
		reject(w, msg)
		return
	}
	s.logger.Error(r.Context(), "request failed", "error", err)
	fail(w, http.StatusInternalServerError, "internal error")
}
