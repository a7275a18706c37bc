package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/userconsole/internal/server/users"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func ok(w http.ResponseWriter, message string, u *users.User) {
	env := envelope{Success: true, Message: message}
	if u != nil {
		dto := toDTO(*u)
		env.User = &dto
	}
	writeJSON(w, http.StatusOK, env)
}

// reject answers a business-rule failure: 200 with success:false.
func reject(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, envelope{Message: message})
}

func fail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Message: message})
}

// rejection maps a service error to the message of a success:false answer.
// Errors that are not business rules report false.
func rejection(err error) (string, bool) {
	switch {
	case errors.Is(err, users.ErrInvalidCredentials):
		return "Invalid email or password", true
	case errors.Is(err, users.ErrAccountInactive):
		return "Account is inactive", true
	case errors.Is(err, users.ErrEmailTaken):
		return "Email already exists", true
	case errors.Is(err, users.ErrPasswordMismatch):
		return "Passwords do not match", true
	case errors.Is(err, users.ErrMissingFields):
		return "Required fields are missing", true
	}
	return "", false
}
