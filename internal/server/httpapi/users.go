package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/userconsole/internal/server/users"
)

func (s *HTTPServer) signup(w http.ResponseWriter, r *http.Request) {
	var req registrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request")
		return
	}

	u, err := s.users.Signup(r.Context(), req.registration())
	if err != nil {
		s.answerError(w, r, err)
		return
	}
	if err := s.setSession(w, u); err != nil {
		s.answerError(w, r, err)
		return
	}
	ok(w, "Account created", u)
}

func (s *HTTPServer) createUser(w http.ResponseWriter, r *http.Request) {
	var req registrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request")
		return
	}

	u, err := s.users.Create(r.Context(), req.registration())
	if err != nil {
		s.answerError(w, r, err)
		return
	}
	ok(w, "User created", u)
}

func (s *HTTPServer) listUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	query := users.ListQuery{
		Page:   page,
		Limit:  limit,
		Field:  q.Get("field"),
		Search: q.Get("search"),
	}
	res, err := s.users.List(r.Context(), query)
	if err != nil {
		s.answerError(w, r, err)
		return
	}

	if query.Page < 1 {
		query.Page = 1
	}
	out := listResponse{Users: make([]userDTO, 0, len(res.Users)), Total: res.Total, Page: query.Page}
	for _, u := range res.Users {
		out.Users = append(out.Users, toDTO(u))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *HTTPServer) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req patchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request")
		return
	}

	u, err := s.users.Update(r.Context(), id, req.patch())
	if errors.Is(err, users.ErrNotFound) {
		fail(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		s.answerError(w, r, err)
		return
	}
	ok(w, "User updated", u)
}

func (s *HTTPServer) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		fail(w, http.StatusBadRequest, "invalid id")
		return
	}

	err = s.users.Delete(r.Context(), id)
	if errors.Is(err, users.ErrNotFound) {
		fail(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		s.answerError(w, r, err)
		return
	}
	ok(w, "User deleted", nil)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
