package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method    string
	path      string
	query     string
	body      map[string]any
	requestID string
	ctype     string
}

// newServer serves status/body for every request and records the last one.
func newServer(t *testing.T, status int, body string) (*HTTPClient, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.requestID = r.Header.Get(RequestIDHeader)
		rec.ctype = r.Header.Get("Content-Type")
		rec.body = nil
		if b, _ := io.ReadAll(r.Body); len(b) > 0 {
			_ = json.Unmarshal(b, &rec.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.URL)
	require.NoError(t, err)
	return c, rec
}

func TestNewHTTPClient_RejectsBadURL(t *testing.T) {
	_, err := NewHTTPClient("ftp://example.com")
	assert.Error(t, err)

	_, err = NewHTTPClient("://nope")
	assert.Error(t, err)
}

func TestMe_Success(t *testing.T) {
	c, rec := newServer(t, 200, `{"success":true,"user":{"id":3,"firstName":"Ann","lastName":"Lee","email":"ann@x.com","phone":"1234567890","role":"ADMIN","status":"Active"}}`)

	u, err := c.Me(context.Background())
	require.NoError(t, err)

	want := models.User{ID: 3, FirstName: "Ann", LastName: "Lee", Email: "ann@x.com", Phone: "1234567890", Role: models.RoleAdmin, Status: models.StatusActive}
	if diff := cmp.Diff(want, u); diff != "" {
		t.Fatalf("user mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/auth/me", rec.path)
	_, err = uuid.Parse(rec.requestID)
	assert.NoError(t, err, "request id must be a uuid")
	assert.Empty(t, rec.ctype, "GET carries no body")
}

func TestMe_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"not success", 200, `{"success":false}`, ErrUnauthorized},
		{"no user", 200, `{"success":true}`, ErrMalformedResponse},
		{"not json", 200, `<html>`, ErrMalformedResponse},
		{"401", 401, `{"success":false}`, ErrUnauthorized},
		{"403", 403, ``, ErrUnauthorized},
		{"500", 500, ``, ErrUnavailable},
		{"404", 404, ``, ErrUnexpectedStatus},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newServer(t, tc.status, tc.body)
			_, err := c.Me(context.Background())
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestUnavailable_WhenServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewHTTPClient(url, WithTimeout(time.Second))
	require.NoError(t, err)

	_, err = c.ListUsers(context.Background(), models.PageQuery{Page: 1})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSubmit_SuccessAndRejection(t *testing.T) {
	c, rec := newServer(t, 200, `{"success":true,"message":"Logged in"}`)

	msg, err := c.Login(context.Background(), models.Credentials{Email: "a@b.co", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, "Logged in", msg)
	assert.Equal(t, "/auth/login", rec.path)
	assert.Equal(t, "application/json", rec.ctype)
	assert.Equal(t, map[string]any{"email": "a@b.co", "password": "password1"}, rec.body)

	c, _ = newServer(t, 200, `{"success":false,"message":"Email already exists"}`)
	_, err = c.CreateUser(context.Background(), models.CreateUserRequest{Email: "a@b.co"})
	var rej *RejectedError
	require.True(t, errors.As(err, &rej))
	assert.Equal(t, "Email already exists", rej.Message)
}

func TestRoutes(t *testing.T) {
	ctx := context.Background()
	c, rec := newServer(t, 200, `{"success":true}`)

	_, err := c.Logout(ctx)
	require.NoError(t, err)
	assert.Equal(t, [2]string{http.MethodPost, "/auth/logout"}, [2]string{rec.method, rec.path})

	_, err = c.Signup(ctx, models.SignupRequest{Email: "a@b.co", ConfirmPassword: "x"})
	require.NoError(t, err)
	assert.Equal(t, [2]string{http.MethodPost, "/users"}, [2]string{rec.method, rec.path})
	assert.Equal(t, "x", rec.body["confirmPassword"])

	_, err = c.CreateUser(ctx, models.CreateUserRequest{Email: "a@b.co"})
	require.NoError(t, err)
	assert.Equal(t, [2]string{http.MethodPost, "/users/createUser"}, [2]string{rec.method, rec.path})
	assert.Equal(t, "User", rec.body["role"])
	assert.Equal(t, "Active", rec.body["status"])

	phone := "123-456-7890"
	_, err = c.UpdateUser(ctx, models.Patch{ID: 9, Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, [2]string{http.MethodPatch, "/users/9"}, [2]string{rec.method, rec.path})
	assert.Equal(t, map[string]any{"id": float64(9), "phone": phone}, rec.body)

	require.NoError(t, c.DeleteUser(ctx, 9))
	assert.Equal(t, [2]string{http.MethodDelete, "/users/9"}, [2]string{rec.method, rec.path})
	assert.Nil(t, rec.body)
}

func TestDeleteUser_NotSuccessIsRejected(t *testing.T) {
	c, _ := newServer(t, 200, `{"success":false}`)
	err := c.DeleteUser(context.Background(), 1)
	var rej *RejectedError
	assert.True(t, errors.As(err, &rej))
}

func TestListUsers_QueryEncoding(t *testing.T) {
	c, rec := newServer(t, 200, `{"users":[{"id":1,"firstName":"A","lastName":"B","email":"a@b.co","phone":"1234567890","role":"User","status":"Inactive"}],"total":11,"page":2}`)

	res, err := c.ListUsers(context.Background(), models.PageQuery{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, "limit=10&page=2", rec.query)
	assert.Equal(t, 11, res.Total)
	assert.Equal(t, 2, res.Page)
	require.Len(t, res.Users, 1)
	assert.Equal(t, models.StatusInactive, res.Users[0].Status)

	_, err = c.ListUsers(context.Background(), models.PageQuery{Page: 1, Field: models.FilterPhone, Text: "(123) 456"})
	require.NoError(t, err)
	assert.Equal(t, "field=phone&limit=10&page=1&search=%28123%29+456", rec.query)
}

func TestListUsers_RejectsIncompletePage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"rejected", `{"success":false,"message":"Not authenticated"}`},
		{"empty object", `{}`},
		{"no total", `{"users":[],"page":1}`},
		{"no users", `{"total":3,"page":1}`},
		{"null users", `{"users":null,"total":0,"page":1}`},
		{"negative total", `{"users":[],"total":-1,"page":1}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newServer(t, 200, tc.body)
			res, err := c.ListUsers(context.Background(), models.PageQuery{Page: 1})
			assert.ErrorIs(t, err, ErrMalformedResponse)
			assert.Zero(t, res.Total)
			assert.Nil(t, res.Users)
		})
	}
}

func TestListUsers_EmptyPageIsValid(t *testing.T) {
	c, _ := newServer(t, 200, `{"users":[],"total":0,"page":1}`)
	res, err := c.ListUsers(context.Background(), models.PageQuery{Page: 1})
	require.NoError(t, err)
	assert.Empty(t, res.Users)
	assert.Equal(t, 1, res.Page)
}

func TestCookiesTravelThroughJar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "tok", Path: "/", HttpOnly: true})
			_, _ = io.WriteString(w, `{"success":true}`)
		case "/auth/me":
			if c, err := r.Cookie("session"); err != nil || c.Value != "tok" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, `{"success":false}`)
				return
			}
			_, _ = io.WriteString(w, `{"success":true,"user":{"id":1,"role":"User","status":"Active"}}`)
		}
	}))
	defer srv.Close()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	c, err := NewHTTPClient(srv.URL, WithJar(jar))
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()
	_, err = c.Me(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.Login(ctx, models.Credentials{})
	require.NoError(t, err)

	u, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, models.Succeeded(""), OutcomeOf(nil, "x"))
	assert.Equal(t, models.Rejected("taken"), OutcomeOf(&RejectedError{Message: "taken"}, "x"))
	assert.Equal(t, models.Failed("Failed to create user"), OutcomeOf(ErrUnavailable, "Failed to create user"))
	assert.Equal(t, "rejected", (&RejectedError{}).Error())
}
