package session

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/userconsole/internal/client/client"
	"github.com/dmitrijs2005/userconsole/internal/client/client/clienttest"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/nav"
	"github.com/dmitrijs2005/userconsole/internal/client/validation"
	"github.com/dmitrijs2005/userconsole/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var admin = models.User{ID: 1, FirstName: "Ada", LastName: "Root", Email: "ada@x.com", Role: models.RoleAdmin}

func TestSession_Accessors(t *testing.T) {
	s := Unauthenticated()
	assert.False(t, s.Authenticated())
	assert.Equal(t, models.RoleUser, s.Role())
	assert.False(t, s.IsAdmin())
	_, ok := s.User()
	assert.False(t, ok)

	s = Authenticated(admin)
	assert.True(t, s.Authenticated())
	assert.True(t, s.IsAdmin())
	u, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, admin, u)
}

func TestResolve_Success(t *testing.T) {
	fc := &clienttest.Fake{MeFn: func(context.Context) (models.User, error) { return admin, nil }}
	h := nav.NewHistory(nav.RouteUsers)

	s := NewResolver(fc, h, logging.Nop()).Resolve(context.Background())

	assert.True(t, s.IsAdmin())
	assert.Equal(t, []nav.Route{nav.RouteUsers}, h.Routes(), "no navigation on success")
	assert.Equal(t, 1, fc.Count("Me"))
}

func TestResolve_AnyFailureRedirectsToLogin(t *testing.T) {
	for _, err := range []error{
		client.ErrUnauthorized,
		client.ErrUnavailable,
		client.ErrMalformedResponse,
		errors.New("boom"),
	} {
		t.Run(err.Error(), func(t *testing.T) {
			fc := &clienttest.Fake{MeFn: func(context.Context) (models.User, error) { return models.User{}, err }}
			h := nav.NewHistory(nav.RouteUsers)

			s := NewResolver(fc, h, logging.Nop()).Resolve(context.Background())

			assert.False(t, s.Authenticated())
			assert.Equal(t, nav.RouteLogin, h.Current())
			assert.Equal(t, 1, fc.Count("Me"), "no retries")
		})
	}
}

type fakeCookies struct {
	cleared int
	err     error
}

func (f *fakeCookies) Clear(context.Context) error {
	f.cleared++
	return f.err
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	good := models.Credentials{Email: "ada@x.com", Password: "password1"}

	t.Run("invalid never reaches backend", func(t *testing.T) {
		fc := &clienttest.Fake{}
		h := nav.NewHistory(nav.RouteLogin)
		out := NewAuthService(fc, nil, h, logging.Nop()).Login(ctx, models.Credentials{Email: "nope", Password: "short"})

		assert.Equal(t, models.OutcomeInvalid, out.Kind)
		assert.Equal(t, "Enter a valid email", out.FieldErrors[validation.FieldEmail])
		assert.Equal(t, "Password must be at least 8 characters", out.FieldErrors[validation.FieldPassword])
		assert.Zero(t, fc.Count("Login"))
		assert.Equal(t, nav.RouteLogin, h.Current())
	})

	t.Run("success navigates to users", func(t *testing.T) {
		var got models.Credentials
		fc := &clienttest.Fake{LoginFn: func(_ context.Context, c models.Credentials) (string, error) {
			got = c
			return "Welcome", nil
		}}
		h := nav.NewHistory(nav.RouteLogin)
		out := NewAuthService(fc, nil, h, logging.Nop()).Login(ctx, good)

		assert.True(t, out.OK())
		assert.Equal(t, "Welcome", out.Message)
		assert.Equal(t, good, got)
		assert.Equal(t, nav.RouteUsers, h.Current())
	})

	t.Run("rejection shows server message", func(t *testing.T) {
		fc := &clienttest.Fake{LoginFn: func(context.Context, models.Credentials) (string, error) {
			return "", &client.RejectedError{Message: "Invalid email or password"}
		}}
		h := nav.NewHistory(nav.RouteLogin)
		out := NewAuthService(fc, nil, h, logging.Nop()).Login(ctx, good)

		assert.Equal(t, models.Rejected("Invalid email or password"), out)
		assert.Equal(t, nav.RouteLogin, h.Current())
	})

	t.Run("transport failure", func(t *testing.T) {
		fc := &clienttest.Fake{LoginFn: func(context.Context, models.Credentials) (string, error) {
			return "", client.ErrUnavailable
		}}
		out := NewAuthService(fc, nil, nav.NewHistory(nav.RouteLogin), logging.Nop()).Login(ctx, good)
		assert.Equal(t, models.Failed(MsgLoginFailed), out)
	})
}

func TestSignup(t *testing.T) {
	ctx := context.Background()
	req := models.SignupRequest{
		FirstName: "Ann", LastName: "Lee", Email: "ann@x.com", Phone: "(123) 456-7890",
		Password: "password1", ConfirmPassword: "password2",
	}

	fc := &clienttest.Fake{}
	h := nav.NewHistory(nav.RouteSignup)
	svc := NewAuthService(fc, nil, h, logging.Nop())

	out := svc.Signup(ctx, req)
	assert.Equal(t, models.OutcomeInvalid, out.Kind)
	assert.Equal(t, map[string]string{validation.FieldConfirmPassword: validation.MsgPasswordMismatch}, out.FieldErrors)
	assert.Zero(t, fc.Count("Signup"))

	req.ConfirmPassword = req.Password
	out = svc.Signup(ctx, req)
	assert.True(t, out.OK())
	assert.Equal(t, nav.RouteUsers, h.Current())

	fc.SignupFn = func(context.Context, models.SignupRequest) (string, error) { return "", client.ErrUnexpectedStatus }
	out = svc.Signup(ctx, req)
	assert.Equal(t, models.Failed(MsgSignupFailed), out)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("success clears cookies", func(t *testing.T) {
		cookies := &fakeCookies{}
		h := nav.NewHistory(nav.RouteUsers)
		out := NewAuthService(&clienttest.Fake{}, cookies, h, logging.Nop()).Logout(ctx)

		assert.True(t, out.OK())
		assert.Equal(t, 1, cookies.cleared)
		assert.Equal(t, nav.RouteLogin, h.Current())
	})

	t.Run("cookie failure still logs out", func(t *testing.T) {
		cookies := &fakeCookies{err: errors.New("disk")}
		h := nav.NewHistory(nav.RouteUsers)
		out := NewAuthService(&clienttest.Fake{}, cookies, h, logging.Nop()).Logout(ctx)

		assert.True(t, out.OK())
		assert.Equal(t, nav.RouteLogin, h.Current())
	})

	t.Run("failure keeps session", func(t *testing.T) {
		cookies := &fakeCookies{}
		fc := &clienttest.Fake{LogoutFn: func(context.Context) (string, error) { return "", client.ErrUnavailable }}
		h := nav.NewHistory(nav.RouteUsers)
		out := NewAuthService(fc, cookies, h, logging.Nop()).Logout(ctx)

		assert.Equal(t, models.Failed(MsgLogoutFailed), out)
		assert.Zero(t, cookies.cleared)
		assert.Equal(t, nav.RouteUsers, h.Current())
	})
}
