package session

import (
	"context"

	"github.com/dmitrijs2005/userconsole/internal/client/client"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/nav"
	"github.com/dmitrijs2005/userconsole/internal/client/validation"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

const (
	MsgLoginFailed  = "Login failed"
	MsgSignupFailed = "Failed to create account"
	MsgLogoutFailed = "Failed to log out"
)

// CookieStore forgets the persisted session cookies.
type CookieStore interface {
	Clear(ctx context.Context) error
}

// AuthService runs the session flows of the console.
//
// Every method returns an Outcome; invalid input never reaches the backend.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) models.Outcome
	Signup(ctx context.Context, req models.SignupRequest) models.Outcome
	Logout(ctx context.Context) models.Outcome
}

type authService struct {
	client  client.Client
	cookies CookieStore
	nav     nav.Navigator
	log     logging.Logger
}

// NewAuthService constructs an AuthService. cookies may be nil when the
// console keeps no persistent state.
func NewAuthService(c client.Client, cookies CookieStore, n nav.Navigator, log logging.Logger) AuthService {
	return &authService{client: c, cookies: cookies, nav: n, log: log}
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) models.Outcome {
	form := validation.Values{
		validation.FieldEmail:    creds.Email,
		validation.FieldPassword: creds.Password,
	}
	if errs := validation.LoginRules().ValidateForm(form); errs != nil {
		return models.Invalid(errs)
	}

	msg, err := a.client.Login(ctx, creds)
	if err != nil {
		a.log.Warn(ctx, "login failed", "email", creds.Email, "error", err)
		return client.OutcomeOf(err, MsgLoginFailed)
	}
	a.nav.Navigate(nav.RouteUsers)
	return models.Succeeded(msg)
}

func (a *authService) Signup(ctx context.Context, req models.SignupRequest) models.Outcome {
	form := validation.Values{
		validation.FieldFirstName:       req.FirstName,
		validation.FieldLastName:        req.LastName,
		validation.FieldEmail:           req.Email,
		validation.FieldPhone:           req.Phone,
		validation.FieldPassword:        req.Password,
		validation.FieldConfirmPassword: req.ConfirmPassword,
	}
	if errs := validation.SignupRules().ValidateForm(form); errs != nil {
		return models.Invalid(errs)
	}

	msg, err := a.client.Signup(ctx, req)
	if err != nil {
		a.log.Warn(ctx, "signup failed", "email", req.Email, "error", err)
		return client.OutcomeOf(err, MsgSignupFailed)
	}
	a.nav.Navigate(nav.RouteUsers)
	return models.Succeeded(msg)
}

// Logout ends the backend session and forgets the local cookies. A failed
// request leaves both in place.
func (a *authService) Logout(ctx context.Context) models.Outcome {
	msg, err := a.client.Logout(ctx)
	if err != nil {
		a.log.Warn(ctx, "logout failed", "error", err)
		return client.OutcomeOf(err, MsgLogoutFailed)
	}
	if a.cookies != nil {
		if err := a.cookies.Clear(ctx); err != nil {
			a.log.Error(ctx, "clear cookies failed", "error", err)
		}
	}
	a.log.Info(ctx, "logged out", "message", msg)
	a.nav.Navigate(nav.RouteLogin)
	return models.Succeeded(msg)
}
