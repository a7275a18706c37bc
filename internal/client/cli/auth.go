package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/nav"
	"github.com/dmitrijs2005/userconsole/internal/client/validation"
)

// Login prompts for credentials and signs in. On success the users view is
// mounted again so the new session and the first page are fetched together.
//
// A rejected or failed login is printed and the login screen stays; only
// input errors are returned.
func (a *App) Login(ctx context.Context) error {
	a.history.Navigate(nav.RouteLogin)

	values, err := a.promptForm(validation.LoginRules(), loginFields, nil, false)
	if err != nil {
		return a.formError(err)
	}

	out := a.auth.Login(ctx, models.Credentials{
		Email:    values[validation.FieldEmail],
		Password: values[validation.FieldPassword],
	})
	renderOutcome(a.out, out, "Login successful")
	if out.OK() {
		a.mount(ctx)
	}
	return nil
}

// Signup prompts for the registration form and creates an account. The
// backend starts a session for the new account.
func (a *App) Signup(ctx context.Context) error {
	a.history.Navigate(nav.RouteSignup)

	values, err := a.promptForm(validation.SignupRules(), signupFields, nil, false)
	if err != nil {
		a.history.Navigate(nav.RouteLogin)
		return a.formError(err)
	}

	out := a.auth.Signup(ctx, models.SignupRequest{
		FirstName:       values[validation.FieldFirstName],
		LastName:        values[validation.FieldLastName],
		Email:           values[validation.FieldEmail],
		Phone:           values[validation.FieldPhone],
		Password:        values[validation.FieldPassword],
		ConfirmPassword: values[validation.FieldConfirmPassword],
	})
	renderOutcome(a.out, out, "Account created")
	if out.OK() {
		a.mount(ctx)
		return nil
	}
	a.history.Navigate(nav.RouteLogin)
	return nil
}

// Logout ends the session. A failed logout keeps the users screen and shows
// the notice.
func (a *App) Logout(ctx context.Context) error {
	out := a.dash.Logout(ctx)
	if out.OK() {
		fmt.Fprintln(a.out, "Logged out")
		return nil
	}
	a.show(a.dash.State())
	return nil
}

// formError prints validation errors that survived the prompts and returns
// anything else.
func (a *App) formError(err error) error {
	if errs, ok := err.(validation.Errors); ok {
		renderOutcome(a.out, models.Invalid(errs), "")
		return nil
	}
	return err
}
