// Package mutation issues create, update and delete requests for the users
// dashboard and reconciles the view afterwards.
package mutation

import (
	"context"

	"github.com/dmitrijs2005/userconsole/internal/client/client"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/nav"
	"github.com/dmitrijs2005/userconsole/internal/client/validation"
	"github.com/dmitrijs2005/userconsole/internal/client/viewstate"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

const MsgCreateFailed = "Failed to create user"

// Reloader re-runs the current page load.
type Reloader interface {
	Reload(ctx context.Context) (models.PageResult, error)
}

// Dispatcher does not check the session role; callers consult the
// projection before offering an action.
type Dispatcher struct {
	client   client.Client
	store    *viewstate.Store
	reloader Reloader
	nav      nav.Navigator
	log      logging.Logger
}

func NewDispatcher(c client.Client, store *viewstate.Store, r Reloader, n nav.Navigator, log logging.Logger) *Dispatcher {
	return &Dispatcher{client: c, store: store, reloader: r, nav: n, log: log}
}

// Create submits a new user from the creation view and leaves it on
// success.
func (d *Dispatcher) Create(ctx context.Context, req models.CreateUserRequest) models.Outcome {
	form := validation.Values{
		validation.FieldFirstName: req.FirstName,
		validation.FieldLastName:  req.LastName,
		validation.FieldEmail:     req.Email,
		validation.FieldPhone:     req.Phone,
		validation.FieldPassword:  req.Password,
	}
	if errs := validation.CreateUserRules().ValidateForm(form); errs != nil {
		return models.Invalid(errs)
	}

	msg, err := d.client.CreateUser(ctx, req)
	if err != nil {
		d.log.Warn(ctx, "create user failed", "email", req.Email, "error", err)
		return client.OutcomeOf(err, MsgCreateFailed)
	}
	d.log.Info(ctx, "user created", "email", req.Email)
	d.nav.Navigate(nav.RouteUsers)
	return models.Succeeded(msg)
}

// Update sends a partial patch. The patch is never merged locally: on
// success the current page is reloaded.
func (d *Dispatcher) Update(ctx context.Context, patch models.Patch) models.Outcome {
	fields := patch.Fields()
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	if errs := validation.EditUserRules().ValidateFields(validation.Values(fields), names...); errs != nil {
		return models.Invalid(errs)
	}

	msg, err := d.client.UpdateUser(ctx, patch)
	out := client.OutcomeOf(err, viewstate.MsgUpdateFailed)
	switch out.Kind {
	case models.OutcomeRejected:
		d.store.Dispatch(viewstate.UpdateRejected{Message: out.Message})
		return out
	case models.OutcomeFailed:
		d.log.Error(ctx, "update user failed", "id", patch.ID, "error", err)
		d.store.Dispatch(viewstate.UpdateFailed{Err: err})
		return out
	}

	d.store.Dispatch(viewstate.UpdateSucceeded{})
	if _, err := d.reloader.Reload(ctx); err != nil {
		d.log.Warn(ctx, "reload after update failed", "id", patch.ID, "error", err)
	}
	return models.Succeeded(msg)
}

// Delete removes the user locally only after the backend confirmed it.
func (d *Dispatcher) Delete(ctx context.Context, id int64) models.Outcome {
	err := d.client.DeleteUser(ctx, id)
	if err != nil {
		d.log.Warn(ctx, "delete user failed", "id", id, "error", err)
		d.store.Dispatch(viewstate.DeleteFailed{ID: id, Err: err})
		return models.Failed(viewstate.MsgDeleteFailed)
	}
	d.store.Dispatch(viewstate.DeleteSucceeded{ID: id})
	return models.Succeeded("")
}
