package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/nav"
	"github.com/dmitrijs2005/userconsole/internal/client/validation"
	"github.com/dmitrijs2005/userconsole/internal/client/viewstate"
)

var errNotPermitted = errors.New("not permitted for your role")

// show prints the notice, if any, and the current page. A shown notice is
// dismissed so it is printed once.
func (a *App) show(st viewstate.State) {
	if st.Notice != nil {
		renderNotice(a.out, st.Notice)
		a.dash.DismissNotice()
	}
	renderUsers(a.out, st)
}

func (a *App) List(ctx context.Context) error {
	a.show(a.dash.State())
	return nil
}

func (a *App) Next(ctx context.Context) error {
	a.show(a.dash.NextPage(ctx))
	return nil
}

func (a *App) Prev(ctx context.Context) error {
	a.show(a.dash.PrevPage(ctx))
	return nil
}

func (a *App) Page(ctx context.Context, n int) error {
	if n < 1 {
		return fmt.Errorf("invalid page %d", n)
	}
	a.show(a.dash.ChangePage(ctx, n))
	return nil
}

func (a *App) Reload(ctx context.Context) error {
	a.show(a.dash.Reload(ctx))
	return nil
}

// Filter searches field for text starting from the first page. FilterNone
// clears the filter.
func (a *App) Filter(ctx context.Context, field models.FilterField, text string) error {
	if !a.view().CanFilter {
		return errNotPermitted
	}
	if field == models.FilterNone {
		a.show(a.dash.ClearFilter(ctx))
		return nil
	}
	a.show(a.dash.ChangeFilter(ctx, field, text))
	return nil
}

// New runs the creation view. Role and status default to User and Active.
func (a *App) New(ctx context.Context) error {
	if !a.view().CanCreate {
		return errNotPermitted
	}
	a.history.Navigate(nav.RouteNewUser)

	values, err := a.promptForm(validation.CreateUserRules(), createFields, nil, false)
	if err == nil {
		var req models.CreateUserRequest
		if req.Role, err = a.promptRole(models.RoleUser); err == nil {
			req.Status, err = a.promptStatus(models.StatusActive)
		}
		if err == nil {
			req.FirstName = values[validation.FieldFirstName]
			req.LastName = values[validation.FieldLastName]
			req.Email = values[validation.FieldEmail]
			req.Phone = values[validation.FieldPhone]
			req.Password = values[validation.FieldPassword]

			out := a.dash.Create(ctx, req)
			renderOutcome(a.out, out, "User created")
			if out.OK() {
				a.show(a.dash.Reload(ctx))
				return nil
			}
		}
	}

	// leaving the creation view without a created user
	a.history.Navigate(nav.RouteUsers)
	return a.formError(err)
}

// Edit opens the dialog of a listed user. Every prompt shows the current
// value; an empty answer keeps it. Only changed fields are sent. A rejected
// update keeps the dialog open and asks again.
func (a *App) Edit(ctx context.Context, id int64) error {
	if !a.view().CanEdit {
		return errNotPermitted
	}
	u, err := a.dash.BeginEdit(id)
	if err != nil {
		return err
	}
	renderUser(a.out, u)

	for {
		values, err := a.promptForm(validation.EditUserRules(), editFields, validation.Values{
			validation.FieldFirstName: u.FirstName,
			validation.FieldLastName:  u.LastName,
			validation.FieldEmail:     u.Email,
			validation.FieldPhone:     u.Phone,
		}, true)
		if err != nil {
			a.dash.CancelEdit()
			return a.formError(err)
		}
		role, err := a.promptRole(u.Role)
		if err != nil {
			a.dash.CancelEdit()
			return err
		}
		status, err := a.promptStatus(u.Status)
		if err != nil {
			a.dash.CancelEdit()
			return err
		}

		out := a.dash.SubmitEdit(ctx, diffPatch(u, values, role, status))
		st := a.dash.State()
		if out.OK() {
			renderOutcome(a.out, out, "User updated")
			a.show(st)
			return nil
		}

		if st.Editing == nil {
			return nil
		}
		if st.EditError != "" {
			fmt.Fprintln(a.out, "Error: "+st.EditError)
		} else {
			renderOutcome(a.out, out, "")
		}
		if st.Notice != nil {
			a.dash.DismissNotice()
		}

		again, err := Confirm(a.reader, "Edit again?", a.out)
		if err != nil || !again {
			a.dash.CancelEdit()
			return err
		}
	}
}

// Delete removes a listed user after confirmation. The row disappears only
// once the backend has confirmed the removal.
func (a *App) Delete(ctx context.Context, id int64) error {
	if !a.view().CanDelete {
		return errNotPermitted
	}
	u, ok := a.dash.State().Find(id)
	if !ok {
		return fmt.Errorf("user %d is not on this page", id)
	}

	sure, err := Confirm(a.reader, fmt.Sprintf("Delete %s <%s>?", u.FullName(), u.Email), a.out)
	if err != nil || !sure {
		return err
	}

	out := a.dash.Delete(ctx, id)
	if out.OK() {
		fmt.Fprintln(a.out, "User deleted")
	}
	a.show(a.dash.State())
	return nil
}
