package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/validation"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

type formField struct {
	name   string
	label  string
	secret bool
}

var (
	loginFields = []formField{
		{name: validation.FieldEmail, label: "Email"},
		{name: validation.FieldPassword, label: "Password", secret: true},
	}
	signupFields = []formField{
		{name: validation.FieldFirstName, label: "First name"},
		{name: validation.FieldLastName, label: "Last name"},
		{name: validation.FieldEmail, label: "Email"},
		{name: validation.FieldPhone, label: "Phone (123-456-7890)"},
		{name: validation.FieldPassword, label: "Password", secret: true},
		{name: validation.FieldConfirmPassword, label: "Confirm password", secret: true},
	}
	createFields = []formField{
		{name: validation.FieldFirstName, label: "First name"},
		{name: validation.FieldLastName, label: "Last name"},
		{name: validation.FieldEmail, label: "Email"},
		{name: validation.FieldPhone, label: "Phone (123-456-7890)"},
		{name: validation.FieldPassword, label: "Password", secret: true},
	}
	editFields = []formField{
		{name: validation.FieldFirstName, label: "First name"},
		{name: validation.FieldLastName, label: "Last name"},
		{name: validation.FieldEmail, label: "Email"},
		{name: validation.FieldPhone, label: "Phone"},
	}
)

// promptForm asks for every field in order through a live form. A value
// that fails its rules is printed with the message and asked again. With
// keep set an empty answer keeps the initial value, which is how the edit
// dialog works.
func (a *App) promptForm(rules *validation.RuleSet, fields []formField, initial validation.Values, keep bool) (validation.Values, error) {
	form := validation.NewFormState(rules, initial)

	for _, f := range fields {
		for {
			label := f.label
			if keep && !f.secret {
				label = fmt.Sprintf("%s [%s]", f.label, form.Value(f.name))
			}

			var (
				v   string
				err error
			)
			if f.secret {
				v, err = getPassword(a.reader, label, a.out)
			} else {
				v, err = getSimpleText(a.reader, label, a.out)
			}
			if err != nil {
				return nil, err
			}
			if keep && v == "" {
				v = form.Value(f.name)
			}

			if msg := form.Set(f.name, v); msg != "" {
				fmt.Fprintln(a.out, "  "+msg)
				continue
			}
			break
		}
	}

	values, errs := form.Submit()
	if errs != nil {
		return nil, errs
	}
	return values, nil
}

// promptRole asks until the answer is a known role. An empty answer keeps current.
func (a *App) promptRole(current models.Role) (models.Role, error) {
	for {
		v, err := getSimpleText(a.reader, fmt.Sprintf("Role (User/Admin) [%s]", current), a.out)
		if err != nil {
			return current, err
		}
		switch strings.ToLower(v) {
		case "":
			return current, nil
		case "user", "admin":
			return models.ParseRole(v), nil
		}
		fmt.Fprintln(a.out, "  Role must be User or Admin")
	}
}

// promptStatus asks until the answer is a known status. An empty answer keeps current.
func (a *App) promptStatus(current models.Status) (models.Status, error) {
	for {
		v, err := getSimpleText(a.reader, fmt.Sprintf("Status (Active/Inactive) [%s]", current), a.out)
		if err != nil {
			return current, err
		}
		if v == "" {
			return current, nil
		}
		st, err := models.ParseStatus(v)
		if err == nil {
			return st, nil
		}
		fmt.Fprintln(a.out, "  Status must be Active or Inactive")
	}
}

// diffPatch returns a patch carrying only the fields that differ from u.
func diffPatch(u models.User, values validation.Values, role models.Role, status models.Status) models.Patch {
	p := models.Patch{ID: u.ID}
	if v := values[validation.FieldFirstName]; v != u.FirstName {
		p.FirstName = &v
	}
	if v := values[validation.FieldLastName]; v != u.LastName {
		p.LastName = &v
	}
	if v := values[validation.FieldEmail]; v != u.Email {
		p.Email = &v
	}
	if v := values[validation.FieldPhone]; v != u.Phone {
		p.Phone = &v
	}
	if role != u.Role {
		p.Role = &role
	}
	if status != u.Status {
		p.Status = &status
	}
	return p
}
