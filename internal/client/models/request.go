package models

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the self-registration payload.
type SignupRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// CreateUserRequest is the payload an admin submits from the creation view.
// The zero value of Role and Status is User/Active, the defaults of the
// creation form.
type CreateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      Role   `json:"role"`
	Status    Status `json:"status"`
	Password  string `json:"password"`
}

// Patch is a partial update of the user identified by ID. Nil fields are
// left out of the request body.
type Patch struct {
	ID        int64   `json:"id"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Role      *Role   `json:"role,omitempty"`
	Status    *Status `json:"status,omitempty"`
}

// PatchFrom returns a patch carrying every editable field of u, which is
// what the edit dialog submits.
func PatchFrom(u User) Patch {
	return Patch{
		ID:        u.ID,
		FirstName: &u.FirstName,
		LastName:  &u.LastName,
		Email:     &u.Email,
		Phone:     &u.Phone,
		Role:      &u.Role,
		Status:    &u.Status,
	}
}

// Apply returns u with the non-nil fields of p merged in.
func (p Patch) Apply(u User) User {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	return u
}

// Fields returns the present string fields keyed by form field name.
func (p Patch) Fields() map[string]string {
	m := make(map[string]string, 4)
	if p.FirstName != nil {
		m["firstName"] = *p.FirstName
	}
	if p.LastName != nil {
		m["lastName"] = *p.LastName
	}
	if p.Email != nil {
		m["email"] = *p.Email
	}
	if p.Phone != nil {
		m["phone"] = *p.Phone
	}
	return m
}
