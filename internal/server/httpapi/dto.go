package httpapi

import "github.com/dmitrijs2005/userconsole/internal/server/users"

// envelope is the body of every endpoint except the user list.
type envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	User    *userDTO `json:"user,omitempty"`
}

type userDTO struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Status    string `json:"status"`
}

func toDTO(u users.User) userDTO {
	return userDTO{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		Status:    string(u.Status),
	}
}

type listResponse struct {
	Users []userDTO `json:"users"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registrationRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
	Status          string `json:"status"`
}

func (r registrationRequest) registration() users.Registration {
	reg := users.Registration{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
	if r.Role != "" {
		reg.Role = users.ParseRole(r.Role)
	}
	if r.Status != "" {
		reg.Status = users.ParseStatus(r.Status)
	}
	return reg
}

// patchRequest carries only the fields the client sent.
type patchRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Role      *string `json:"role"`
	Status    *string `json:"status"`
}

func (r patchRequest) patch() users.Patch {
	p := users.Patch{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
	}
	if r.Role != nil {
		role := users.ParseRole(*r.Role)
		p.Role = &role
	}
	if r.Status != nil {
		status := users.ParseStatus(*r.Status)
		p.Status = &status
	}
	return p
}
