package users

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// ParseRole folds a role tag into RoleAdmin or RoleUser.
func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleUser
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// ParseStatus folds a status tag into StatusInactive or StatusActive.
func ParseStatus(s string) Status {
	if strings.EqualFold(strings.TrimSpace(s), string(StatusInactive)) {
		return StatusInactive
	}
	return StatusActive
}

type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Role         Role
	Status       Status
	PasswordHash string
	CreatedAt    time.Time
}

// Patch lists the fields of an update; nil fields are left unchanged.
type Patch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Role      *Role
	Status    *Status
}

func (p Patch) apply(u *User) {
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
}

const (
	FieldEmail = "email"
	FieldPhone = "phone"
)

// ListQuery selects one page of the directory. Search is matched
// case-insensitively as a substring of Field; an empty Field or Search
// lists everybody.
type ListQuery struct {
	Page   int
	Limit  int
	Field  string
	Search string
}

type Page struct {
	Users []User
	Total int
}
