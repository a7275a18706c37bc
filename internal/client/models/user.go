// Package models defines the user directory records exchanged with the
// backend and the query/result types used by the console.
package models

import (
	"fmt"
	"strings"
)

// Role is the normalized access role of a user. The backend sends free-form
// role tags; they are folded into one of two values when decoded so the rest
// of the console compares enum values only.
type Role int

const (
	RoleUser Role = iota
	RoleAdmin
)

// ParseRole maps a role tag to a Role. The comparison against "admin" is
// case-insensitive; every other tag is treated as RoleUser.
func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), "admin") {
		return RoleAdmin
	}
	return RoleUser
}

func (r Role) String() string {
	if r == RoleAdmin {
		return "Admin"
	}
	return "User"
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	*r = ParseRole(string(b))
	return nil
}

// Status tells whether an account is enabled.
type Status int

const (
	StatusActive Status = iota
	StatusInactive
)

// ParseStatus maps a status tag to a Status, case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return StatusActive, nil
	case "inactive":
		return StatusInactive, nil
	}
	return StatusActive, fmt.Errorf("unknown status %q", s)
}

func (s Status) String() string {
	if s == StatusInactive {
		return "Inactive"
	}
	return "Active"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts any tag; unknown tags decode as StatusInactive so an
// unexpected value never reads as an enabled account.
func (s *Status) UnmarshalText(b []byte) error {
	st, err := ParseStatus(string(b))
	if err != nil {
		st = StatusInactive
	}
	*s = st
	return nil
}

// User is one record of the directory. ID is assigned by the backend.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      Role   `json:"role"`
	Status    Status `json:"status"`
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
