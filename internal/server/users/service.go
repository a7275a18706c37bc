package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userconsole/internal/server/auth"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrMissingFields      = errors.New("missing required fields")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Registration is the input of Signup and Create. Role and Status are
// ignored by Signup, which always registers an active User.
type Registration struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	Role            Role
	Status          Status
}

type Service struct {
	repo   Repository
	hasher auth.PasswordHasher
}

func NewService(repo Repository, hasher auth.PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// SeedAdmin makes sure an admin account with email exists.
func (s *Service) SeedAdmin(ctx context.Context, email, password string) (*User, error) {
	if u, err := s.repo.GetByEmail(ctx, email); err == nil {
		return u, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return s.Create(ctx, Registration{
		FirstName: "System",
		LastName:  "Admin",
		Email:     email,
		Password:  password,
		Role:      RoleAdmin,
		Status:    StatusActive,
	})
}

// Authenticate checks the credentials and returns the matching user.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if u.Status != StatusActive {
		return nil, ErrAccountInactive
	}
	return u, nil
}

// Signup registers an active User. The password must be confirmed.
func (s *Service) Signup(ctx context.Context, r Registration) (*User, error) {
	if r.Password != r.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	r.Role = RoleUser
	r.Status = StatusActive
	return s.Create(ctx, r)
}

func (s *Service) Create(ctx context.Context, r Registration) (*User, error) {
	email := strings.TrimSpace(r.Email)
	if email == "" || r.Password == "" {
		return nil, ErrMissingFields
	}

	hash, err := s.hasher.Hash(r.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role, status := r.Role, r.Status
	if role == "" {
		role = RoleUser
	}
	if status == "" {
		status = StatusActive
	}

	return s.repo.Create(ctx, &User{
		FirstName:    strings.TrimSpace(r.FirstName),
		LastName:     strings.TrimSpace(r.LastName),
		Email:        email,
		Phone:        strings.TrimSpace(r.Phone),
		Role:         role,
		Status:       status,
		PasswordHash: hash,
	})
}

func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, patch Patch) (*User, error) {
	if patch.Email != nil && strings.TrimSpace(*patch.Email) == "" {
		return nil, ErrMissingFields
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// List clamps the page to the first one and the limit to [1, MaxLimit].
// A search over an unknown field is dropped.
func (s *Service) List(ctx context.Context, q ListQuery) (Page, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	switch {
	case q.Limit <= 0:
		q.Limit = DefaultLimit
	case q.Limit > MaxLimit:
		q.Limit = MaxLimit
	}
	if q.Field != FieldEmail && q.Field != FieldPhone {
		q.Field, q.Search = "", ""
	}
	return s.repo.List(ctx, q)
}
