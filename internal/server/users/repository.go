package users

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already exists")
)

type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, id int64, patch Patch) (*User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, q ListQuery) (Page, error)
}
