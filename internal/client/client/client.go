package client

import (
	"context"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

// Client is the console's view of the directory backend.
//
// Mutating calls return nil on success:true, *RejectedError on success:false,
// and a wrapped sentinel error otherwise.
type Client interface {
	Close() error
	Me(ctx context.Context) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (string, error)
	Logout(ctx context.Context) (string, error)
	Signup(ctx context.Context, req models.SignupRequest) (string, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (string, error)
	ListUsers(ctx context.Context, q models.PageQuery) (models.PageResult, error)
	UpdateUser(ctx context.Context, patch models.Patch) (string, error)
	DeleteUser(ctx context.Context, id int64) error
}
