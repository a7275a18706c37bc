// Package clienttest provides a scriptable client.Client for tests of the
// packages built on top of the transport.
package clienttest

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/userconsole/internal/client/client"
	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

var _ client.Client = (*Fake)(nil)

// Fake records every call and answers from its function fields. A nil
// function answers with the zero value and a nil error.
type Fake struct {
	MeFn         func(ctx context.Context) (models.User, error)
	LoginFn      func(ctx context.Context, creds models.Credentials) (string, error)
	LogoutFn     func(ctx context.Context) (string, error)
	SignupFn     func(ctx context.Context, req models.SignupRequest) (string, error)
	CreateUserFn func(ctx context.Context, req models.CreateUserRequest) (string, error)
	ListUsersFn  func(ctx context.Context, q models.PageQuery) (models.PageResult, error)
	UpdateUserFn func(ctx context.Context, patch models.Patch) (string, error)
	DeleteUserFn func(ctx context.Context, id int64) error

	mu      sync.Mutex
	calls   []string
	queries []models.PageQuery
	patches []models.Patch
	creates []models.CreateUserRequest
	deletes []int64
}

func (f *Fake) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

// Calls returns the names of the invoked methods in call order.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Count returns how many times the named method was called.
func (f *Fake) Count(name string) int {
	n := 0
	for _, c := range f.Calls() {
		if c == name {
			n++
		}
	}
	return n
}

func (f *Fake) Queries() []models.PageQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.PageQuery(nil), f.queries...)
}

func (f *Fake) Patches() []models.Patch {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Patch(nil), f.patches...)
}

func (f *Fake) Creates() []models.CreateUserRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.CreateUserRequest(nil), f.creates...)
}

func (f *Fake) Deletes() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.deletes...)
}

func (f *Fake) Close() error { return nil }

func (f *Fake) Me(ctx context.Context) (models.User, error) {
	f.record("Me")
	if f.MeFn == nil {
		return models.User{}, nil
	}
	return f.MeFn(ctx)
}

func (f *Fake) Login(ctx context.Context, creds models.Credentials) (string, error) {
	f.record("Login")
	if f.LoginFn == nil {
		return "", nil
	}
	return f.LoginFn(ctx, creds)
}

func (f *Fake) Logout(ctx context.Context) (string, error) {
	f.record("Logout")
	if f.LogoutFn == nil {
		return "", nil
	}
	return f.LogoutFn(ctx)
}

func (f *Fake) Signup(ctx context.Context, req models.SignupRequest) (string, error) {
	f.record("Signup")
	if f.SignupFn == nil {
		return "", nil
	}
	return f.SignupFn(ctx, req)
}

func (f *Fake) CreateUser(ctx context.Context, req models.CreateUserRequest) (string, error) {
	f.record("CreateUser")
	f.mu.Lock()
	f.creates = append(f.creates, req)
	f.mu.Unlock()
	if f.CreateUserFn == nil {
		return "", nil
	}
	return f.CreateUserFn(ctx, req)
}

func (f *Fake) ListUsers(ctx context.Context, q models.PageQuery) (models.PageResult, error) {
	f.record("ListUsers")
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()
	if f.ListUsersFn == nil {
		return models.PageResult{Page: q.Page}, nil
	}
	return f.ListUsersFn(ctx, q)
}

func (f *Fake) UpdateUser(ctx context.Context, patch models.Patch) (string, error) {
	f.record("UpdateUser")
	f.mu.Lock()
	f.patches = append(f.patches, patch)
	f.mu.Unlock()
	if f.UpdateUserFn == nil {
		return "", nil
	}
	return f.UpdateUserFn(ctx, patch)
}

func (f *Fake) DeleteUser(ctx context.Context, id int64) error {
	f.record("DeleteUser")
	f.mu.Lock()
	f.deletes = append(f.deletes, id)
	f.mu.Unlock()
	if f.DeleteUserFn == nil {
		return nil
	}
	return f.DeleteUserFn(ctx, id)
}
