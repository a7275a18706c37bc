package users

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepository keeps users in a map guarded by a RWMutex. Ids are
// assigned sequentially and listing is in id order.
type MemoryRepository struct {
	mu     sync.RWMutex
	users  map[int64]User
	nextID int64
	now    func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[int64]User), nextID: 1, now: time.Now}
}

func (r *MemoryRepository) emailTaken(email string, except int64) bool {
	for id, u := range r.users {
		if id != except && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(user.Email, 0) {
		return nil, ErrEmailTaken
	}

	u := *user
	u.ID = r.nextID
	u.CreatedAt = r.now()
	r.nextID++
	r.users[u.ID] = u

	return &u, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) Update(ctx context.Context, id int64, patch Patch) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Email != nil && r.emailTaken(*patch.Email, id) {
		return nil, ErrEmailTaken
	}

	patch.apply(&u)
	r.users[id] = u
	return &u, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *MemoryRepository) List(ctx context.Context, q ListQuery) (Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(q.Search)
	match := make([]User, 0, len(r.users))
	for _, u := range r.users {
		if search != "" && !strings.Contains(strings.ToLower(fieldValue(u, q.Field)), search) {
			continue
		}
		match = append(match, u)
	}
	sort.Slice(match, func(i, j int) bool { return match[i].ID < match[j].ID })

	start := (q.Page - 1) * q.Limit
	if start > len(match) {
		start = len(match)
	}
	end := start + q.Limit
	if end > len(match) {
		end = len(match)
	}

	return Page{Users: match[start:end], Total: len(match)}, nil
}

// fieldValue returns the attribute a search is matched against. Unknown
// fields match nothing but the empty search.
func fieldValue(u User, field string) string {
	switch field {
	case FieldEmail:
		return u.Email
	case FieldPhone:
		return u.Phone
	}
	return ""
}
