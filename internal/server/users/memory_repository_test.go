package users

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, r *MemoryRepository, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		_, err := r.Create(context.Background(), &User{
			Email: fmt.Sprintf("user%d@x.com", i),
			Phone: fmt.Sprintf("555-%04d", i),
		})
		require.NoError(t, err)
	}
}

func TestMemoryRepository_CreateAssignsIDs(t *testing.T) {
	r := NewMemoryRepository()
	a, err := r.Create(context.Background(), &User{Email: "a@x.com"})
	require.NoError(t, err)
	b, err := r.Create(context.Background(), &User{Email: "b@x.com"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
	assert.False(t, a.CreatedAt.IsZero())

	_, err = r.Create(context.Background(), &User{Email: "A@X.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestMemoryRepository_List(t *testing.T) {
	r := NewMemoryRepository()
	seed(t, r, 25)
	ctx := context.Background()

	tests := []struct {
		name      string
		q         ListQuery
		wantIDs   []int64
		wantTotal int
	}{
		{"third page", ListQuery{Page: 3, Limit: 10}, []int64{21, 22, 23, 24, 25}, 25},
		{"beyond last", ListQuery{Page: 4, Limit: 10}, []int64{}, 25},
		{"email contains", ListQuery{Page: 1, Limit: 10, Field: FieldEmail, Search: "USER2"}, []int64{2, 20, 21, 22, 23, 24, 25}, 7},
		{"phone contains", ListQuery{Page: 1, Limit: 10, Field: FieldPhone, Search: "0011"}, []int64{11}, 1},
		{"no match", ListQuery{Page: 1, Limit: 10, Field: FieldEmail, Search: "nobody"}, []int64{}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page, err := r.List(ctx, tc.q)
			require.NoError(t, err)
			ids := make([]int64, 0, len(page.Users))
			for _, u := range page.Users {
				ids = append(ids, u.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
			assert.Equal(t, tc.wantTotal, page.Total)
		})
	}
}

func TestMemoryRepository_UpdateAndDelete(t *testing.T) {
	r := NewMemoryRepository()
	seed(t, r, 2)
	ctx := context.Background()

	name := "Ada"
	u, err := r.Update(ctx, 1, Patch{FirstName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.FirstName)
	assert.Equal(t, "user1@x.com", u.Email)

	taken := "user2@x.com"
	_, err = r.Update(ctx, 1, Patch{Email: &taken})
	assert.ErrorIs(t, err, ErrEmailTaken)

	same := "user1@x.com"
	_, err = r.Update(ctx, 1, Patch{Email: &same})
	assert.NoError(t, err, "keeping one's own email is fine")

	_, err = r.Update(ctx, 9, Patch{FirstName: &name})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, r.Delete(ctx, 1))
	assert.ErrorIs(t, r.Delete(ctx, 1), ErrNotFound)
	_, err = r.GetByID(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
