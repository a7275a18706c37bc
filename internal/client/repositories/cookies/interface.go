package cookies

import (
	"context"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

// Repository stores cookies keyed by (url, name).
type Repository interface {
	// Upsert inserts a cookie or replaces the stored one with the same key.
	Upsert(ctx context.Context, c models.StoredCookie) error

	// Delete removes a cookie; deleting an absent cookie is not an error.
	Delete(ctx context.Context, url, name string) error

	// List returns every stored cookie ordered by url and name.
	List(ctx context.Context) ([]models.StoredCookie, error)

	// Clear removes all cookies.
	Clear(ctx context.Context) error
}
