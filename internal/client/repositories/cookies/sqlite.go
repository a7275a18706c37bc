package cookies

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, c models.StoredCookie) error {
	var expires int64
	if !c.Expires.IsZero() {
		expires = c.Expires.Unix()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cookies (url, name, value, domain, path, expires, secure, http_only)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url, name) DO UPDATE SET value = excluded.value,
			domain = excluded.domain,
			path = excluded.path,
			expires = excluded.expires,
			secure = excluded.secure,
			http_only = excluded.http_only
	`, c.URL, c.Name, c.Value, c.Domain, c.Path, expires, c.Secure, c.HttpOnly)
	if err != nil {
		return fmt.Errorf("failed to upsert cookie %s: %w", c.Name, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, url, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cookies WHERE url = ? AND name = ?`, url, name)
	if err != nil {
		return fmt.Errorf("failed to delete cookie %s: %w", name, err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.StoredCookie, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT url, name, value, domain, path, expires, secure, http_only
		FROM cookies ORDER BY url, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cookies: %w", err)
	}
	defer rows.Close()

	var result []models.StoredCookie
	for rows.Next() {
		var (
			c       models.StoredCookie
			expires int64
		)
		if err := rows.Scan(&c.URL, &c.Name, &c.Value, &c.Domain, &c.Path, &expires, &c.Secure, &c.HttpOnly); err != nil {
			return nil, fmt.Errorf("failed to scan cookie row: %w", err)
		}
		if expires > 0 {
			c.Expires = time.Unix(expires, 0).UTC()
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cookies`); err != nil {
		return fmt.Errorf("failed to clear cookies: %w", err)
	}
	return nil
}
