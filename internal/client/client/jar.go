package client

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/repositories/cookies"
	"github.com/dmitrijs2005/userconsole/internal/dbx"
	"github.com/dmitrijs2005/userconsole/internal/logging"
	"golang.org/x/net/publicsuffix"
)

const persistTimeout = 5 * time.Second

// PersistentJar is an http.CookieJar that mirrors every cookie it accepts
// into the local state database, so a restarted console resumes its session.
type PersistentJar struct {
	db  *sql.DB
	log logging.Logger
	now func() time.Time

	mu  sync.RWMutex
	jar *cookiejar.Jar
}

func NewPersistentJar(db *sql.DB, log logging.Logger) (*PersistentJar, error) {
	jar, err := newMemoryJar()
	if err != nil {
		return nil, err
	}
	return &PersistentJar{db: db, log: log, now: time.Now, jar: jar}, nil
}

func newMemoryJar() (*cookiejar.Jar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return jar, nil
}

func (j *PersistentJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.jar.Cookies(u)
}

// SetCookies accepts the cookies of a response. Persistence failures are
// logged; the in-memory jar is updated regardless.
func (j *PersistentJar) SetCookies(u *url.URL, cs []*http.Cookie) {
	j.mu.RLock()
	j.jar.SetCookies(u, cs)
	j.mu.RUnlock()

	if len(cs) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	origin := originOf(u)
	now := j.now()
	err := dbx.WithTx(ctx, j.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := cookies.NewSQLiteRepository(tx)
		for _, c := range cs {
			stored := toStored(origin, c, now)
			if c.MaxAge < 0 || stored.Expired(now) {
				if err := repo.Delete(ctx, origin, c.Name); err != nil {
					return err
				}
				continue
			}
			if err := repo.Upsert(ctx, stored); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		j.log.Error(ctx, "persist cookies failed", "origin", origin, "error", err)
	}
}

// Load replays the persisted, unexpired cookies into the jar and prunes the
// expired ones.
func (j *PersistentJar) Load(ctx context.Context) error {
	repo := cookies.NewSQLiteRepository(j.db)
	stored, err := repo.List(ctx)
	if err != nil {
		return err
	}

	now := j.now()
	j.mu.RLock()
	defer j.mu.RUnlock()
	for _, c := range stored {
		if c.Expired(now) {
			if err := repo.Delete(ctx, c.URL, c.Name); err != nil {
				return err
			}
			continue
		}
		u, err := url.Parse(c.URL)
		if err != nil {
			j.log.Warn(ctx, "skipping cookie with bad origin", "origin", c.URL, "error", err)
			continue
		}
		j.jar.SetCookies(u, []*http.Cookie{fromStored(c)})
	}
	return nil
}

// Clear forgets every cookie, in memory and on disk.
func (j *PersistentJar) Clear(ctx context.Context) error {
	jar, err := newMemoryJar()
	if err != nil {
		return err
	}
	j.mu.Lock()
	j.jar = jar
	j.mu.Unlock()

	return cookies.NewSQLiteRepository(j.db).Clear(ctx)
}

func originOf(u *url.URL) string {
	return u.Scheme + "://" + u.Host
}

func toStored(origin string, c *http.Cookie, now time.Time) models.StoredCookie {
	expires := c.Expires
	if c.MaxAge > 0 {
		expires = now.Add(time.Duration(c.MaxAge) * time.Second)
	}
	return models.StoredCookie{
		URL:      origin,
		Name:     c.Name,
		Value:    c.Value,
		Domain:   c.Domain,
		Path:     c.Path,
		Expires:  expires,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
	}
}

func fromStored(c models.StoredCookie) *http.Cookie {
	return &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Domain:   c.Domain,
		Path:     c.Path,
		Expires:  c.Expires,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
	}
}
