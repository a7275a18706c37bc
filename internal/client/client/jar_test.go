package client

import (
	"context"
	"database/sql"
	"net/http"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/client/repositories/cookies"
	"github.com/dmitrijs2005/userconsole/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJarDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDatabase(context.Background(), filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func mustURL(t *testing.T, s string) *url.URL {
	t.Helper()
	u, err := url.Parse(s)
	require.NoError(t, err)
	return u
}

func TestPersistentJar_SurvivesRestart(t *testing.T) {
	db := newJarDB(t)
	api := mustURL(t, "http://127.0.0.1:3001/auth/login")

	jar, err := NewPersistentJar(db, logging.Nop())
	require.NoError(t, err)
	jar.SetCookies(api, []*http.Cookie{{Name: "session", Value: "tok", Path: "/", MaxAge: 3600, HttpOnly: true}})

	fresh, err := NewPersistentJar(db, logging.Nop())
	require.NoError(t, err)
	assert.Empty(t, fresh.Cookies(mustURL(t, "http://127.0.0.1:3001/users")))

	require.NoError(t, fresh.Load(context.Background()))
	got := fresh.Cookies(mustURL(t, "http://127.0.0.1:3001/users"))
	require.Len(t, got, 1)
	assert.Equal(t, "session", got[0].Name)
	assert.Equal(t, "tok", got[0].Value)
}

func TestPersistentJar_DeletionCookieRemovesRow(t *testing.T) {
	db := newJarDB(t)
	api := mustURL(t, "http://127.0.0.1:3001/")

	jar, err := NewPersistentJar(db, logging.Nop())
	require.NoError(t, err)
	jar.SetCookies(api, []*http.Cookie{{Name: "session", Value: "tok", Path: "/"}})
	jar.SetCookies(api, []*http.Cookie{{Name: "session", Value: "", Path: "/", MaxAge: -1}})

	rows, err := cookies.NewSQLiteRepository(db).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Empty(t, jar.Cookies(api))
}

func TestPersistentJar_LoadPrunesExpired(t *testing.T) {
	db := newJarDB(t)
	api := mustURL(t, "http://127.0.0.1:3001/")

	jar, err := NewPersistentJar(db, logging.Nop())
	require.NoError(t, err)
	jar.SetCookies(api, []*http.Cookie{{Name: "session", Value: "tok", Path: "/", MaxAge: 60}})

	later, err := NewPersistentJar(db, logging.Nop())
	require.NoError(t, err)
	later.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	require.NoError(t, later.Load(context.Background()))

	assert.Empty(t, later.Cookies(api))
	rows, err := cookies.NewSQLiteRepository(db).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestPersistentJar_Clear(t *testing.T) {
	db := newJarDB(t)
	api := mustURL(t, "http://127.0.0.1:3001/")

	jar, err := NewPersistentJar(db, logging.Nop())
	require.NoError(t, err)
	jar.SetCookies(api, []*http.Cookie{{Name: "session", Value: "tok", Path: "/"}})
	require.Len(t, jar.Cookies(api), 1)

	require.NoError(t, jar.Clear(context.Background()))
	assert.Empty(t, jar.Cookies(api))

	rows, err := cookies.NewSQLiteRepository(db).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestPersistentJar_PersistFailureKeepsMemory(t *testing.T) {
	db := newJarDB(t)
	jar, err := NewPersistentJar(db, logging.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Close())

	api := mustURL(t, "http://127.0.0.1:3001/")
	jar.SetCookies(api, []*http.Cookie{{Name: "session", Value: "tok", Path: "/"}})
	assert.Len(t, jar.Cookies(api), 1)
}
