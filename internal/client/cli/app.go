package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/userconsole/internal/client/client"
	"github.com/dmitrijs2005/userconsole/internal/client/config"
	"github.com/dmitrijs2005/userconsole/internal/client/dashboard"
	"github.com/dmitrijs2005/userconsole/internal/client/nav"
	"github.com/dmitrijs2005/userconsole/internal/client/projection"
	"github.com/dmitrijs2005/userconsole/internal/client/session"
	"github.com/dmitrijs2005/userconsole/internal/client/tui"
	"github.com/dmitrijs2005/userconsole/internal/filex"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

type App struct {
	config  *config.Config
	client  client.Client
	db      *sql.DB
	history *nav.History
	auth    session.AuthService
	dash    *dashboard.Dashboard
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the local state database, restores persisted cookies and
// builds the HTTP client and the dashboard on top of them.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if err := filex.EnsureParentDir(c.StatePath); err != nil {
		return nil, fmt.Errorf("failed to prepare state directory: %w", err)
	}

	db, err := client.InitDatabase(ctx, c.StatePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.StatePath, "error", err)
		return nil, err
	}

	jar, err := client.NewPersistentJar(db, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := jar.Load(ctx); err != nil {
		log.Warn(ctx, "could not restore cookies", "error", err)
	}

	apiClient, err := client.NewHTTPClient(c.APIURL,
		client.WithJar(jar),
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	app := newApp(apiClient, jar, log, bufio.NewReader(os.Stdin), os.Stdout)
	app.config = c
	app.db = db
	return app, nil
}

// newApp wires the console core over c. cookies may be nil.
func newApp(c client.Client, cookies session.CookieStore, log logging.Logger, reader *bufio.Reader, out io.Writer) *App {
	history := nav.NewHistory(nav.RouteUsers)
	auth := session.NewAuthService(c, cookies, history, log)
	return &App{
		config:  &config.Config{UI: config.UIREPL},
		client:  c,
		history: history,
		auth:    auth,
		dash:    dashboard.New(c, auth, history, log),
		log:     log,
		reader:  reader,
		out:     out,
	}
}

// Run mounts the users view and hands control to the configured host.
// It blocks until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	a.mount(ctx)

	if a.config.UI == config.UITUI {
		return a.runTUI(ctx)
	}

	runREPL(ctx, a, a.status, a.reader)
	return nil
}

// runTUI asks for credentials on the line first when there is no session;
// the dashboard itself needs one.
func (a *App) runTUI(ctx context.Context) error {
	for !a.loggedIn() {
		if err := a.Login(ctx); err != nil {
			return err
		}
	}
	if err := tui.Run(ctx, a.dash); err != nil {
		return err
	}
	if !a.loggedIn() {
		fmt.Fprintln(a.out, "Logged out")
	}
	return nil
}

func (a *App) Close() {
	if err := a.client.Close(); err != nil {
		a.log.Warn(context.Background(), "close client", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(context.Background(), "close state database", "error", err)
		}
	}
}

// mount starts a fresh activation of the users view. An unresolved session
// has already moved the history to the login screen.
func (a *App) mount(ctx context.Context) {
	st := a.dash.Mount(ctx)
	if !a.loggedIn() {
		fmt.Fprintln(a.out, "Please log in or sign up. Type help for commands.")
		return
	}
	if u, ok := st.Session.User(); ok {
		fmt.Fprintf(a.out, "Signed in as %s (%s)\n", u.FullName(), u.Role)
	}
	a.show(st)
}

func (a *App) screen() nav.Route {
	return a.history.Current()
}

func (a *App) view() projection.View {
	return a.dash.State().View()
}

func (a *App) loggedIn() bool {
	switch a.screen() {
	case nav.RouteLogin, nav.RouteSignup:
		return false
	}
	return true
}

// status is the REPL prompt text.
func (a *App) status() string {
	if !a.loggedIn() {
		return "logged out"
	}
	st := a.dash.State()
	s := fmt.Sprintf("page %d/%d", st.CurrentPage, st.TotalPages())
	if st.Query.Filtered() {
		s += fmt.Sprintf(" %s~%s", st.Query.Field, st.Query.Text)
	}
	if u, ok := st.Session.User(); ok {
		s = u.Email + " " + s
	}
	return s
}
