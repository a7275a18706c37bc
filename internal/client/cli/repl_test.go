package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/nav"
	"github.com/dmitrijs2005/userconsole/internal/client/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	route nav.Route
	role  models.Role

	calls []string
	err   error
}

func (f *fakeExec) screen() nav.Route { return f.route }
func (f *fakeExec) view() projection.View { return projection.Project(f.role) }
func (f *fakeExec) rec(format string, a ...any) { f.calls = append(f.calls, fmt.Sprintf(format, a...)) }

func (f *fakeExec) Login(ctx context.Context) error {
	f.rec("login")
	f.route = nav.RouteUsers
	return nil
}
func (f *fakeExec) Signup(ctx context.Context) error { f.rec("signup"); return nil }
func (f *fakeExec) List(ctx context.Context) error { f.rec("list"); return f.err }
func (f *fakeExec) Next(ctx context.Context) error { f.rec("next"); return nil }
func (f *fakeExec) Prev(ctx context.Context) error { f.rec("prev"); return nil }
func (f *fakeExec) Page(ctx context.Context, n int) error {
	f.rec("page %d", n)
	return nil
}
func (f *fakeExec) Filter(ctx context.Context, field models.FilterField, text string) error {
	f.rec("filter %s %q", field, text)
	return nil
}
func (f *fakeExec) Reload(ctx context.Context) error { f.rec("reload"); return nil }
func (f *fakeExec) New(ctx context.Context) error { f.rec("new"); return nil }
func (f *fakeExec) Edit(ctx context.Context, id int64) error {
	f.rec("edit %d", id)
	return nil
}
func (f *fakeExec) Delete(ctx context.Context, id int64) error {
	f.rec("delete %d", id)
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.rec("logout")
	f.route = nav.RouteLogin
	return nil
}

// capturePrint swaps printlnFn for a recorder.
func capturePrint(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func script(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	capturePrint(t)

	exec := &fakeExec{route: nav.RouteLogin, role: models.RoleAdmin}
	in := script(
		"help",
		"list",
		"login",
		"help",
		"list",
		"next",
		"prev",
		"page 3",
		"filter email ann@x.com",
		"filter phone 555 12",
		"filter none",
		"reload",
		"new",
		"edit 7",
		"delete 8",
		"logout",
		"exit",
	)

	runREPL(context.Background(), exec, func() string { return "status" }, in)

	assert.Equal(t, []string{
		"login",
		"list",
		"next",
		"prev",
		"page 3",
		`filter email "ann@x.com"`,
		`filter phone "555 12"`,
		`filter  ""`,
		"reload",
		"new",
		"edit 7",
		"delete 8",
		"logout",
	}, exec.calls)
}

func TestRunREPL_UsageErrorsDoNotDispatch(t *testing.T) {
	lines := capturePrint(t)

	exec := &fakeExec{route: nav.RouteUsers}
	in := script("page", "page x", "edit", "delete abc", "filter email", "filter name bob", "bogus", "quit")

	runREPL(context.Background(), exec, func() string { return "s" }, in)

	assert.Empty(t, exec.calls)
	out := strings.Join(*lines, "")
	assert.Contains(t, out, "usage: page N")
	assert.Contains(t, out, "usage: edit ID")
	assert.Contains(t, out, "unknown filter field")
	assert.Contains(t, out, "unknown command: bogus")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_HandlerErrorIsPrinted(t *testing.T) {
	lines := capturePrint(t)

	exec := &fakeExec{route: nav.RouteUsers, err: errors.New("boom")}
	runREPL(context.Background(), exec, func() string { return "s" }, script("list"))

	require.Equal(t, []string{"list"}, exec.calls, "last line without newline still runs")
	assert.Contains(t, strings.Join(*lines, ""), "Error: boom")
}

func TestRunREPL_EOFExits(t *testing.T) {
	capturePrint(t)
	exec := &fakeExec{route: nav.RouteLogin}
	runREPL(context.Background(), exec, func() string { return "s" }, script())
	assert.Empty(t, exec.calls)
}

func TestHelpText_FollowsRole(t *testing.T) {
	assert.Equal(t, "Available commands: login, signup, exit", helpText(nav.RouteLogin, projection.View{}))

	user := helpText(nav.RouteUsers, projection.Project(models.RoleUser))
	assert.NotContains(t, user, "filter")
	assert.NotContains(t, user, "delete")

	admin := helpText(nav.RouteUsers, projection.Project(models.RoleAdmin))
	for _, c := range []string{"filter none", "new", "edit ID", "delete ID", "logout"} {
		assert.Contains(t, admin, c)
	}
}
