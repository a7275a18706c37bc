package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/nav"
	"github.com/dmitrijs2005/userconsole/internal/client/projection"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	screen() nav.Route
	view() projection.View
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	List(ctx context.Context) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Page(ctx context.Context, n int) error
	Filter(ctx context.Context, field models.FilterField, text string) error
	Reload(ctx context.Context) error
	New(ctx context.Context) error
	Edit(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the console.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Which commands are accepted depends on the
// current screen:
//
//	Login screen:
//	  - help           show available commands
//	  - login          sign in
//	  - signup         create an account
//	  - exit | quit    leave the program
//
//	Users screen:
//	  - help           show available commands
//	  - list | l       print the current page
//	  - next, prev     move one page
//	  - page N         jump to page N
//	  - reload         fetch the current page again
//	  - filter email|phone TEXT, filter none   (admin)
//	  - new, edit ID, delete ID                 (admin)
//	  - logout         end the session
//	  - exit | quit    leave the program
//
// Errors returned by handlers are printed and the loop continues. The loop
// exits on EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("uc> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if cmd == "help" {
			printlnFn(helpText(a.screen(), a.view()))
			continue
		}

		var cmdErr error
		switch a.screen() {
		case nav.RouteLogin, nav.RouteSignup:
			cmdErr = loggedOutCommand(ctx, a, cmd)
		default:
			cmdErr = usersCommand(ctx, a, cmd, args)
		}
		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
		if err != nil {
			return
		}
	}
}

var errUnknownCommand = errors.New("unknown command")

func loggedOutCommand(ctx context.Context, a execIface, cmd string) error {
	switch cmd {
	case "login":
		return a.Login(ctx)
	case "signup", "register":
		return a.Signup(ctx)
	}
	return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
}

func usersCommand(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "l", "list":
		return a.List(ctx)
	case "next", "n":
		return a.Next(ctx)
	case "prev", "p":
		return a.Prev(ctx)
	case "page":
		if len(args) != 1 {
			return errors.New("usage: page N")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("usage: page N: %w", err)
		}
		return a.Page(ctx, n)
	case "reload", "r":
		return a.Reload(ctx)
	case "filter":
		if len(args) == 0 {
			return a.Filter(ctx, models.FilterNone, "")
		}
		field, err := models.ParseFilterField(args[0])
		if err != nil {
			return err
		}
		if field != models.FilterNone && len(args) < 2 {
			return errors.New("usage: filter email|phone TEXT")
		}
		return a.Filter(ctx, field, strings.Join(args[1:], " "))
	case "new":
		return a.New(ctx)
	case "edit", "delete":
		if len(args) != 1 {
			return fmt.Errorf("usage: %s ID", cmd)
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("usage: %s ID: %w", cmd, err)
		}
		if cmd == "edit" {
			return a.Edit(ctx, id)
		}
		return a.Delete(ctx, id)
	case "logout":
		return a.Logout(ctx)
	}
	return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
}

func helpText(screen nav.Route, v projection.View) string {
	switch screen {
	case nav.RouteLogin, nav.RouteSignup:
		return "Available commands: login, signup, exit"
	}
	cmds := []string{"(l)ist", "next", "prev", "page N", "reload"}
	if v.CanFilter {
		cmds = append(cmds, "filter email|phone TEXT", "filter none")
	}
	if v.CanCreate {
		cmds = append(cmds, "new")
	}
	if v.CanEdit {
		cmds = append(cmds, "edit ID")
	}
	if v.CanDelete {
		cmds = append(cmds, "delete ID")
	}
	cmds = append(cmds, "logout", "exit")
	return "Available commands: " + strings.Join(cmds, ", ")
}
