package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/geofeed/internal/client/client"
	"github.com/dmitrijs2005/geofeed/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// errUsage makes the REPL print the command's usage line.
var errUsage = errors.New("usage")

// command is one REPL verb.
type command struct {
	name string
	args string
	help string
	auth bool
	run  func(ctx context.Context, args []string) error
}

// execIface is the surface runREPL needs. *App satisfies it; tests provide
// a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	commands() []command
	takeInvalidated() bool
}

// runREPL reads one command per line and dispatches it. Commands marked as
// needing a session are refused while logged out. Handler errors are printed
// and the loop continues. The loop exits on EOF or on "exit" / "quit".
//
// Lines are read from the same reader the prompts use, so a command that
// asks for input consumes exactly the lines typed after it.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	table := make(map[string]command)
	for _, c := range a.commands() {
		table[c.name] = c
	}

	for {
		printlnFn(fmt.Sprintf("geofeed %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		if !dispatch(ctx, a, table, strings.Fields(line)) || err != nil {
			return
		}
	}
}

// dispatch runs one parsed line and reports whether the loop should go on.
func dispatch(ctx context.Context, a execIface, table map[string]command, parts []string) bool {
	if len(parts) == 0 {
		return true
	}
	name, args := parts[0], parts[1:]

	switch name {
	case "help":
		printHelp(a.commands(), a.isLoggedIn())
		return true
	case "exit", "quit":
		printlnFn("Bye!")
		return false
	}

	cmd, ok := table[name]
	if !ok {
		printlnFn("Unknown command:", name)
		return true
	}
	if cmd.auth && !a.isLoggedIn() {
		printlnFn("Please log in first.")
		return true
	}

	if err := cmd.run(ctx, args); err != nil {
		reportError(cmd, err)
	}
	if a.takeInvalidated() {
		printlnFn("Your session has expired. Please log in again.")
	}
	return true
}

func printHelp(cmds []command, loggedIn bool) {
	printlnFn("Available commands:")
	for _, c := range cmds {
		if c.auth && !loggedIn {
			continue
		}
		printlnFn(fmt.Sprintf("  %-28s %s", strings.TrimSpace(c.name+" "+c.args), c.help))
	}
	printlnFn(fmt.Sprintf("  %-28s %s", "help", "show this list"))
	printlnFn(fmt.Sprintf("  %-28s %s", "exit", "leave the program"))
}

func reportError(cmd command, err error) {
	switch {
	case errors.Is(err, errUsage):
		printlnFn("Usage:", strings.TrimSpace(cmd.name+" "+cmd.args))
	case errors.Is(err, services.ErrValidation):
		printlnFn(err.Error())
	case errors.Is(err, client.ErrSessionInvalidated):
		// reported once via takeInvalidated
	case client.IsAuthError(err):
		printlnFn("Not authorized. Please log in.")
	case errors.Is(err, client.ErrNotFound):
		printlnFn("Not found.")
	case errors.Is(err, client.ErrUnavailable):
		printlnFn("Server unavailable, try again later.")
	default:
		printlnFn("Error:", err)
	}
}
