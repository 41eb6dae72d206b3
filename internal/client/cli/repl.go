package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/staffdesk/internal/client/platform"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Biometric(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Theme(ctx context.Context, args []string) error
}

// runREPL reads commands from lines and dispatches them to a until EOF,
// "exit"/"quit", or ctx is done.
//
//	help           show available commands
//	login          sign in with username and password
//	bio            sign in with the device authenticator
//	whoami         show the signed-in account
//	theme [name]   show or set the theme
//	logout         end the session
//	exit | quit    leave the program
//
// Command errors are not fatal; handlers report outcomes themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, lines *platform.Lines) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("staffdesk %s> ", statusFn()))
		line, err := lines.ReadLine(ctx)
		if err != nil {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, theme, logout, exit")
			} else {
				printlnFn("Available commands: login, bio, theme, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "bio":
			_ = a.Biometric(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "theme":
			_ = a.Theme(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
