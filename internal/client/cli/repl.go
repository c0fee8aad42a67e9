package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Diagnose(ctx context.Context) error
	Symptoms(ctx context.Context) error
	Diseases(ctx context.Context) error
	History(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Records(ctx context.Context) error
	Ping(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the MediXpert CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not signed in:
//	  - help               show available commands
//	  - register           create an account
//	  - login              authenticate
//	  - symptoms, diseases browse the public catalog
//	  - ping               check backend liveness
//	  - exit | quit        leave the program
//
//	Signed in, additionally:
//	  - diagnose           run the symptom form and submit a prediction
//	  - history            list prior predictions
//	  - dashboard          show activity statistics
//	  - records            list health records
//	  - logout             sign out
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mx> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: diagnose, history, dashboard, records, symptoms, diseases, ping, logout, exit")
			} else {
				printlnFn("Available commands: register, login, symptoms, diseases, ping, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "diagnose":
			_ = a.Diagnose(ctx)

		case "symptoms":
			_ = a.Symptoms(ctx)

		case "diseases":
			_ = a.Diseases(ctx)

		case "h", "history":
			_ = a.History(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "records":
			_ = a.Records(ctx)

		case "ping":
			_ = a.Ping(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
