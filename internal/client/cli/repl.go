package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isUnlocked() bool
	Unlock(ctx context.Context) error
	Lock(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Show(ctx context.Context, id string) error
	Copy(ctx context.Context, id string) error
	Add(ctx context.Context) error
	Find(ctx context.Context, host string) error
	Generate(ctx context.Context, length string) error
	Status(ctx context.Context) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
//	Always:
//	  - help             show available commands
//	  - unlock           unlock (the first unlock sets the master password)
//	  - status           show session state
//	  - gen [length]     generate a password
//	  - exit | quit      leave the program
//
//	Unlocked:
//	  - (l)ist           list saved logins
//	  - search <text>    filter by site, username or URL
//	  - show <id>        print a secret
//	  - copy <id>        copy a secret to the clipboard
//	  - add              save a new login
//	  - find <host>      look up the login for a host
//	  - lock             lock the vault
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("vault %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isUnlocked() {
				printlnFn("Available commands: (l)ist, search, show, copy, add, find, gen, status, lock, exit")
			} else {
				printlnFn("Available commands: unlock, gen, status, exit")
			}

		case "unlock":
			_ = a.Unlock(ctx)

		case "lock":
			_ = a.Lock(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "copy":
			if len(args) == 0 {
				printlnFn("Usage: copy <id>")
				continue
			}
			_ = a.Copy(ctx, args[0])

		case "add":
			_ = a.Add(ctx)

		case "find":
			if len(args) == 0 {
				printlnFn("Usage: find <host>")
				continue
			}
			_ = a.Find(ctx, args[0])

		case "gen":
			length := ""
			if len(args) > 0 {
				length = args[0]
			}
			_ = a.Generate(ctx, length)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
