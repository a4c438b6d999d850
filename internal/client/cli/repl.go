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
	ResetPassword(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Favorite(ctx context.Context, args []string) error
	Me(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the ContactKeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - reset          — request a password reset
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - list [page]    — list contacts, optionally filtered: list [page] [query]
//	  - search <text>  — search contacts
//	  - show <id>      — show a single contact
//	  - add            — add a contact (interactive)
//	  - edit <id>      — edit a contact (interactive)
//	  - delete <id>    — delete a contact
//	  - fav <id>       — toggle the favorite flag
//	  - me             — show the signed-in user
//	  - passwd         — change the password
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are printed here so the loop stays
// resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ck %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		var err error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, search, show, add, edit, delete, fav, me, passwd, logout, exit")
			} else {
				printlnFn("Available commands: register, login, reset, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "reset":
			err = a.ResetPassword(ctx)

		case "l", "list":
			err = a.List(ctx, args)

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <text>")
				continue
			}
			err = a.Search(ctx, args)

		case "show":
			err = a.Show(ctx, args)

		case "add":
			err = a.Add(ctx)

		case "edit":
			err = a.Edit(ctx, args)

		case "delete":
			err = a.Delete(ctx, args)

		case "fav":
			err = a.Favorite(ctx, args)

		case "me":
			err = a.Me(ctx)

		case "passwd":
			err = a.ChangePassword(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
