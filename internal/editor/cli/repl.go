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
	Add(ctx context.Context, kind string) error
	List(ctx context.Context) error
	Select(ctx context.Context, ref string) error
	Transform(ctx context.Context, kind, axis, value string) error
	Material(ctx context.Context, property, value string) error
	ToggleVisibility(ctx context.Context, ref string) error
	ToggleLock(ctx context.Context, ref string) error
	Delete(ctx context.Context) error
	Duplicate(ctx context.Context) error
	Rename(ctx context.Context, name string) error
	Save(ctx context.Context) error
	Load(ctx context.Context) error
	NewProject(ctx context.Context) error
	Assets(ctx context.Context) error
	Import(ctx context.Context, path string) error
}

// runREPL starts a simple read–eval–print loop for the FramePeach editor.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	register / login / logout     — account management
//	add <kind>                    — add a cube, sphere, plane, ...
//	list | l                      — list scene objects
//	select <id|index>             — select an object
//	pos|rot|scale <x|y|z> <value> — edit the selected object's transform
//	mat <property> <value>        — edit the selected object's material
//	vis <id|index>                — toggle visibility
//	lock <id|index>               — toggle lock
//	del / dup                     — delete or duplicate the selection
//	rename <name>                 — rename the selection
//	save / load / new             — project persistence
//	assets / import <path>        — user asset library
//	exit | quit                   — leave the program
//
// Any errors returned by command handlers are printed here, not fatal; this
// keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	run := func(err error) {
		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}

	for {
		printlnFn(fmt.Sprintf("fp> %s > ", statusFn()))
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

		switch cmd {
		case "help":
			printlnFn("Scene: add <kind>, (l)ist, select <id>, pos|rot|scale <x|y|z> <v>, mat <prop> <v>,")
			printlnFn("       vis <id>, lock <id>, del, dup, rename <name>")
			printlnFn("Project: save, load, new, assets, import <path>")
			if a.isLoggedIn() {
				printlnFn("Account: logout, exit")
			} else {
				printlnFn("Account: register, login, exit")
			}

		case "register":
			run(a.Register(ctx))

		case "login":
			run(a.Login(ctx))

		case "logout":
			run(a.Logout(ctx))

		case "add":
			if len(args) != 1 {
				printlnFn("Usage: add <kind>")
				continue
			}
			run(a.Add(ctx, args[0]))

		case "l", "list":
			run(a.List(ctx))

		case "select":
			if len(args) != 1 {
				printlnFn("Usage: select <id|index>")
				continue
			}
			run(a.Select(ctx, args[0]))

		case "pos", "rot", "scale":
			if len(args) != 2 {
				printlnFn(fmt.Sprintf("Usage: %s <x|y|z> <value>", cmd))
				continue
			}
			run(a.Transform(ctx, cmd, args[0], args[1]))

		case "mat":
			if len(args) != 2 {
				printlnFn("Usage: mat <property> <value>")
				continue
			}
			run(a.Material(ctx, args[0], args[1]))

		case "vis":
			if len(args) != 1 {
				printlnFn("Usage: vis <id|index>")
				continue
			}
			run(a.ToggleVisibility(ctx, args[0]))

		case "lock":
			if len(args) != 1 {
				printlnFn("Usage: lock <id|index>")
				continue
			}
			run(a.ToggleLock(ctx, args[0]))

		case "del":
			run(a.Delete(ctx))

		case "dup":
			run(a.Duplicate(ctx))

		case "rename":
			if len(args) == 0 {
				printlnFn("Usage: rename <name>")
				continue
			}
			run(a.Rename(ctx, strings.Join(args, " ")))

		case "save":
			run(a.Save(ctx))

		case "load":
			run(a.Load(ctx))

		case "new":
			run(a.NewProject(ctx))

		case "assets":
			run(a.Assets(ctx))

		case "import":
			if len(args) != 1 {
				printlnFn("Usage: import <path>")
				continue
			}
			run(a.Import(ctx, args[0]))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
