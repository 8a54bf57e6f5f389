package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
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
	Whoami(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Browse(ctx context.Context, args []string) error
	Mine(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	DeleteTerrain(ctx context.Context, args []string) error
	Seeds(ctx context.Context) error
	AddCrop(ctx context.Context, args []string) error
	EditCrop(ctx context.Context, args []string) error
	DeleteCrop(ctx context.Context, args []string) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print their
// own notices. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("gv %s> ", statusFn()))
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
			if a.isLoggedIn() {
				printlnFn("Comandos: browse [pág], my [pág], add, edit <id>, show <id>, delete <id>, seeds, addcrop <terreno>, editcrop <terreno> <cultivo>, delcrop <id>, whoami, logout, account-delete, exit")
			} else {
				printlnFn("Comandos: register, login, browse [pág], show <id>, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "account-delete":
			_ = a.DeleteAccount(ctx)

		case "b", "browse":
			_ = a.Browse(ctx, args)

		case "my", "mine":
			_ = a.Mine(ctx, args)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			_ = a.Edit(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "delete":
			_ = a.DeleteTerrain(ctx, args)

		case "seeds":
			_ = a.Seeds(ctx)

		case "addcrop":
			_ = a.AddCrop(ctx, args)

		case "editcrop":
			_ = a.EditCrop(ctx, args)

		case "delcrop":
			_ = a.DeleteCrop(ctx, args)

		case "exit", "quit":
			printlnFn("¡Hasta luego!")
			return

		default:
			printlnFn("Comando desconocido:", cmd)
		}
	}
}

// getStatus renders the prompt fragment showing who is signed in.
func (a *App) getStatus() string {
	ident, ok := a.session.Identity()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s)", ident.Email)
}

// Root starts the interactive loop and blocks until the user exits.
func (a *App) Root(ctx context.Context) {
	printlnFn("GestorVerde CLI (escribe 'help' para ver los comandos)")
	if ident, ok := a.session.Identity(); ok {
		a.notify("Sesión restaurada: %s", ident.Email)
	}
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
