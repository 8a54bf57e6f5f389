package cli

import (
	"context"
	"os"

	"github.com/gestorverde/gestorverde/internal/api"
)

// getSimpleText, getEmail and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getEmail = GetEmail
var getPassword = GetPassword

// Login prompts for credentials and signs in. While the attempt is in
// flight the REPL is blocked, which plays the role the disabled submit
// button plays in a graphical client. On failure the attempt error (kind
// and message) is shown; an existing session from a previous login is left
// untouched.
func (a *App) Login(ctx context.Context) error {
	email, err := getEmail(a.reader, "Email", os.Stdout)
	if err != nil {
		a.notify("Error: %v", err)
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.SignIn(ctx, api.Credentials{Email: email, Password: string(password)}); err != nil {
		if attempt := a.session.Err(); attempt != nil {
			a.notify("Error: %s", attempt.Message)
		}
		return err
	}

	a.notify("Sesión iniciada como %s", email)
	return nil
}

// Register prompts for the registration fields and creates an account.
// A successful sign-up leaves the user signed in, same as the web client.
func (a *App) Register(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "Nombre", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Apellido", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Teléfono", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getEmail(a.reader, "Email", os.Stdout)
	if err != nil {
		a.notify("Error: %v", err)
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	reg := api.Registration{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		Email:     email,
		Password:  string(password),
	}
	if err := a.session.SignUp(ctx, reg); err != nil {
		if attempt := a.session.Err(); attempt != nil {
			a.notify("Error: %s", attempt.Message)
		}
		return err
	}

	a.notify("Cuenta creada, sesión iniciada como %s", email)
	return nil
}

// Logout clears the session and the persisted token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.notify("Sesión cerrada")
	return nil
}

// Whoami shows the identity decoded from the current token.
func (a *App) Whoami(ctx context.Context) error {
	ident, ok := a.session.Identity()
	if !ok {
		a.notify("No has iniciado sesión")
		return nil
	}
	a.notify("%s <%s>", ident.FullName(), ident.Email)
	return nil
}

// DeleteAccount removes the user's account after explicit confirmation and
// then clears the local session.
func (a *App) DeleteAccount(ctx context.Context) error {
	if !Confirm(a.reader, "¿Eliminar tu cuenta definitivamente?", os.Stdout) {
		a.notify("Operación cancelada")
		return nil
	}
	if err := a.client.DeleteAccount(ctx); err != nil {
		a.notify("Error al eliminar la cuenta: %v", err)
		return err
	}
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.notify("Cuenta eliminada")
	return nil
}
