package cli

import (
	"context"
	"os"

	"github.com/framepeach/framepeach/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email and password and creates an account on
// the auth service. The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.apiClient.Register(ctx, firstName, lastName, email, string(password)); err != nil {
		return err
	}

	printlnFn("Account created, you can log in now.")
	return nil
}

// Login prompts for credentials and authenticates against the auth
// service. A successful login stores the session token on the client and
// switches the editor to online mode. When the server is unreachable the
// editor stays usable; editing is local either way.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.apiClient.Login(ctx, email, string(password))
	if err != nil {
		a.setMode(ModeOffline)
		return err
	}

	a.userName = user.Email
	a.setMode(ModeOnline)
	printlnFn("Logged in as", user.FirstName, user.LastName)
	return nil
}

// Logout drops the session token; the local project stays untouched.
func (a *App) Logout(ctx context.Context) error {
	a.apiClient.Logout()
	a.userName = ""
	return nil
}
