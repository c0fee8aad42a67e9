package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/medixpert/medixpert-cli/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the registration fields and attempts to create a new
// account. Registration never signs the user in; on success they are invited
// to log in. Backend validation errors are already flattened to one line per
// field by the session controller and are printed as-is.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "First name (optional)", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name (optional)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	reg := models.Registration{
		Username:  username,
		Email:     email,
		Password:  string(password),
		FirstName: firstName,
		LastName:  lastName,
	}

	if _, err := a.session.Register(ctx, reg); err != nil {
		fmt.Println("Registration unsuccessful:")
		fmt.Println(err)
		return nil
	}

	fmt.Println("Account created, you can log in now.")
	return nil
}

// Login prompts for credentials and tries to authenticate. On success the
// session controller persists the session pair; on failure the session stays
// signed out and a display-ready message is printed.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if err := a.session.Login(ctx, username, string(password)); err != nil {
		fmt.Println("Login unsuccessful:", err)
		return nil
	}

	fmt.Println("Login successful")
	return nil
}

// Logout clears the session and returns to the signed-out prompt.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Println("Logout failed:", err)
		return nil
	}
	fmt.Println("Logged out")
	return nil
}
