package cli

import (
	"context"
	"errors"
	"regexp"

	"github.com/dmitrijs2005/userdir/internal/common"
)

var loginEmailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateLoginInput mirrors the checks the login form performs before any
// network call. Returns an empty string when the input is acceptable.
func validateLoginInput(email string, password []byte) string {
	if email == "" || len(password) == 0 {
		return "please fill in all fields"
	}
	if !loginEmailRe.MatchString(email) {
		return "please enter a valid email address"
	}
	if len(password) < 6 {
		return "password must be at least 6 characters"
	}
	return ""
}

// Login prompts for credentials, validates them locally, exchanges them
// for a token, and enters the directory view on success.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already logged in.")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if msg := validateLoginInput(email, password); msg != "" {
		printlnFn("Error:", msg)
		return nil
	}

	token, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUnauthorized):
			printlnFn("Error: invalid email or password")
		case errors.Is(err, common.ErrNetwork):
			printlnFn("Error: network error, please check your connection")
		default:
			printlnFn("Error: login failed, please try again")
		}
		a.log.Warn(ctx, "login failed", "error", err)
		return nil
	}

	if err := a.guard.Establish(ctx, token); err != nil {
		printlnFn("Error: could not save session")
		a.log.Error(ctx, "saving credential failed", "error", err)
		return nil
	}

	printlnFn("Login successful.")
	a.enterDirectory(ctx)
	return nil
}

// Logout clears the stored credential and returns to the login view.
func (a *App) Logout(ctx context.Context) error {
	a.guard.End()
	a.log.Info(ctx, "logged out")
	printlnFn("Logged out.")
	return nil
}
