package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/contactkeeper/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the account fields and creates the account via the
// session manager. A successful registration signs the user in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	tenant, err := getSimpleText(a.reader, "Enter organization (empty for default)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	creds := models.RegisterCredentials{
		Email:      email,
		Username:   username,
		Password:   password,
		TenantName: tenant,
	}
	if err := a.session.Register(ctx, creds, ""); err != nil {
		return err
	}

	fmt.Printf("Welcome, %s!\n", username)
	return nil
}

// Login prompts for credentials and authenticates via the session manager.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	creds := models.LoginCredentials{Username: username, Password: password}
	if err := a.session.Login(ctx, creds, ""); err != nil {
		return err
	}

	fmt.Printf("Welcome, %s!\n", a.session.Session().User.Username)
	return nil
}

// ResetPassword asks the backend to send a reset link for the given email.
// The confirmation is intentionally the same whether or not the account
// exists.
func (a *App) ResetPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.api.RequestPasswordReset(ctx, models.PasswordReset{Email: email}); err != nil {
		return err
	}
	fmt.Println("If the account exists, a reset link has been sent.")
	return nil
}

// Me shows the signed-in user's profile.
func (a *App) Me(ctx context.Context) error {
	resp, err := a.api.Me(ctx)
	if err != nil {
		return err
	}
	u := resp.User
	a.session.UpdateUser(u)

	fmt.Printf("Username: %s\nEmail:    %s\n", u.Username, u.Email)
	if u.LastLogin != nil {
		fmt.Printf("Last login: %s\n", u.LastLogin.Format("2006-01-02 15:04"))
	}
	return nil
}

// ChangePassword prompts for the current and new passwords and submits the
// change.
func (a *App) ChangePassword(ctx context.Context) error {
	current, err := getPassword(os.Stdout, "Current password")
	if err != nil {
		return err
	}
	next, err := getPassword(os.Stdout, "New password")
	if err != nil {
		return err
	}

	update := models.PasswordUpdate{CurrentPassword: current, NewPassword: next}
	if err := a.api.ChangePassword(ctx, update); err != nil {
		return err
	}
	fmt.Println("Password changed.")
	return nil
}

// Logout ends the session. Always succeeds locally.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	return nil
}
