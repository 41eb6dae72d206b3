package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/staffdesk/internal/client/login"
	"github.com/dmitrijs2005/staffdesk/internal/client/session"
	"github.com/dmitrijs2005/staffdesk/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for a username and password and runs a password attempt.
// An empty username reuses the last one that signed in. The password is
// wiped before Login returns whatever the outcome.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already signed in; logout first.")
		return login.ErrSignedIn
	}

	prompt := "Enter username"
	last := a.session.LastUsername(ctx)
	if last != "" {
		prompt = fmt.Sprintf("Enter username [%s]", last)
	}

	username, err := getSimpleText(ctx, a.lines, prompt, a.out)
	if err != nil {
		return err
	}
	if username == "" {
		username = last
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	state, err := a.seq.SubmitPassword(ctx, username, password)
	return a.finish(ctx, state, err)
}

// Biometric runs a biometric attempt with the device authenticator.
func (a *App) Biometric(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already signed in; logout first.")
		return login.ErrSignedIn
	}

	state, err := a.seq.SubmitBiometric(ctx)
	return a.finish(ctx, state, err)
}

func (a *App) finish(ctx context.Context, state login.State, err error) error {
	switch {
	case errors.Is(err, login.ErrBusy):
		fmt.Fprintln(a.out, "A sign-in is already in progress.")
	case errors.Is(err, login.ErrSignedIn):
		fmt.Fprintln(a.out, "Already signed in; logout first.")
	case state.Stage == login.StageInactive:
		a.acknowledge(ctx)
	}

	if err != nil {
		a.logger.Debug(ctx, "sign-in finished", "stage", state.Stage.String(), "error", err)
	}
	return err
}

// acknowledge holds the inactive-account notice until the user presses Enter.
func (a *App) acknowledge(ctx context.Context) {
	_, _ = getSimpleText(ctx, a.lines, "Press Enter to continue", a.out)
}

// Logout ends the session and returns the console to the anonymous state.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	if err := a.seq.SignOut(ctx); err != nil {
		return err
	}
	a.session.Clear(ctx)
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// WhoAmI prints the signed-in account.
func (a *App) WhoAmI(ctx context.Context) error {
	acc, ok := a.session.Current()
	if !ok {
		fmt.Fprintln(a.out, "anonymous")
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s)\n", acc.Username, acc.Role.Name)
	return nil
}

// Theme prints the active theme, or switches to the one named in args.
func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, a.session.Theme())
		return nil
	}

	theme, err := session.ParseTheme(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Usage: theme [light|dark]")
		return err
	}
	return a.session.SetTheme(ctx, theme)
}
