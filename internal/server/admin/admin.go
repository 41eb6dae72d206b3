// Package admin implements the maintenance commands operators run against
// the credential store: creating and editing accounts, binding biometric
// credentials to them and issuing console api keys.
package admin

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/staffdesk/internal/common"
	"github.com/dmitrijs2005/staffdesk/internal/server/auth"
	"github.com/dmitrijs2005/staffdesk/internal/server/models"
	"github.com/dmitrijs2005/staffdesk/internal/server/services"
	"golang.org/x/term"
)

// ErrUnknownCommand is returned when args name no command.
var ErrUnknownCommand = errors.New("unknown command")

// AccountService is the part of services.AccountService the tool drives.
type AccountService interface {
	Save(ctx context.Context, form services.AccountForm) (*models.Account, error)
	RegisterCredential(ctx context.Context, accountID, credentialID string) (*models.BiometricCredential, error)
}

type Tool struct {
	accounts AccountService
	secret   []byte
	validity time.Duration
	out      io.Writer

	// readPassword is a seam for tests.
	readPassword func() ([]byte, error)
}

func NewTool(as AccountService, secretKey string, validity time.Duration, out io.Writer) *Tool {
	return &Tool{
		accounts: as,
		secret:   []byte(secretKey),
		validity: validity,
		out:      out,
		readPassword: func() ([]byte, error) {
			fmt.Fprint(out, "Password: ")
			defer fmt.Fprintln(out)
			return term.ReadPassword(int(os.Stdin.Fd()))
		},
	}
}

type command struct {
	usage string
	run   func(t *Tool, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"create-account":      {usage: "-username NAME -role ROLE -active[=false] [-password PW]", run: (*Tool).createAccount},
	"edit-account":        {usage: "-id ID -username NAME -role ROLE -active[=false] [-password PW]", run: (*Tool).editAccount},
	"register-credential": {usage: "-account ID -credential BASE64URL", run: (*Tool).registerCredential},
	"issue-key":           {usage: "-console NAME", run: (*Tool).issueKey},
}

// findCommand returns the first command named in args and the arguments
// after it. Anything before the command name belongs to the global config
// flags.
func findCommand(args []string) (command, []string, bool) {
	for i, a := range args {
		if cmd, ok := commands[a]; ok {
			return cmd, args[i+1:], true
		}
	}
	return command{}, nil, false
}

// HasCommand reports whether args name a command.
func HasCommand(args []string) bool {
	_, _, ok := findCommand(args)
	return ok
}

func (t *Tool) Run(ctx context.Context, args []string) error {
	cmd, rest, ok := findCommand(args)
	if !ok {
		return ErrUnknownCommand
	}
	return cmd.run(t, ctx, rest)
}

// Usage writes the command summary to w.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "usage: staffdesk-admin [-c config.json] [-d dsn] [-s secret] [-t hours] <command> [flags]")
	for _, name := range []string{"create-account", "edit-account", "register-credential", "issue-key"} {
		fmt.Fprintf(w, "  %-20s %s\n", name, commands[name].usage)
	}
}

// optionalBool is a boolean flag that remembers whether it was given.
type optionalBool struct {
	value *bool
}

func (o *optionalBool) String() string {
	if o == nil || o.value == nil {
		return ""
	}
	return strconv.FormatBool(*o.value)
}

func (o *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	o.value = &v
	return nil
}

func (o *optionalBool) IsBoolFlag() bool { return true }

type accountFlags struct {
	id       string
	username string
	password string
	role     string
	active   optionalBool
}

func (t *Tool) parseAccountFlags(name string, args []string, withID bool) (*accountFlags, error) {
	f := &accountFlags{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(t.out)
	if withID {
		fs.StringVar(&f.id, "id", "", "account id")
	}
	fs.StringVar(&f.username, "username", "", "login name")
	fs.StringVar(&f.password, "password", "", "password; prompted when omitted")
	fs.StringVar(&f.role, "role", "", "role name (admin, hr, staff)")
	fs.Var(&f.active, "active", "whether the account may sign in")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInputInvalid, err)
	}
	return f, nil
}

func (t *Tool) createAccount(ctx context.Context, args []string) error {
	f, err := t.parseAccountFlags("create-account", args, false)
	if err != nil {
		return err
	}

	if f.password == "" {
		pw, err := t.readPassword()
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		f.password = string(pw)
		common.WipeByteArray(pw)
	}

	account, err := t.accounts.Save(ctx, &services.CreateAccountForm{
		Username: f.username,
		Password: f.password,
		RoleName: f.role,
		Active:   f.active.value,
	})
	if err != nil {
		return err
	}

	t.printAccount("created", account)
	return nil
}

func (t *Tool) editAccount(ctx context.Context, args []string) error {
	f, err := t.parseAccountFlags("edit-account", args, true)
	if err != nil {
		return err
	}

	account, err := t.accounts.Save(ctx, &services.EditAccountForm{
		ID:       f.id,
		Username: f.username,
		Password: f.password,
		RoleName: f.role,
		Active:   f.active.value,
	})
	if err != nil {
		return err
	}

	t.printAccount("updated", account)
	return nil
}

func (t *Tool) registerCredential(ctx context.Context, args []string) error {
	var accountID, credentialID string
	fs := flag.NewFlagSet("register-credential", flag.ContinueOnError)
	fs.SetOutput(t.out)
	fs.StringVar(&accountID, "account", "", "account id")
	fs.StringVar(&credentialID, "credential", "", "credential id, unpadded base64url")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", common.ErrorInputInvalid, err)
	}

	c, err := t.accounts.RegisterCredential(ctx, accountID, credentialID)
	if err != nil {
		return err
	}

	fmt.Fprintf(t.out, "registered credential %s for account %s\n", c.CredentialID, c.AccountID)
	return nil
}

func (t *Tool) issueKey(_ context.Context, args []string) error {
	var console string
	fs := flag.NewFlagSet("issue-key", flag.ContinueOnError)
	fs.SetOutput(t.out)
	fs.StringVar(&console, "console", "", "console name the key is issued to")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", common.ErrorInputInvalid, err)
	}

	console = strings.TrimSpace(console)
	if console == "" {
		return fmt.Errorf("%w: missing console", common.ErrorInputInvalid)
	}

	key, err := auth.GenerateAPIKey(console, t.secret, t.validity)
	if err != nil {
		return fmt.Errorf("sign key: %w", err)
	}

	fmt.Fprintln(t.out, key)
	return nil
}

func (t *Tool) printAccount(verb string, a *models.Account) {
	fmt.Fprintf(t.out, "%s account %s\n  username: %s\n  role:     %s\n  active:   %t\n",
		verb, a.ID, a.Username, a.Role.Name, a.IsActive)
}
