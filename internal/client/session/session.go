// Package session holds the console's process-wide session state: the
// signed-in account and the active theme. A single Context is created at
// startup and passed by reference to whatever needs it.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/staffdesk/internal/client/models"
	"github.com/dmitrijs2005/staffdesk/internal/client/repositories/preferences"
	"github.com/dmitrijs2005/staffdesk/internal/common"
	"github.com/dmitrijs2005/staffdesk/internal/logging"
	"github.com/muesli/termenv"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("%w: unknown theme %q", common.ErrorInputInvalid, s)
	}
}

type Context struct {
	prefs      preferences.Repository
	logger     logging.Logger
	darkOutput func() bool

	mu      sync.RWMutex
	account *models.Account
	theme   Theme
}

func NewContext(prefs preferences.Repository, logger logging.Logger) *Context {
	return &Context{
		prefs:      prefs,
		logger:     logger.With("module", "session"),
		darkOutput: termenv.HasDarkBackground,
		theme:      ThemeLight,
	}
}

// Init loads the persisted theme, falling back to the terminal's background.
// The session starts anonymous.
func (c *Context) Init(ctx context.Context) error {
	theme := ThemeLight
	if c.darkOutput() {
		theme = ThemeDark
	}

	stored, ok, err := c.prefs.Get(ctx, preferences.KeyTheme)
	if err != nil {
		return err
	}
	if ok {
		if t, perr := ParseTheme(stored); perr == nil {
			theme = t
		} else {
			c.logger.Warn(ctx, "ignoring stored theme", "value", stored)
		}
	}

	c.mu.Lock()
	c.account = nil
	c.theme = theme
	c.mu.Unlock()

	return nil
}

// Establish makes account the signed-in account and remembers its username.
func (c *Context) Establish(ctx context.Context, account *models.Account) {
	c.mu.Lock()
	c.account = account
	c.mu.Unlock()

	c.logger.Info(ctx, "session established", "account_id", account.ID, "role", account.Role.Name)

	if err := c.prefs.Set(ctx, preferences.KeyLastUsername, account.Username); err != nil {
		c.logger.Warn(ctx, "failed to remember username", "error", err)
	}
}

// Current returns the signed-in account.
func (c *Context) Current() (*models.Account, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.account, c.account != nil
}

// Clear returns the session to the anonymous state. The theme is kept.
func (c *Context) Clear(ctx context.Context) {
	c.mu.Lock()
	prev := c.account
	c.account = nil
	c.mu.Unlock()

	if prev != nil {
		c.logger.Info(ctx, "session cleared", "account_id", prev.ID)
	}
}

func (c *Context) Theme() Theme {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.theme
}

func (c *Context) SetTheme(ctx context.Context, theme Theme) error {
	if _, err := ParseTheme(string(theme)); err != nil {
		return err
	}
	if err := c.prefs.Set(ctx, preferences.KeyTheme, string(theme)); err != nil {
		return err
	}

	c.mu.Lock()
	c.theme = theme
	c.mu.Unlock()
	return nil
}

// LastUsername returns the username of the most recent session, if any.
func (c *Context) LastUsername(ctx context.Context) string {
	name, _, err := c.prefs.Get(ctx, preferences.KeyLastUsername)
	if err != nil {
		c.logger.Warn(ctx, "failed to read last username", "error", err)
		return ""
	}
	return name
}
