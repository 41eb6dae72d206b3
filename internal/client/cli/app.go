package cli

import (
	"context"
	"database/sql"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/dmitrijs2005/staffdesk/internal/client/client"
	"github.com/dmitrijs2005/staffdesk/internal/client/config"
	"github.com/dmitrijs2005/staffdesk/internal/client/login"
	"github.com/dmitrijs2005/staffdesk/internal/client/models"
	"github.com/dmitrijs2005/staffdesk/internal/client/platform"
	"github.com/dmitrijs2005/staffdesk/internal/client/repositories/preferences"
	"github.com/dmitrijs2005/staffdesk/internal/client/session"
	"github.com/dmitrijs2005/staffdesk/internal/clock"
	"github.com/dmitrijs2005/staffdesk/internal/common"
	"github.com/dmitrijs2005/staffdesk/internal/filex"
	"github.com/dmitrijs2005/staffdesk/internal/logging"
	"github.com/muesli/termenv"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// sequencer is the part of login.Sequencer the console drives.
type sequencer interface {
	SubmitPassword(ctx context.Context, username string, password []byte) (login.State, error)
	SubmitBiometric(ctx context.Context) (login.State, error)
	SignOut(ctx context.Context) error
	State() login.State
}

// sessionState is the part of session.Context the console reads.
type sessionState interface {
	Current() (*models.Account, bool)
	Clear(ctx context.Context)
	LastUsername(ctx context.Context) string
	Theme() session.Theme
	SetTheme(ctx context.Context, theme session.Theme) error
}

type App struct {
	config  *config.Config
	store   client.Store
	db      *sql.DB
	seq     sequencer
	session sessionState
	logger  logging.Logger
	clock   clock.Clock

	lines *platform.Lines
	out   io.Writer
	term  *termenv.Output

	mu   sync.Mutex
	mode Mode
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stderr, parseLevel(c.LogLevel))

	var credentialID []byte
	if c.DeviceCredentialID != "" {
		id, err := base64.RawURLEncoding.DecodeString(c.DeviceCredentialID)
		if err != nil {
			return nil, fmt.Errorf("%w: device credential id is not base64url", common.ErrorInputInvalid)
		}
		credentialID = id
	}

	dbPath, err := filex.EnsureParentDir(c.DatabasePath)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store, err := client.NewGRPCClient(c.ServerEndpointAddr, c.APIKey, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	sess := session.NewContext(preferences.NewSQLiteRepository(db), logger)
	if err := sess.Init(ctx); err != nil {
		_ = store.Close()
		_ = db.Close()
		return nil, err
	}

	lines := platform.NewLines(os.Stdin)
	out := os.Stdout

	engine, err := login.NewAssertionEngine(store, platform.NewPrompt(credentialID, lines, out), c.Origin, c.RPDisplayName, logger)
	if err != nil {
		_ = store.Close()
		_ = db.Close()
		return nil, err
	}

	app := newApp(c, store, sess, logger, lines, out)
	app.db = db
	app.seq = login.NewSequencer(login.NewVerifier(store), engine, sess, logger,
		login.WithStageDelay(c.StageDelay),
		login.WithFailedWindow(c.FailedWindow),
		login.WithPresenter(app),
	)

	return app, nil
}

func newApp(c *config.Config, store client.Store, sess sessionState, logger logging.Logger, lines *platform.Lines, out io.Writer) *App {
	return &App{
		config:  c,
		store:   store,
		session: sess,
		logger:  logger.With("module", "cli"),
		clock:   clock.Real(),
		lines:   lines,
		out:     out,
		term:    termenv.NewOutput(out),
	}
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return level
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		fmt.Fprintf(a.out, "Switched to %s mode\n", mode)
	}
}

func (a *App) getMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.Current()
	return ok
}

func (a *App) getStatus() string {
	s := ""
	if acc, ok := a.session.Current(); ok {
		s = acc.Username + " "
	}
	if m := a.getMode(); m != "" {
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run starts the connectivity watcher and the REPL, and releases the store
// and database when the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.close(ctx)

	fmt.Fprintln(a.out, "Staffdesk console (type 'help' for commands)")

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.lines)
}

func (a *App) close(ctx context.Context) {
	if err := a.store.Close(); err != nil {
		a.logger.Warn(ctx, "store close error", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(ctx, "db close error", "error", err)
		}
	}
}
