package cli

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/staffdesk/internal/client/client"
	"github.com/dmitrijs2005/staffdesk/internal/client/config"
	"github.com/dmitrijs2005/staffdesk/internal/client/login"
	"github.com/dmitrijs2005/staffdesk/internal/client/models"
	"github.com/dmitrijs2005/staffdesk/internal/client/platform"
	"github.com/dmitrijs2005/staffdesk/internal/client/repositories/preferences"
	"github.com/dmitrijs2005/staffdesk/internal/client/session"
	"github.com/dmitrijs2005/staffdesk/internal/common"
	"github.com/dmitrijs2005/staffdesk/internal/logging"
	"github.com/stretchr/testify/require"
)

var (
	amal      = &models.Account{ID: "acc-amal", Username: "amal", Role: models.Role{ID: "r-hr", Name: "hr"}, IsActive: true}
	khaled    = &models.Account{ID: "acc-khaled", Username: "khaled", Role: models.Role{ID: "r-staff", Name: "staff"}, IsActive: false}
	deviceKey = []byte{0x10, 0x20, 0x30, 0x40}
)

type fakeStore struct {
	mu        sync.Mutex
	pingErr   error
	pings     int
	closed    bool
	passwords map[string]string
	accounts  map[string]*models.Account
	creds     []models.BiometricCredential
}

var _ client.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		passwords: map[string]string{"amal": "correct", "khaled": "correct"},
		accounts:  map[string]*models.Account{amal.ID: amal, khaled.ID: khaled},
		creds: []models.BiometricCredential{
			{CredentialID: base64.RawURLEncoding.EncodeToString(deviceKey), AccountID: amal.ID},
		},
	}
}

func (s *fakeStore) FindAccountByUsername(_ context.Context, username string, password []byte) (*models.Account, error) {
	if s.passwords[username] != string(password) {
		return nil, common.ErrorNotFound
	}
	for _, a := range s.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (s *fakeStore) ListBiometricCredentials(context.Context) ([]models.BiometricCredential, error) {
	return s.creds, nil
}

func (s *fakeStore) FindAccountByID(_ context.Context, id string) (*models.Account, error) {
	if a, ok := s.accounts[id]; ok {
		return a, nil
	}
	return nil, common.ErrorNotFound
}

func (s *fakeStore) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pings++
	return s.pingErr
}

func (s *fakeStore) setPingErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pingErr = err
}

func (s *fakeStore) Close() error {
	s.closed = true
	return nil
}

type testApp struct {
	*App
	fs   *fakeStore
	sess *session.Context
	buf  *bytes.Buffer
}

// newTestApp wires an App over a fake store, a real sequencer with no
// pacing, and a device authenticator answering from input.
func newTestApp(t *testing.T, input string) *testApp {
	t.Helper()
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, filepath.Join(t.TempDir(), "console.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := newFakeStore()
	sess := session.NewContext(preferences.NewSQLiteRepository(db), logging.Discard())
	lines := platform.NewLines(strings.NewReader(input))
	out := &bytes.Buffer{}

	cfg := &config.Config{}
	cfg.LoadDefaults()

	app := newApp(cfg, store, sess, logging.Discard(), lines, out)

	engine, err := login.NewAssertionEngine(store, platform.NewPrompt(deviceKey, lines, out), "https://console.staffdesk.test", "Staffdesk", logging.Discard())
	require.NoError(t, err)

	app.seq = login.NewSequencer(login.NewVerifier(store), engine, sess, logging.Discard(),
		login.WithStageDelay(0),
		login.WithFailedWindow(time.Hour),
		login.WithPresenter(app),
	)

	return &testApp{App: app, fs: store, sess: sess, buf: out}
}

// stubPassword makes getPassword return pw and restores it on cleanup.
func stubPassword(t *testing.T, pw []byte) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return pw, nil }
	t.Cleanup(func() { getPassword = orig })
}
